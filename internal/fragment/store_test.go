package fragment_test

import (
	"os"
	"path/filepath"
	"testing"

	"db-scaffold/internal/fragment"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadAndDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "view/index.stub", []byte("hello"), 0o644))

	s := fragment.NewStore(fs)

	text, ok := s.Load("view/index.stub")
	assert.True(t, ok)
	assert.Equal(t, "hello", text)

	text, ok = s.Load("view/read.stub")
	assert.False(t, ok)
	assert.Empty(t, text)

	assert.True(t, s.Dir("view"))
	assert.False(t, s.Dir("themes/bootstrap/view"))
	assert.False(t, s.Dir("view/index.stub"))
}

func TestDefaults_ShipEveryKind(t *testing.T) {
	s := fragment.NewStore(fragment.Defaults())

	for _, p := range []string{
		"model/base.stub",
		"model/contents.stub",
		"controller/base.stub",
		"controller/construct.stub",
		"controller/create-view.stub",
		"view/index.stub",
		"view/index_data_heading.stub",
		"view/read_data_body.stub",
		"view/input.stub",
		"view/textarea.stub",
		"view/select.stub",
		"themes/bootstrap/view/create.stub",
	} {
		_, ok := s.Load(p)
		assert.True(t, ok, p)
	}
	assert.True(t, s.Dir("themes/bootstrap/view"))
	assert.False(t, s.Dir("themes/foundation/view"))
}

func TestOverlay_ShadowsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "model"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model", "contents.stub"), []byte("custom {{table}}"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "themes", "custom", "view"), 0o755))

	s := fragment.NewStore(fragment.Overlay(dir))

	text, ok := s.Load("model/contents.stub")
	require.True(t, ok)
	assert.Equal(t, "custom {{table}}", text)

	_, ok = s.Load("model/base.stub")
	assert.True(t, ok, "defaults remain visible under the overlay")

	assert.True(t, s.Dir("themes/custom/view"))
	assert.True(t, s.Dir("themes/bootstrap/view"))
}
