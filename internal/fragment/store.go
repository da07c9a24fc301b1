// Package fragment loads stub text by logical path.
//
// Paths are slash-separated and relative to the stub root, e.g.
// "view/index_data_heading.stub". A missing stub is not an error.
package fragment

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

//go:embed all:stubs
var embedded embed.FS

// Loader retrieves stub text.
type Loader interface {
	// Load returns the stub at p and whether it exists.
	Load(p string) (string, bool)
	// Dir reports whether p is a directory.
	Dir(p string) bool
}

// Store is a Loader over an afero filesystem.
type Store struct {
	fs  afero.Fs
	log *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for unreadable stubs.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore returns a Store reading from fsys, rooted at its top directory.
func NewStore(fsys afero.Fs, opts ...Option) *Store {
	s := &Store{fs: fsys, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Defaults returns the stubs shipped with the binary.
func Defaults() afero.Fs {
	sub, err := fs.Sub(embedded, "stubs")
	if err != nil {
		panic("failed to open embedded stubs: " + err.Error())
	}
	return afero.FromIOFS{FS: sub}
}

// Overlay returns the embedded defaults with dir laid on top: a stub present
// in dir shadows the default of the same path. An empty dir returns the
// defaults alone.
func Overlay(dir string) afero.Fs {
	base := Defaults()
	if dir == "" {
		return base
	}
	return afero.NewCopyOnWriteFs(base, afero.NewBasePathFs(afero.NewOsFs(), dir))
}

func (s *Store) Load(p string) (string, bool) {
	data, err := afero.ReadFile(s.fs, path.Clean(p))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("unreadable stub treated as missing", zap.String("path", p), zap.Error(err))
		}
		return "", false
	}
	return string(data), true
}

func (s *Store) Dir(p string) bool {
	ok, err := afero.DirExists(s.fs, path.Clean(p))
	return err == nil && ok
}
