package schema_test

import (
	"context"
	"testing"

	"db-scaffold/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	users := &schema.Table{Name: "USERS", Columns: []*schema.Column{
		{Name: "ID", DataType: "number", IsPK: true},
		{Name: "NAME", DataType: "varchar", Length: 50},
	}}
	snap := schema.NewSnapshot([]*schema.Table{users, {Name: "AUDITS"}})

	assert.Equal(t, []string{"USERS", "AUDITS"}, snap.Tables())

	cols, err := snap.Columns(context.Background(), "users")
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, "NAME", cols[1].Name)
	assert.Equal(t, 50, cols[1].Length)

	cols[1].Name = "changed"
	assert.Equal(t, "NAME", users.Columns[1].Name)

	cols, err = snap.Columns(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, cols)

	cols, err = snap.Columns(context.Background(), "audits")
	require.NoError(t, err)
	assert.Empty(t, cols)
}
