package engine_test

import (
	"context"
	"errors"
	"testing"

	"db-scaffold/internal/engine"
	"db-scaffold/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppJobs(t *testing.T) {
	jobs := engine.AppJobs([]string{"users", "order_items"}, "bootstrap")
	require.Len(t, jobs, 6)

	assert.Equal(t, engine.Job{Kind: engine.KindModel, Request: engine.Request{Name: "User", Table: "users"}}, jobs[0])
	assert.Equal(t, engine.Job{Kind: engine.KindController,
		Request: engine.Request{Name: "UserController", Table: "users", Model: "User"}}, jobs[1])
	assert.Equal(t, engine.Job{Kind: engine.KindView,
		Request: engine.Request{Name: "User", Table: "users", Theme: "bootstrap"}}, jobs[2])
	assert.Equal(t, "OrderItem", jobs[3].Request.Name)
	assert.Equal(t, "OrderItemController", jobs[4].Request.Name)
}

func TestRun_ContinuesPastFailures(t *testing.T) {
	boom := errors.New("permission denied")
	src := &fakeSource{
		tables: map[string][]schema.Column{
			"users": {{Name: "name", DataType: "varchar"}},
		},
		errs: map[string]error{"audits": boom},
	}
	loader := memLoader(t, map[string]string{"model/contents.stub": "{{fillable}}"})
	b := engine.NewBuilder(src, loader, testSettings())

	progress := 0
	results := b.Run(context.Background(), []engine.Job{
		{Kind: engine.KindModel, Request: engine.Request{Name: "Audit"}},
		{Kind: engine.KindModel, Request: engine.Request{Name: "User"}},
		{Kind: engine.KindController, Request: engine.Request{Name: "UserController"}},
		{Kind: engine.KindModel, Request: engine.Request{}},
	}, func() { progress++ })

	require.Len(t, results, 4)
	assert.Equal(t, 4, progress)

	assert.Equal(t, engine.StatusFailed, results[0].Status)
	assert.ErrorIs(t, results[0].Err, boom)
	assert.Equal(t, "audits", results[0].Table)

	assert.Equal(t, engine.StatusOK, results[1].Status)
	require.Len(t, results[1].Artifacts, 1)
	assert.Equal(t, "\"name\"\n", results[1].Artifacts[0].Text)

	assert.Equal(t, engine.StatusEmpty, results[2].Status)

	assert.Equal(t, engine.StatusFailed, results[3].Status)
	assert.ErrorIs(t, results[3].Err, engine.ErrMissingTableName)

	err := engine.Failed(results)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, engine.ErrMissingTableName)
}

func TestRun_CancelledContextSkipsRemaining(t *testing.T) {
	src := usersSource()
	b := engine.NewBuilder(src, memLoader(t, nil), testSettings())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := b.Run(ctx, engine.AppJobs([]string{"users"}, ""), nil)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, engine.StatusSkipped, r.Status)
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
	assert.Empty(t, src.calls)
	assert.NoError(t, engine.Failed(results))
}
