package engine

import (
	"context"
	"errors"

	"db-scaffold/internal/naming"

	"go.uber.org/zap"
)

// Result statuses reported by Run.
const (
	StatusOK      = "OK"
	StatusEmpty   = "EMPTY"
	StatusFailed  = "FAILED"
	StatusSkipped = "SKIPPED"
)

// Job is one Generate call.
type Job struct {
	Kind    Kind
	Request Request
}

// Result reports the outcome of one Job.
type Result struct {
	Job       Job
	Table     string
	Artifacts []Artifact
	Status    string
	Err       error
}

// AppJobs returns, for every table, a model, a controller and a view job
// using the conventional class names (users -> User, UserController).
func AppJobs(tables []string, theme string) []Job {
	jobs := make([]Job, 0, len(tables)*len(Kinds))
	for _, t := range tables {
		model := naming.Studly(naming.Singular(t))
		jobs = append(jobs,
			Job{Kind: KindModel, Request: Request{Name: model, Table: t}},
			Job{Kind: KindController, Request: Request{Name: model + "Controller", Table: t, Model: model}},
			Job{Kind: KindView, Request: Request{Name: model, Table: t, Theme: theme}},
		)
	}
	return jobs
}

// Run executes jobs in order. A failing job is reported and the rest still
// run; only context cancellation stops the batch, marking what is left as
// skipped. onProgress, when set, is called after every job.
func (b *Builder) Run(ctx context.Context, jobs []Job, onProgress func()) []Result {
	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		res := Result{Job: job, Table: TableName(job.Kind, job.Request.Name, job.Request.Table)}

		if err := ctx.Err(); err != nil {
			res.Status = StatusSkipped
			res.Err = err
			results = append(results, res)
			continue
		}

		artifacts, err := b.Generate(ctx, job.Kind, job.Request)
		switch {
		case err != nil:
			res.Status = StatusFailed
			res.Err = err
			b.log.Error("generation failed",
				zap.String("kind", string(job.Kind)),
				zap.String("name", job.Request.Name),
				zap.Error(err))
		case allEmpty(artifacts):
			res.Status = StatusEmpty
		default:
			res.Status = StatusOK
		}
		res.Artifacts = artifacts
		results = append(results, res)

		if onProgress != nil {
			onProgress()
		}
	}
	return results
}

// Failed returns the joined errors of every failed result, or nil.
func Failed(results []Result) error {
	var errs []error
	for _, r := range results {
		if r.Status == StatusFailed {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}

func allEmpty(artifacts []Artifact) bool {
	for _, a := range artifacts {
		if a.Text != "" {
			return false
		}
	}
	return true
}
