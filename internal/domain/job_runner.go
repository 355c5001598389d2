package domain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

// JobRunner tracks generation goroutines: it owns the job row transitions
// (queued -> running -> done|failed), fans progress out as events, and lets
// shutdown drain in-flight work.
type JobRunner struct {
	jobs     ports.JobRepository
	deadline time.Duration
	log      *zap.SugaredLogger

	wg     sync.WaitGroup
	events chan ports.JobEvent
}

func NewJobRunner(jobs ports.JobRepository, deadline time.Duration, log *zap.SugaredLogger) *JobRunner {
	return &JobRunner{
		jobs:     jobs,
		deadline: deadline,
		log:      log,
		events:   make(chan ports.JobEvent, 100),
	}
}

func (r *JobRunner) Events() <-chan ports.JobEvent { return r.events }

// Wait blocks until every launched job has finished. Called on shutdown.
func (r *JobRunner) Wait() { r.wg.Wait() }

// Begin persists the queued job row before the caller replies with its id.
func (r *JobRunner) Begin(ctx context.Context, job *models.Job) error {
	if err := r.jobs.InsertJob(ctx, job); err != nil {
		return fmt.Errorf("begin job: %w", err)
	}
	r.emit(job, "")
	return nil
}

// Launch runs fn in a goroutine detached from the request context. fn is
// responsible for the content row; the runner handles the job row.
func (r *JobRunner) Launch(job *models.Job, fn func(ctx context.Context, progress *Progress) error) {
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.deadline)
		defer cancel()

		defer func() {
			if rec := recover(); rec != nil {
				r.log.Errorw("job panic", "job", job.ID, "panic", rec)
				r.finishFailed(job, fmt.Sprintf("internal: %v", rec))
			}
		}()

		if err := r.jobs.MarkJobRunning(ctx, job.ID); err != nil {
			r.log.Errorw("mark running failed", "job", job.ID, "err", err)
		}
		job.Status = models.JobRunning
		r.emit(job, "")

		start := time.Now()
		if err := fn(ctx, &Progress{runner: r, job: job}); err != nil {
			r.log.Warnw("job failed", "job", job.ID, "kind", job.Kind, "dur", time.Since(start), "err", err)
			r.finishFailed(job, err.Error())
			return
		}

		if err := r.jobs.CompleteJob(context.Background(), job.ID); err != nil {
			r.log.Errorw("complete job failed", "job", job.ID, "err", err)
		}
		job.Status = models.JobDone
		r.emit(job, "")
		r.log.Infow("job done", "job", job.ID, "kind", job.Kind, "dur", time.Since(start))
	}()
}

func (r *JobRunner) finishFailed(job *models.Job, msg string) {
	// fresh context: the job context may already be cancelled
	if err := r.jobs.FailJob(context.Background(), job.ID, msg); err != nil {
		r.log.Errorw("fail job failed", "job", job.ID, "err", err)
	}
	job.Status = models.JobFailed
	r.emit(job, msg)
}

// emit never blocks; a slow or absent consumer drops events, polling still
// sees the truth in the jobs table.
func (r *JobRunner) emit(job *models.Job, errMsg string) {
	ev := ports.JobEvent{
		OwnerID: job.OwnerID,
		JobID:   job.ID,
		Kind:    job.Kind,
		Status:  job.Status,
		Step:    job.Step,
		Error:   errMsg,
	}
	select {
	case r.events <- ev:
	default:
		r.log.Debugw("event dropped", "job", job.ID)
	}
}

// Progress is handed to the pipeline closure to report phase changes and
// provider spend onto the job row.
type Progress struct {
	runner *JobRunner
	job    *models.Job
}

func (p *Progress) Step(ctx context.Context, step string) {
	p.job.Step = step
	if err := p.runner.jobs.SetJobStep(ctx, p.job.ID, step); err != nil {
		p.runner.log.Errorw("set step failed", "job", p.job.ID, "err", err)
	}
	p.runner.emit(p.job, "")
}

func (p *Progress) AddCost(ctx context.Context, cost decimal.Decimal) {
	if cost.IsZero() {
		return
	}
	if err := p.runner.jobs.AddJobCost(ctx, p.job.ID, cost.String()); err != nil {
		p.runner.log.Errorw("add cost failed", "job", p.job.ID, "err", err)
	}
}
