package workers

import (
	"context"
	"time"
)

// Workers starts its workers in order and stops them in reverse order.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type everyWorker struct {
	job      IntervalJob
	interval time.Duration
}

// Every adapts job to Worker, running it every interval.
func Every(job IntervalJob, interval time.Duration) Worker {
	return &everyWorker{job: job, interval: interval}
}

func (e *everyWorker) Start(ctx context.Context) {
	e.job.Start(ctx, e.interval)
}

func (e *everyWorker) Stop() {
	e.job.Stop()
}
