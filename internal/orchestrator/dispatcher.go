package orchestrator

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"assistant-trigger/internal/model"
	pkgLog "assistant-trigger/pkg/log"
)

// Dispatcher runs invocations on a fixed pool of workers and publishes one
// JobResult per job on Results.
type Dispatcher struct {
	uc      UseCase
	cfg     DispatcherConfig
	l       pkgLog.Logger
	jobs    chan Job
	results chan JobResult

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher. Workers are started by Start.
func NewDispatcher(uc UseCase, cfg DispatcherConfig, l pkgLog.Logger) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = defaultJobTimeout
	}
	if cfg.Handoff == "" {
		cfg.Handoff = HandoffPipeline
	}
	return &Dispatcher{
		uc:      uc,
		cfg:     cfg,
		l:       l,
		jobs:    make(chan Job, cfg.QueueSize),
		results: make(chan JobResult, cfg.QueueSize),
	}
}

// Start launches the workers. Jobs in flight are cancelled with ctx.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.cfg.Workers; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for job := range d.jobs {
				d.process(ctx, job)
			}
		}()
	}
	d.l.Infof(ctx, "Dispatcher started with %d workers", d.cfg.Workers)
}

// Submit queues trigger and returns the job id. It never blocks.
func (d *Dispatcher) Submit(deliveryID string, trigger model.TriggerResult) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return "", ErrDispatcherClosed
	}

	job := Job{ID: uuid.NewString(), DeliveryID: deliveryID, Trigger: trigger}
	select {
	case d.jobs <- job:
		return job.ID, nil
	default:
		return "", ErrQueueFull
	}
}

// Results returns the channel of finished jobs. It is closed by Stop.
// Results are dropped when nobody drains the channel.
func (d *Dispatcher) Results() <-chan JobResult {
	return d.results
}

// Stop stops accepting jobs, waits for queued jobs to finish and closes
// Results.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()

	d.wg.Wait()
	close(d.results)
}

func (d *Dispatcher) process(ctx context.Context, job Job) {
	ctx = context.WithValue(ctx, pkgLog.JobIDKey, job.ID)
	if job.DeliveryID != "" {
		ctx = context.WithValue(ctx, pkgLog.DeliveryIDKey, job.DeliveryID)
	}
	ctx, cancel := context.WithTimeout(ctx, d.cfg.JobTimeout)
	defer cancel()

	out, err := d.uc.Run(ctx, RunInput{Trigger: job.Trigger, Handoff: d.cfg.Handoff})
	if err != nil {
		d.l.Errorf(ctx, "Job failed: %v", err)
	} else {
		d.l.Infof(ctx, "Job finished for %s %d", out.ResourceType, out.ResourceID)
	}

	select {
	case d.results <- JobResult{JobID: job.ID, Err: err, Output: out}:
	default:
		d.l.Warnf(ctx, "Results channel full, dropping result of job %s", job.ID)
	}
}
