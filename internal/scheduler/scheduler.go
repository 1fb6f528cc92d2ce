// Package scheduler runs a redis-backed priority queue of solve jobs.
// Jobs are stored as JSON under job:<id> and ranked in a sorted set
// whose score favors higher priority, then earlier submission.
package scheduler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/perclft/IsingEngine/internal/api"
	"github.com/perclft/IsingEngine/internal/cache"
	"github.com/perclft/IsingEngine/internal/engine"
)

const (
	queueKey  = "queue:jobs"
	jobPrefix = "job:"
	jobTTL    = 24 * time.Hour
)

// ErrJobNotFound is returned when a job ID has no record in redis.
var ErrJobNotFound = errors.New("scheduler: job not found")

// RunSink receives completed jobs, e.g. for the postgres registry.
type RunSink interface {
	SaveRun(ctx context.Context, job *api.Job, hash string) error
}

// Scheduler queues jobs and processes them with a background worker.
type Scheduler struct {
	rdb    *redis.Client
	eng    *engine.Engine
	cache  *cache.Cache
	sink   RunSink
	log    *zap.Logger
	wake   chan struct{}
	mu     sync.RWMutex
	cancel map[string]context.CancelFunc
}

func New(rdb *redis.Client, eng *engine.Engine, c *cache.Cache, sink RunSink, log *zap.Logger) *Scheduler {
	return &Scheduler{
		rdb:    rdb,
		eng:    eng,
		cache:  c,
		sink:   sink,
		log:    log,
		wake:   make(chan struct{}, 1),
		cancel: make(map[string]context.CancelFunc),
	}
}

// Submit validates the request, stores the job record, and queues it.
func (s *Scheduler) Submit(ctx context.Context, req *api.JobRequest) (*api.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	job := &api.Job{
		ID:          uuid.New().String(),
		Request:     *req,
		State:       api.StateQueued,
		SubmittedAt: time.Now(),
	}
	if err := s.saveJob(ctx, job); err != nil {
		return nil, err
	}

	score := float64(int64(req.Priority)*1000000 - time.Now().Unix())
	if err := s.rdb.ZAdd(ctx, queueKey, &redis.Z{Score: score, Member: job.ID}).Err(); err != nil {
		return nil, errors.Wrap(err, "scheduler: queue job")
	}

	s.log.Info("job submitted",
		zap.String("job_id", job.ID),
		zap.String("kind", string(req.Kind)),
		zap.Int("priority", req.Priority))

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return job, nil
}

// Get returns the stored job record.
func (s *Scheduler) Get(ctx context.Context, jobID string) (*api.Job, error) {
	data, err := s.rdb.Get(ctx, jobPrefix+jobID).Bytes()
	if err == redis.Nil {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "scheduler: get job")
	}
	var job api.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, errors.Wrap(err, "scheduler: parse job")
	}
	return &job, nil
}

// QueuePosition returns the 1-based position of a queued job, or 0.
func (s *Scheduler) QueuePosition(ctx context.Context, jobID string) int {
	rank, err := s.rdb.ZRevRank(ctx, queueKey, jobID).Result()
	if err != nil {
		return 0
	}
	return int(rank) + 1
}

// Cancel removes a queued job or stops a running one.
func (s *Scheduler) Cancel(ctx context.Context, jobID string) (bool, error) {
	removed, err := s.rdb.ZRem(ctx, queueKey, jobID).Result()
	if err != nil {
		return false, errors.Wrap(err, "scheduler: dequeue job")
	}
	if removed > 0 {
		s.markTerminal(ctx, jobID, api.StateCancelled, "")
		return true, nil
	}

	s.mu.RLock()
	cancel, running := s.cancel[jobID]
	s.mu.RUnlock()
	if running {
		cancel()
		s.markTerminal(ctx, jobID, api.StateCancelled, "")
		return true, nil
	}

	// The worker may have popped the job but not registered its
	// cancel func yet. Fall back to the stored record; the worker
	// re-reads it after registering and skips cancelled jobs.
	job, err := s.Get(ctx, jobID)
	if errors.Is(err, ErrJobNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !job.Terminal() {
		s.markTerminal(ctx, jobID, api.StateCancelled, "")
		return true, nil
	}
	return false, nil
}

// List returns stored jobs, optionally filtered by state, paginated.
func (s *Scheduler) List(ctx context.Context, state api.JobState, offset, limit int) ([]*api.Job, int, error) {
	keys, err := s.rdb.Keys(ctx, jobPrefix+"*").Result()
	if err != nil {
		return nil, 0, errors.Wrap(err, "scheduler: list jobs")
	}

	var jobs []*api.Job
	for _, key := range keys {
		data, err := s.rdb.Get(ctx, key).Bytes()
		if err != nil {
			continue
		}
		var job api.Job
		if err := json.Unmarshal(data, &job); err != nil {
			continue
		}
		if state != "" && job.State != state {
			continue
		}
		jobs = append(jobs, &job)
	}
	total := len(jobs)

	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return jobs[offset:end], total, nil
}

// Run is the worker loop. It blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.wake:
		case <-ticker.C:
		}
		for s.processNext(ctx) {
		}
	}
}

// processNext pops and solves the highest-ranked job. It returns true
// if a job was taken from the queue.
func (s *Scheduler) processNext(ctx context.Context) bool {
	popped, err := s.rdb.ZPopMax(ctx, queueKey, 1).Result()
	if err != nil || len(popped) == 0 {
		return false
	}
	jobID, ok := popped[0].Member.(string)
	if !ok {
		return true
	}

	job, err := s.Get(ctx, jobID)
	if err != nil {
		s.log.Error("dropping queued job", zap.String("job_id", jobID), zap.Error(err))
		return true
	}
	if job.Terminal() {
		return true
	}

	now := time.Now()
	job.State = api.StateRunning
	job.StartedAt = &now
	if err := s.saveJob(ctx, job); err != nil {
		s.log.Error("save job", zap.String("job_id", jobID), zap.Error(err))
	}

	jobCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel[jobID] = cancel
	s.mu.Unlock()
	defer func() {
		cancel()
		s.mu.Lock()
		delete(s.cancel, jobID)
		s.mu.Unlock()
	}()

	if cur, err := s.Get(ctx, jobID); err == nil && cur.Terminal() {
		return true
	}

	s.log.Info("job running", zap.String("job_id", jobID), zap.String("kind", string(job.Request.Kind)))

	result, hash, err := s.solve(jobCtx, &job.Request)
	done := time.Now()
	job.FinishedAt = &done
	switch {
	case jobCtx.Err() != nil && ctx.Err() == nil:
		// Cancelled through Cancel; state already written there.
		return true
	case err != nil:
		job.State = api.StateFailed
		job.Error = err.Error()
		s.log.Warn("job failed", zap.String("job_id", jobID), zap.Error(err))
	default:
		job.State = api.StateCompleted
		job.Result = result
		s.log.Info("job completed",
			zap.String("job_id", jobID),
			zap.String("solver", result.Solver),
			zap.Float64("total", result.Total),
			zap.Int64("elapsed_ms", result.ElapsedMS))
	}
	if err := s.saveJob(ctx, job); err != nil {
		s.log.Error("save job", zap.String("job_id", jobID), zap.Error(err))
	}

	if job.State == api.StateCompleted && s.sink != nil {
		if err := s.sink.SaveRun(ctx, job, hash); err != nil {
			s.log.Warn("record run", zap.String("job_id", jobID), zap.Error(err))
		}
	}
	return true
}

// solve consults the cache before running the engine pipeline.
func (s *Scheduler) solve(ctx context.Context, req *api.JobRequest) (*api.JobResult, string, error) {
	hash, err := cache.HashRequest(req)
	if err != nil {
		return nil, "", err
	}

	if s.cache != nil {
		entry, err := s.cache.Get(ctx, hash)
		if err != nil {
			s.log.Warn("cache lookup", zap.Error(err))
		} else if entry != nil {
			cached := *entry.Result
			cached.CacheHit = true
			return &cached, hash, nil
		}
	}

	result, err := s.eng.Solve(ctx, req)
	if err != nil {
		return nil, hash, err
	}
	if s.cache != nil {
		if err := s.cache.Put(ctx, hash, result, 0); err != nil {
			s.log.Warn("cache store", zap.Error(err))
		}
	}
	return result, hash, nil
}

func (s *Scheduler) markTerminal(ctx context.Context, jobID string, state api.JobState, msg string) {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return
	}
	now := time.Now()
	job.State = state
	job.Error = msg
	job.FinishedAt = &now
	if err := s.saveJob(ctx, job); err != nil {
		s.log.Error("save job", zap.String("job_id", jobID), zap.Error(err))
	}
}

func (s *Scheduler) saveJob(ctx context.Context, job *api.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.Wrap(err, "scheduler: serialize job")
	}
	if err := s.rdb.Set(ctx, jobPrefix+job.ID, data, jobTTL).Err(); err != nil {
		return errors.Wrap(err, "scheduler: store job")
	}
	return nil
}
