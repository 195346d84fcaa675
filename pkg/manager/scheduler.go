package manager

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/curatord/curatord/pkg/cache"
	"github.com/curatord/curatord/pkg/logger"
	"go.uber.org/zap"
)

// TaskKind groups tasks that must never run concurrently with one
// another. Exactly one task runs at a time per kind; a different kind
// may run in parallel.
type TaskKind string

const (
	KindMedia     TaskKind = "media"
	KindWatchlist TaskKind = "watchlist"
	KindActor     TaskKind = "actor"
)

// TaskKey names one runnable task. The id-suffixed keys
// (process-single-custom-collection, scan-actor-media) take an
// identifier at Run time rather than encoding it in the key itself.
type TaskKey string

const (
	TaskFullScan                      TaskKey = "full-scan"
	TaskSyncPersonMap                 TaskKey = "sync-person-map"
	TaskEnrichAliases                 TaskKey = "enrich-aliases"
	TaskPopulateMetadata              TaskKey = "populate-metadata"
	TaskProcessWatchlist              TaskKey = "process-watchlist"
	TaskSeedWatchlist                 TaskKey = "seed-watchlist"
	TaskRefreshCollections            TaskKey = "refresh-collections"
	TaskCustomCollections             TaskKey = "custom-collections"
	TaskProcessSingleCustomCollection TaskKey = "process-single-custom-collection"
	TaskActorTracking                 TaskKey = "actor-tracking"
	TaskScanActorMedia                TaskKey = "scan-actor-media"
	TaskAutoSubscribe                 TaskKey = "auto-subscribe"
	TaskChain                         TaskKey = "task-chain"
)

var taskKinds = map[TaskKey]TaskKind{
	TaskFullScan:                      KindMedia,
	TaskSyncPersonMap:                 KindMedia,
	TaskEnrichAliases:                 KindMedia,
	TaskPopulateMetadata:              KindMedia,
	TaskRefreshCollections:            KindMedia,
	TaskCustomCollections:             KindMedia,
	TaskProcessSingleCustomCollection: KindMedia,
	TaskAutoSubscribe:                 KindMedia,
	TaskProcessWatchlist:              KindWatchlist,
	TaskSeedWatchlist:                 KindWatchlist,
	TaskActorTracking:                 KindActor,
	TaskScanActorMedia:                KindActor,
}

// RunRequest names a task to run and carries whatever argument its
// executor needs: a collection id for process-single-custom-collection,
// a subscription id for scan-actor-media, a chain of sub-requests for
// task-chain. Unused for every other task key.
type RunRequest struct {
	Task           TaskKey
	CollectionID   int64
	SubscriptionID int64
	Chain          []RunRequest
}

// Scheduler is the single long-lived task orchestrator: a registry of
// named tasks, one in-flight run per processor kind, and cooperative
// cancellation via a per-task stop flag checked at natural boundaries
// inside each executor.
type Scheduler struct {
	manager Manager

	mu        sync.Mutex
	kindBusy  map[TaskKind]bool
	running   *cache.Cache[string, context.CancelFunc]
	nextRunID int64
}

func NewScheduler(m Manager) *Scheduler {
	return &Scheduler{
		manager:  m,
		kindBusy: make(map[TaskKind]bool),
		running:  cache.New[string, context.CancelFunc](),
	}
}

// Run starts req's task and blocks until it finishes or is cancelled.
// If the kind it belongs to is already busy, Run returns an error at
// once without starting the task. progress is
// called with (-1, message) on terminal error per the orchestrator
// surface's contract.
func (s *Scheduler) Run(ctx context.Context, req RunRequest, progress ProgressFunc) error {
	if progress == nil {
		progress = noopProgress
	}
	log := logger.FromCtx(ctx).With(zap.String("task", string(req.Task)))

	if req.Task == TaskChain {
		return s.runChain(ctx, req.Chain, progress)
	}

	kind, ok := taskKinds[req.Task]
	if !ok {
		err := fmt.Errorf("manager: unknown task key %q", req.Task)
		progress(-1, err.Error())
		return err
	}

	if !s.acquire(kind) {
		err := fmt.Errorf("manager: a %s task is already running", kind)
		progress(-1, err.Error())
		return err
	}
	defer s.release(kind)

	runCtx, cancel := context.WithCancel(ctx)
	runID := s.registerRun(cancel)
	defer s.running.Delete(runID)

	log.Debug("task started")
	err := s.execute(runCtx, req, progress)
	if err != nil {
		if runCtx.Err() != nil {
			log.Info("task cancelled")
			progress(-1, "cancelled")
			return runCtx.Err()
		}
		log.Error("task failed", zap.Error(err))
		progress(-1, err.Error())
		return err
	}

	log.Debug("task completed")
	return nil
}

func (s *Scheduler) runChain(ctx context.Context, chain []RunRequest, progress ProgressFunc) error {
	for i, req := range chain {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Run(ctx, req, progress); err != nil {
			return fmt.Errorf("task-chain: step %d (%s): %w", i, req.Task, err)
		}
	}
	progress(100, "task chain complete")
	return nil
}

func (s *Scheduler) execute(ctx context.Context, req RunRequest, progress ProgressFunc) error {
	m := s.manager
	switch req.Task {
	case TaskFullScan:
		return m.IndexLibrary(ctx, nil, IndexDeep, progress)
	case TaskPopulateMetadata:
		return m.IndexLibrary(ctx, nil, IndexQuick, progress)
	case TaskSyncPersonMap:
		return m.SyncPersonMap(ctx, nil, progress)
	case TaskEnrichAliases:
		return m.EnrichAliases(ctx, progress)
	case TaskProcessWatchlist:
		return m.ReconcileWatchlist(ctx, progress)
	case TaskSeedWatchlist:
		if err := m.SeedWatchlistFromLibrary(ctx, nil, progress); err != nil {
			return err
		}
		return m.ReconcileWatchlist(ctx, progress)
	case TaskRefreshCollections:
		return m.ReconcileNativeCollections(ctx, progress)
	case TaskCustomCollections:
		return m.ReconcileCollections(ctx, progress)
	case TaskProcessSingleCustomCollection:
		c, err := m.storage.GetCustomCollection(ctx, req.CollectionID)
		if err != nil {
			return err
		}
		return m.ReconcileCollection(ctx, c)
	case TaskActorTracking:
		return m.ReconcileActorSubscriptions(ctx, progress)
	case TaskScanActorMedia:
		return m.scanOneActorSubscription(ctx, req.SubscriptionID, progress)
	case TaskAutoSubscribe:
		return m.RunAutoSubscribe(ctx, progress)
	default:
		return fmt.Errorf("manager: unhandled task key %q", req.Task)
	}
}

func (s *Scheduler) acquire(kind TaskKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kindBusy[kind] {
		return false
	}
	s.kindBusy[kind] = true
	return true
}

func (s *Scheduler) release(kind TaskKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.kindBusy, kind)
}

func (s *Scheduler) registerRun(cancel context.CancelFunc) string {
	s.mu.Lock()
	s.nextRunID++
	id := fmt.Sprintf("run-%d", s.nextRunID)
	s.mu.Unlock()

	s.running.Set(id, cancel)
	return id
}

// CancelAll signals every in-flight run's cooperative stop flag and
// waits briefly for them to observe it.
func (s *Scheduler) CancelAll() {
	for _, id := range s.running.Keys() {
		if cancel, ok := s.running.Get(id); ok {
			cancel()
		}
	}
	time.Sleep(50 * time.Millisecond)
}
