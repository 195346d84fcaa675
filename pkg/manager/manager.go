// Package manager implements the Collection & Subscription Reconciliation
// Engine: the Library Indexer, Filter/List candidate generation, the
// Collection Reconciler's classification state machine, the Actor
// Subscription Reconciler, the Auto-Subscribe Gate, the Webhook
// Propagator, and the task orchestrator that schedules and runs them.
package manager

import (
	"github.com/curatord/curatord/config"
	"github.com/curatord/curatord/pkg/downloader"
	"github.com/curatord/curatord/pkg/emby"
	curatordhttp "github.com/curatord/curatord/pkg/http"
	"github.com/curatord/curatord/pkg/listimport"
	"github.com/curatord/curatord/pkg/logger"
	"github.com/curatord/curatord/pkg/storage"
	"github.com/curatord/curatord/pkg/tmdb"
)

// Manager wires the reconciliation engine's external facades and
// persistent store together. Every task executor the Scheduler runs is
// a method on Manager.
type Manager struct {
	storage    storage.Storage
	tmdb       tmdb.ITMDb
	emby       emby.IEmby
	downloader downloader.IDownloader
	config     config.Config

	httpClient    curatordhttp.HTTPClient
	resolver      *listimport.Resolver
	maoyanCache   *listimport.FileCache
	maoyanFetcher listimport.MaoyanFetcher
}

func New(store storage.Storage, tmdbClient tmdb.ITMDb, embyClient emby.IEmby, downloaderClient downloader.IDownloader, cfg config.Config) Manager {
	m := Manager{
		storage:       store,
		tmdb:          tmdbClient,
		emby:          embyClient,
		downloader:    downloaderClient,
		config:        cfg,
		httpClient:    curatordhttp.NewRateLimitedHTTPClient(),
		resolver:      listimport.NewResolver(tmdbClient),
		maoyanFetcher: listimport.DefaultMaoyanFetcher("https://maoyan.example/rank/%s.xml", cfg.ListImport.FetchTimeout),
	}

	if cfg.ListImport.CacheDir != "" {
		cache, err := listimport.NewFileCache(cfg.ListImport.CacheDir, cfg.ListImport.CacheTTL)
		if err != nil {
			logger.Get().Debugw("failed to init maoyan cache, continuing without one", "error", err)
		} else {
			m.maoyanCache = cache
		}
	}

	return m
}

// workerCap returns the configured fan-out bound, defaulting to the
// spec's ≤5 worker pool size when unset.
func (m Manager) workerCap() int {
	if m.config.Jobs.WorkerCap <= 0 {
		return 5
	}
	return m.config.Jobs.WorkerCap
}
