package cmd

import (
	"github.com/curatord/curatord/config"
	"github.com/curatord/curatord/pkg/downloader"
	"github.com/curatord/curatord/pkg/emby"
	curatordhttp "github.com/curatord/curatord/pkg/http"
	"github.com/curatord/curatord/pkg/manager"
	"github.com/curatord/curatord/pkg/storage"
	"github.com/curatord/curatord/pkg/storage/sqlite"
	"github.com/curatord/curatord/pkg/tmdb"
	"github.com/spf13/viper"
)

// buildManager opens the sqlite store and wires every external facade
// behind a shared rate-limited HTTP client, matching the teacher's
// reconcile/serve command bootstrap. It also returns the store directly
// since the HTTP server's read endpoints bypass the manager.
func buildManager(cfg config.Config) (manager.Manager, storage.Storage, error) {
	store, err := sqlite.New(cfg.Storage.FilePath)
	if err != nil {
		return manager.Manager{}, nil, err
	}

	httpClient := curatordhttp.NewRateLimitedHTTPClient()

	tmdbClient := tmdb.New(cfg.TMDB.Scheme, cfg.TMDB.Host, cfg.TMDB.APIKey, httpClient)
	embyClient := emby.New(cfg.Emby.Scheme, cfg.Emby.Host, cfg.Emby.APIKey, httpClient)
	downloaderClient := downloader.New(cfg.Downloader.Scheme, cfg.Downloader.Host, cfg.Downloader.APIKey, httpClient)

	return manager.New(store, tmdbClient, embyClient, downloaderClient, cfg), store, nil
}

func readConfig() (config.Config, error) {
	return config.New(viper.GetViper())
}
