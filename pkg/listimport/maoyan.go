package listimport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/curatord/curatord/pkg/logger"
	"go.uber.org/zap"
)

// MaoyanFetcher executes a bounded, cancellable scrape of a
// platform-specific ranked list. It intentionally does not share the
// reconciler's rate-limited HTTP client: the source's own scraping
// needs can misbehave (slow platform endpoints, redirects) in ways that
// must never starve the reconciler's TMDb/Emby traffic.
type MaoyanFetcher func(ctx context.Context, spec MaoyanSpec) ([]RawEntry, error)

// DefaultMaoyanFetcher is a minimal in-process fetcher built on its own
// client and timeout rather than a subprocess. Each invocation sends a
// probe GET to the platform endpoint and returns its error on failure;
// on success it fetches the same URL again and parses it with FetchRSS.
func DefaultMaoyanFetcher(endpointTemplate string, timeout time.Duration) MaoyanFetcher {
	client := &http.Client{Timeout: timeout}

	return func(ctx context.Context, spec MaoyanSpec) ([]RawEntry, error) {
		log := logger.FromCtx(ctx)

		url := fmt.Sprintf(endpointTemplate, spec.Platform)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		res, err := client.Do(req)
		if err != nil {
			log.Debug("maoyan fetch failed", zap.String("platform", spec.Platform), zap.Error(err))
			return nil, err
		}
		defer res.Body.Close()

		entries := FetchRSS(ctx, noRetryClient{client}, url, 0)
		return entries, nil
	}
}

type noRetryClient struct{ c *http.Client }

func (n noRetryClient) Do(req *http.Request) (*http.Response, error) { return n.c.Do(req) }

// ResolveMaoyan resolves a maoyan:// list definition through fetcher,
// consulting cache first and writing back to it on a successful fetch.
// A fetcher failure yields an empty result, never an error the
// reconciler has to handle.
func ResolveMaoyan(ctx context.Context, cache *FileCache, fetcher MaoyanFetcher, def Definition, resolver *Resolver) []Candidate {
	log := logger.FromCtx(ctx)

	spec, err := ParseMaoyanURL(def.URL)
	if err != nil {
		log.Debug("invalid maoyan url", zap.String("url", def.URL), zap.Error(err))
		return nil
	}

	if cache != nil {
		if cached, ok := cache.Get(def.URL); ok {
			return cached
		}
	}

	entries, err := fetcher(ctx, spec)
	if err != nil {
		log.Debug("maoyan fetcher failed", zap.Error(err))
		return nil
	}
	if def.Limit > 0 && len(entries) > def.Limit {
		entries = entries[:def.Limit]
	}

	candidates := resolver.Resolve(ctx, def.ItemTypes, entries)

	if cache != nil {
		if err := cache.Set(def.URL, candidates); err != nil {
			log.Debug("failed writing maoyan cache", zap.Error(err))
		}
	}

	return candidates
}
