// Package tmdb is a thin facade over the TMDb REST API, scoped to the
// handful of operations the reconciliation engine consumes. It does not
// attempt to model the whole TMDb schema; callers that need richer
// metadata should extend MediaDetails/SeriesDetails rather than reaching
// for the raw response.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	curatordhttp "github.com/curatord/curatord/pkg/http"
	"github.com/curatord/curatord/pkg/logger"
	"go.uber.org/zap"
)

const ReleaseDateFormat = "2006-01-02"

// Credit is a cast/crew entry as returned under a details response's
// "credits" append.
type Credit struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	OriginalName string `json:"original_name"`
	Job          string `json:"job,omitempty"`
	Department   string `json:"department,omitempty"`
}

// MediaDetails is the subset of a movie details response the engine
// needs to populate MediaMetadata.
type MediaDetails struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	OriginalTitle       string   `json:"original_title"`
	ReleaseDate         string   `json:"release_date"`
	VoteAverage         float64  `json:"vote_average"`
	VoteCount           int      `json:"vote_count"`
	PosterPath          string   `json:"poster_path"`
	Genres              []Named  `json:"genres"`
	ProductionCountries []Named2 `json:"production_countries"`
	Credits             struct {
		Cast []Credit `json:"cast"`
		Crew []Credit `json:"crew"`
	} `json:"credits"`
}

// Named is a TMDb {id, name} pair (genres).
type Named struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Named2 is a TMDb {iso_3166_1, name} pair (production/origin countries).
type Named2 struct {
	ISO31661 string `json:"iso_3166_1"`
	Name     string `json:"name"`
}

// CreatedBy is a series' "created_by" entry, used as a director fallback
// when no crew member has job=Director.
type CreatedBy struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Season is one entry of a series' season list.
type Season struct {
	SeasonNumber int    `json:"season_number"`
	Name         string `json:"name"`
	AirDate      string `json:"air_date"`
	EpisodeCount int    `json:"episode_count"`
}

// SeriesDetails is the subset of a TV details response the engine needs.
type SeriesDetails struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	OriginalName  string      `json:"original_name"`
	FirstAirDate  string      `json:"first_air_date"`
	VoteAverage   float64     `json:"vote_average"`
	VoteCount     int         `json:"vote_count"`
	PosterPath    string      `json:"poster_path"`
	Genres        []Named     `json:"genres"`
	OriginCountry []string    `json:"origin_country"`
	CreatedBy     []CreatedBy `json:"created_by"`
	Seasons       []Season    `json:"seasons"`
	Credits       struct {
		Crew []Credit `json:"crew"`
	} `json:"credits"`
}

// CollectionDetails is a native TMDb franchise collection's parts list.
type CollectionDetails struct {
	ID    int `json:"id"`
	Parts []struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		ReleaseDate string `json:"release_date"`
	} `json:"parts"`
}

// SearchResult is one ranked hit from a title search.
type SearchResult struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	Popularity   float64 `json:"popularity"`
}

// FilmographyEntry is one credit from a person's combined credit list.
type FilmographyEntry struct {
	ID           int     `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	GenreIDs     []int   `json:"genre_ids"`
}

// ITMDb is the facade consumed by the reconciliation engine. Every
// operation corresponds 1:1 to an entry in the TMDb facade surface.
type ITMDb interface {
	GetMovieDetails(ctx context.Context, tmdbID int) (*MediaDetails, error)
	GetTVDetails(ctx context.Context, tmdbID int) (*SeriesDetails, error)
	GetCollectionDetails(ctx context.Context, tmdbCollectionID int) (*CollectionDetails, error)
	SearchMedia(ctx context.Context, title string, mediaType string) ([]SearchResult, error)
	ResolveIMDBToTMDB(ctx context.Context, imdbID string, mediaType string) (int, bool, error)
	GetPersonCombinedCredits(ctx context.Context, personID int) ([]FilmographyEntry, error)
}

type Client struct {
	httpClient curatordhttp.HTTPClient
	baseURL    string
	apiKey     string
}

func New(scheme, host, apiKey string, httpClient curatordhttp.HTTPClient) *Client {
	if httpClient == nil {
		httpClient = curatordhttp.NewRateLimitedHTTPClient()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    fmt.Sprintf("%s://%s/3", scheme, host),
		apiKey:     apiKey,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	log := logger.FromCtx(ctx)

	if query == nil {
		query = url.Values{}
	}
	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("tmdb request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("tmdb request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode >= 300 {
		return fmt.Errorf("tmdb request to %s returned status %d", path, res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) GetMovieDetails(ctx context.Context, tmdbID int) (*MediaDetails, error) {
	var det MediaDetails
	err := c.get(ctx, fmt.Sprintf("/movie/%d", tmdbID), url.Values{"append_to_response": {"credits"}}, &det)
	if err != nil {
		return nil, err
	}
	return &det, nil
}

func (c *Client) GetTVDetails(ctx context.Context, tmdbID int) (*SeriesDetails, error) {
	var det SeriesDetails
	err := c.get(ctx, fmt.Sprintf("/tv/%d", tmdbID), url.Values{"append_to_response": {"credits"}}, &det)
	if err != nil {
		return nil, err
	}
	return &det, nil
}

func (c *Client) GetCollectionDetails(ctx context.Context, tmdbCollectionID int) (*CollectionDetails, error) {
	var det CollectionDetails
	err := c.get(ctx, fmt.Sprintf("/collection/%d", tmdbCollectionID), nil, &det)
	if err != nil {
		return nil, err
	}
	return &det, nil
}

func (c *Client) SearchMedia(ctx context.Context, title string, mediaType string) ([]SearchResult, error) {
	path := "/search/movie"
	if mediaType == "Series" {
		path = "/search/tv"
	}

	var resp struct {
		Results []SearchResult `json:"results"`
	}
	if err := c.get(ctx, path, url.Values{"query": {title}}, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) ResolveIMDBToTMDB(ctx context.Context, imdbID string, mediaType string) (int, bool, error) {
	var resp struct {
		MovieResults []SearchResult `json:"movie_results"`
		TVResults    []SearchResult `json:"tv_results"`
	}
	if err := c.get(ctx, fmt.Sprintf("/find/%s", imdbID), url.Values{"external_source": {"imdb_id"}}, &resp); err != nil {
		return 0, false, err
	}

	results := resp.MovieResults
	if mediaType == "Series" {
		results = resp.TVResults
	}
	if len(results) == 0 {
		return 0, false, nil
	}
	return results[0].ID, true, nil
}

func (c *Client) GetPersonCombinedCredits(ctx context.Context, personID int) ([]FilmographyEntry, error) {
	var resp struct {
		Cast []FilmographyEntry `json:"cast"`
	}
	if err := c.get(ctx, fmt.Sprintf("/person/%d/combined_credits", personID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Cast, nil
}

// Director extracts the directing credit(s) from a movie's crew list, or
// a series' created_by list when no crew member has job=Director.
func Director(crew []Credit, createdBy []CreatedBy) []Credit {
	var directors []Credit
	for _, c := range crew {
		if c.Job == "Director" {
			directors = append(directors, c)
		}
	}
	if len(directors) > 0 {
		return directors
	}
	for _, c := range createdBy {
		directors = append(directors, Credit{ID: c.ID, Name: c.Name})
	}
	return directors
}

// ErrNotFound is returned when TMDb responds 404 for a lookup.
var ErrNotFound = fmt.Errorf("tmdb: not found")
