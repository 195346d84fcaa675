// Package emby is a thin facade over a Jellyfin/Emby-compatible media
// server, scoped to the operations the reconciliation engine consumes.
package emby

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	curatordhttp "github.com/curatord/curatord/pkg/http"
	"github.com/curatord/curatord/pkg/logger"
	"go.uber.org/zap"
)

// Library is one entry from get_libraries.
type Library struct {
	ID             string `json:"Id"`
	Name           string `json:"Name"`
	CollectionType string `json:"CollectionType"`
}

// Person is a cast/crew credit embedded on an Item.
type Person struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
	Role string `json:"Role,omitempty"`
	Type string `json:"Type"`
}

// ProviderIDs carries the external identifiers the server knows about an
// item, keyed the way Emby names them ("Tmdb", "Imdb").
type ProviderIDs map[string]string

// Item is the subset of a server library item the engine consumes.
type Item struct {
	ID           string      `json:"Id"`
	Name         string      `json:"Name"`
	Type         string      `json:"Type"`
	ProviderIds  ProviderIDs `json:"ProviderIds"`
	People       []Person    `json:"People"`
	DateModified string      `json:"DateModified"`
	DateCreated  string      `json:"DateCreated"`
	ParentID     string      `json:"ParentId"`
}

// LibraryRoot identifies which top-level library an item lives under.
type LibraryRoot struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
}

// IEmby is the facade consumed by the reconciliation engine.
type IEmby interface {
	GetLibraries(ctx context.Context) ([]Library, error)
	GetItems(ctx context.Context, libraryIDs []string, mediaTypeFilter string, fields []string) ([]Item, error)
	GetItem(ctx context.Context, id string) (*Item, error)
	GetItemCount(ctx context.Context, parentID string, itemType string) (int, error)
	CreateOrUpdateCollection(ctx context.Context, name string, tmdbIDs []string, libraryIDs []string, itemTypes []string) (collectionID string, tmdbIDsPresent []string, err error)
	AppendItemToCollection(ctx context.Context, collectionID string, itemID string) error
	UpdatePerson(ctx context.Context, personID string, name string) error
	GetLibraryRootForItem(ctx context.Context, itemID string) (*LibraryRoot, error)
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
		baseURL:    fmt.Sprintf("%s://%s", scheme, host),
		apiKey:     apiKey,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	log := logger.FromCtx(ctx)

	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("emby request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("emby request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return fmt.Errorf("emby request to %s returned status %d", path, res.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) GetLibraries(ctx context.Context) ([]Library, error) {
	var libs []Library
	if err := c.do(ctx, http.MethodGet, "/Library/VirtualFolders", nil, nil, &libs); err != nil {
		return nil, err
	}
	return libs, nil
}

func (c *Client) GetItems(ctx context.Context, libraryIDs []string, mediaTypeFilter string, fields []string) ([]Item, error) {
	q := url.Values{}
	if len(libraryIDs) > 0 {
		q.Set("ParentId", strings.Join(libraryIDs, ","))
	}
	if mediaTypeFilter != "" {
		q.Set("IncludeItemTypes", mediaTypeFilter)
	}
	if len(fields) > 0 {
		q.Set("Fields", strings.Join(fields, ","))
	}
	q.Set("Recursive", "true")

	var resp struct {
		Items []Item `json:"Items"`
	}
	if err := c.do(ctx, http.MethodGet, "/Items", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) GetItem(ctx context.Context, id string) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodGet, "/Items/"+id, nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) GetItemCount(ctx context.Context, parentID string, itemType string) (int, error) {
	q := url.Values{"ParentId": {parentID}, "IncludeItemTypes": {itemType}, "Recursive": {"true"}}
	var resp struct {
		TotalRecordCount int `json:"TotalRecordCount"`
	}
	if err := c.do(ctx, http.MethodGet, "/Items", q, nil, &resp); err != nil {
		return 0, err
	}
	return resp.TotalRecordCount, nil
}

func (c *Client) CreateOrUpdateCollection(ctx context.Context, name string, tmdbIDs []string, libraryIDs []string, itemTypes []string) (string, []string, error) {
	q := url.Values{"Name": {name}}
	if len(libraryIDs) > 0 {
		q.Set("ParentId", libraryIDs[0])
	}

	var resp struct {
		ID string `json:"Id"`
	}
	if err := c.do(ctx, http.MethodPost, "/Collections", q, nil, &resp); err != nil {
		return "", nil, err
	}

	existing, err := c.GetItems(ctx, []string{resp.ID}, "", []string{"ProviderIds"})
	if err != nil {
		return resp.ID, nil, err
	}

	present := make([]string, 0, len(tmdbIDs))
	have := make(map[string]bool, len(existing))
	for _, it := range existing {
		if tmdb, ok := it.ProviderIds["Tmdb"]; ok {
			have[tmdb] = true
		}
	}
	for _, id := range tmdbIDs {
		if have[id] {
			present = append(present, id)
		}
	}

	return resp.ID, present, nil
}

func (c *Client) AppendItemToCollection(ctx context.Context, collectionID string, itemID string) error {
	q := url.Values{"Ids": {itemID}}
	return c.do(ctx, http.MethodPost, "/Collections/"+collectionID+"/Items", q, nil, nil)
}

func (c *Client) UpdatePerson(ctx context.Context, personID string, name string) error {
	body := map[string]string{"Name": name}
	return c.do(ctx, http.MethodPost, "/Persons/"+personID, nil, body, nil)
}

func (c *Client) GetLibraryRootForItem(ctx context.Context, itemID string) (*LibraryRoot, error) {
	var root LibraryRoot
	if err := c.do(ctx, http.MethodGet, "/Items/"+itemID+"/Ancestors", nil, nil, &root); err != nil {
		return nil, err
	}
	return &root, nil
}
