// Package listimport resolves an external ranked list (an RSS-like feed
// URL or a maoyan://-scheme platform reference) down to a deduplicated
// set of TMDb candidates the Collection Reconciler can classify.
package listimport

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/curatord/curatord/pkg/storage"
)

// Definition is a parsed `list`-type collection definition.
type Definition struct {
	ItemTypes []storage.ItemType `json:"item_type"`
	URL       string             `json:"url"`
	Limit     int                `json:"limit"`
}

// ParseDefinition decodes a list collection's opaque definition blob.
func ParseDefinition(raw []byte) (Definition, error) {
	var def Definition
	if err := json.Unmarshal(raw, &def); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Candidate is one resolved TMDb hit, deduped by "{type}-{id}".
type Candidate struct {
	TMDBID   string
	ItemType storage.ItemType
}

func (c Candidate) dedupKey() string {
	return fmt.Sprintf("%s-%s", c.ItemType, c.TMDBID)
}

// IsMaoyan reports whether a definition's URL uses the maoyan:// scheme.
func (d Definition) IsMaoyan() bool {
	u, err := url.Parse(d.URL)
	return err == nil && u.Scheme == "maoyan"
}

// MaoyanSpec is a parsed maoyan://<type-spec>[-<platform>] reference.
type MaoyanSpec struct {
	Types    []string
	Platform string
}

// defaultPlatform is used when a maoyan URL carries no "-<platform>"
// suffix, matching the grammar's "absence => platform=all" rule.
const defaultPlatform = "all"

var knownPlatforms = map[string]bool{"tencent": true, "iqiyi": true, "youku": true, "mango": true}

// ParseMaoyanURL parses `maoyan://<type-spec>[-<platform>]`.
func ParseMaoyanURL(raw string) (MaoyanSpec, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return MaoyanSpec{}, err
	}
	if u.Scheme != "maoyan" {
		return MaoyanSpec{}, fmt.Errorf("listimport: not a maoyan url: %s", raw)
	}

	body := u.Opaque
	if body == "" {
		body = u.Host
	}

	platform := defaultPlatform
	typeSpec := body
	if idx := strings.LastIndex(body, "-"); idx != -1 {
		candidate := body[idx+1:]
		if knownPlatforms[candidate] {
			platform = candidate
			typeSpec = body[:idx]
		}
	}

	types := strings.Split(typeSpec, ",")
	for i := range types {
		types[i] = strings.TrimSpace(types[i])
	}

	return MaoyanSpec{Types: types, Platform: platform}, nil
}
