package sqlite

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/curatord/curatord/pkg/storage"
	"github.com/curatord/curatord/pkg/storage/sqlite/schema/gen/model"
	"github.com/go-jet/jet/v2/qrm"
)

// isNoRows reports whether err is go-jet's not-found sentinel, so
// per-concern Get methods can translate it into storage.ErrNotFound.
func isNoRows(err error) bool {
	return errors.Is(err, qrm.ErrNoRows)
}

func marshalJSON(v any) string {
	if v == nil {
		return "[]"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func unmarshalJSON[T any](raw string, dst *T) {
	if raw == "" {
		return
	}
	_ = json.Unmarshal([]byte(raw), dst)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timestampFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := parseTime(*s)
	return &t
}

func mediaMetadataFromModel(row model.MediaMetadata) storage.MediaMetadata {
	m := storage.MediaMetadata{
		TMDBID:        row.TMDBID,
		ItemType:      storage.ItemType(row.ItemType),
		Title:         row.Title,
		OriginalTitle: row.OriginalTitle,
		ReleaseYear:   int(row.ReleaseYear),
		ReleaseDate:   parseTimePtr(row.ReleaseDate),
		DateAdded:     parseTime(row.DateAdded),
		Rating:        row.Rating,
		LastSyncedAt:  parseTime(row.LastSyncedAt),
	}

	unmarshalJSON(row.Genres, &m.Genres)
	unmarshalJSON(row.Actors, &m.Actors)
	unmarshalJSON(row.Directors, &m.Directors)
	unmarshalJSON(row.Studios, &m.Studios)
	unmarshalJSON(row.Countries, &m.Countries)
	unmarshalJSON(row.Tags, &m.Tags)

	return m
}
