package listimport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	httpmocks "github.com/curatord/curatord/pkg/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sampleFeed = `<?xml version="1.0"?>
<rss><channel>
<item><title>1. The Matrix (1999)</title><link>https://example.com/tt0133093</link><guid>tmdb://603</guid></item>
<item><title>2. 某剧 第3季</title><link>https://example.com/tt9999999</link><guid>guid-2</guid></item>
<item><title>3. Untitled</title><link>https://example.com/unmatched</link><guid>guid-3</guid></item>
</channel></rss>`

func TestFetchRSSParsesAndNormalizesTitles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := httpmocks.NewMockHTTPClient(ctrl)
	mockHTTP.EXPECT().Do(gomock.Any()).Return(&http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(sampleFeed)),
	}, nil)

	entries := FetchRSS(context.Background(), mockHTTP, "https://example.com/feed.xml", 0)
	require.Len(t, entries, 3)
	assert.Equal(t, "The Matrix", entries[0].Title)
	assert.Equal(t, "603", entries[0].TMDBID)
	assert.Equal(t, "tt9999999", entries[1].IMDBID)
	assert.Equal(t, "某剧 第3季", entries[1].Title)
}

func TestFetchRSSHonorsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := httpmocks.NewMockHTTPClient(ctrl)
	mockHTTP.EXPECT().Do(gomock.Any()).Return(&http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(sampleFeed)),
	}, nil)

	entries := FetchRSS(context.Background(), mockHTTP, "https://example.com/feed.xml", 2)
	assert.Len(t, entries, 2)
}

func TestFetchRSSReturnsNilOnTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := httpmocks.NewMockHTTPClient(ctrl)
	mockHTTP.EXPECT().Do(gomock.Any()).Return(nil, assertError{})

	entries := FetchRSS(context.Background(), mockHTTP, "https://example.com/feed.xml", 0)
	assert.Nil(t, entries)
}

func TestFetchRSSReturnsNilOnMalformedXML(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := httpmocks.NewMockHTTPClient(ctrl)
	mockHTTP.EXPECT().Do(gomock.Any()).Return(&http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("not xml at all <<<")),
	}, nil)

	entries := FetchRSS(context.Background(), mockHTTP, "https://example.com/feed.xml", 0)
	assert.Nil(t, entries)
}

func TestNormalizeTitle(t *testing.T) {
	cases := map[string]string{
		"1. The Matrix (1999)": "The Matrix",
		"  12.  Some Movie   ": "Some Movie",
		"No Prefix Or Suffix":  "No Prefix Or Suffix",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeTitle(in))
	}
}

func TestExtractSeason(t *testing.T) {
	n, ok := ExtractSeason("某剧 第3季")
	require.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = ExtractSeason("No Season Marker")
	assert.False(t, ok)
}

type assertError struct{}

func (assertError) Error() string { return "transport failure" }
