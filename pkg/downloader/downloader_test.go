package downloader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	httpmocks "github.com/curatord/curatord/pkg/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientSubscribeMovie(t *testing.T) {
	t.Run("transport error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := httpmocks.NewMockHTTPClient(ctrl)
		mockHTTP.EXPECT().Do(gomock.Any()).Return(nil, fmt.Errorf("connection refused"))

		client := New("http", "moviepilot.local:3000", "key", mockHTTP)
		_, err := client.SubscribeMovie(context.Background(), "Die Hard", "562")
		assert.Error(t, err)
	})

	t.Run("2xx reports accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := httpmocks.NewMockHTTPClient(ctrl)
		mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/api/v1/subscribe/movie", req.URL.Path)
			return &http.Response{StatusCode: http.StatusCreated, Body: io.NopCloser(bytes.NewBuffer(nil))}, nil
		})

		client := New("http", "moviepilot.local:3000", "key", mockHTTP)
		accepted, err := client.SubscribeMovie(context.Background(), "Die Hard", "562")
		require.NoError(t, err)
		assert.True(t, accepted)
	})

	t.Run("non-2xx reports not accepted without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := httpmocks.NewMockHTTPClient(ctrl)
		mockHTTP.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusConflict,
			Body:       io.NopCloser(bytes.NewBuffer(nil)),
		}, nil)

		client := New("http", "moviepilot.local:3000", "key", mockHTTP)
		accepted, err := client.SubscribeMovie(context.Background(), "Die Hard", "562")
		require.NoError(t, err)
		assert.False(t, accepted)
	})
}

func TestClientSubscribeSeriesWithSeasonNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	season := 3
	mockHTTP := httpmocks.NewMockHTTPClient(ctrl)
	mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"season_number":3`)
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewBuffer(nil))}, nil
	})

	client := New("http", "moviepilot.local:3000", "key", mockHTTP)
	accepted, err := client.SubscribeSeries(context.Background(), "Breaking Bad", "1396", &season)
	require.NoError(t, err)
	assert.True(t, accepted)
}

func TestClientSubscribeSeriesWithoutSeasonNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := httpmocks.NewMockHTTPClient(ctrl)
	mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.NotContains(t, string(body), "season_number")
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewBuffer(nil))}, nil
	})

	client := New("http", "moviepilot.local:3000", "key", mockHTTP)
	accepted, err := client.SubscribeSeries(context.Background(), "Breaking Bad", "1396", nil)
	require.NoError(t, err)
	assert.True(t, accepted)
}
