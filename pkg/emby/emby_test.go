package emby

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

func TestClientGetItems(t *testing.T) {
	t.Run("transport error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := httpmocks.NewMockHTTPClient(ctrl)
		mockHTTP.EXPECT().Do(gomock.Any()).Return(nil, fmt.Errorf("connection reset"))

		client := New("http", "emby.local:8096", "key", mockHTTP)
		_, err := client.GetItems(context.Background(), []string{"lib1"}, "", nil)
		assert.Error(t, err)
	})

	t.Run("success decodes provider ids and cast", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := httpmocks.NewMockHTTPClient(ctrl)
		body := `{
			"Items": [
				{
					"Id": "item1",
					"Name": "Die Hard",
					"Type": "Movie",
					"ProviderIds": {"Tmdb": "562"},
					"People": [{"Id": "p1", "Name": "Bruce Willis", "Type": "Actor"}]
				}
			]
		}`
		mockHTTP.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(body)),
		}, nil)

		client := New("http", "emby.local:8096", "key", mockHTTP)
		items, err := client.GetItems(context.Background(), []string{"lib1"}, "Movie", []string{"ProviderIds"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "562", items[0].ProviderIds["Tmdb"])
		require.Len(t, items[0].People, 1)
		assert.Equal(t, "Bruce Willis", items[0].People[0].Name)
	})

	t.Run("non-2xx status returns an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockHTTP := httpmocks.NewMockHTTPClient(ctrl)
		mockHTTP.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusUnauthorized,
			Body:       io.NopCloser(bytes.NewBufferString(`{"error":"unauthorized"}`)),
		}, nil)

		client := New("http", "emby.local:8096", "key", mockHTTP)
		_, err := client.GetItems(context.Background(), nil, "", nil)
		assert.Error(t, err)
	})
}

func TestClientCreateOrUpdateCollectionReportsOnlyPresentTMDBIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := httpmocks.NewMockHTTPClient(ctrl)
	gomock.InOrder(
		mockHTTP.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(`{"Id": "col1"}`)),
		}, nil),
		mockHTTP.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusOK,
			Body: io.NopCloser(bytes.NewBufferString(`{
				"Items": [{"Id": "item1", "ProviderIds": {"Tmdb": "562"}}]
			}`)),
		}, nil),
	)

	client := New("http", "emby.local:8096", "key", mockHTTP)
	collectionID, present, err := client.CreateOrUpdateCollection(context.Background(), "Die Hard Collection", []string{"562", "1726"}, []string{"lib1"}, []string{"Movie"})
	require.NoError(t, err)
	assert.Equal(t, "col1", collectionID)
	assert.Equal(t, []string{"562"}, present)
}

func TestClientUpdatePersonSendsNameBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := httpmocks.NewMockHTTPClient(ctrl)
	mockHTTP.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, req.Method)
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"Name":"Bruce Willis"}`, string(body))
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewBuffer(nil))}, nil
	})

	client := New("http", "emby.local:8096", "key", mockHTTP)
	err := client.UpdatePerson(context.Background(), "p1", "Bruce Willis")
	require.NoError(t, err)
}
