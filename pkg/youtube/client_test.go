package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

const searchBody = `{
  "pageInfo": {"totalResults": 1234},
  "items": [
    {
      "id": {"kind": "youtube#video", "videoId": "abc123"},
      "snippet": {
        "title": "Lofi hip hop radio",
        "description": "beats to relax to",
        "channelTitle": "Lofi Girl",
        "channelId": "UC1",
        "publishedAt": "2024-01-02T03:04:05Z",
        "thumbnails": {"default": {"url": "https://i.ytimg.com/d.jpg"}, "high": {"url": "https://i.ytimg.com/h.jpg"}}
      }
    },
    {
      "id": {"kind": "youtube#channel", "channelId": "UC2"},
      "snippet": {}
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), "test-key",
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return c
}

func TestClient_Search(t *testing.T) {
	var got map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	})

	resp, err := c.Search(context.Background(), SearchRequest{
		Query:         "lofi",
		MaxResults:    5,
		Order:         "viewCount",
		Type:          "video",
		VideoDuration: "long",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"lofi"}, got["q"])
	assert.Equal(t, []string{"5"}, got["maxResults"])
	assert.Equal(t, []string{"viewCount"}, got["order"])
	assert.Equal(t, []string{"long"}, got["videoDuration"])
	assert.Empty(t, got["channelId"])

	assert.Equal(t, int64(1234), resp.TotalResults)
	require.Len(t, resp.Videos, 2)

	first := resp.Videos[0]
	assert.Equal(t, "abc123", first.ID)
	assert.Equal(t, "Lofi hip hop radio", first.Title)
	assert.Equal(t, "Lofi Girl", first.ChannelTitle)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", first.VideoURL)
	assert.Equal(t, "https://i.ytimg.com/h.jpg", first.Thumbnails.High)
	assert.Empty(t, first.Thumbnails.Medium)

	channel := resp.Videos[1]
	assert.Equal(t, "UC2", channel.ID)
	assert.Equal(t, "No title", channel.Title)
	assert.Equal(t, "No description", channel.Description)
	assert.Equal(t, "Unknown channel", channel.ChannelTitle)
}

func TestClient_SearchAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
	})

	_, err := c.Search(context.Background(), SearchRequest{Query: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.list failed")
}
