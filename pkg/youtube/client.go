package youtube

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// WatchURL is the prefix of a playable video link.
const WatchURL = "https://www.youtube.com/watch?v="

// Client is a thin wrapper around the YouTube Data API v3 search endpoint.
type Client struct {
	svc *ytapi.Service
}

// NewClient constructs a Client authenticated with an API key. Extra options
// (endpoint, HTTP client) are appended after the key.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	all := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := ytapi.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Search runs search.list with the snippet part and maps the items.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	call := c.svc.Search.List([]string{"snippet"}).Q(req.Query)
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}
	if req.Order != "" {
		call = call.Order(req.Order)
	}
	if req.Type != "" {
		call = call.Type(req.Type)
	}
	if req.VideoDuration != "" {
		call = call.VideoDuration(req.VideoDuration)
	}
	if req.ChannelID != "" {
		call = call.ChannelId(req.ChannelID)
	}
	if req.PublishedAfter != "" {
		call = call.PublishedAfter(req.PublishedAfter)
	}
	if req.PublishedBefore != "" {
		call = call.PublishedBefore(req.PublishedBefore)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("search.list failed: %w", err)
	}

	log.Debug().
		Str("query", req.Query).
		Int("items", len(resp.Items)).
		Msg("[YOUTUBE] search completed")

	out := &SearchResponse{Videos: make([]Video, 0, len(resp.Items))}
	if resp.PageInfo != nil {
		out.TotalResults = resp.PageInfo.TotalResults
	}
	for _, item := range resp.Items {
		out.Videos = append(out.Videos, mapItem(item))
	}
	return out, nil
}

// mapItem converts a search result, substituting placeholders for missing
// snippet fields.
func mapItem(item *ytapi.SearchResult) Video {
	v := Video{
		Title:        "No title",
		Description:  "No description",
		ChannelTitle: "Unknown channel",
	}

	var videoID string
	if item.Id != nil {
		videoID = item.Id.VideoId
		switch {
		case item.Id.VideoId != "":
			v.ID = item.Id.VideoId
		case item.Id.ChannelId != "":
			v.ID = item.Id.ChannelId
		default:
			v.ID = item.Id.PlaylistId
		}
	}
	v.VideoURL = WatchURL + videoID

	s := item.Snippet
	if s == nil {
		return v
	}
	if s.Title != "" {
		v.Title = s.Title
	}
	if s.Description != "" {
		v.Description = s.Description
	}
	if s.ChannelTitle != "" {
		v.ChannelTitle = s.ChannelTitle
	}
	v.ChannelID = s.ChannelId
	v.PublishedAt = s.PublishedAt
	if t := s.Thumbnails; t != nil {
		if t.Default != nil {
			v.Thumbnails.Default = t.Default.Url
		}
		if t.Medium != nil {
			v.Thumbnails.Medium = t.Medium.Url
		}
		if t.High != nil {
			v.Thumbnails.High = t.High.Url
		}
	}
	return v
}
