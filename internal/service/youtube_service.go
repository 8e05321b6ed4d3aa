package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/GTDGit/multitool_api/internal/utils"
	"github.com/GTDGit/multitool_api/pkg/youtube"
)

// NoVideosMessage is returned to the agent when a YouTube search matches nothing.
const NoVideosMessage = "No videos found matching your search query. Try different keywords or adjust your filters."

var (
	youtubeOrders    = []string{"date", "rating", "relevance", "title", "videoCount", "viewCount"}
	youtubeDurations = []string{"any", "short", "medium", "long"}
	youtubeTypes     = []string{"video", "channel", "playlist"}
)

// YouTubeSearcher is the YouTube Data API boundary.
type YouTubeSearcher interface {
	Search(ctx context.Context, req youtube.SearchRequest) (*youtube.SearchResponse, error)
}

// YouTubeService validates search options and calls the YouTube Data API.
type YouTubeService struct {
	client YouTubeSearcher
}

// NewYouTubeService constructs a YouTubeService. A nil client leaves the
// service unconfigured; every search then fails with ErrYouTubeNotConfigured.
func NewYouTubeService(client YouTubeSearcher) *YouTubeService {
	return &YouTubeService{client: client}
}

// YouTubeQuery is the structured argument object of the search_youtube tool.
type YouTubeQuery struct {
	Query           string   `json:"query"`
	MaxResults      LooseInt `json:"maxResults,omitempty"`
	Order           string   `json:"order,omitempty"`
	VideoDuration   string   `json:"videoDuration,omitempty"`
	Type            string   `json:"type,omitempty"`
	ChannelID       string   `json:"channelId,omitempty"`
	PublishedAfter  string   `json:"publishedAfter,omitempty"`
	PublishedBefore string   `json:"publishedBefore,omitempty"`
}

// request validates q and fills defaults: 10 results, relevance order, video type.
func (q YouTubeQuery) request() (youtube.SearchRequest, error) {
	query := strings.TrimSpace(q.Query)
	if query == "" {
		return youtube.SearchRequest{}, fmt.Errorf("%w: search query is required", utils.ErrQueryRequired)
	}
	req := youtube.SearchRequest{
		Query:           query,
		MaxResults:      10,
		Order:           "relevance",
		Type:            "video",
		VideoDuration:   q.VideoDuration,
		ChannelID:       q.ChannelID,
		PublishedAfter:  q.PublishedAfter,
		PublishedBefore: q.PublishedBefore,
	}
	if q.MaxResults > 0 {
		req.MaxResults = int64(q.MaxResults)
	}
	if q.Order != "" {
		req.Order = q.Order
	}
	if q.Type != "" {
		req.Type = q.Type
	}

	if !oneOf(req.Order, youtubeOrders) {
		return req, fmt.Errorf("invalid order %q", req.Order)
	}
	if !oneOf(req.Type, youtubeTypes) {
		return req, fmt.Errorf("invalid type %q", req.Type)
	}
	if req.VideoDuration != "" && !oneOf(req.VideoDuration, youtubeDurations) {
		return req, fmt.Errorf("invalid videoDuration %q", req.VideoDuration)
	}
	for _, ts := range []string{req.PublishedAfter, req.PublishedBefore} {
		if ts == "" {
			continue
		}
		if _, err := time.Parse(time.RFC3339, ts); err != nil {
			return req, fmt.Errorf("invalid timestamp %q: must be RFC 3339", ts)
		}
	}
	return req, nil
}

// Search validates q and runs the search.
func (s *YouTubeService) Search(ctx context.Context, q YouTubeQuery) (*youtube.SearchResponse, error) {
	if s.client == nil {
		return nil, utils.ErrYouTubeNotConfigured
	}
	req, err := q.request()
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Search(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("query", req.Query).Msg("YouTube API error")
		return nil, fmt.Errorf("%w: %w", utils.ErrYouTubeUnavailable, err)
	}
	return resp, nil
}

// SearchForTool runs the tool variant of the search. The result is always
// text for the model: errors are reported as their message, not returned.
// Tool callers default to 5 results, capped at 20.
func (s *YouTubeService) SearchForTool(ctx context.Context, q YouTubeQuery) string {
	switch {
	case q.MaxResults <= 0:
		q.MaxResults = ToolDefaultLimit
	case q.MaxResults > ToolMaxLimit:
		q.MaxResults = ToolMaxLimit
	}

	start := time.Now()
	resp, err := s.Search(ctx, q)
	if err != nil {
		return toolErrorText(err)
	}

	log.Info().
		Str("query", q.Query).
		Int("results", len(resp.Videos)).
		Dur("duration", time.Since(start)).
		Msg("search_youtube tool completed")

	return RenderVideos(resp.Videos)
}

// toolErrorText turns a Search error into a sentence for the model.
// Sentinel codes stay in the logs and HTTP envelopes.
func toolErrorText(err error) string {
	switch {
	case errors.Is(err, utils.ErrYouTubeNotConfigured):
		return "YouTube search is not available: no YouTube API key is configured."
	case errors.Is(err, utils.ErrQueryRequired):
		return "YouTube search needs a non-empty search query."
	case errors.Is(err, utils.ErrYouTubeUnavailable):
		cause := strings.TrimPrefix(err.Error(), utils.ErrYouTubeUnavailable.Error()+": ")
		return "YouTube search failed: " + cause
	default:
		return "YouTube search rejected the request: " + err.Error()
	}
}

// RenderVideos formats videos as readable paragraphs, or the fixed fallback
// sentence when there are none.
func RenderVideos(videos []youtube.Video) string {
	if len(videos) == 0 {
		return NoVideosMessage
	}
	parts := make([]string, 0, len(videos))
	for _, v := range videos {
		parts = append(parts, fmt.Sprintf("**%s**\nChannel: %s | Published: %s\n%s\n🔗 Watch: %s",
			v.Title, v.ChannelTitle, formatPublished(v.PublishedAt), truncateRunes(v.Description, 120), v.VideoURL))
	}
	return strings.Join(parts, resultSeparator)
}

// formatPublished renders an RFC 3339 timestamp as M/D/YYYY, or returns the
// input unchanged when it does not parse.
func formatPublished(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("1/2/2006")
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
