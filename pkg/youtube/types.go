package youtube

// Video is a normalized search hit. Channel and playlist hits reuse the same
// shape; VideoURL is only meaningful for videos.
type Video struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ChannelTitle string     `json:"channelTitle"`
	ChannelID    string     `json:"channelId"`
	PublishedAt  string     `json:"publishedAt"`
	Thumbnails   Thumbnails `json:"thumbnails"`
	VideoURL     string     `json:"videoUrl"`
}

// Thumbnails holds thumbnail URLs by size; empty when absent.
type Thumbnails struct {
	Default string `json:"default,omitempty"`
	Medium  string `json:"medium,omitempty"`
	High    string `json:"high,omitempty"`
}

// SearchRequest mirrors the supported search.list parameters. Empty fields
// are not sent.
type SearchRequest struct {
	Query           string
	MaxResults      int64
	Order           string
	VideoDuration   string
	Type            string
	ChannelID       string
	PublishedAfter  string
	PublishedBefore string
}

// SearchResponse is the mapped search.list result.
type SearchResponse struct {
	Videos       []Video `json:"videos"`
	TotalResults int64   `json:"totalResults"`
}
