package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/GTDGit/multitool_api/internal/utils"
	"github.com/GTDGit/multitool_api/pkg/openrouter"
)

// Tool names exposed to the model.
const (
	ToolSearchProducts = "search_products"
	ToolSearchYouTube  = "search_youtube"
)

const searchProductsSchema = `{
  "type": "object",
  "properties": {
    "keyword": {"type": "string", "description": "Search keywords to match against product name, description, or tags (e.g., 'wireless earbuds', 'gaming laptop', 'organic coffee')"},
    "category": {"type": "string", "description": "Filter by main product category. Valid options: 'electronics', 'fashion', 'home', 'beauty', 'books', 'sports', 'toys', 'grocery', 'automotive', 'health'"},
    "subCategory": {"type": "string", "description": "Filter by specific sub-category within the main category (e.g., 'Headphones', 'Smartphone', 'T-Shirt', 'Jeans', 'Fiction', 'Sci-Fi')"},
    "minPrice": {"type": "number", "description": "Minimum price threshold in USD (e.g., 50 for products $50 and above)"},
    "maxPrice": {"type": "number", "description": "Maximum price threshold in USD (e.g., 200 for products $200 and below)"},
    "inStock": {"type": "boolean", "description": "Filter by availability - set to true to show only in-stock products, false for out-of-stock, or omit to show all"},
    "limit": {"type": "number", "default": 5, "description": "Maximum number of products to return (1-20, defaults to 5)"}
  },
  "required": ["keyword"]
}`

const searchYouTubeSchema = `{
  "type": "object",
  "properties": {
    "query": {"type": "string", "description": "Search query to find videos (e.g., 'lofi hip hop beats', 'Python pandas tutorial', 'iPhone 15 review', 'funny cat videos')"},
    "maxResults": {"type": "number", "default": 5, "description": "Maximum number of video results to return (1-20, defaults to 5)"},
    "order": {"type": "string", "enum": ["date", "rating", "relevance", "title", "videoCount", "viewCount"], "description": "Sort order: 'relevance' (best matches), 'date' (newest first), 'viewCount' (most popular), 'rating' (highest rated)"},
    "videoDuration": {"type": "string", "enum": ["any", "short", "medium", "long"], "description": "Filter by video length: 'short' (under 4 min), 'medium' (4-20 min), 'long' (over 20 min), 'any' (no filter)"},
    "type": {"type": "string", "enum": ["video", "channel", "playlist"], "default": "video", "description": "Type of result to return: 'video' (individual videos), 'channel' (YouTube channels), 'playlist' (video playlists)"}
  },
  "required": ["query"]
}`

// Toolbox dispatches model tool calls to the product and YouTube services.
type Toolbox struct {
	products *ProductService
	youtube  *YouTubeService
}

// NewToolbox constructs a Toolbox.
func NewToolbox(products *ProductService, youtube *YouTubeService) *Toolbox {
	return &Toolbox{products: products, youtube: youtube}
}

// Definitions returns the tool declarations sent with every completion request.
func (t *Toolbox) Definitions() []openrouter.Tool {
	return []openrouter.Tool{
		{
			Type: "function",
			Function: openrouter.FunctionSpec{
				Name:        ToolSearchProducts,
				Description: "Search and filter products from the online store inventory. Use this tool when users ask about products, prices, availability, or want recommendations. Returns detailed product information including name, price, category, brand, ratings, and availability. Supports filtering by keywords, categories, price ranges, and stock status.",
				Parameters:  json.RawMessage(searchProductsSchema),
			},
		},
		{
			Type: "function",
			Function: openrouter.FunctionSpec{
				Name:        ToolSearchYouTube,
				Description: "Search YouTube for videos, music, tutorials, reviews, or any video content. Use this tool when users ask to find, search, or recommend YouTube videos OR music (music videos, songs, albums, playlists, live performances). Returns video title, channel, description, publish date, and direct video links. Supports advanced filtering by sort order, video duration, and content type.",
				Parameters:  json.RawMessage(searchYouTubeSchema),
			},
		},
	}
}

// Execute runs the named tool with JSON-encoded arguments.
func (t *Toolbox) Execute(ctx context.Context, name, arguments string) (string, error) {
	if arguments == "" {
		arguments = "{}"
	}
	switch name {
	case ToolSearchProducts:
		var q ToolQuery
		if err := json.Unmarshal([]byte(arguments), &q); err != nil {
			return "", fmt.Errorf("invalid %s arguments: %w", name, err)
		}
		return t.products.SearchForTool(ctx, q)
	case ToolSearchYouTube:
		var q YouTubeQuery
		if err := json.Unmarshal([]byte(arguments), &q); err != nil {
			return "", fmt.Errorf("invalid %s arguments: %w", name, err)
		}
		return t.youtube.SearchForTool(ctx, q), nil
	default:
		return "", fmt.Errorf("%w: %s", utils.ErrUnknownTool, name)
	}
}
