package utils

import "errors"

// Common application errors used across services.
var (
	ErrStoreUnavailable     = errors.New("STORE_UNAVAILABLE")
	ErrPromptRequired       = errors.New("PROMPT_REQUIRED")
	ErrQueryRequired        = errors.New("QUERY_REQUIRED")
	ErrLLMNotConfigured     = errors.New("LLM_NOT_CONFIGURED")
	ErrLLMUnavailable       = errors.New("LLM_UNAVAILABLE")
	ErrYouTubeNotConfigured = errors.New("YOUTUBE_NOT_CONFIGURED")
	ErrYouTubeUnavailable   = errors.New("YOUTUBE_UNAVAILABLE")
	ErrUnknownTool          = errors.New("UNKNOWN_TOOL")
)
