package models

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Prompt string `json:"prompt"`
}

// ToolInvocation records one tool call made by the agent while answering.
type ToolInvocation struct {
	Name       string `json:"name"`
	Arguments  string `json:"arguments"`
	DurationMs int64  `json:"durationMs"`
	Failed     bool   `json:"failed,omitempty"`
}

// ChatResponse is the agent's final answer.
type ChatResponse struct {
	Prompt    string           `json:"prompt"`
	Reply     string           `json:"reply"`
	Model     string           `json:"model"`
	Steps     int              `json:"steps"`
	ToolCalls []ToolInvocation `json:"toolCalls"`
}
