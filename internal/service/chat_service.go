package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/GTDGit/multitool_api/internal/models"
	"github.com/GTDGit/multitool_api/internal/utils"
	"github.com/GTDGit/multitool_api/pkg/openrouter"
)

// SystemPrompt frames the assistant and its tools.
const SystemPrompt = `You are a helpful AI assistant with specialized tools for product search and YouTube/music discovery.

**Capabilities:**
- 🛍️ Search products by keywords, category, price, availability
- 🎵 Find music videos, songs, playlists on YouTube (use YouTube search for ALL music queries)
- 📺 Search YouTube videos, channels, tutorials, reviews

**Guidelines:**
- Use appropriate tools for searches (search_products, search_youtube)
- For music requests, always use YouTube search
- Present results clearly with relevant details
- Be conversational, helpful, and concise
- Suggest alternatives if searches return no results`

// ChatCompleter is the LLM gateway boundary.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openrouter.ChatRequest) (*openrouter.ChatResponse, error)
}

// ChatOptions tunes the completion requests.
type ChatOptions struct {
	Model       string
	Temperature float64
	MaxTokens   int
	MaxSteps    int
}

// ChatService runs the tool-calling agent loop.
type ChatService struct {
	llm   ChatCompleter
	tools *Toolbox
	opts  ChatOptions
}

// NewChatService constructs a ChatService. A nil llm leaves chat disabled.
func NewChatService(llm ChatCompleter, tools *Toolbox, opts ChatOptions) *ChatService {
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = 5
	}
	return &ChatService{llm: llm, tools: tools, opts: opts}
}

// Chat answers prompt. Each step sends the conversation to the model; tool
// calls it requests are executed and their output appended, until the model
// replies without tool calls. When the step budget runs out a last request is
// made without tools so the model must answer with what it has.
func (s *ChatService) Chat(ctx context.Context, prompt string) (*models.ChatResponse, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, utils.ErrPromptRequired
	}
	if s.llm == nil {
		return nil, utils.ErrLLMNotConfigured
	}

	messages := []openrouter.Message{
		{Role: openrouter.RoleSystem, Content: SystemPrompt},
		{Role: openrouter.RoleUser, Content: prompt},
	}
	out := &models.ChatResponse{Prompt: prompt, Model: s.opts.Model, ToolCalls: []models.ToolInvocation{}}

	for step := 1; step <= s.opts.MaxSteps; step++ {
		out.Steps = step
		msg, err := s.complete(ctx, messages, true)
		if err != nil {
			return nil, err
		}
		if len(msg.ToolCalls) == 0 {
			out.Reply = msg.Content
			return out, nil
		}

		messages = append(messages, *msg)
		for _, call := range msg.ToolCalls {
			result, inv := s.runTool(ctx, call)
			out.ToolCalls = append(out.ToolCalls, inv)
			messages = append(messages, openrouter.Message{
				Role:       openrouter.RoleTool,
				ToolCallID: call.ID,
				Name:       call.Function.Name,
				Content:    result,
			})
		}
	}

	log.Warn().Int("max_steps", s.opts.MaxSteps).Msg("agent step budget exhausted, forcing final answer")
	msg, err := s.complete(ctx, messages, false)
	if err != nil {
		return nil, err
	}
	out.Steps++
	out.Reply = msg.Content
	return out, nil
}

func (s *ChatService) complete(ctx context.Context, messages []openrouter.Message, withTools bool) (*openrouter.Message, error) {
	req := openrouter.ChatRequest{
		Model:       s.opts.Model,
		Messages:    messages,
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	}
	if withTools {
		req.Tools = s.tools.Definitions()
	}

	resp, err := s.llm.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrLLMUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", utils.ErrLLMUnavailable)
	}
	s.logUsage(resp)
	return &resp.Choices[0].Message, nil
}

// runTool executes one tool call. Failures are reported back to the model as
// text so it can recover or explain.
func (s *ChatService) runTool(ctx context.Context, call openrouter.ToolCall) (string, models.ToolInvocation) {
	start := time.Now()
	log.Info().Str("tool", call.Function.Name).Str("arguments", call.Function.Arguments).Msg("tool called")

	result, err := s.tools.Execute(ctx, call.Function.Name, call.Function.Arguments)
	inv := models.ToolInvocation{
		Name:       call.Function.Name,
		Arguments:  call.Function.Arguments,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		log.Error().Err(err).Str("tool", call.Function.Name).Msg("tool call failed")
		inv.Failed = true
		return "Error: " + err.Error(), inv
	}
	return result, inv
}

func (s *ChatService) logUsage(resp *openrouter.ChatResponse) {
	ev := log.Debug().Str("model", resp.Model).Str("finish_reason", resp.Choices[0].FinishReason)
	if resp.Usage != nil {
		ev = ev.Int("total_tokens", resp.Usage.TotalTokens)
	}
	ev.Msg("completion received")
}
