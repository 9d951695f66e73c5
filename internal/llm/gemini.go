// Package llm turns an article into short social-media copy via Gemini.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Marshal91/twitter-news-bot/internal/retry"
)

// Model order is a two-tier fallback: the cheaper model is tried only
// after the primary fails.
var modelTiers = []string{"gemini-1.5-flash", "gemini-1.5-flash-8b"}

type Client struct {
	client *genai.Client
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{client: client}, nil
}

func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// Summarize produces an engaging post body under 200 characters for the
// given article. excerpt and trendTerm may be empty. The error return
// covers both model tiers failing; callers fall back to a deterministic
// template.
func (c *Client) Summarize(ctx context.Context, title, excerpt, category, trendTerm string) (string, error) {
	prompt := buildPrompt(title, excerpt, category, trendTerm)

	var lastErr error
	for _, name := range modelTiers {
		model := c.client.GenerativeModel(name)

		var text string
		err := retry.WithRetry(ctx, retry.RetryConfig{MaxAttempts: 2, Delay: 2 * time.Second}, func() error {
			resp, err := model.GenerateContent(ctx, genai.Text(prompt))
			if err != nil {
				return fmt.Errorf("generate content: %w", err)
			}
			if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
				return fmt.Errorf("empty response from model %s", name)
			}
			text = fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
			return nil
		})
		if err != nil {
			slog.Warn("model tier failed", "model", name, "error", err)
			lastErr = err
			continue
		}

		return cleanResponse(text), nil
	}

	return "", fmt.Errorf("all model tiers failed: %w", lastErr)
}

func buildPrompt(title, excerpt, category, trendTerm string) string {
	var ctx strings.Builder
	ctx.WriteString("Title: " + title + "\n")
	if excerpt != "" {
		ctx.WriteString("Content: " + excerpt + "\n")
	}
	ctx.WriteString("Category: " + category + "\n")
	if trendTerm != "" {
		ctx.WriteString("Trending topic: " + trendTerm + "\n")
	}

	return fmt.Sprintf(`You are a witty social media manager creating engaging, specific tweets about current events.

Based on this news article, create an engaging Twitter post (under 200 characters to leave room for URL and hashtags):

%s
Requirements:
- Be specific about the actual content/news
- Make it engaging and conversational
- Don't use generic templates
- Focus on the key newsworthy element
- Use appropriate tone for %s
- Include relevant emojis if appropriate

Write ONLY the tweet text, no quotes or explanations:`, ctx.String(), category)
}

// cleanResponse strips the wrapping the model sometimes adds despite the
// prompt: surrounding quotes and markdown fences.
func cleanResponse(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return strings.TrimSpace(text)
}
