// Package aiclient adapts the OpenAI API to the image and vision provider interfaces.
package aiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"statstory-backend-go/internal/config"
	"statstory-backend-go/internal/core"
	"statstory-backend-go/internal/imagegen"
	"statstory-backend-go/internal/vision"
)

// Client implements imagegen.ImageProvider and vision.Provider.
type Client struct {
	api     *openai.Client
	editAPI *openai.Client
}

var (
	_ imagegen.ImageProvider = (*Client)(nil)
	_ vision.Provider        = (*Client)(nil)
)

// NewClient builds an OpenAI client from the application config. Edits run
// under IMAGE_EDIT_TIMEOUT, every other call under PROVIDER_TIMEOUT. A zero
// timeout keeps httpClient's own.
func NewClient(cfg *config.Config, httpClient *http.Client) *Client {
	return &Client{
		api:     newAPI(cfg, withTimeout(httpClient, cfg.ProviderTimeout)),
		editAPI: newAPI(cfg, withTimeout(httpClient, cfg.ImageEditTimeout)),
	}
}

func newAPI(cfg *config.Config, httpClient *http.Client) *openai.Client {
	oc := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		oc.BaseURL = cfg.OpenAIBaseURL
	}
	oc.HTTPClient = httpClient
	return openai.NewClientWithConfig(oc)
}

func withTimeout(base *http.Client, d time.Duration) *http.Client {
	if base == nil {
		base = http.DefaultClient
	}
	if d <= 0 {
		return base
	}
	c := *base
	c.Timeout = d
	return &c
}

func (c *Client) GenerateImage(ctx context.Context, req imagegen.ImageRequest) (*imagegen.ImageResult, error) {
	resp, err := c.api.CreateImage(ctx, openai.ImageRequest{
		Model:   req.Model,
		Prompt:  req.Prompt,
		N:       req.N,
		Size:    req.Size,
		Quality: req.Quality,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return firstImage(resp), nil
}

func (c *Client) EditImage(ctx context.Context, req imagegen.ImageRequest, image *os.File) (*imagegen.ImageResult, error) {
	resp, err := c.editAPI.CreateEditImage(ctx, openai.ImageEditRequest{
		Image:   image,
		Model:   req.Model,
		Prompt:  req.Prompt,
		N:       req.N,
		Size:    req.Size,
		Quality: req.Quality,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return firstImage(resp), nil
}

// DescribeImage sends the system prompt, then the image and user prompt in one message.
func (c *Client) DescribeImage(ctx context.Context, req vision.Request) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: req.ImageURL}},
					{Type: openai.ChatMessagePartTypeText, Text: req.UserPrompt},
				},
			},
		},
	})
	if err != nil {
		return "", mapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func firstImage(resp openai.ImageResponse) *imagegen.ImageResult {
	if len(resp.Data) == 0 {
		return &imagegen.ImageResult{}
	}
	return &imagegen.ImageResult{B64JSON: resp.Data[0].B64JSON, URL: resp.Data[0].URL}
}

// mapError turns go-openai failures into *core.ProviderError.
func mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &core.ProviderError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		msg := http.StatusText(reqErr.HTTPStatusCode)
		if reqErr.Err != nil {
			msg = reqErr.Err.Error()
		}
		return &core.ProviderError{StatusCode: reqErr.HTTPStatusCode, Message: msg}
	}
	return fmt.Errorf("openai: %w", err)
}
