// Package vision extracts CharacterTraits from athlete photos with a multimodal chat model.
package vision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"statstory-backend-go/internal/core"
	"statstory-backend-go/internal/models"
)

const systemPrompt = `You are an expert sports journalist and graphic designer specializing in player analysis.  
Your task is to scan the uploaded athlete image and describe the player's visual appearance accurately.  
Focus only on the following fields:

- Hair style (e.g., buzzcut, medium, long, bald)
- Hair color (e.g., black, blonde, purple, etc.)
- Facial hair (e.g., none, goatee, beard, mustache)
- Shirt status (e.g., wearing shirt, shirtless)
- Shorts color (e.g., red, black, white)
- Tattoos (describe their location and type, e.g., right arm dragon tattoo, left chest star tattoo)

Respond ONLY in the following JSON format:

{
  "hairStyle": "...",
  "hairColor": "...",
  "facialHair": "...",
  "shirtStatus": "...",
  "shortsColor": "...",
  "tattoos": "..."
}`

const userPrompt = "Analyze this athlete image and extract the visual traits as specified."

// Request is one vision chat call.
type Request struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	ImageURL     string // data URL
	Temperature  float32
	MaxTokens    int
}

// Provider sends a vision request and returns the model's text reply.
type Provider interface {
	DescribeImage(ctx context.Context, req Request) (string, error)
}

// Analyzer implements core.TraitAnalyzer.
type Analyzer struct {
	provider Provider
	model    string
	logger   *zap.Logger
}

var _ core.TraitAnalyzer = (*Analyzer)(nil)

func NewAnalyzer(provider Provider, model string, logger *zap.Logger) *Analyzer {
	return &Analyzer{provider: provider, model: model, logger: logger}
}

// Analyze returns the traits visible in the image. Missing traits are "unknown".
func (a *Analyzer) Analyze(ctx context.Context, imageBase64 string) (*models.CharacterTraits, error) {
	if strings.TrimSpace(imageBase64) == "" {
		return nil, core.NewValidationError("Image data is required")
	}
	payload := imageBase64
	if _, after, found := strings.Cut(imageBase64, "base64,"); found {
		payload = after
	}

	reply, err := a.provider.DescribeImage(ctx, Request{
		Model:        a.model,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		ImageURL:     "data:image/jpeg;base64," + payload,
		Temperature:  0.2,
		MaxTokens:    1000,
	})
	if err != nil {
		a.logger.Error("vision request failed", zap.Int("status", core.ProviderStatus(err)), zap.Error(err))
		return nil, core.NewUpstreamError("Failed to analyze image", err)
	}
	if strings.TrimSpace(reply) == "" {
		return nil, &core.UpstreamError{Message: "Failed to analyze image: No content in response"}
	}

	traits, err := ParseTraits(reply)
	if err != nil {
		a.logger.Warn("unparseable vision reply", zap.Int("length", len(reply)), zap.Error(err))
		return nil, &core.UpstreamError{Message: "Failed to parse character traits: " + err.Error(), Err: err}
	}
	return traits, nil
}

var errNoJSONObject = errors.New("no JSON object found in response")

// ParseTraits decodes the span from the first '{' to the last '}' of reply.
// Absent or falsy values (null, false, 0, "") become "unknown".
func ParseTraits(reply string) (*models.CharacterTraits, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return nil, errNoJSONObject
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(reply[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("invalid traits JSON: %w", err)
	}

	traits := &models.CharacterTraits{
		HairStyle:   traitValue(raw["hairStyle"]),
		HairColor:   traitValue(raw["hairColor"]),
		FacialHair:  traitValue(raw["facialHair"]),
		ShirtStatus: traitValue(raw["shirtStatus"]),
		ShortsColor: traitValue(raw["shortsColor"]),
		Tattoos:     traitValue(raw["tattoos"]),
	}
	traits.FillUnknown()
	return traits, nil
}

func traitValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if !val {
			return ""
		}
	case float64:
		if val == 0 {
			return ""
		}
	}
	return fmt.Sprint(v)
}
