// Package imagegen turns post parameters into a generated sports graphic.
package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"statstory-backend-go/internal/core"
	"statstory-backend-go/internal/models"
)

// ImageRequest is one generate or edit call to the provider.
type ImageRequest struct {
	Model   string
	Prompt  string
	N       int
	Size    string
	Quality string
}

// ImageResult holds exactly one of inline base64 data or a download URL.
type ImageResult struct {
	B64JSON string
	URL     string
}

// ImageProvider is a generative image backend. Failures should be *core.ProviderError
// when the provider answered with an HTTP status.
type ImageProvider interface {
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error)
	EditImage(ctx context.Context, req ImageRequest, image *os.File) (*ImageResult, error)
}

// Config controls the provider request parameters.
type Config struct {
	Model       string
	Size        string
	Quality     string
	EditTimeout time.Duration
}

// Pipeline implements core.ImageGenerator.
type Pipeline struct {
	provider   ImageProvider
	styles     *StyleCatalog
	httpClient *http.Client
	cfg        Config
	logger     *zap.Logger
}

var _ core.ImageGenerator = (*Pipeline)(nil)

// NewPipeline creates a Pipeline. httpClient is used to download URL results.
func NewPipeline(provider ImageProvider, styles *StyleCatalog, httpClient *http.Client, cfg Config, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		provider:   provider,
		styles:     styles,
		httpClient: httpClient,
		cfg:        cfg,
		logger:     logger,
	}
}

// Generate validates the request, builds the prompt and returns the image as
// raw base64. With a reference image it tries an edit first.
func (p *Pipeline) Generate(ctx context.Context, req models.GenerateImageRequest) (string, error) {
	switch {
	case strings.TrimSpace(req.Description) == "":
		return "", core.NewValidationError("Description is required")
	case strings.TrimSpace(req.MediaStyle) == "":
		return "", core.NewValidationError("Media style is required")
	case strings.TrimSpace(req.Vibe) == "":
		return "", core.NewValidationError("Vibe is required")
	}

	prompt := p.styles.BuildPrompt(PromptInput{
		Description:    req.Description,
		MediaStyle:     req.MediaStyle,
		Vibe:           req.Vibe,
		Title:          req.Title,
		Traits:         req.CharacterTraits,
		ReferenceImage: req.ImageBase64 != "",
	})
	p.logger.Debug("constructed image prompt",
		zap.String("mediaStyle", req.MediaStyle),
		zap.String("vibe", req.Vibe),
		zap.Bool("reference", req.ImageBase64 != ""),
	)

	var (
		result *ImageResult
		err    error
	)
	if req.ImageBase64 != "" {
		result, err = p.generateWithReference(ctx, prompt, req.ImageBase64)
	} else {
		result, err = p.generate(ctx, prompt)
	}
	if err != nil {
		return "", err
	}

	return p.toBase64(ctx, result)
}

func (p *Pipeline) request(prompt string) ImageRequest {
	return ImageRequest{Model: p.cfg.Model, Prompt: prompt, N: 1, Size: p.cfg.Size, Quality: p.cfg.Quality}
}

func (p *Pipeline) generate(ctx context.Context, prompt string) (*ImageResult, error) {
	result, err := p.provider.GenerateImage(ctx, p.request(prompt))
	if err != nil {
		p.logger.Error("image generation failed", zap.Int("status", core.ProviderStatus(err)), zap.Error(err))
		return nil, core.NewUpstreamError("Failed to generate image", err)
	}
	return result, nil
}

// generateWithReference writes the reference image to a temp file and edits
// it. A 400 or 404 from the edit endpoint falls back once to generation.
func (p *Pipeline) generateWithReference(ctx context.Context, prompt, imageBase64 string) (*ImageResult, error) {
	uri := ParseDataURI(imageBase64)
	data, err := uri.Decode()
	if err != nil {
		return nil, core.NewValidationError("Invalid image data: " + err.Error())
	}

	file, err := writeTempImage(data, uri.Extension())
	if err != nil {
		return nil, fmt.Errorf("failed to stage reference image: %w", err)
	}
	defer func() {
		file.Close()
		if rmErr := os.Remove(file.Name()); rmErr != nil {
			p.logger.Warn("failed to remove temp image", zap.String("path", file.Name()), zap.Error(rmErr))
		}
	}()

	editCtx, cancel := context.WithTimeout(ctx, p.cfg.EditTimeout)
	defer cancel()

	result, err := p.provider.EditImage(editCtx, p.request(prompt), file)
	if err == nil {
		return result, nil
	}

	status := core.ProviderStatus(err)
	if status == http.StatusBadRequest || status == http.StatusNotFound {
		p.logger.Warn("image edit rejected, falling back to generation", zap.Int("status", status), zap.Error(err))
		return p.generate(ctx, prompt+referenceNote)
	}

	p.logger.Error("image edit failed", zap.Int("status", status), zap.Error(err))
	return nil, core.NewUpstreamError("Image edit failed", err)
}

func writeTempImage(data []byte, ext string) (*os.File, error) {
	file, err := os.CreateTemp("", "statstory-ref-*"+ext)
	if err != nil {
		return nil, err
	}
	if _, err = file.Write(data); err == nil {
		_, err = file.Seek(0, io.SeekStart)
	}
	if err != nil {
		file.Close()
		os.Remove(file.Name())
		return nil, err
	}
	return file, nil
}

// toBase64 prefers inline data and otherwise downloads the result URL.
func (p *Pipeline) toBase64(ctx context.Context, result *ImageResult) (string, error) {
	switch {
	case result != nil && result.B64JSON != "":
		return result.B64JSON, nil
	case result != nil && result.URL != "":
		data, err := p.download(ctx, result.URL)
		if err != nil {
			p.logger.Error("failed to download generated image", zap.Error(err))
			return "", &core.UpstreamError{StatusCode: http.StatusInternalServerError, Message: "Failed to download generated image", Err: err}
		}
		return base64.StdEncoding.EncodeToString(data), nil
	default:
		return "", &core.UpstreamError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Failed to generate image: No image data in response",
		}
	}
}

func (p *Pipeline) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("unexpected status " + resp.Status)
	}
	return io.ReadAll(resp.Body)
}
