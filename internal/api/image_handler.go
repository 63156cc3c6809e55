package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"statstory-backend-go/internal/core"
	"statstory-backend-go/internal/models"
)

// ImageHandler exposes image generation and trait analysis.
type ImageHandler struct {
	generator core.ImageGenerator
	analyzer  core.TraitAnalyzer
	errs      errorResponder
	logger    *zap.Logger
}

func NewImageHandler(gen core.ImageGenerator, an core.TraitAnalyzer, errs errorResponder, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{generator: gen, analyzer: an, errs: errs, logger: logger}
}

// GenerateImage handles POST /api/images/generate
func (h *ImageHandler) GenerateImage(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var req models.GenerateImageRequest
	if !h.errs.bindJSON(c, &req) {
		return
	}

	start := time.Now()
	image, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		h.errs.respond(c, err, "Failed to generate image")
		return
	}
	h.logger.Info("image generated",
		zap.Duration("duration", time.Since(start)),
		zap.Bool("reference", req.ImageBase64 != ""),
		zap.Int("size", len(image)),
	)
	respondData(c, http.StatusOK, models.GenerateImageResponse{ImageBase64: image})
}

// AnalyzeImage handles POST /api/images/analyze
func (h *ImageHandler) AnalyzeImage(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var req models.AnalyzeImageRequest
	if !h.errs.bindJSON(c, &req) {
		return
	}

	traits, err := h.analyzer.Analyze(c.Request.Context(), req.ImageBase64)
	if err != nil {
		h.errs.respond(c, err, "Failed to analyze image")
		return
	}
	respondData(c, http.StatusOK, traits)
}
