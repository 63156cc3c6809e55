package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUpstreamError(t *testing.T) {
	perr := &ProviderError{StatusCode: 429, Message: "Rate limit reached"}
	err := NewUpstreamError("Failed to generate image", fmt.Errorf("generate: %w", perr))

	require.Equal(t, 429, err.StatusCode)
	require.Equal(t, "Failed to generate image: Rate limit reached", err.Message)
	require.True(t, errors.As(err, &perr))

	plain := NewUpstreamError("Image edit failed", context.DeadlineExceeded)
	require.Equal(t, 0, plain.StatusCode)
	require.Equal(t, "Image edit failed: context deadline exceeded", plain.Message)
}

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewValidationError("Vibe is required"))
	require.True(t, errors.Is(err, ErrValidation))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "Vibe is required", verr.Message)
}
