package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	vaultDomain "github.com/allisson/sesame/internal/vault/domain"
	vaultMocks "github.com/allisson/sesame/internal/vault/usecase/mocks"
)

func TestRunRotate(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("success-text", func(t *testing.T) {
		mockUseCase := vaultMocks.NewMockRotationUseCase(t)
		mockUseCase.EXPECT().Rotate(mock.Anything).
			Return(vaultDomain.RotationResult{Rotated: 42, Skipped: 1, Batches: 6}, nil).
			Once()

		var out bytes.Buffer
		err := RunRotate(ctx, mockUseCase, logger, &out, "text")

		require.NoError(t, err)
		assert.Equal(t, "Rotation completed: 42 rotated, 1 skipped, 6 batches\n", out.String())
	})

	t.Run("success-json", func(t *testing.T) {
		mockUseCase := vaultMocks.NewMockRotationUseCase(t)
		mockUseCase.EXPECT().Rotate(mock.Anything).
			Return(vaultDomain.RotationResult{Rotated: 3, Batches: 1}, nil).
			Once()

		var out bytes.Buffer
		err := RunRotate(ctx, mockUseCase, logger, &out, "json")
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, map[string]any{"rotated": float64(3), "skipped": float64(0), "batches": float64(1)}, got)
	})

	t.Run("failure-reports-partial-progress", func(t *testing.T) {
		rotateErr := errors.New("connection reset")
		mockUseCase := vaultMocks.NewMockRotationUseCase(t)
		mockUseCase.EXPECT().Rotate(mock.Anything).
			Return(vaultDomain.RotationResult{Rotated: 8, Batches: 2}, rotateErr).
			Once()

		var out bytes.Buffer
		err := RunRotate(ctx, mockUseCase, logger, &out, "json")

		require.ErrorIs(t, err, rotateErr)
		assert.Contains(t, err.Error(), "failed to rotate records")
		assert.Contains(t, out.String(), `"rotated": 8`)
		assert.Contains(t, out.String(), `"error": "connection reset"`)
	})

	t.Run("failure-text", func(t *testing.T) {
		mockUseCase := vaultMocks.NewMockRotationUseCase(t)
		mockUseCase.EXPECT().Rotate(mock.Anything).
			Return(vaultDomain.RotationResult{}, context.DeadlineExceeded).
			Once()

		var out bytes.Buffer
		err := RunRotate(ctx, mockUseCase, logger, &out, "text")

		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, "Rotation failed: 0 rotated, 0 skipped, 0 batches\n", out.String())
	})

	t.Run("invalid-format", func(t *testing.T) {
		mockUseCase := vaultMocks.NewMockRotationUseCase(t)

		err := RunRotate(ctx, mockUseCase, logger, &bytes.Buffer{}, "yaml")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})
}
