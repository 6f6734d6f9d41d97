package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	vaultDomain "github.com/allisson/sesame/internal/vault/domain"
	vaultUseCase "github.com/allisson/sesame/internal/vault/usecase"
)

// rotateOutput is the JSON form of a rotation result.
type rotateOutput struct {
	Rotated int    `json:"rotated"`
	Skipped int    `json:"skipped"`
	Batches int    `json:"batches"`
	Error   string `json:"error,omitempty"`
}

// RunRotate re-encrypts every record still under a non-active key.
//
// The counts reached are written even when the run fails, since records rotated
// before the failure stay rotated and a second run resumes from there.
func RunRotate(
	ctx context.Context,
	rotationUseCase vaultUseCase.RotationUseCase,
	logger *slog.Logger,
	w io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("starting key rotation")

	result, rotateErr := rotationUseCase.Rotate(ctx)
	if err := writeRotateResult(w, format, result, rotateErr); err != nil {
		return err
	}

	if rotateErr != nil {
		return fmt.Errorf("failed to rotate records: %w", rotateErr)
	}

	logger.Info("key rotation completed",
		slog.Int("rotated", result.Rotated),
		slog.Int("skipped", result.Skipped),
		slog.Int("batches", result.Batches),
	)
	return nil
}

func writeRotateResult(w io.Writer, format string, result vaultDomain.RotationResult, rotateErr error) error {
	if format == "json" {
		out := rotateOutput{Rotated: result.Rotated, Skipped: result.Skipped, Batches: result.Batches}
		if rotateErr != nil {
			out.Error = rotateErr.Error()
		}
		return writeJSON(w, out)
	}

	status := "completed"
	if rotateErr != nil {
		status = "failed"
	}
	_, err := fmt.Fprintf(w, "Rotation %s: %d rotated, %d skipped, %d batches\n",
		status, result.Rotated, result.Skipped, result.Batches)
	return err
}
