// Package http provides HTTP handlers for vault record operations.
package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/sesame/internal/httputil"
	customValidation "github.com/allisson/sesame/internal/validation"
	"github.com/allisson/sesame/internal/vault/http/dto"
	vaultUseCase "github.com/allisson/sesame/internal/vault/usecase"
)

// VaultHandler handles HTTP requests for vault records.
type VaultHandler struct {
	vaultUseCase vaultUseCase.VaultUseCase
	baseURI      string
	logger       *slog.Logger
}

// NewVaultHandler creates a new vault handler. baseURI prefixes the Location of created records.
func NewVaultHandler(
	vaultUseCase vaultUseCase.VaultUseCase,
	baseURI string,
	logger *slog.Logger,
) *VaultHandler {
	return &VaultHandler{
		vaultUseCase: vaultUseCase,
		baseURI:      strings.TrimSuffix(baseURI, "/"),
		logger:       logger,
	}
}

// CreateHandler encrypts and stores a new record.
// POST /vault - Returns 201 Created with the record URI in the Location header and body.
func (h *VaultHandler) CreateHandler(c *gin.Context) {
	req, ok := h.bindVaultRequest(c)
	if !ok {
		return
	}

	record, err := h.vaultUseCase.Create(c.Request.Context(), []byte(req.Data))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	uri := h.baseURI + "/vault/" + record.ID.String()
	c.Header("Location", uri)
	c.JSON(http.StatusCreated, uri)
}

// GetHandler reads and decrypts a record.
// GET /vault/:id - Returns 200 OK with the plaintext. The plaintext is zeroed after the response.
func (h *VaultHandler) GetHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	record, err := h.vaultUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer record.ZeroPlaintext()

	c.JSON(http.StatusOK, dto.MapRecordToVaultResponse(record))
}

// UpdateHandler replaces a record's content.
// PUT /vault/:id - Returns 204 No Content.
func (h *VaultHandler) UpdateHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	req, ok := h.bindVaultRequest(c)
	if !ok {
		return
	}

	if err := h.vaultUseCase.Update(c.Request.Context(), id, []byte(req.Data)); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteHandler removes a record.
// DELETE /vault/:id - Returns 204 No Content.
func (h *VaultHandler) DeleteHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.vaultUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID validates the :id parameter and writes a 422 response when it is not a UUIDv4.
func (h *VaultHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	req := dto.RecordIDRequest{ID: c.Param("id")}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return uuid.Nil, false
	}
	return id, true
}

func (h *VaultHandler) bindVaultRequest(c *gin.Context) (dto.VaultRequest, bool) {
	var req dto.VaultRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return req, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return req, false
	}
	return req, true
}
