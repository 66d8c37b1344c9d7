package api

//go:generate mockgen -source=handler.go -destination=mocks/mock_handler.go -package=mocks

import (
	"context"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/category"
	"github.com/povarna/generative-ai-agents/semantic-validator/internal/models"
	"github.com/rs/zerolog"
)

const version = "1.0.0"

type Validator interface {
	Execute(ctx context.Context, req models.ValidationRequest) models.ValidationResult
	ExecuteSyntax(req models.ValidationRequest) models.ValidationResult
}

type Handler struct {
	validator Validator
	// semanticErr is non-nil when the LLM stage is disabled.
	semanticErr error
	logger      *zerolog.Logger
}

func NewHandler(validator Validator, semanticErr error, logger *zerolog.Logger) *Handler {
	return &Handler{
		validator:   validator,
		semanticErr: semanticErr,
		logger:      logger,
	}
}

// POST /api/v1/validate
// Body: ValidationRequest
// Returns: ValidationResult
func (h *Handler) Validate(req *restful.Request, resp *restful.Response) {
	var validationRequest models.ValidationRequest
	if err := req.ReadEntity(&validationRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	result := h.validator.Execute(ctx, validationRequest)

	if result.Failed() {
		status := StatusFor(result.ErrorKind)
		middleware.WriteError(resp, middleware.ErrorResponse{
			Error:     string(result.ErrorKind),
			Message:   result.Error,
			Code:      status,
			RequestID: result.RequestID,
		})
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/validate/syntax
func (h *Handler) ValidateSyntax(req *restful.Request, resp *restful.Response) {
	var validationRequest models.ValidationRequest
	if err := req.ReadEntity(&validationRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, h.validator.ExecuteSyntax(validationRequest))
}

// GET /api/v1/models
func (h *Handler) Models(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, models.ModelChoices())
}

// GET /api/v1/categories
func (h *Handler) Categories(req *restful.Request, resp *restful.Response) {
	all := category.All()
	infos := make([]CategoryInfo, 0, len(all))
	for _, c := range all {
		infos = append(infos, CategoryInfo{Name: c.String(), Labels: category.Labels(c)})
	}
	resp.WriteHeaderAndEntity(http.StatusOK, infos)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:   "ok",
		Version:  version,
		Semantic: "ready",
	}
	if h.semanticErr != nil {
		healthResponse.Semantic = "unavailable"
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

// StatusFor maps a failure class onto the HTTP status returned to callers.
func StatusFor(kind models.ErrorKind) int {
	switch kind {
	case models.ErrorKindQuotaExceeded:
		return http.StatusTooManyRequests
	case models.ErrorKindConfig:
		return http.StatusServiceUnavailable
	case models.ErrorKindTimeout:
		return http.StatusGatewayTimeout
	case models.ErrorKindInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
