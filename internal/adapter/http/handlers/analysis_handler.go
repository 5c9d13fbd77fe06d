package handlers

import (
	"errors"
	"net/http"

	request "solarvizyon/internal/adapter/http/dto/request"
	response "solarvizyon/internal/adapter/http/dto/response"
	"solarvizyon/internal/usecase"
	"solarvizyon/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAnalysisPayload = pkg.NewDomainErrorSimple("INVALID_ANALYSIS_INPUT", "Invalid analysis payload", http.StatusBadRequest)

// AnalysisHandler handles HTTP requests for sizing and feasibility
// analyses. One request, one complete report; nothing is kept between
// calls.

type AnalysisHandler struct {
	usecase usecase.IAnalysisUseCase
}

func NewAnalysisHandler(uc usecase.IAnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{usecase: uc}
}

// CreateAnalysis runs the full sizing and financial projection for one
// submission and returns the report.
func (h *AnalysisHandler) CreateAnalysis(c *gin.Context) {
	var payload request.AnalysisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAnalysisPayload.HTTPStatus, errInvalidAnalysisPayload.ToHTTPError())
		return
	}

	report, err := h.usecase.Analyze(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapAnalysisError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReport(report))
}

func mapAnalysisError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConsumption),
		errors.Is(err, usecase.ErrInvalidConsumptionUnit),
		errors.Is(err, usecase.ErrInvalidUnitPrice),
		errors.Is(err, usecase.ErrInvalidEnergyPrice),
		errors.Is(err, usecase.ErrInvalidExchangeRate),
		errors.Is(err, usecase.ErrInvalidArea),
		errors.Is(err, usecase.ErrInvalidPSH),
		errors.Is(err, usecase.ErrInvalidSystemMode),
		errors.Is(err, usecase.ErrInvalidObjective),
		errors.Is(err, usecase.ErrInvalidInstallationSite),
		errors.Is(err, usecase.ErrInvalidLoanTerms),
		errors.Is(err, usecase.ErrUnknownLocation),
		errors.Is(err, usecase.ErrUnknownPanelTier),
		errors.Is(err, usecase.ErrUnknownBatteryTier),
		errors.Is(err, usecase.ErrUnknownOrientation),
		errors.Is(err, usecase.ErrBatterySpecRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIrradianceUnavailable),
		errors.Is(err, usecase.ErrIrradianceNotConfigured):
		return pkg.NewDomainError("IRRADIANCE_UNAVAILABLE", "Irradiance data unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
