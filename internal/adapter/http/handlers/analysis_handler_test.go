package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"solarvizyon/internal/adapter/http/handlers/mocks"
	"solarvizyon/internal/domain/entities"
	"solarvizyon/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const analysisPayload = `{
	"location_id": "ankara",
	"installation_site": "rooftop",
	"system_mode": "on_grid",
	"orientation": "south",
	"area_m2": 80,
	"consumption_unit": "monthly_kwh",
	"consumption_value": 300,
	"panel_tier": "standard",
	"unit_energy_price": 2.5,
	"exchange_rate": 34.5
}`

func TestAnalysisHandler_CreateAnalysis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalysisUseCase(ctrl)
		h := NewAnalysisHandler(uc)

		r := gin.New()
		r.POST("/v1/analyses", h.CreateAnalysis)

		req := httptest.NewRequest(http.MethodPost, "/v1/analyses", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalysisUseCase(ctrl)
		h := NewAnalysisHandler(uc)

		r := gin.New()
		r.POST("/v1/analyses", h.CreateAnalysis)

		req := httptest.NewRequest(http.MethodPost, "/v1/analyses", bytes.NewBufferString(`{"location_id":"ankara"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalysisUseCase(ctrl)
		h := NewAnalysisHandler(uc)

		r := gin.New()
		r.POST("/v1/analyses", h.CreateAnalysis)

		uc.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(entities.AnalysisReport{}, usecase.ErrUnknownLocation)

		req := httptest.NewRequest(http.MethodPost, "/v1/analyses", bytes.NewBufferString(analysisPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("irradiance outage maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalysisUseCase(ctrl)
		h := NewAnalysisHandler(uc)

		r := gin.New()
		r.POST("/v1/analyses", h.CreateAnalysis)

		wrapped := fmt.Errorf("%w: upstream timeout", usecase.ErrIrradianceUnavailable)
		uc.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(entities.AnalysisReport{}, wrapped)

		req := httptest.NewRequest(http.MethodPost, "/v1/analyses", bytes.NewBufferString(analysisPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalysisUseCase(ctrl)
		h := NewAnalysisHandler(uc)

		r := gin.New()
		r.POST("/v1/analyses", h.CreateAnalysis)

		report := entities.AnalysisReport{
			Location:   entities.LocationProfile{ID: "ankara", Name: "Ankara", DailyPeakSunHours: 4.2},
			SystemMode: entities.SystemModeOnGrid,
			Objective:  entities.ObjectiveMeetDemand,
			Sizing:     entities.SizedSystem{CapacityKW: 2.8, PanelCount: 7, Advisory: entities.AdvisoryDemandMet},
			Cost:       entities.CostBreakdown{TotalLocal: 81144},
		}
		uc.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in entities.AnalysisInput) (entities.AnalysisReport, error) {
				if in.LocationID != "ankara" || in.SystemMode != entities.SystemModeOnGrid {
					t.Fatalf("unexpected input: %+v", in)
				}
				return report, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/analyses", bytes.NewBufferString(analysisPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		rep, _ := body["report"].(map[string]any)
		if rep == nil {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		sizing, _ := rep["sizing"].(map[string]any)
		if sizing == nil || sizing["panel_count"] != float64(7) {
			t.Fatalf("unexpected sizing block: %s", w.Body.String())
		}
	})
}

func TestMapAnalysisError(t *testing.T) {
	badRequest := []error{
		usecase.ErrInvalidConsumption,
		usecase.ErrInvalidConsumptionUnit,
		usecase.ErrInvalidEnergyPrice,
		usecase.ErrInvalidExchangeRate,
		usecase.ErrInvalidArea,
		usecase.ErrInvalidSystemMode,
		usecase.ErrInvalidObjective,
		usecase.ErrInvalidInstallationSite,
		usecase.ErrInvalidLoanTerms,
		usecase.ErrUnknownLocation,
		usecase.ErrUnknownPanelTier,
		usecase.ErrUnknownBatteryTier,
		usecase.ErrUnknownOrientation,
	}
	for _, err := range badRequest {
		if got := mapAnalysisError(err); got.HTTPStatus != http.StatusBadRequest {
			t.Fatalf("%v: expected 400, got %d", err, got.HTTPStatus)
		}
	}
	if got := mapAnalysisError(usecase.ErrIrradianceUnavailable); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", got.HTTPStatus)
	}
	if got := mapAnalysisError(usecase.ErrIrradianceNotConfigured); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", got.HTTPStatus)
	}
	if got := mapAnalysisError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got.HTTPStatus)
	}
}
