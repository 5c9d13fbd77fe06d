package irradiance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"solarvizyon/internal/domain/entities"
)

func sampleRequest() entities.YieldRequest {
	return entities.YieldRequest{
		Latitude:          39.93,
		Longitude:         32.85,
		PeakPowerKW:       2.8,
		SystemLossPercent: 14,
		TiltDegrees:       30,
		AzimuthDegrees:    0,
	}
}

func pvcalcBody(annual float64) string {
	var months strings.Builder
	for m := 1; m <= 12; m++ {
		if m > 1 {
			months.WriteString(",")
		}
		fmt.Fprintf(&months, `{"month":%d,"E_m":%f}`, m, annual/12)
	}
	return fmt.Sprintf(`{"outputs":{"monthly":{"fixed":[%s]},"totals":{"fixed":{"E_y":%f}}}}`, months.String(), annual)
}

func TestPVGISClient_EstimateYield(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotQuery map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/PVcalc") {
				t.Fatalf("unexpected path %q", r.URL.Path)
			}
			gotQuery = map[string]string{}
			for k := range r.URL.Query() {
				gotQuery[k] = r.URL.Query().Get(k)
			}
			fmt.Fprint(w, pvcalcBody(4800))
		}))
		defer srv.Close()
		t.Setenv("PVGIS_BASE_URL", srv.URL)

		c := NewPVGISClient()
		defer c.Close()

		got, err := c.EstimateYield(context.Background(), sampleRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AnnualKWh != 4800 {
			t.Fatalf("expected annual 4800, got %v", got.AnnualKWh)
		}
		sum := 0.0
		for _, m := range got.MonthlyKWh {
			sum += m
		}
		if math.Abs(sum-4800) > 1e-3 {
			t.Fatalf("monthly sum %v does not match annual", sum)
		}
		if gotQuery["lat"] != "39.9300" || gotQuery["peakpower"] != "2.800" {
			t.Fatalf("unexpected query: %v", gotQuery)
		}
		if gotQuery["outputformat"] != "json" {
			t.Fatalf("expected json output format, got %v", gotQuery)
		}
	})

	t.Run("identical requests hit the cache", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			fmt.Fprint(w, pvcalcBody(4800))
		}))
		defer srv.Close()
		t.Setenv("PVGIS_BASE_URL", srv.URL)

		c := NewPVGISClient()
		defer c.Close()

		for i := 0; i < 3; i++ {
			if _, err := c.EstimateYield(context.Background(), sampleRequest()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if calls != 1 {
			t.Fatalf("expected one upstream call, got %d", calls)
		}

		other := sampleRequest()
		other.PeakPowerKW = 5.5
		if _, err := c.EstimateYield(context.Background(), other); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 2 {
			t.Fatalf("expected a second upstream call for a new key, got %d", calls)
		}
	})

	t.Run("non-success status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad coverage", http.StatusBadRequest)
		}))
		defer srv.Close()
		t.Setenv("PVGIS_BASE_URL", srv.URL)

		c := NewPVGISClient()
		defer c.Close()

		if _, err := c.EstimateYield(context.Background(), sampleRequest()); !errors.Is(err, ErrProviderStatus) {
			t.Fatalf("expected ErrProviderStatus, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"outputs"`)
		}))
		defer srv.Close()
		t.Setenv("PVGIS_BASE_URL", srv.URL)

		c := NewPVGISClient()
		defer c.Close()

		if _, err := c.EstimateYield(context.Background(), sampleRequest()); !errors.Is(err, ErrProviderPayload) {
			t.Fatalf("expected ErrProviderPayload, got %v", err)
		}
	})

	t.Run("incomplete month list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"outputs":{"monthly":{"fixed":[{"month":1,"E_m":400}]},"totals":{"fixed":{"E_y":4800}}}}`)
		}))
		defer srv.Close()
		t.Setenv("PVGIS_BASE_URL", srv.URL)

		c := NewPVGISClient()
		defer c.Close()

		if _, err := c.EstimateYield(context.Background(), sampleRequest()); !errors.Is(err, ErrProviderPayload) {
			t.Fatalf("expected ErrProviderPayload, got %v", err)
		}
	})

	t.Run("mock mode serves deterministic estimates offline", func(t *testing.T) {
		t.Setenv("IRRADIANCE_MOCK", "1")

		c := NewPVGISClient()
		defer c.Close()

		got, err := c.EstimateYield(context.Background(), sampleRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := 2.8 * 1500 * 0.86
		if math.Abs(got.AnnualKWh-want) > 1e-9 {
			t.Fatalf("expected mock annual %v, got %v", want, got.AnnualKWh)
		}
		again, err := c.EstimateYield(context.Background(), sampleRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.AnnualKWh != got.AnnualKWh {
			t.Fatal("mock estimates must be deterministic")
		}
	})
}

func TestIsIrradianceMockEnabled(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on ", "mock"} {
		t.Setenv("IRRADIANCE_MOCK", v)
		if !isIrradianceMockEnabled() {
			t.Fatalf("expected %q to enable mock mode", v)
		}
	}
	t.Setenv("IRRADIANCE_MOCK", "0")
	t.Setenv("PVGIS_MOCK", "")
	if isIrradianceMockEnabled() {
		t.Fatal("expected mock mode disabled")
	}
}
