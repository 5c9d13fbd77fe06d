package irradiance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"solarvizyon/internal/domain/catalog"
	"solarvizyon/internal/domain/entities"
	"solarvizyon/internal/usecase/interfaces"
)

const (
	defaultBaseURL = "https://re.jrc.ec.europa.eu/api/v5_2"

	requestTimeout  = 10 * time.Second
	cacheTTL        = time.Hour
	cacheCleanupInt = 10 * time.Minute

	// mockSpecificYield is the kWh per kWp per year the mock provider
	// assumes before subtracting the requested loss.
	mockSpecificYield = 1500.0
)

var (
	ErrProviderStatus  = errors.New("irradiance provider returned non-success status")
	ErrProviderPayload = errors.New("irradiance provider returned malformed payload")
)

// PVGISClient queries the PVGIS PVcalc endpoint for annual/monthly energy
// yield. Responses are cached for an hour per (lat, lon, kwp, loss, tilt,
// azimuth) key; the underlying data changes on a much slower cadence than
// repeated identical submissions arrive.
type PVGISClient struct {
	baseURL  string
	http     *http.Client
	cache    *yieldCache
	mockMode bool
}

var _ interfaces.IIrradianceProvider = (*PVGISClient)(nil)

// NewPVGISClient builds the provider from the environment. Set
// IRRADIANCE_MOCK to serve deterministic local estimates without network
// access; set PVGIS_BASE_URL to override the public endpoint.
func NewPVGISClient() *PVGISClient {
	if isIrradianceMockEnabled() {
		log.Printf("[irradiance][provider] mock mode enabled")
		return &PVGISClient{
			mockMode: true,
			cache:    newYieldCache(cacheCleanupInt),
		}
	}

	baseURL := strings.TrimRight(os.Getenv("PVGIS_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	log.Printf("[irradiance][provider] PVGIS client initialized base_url=%s", baseURL)
	return &PVGISClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		cache:   newYieldCache(cacheCleanupInt),
	}
}

// pvcalcResponse mirrors the slice of the PVGIS PVcalc JSON body we consume.
type pvcalcResponse struct {
	Outputs struct {
		Monthly struct {
			Fixed []struct {
				Month  int     `json:"month"`
				Energy float64 `json:"E_m"`
			} `json:"fixed"`
		} `json:"monthly"`
		Totals struct {
			Fixed struct {
				AnnualEnergy float64 `json:"E_y"`
			} `json:"fixed"`
		} `json:"totals"`
	} `json:"outputs"`
}

func (c *PVGISClient) EstimateYield(ctx context.Context, req entities.YieldRequest) (entities.YieldEstimate, error) {
	key := cacheKey(req)
	return c.cache.getOrLoad(ctx, key, cacheTTL, func(ctx context.Context) (entities.YieldEstimate, error) {
		if c.mockMode {
			return mockYield(req), nil
		}
		return c.fetch(ctx, req)
	})
}

func (c *PVGISClient) fetch(ctx context.Context, req entities.YieldRequest) (entities.YieldEstimate, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.4f", req.Latitude))
	q.Set("lon", fmt.Sprintf("%.4f", req.Longitude))
	q.Set("peakpower", fmt.Sprintf("%.3f", req.PeakPowerKW))
	q.Set("loss", fmt.Sprintf("%.1f", req.SystemLossPercent))
	q.Set("angle", fmt.Sprintf("%.1f", req.TiltDegrees))
	q.Set("aspect", fmt.Sprintf("%.1f", req.AzimuthDegrees))
	q.Set("outputformat", "json")

	endpoint := c.baseURL + "/PVcalc?" + q.Encode()
	log.Printf("[irradiance][provider] fetch start lat=%.4f lon=%.4f kwp=%.3f", req.Latitude, req.Longitude, req.PeakPowerKW)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.YieldEstimate{}, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Printf("[irradiance][provider] fetch failed err=%v", err)
		return entities.YieldEstimate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[irradiance][provider] non-success status=%d", resp.StatusCode)
		return entities.YieldEstimate{}, fmt.Errorf("%w: %d", ErrProviderStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.YieldEstimate{}, err
	}

	var payload pvcalcResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("[irradiance][provider] payload unmarshal failed err=%v", err)
		return entities.YieldEstimate{}, fmt.Errorf("%w: %v", ErrProviderPayload, err)
	}
	if payload.Outputs.Totals.Fixed.AnnualEnergy <= 0 || len(payload.Outputs.Monthly.Fixed) != 12 {
		return entities.YieldEstimate{}, ErrProviderPayload
	}

	var estimate entities.YieldEstimate
	estimate.AnnualKWh = payload.Outputs.Totals.Fixed.AnnualEnergy
	for _, m := range payload.Outputs.Monthly.Fixed {
		if m.Month < 1 || m.Month > 12 {
			return entities.YieldEstimate{}, ErrProviderPayload
		}
		estimate.MonthlyKWh[m.Month-1] = m.Energy
	}

	log.Printf("[irradiance][provider] fetch success annual_kwh=%.0f", estimate.AnnualKWh)
	return estimate, nil
}

// mockYield produces a deterministic estimate from the request alone, for
// local development without network access.
func mockYield(req entities.YieldRequest) entities.YieldEstimate {
	annual := req.PeakPowerKW * mockSpecificYield * (100 - req.SystemLossPercent) / 100

	var estimate entities.YieldEstimate
	estimate.AnnualKWh = annual
	monthlyAvg := annual / 12
	for i, coeff := range catalog.SeasonalCoefficients {
		estimate.MonthlyKWh[i] = monthlyAvg * coeff
	}
	return estimate
}

func cacheKey(req entities.YieldRequest) string {
	return fmt.Sprintf("%.4f|%.4f|%.3f|%.1f|%.1f|%.1f",
		req.Latitude, req.Longitude, req.PeakPowerKW,
		req.SystemLossPercent, req.TiltDegrees, req.AzimuthDegrees)
}

// Close stops the cache cleanup goroutine.
func (c *PVGISClient) Close() {
	c.cache.close()
}

func isIrradianceMockEnabled() bool {
	for _, key := range []string{"IRRADIANCE_MOCK", "PVGIS_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
