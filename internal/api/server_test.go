package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ballistics_calculator/internal/ballistics"
	"ballistics_calculator/internal/config"
	"ballistics_calculator/internal/logging"
	"ballistics_calculator/internal/models"
)

func newTestHandler() http.Handler {
	cfg := config.Config{
		Environment:    "test",
		APIPrefix:      "/api",
		AllowedOrigins: []string{"http://localhost:3000"},
		Bounds:         config.DefaultBounds(),
	}
	log := logging.Discard()
	svc := ballistics.NewService(cfg.Bounds, log)
	return New(svc, cfg, log)
}

func requestBody(t *testing.T) models.CalculationRequest {
	t.Helper()
	twist := 12.0
	weight := 150.0
	diameter := 0.308
	return models.CalculationRequest{
		Weapon: models.WeaponData{SightHeight: 2.0, Twist: &twist},
		Ammo: models.AmmoData{
			BC:             0.5,
			DragModel:      "G1",
			MuzzleVelocity: 2700,
			BulletWeight:   &weight,
			BulletDiameter: &diameter,
		},
		Atmosphere:   models.AtmosphericData{Temperature: 59, Pressure: 29.92, Humidity: 0.5},
		Wind:         models.WindData{Speed: 10, Direction: 3},
		ZeroDistance: 100,
		MaxRange:     500,
		StepSize:     100,
	}
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRootEndpoint(t *testing.T) {
	rec := doJSON(t, newTestHandler(), "GET", "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["message"] != config.AppName {
		t.Errorf("message = %q, want %q", body["message"], config.AppName)
	}
}

func TestHealthEndpoint(t *testing.T) {
	rec := doJSON(t, newTestHandler(), "GET", "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body models.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.Status != "healthy" {
		t.Errorf("status = %q, want healthy", body.Status)
	}
	if body.Environment != "test" {
		t.Errorf("environment = %q, want test", body.Environment)
	}
}

func TestDragModelsEndpoint(t *testing.T) {
	rec := doJSON(t, newTestHandler(), "GET", "/api/drag-models", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var names []string
	if err := json.Unmarshal(rec.Body.Bytes(), &names); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(names) != 2 || names[0] != "G1" || names[1] != "G7" {
		t.Errorf("unexpected drag models %v", names)
	}
}

func TestCalculateEndpoint(t *testing.T) {
	rec := doJSON(t, newTestHandler(), "POST", "/api/calculate", requestBody(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp models.CalculationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success")
	}
	if len(resp.Trajectory) != 6 {
		t.Errorf("trajectory has %d points, want 6", len(resp.Trajectory))
	}
	if resp.ZeroAdjustment <= 0 {
		t.Errorf("zero adjustment = %f, want positive", resp.ZeroAdjustment)
	}
}

func TestCalculateEndpointRejectsInvalidRequest(t *testing.T) {
	body := requestBody(t)
	body.MaxRange = 5000
	rec := doJSON(t, newTestHandler(), "POST", "/api/calculate", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ErrorCode != ballistics.CodeValidation {
		t.Errorf("error code = %q, want %q", resp.ErrorCode, ballistics.CodeValidation)
	}
	if !strings.Contains(resp.Detail, "Maximum range cannot exceed") {
		t.Errorf("unexpected detail %q", resp.Detail)
	}
}

func TestCalculateEndpointRejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/calculate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestValidateEndpoint(t *testing.T) {
	rec := doJSON(t, newTestHandler(), "POST", "/api/validate", requestBody(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp models.ValidationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Valid {
		t.Errorf("expected valid: %q", resp.Message)
	}
	if resp.EstimatedPoints != 5 {
		t.Errorf("estimated points = %d, want 5", resp.EstimatedPoints)
	}
}

func TestValidateEndpointReportsInvalidWithOK(t *testing.T) {
	body := requestBody(t)
	body.StepSize = 0.5
	rec := doJSON(t, newTestHandler(), "POST", "/api/validate", body)
	// Validation verdicts are data, not transport errors.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp models.ValidationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Valid {
		t.Error("expected invalid")
	}
	if resp.Message != "Step size cannot be less than 1 yards" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestBatchEndpoint(t *testing.T) {
	good := requestBody(t)
	bad := requestBody(t)
	bad.MaxRange = bad.ZeroDistance

	rec := doJSON(t, newTestHandler(), "POST", "/api/calculate/batch", []models.CalculationRequest{good, bad})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var items []ballistics.BatchItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Response == nil || !items[0].Response.Success {
		t.Error("item 0: expected a successful response")
	}
	if items[1].Error == nil || items[1].Error.ErrorCode != ballistics.CodeValidation {
		t.Errorf("item 1: expected a validation error, got %+v", items[1])
	}
}

func TestBatchEndpointRejectsEmptyBatch(t *testing.T) {
	rec := doJSON(t, newTestHandler(), "POST", "/api/calculate/batch", []models.CalculationRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestInfoEndpoint(t *testing.T) {
	rec := doJSON(t, newTestHandler(), "GET", "/api/info", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		AppName   string             `json:"app_name"`
		APILimits map[string]float64 `json:"api_limits"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.AppName != config.AppName {
		t.Errorf("app name = %q, want %q", body.AppName, config.AppName)
	}
	if body.APILimits["max_range_yards"] != 3000 {
		t.Errorf("max range limit = %g, want 3000", body.APILimits["max_range_yards"])
	}
}

func TestCORSHeaders(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allowed origin echoed %q", got)
	}

	req = httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected origin header %q for a disallowed origin", got)
	}
}
