package server

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-data-generator/config"
	"hotel-data-generator/storage"
	"hotel-data-generator/utils"
)

func newTestServer() *Server {
	cfg := &config.Config{ServerPort: "0", DatasetCacheSize: 4}
	return New(cfg, utils.NewLogger(), storage.NewDatasetStore(4), nil, nil)
}

// A small seeded run: one room type, short windows, fixed occupancy.
const generateBody = `{
	"booking_start": "2024-01-01",
	"booking_end": "2024-12-31",
	"stay_start": "2025-01-01",
	"stay_end": "2025-01-31",
	"occupancy_mode": "fixed",
	"occupancy_min": 60,
	"occupancy_max": 80,
	"room_types": [{"name": "Standard", "total": 10, "base_rate": 900000}],
	"rate_plans": [{"name": "BAR", "discount_pct": 0}],
	"night_weights": [1, 1, 1, 0, 0, 0, 0],
	"seed": 42,
	"today": "2025-01-01"
}`

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func generateDataset(t *testing.T, router http.Handler) GenerateResponse {
	t.Helper()

	w := doRequest(t, router, http.MethodPost, "/api/generate", generateBody)
	if w.Code != http.StatusOK {
		t.Fatalf("generate: status %d: %s", w.Code, w.Body.String())
	}

	var resp GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("generate: decode response: %v", err)
	}
	return resp
}

func TestGenerateEndpoint(t *testing.T) {
	router := newTestServer().Router()
	resp := generateDataset(t, router)

	if resp.DatasetID == "" {
		t.Error("expected a dataset id")
	}
	if resp.Summary == nil || resp.Summary.TotalBookings == 0 {
		t.Error("expected a non-empty summary")
	}
	if resp.RowCounts["Bookings"] != resp.Summary.TotalBookings {
		t.Errorf("row counts disagree with summary: %d vs %d",
			resp.RowCounts["Bookings"], resp.Summary.TotalBookings)
	}
	if len(resp.Preview) == 0 || len(resp.Preview) > 100 {
		t.Errorf("preview size %d outside (0, 100]", len(resp.Preview))
	}
}

func TestGenerateRejectsImpossibleConfig(t *testing.T) {
	router := newTestServer().Router()

	body := `{"room_types": [{"name": "Standard", "total": 0, "base_rate": 900000}]}`
	w := doRequest(t, router, http.MethodPost, "/api/generate", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", w.Code)
	}
}

func TestGenerateWarnsOnInvertedWindows(t *testing.T) {
	router := newTestServer().Router()

	body := strings.Replace(generateBody, `"booking_end": "2024-12-31"`, `"booking_end": "2023-01-01"`, 1)
	w := doRequest(t, router, http.MethodPost, "/api/generate", body)
	if w.Code != http.StatusOK {
		t.Fatalf("inverted window should warn, not block: status %d", w.Code)
	}

	var resp GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Warnings) == 0 {
		t.Error("expected a warning about the inverted booking window")
	}
}

func TestTableDownload(t *testing.T) {
	router := newTestServer().Router()
	resp := generateDataset(t, router)

	w := doRequest(t, router, http.MethodGet, "/api/datasets/"+resp.DatasetID+"/tables/Bookings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type: got %q, want text/csv", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "Booking_ID,") {
		t.Errorf("body does not start with the bookings header: %q", w.Body.String()[:40])
	}
}

func TestZIPDownload(t *testing.T) {
	router := newTestServer().Router()
	resp := generateDataset(t, router)

	w := doRequest(t, router, http.MethodGet, "/api/datasets/"+resp.DatasetID+"/zip", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}

	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	if err != nil {
		t.Fatalf("response is not a valid ZIP: %v", err)
	}
	if len(zr.File) != 4 {
		t.Errorf("archive entries: got %d, want 4", len(zr.File))
	}
}

func TestUnknownDataset(t *testing.T) {
	router := newTestServer().Router()

	for _, path := range []string{
		"/api/datasets/missing/zip",
		"/api/datasets/missing/tables/Bookings",
		"/api/datasets/missing/summary",
	} {
		if w := doRequest(t, router, http.MethodGet, path, ""); w.Code != http.StatusNotFound {
			t.Errorf("%s: status %d, want 404", path, w.Code)
		}
	}
}

func TestUnknownTableName(t *testing.T) {
	router := newTestServer().Router()
	resp := generateDataset(t, router)

	w := doRequest(t, router, http.MethodGet, "/api/datasets/"+resp.DatasetID+"/tables/Nope", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", w.Code)
	}
}

func TestPostgresExportUnconfigured(t *testing.T) {
	router := newTestServer().Router()
	resp := generateDataset(t, router)

	w := doRequest(t, router, http.MethodPost, "/api/datasets/"+resp.DatasetID+"/export/postgres", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status: got %d, want 503", w.Code)
	}
}
