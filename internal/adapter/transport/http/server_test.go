package http_server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dayanaadylkhanova/measurements-api/internal/entity"
	"github.com/dayanaadylkhanova/measurements-api/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

type fixture struct {
	ooni *service.MockCensorshipPort
	mlab *service.MockPerformancePort
	h    http.Handler
}

func newFixture(t *testing.T, withMLab bool) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{ooni: service.NewMockCensorshipPort(ctrl)}
	var perf service.PerformancePort
	if withMLab {
		f.mlab = service.NewMockPerformancePort(ctrl)
		perf = f.mlab
	}
	f.h = NewServer(zap.NewNop(), Config{Addr: ":0"}, f.ooni, perf).Handler()
	return f
}

func (f *fixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid JSON %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestRoot_ListsExactlyFourEndpoints(t *testing.T) {
	for _, withMLab := range []bool{false, true} {
		f := newFixture(t, withMLab)
		rec := f.get(t, "/")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		got := decode[entity.RootResponse](t, rec)
		want := map[string]string{
			"measurements": "/api/v1/measurements",
			"tests":        "/api/v1/tests",
			"countries":    "/api/v1/countries",
			"health":       "/health",
		}
		if diff := cmp.Diff(want, got.Endpoints); diff != "" {
			t.Fatal(diff)
		}
		if got.Message == "" || got.Version != "1.0.0" {
			t.Fatalf("unexpected root info: %+v", got)
		}
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t, false)
	rec := f.get(t, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decode[entity.HealthResponse](t, rec)
	if got.Status != "healthy" {
		t.Fatalf("unexpected status %q", got.Status)
	}
	if _, err := time.Parse(time.RFC3339Nano, got.Timestamp); err != nil {
		t.Fatalf("timestamp is not ISO-8601: %q", got.Timestamp)
	}
}

func TestMeasurements_PassesFiltersAndRelaysBody(t *testing.T) {
	f := newFixture(t, false)
	upstream := json.RawMessage(`{"metadata":{"count":2},"results":[{"a":1},{"b":2}]}`)
	f.ooni.EXPECT().
		GetMeasurements(gomock.Any(), entity.MeasurementQuery{
			TestName: "web_connectivity",
			ProbeCC:  "IR",
			Since:    "2024-01-01",
			Until:    "2024-01-31",
			Limit:    1000,
			Offset:   40,
		}).
		Return(upstream, nil)

	rec := f.get(t, "/api/v1/measurements?test_name=web_connectivity&probe_cc=IR&since=2024-01-01&until=2024-01-31&limit=1000&offset=40")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if rec.Body.String() != string(upstream) {
		t.Fatalf("body must be relayed unchanged, got %s", rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestMeasurements_Defaults(t *testing.T) {
	f := newFixture(t, false)
	f.ooni.EXPECT().
		GetMeasurements(gomock.Any(), entity.MeasurementQuery{Limit: 100, Offset: 0}).
		Return(json.RawMessage(`{"results":[]}`), nil)

	if rec := f.get(t, "/api/v1/measurements"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMeasurements_RejectsOutOfContractInputWithoutUpstreamCall(t *testing.T) {
	cases := []string{
		"limit=0",
		"limit=-1",
		"limit=1001",
		"limit=99999",
		"limit=ten",
		"limit=1.5",
		"offset=-1",
		"offset=abc",
	}
	for _, qs := range cases {
		t.Run(qs, func(t *testing.T) {
			// no EXPECT: any call on the port fails the test
			f := newFixture(t, false)
			rec := f.get(t, "/api/v1/measurements?"+qs)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if got := decode[entity.ErrorResponse](t, rec); got.Detail == "" {
				t.Fatal("expected a descriptive detail")
			}
		})
	}
}

func TestMeasurements_UpstreamFailure(t *testing.T) {
	f := newFixture(t, false)
	f.ooni.EXPECT().
		GetMeasurements(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("http error: 503 - maintenance"))

	rec := f.get(t, "/api/v1/measurements")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	got := decode[entity.ErrorResponse](t, rec)
	if got.Detail != "Error fetching measurements: http error: 503 - maintenance" {
		t.Fatalf("unexpected detail %q", got.Detail)
	}
}

func TestMeasurementDetails(t *testing.T) {
	f := newFixture(t, false)
	gomock.InOrder(
		f.ooni.EXPECT().GetMeasurementDetails(gomock.Any(), "abc").Return(json.RawMessage(`{"id":"abc"}`), nil),
		f.ooni.EXPECT().GetMeasurementDetails(gomock.Any(), "missing").Return(nil, errors.New("http error: 404 - not found")),
	)

	rec := f.get(t, "/api/v1/measurements/abc")
	if rec.Code != http.StatusOK || rec.Body.String() != `{"id":"abc"}` {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body)
	}
	rec = f.get(t, "/api/v1/measurements/missing")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := decode[entity.ErrorResponse](t, rec); !strings.HasPrefix(got.Detail, "Error fetching measurement: ") {
		t.Fatalf("unexpected detail %q", got.Detail)
	}
}

func TestTests(t *testing.T) {
	f := newFixture(t, false)
	f.ooni.EXPECT().GetTestNames(gomock.Any()).Return([]string{"web_connectivity", "telegram"})

	rec := f.get(t, "/api/v1/tests")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decode[entity.TestsResponse](t, rec)
	if diff := cmp.Diff([]string{"web_connectivity", "telegram"}, got.Tests); diff != "" {
		t.Fatal(diff)
	}
}

func TestCountries(t *testing.T) {
	f := newFixture(t, false)
	f.ooni.EXPECT().GetCountries(gomock.Any()).Return(entity.Fallback())

	rec := f.get(t, "/api/v1/countries")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decode[entity.CountriesResponse](t, rec)
	if diff := cmp.Diff(entity.FallbackCountries, got.Countries); diff != "" {
		t.Fatal(diff)
	}
}

func TestNotFoundIsJSON(t *testing.T) {
	f := newFixture(t, false)
	rec := f.get(t, "/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if got := decode[entity.ErrorResponse](t, rec); got.Detail != "Not Found" {
		t.Fatalf("unexpected detail %q", got.Detail)
	}
}

func TestCORS(t *testing.T) {
	f := newFixture(t, false)
	f.ooni.EXPECT().GetTestNames(gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tests", nil)
	req.Header.Set("Origin", "https://frontend.example")
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Fatal("expected CORS headers on cross-origin request")
	}
}

func TestMLabRoutes_NotMountedWithoutPort(t *testing.T) {
	f := newFixture(t, false)
	for _, p := range []string{"/api/v1/mlab/measurements", "/api/v1/mlab/statistics", "/api/v1/mlab/countries"} {
		if rec := f.get(t, p); rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", p, rec.Code)
		}
	}
}

func TestMLabMeasurements(t *testing.T) {
	f := newFixture(t, true)
	lo, hi := 5.0, 100.0
	res := &entity.NDTResult{
		Dataset:   "ndt.unified_downloads",
		Count:     1,
		DateRange: entity.DateRange{Start: "2024-05-01", End: "2024-05-02"},
		Results:   []map[string]any{{"test_id": "x"}},
	}
	f.mlab.EXPECT().
		GetNDTMeasurements(gomock.Any(), entity.NDTQuery{
			StartDate:   "2024-05-01",
			EndDate:     "2024-05-02",
			CountryCode: "us",
			MinDownload: &lo,
			MaxDownload: &hi,
			Limit:       10,
		}).
		Return(res, nil)

	rec := f.get(t, "/api/v1/mlab/measurements?start_date=2024-05-01&end_date=2024-05-02&country_code=us&min_download=5&max_download=100&limit=10")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	got := decode[entity.NDTResult](t, rec)
	if diff := cmp.Diff(*res, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestMLabMeasurements_Validation(t *testing.T) {
	cases := []string{
		"start_date=yesterday",
		"end_date=2024-13-01",
		"min_download=fast",
		"max_download=NaN",
		"limit=0",
		"limit=1001",
	}
	for _, qs := range cases {
		t.Run(qs, func(t *testing.T) {
			f := newFixture(t, true)
			if rec := f.get(t, "/api/v1/mlab/measurements?"+qs); rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestMLabMeasurements_Failure(t *testing.T) {
	f := newFixture(t, true)
	f.mlab.EXPECT().GetNDTMeasurements(gomock.Any(), gomock.Any()).Return(nil, errors.New("query execution error: boom"))

	rec := f.get(t, "/api/v1/mlab/measurements")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := decode[entity.ErrorResponse](t, rec); got.Detail != "Error fetching NDT measurements: query execution error: boom" {
		t.Fatalf("unexpected detail %q", got.Detail)
	}
}

func TestMLabStatistics(t *testing.T) {
	f := newFixture(t, true)
	gomock.InOrder(
		f.mlab.EXPECT().
			GetStatistics(gomock.Any(), entity.StatsQuery{StartDate: "2024-05-01", CountryCode: "DE"}).
			Return(map[string]any{"total_tests": 3}, nil),
		f.mlab.EXPECT().
			GetStatistics(gomock.Any(), entity.StatsQuery{}).
			Return(map[string]any{}, nil),
	)

	rec := f.get(t, "/api/v1/mlab/statistics?start_date=2024-05-01&country_code=DE")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	got := decode[map[string]any](t, rec)
	if got["total_tests"] != 3.0 {
		t.Fatalf("unexpected stats %v", got)
	}

	rec = f.get(t, "/api/v1/mlab/statistics")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "{}" {
		t.Fatalf("expected empty object, got %d %s", rec.Code, rec.Body)
	}
}

func TestMLabCountriesAndByID(t *testing.T) {
	f := newFixture(t, true)
	f.mlab.EXPECT().GetAvailableCountries(gomock.Any(), 25).Return(entity.PerformanceFallback())
	f.mlab.EXPECT().GetMeasurementByID(gomock.Any(), "ndt-1").Return(map[string]any{"test_id": "ndt-1"}, nil)

	rec := f.get(t, "/api/v1/mlab/countries?limit=25")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	countries := decode[entity.PerformanceCountriesResponse](t, rec)
	if len(countries.Countries) != 10 || countries.Countries[0].CountryCode != "US" {
		t.Fatalf("unexpected countries %+v", countries)
	}

	rec = f.get(t, "/api/v1/mlab/measurements/ndt-1")
	body, _ := io.ReadAll(rec.Body)
	if rec.Code != http.StatusOK || !strings.Contains(string(body), `"ndt-1"`) {
		t.Fatalf("unexpected response %d %s", rec.Code, body)
	}
}
