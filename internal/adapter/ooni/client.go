// Package ooni is a thin client for the OONI measurements API.
package ooni

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/dayanaadylkhanova/measurements-api/internal/entity"
	"github.com/dayanaadylkhanova/measurements-api/internal/metrics"
	"github.com/dayanaadylkhanova/measurements-api/internal/service"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.ooni.io"
	DefaultTimeout = 30 * time.Second

	// countriesSampleSize is how many recent measurements GetCountries scans.
	countriesSampleSize = 100
	maxCountries        = 50
	maxBodyBytes        = 32 << 20
)

var (
	// ErrHTTPStatus indicates a non-2xx upstream response.
	ErrHTTPStatus = errors.New("http error")

	// ErrRequest indicates a transport failure (DNS, connect, timeout, read).
	ErrRequest = errors.New("request error")

	// ErrDecode indicates a 2xx response whose body is not the JSON we expect.
	ErrDecode = errors.New("decode error")
)

// testNames is the catalog served by GetTestNames.
var testNames = []string{
	"web_connectivity",
	"http_requests",
	"dns_consistency",
	"http_invalid_request_line",
	"bridge_reachability",
	"tcp_connect",
	"http_header_field_manipulation",
	"http_host",
	"multi_protocol_traceroute",
	"meek_fronted_requests_test",
	"whatsapp",
	"facebook_messenger",
	"telegram",
	"vanilla_tor",
	"stunreachability",
}

// Client talks to {BaseURL}/api/v1. Use NewClient; a zero Client is invalid.
type Client struct {
	// BaseURL is the API origin without the /api/v1 suffix.
	BaseURL string

	// HTTPClient is shared across requests and safe for concurrent use.
	HTTPClient *http.Client

	Logger    *zap.Logger
	UserAgent string
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     log,
		UserAgent:  "measurements-api/1.0.0",
	}
}

// Close releases idle upstream connections.
func (c *Client) Close() {
	c.HTTPClient.CloseIdleConnections()
}

func (c *Client) apiURL(path string, q url.Values) string {
	u := c.BaseURL + "/api/v1" + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// get issues one GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, op, rawURL string) (body []byte, err error) {
	t0 := time.Now()
	defer func() { metrics.ObserveUpstream(metrics.UpstreamOONI, op, t0, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRequest, err.Error())
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	c.Logger.Debug("ooni request", zap.String("op", op), zap.String("url", rawURL))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRequest, err.Error())
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRequest, err.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d - %s", ErrHTTPStatus, resp.StatusCode, string(data))
	}
	c.Logger.Debug("ooni response",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(data)),
		zap.Duration("latency", time.Since(t0)),
	)
	return data, nil
}

// GetMeasurements relays the upstream listing as-is. Limit is clamped, never rejected.
func (c *Client) GetMeasurements(ctx context.Context, q entity.MeasurementQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(service.ClampLimit(q.Limit)))
	params.Set("offset", strconv.Itoa(q.Offset))
	setIf(params, "test_name", q.TestName)
	setIf(params, "probe_cc", q.ProbeCC)
	setIf(params, "since", q.Since)
	setIf(params, "until", q.Until)

	body, err := c.get(ctx, "measurements", c.apiURL("/measurements", params))
	if err != nil {
		return nil, err
	}
	return asJSON(body)
}

// GetMeasurementDetails fetches one measurement by its upstream identifier.
func (c *Client) GetMeasurementDetails(ctx context.Context, id string) (json.RawMessage, error) {
	body, err := c.get(ctx, "measurement_details", c.apiURL("/measurements/"+url.PathEscape(id), nil))
	if err != nil {
		return nil, err
	}
	return asJSON(body)
}

// GetTestNames returns the static test catalog. The upstream probe is only a
// connectivity signal for logs and metrics; it never changes the result.
func (c *Client) GetTestNames(ctx context.Context) []string {
	params := url.Values{}
	params.Set("limit", "1")
	if _, err := c.get(ctx, "test_names_probe", c.apiURL("/measurements", params)); err != nil {
		c.Logger.Warn("ooni probe failed, serving static test catalog", zap.Error(err))
	}
	return append([]string(nil), testNames...)
}

type countriesPage struct {
	Results *[]struct {
		ProbeCC *string `json:"probe_cc"`
	} `json:"results"`
}

// GetCountries derives the country list from recent measurements and falls back
// to the static table on any failure.
func (c *Client) GetCountries(ctx context.Context) []entity.Country {
	out, err := c.discoverCountries(ctx)
	if err != nil {
		c.Logger.Warn("ooni country discovery failed, serving fallback list", zap.Error(err))
		metrics.Fallback(metrics.UpstreamOONI, "countries")
		return entity.Fallback()
	}
	return out
}

func (c *Client) discoverCountries(ctx context.Context) ([]entity.Country, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(countriesSampleSize))
	body, err := c.get(ctx, "countries", c.apiURL("/measurements", params))
	if err != nil {
		return nil, err
	}
	var page countriesPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, err.Error())
	}
	if page.Results == nil {
		return nil, fmt.Errorf("%w: response has no results", ErrDecode)
	}

	seen := make(map[string]struct{})
	for _, m := range *page.Results {
		if m.ProbeCC != nil {
			seen[*m.ProbeCC] = struct{}{}
		}
	}
	codes := make([]string, 0, len(seen))
	for cc := range seen {
		codes = append(codes, cc)
	}
	sort.Strings(codes)
	if len(codes) > maxCountries {
		codes = codes[:maxCountries]
	}
	out := make([]entity.Country, 0, len(codes))
	for _, cc := range codes {
		out = append(out, entity.Country{Code: cc, Name: cc})
	}
	return out, nil
}

func setIf(v url.Values, k, s string) {
	if s != "" {
		v.Set(k, s)
	}
}

func asJSON(body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrDecode)
	}
	return json.RawMessage(body), nil
}
