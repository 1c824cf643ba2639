// Package mlab queries the M-Lab NDT dataset in BigQuery.
package mlab

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/dayanaadylkhanova/measurements-api/internal/entity"
	"github.com/dayanaadylkhanova/measurements-api/internal/metrics"
	"github.com/dayanaadylkhanova/measurements-api/internal/service"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
)

const (
	Dataset  = "ndt.unified_downloads"
	ndtTable = "`measurement-lab.ndt.unified_downloads`"

	dateLayout = "2006-01-02"
)

var (
	// ErrQuery wraps every failure coming out of the runner.
	ErrQuery = errors.New("query execution error")

	// ErrBigQuery marks errors reported by the BigQuery API itself.
	ErrBigQuery = errors.New("BigQuery error")
)

type Client struct {
	runner QueryRunner
	log    *zap.Logger
	now    func() time.Time
}

func NewClient(runner QueryRunner, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{runner: runner, log: log, now: time.Now}
}

func (c *Client) yesterday() string {
	return c.now().AddDate(0, 0, -1).Format(dateLayout)
}

// dateRange applies the defaults: start is yesterday, end is start.
func (c *Client) dateRange(start, end string) (string, string) {
	if start == "" {
		start = c.yesterday()
	}
	if end == "" {
		end = start
	}
	return start, end
}

// execute appends LIMIT unless the text already has one, then runs the statement.
func (c *Client) execute(ctx context.Context, op, sql string, params []bigquery.QueryParameter, limit int) (rows []map[string]any, err error) {
	if !strings.Contains(strings.ToUpper(sql), "LIMIT") {
		sql = fmt.Sprintf("%s LIMIT %d", sql, limit)
	}
	t0 := time.Now()
	defer func() { metrics.ObserveUpstream(metrics.UpstreamMLab, op, t0, err) }()

	c.log.Debug("bigquery query", zap.String("op", op), zap.Int("params", len(params)))
	rows, err = c.runner.Query(ctx, sql, params)
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("%w: %w", ErrBigQuery, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	c.log.Debug("bigquery rows", zap.String("op", op), zap.Int("rows", len(rows)), zap.Duration("latency", time.Since(t0)))
	return rows, nil
}

func limitOrDefault(n int) int {
	if n == 0 {
		n = service.DefaultLimit
	}
	return service.ClampLimit(n)
}

func (c *Client) GetNDTMeasurements(ctx context.Context, q entity.NDTQuery) (*entity.NDTResult, error) {
	start, end := c.dateRange(q.StartDate, q.EndDate)
	sql, params := buildNDTQuery(start, end, q)

	rows, err := c.execute(ctx, "ndt_measurements", sql, params, limitOrDefault(q.Limit))
	if err != nil {
		return nil, fmt.Errorf("mlab ndt_measurements: %w", err)
	}
	return &entity.NDTResult{
		Dataset:   Dataset,
		Count:     len(rows),
		DateRange: entity.DateRange{Start: start, End: end},
		Results:   rows,
	}, nil
}

// GetAvailableCountries lists countries seen yesterday. On failure the static table is returned.
func (c *Client) GetAvailableCountries(ctx context.Context, limit int) []entity.PerformanceCountry {
	limit = limitOrDefault(limit)
	sql := fmt.Sprintf(countriesSQL, ndtTable, limit)
	params := []bigquery.QueryParameter{{Name: "day", Value: c.yesterday()}}

	rows, err := c.execute(ctx, "available_countries", sql, params, limit)
	if err != nil {
		c.log.Warn("mlab country query failed, serving fallback list", zap.Error(err))
		metrics.Fallback(metrics.UpstreamMLab, "available_countries")
		return entity.PerformanceFallback()
	}
	out := make([]entity.PerformanceCountry, 0, len(rows))
	for _, row := range rows {
		code, _ := row["country_code"].(string)
		name, _ := row["country_name"].(string)
		out = append(out, entity.PerformanceCountry{CountryCode: code, CountryName: name})
	}
	return out
}

// GetStatistics returns the single aggregate row, or an empty map when nothing matched.
func (c *Client) GetStatistics(ctx context.Context, q entity.StatsQuery) (map[string]any, error) {
	start, end := c.dateRange(q.StartDate, q.EndDate)
	sql := fmt.Sprintf(statisticsSQL, ndtTable)
	params := dateParams(start, end)
	if q.CountryCode != "" {
		sql += " AND client.Geo.CountryCode = @country_code"
		params = append(params, bigquery.QueryParameter{Name: "country_code", Value: strings.ToUpper(q.CountryCode)})
	}

	rows, err := c.execute(ctx, "statistics", sql, params, 1)
	if err != nil {
		return nil, fmt.Errorf("mlab statistics: %w", err)
	}
	return firstRow(rows), nil
}

func (c *Client) GetMeasurementByID(ctx context.Context, id string) (map[string]any, error) {
	sql := fmt.Sprintf(byIDSQL, ndtTable)
	params := []bigquery.QueryParameter{{Name: "test_id", Value: id}}

	rows, err := c.execute(ctx, "measurement_by_id", sql, params, 1)
	if err != nil {
		return nil, fmt.Errorf("mlab measurement_by_id: %w", err)
	}
	return firstRow(rows), nil
}

func firstRow(rows []map[string]any) map[string]any {
	if len(rows) == 0 {
		return map[string]any{}
	}
	return rows[0]
}

func dateParams(start, end string) []bigquery.QueryParameter {
	return []bigquery.QueryParameter{
		{Name: "start_date", Value: start},
		{Name: "end_date", Value: end},
	}
}

func buildNDTQuery(start, end string, q entity.NDTQuery) (string, []bigquery.QueryParameter) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(ndtSQL, ndtTable))
	params := dateParams(start, end)

	if q.CountryCode != "" {
		sb.WriteString(" AND client.Geo.CountryCode = @country_code")
		params = append(params, bigquery.QueryParameter{Name: "country_code", Value: strings.ToUpper(q.CountryCode)})
	}
	if q.MinDownload != nil {
		sb.WriteString(" AND download_speed_mbps >= @min_download")
		params = append(params, bigquery.QueryParameter{Name: "min_download", Value: *q.MinDownload})
	}
	if q.MaxDownload != nil {
		sb.WriteString(" AND download_speed_mbps <= @max_download")
		params = append(params, bigquery.QueryParameter{Name: "max_download", Value: *q.MaxDownload})
	}
	sb.WriteString(" ORDER BY test_date DESC")
	return sb.String(), params
}
