package mlab

//go:generate mockgen -source=runner.go -destination=mock_runner_test.go -package=mlab

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/bigquery"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// QueryRunner executes one SQL statement against the warehouse and returns its rows.
type QueryRunner interface {
	Query(ctx context.Context, sql string, params []bigquery.QueryParameter) ([]map[string]any, error)
}

type ConnectConfig struct {
	ProjectID       string
	CredentialsFile string
}

// newBigQueryClient is swapped in tests.
var newBigQueryClient = bigquery.NewClient

// BigQueryRunner is the QueryRunner backed by cloud.google.com/go/bigquery.
type BigQueryRunner struct {
	client *bigquery.Client
	// err is returned by the first Query when no client could be built.
	err error
	// Mode records which credential step produced the client.
	Mode string
}

type connectStep struct {
	mode string
	opts []option.ClientOption
}

// Connect builds a BigQuery client in three steps: the key file, ambient
// credentials, then no authentication. A step runs only if the previous one
// failed. Connect never fails: if every step fails, the error surfaces on the
// first Query.
func Connect(ctx context.Context, cfg ConnectConfig, log *zap.Logger) *BigQueryRunner {
	if log == nil {
		log = zap.NewNop()
	}
	project := cfg.ProjectID
	if project == "" {
		project = bigquery.DetectProjectID
	}

	var steps []connectStep
	if cfg.CredentialsFile != "" {
		if _, err := os.Stat(cfg.CredentialsFile); err == nil {
			steps = append(steps, connectStep{mode: "credentials_file", opts: []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsFile)}})
		} else {
			log.Warn("bigquery credentials file not readable", zap.String("path", cfg.CredentialsFile), zap.Error(err))
		}
	}
	steps = append(steps,
		connectStep{mode: "default_credentials"},
		connectStep{mode: "unauthenticated", opts: []option.ClientOption{option.WithoutAuthentication()}},
	)

	var errs []error
	for _, s := range steps {
		client, err := newBigQueryClient(ctx, project, s.opts...)
		if err == nil {
			log.Info("bigquery client ready", zap.String("mode", s.mode), zap.String("project", cfg.ProjectID))
			return &BigQueryRunner{client: client, Mode: s.mode}
		}
		log.Warn("bigquery client step failed", zap.String("mode", s.mode), zap.Error(err))
		errs = append(errs, fmt.Errorf("%s: %w", s.mode, err))
	}
	return &BigQueryRunner{err: fmt.Errorf("bigquery client unavailable: %w", errors.Join(errs...)), Mode: "none"}
}

func (r *BigQueryRunner) Query(ctx context.Context, sql string, params []bigquery.QueryParameter) ([]map[string]any, error) {
	if r.client == nil {
		return nil, r.err
	}
	q := r.client.Query(sql)
	q.Parameters = params
	it, err := q.Read(ctx)
	if err != nil {
		return nil, err
	}
	rows := []map[string]any{}
	for {
		var row map[string]bigquery.Value
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, normalizeRow(row))
	}
	return rows, nil
}

func (r *BigQueryRunner) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

func normalizeRow(row map[string]bigquery.Value) map[string]any {
	out := make(map[string]any, len(row))
	for k, v := range row {
		out[k] = normalizeValue(v)
	}
	return out
}

// normalizeValue unwraps nested records and repeated fields into plain maps and slices.
func normalizeValue(v bigquery.Value) any {
	switch t := v.(type) {
	case map[string]bigquery.Value:
		return normalizeRow(t)
	case []bigquery.Value:
		out := make([]any, len(t))
		for i := range t {
			out[i] = normalizeValue(t[i])
		}
		return out
	default:
		return t
	}
}
