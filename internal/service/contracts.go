package service

//go:generate mockgen -source=contracts.go -destination=mock_contracts.go -package=service

import (
	"context"
	"encoding/json"

	"github.com/dayanaadylkhanova/measurements-api/internal/entity"
)

// CensorshipPort is served by the OONI adapter.
type CensorshipPort interface {
	GetMeasurements(ctx context.Context, q entity.MeasurementQuery) (json.RawMessage, error)
	GetMeasurementDetails(ctx context.Context, id string) (json.RawMessage, error)
	GetTestNames(ctx context.Context) []string
	GetCountries(ctx context.Context) []entity.Country
}

// PerformancePort is served by the M-Lab adapter.
type PerformancePort interface {
	GetNDTMeasurements(ctx context.Context, q entity.NDTQuery) (*entity.NDTResult, error)
	GetAvailableCountries(ctx context.Context, limit int) []entity.PerformanceCountry
	GetStatistics(ctx context.Context, q entity.StatsQuery) (map[string]any, error)
	GetMeasurementByID(ctx context.Context, id string) (map[string]any, error)
}
