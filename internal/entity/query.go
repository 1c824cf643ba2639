package entity

// MeasurementQuery filters the OONI measurements listing. Empty strings are omitted upstream.
type MeasurementQuery struct {
	TestName string
	ProbeCC  string
	Since    string
	Until    string
	Limit    int
	Offset   int
}

// NDTQuery filters NDT rows. Dates are YYYY-MM-DD; empty means yesterday.
type NDTQuery struct {
	StartDate   string
	EndDate     string
	CountryCode string
	MinDownload *float64
	MaxDownload *float64
	Limit       int
}

type StatsQuery struct {
	StartDate   string
	EndDate     string
	CountryCode string
}
