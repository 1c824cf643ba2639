package entity

type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type TestsResponse struct {
	Tests []string `json:"tests"`
}

type CountriesResponse struct {
	Countries []Country `json:"countries"`
}

type PerformanceCountriesResponse struct {
	Countries []PerformanceCountry `json:"countries"`
}

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NDTResult wraps rows from the NDT unified downloads table.
type NDTResult struct {
	Dataset   string           `json:"dataset"`
	Count     int              `json:"count"`
	DateRange DateRange        `json:"date_range"`
	Results   []map[string]any `json:"results"`
}
