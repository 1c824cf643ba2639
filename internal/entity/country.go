package entity

// Country is the censorship client's country shape. Name is not guaranteed to be
// a display name: countries discovered upstream carry the code in both fields.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PerformanceCountry is the shape returned by the warehouse.
type PerformanceCountry struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
}

// FallbackCountries is served when country discovery fails on either client.
var FallbackCountries = []Country{
	{Code: "US", Name: "United States"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "DE", Name: "Germany"},
	{Code: "FR", Name: "France"},
	{Code: "CN", Name: "China"},
	{Code: "RU", Name: "Russia"},
	{Code: "IR", Name: "Iran"},
	{Code: "IN", Name: "India"},
	{Code: "BR", Name: "Brazil"},
	{Code: "JP", Name: "Japan"},
}

// Fallback returns a copy of FallbackCountries so callers can't mutate the table.
func Fallback() []Country {
	return append([]Country(nil), FallbackCountries...)
}

// PerformanceFallback returns FallbackCountries in the warehouse shape.
func PerformanceFallback() []PerformanceCountry {
	out := make([]PerformanceCountry, 0, len(FallbackCountries))
	for _, c := range FallbackCountries {
		out = append(out, PerformanceCountry{CountryCode: c.Code, CountryName: c.Name})
	}
	return out
}
