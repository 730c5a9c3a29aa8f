package models

// Supported grouping modes for /users/aggregated.
const (
	AggregateByAge   = "age"
	AggregateByCount = "count"
)

// CityAvgAge is one row of the per-city average age aggregation.
type CityAvgAge struct {
	City   string  `json:"city" db:"city"`
	AvgAge float64 `json:"avg_age" db:"avg_age"`
}

// CityCount is one row of the per-city user count aggregation.
type CityCount struct {
	City  string `json:"city" db:"city"`
	Count int64  `json:"count" db:"count"`
}
