package models

import (
	"fmt"
	"net/url"
	"strconv"
)

// Pagination and sorting defaults for user listing.
const (
	DefaultPage      = 1
	DefaultLimit     = 10
	MaxLimit         = 100
	DefaultSortField = "first_name"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// sortFields is the whitelist of columns a caller may sort by.
// The sort key is interpolated into ORDER BY, so it must never come from raw input.
var sortFields = map[string]struct{}{
	"first_name": {},
	"last_name":  {},
	"email":      {},
	"age":        {},
	"city":       {},
	"created_at": {},
}

// ListQuery is the per-request specification for filtering, sorting and
// paginating the user collection.
type ListQuery struct {
	Age    *int   // Exact age match when set
	Name   string // Case-insensitive substring match against the full name
	SortBy string // Whitelisted column name
	Order  string // OrderAsc or OrderDesc
	Page   int    // 1-based page number
	Limit  int    // Page size
}

// Offset returns the number of records to skip for the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ParseListQuery builds a ListQuery from raw URL query parameters.
//
// Missing parameters fall back to defaults; page and limit are clamped so the
// resulting query is always well-formed. A non-numeric age, page or limit and
// an unknown sort field are reported as errors.
func ParseListQuery(values url.Values) (ListQuery, error) {
	q := ListQuery{
		SortBy: DefaultSortField,
		Order:  OrderAsc,
		Page:   DefaultPage,
		Limit:  DefaultLimit,
	}

	if raw := values.Get("age"); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			return ListQuery{}, fmt.Errorf("age must be an integer, got %q", raw)
		}
		q.Age = &age
	}

	q.Name = values.Get("name")

	if raw := values.Get("sortBy"); raw != "" {
		if _, ok := sortFields[raw]; !ok {
			return ListQuery{}, fmt.Errorf("unknown sort field %q", raw)
		}
		q.SortBy = raw
	}

	// Anything other than "asc" sorts descending.
	if raw := values.Get("order"); raw != "" && raw != OrderAsc {
		q.Order = OrderDesc
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return ListQuery{}, fmt.Errorf("page must be an integer, got %q", raw)
		}
		q.Page = page
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return ListQuery{}, fmt.Errorf("limit must be an integer, got %q", raw)
		}
		q.Limit = limit
	}

	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}

	return q, nil
}
