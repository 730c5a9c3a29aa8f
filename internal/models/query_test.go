package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListQuery_Defaults(t *testing.T) {
	q, err := ParseListQuery(url.Values{})
	assert.NoError(t, err)

	assert.Nil(t, q.Age)
	assert.Empty(t, q.Name)
	assert.Equal(t, DefaultSortField, q.SortBy)
	assert.Equal(t, OrderAsc, q.Order)
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Equal(t, 0, q.Offset())
}

func TestParseListQuery_AllParams(t *testing.T) {
	values := url.Values{}
	values.Set("age", "30")
	values.Set("name", "ali")
	values.Set("sortBy", "age")
	values.Set("order", "desc")
	values.Set("page", "3")
	values.Set("limit", "25")

	q, err := ParseListQuery(values)
	assert.NoError(t, err)

	assert.NotNil(t, q.Age)
	assert.Equal(t, 30, *q.Age)
	assert.Equal(t, "ali", q.Name)
	assert.Equal(t, "age", q.SortBy)
	assert.Equal(t, OrderDesc, q.Order)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, 50, q.Offset())
}

func TestParseListQuery_OrderAnythingElseIsDesc(t *testing.T) {
	for _, order := range []string{"desc", "DESC", "descending", "random"} {
		values := url.Values{}
		values.Set("order", order)

		q, err := ParseListQuery(values)
		assert.NoError(t, err)
		assert.Equal(t, OrderDesc, q.Order, "order=%s", order)
	}
}

func TestParseListQuery_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{name: "zero page", page: "0", limit: "10", wantPage: 1, wantLimit: 10},
		{name: "negative page", page: "-5", limit: "10", wantPage: 1, wantLimit: 10},
		{name: "zero limit", page: "2", limit: "0", wantPage: 2, wantLimit: DefaultLimit},
		{name: "negative limit", page: "2", limit: "-1", wantPage: 2, wantLimit: DefaultLimit},
		{name: "limit above cap", page: "1", limit: "1000", wantPage: 1, wantLimit: MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			values.Set("page", tt.page)
			values.Set("limit", tt.limit)

			q, err := ParseListQuery(values)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantLimit, q.Limit)
		})
	}
}

func TestParseListQuery_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric age", key: "age", value: "thirty"},
		{name: "non-numeric page", key: "page", value: "one"},
		{name: "non-numeric limit", key: "limit", value: "ten"},
		{name: "unknown sort field", key: "sortBy", value: "password_hash; DROP TABLE users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			values.Set(tt.key, tt.value)

			_, err := ParseListQuery(values)
			assert.Error(t, err)
		})
	}
}

func TestUserDB_FullName(t *testing.T) {
	u := UserDB{FirstName: "Alice", LastName: "Smith"}
	assert.Equal(t, "Alice Smith", u.FullName())
}
