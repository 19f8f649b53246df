package postgres

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestBuildFilteredQueryNoFilters(t *testing.T) {
	query, args := buildFilteredQuery(domain.JobFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestBuildFilteredQueryTitleOnly(t *testing.T) {
	query, args := buildFilteredQuery(domain.JobFilter{Title: strPtr("PHP")})

	assert.Contains(t, query, "WHERE j.title LIKE '%' || $1 || '%'")
	assert.Equal(t, []any{"PHP"}, args)
}

func TestBuildFilteredQueryAllFiltersCombineWithAnd(t *testing.T) {
	query, args := buildFilteredQuery(domain.JobFilter{
		Title:           strPtr("PHP"),
		CompanyName:     strPtr("Jagaad"),
		CompanyLocation: strPtr("Italy"),
	})

	assert.Contains(t, query, "j.title LIKE '%' || $1 || '%'")
	assert.Contains(t, query, "c.name LIKE '%' || $2 || '%'")
	assert.Contains(t, query, "c.location LIKE '%' || $3 || '%'")
	assert.Contains(t, query, " AND ")
	assert.Equal(t, []any{"PHP", "Jagaad", "Italy"}, args)
}

func TestBuildFilteredQuerySubsetSkipsAbsent(t *testing.T) {
	query, args := buildFilteredQuery(domain.JobFilter{CompanyLocation: strPtr("Italy")})

	assert.NotContains(t, query, "j.title LIKE")
	assert.NotContains(t, query, "c.name LIKE")
	assert.Contains(t, query, "c.location LIKE '%' || $1 || '%'")
	assert.Equal(t, []any{"Italy"}, args)
}

func TestBuildFilteredQueryEmptyStringStillFilters(t *testing.T) {
	query, args := buildFilteredQuery(domain.JobFilter{Title: strPtr("")})

	assert.Contains(t, query, "j.title LIKE '%' || $1 || '%'")
	assert.Equal(t, []any{""}, args)
}
