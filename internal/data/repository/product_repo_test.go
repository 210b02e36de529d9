package repository

import (
	"strings"
	"testing"
)

func TestAvailableProductsQueryNoFilters(t *testing.T) {
	query, args := availableProductsQuery("", "")

	if !strings.Contains(query, "available = true") {
		t.Error("query must restrict to available rows")
	}
	if strings.Contains(query, "category =") {
		t.Error("empty category must not add a category filter")
	}
	if strings.Contains(query, "ILIKE") {
		t.Error("empty search must not add a name match")
	}
	if !strings.HasSuffix(strings.TrimSpace(query), "ORDER BY name") {
		t.Errorf("query must order by name, got: %s", query)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestAvailableProductsQueryAllSentinel(t *testing.T) {
	query, args := availableProductsQuery("all", "")

	if strings.Contains(query, "category =") {
		t.Error(`category "all" must disable the category filter`)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestAvailableProductsQueryCategoryFilter(t *testing.T) {
	query, args := availableProductsQuery("cakes", "")

	if !strings.Contains(query, "category = $1") {
		t.Errorf("missing category placeholder in: %s", query)
	}
	if len(args) != 1 || args[0] != "cakes" {
		t.Errorf("args = %v, want [cakes]", args)
	}
}

func TestAvailableProductsQuerySearchPattern(t *testing.T) {
	query, args := availableProductsQuery("", "choc")

	if !strings.Contains(query, "name ILIKE $1") {
		t.Errorf("missing case-insensitive name match in: %s", query)
	}
	if len(args) != 1 || args[0] != "%choc%" {
		t.Errorf("args = %v, want [%%choc%%]", args)
	}
}

func TestAvailableProductsQueryBothFilters(t *testing.T) {
	query, args := availableProductsQuery("cakes", "ube")

	if !strings.Contains(query, "category = $1") {
		t.Errorf("missing category placeholder in: %s", query)
	}
	if !strings.Contains(query, "name ILIKE $2") {
		t.Errorf("search placeholder must come after category in: %s", query)
	}
	if len(args) != 2 || args[0] != "cakes" || args[1] != "%ube%" {
		t.Errorf("args = %v, want [cakes %%ube%%]", args)
	}
	if !strings.HasSuffix(strings.TrimSpace(query), "ORDER BY name") {
		t.Errorf("query must order by name, got: %s", query)
	}
}
