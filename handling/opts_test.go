package handling

import (
	"net/http/httptest"
	"testing"
)

func TestParseRepairListOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/repairs", nil)

	opts, err := ParseRepairListOptions(r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.Page != 0 || opts.PageSize != 0 {
		t.Fatalf("expected zero pagination defaults, got %+v", opts)
	}
	if opts.Status != nil || opts.SearchTerm != "" {
		t.Fatalf("expected no filters, got %+v", opts)
	}
}

func TestParseRepairListOptionsFilters(t *testing.T) {
	r := httptest.NewRequest("GET", "/repairs?page=2&page_size=25&status=en-cours&search=dupont&date_from=2026-01-01&date_to=2026-02-01&sort_by=date&sort_direction=desc", nil)

	opts, err := ParseRepairListOptions(r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.Page != 2 || opts.PageSize != 25 {
		t.Fatalf("unexpected pagination: %+v", opts)
	}
	if opts.Status == nil || *opts.Status != "en-cours" {
		t.Fatalf("unexpected status: %+v", opts.Status)
	}
	if opts.SearchTerm != "dupont" {
		t.Fatalf("unexpected search term: %q", opts.SearchTerm)
	}
	if opts.DateFrom == nil || opts.DateTo == nil {
		t.Fatalf("expected both date bounds to be set")
	}
	if opts.SortBy != "date" || opts.SortDirection != "DESC" {
		t.Fatalf("unexpected sorting: %q %q", opts.SortBy, opts.SortDirection)
	}
}

func TestParseRepairListOptionsRejectsBadInput(t *testing.T) {
	cases := []string{
		"/repairs?page=abc",
		"/repairs?product_model_id=not-a-uuid",
		"/repairs?date_from=01/02/2026",
	}

	for _, url := range cases {
		r := httptest.NewRequest("GET", url, nil)
		if _, err := ParseRepairListOptions(r); err == nil {
			t.Fatalf("expected error for %q", url)
		}
	}
}

func TestParseIssueListOptions(t *testing.T) {
	r := httptest.NewRequest("GET", "/issues?category_type=part_based&is_active=true&search=ecran", nil)

	opts, err := ParseIssueListOptions(r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.CategoryType == nil || *opts.CategoryType != "part_based" {
		t.Fatalf("unexpected category: %+v", opts.CategoryType)
	}
	if opts.IsActive == nil || !*opts.IsActive {
		t.Fatalf("expected is_active filter to be true")
	}
	if opts.SearchTerm != "ecran" {
		t.Fatalf("unexpected search term: %q", opts.SearchTerm)
	}
}

func TestParseIssueListOptionsRejectsBadBool(t *testing.T) {
	r := httptest.NewRequest("GET", "/issues?is_active=maybe", nil)

	if _, err := ParseIssueListOptions(r); err == nil {
		t.Fatalf("expected error for invalid is_active")
	}
}

func TestParseIssueListOptionsDeviceType(t *testing.T) {
	r := httptest.NewRequest("GET", "/issues?device_type=smartphone", nil)

	opts, err := ParseIssueListOptions(r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.DeviceTypeSlug == nil || *opts.DeviceTypeSlug != "smartphone" {
		t.Fatalf("expected device type slug smartphone, got %v", opts.DeviceTypeSlug)
	}
}
