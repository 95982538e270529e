package handling

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"atelier_server/services"

	"github.com/google/uuid"
)

// ParseRepairListOptions parses HTTP query parameters into RepairListOptions
func ParseRepairListOptions(r *http.Request) (*services.RepairListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &services.RepairListOptions{}, nil
	}

	opts := &services.RepairListOptions{}
	var err error
	var valInt int

	// Parse pagination parameters
	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if status := query.Get("status"); status != "" {
		opts.Status = &status
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	if modelID := query.Get("product_model_id"); modelID != "" {
		id, err := uuid.Parse(modelID)
		if err != nil {
			return nil, err
		}
		opts.ProductModelId = &id
	}

	// Parse date filters
	if dateFrom := query.Get("date_from"); dateFrom != "" {
		t, err := time.Parse("2006-01-02", dateFrom)
		if err != nil {
			return nil, err
		}
		opts.DateFrom = &t
	}

	if dateTo := query.Get("date_to"); dateTo != "" {
		t, err := time.Parse("2006-01-02", dateTo)
		if err != nil {
			return nil, err
		}
		opts.DateTo = &t
	}

	// Parse sorting parameters
	if sortBy := query.Get("sort_by"); sortBy != "" {
		opts.SortBy = sortBy
	}

	if sortDirection := query.Get("sort_direction"); sortDirection != "" {
		opts.SortDirection = strings.ToUpper(sortDirection)
	}

	return opts, nil
}

// ParseIssueListOptions parses HTTP query parameters into IssueListOptions
func ParseIssueListOptions(r *http.Request) (*services.IssueListOptions, error) {
	query := r.URL.Query()

	if len(query) == 0 {
		return &services.IssueListOptions{}, nil
	}

	opts := &services.IssueListOptions{}
	var err error
	var valBool bool

	if category := query.Get("category_type"); category != "" {
		opts.CategoryType = &category
	}

	if isActive := query.Get("is_active"); isActive != "" {
		if valBool, err = strconv.ParseBool(isActive); err != nil {
			return nil, err
		}
		opts.IsActive = &valBool
	}

	if deviceType := query.Get("device_type"); deviceType != "" {
		opts.DeviceTypeSlug = &deviceType
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	return opts, nil
}
