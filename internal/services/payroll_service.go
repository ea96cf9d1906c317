package services

import (
	"context"
	"fmt"

	"numerica-backend/internal/domain/models"
	"numerica-backend/internal/query"
	"numerica-backend/internal/repositories"
	"numerica-backend/internal/utils"
)

const (
	// MaxPageSize bounds how many rows a single page may carry.
	MaxPageSize = 1000
	// DefaultPageSize applies when the caller sends nothing usable.
	DefaultPageSize = 50
)

// ListRequest carries one payroll listing request through the pipeline.
type ListRequest struct {
	Criteria query.FilterCriteria
	SortBy   string
	SortDir  string
	Page     int
	PageSize int
}

// PayrollService wires filter building, sort resolution, pagination
// clamping and execution for the listing endpoints.
type PayrollService struct {
	Repo      repositories.PayrollRepository
	RequestID string
}

// List executes one dashboard query and returns the page plus assembled
// pagination metadata.
func (s PayrollService) List(ctx context.Context, req ListRequest) ([]models.PayrollRecord, models.Pagination, error) {
	page := ClampPage(req.Page)
	pageSize := ClampPageSize(req.PageSize)

	spec := query.BuildFilterSpec(req.Criteria)
	sortSpec := query.ResolveSort(req.SortBy, req.SortDir)

	utils.LogEvent(s.RequestID, "payroll", "list",
		fmt.Sprintf("page=%d page_size=%d predicates=%d category=%q sort=%s",
			page, pageSize, len(spec.Predicates), spec.Category, sortSpec.Key))

	result, err := s.Repo.Fetch(ctx, spec, sortSpec, page, pageSize)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return result.Items, AssemblePagination(page, pageSize, result.Total, result.Truncated), nil
}

// ClampPage never rejects bad input; anything below 1 becomes page 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampPageSize folds the requested size into [1, MaxPageSize]. Malformed
// sizes clamp instead of erroring; defaulting an absent size is the
// transport layer's call.
func ClampPageSize(size int) int {
	if size < 1 {
		return 1
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// AssemblePagination derives totalPages = ceil(total/pageSize).
func AssemblePagination(page, pageSize, total int, truncated bool) models.Pagination {
	return models.Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: (total + pageSize - 1) / pageSize,
		Truncated:  truncated,
	}
}
