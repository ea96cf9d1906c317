package handlers

import (
	intconfig "numerica-backend/internal/config"
	"numerica-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func facetRepo(env intconfig.Env) repositories.FacetRepository {
	return repositories.FacetRepository{
		DB:           intconfig.DB,
		QueryTimeout: env.QueryTimeout,
	}
}

// GET /api/payroll/filters
func GetPayrollFilters(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := listRequestFromQuery(c).Criteria

		set, err := facetRepo(env).Facets(c.Request.Context(), criteria)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		RespondData(c, set)
	}
}

// GET /api/payroll/periodos
func GetPayrollPeriods(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		periods, err := facetRepo(env).ListPeriods(c.Request.Context())
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		RespondData(c, periods)
	}
}

// GET /api/payroll/unique-count
func GetPayrollUniqueCount(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := listRequestFromQuery(c).Criteria

		count, err := facetRepo(env).UniqueCount(c.Request.Context(), criteria)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		RespondData(c, count)
	}
}
