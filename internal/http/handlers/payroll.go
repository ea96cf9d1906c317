package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	intconfig "numerica-backend/internal/config"
	"numerica-backend/internal/http/middleware"
	"numerica-backend/internal/query"
	"numerica-backend/internal/repositories"
	"numerica-backend/internal/services"
	"numerica-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// firstQuery returns the first non-empty value among aliased query keys.
// Several keys have both a legacy Spanish and an English alias.
func firstQuery(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			return v
		}
	}
	return ""
}

// listRequestFromQuery maps the flat query-parameter contract onto a
// ListRequest. Unrecognized parameters are ignored. pageSize defaults only
// when absent or non-numeric; an explicit out-of-range number is clamped
// downstream, so pageSize=0 becomes 1, not the default.
func listRequestFromQuery(c *gin.Context) services.ListRequest {
	page, _ := strconv.Atoi(c.Query("page"))

	pageSize := services.DefaultPageSize
	if raw := c.Query("pageSize"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			pageSize = n
		}
	}

	return services.ListRequest{
		Criteria: query.FilterCriteria{
			Search:    c.Query("q"),
			Sucursal:  firstQuery(c, "sucursal", "branch"),
			Puesto:    firstQuery(c, "puesto", "position"),
			Status:    c.Query("status"),
			Period:    firstQuery(c, "cveper", "period"),
			Categoria: firstQuery(c, "categoria", "category"),
		},
		SortBy:   c.Query("sortBy"),
		SortDir:  c.Query("sortDir"),
		Page:     page,
		PageSize: pageSize,
	}
}

func payrollService(c *gin.Context, env intconfig.Env) services.PayrollService {
	return services.PayrollService{
		Repo: repositories.PayrollRepository{
			DB:           intconfig.DB,
			QueryTimeout: env.QueryTimeout,
			CandidateCap: env.CandidateCap,
		},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/payroll
func GetPayroll(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := listRequestFromQuery(c)

		items, pagination, err := payrollService(c, env).List(c.Request.Context(), req)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		RespondPage(c, items, pagination)
	}
}

// GET /api/payroll/export
func ExportPayrollPDF(env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := listRequestFromQuery(c)

		svc := services.ExportService{
			Payroll:   payrollService(c, env),
			RequestID: middleware.GetRequestID(c),
		}

		data, name, err := svc.GeneratePDF(c.Request.Context(), req)
		if err != nil {
			RespondDomainError(c, err)
			return
		}

		utils.LogEvent(middleware.GetRequestID(c), "export", "download",
			fmt.Sprintf("user_id=%d file=%s bytes=%d", middleware.GetAuthUserID(c), name, len(data)))

		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
		c.Data(http.StatusOK, "application/pdf", data)
	}
}
