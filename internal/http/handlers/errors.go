package handlers

import (
	"errors"
	"net/http"

	"numerica-backend/internal/domain"
	"numerica-backend/internal/http/middleware"
	"numerica-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// RespondDomainError is the single place an upstream failure becomes the
// public error shape. Data-access detail is logged, never returned.
func RespondDomainError(c *gin.Context, err error) {
	reqID := middleware.GetRequestID(c)

	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsDataAccess(err):
		var dae domain.DataAccessError
		if errors.As(err, &dae) && dae.Err != nil {
			utils.LogEvent(reqID, "db", "query_failed", dae.Op+": "+dae.Err.Error())
		}
		RespondError(c, http.StatusInternalServerError, "data_access_error", "error al consultar los datos")
	case domain.IsInternal(err):
		utils.LogEvent(reqID, "http", "internal_error", err.Error())
		RespondError(c, http.StatusInternalServerError, "internal_error", err.Error())
	default:
		utils.LogEvent(reqID, "http", "internal_error", err.Error())
		RespondError(c, http.StatusInternalServerError, "internal_error", "error interno")
	}
}
