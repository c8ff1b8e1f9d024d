package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/pkg/helpers"
	"github.com/HiI2O/lunch-hub/pkg/response"
)

// writeDomainError maps domain error kinds onto HTTP statuses. Anything
// that is not a domain error is an internal failure: logged, and hidden
// behind a generic 500.
func writeDomainError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errs.IsValidation(err):
		response.Fail(c, http.StatusBadRequest, err.Error(), nil)
	case errs.IsNotFound(err):
		response.Fail(c, http.StatusNotFound, err.Error(), nil)
	case errs.IsConflict(err):
		response.Fail(c, http.StatusConflict, err.Error(), nil)
	default:
		helpers.LogError(logger, "unhandled error", err, logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		})
		response.Fail(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}
