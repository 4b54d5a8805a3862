package handlers

import (
	"net/http"

	"service_inventory/internal/adapter/http/dto/response"
	"service_inventory/internal/adapter/http/middleware"
	"service_inventory/internal/domain/entities"
	"service_inventory/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization is required", http.StatusUnauthorized)
)

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, response.OK(message, data))
}

func respondError(c *gin.Context, err error) {
	appErr := pkg.FromError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// respondBindError reports a payload that failed binding or validation.
func respondBindError(c *gin.Context, err error) {
	appErr := pkg.NewDomainError(errInvalidRequest.Code, errInvalidRequest.Message, err, errInvalidRequest.HTTPStatus)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func principal(c *gin.Context) (entities.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
	}
	return p, ok
}
