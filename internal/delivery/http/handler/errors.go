package handler

import (
	"errors"
	"net/http"

	domainInventory "installer-track/internal/domain/inventory"
	"installer-track/internal/logger"
	"installer-track/internal/usecase/inventory"
	appErrors "installer-track/pkg/errors"
	"installer-track/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondWithError maps service errors to HTTP responses. Datastore and
// unexpected failures are logged with detail but surface as a generic 500.
func respondWithError(c *gin.Context, err error) {
	var conflictErr *inventory.ConflictError
	var appErr *appErrors.AppError

	switch {
	case errors.Is(err, appErrors.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, appErrors.ErrBranchClaimMissing):
		utils.ErrorResponse(c, http.StatusUnauthorized, "Branch not found in token.")
	case errors.Is(err, domainInventory.ErrDeviceNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "Device not found for your branch.")
	case errors.As(err, &conflictErr):
		utils.ErrorResponse(c, http.StatusBadRequest, conflictErr.Message)
	case errors.As(err, &appErr) && appErr.Code == "VALIDATION_ERROR":
		utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
	default:
		logger.Error("Request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
