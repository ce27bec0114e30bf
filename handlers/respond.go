package handlers

import (
	"errors"
	"net/http"

	"lexhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps typed service errors onto HTTP status codes. Anything
// untyped is a 500 and gets logged with its cause.
func respondError(c *gin.Context, err error) {
	var (
		notFound   utils.NotFoundError
		forbidden  utils.ForbiddenError
		conflict   utils.ConflictError
		badRequest utils.BadRequestError
	)

	switch {
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, notFound.Error(), "")
	case errors.As(err, &forbidden):
		utils.JSONError(c, http.StatusForbidden, forbidden.Error(), "")
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, conflict.Error(), "")
	case errors.As(err, &badRequest):
		utils.JSONError(c, http.StatusBadRequest, badRequest.Error(), "")
	default:
		getLogger(c).Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal server error", "")
	}
}

// currentUserID returns the authenticated user set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return "", false
	}
	return userID, true
}
