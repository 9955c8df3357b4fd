package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
)

// respondServiceError memetakan taksonomi error service ke kode HTTP
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRestaurantNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrMealNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrMealUnavailable),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrValidation):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrForbidden):
		utils.RespondError(c, http.StatusForbidden, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

// currentUser mengambil identitas principal yang diset oleh AuthMiddleware
func currentUser(c *gin.Context) (uint, string, bool) {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return 0, "", false
	}

	userID, ok := userIDInterface.(uint)
	if !ok {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("invalid user id type"))
		return 0, "", false
	}

	role := c.GetString("role")
	return userID, role, true
}
