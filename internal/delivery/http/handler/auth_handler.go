package handler

import (
	"net/http"
	"time"

	"installer-track/internal/usecase/auth"
	"installer-track/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.GET("/test", h.Test)
	}
}

// Test is an unauthenticated health probe the clients use to verify
// connectivity and CORS.
func (h *AuthHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "CORS is working!",
		"timestamp": time.Now().UTC(),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Number = utils.SanitizeIdentifier(req.Number)
	req.Code = utils.SanitizeIdentifier(req.Code)

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
