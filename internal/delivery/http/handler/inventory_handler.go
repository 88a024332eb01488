package handler

import (
	"net/http"

	"installer-track/internal/middleware"
	"installer-track/internal/usecase/inventory"
	"installer-track/pkg/utils"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	service *inventory.Service
}

func NewInventoryHandler(service *inventory.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// RegisterRoutes registers the unauthenticated inventory surface.
func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inv := router.Group("/inventory")
	{
		inv.GET("/branch/:branchName", h.GetInventoryByBranch)
	}
}

// RegisterProtectedRoutes registers the token-scoped inventory surface.
func (h *InventoryHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	inv := router.Group("/inventory")
	{
		inv.GET("", h.GetInventory)
		inv.POST("/acknowledge/:deviceId", h.AcknowledgeDevice)
		inv.POST("/reject/:deviceId", h.RejectDevice)
	}
}

// GetInventory lists the caller's branch inventory with a status summary.
// The branch comes from the token claim, never from the request.
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	branch := middleware.GetBranch(c)
	if branch == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Branch not found in token.")
		return
	}

	devices, summary, err := h.service.ListByBranch(c.Request.Context(), branch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"branch":        branch,
		"deviceCount":   len(devices),
		"devices":       devices,
		"statusSummary": summary,
	})
}

// GetInventoryByBranch lists a named branch's inventory without
// authentication. No status summary on this variant.
func (h *InventoryHandler) GetInventoryByBranch(c *gin.Context) {
	branchName := utils.SanitizeIdentifier(c.Param("branchName"))
	if branchName == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Branch name is required")
		return
	}

	devices, _, err := h.service.ListByBranch(c.Request.Context(), branchName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"branch":      branchName,
		"deviceCount": len(devices),
		"devices":     devices,
	})
}

// AcknowledgeDevice transitions a pending device to Processing.
func (h *InventoryHandler) AcknowledgeDevice(c *gin.Context) {
	deviceID := utils.SanitizeIdentifier(c.Param("deviceId"))
	if deviceID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Device ID is required")
		return
	}

	branch := middleware.GetBranch(c)
	if branch == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Branch not found in token.")
		return
	}

	resp, err := h.service.Acknowledge(c.Request.Context(), deviceID, branch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RejectDevice transitions a pending or processing device to Rejected.
func (h *InventoryHandler) RejectDevice(c *gin.Context) {
	deviceID := utils.SanitizeIdentifier(c.Param("deviceId"))
	if deviceID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Device ID is required")
		return
	}

	branch := middleware.GetBranch(c)
	if branch == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Branch not found in token.")
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), deviceID, branch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
