package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-platform/internal/dtos"
	"github.com/justsurfingit/job-platform/internal/middleware"
	"github.com/justsurfingit/job-platform/internal/services"
)

type AdminHandler struct {
	Service services.AdminService
}

func NewAdminHandler(s services.AdminService) *AdminHandler {
	return &AdminHandler{Service: s}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Service.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, "AdminHandler", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListUsersByRole is GET /admins/users/role?role=RECRUITER
func (h *AdminHandler) ListUsersByRole(c *gin.Context) {
	users, err := h.Service.ListUsersByRole(c.Request.Context(), c.Query("role"))
	if err != nil {
		writeError(c, "AdminHandler", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	var req dtos.UpdateUserStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.Service.SetUserActive(c.Request.Context(), middleware.CallerEmail(c), req)
	if err != nil {
		writeError(c, "AdminHandler", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) SystemStatus(c *gin.Context) {
	status, err := h.Service.SystemStatus(c.Request.Context())
	if err != nil {
		writeError(c, "AdminHandler", err)
		return
	}
	c.JSON(http.StatusOK, status)
}
