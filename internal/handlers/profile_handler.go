package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-platform/internal/dtos"
	"github.com/justsurfingit/job-platform/internal/middleware"
	"github.com/justsurfingit/job-platform/internal/models"
	"github.com/justsurfingit/job-platform/internal/services"
)

type ProfileHandler struct {
	Service services.ProfileService
}

func NewProfileHandler(s services.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: s}
}

func (h *ProfileHandler) GetEmployee(c *gin.Context) {
	profile, err := h.Service.GetEmployeeProfile(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, "ProfileHandler", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateEmployee is POST /employees/update. Employees can only edit their
// own profile.
func (h *ProfileHandler) UpdateEmployee(c *gin.Context) {
	var req dtos.EmployeeProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.Email = profileOwner(c, req.Email)

	profile, err := h.Service.UpdateEmployeeProfile(c.Request.Context(), req)
	if err != nil {
		writeError(c, "ProfileHandler", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetRecruiter(c *gin.Context) {
	profile, err := h.Service.GetRecruiterProfile(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, "ProfileHandler", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) SaveRecruiter(c *gin.Context) {
	var req dtos.RecruiterProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.Email = profileOwner(c, req.Email)

	profile, err := h.Service.SaveRecruiterProfile(c.Request.Context(), req)
	if err != nil {
		writeError(c, "ProfileHandler", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// profileOwner lets admins name the profile to edit; everyone else edits
// their own.
func profileOwner(c *gin.Context, requested string) string {
	if middleware.CallerRole(c) == models.RoleAdmin && requested != "" {
		return requested
	}
	return middleware.CallerEmail(c)
}
