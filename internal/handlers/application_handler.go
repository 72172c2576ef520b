package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-platform/internal/dtos"
	"github.com/justsurfingit/job-platform/internal/services"
)

type ApplicationHandler struct {
	Service services.ApplicationService
}

func NewApplicationHandler(s services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Service: s}
}

// Register mounts the application routes on g, normally /api/applications.
func (h *ApplicationHandler) Register(g *gin.RouterGroup) {
	g.POST("/apply", h.ApplyJob)
	g.GET("/employee/:employeeEmail", h.GetByEmployeeEmail)
	g.GET("/recruiter/:recruiterEmail", h.GetByRecruiterEmail)
	g.GET("/job/:jobId", h.GetByJobID)
	g.PUT("/status", h.UpdateStatus)
}

// ApplyJob is POST /apply
func (h *ApplicationHandler) ApplyJob(c *gin.Context) {
	var req dtos.ApplicationDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Service.ApplyJob(c.Request.Context(), req); err != nil {
		writeError(c, "ApplicationHandler", err)
		return
	}
	c.String(http.StatusOK, "Application Submitted")
}

func (h *ApplicationHandler) GetByEmployeeEmail(c *gin.Context) {
	apps, err := h.Service.GetByEmployeeEmail(c.Request.Context(), c.Param("employeeEmail"))
	if err != nil {
		writeError(c, "ApplicationHandler", err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) GetByRecruiterEmail(c *gin.Context) {
	apps, err := h.Service.GetByRecruiterEmail(c.Request.Context(), c.Param("recruiterEmail"))
	if err != nil {
		writeError(c, "ApplicationHandler", err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) GetByJobID(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "jobId must be an integer"})
		return
	}
	apps, err := h.Service.GetByJobID(c.Request.Context(), jobID)
	if err != nil {
		writeError(c, "ApplicationHandler", err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateStatus is PUT /status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dtos.UpdateApplicationStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Service.UpdateApplicationStatus(c.Request.Context(), req); err != nil {
		writeError(c, "ApplicationHandler", err)
		return
	}
	c.String(http.StatusOK, "Status Updated")
}
