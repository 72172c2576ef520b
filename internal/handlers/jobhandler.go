package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-platform/internal/dtos"
	"github.com/justsurfingit/job-platform/internal/logger"
	"github.com/justsurfingit/job-platform/internal/middleware"
	"github.com/justsurfingit/job-platform/internal/models"
	"github.com/justsurfingit/job-platform/internal/services"
)

// JobExtractor is satisfied by *services.LLMService.
type JobExtractor interface {
	ExtractJobDetails(ctx context.Context, rawHTML string) (string, error)
}

type JobHandler struct {
	Extractor  JobExtractor
	JobService services.JobPostService
}

// NewJobHandler accepts a nil extractor; extraction then answers 503.
func NewJobHandler(extractor JobExtractor, j services.JobPostService) *JobHandler {
	return &JobHandler{Extractor: extractor, JobService: j}
}

// ParseJob is the POST /jobposts/extract endpoint
func (h *JobHandler) ParseJob(c *gin.Context) {
	if h.Extractor == nil {
		writeError(c, "JobHandler", fmt.Errorf("%w: AI extraction is not configured", services.ErrUnavailable))
		return
	}

	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	extractedJSON, err := h.Extractor.ExtractJobDetails(c.Request.Context(), req.RawHTML)
	if err != nil {
		logger.Error("JobHandler", "extract "+req.URL, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI extraction failed"})
		return
	}

	// RawMessage keeps the model's JSON from being re-escaped as a string
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    json.RawMessage(extractedJSON),
	})
}

// CreateJob is POST /jobposts. Recruiters always post under their own
// address; admins may post on a recruiter's behalf.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobPostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if middleware.CallerRole(c) != models.RoleAdmin || req.RecruiterEmail == "" {
		req.RecruiterEmail = middleware.CallerEmail(c)
	}

	job, err := h.JobService.CreateJobPost(c.Request.Context(), req)
	if err != nil {
		writeError(c, "JobHandler", err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.ListJobPosts(c.Request.Context())
	if err != nil {
		writeError(c, "JobHandler", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) SearchJobs(c *gin.Context) {
	jobs, err := h.JobService.SearchJobPosts(c.Request.Context(), c.Param("term"))
	if err != nil {
		writeError(c, "JobHandler", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetByRecruiter(c *gin.Context) {
	jobs, err := h.JobService.GetByRecruiterEmail(c.Request.Context(), c.Param("recruiterEmail"))
	if err != nil {
		writeError(c, "JobHandler", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}
