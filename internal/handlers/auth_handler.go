package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-platform/internal/dtos"
	"github.com/justsurfingit/job-platform/internal/services"
)

type AuthHandler struct {
	Service services.AuthService
}

func NewAuthHandler(s services.AuthService) *AuthHandler {
	return &AuthHandler{Service: s}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, "AuthHandler", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.Service.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, "AuthHandler", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
