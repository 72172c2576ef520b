package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-platform/internal/middleware"
	"github.com/justsurfingit/job-platform/internal/models"
)

type Routes struct {
	Applications *ApplicationHandler
	Auth         *AuthHandler
	Jobs         *JobHandler
	Admin        *AdminHandler
	Profiles     *ProfileHandler
	Tokens       middleware.TokenParser
}

// Mount registers every route under /api.
func (rt Routes) Mount(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("/health", HealthCheck)

	rt.Applications.Register(api.Group("/applications"))

	authGroup := api.Group("/auth")
	authGroup.POST("/register", rt.Auth.Register)
	authGroup.POST("/login", rt.Auth.Login)

	jobs := api.Group("/jobposts")
	jobs.GET("", rt.Jobs.ListJobs)
	jobs.GET("/search/:term", rt.Jobs.SearchJobs)
	jobs.GET("/recruiters/:recruiterEmail", rt.Jobs.GetByRecruiter)

	authed := middleware.AuthRequired(rt.Tokens)

	posting := jobs.Group("", authed, middleware.RequireRole(models.RoleRecruiter, models.RoleAdmin))
	posting.POST("", rt.Jobs.CreateJob)
	posting.POST("/extract", rt.Jobs.ParseJob)

	admins := api.Group("/admins", authed, middleware.RequireRole(models.RoleAdmin))
	admins.GET("/users", rt.Admin.ListUsers)
	admins.GET("/users/role", rt.Admin.ListUsersByRole)
	admins.PUT("/users/status", rt.Admin.UpdateUserStatus)
	admins.GET("/status", rt.Admin.SystemStatus)

	employees := api.Group("/employees", authed)
	employees.GET("/:email", rt.Profiles.GetEmployee)
	employees.POST("/update", middleware.RequireRole(models.RoleEmployee, models.RoleAdmin), rt.Profiles.UpdateEmployee)

	recruiters := api.Group("/recruiters", authed)
	recruiters.GET("/:email", rt.Profiles.GetRecruiter)
	recruiters.POST("/save", middleware.RequireRole(models.RoleRecruiter, models.RoleAdmin), rt.Profiles.SaveRecruiter)
}
