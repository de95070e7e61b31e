package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kubev2v/threadpool/internal/services"
)

type Handler struct {
	jobSrv *services.JobService
}

func New(jobSrv *services.JobService) *Handler {
	return &Handler{
		jobSrv: jobSrv,
	}
}

// RegisterHandlers mounts the handler routes on router.
func RegisterHandlers(router *gin.RouterGroup, h *Handler) {
	router.GET("/pool", h.GetPool)
	router.POST("/jobs", h.SubmitJobs)
}
