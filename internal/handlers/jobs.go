package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/threadpool/api/v1"
	srvErrors "github.com/kubev2v/threadpool/pkg/errors"
)

// GetPool returns the pool counters and the workload summary
// (GET /pool)
func (h *Handler) GetPool(c *gin.Context) {
	stats, summary := h.jobSrv.Status()
	c.JSON(http.StatusOK, v1.NewPoolStatus(stats, summary))
}

// SubmitJobs queues a batch of synthetic jobs
// (POST /jobs)
func (h *Handler) SubmitJobs(c *gin.Context) {
	var req v1.JobsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: err.Error()})
		return
	}

	spec, err := req.ToSpec()
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: err.Error()})
		return
	}

	ids, err := h.jobSrv.Submit(c.Request.Context(), spec)
	if err != nil {
		if srvErrors.IsPoolClosedError(err) {
			c.JSON(http.StatusServiceUnavailable, v1.NewPartialErrorResponse("pool is shutting down", ids))
			return
		}
		zap.S().Named("jobs_handler").Errorw("failed to submit jobs", "accepted", len(ids), "error", err)
		c.JSON(http.StatusInternalServerError, v1.NewPartialErrorResponse("failed to submit jobs", ids))
		return
	}

	c.JSON(http.StatusAccepted, v1.NewJobsResponse(ids))
}
