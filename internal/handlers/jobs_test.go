package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/kubev2v/threadpool/api/v1"
	"github.com/kubev2v/threadpool/internal/handlers"
	"github.com/kubev2v/threadpool/internal/services"
	"github.com/kubev2v/threadpool/internal/workload"
	srvErrors "github.com/kubev2v/threadpool/pkg/errors"
	"github.com/kubev2v/threadpool/pkg/threadpool"
)

// closingSubmitter accepts limit jobs, then behaves like a closed pool.
type closingSubmitter struct {
	pool  *threadpool.Pool
	limit int
}

func (s *closingSubmitter) Submit(job threadpool.Job) error {
	if s.limit == 0 {
		return srvErrors.NewPoolClosedError()
	}
	s.limit--
	return s.pool.Submit(job)
}

var _ = Describe("Handler", func() {
	var (
		pool   *threadpool.Pool
		router *gin.Engine
	)

	BeforeEach(func() {
		pool = threadpool.MustNew(2)
		runner := workload.NewRunner(pool, workload.WithChance(func() float64 { return 1 }))
		h := handlers.New(services.NewJobService(pool, runner))

		router = gin.New()
		handlers.RegisterHandlers(router.Group("/api/v1"), h)
	})

	AfterEach(func() {
		pool.Close()
	})

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Context("GET /pool", func() {
		It("should return the pool size and counters", func() {
			w := do(http.MethodGet, "/api/v1/pool", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			var status v1.PoolStatus
			Expect(json.Unmarshal(w.Body.Bytes(), &status)).To(Succeed())
			Expect(status.Size).To(Equal(2))
			Expect(status.Submitted).To(BeZero())
		})
	})

	Context("POST /jobs", func() {
		// Given a valid batch request
		// When we submit it
		// Then it should be accepted with one id per job
		It("should accept a batch of jobs", func() {
			w := do(http.MethodPost, "/api/v1/jobs", v1.JobsRequest{Count: 5, Duration: "1ms"})

			Expect(w.Code).To(Equal(http.StatusAccepted))
			var resp v1.JobsResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.IDs).To(HaveLen(5))

			pool.Close()
			w = do(http.MethodGet, "/api/v1/pool", nil)
			var status v1.PoolStatus
			Expect(json.Unmarshal(w.Body.Bytes(), &status)).To(Succeed())
			Expect(status.Completed).To(Equal(int64(5)))
			Expect(status.Terminated).To(Equal(int64(2)))
			Expect(status.Workload.Succeeded).To(Equal(int64(5)))
		})

		DescribeTable("should reject an invalid request",
			func(body any) {
				w := do(http.MethodPost, "/api/v1/jobs", body)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				var resp v1.ErrorResponse
				Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
				Expect(resp.Error).NotTo(BeEmpty())
			},
			Entry("missing count", map[string]any{"duration": "1ms"}),
			Entry("count too large", v1.JobsRequest{Count: 10001}),
			Entry("fail rate above one", v1.JobsRequest{Count: 1, FailRate: 1.5}),
			Entry("bad duration", v1.JobsRequest{Count: 1, Duration: "soon"}),
			Entry("negative duration", v1.JobsRequest{Count: 1, Duration: "-1s"}),
			Entry("not an object", "jobs"),
		)

		It("should answer 503 once the pool is closed", func() {
			pool.Close()

			w := do(http.MethodPost, "/api/v1/jobs", v1.JobsRequest{Count: 1})

			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			var resp v1.ErrorResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.AcceptedIDs).To(BeEmpty())
		})

		// Given a pool that shuts down in the middle of a batch
		// When the batch is submitted
		// Then the answer is 503 and lists the jobs that were accepted
		It("should return the accepted ids of a batch cut short", func() {
			runner := workload.NewRunner(&closingSubmitter{pool: pool, limit: 3}, workload.WithChance(func() float64 { return 1 }))
			router = gin.New()
			handlers.RegisterHandlers(router.Group("/api/v1"), handlers.New(services.NewJobService(pool, runner)))

			w := do(http.MethodPost, "/api/v1/jobs", v1.JobsRequest{Count: 5})

			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			var resp v1.ErrorResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Error).To(Equal("pool is shutting down"))
			Expect(resp.AcceptedIDs).To(HaveLen(3))

			pool.Close()
			Expect(pool.Stats().Completed).To(Equal(int64(3)))
		})
	})
})
