package main

import (
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/kubev2v/threadpool/api/v1"
	"github.com/kubev2v/threadpool/test/e2e/service"
)

var _ = BeforeSuite(func() {
	var err error
	apiURL, err = infraManager.StartServer()
	Expect(err).NotTo(HaveOccurred())
})

var _ = AfterSuite(func() {
	Expect(infraManager.StopServer()).To(Succeed())
})

var _ = Describe("Pool API", Ordered, func() {
	var (
		svc  *service.PoolSvc
		base *v1.PoolStatus
	)

	BeforeAll(func() {
		svc = service.NewPoolService(apiURL)
	})

	BeforeEach(func() {
		var err error
		base, err = svc.GetPool()
		Expect(err).NotTo(HaveOccurred())
	})

	It("should report a pool with running workers", func() {
		Expect(base.Size).To(BeNumerically(">=", 1))
		Expect(base.Terminated).To(BeZero())
	})

	// Given a running server
	// When a batch of jobs is submitted
	// Then every job eventually completes
	It("should run every submitted job", func() {
		jobs, code, err := svc.SubmitJobs(v1.JobsRequest{Count: 20, Duration: "5ms"})
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal(http.StatusAccepted))
		Expect(jobs.IDs).To(HaveLen(20))

		Eventually(func() int64 {
			status, err := svc.GetPool()
			Expect(err).NotTo(HaveOccurred())
			return status.Completed
		}, 10*time.Second, 100*time.Millisecond).Should(Equal(base.Completed + 20))
	})

	It("should keep serving jobs after a job panics", func() {
		_, code, err := svc.SubmitJobs(v1.JobsRequest{Count: 3, PanicRate: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal(http.StatusAccepted))

		_, code, err = svc.SubmitJobs(v1.JobsRequest{Count: 5})
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal(http.StatusAccepted))

		Eventually(func(g Gomega) {
			status, err := svc.GetPool()
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(status.Panicked).To(Equal(base.Panicked + 3))
			g.Expect(status.Completed).To(Equal(base.Completed + 5))
		}, 10*time.Second, 100*time.Millisecond).Should(Succeed())
	})

	It("should reject an invalid request", func() {
		_, code, err := svc.SubmitJobs(v1.JobsRequest{Count: 0})

		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal(http.StatusBadRequest))
	})
})
