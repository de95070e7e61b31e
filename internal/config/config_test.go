package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/kubev2v/threadpool/internal/config"
)

var _ = Describe("Configuration", func() {
	Context("defaults", func() {
		It("should set every default value", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()

			Expect(cfg.Pool.Workers).To(Equal(4))
			Expect(cfg.Server.ServerMode).To(Equal("dev"))
			Expect(cfg.Server.HTTPPort).To(Equal(8080))
			Expect(cfg.Server.ShutdownTimeout).To(Equal(10 * time.Second))
			Expect(cfg.Workload.Jobs).To(Equal(100))
			Expect(cfg.Workload.JobDuration).To(Equal(10 * time.Millisecond))
			Expect(cfg.Workload.Retries).To(Equal(uint(3)))
			Expect(cfg.LogFormat).To(Equal("console"))
			Expect(cfg.LogLevel).To(Equal("info"))
			Expect(cfg.Validate()).To(Succeed())
		})
	})

	Context("Validate", func() {
		DescribeTable("should reject invalid values",
			func(mutate func(*config.Configuration), msg string) {
				cfg := config.NewConfigurationWithOptionsAndDefaults()
				mutate(cfg)

				err := cfg.Validate()

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring(msg))
			},
			Entry("zero workers", func(c *config.Configuration) { c.Pool.Workers = 0 }, "pool.workers"),
			Entry("unknown server mode", func(c *config.Configuration) { c.Server.ServerMode = "staging" }, "server-mode"),
			Entry("port out of range", func(c *config.Configuration) { c.Server.HTTPPort = 70000 }, "http-port"),
			Entry("negative jobs", func(c *config.Configuration) { c.Workload.Jobs = -1 }, "workload.jobs"),
			Entry("fail rate above one", func(c *config.Configuration) { c.Workload.FailRate = 1.5 }, "fail-rate"),
			Entry("negative panic rate", func(c *config.Configuration) { c.Workload.PanicRate = -0.1 }, "panic-rate"),
			Entry("retries above the limit", func(c *config.Configuration) { c.Workload.Retries = 11 }, "workload.retries"),
			Entry("unknown log format", func(c *config.Configuration) { c.LogFormat = "xml" }, "log-format"),
		)
	})

	Context("Load", func() {
		var (
			fs       *pflag.FlagSet
			defaults *config.Configuration
		)

		BeforeEach(func() {
			defaults = config.NewConfigurationWithOptionsAndDefaults()
			fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
			fs.Int("workers", defaults.Pool.Workers, "")
			fs.Int("jobs", defaults.Workload.Jobs, "")
			fs.Duration("job-duration", defaults.Workload.JobDuration, "")
			fs.String("log-level", defaults.LogLevel, "")
			fs.String("unrelated", "", "")
		})

		// Given no file, no environment and no flag set by the user
		// When we load the configuration
		// Then it should equal the defaults
		It("should fall back to defaults", func() {
			v := config.NewViper()
			Expect(config.BindFlags(v, fs)).To(Succeed())

			cfg, err := config.Load(v, "")

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(defaults))
		})

		It("should apply flags set on the command line", func() {
			Expect(fs.Parse([]string{"--workers=9", "--job-duration=250ms"})).To(Succeed())
			v := config.NewViper()
			Expect(config.BindFlags(v, fs)).To(Succeed())

			cfg, err := config.Load(v, "")

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Pool.Workers).To(Equal(9))
			Expect(cfg.Workload.JobDuration).To(Equal(250 * time.Millisecond))
		})

		It("should read environment variables", func() {
			GinkgoT().Setenv("THREADPOOL_POOL_WORKERS", "6")
			GinkgoT().Setenv("THREADPOOL_SERVER_HTTP_PORT", "9090")
			v := config.NewViper()
			Expect(config.BindFlags(v, fs)).To(Succeed())

			cfg, err := config.Load(v, "")

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Pool.Workers).To(Equal(6))
			Expect(cfg.Server.HTTPPort).To(Equal(9090))
		})

		It("should read a config file and let flags override it", func() {
			path := filepath.Join(GinkgoT().TempDir(), "threadpool.yaml")
			content := "pool:\n  workers: 2\nworkload:\n  jobs: 7\n  fail-rate: 0.25\nlog-format: json\n"
			Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
			Expect(fs.Parse([]string{"--workers=5"})).To(Succeed())
			v := config.NewViper()
			Expect(config.BindFlags(v, fs)).To(Succeed())

			cfg, err := config.Load(v, path)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Pool.Workers).To(Equal(5))
			Expect(cfg.Workload.Jobs).To(Equal(7))
			Expect(cfg.Workload.FailRate).To(Equal(0.25))
			Expect(cfg.LogFormat).To(Equal("json"))
		})

		It("should fail on a missing config file", func() {
			v := config.NewViper()

			_, err := config.Load(v, filepath.Join(GinkgoT().TempDir(), "missing.yaml"))

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("failed to read config file"))
		})

		It("should fail validation on an invalid value", func() {
			Expect(fs.Parse([]string{"--workers=0"})).To(Succeed())
			v := config.NewViper()
			Expect(config.BindFlags(v, fs)).To(Succeed())

			_, err := config.Load(v, "")

			Expect(err).To(MatchError(ContainSubstring("pool.workers")))
		})
	})

	Context("generated options", func() {
		It("should override defaults with options", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults(
				config.WithPool(*config.NewPoolWithOptionsAndDefaults(config.WithWorkers(12))),
				config.WithLogLevel("debug"),
			)

			Expect(cfg.Pool.Workers).To(Equal(12))
			Expect(cfg.LogLevel).To(Equal("debug"))
			Expect(cfg.Server.HTTPPort).To(Equal(8080))
			Expect(cfg.Workload.Retries).To(Equal(uint(3)))
		})

		It("should copy every field through ToOption", func() {
			src := config.NewConfigurationWithOptionsAndDefaults(
				config.WithServer(*config.NewServerWithOptionsAndDefaults(config.WithHTTPPort(9000))),
				config.WithWorkload(*config.NewWorkloadWithOptionsAndDefaults(config.WithJobs(3), config.WithRetries(1))),
			)

			dst := config.NewConfigurationWithOptions(src.ToOption())

			Expect(dst).To(Equal(src))
		})
	})

	It("should expose every section in DebugMap", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults()

		m := cfg.DebugMap()

		Expect(m).To(HaveLen(5))
		Expect(m).To(HaveKey("Pool"))
		Expect(m).To(HaveKey("Server"))
		Expect(m).To(HaveKey("Workload"))
		Expect(m).To(HaveKey("LogFormat"))
		Expect(m).To(HaveKey("LogLevel"))
		Expect(cfg.Workload.DebugMap()).To(HaveLen(5))
		Expect(cfg.Server.DebugMap()).To(HaveKey("HTTPPort"))
	})
})
