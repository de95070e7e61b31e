package main

import (
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/kubev2v/threadpool/test/e2e/infra"
)

type configuration struct {
	InfraMode string // "process" or "external"
	APIUrl    string
	HTTPPort  int
	Workers   int
}

var (
	cfg          configuration
	infraManager infra.InfraManager
	apiURL       string
)

func (c configuration) Validate() error {
	if c.InfraMode != "process" && c.InfraMode != "external" {
		return fmt.Errorf("invalid infra-mode %q: must be 'process' or 'external'", c.InfraMode)
	}
	if c.InfraMode == "external" {
		if _, err := url.Parse(c.APIUrl); err != nil {
			return fmt.Errorf("failed to parse api url: %v", err)
		}
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers %d", c.Workers)
	}
	return nil
}

func main() {
	flag.StringVar(&cfg.InfraMode, "infra-mode", "process", "Infrastructure mode: 'process' (in-process server) or 'external' (externally managed)")
	flag.StringVar(&cfg.APIUrl, "api-url", "http://localhost:8080", "Server url in external mode")
	flag.IntVar(&cfg.HTTPPort, "http-port", 18080, "Listen port of the in-process server")
	flag.IntVar(&cfg.Workers, "workers", 2, "Workers of the in-process server")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("failed to validate configuration: %v", err)
	}

	switch cfg.InfraMode {
	case "process":
		infraManager = infra.NewProcessInfraManager(cfg.HTTPPort, cfg.Workers)
	case "external":
		infraManager = infra.NewExternalInfraManager(cfg.APIUrl)
	}

	RegisterFailHandler(Fail)
	if !RunSpecs(&testing.T{}, "E2E Suite") {
		os.Exit(1)
	}
}
