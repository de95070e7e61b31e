package infra

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kubev2v/threadpool/internal/cmd"
)

// InfraManager abstracts the lifecycle of the server under test.
// Process-based: runs the serve command in the test process.
// External: no-op, the server is managed externally.
type InfraManager interface {
	StartServer() (string, error)
	StopServer() error
}

type ProcessInfraManager struct {
	port    int
	workers int
	cancel  context.CancelFunc
	done    chan error
}

func NewProcessInfraManager(port, workers int) *ProcessInfraManager {
	return &ProcessInfraManager{port: port, workers: workers}
}

// StartServer runs "threadpool serve" and waits until its health probe answers.
func (m *ProcessInfraManager) StartServer() (string, error) {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan error, 1)

	root := cmd.NewRootCommand()
	root.SetArgs([]string{
		"serve",
		fmt.Sprintf("--http-port=%d", m.port),
		fmt.Sprintf("--workers=%d", m.workers),
		"--log-level=warn",
	})
	go func() {
		m.done <- root.ExecuteContext(ctx)
	}()

	url := fmt.Sprintf("http://localhost:%d", m.port)
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case err := <-m.done:
			return "", fmt.Errorf("server exited before becoming ready: %v", err)
		default:
		}
		resp, err := http.Get(url + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				zap.S().Infow("server ready", "url", url)
				return url, nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	cancel()
	return "", fmt.Errorf("server at %s not ready after 10s", url)
}

// StopServer stops the server and waits for the pool to drain.
func (m *ProcessInfraManager) StopServer() error {
	if m.cancel == nil {
		return nil
	}
	m.cancel()
	return <-m.done
}

type ExternalInfraManager struct {
	url string
}

func NewExternalInfraManager(url string) *ExternalInfraManager {
	return &ExternalInfraManager{url: url}
}

func (m *ExternalInfraManager) StartServer() (string, error) {
	return m.url, nil
}

func (m *ExternalInfraManager) StopServer() error {
	return nil
}
