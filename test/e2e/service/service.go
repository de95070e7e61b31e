package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	v1 "github.com/kubev2v/threadpool/api/v1"
)

const (
	apiV1PoolPath = "/api/v1/pool"
	apiV1JobsPath = "/api/v1/jobs"
)

// PoolSvc is an HTTP client for the pool API.
type PoolSvc struct {
	baseURL string
	client  *http.Client
}

func NewPoolService(baseURL string) *PoolSvc {
	zap.S().Info("Initializing PoolService...")
	return &PoolSvc{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *PoolSvc) GetPool() (*v1.PoolStatus, error) {
	resp, err := s.client.Get(s.baseURL + apiV1PoolPath)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get pool status: %s", resp.Status)
	}

	var status v1.PoolStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode pool status: %w", err)
	}
	return &status, nil
}

// SubmitJobs posts req and returns the decoded ids with the response status code.
func (s *PoolSvc) SubmitJobs(req v1.JobsRequest) (*v1.JobsResponse, int, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, 0, err
	}

	resp, err := s.client.Post(s.baseURL+apiV1JobsPath, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return nil, resp.StatusCode, nil
	}

	var jobs v1.JobsResponse
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode jobs response: %w", err)
	}
	return &jobs, resp.StatusCode, nil
}
