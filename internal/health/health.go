package health

import (
	"context"
	"time"
)

// Pinger reports whether the domain backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthChecker struct {
	backend Pinger
}

type HealthStatus struct {
	Status  string        `json:"status"`
	Backend BackendHealth `json:"backend"`
}

type BackendHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

func NewHealthChecker(backend Pinger) *HealthChecker {
	return &HealthChecker{backend: backend}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	backendHealth := h.checkBackend()

	status := "healthy"
	if backendHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:  status,
		Backend: backendHealth,
	}
}

func (h *HealthChecker) checkBackend() BackendHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.backend.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return BackendHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	return BackendHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}
