package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"walletguard/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const healthProbeBudget = 2 * time.Second

type probeResult struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Dependencies are probed in parallel
// under a shared deadline; any failure turns the reply into a 503 so load
// balancers drain the instance.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeBudget)
		defer cancel()

		results := make([]probeResult, len(checkers))
		var wg sync.WaitGroup
		for i, checker := range checkers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				start := time.Now()
				err := checker.Ping(ctx)
				results[i] = probeResult{Status: "up", LatencyMS: time.Since(start).Milliseconds()}
				if err != nil {
					results[i].Status = "down"
					results[i].Error = err.Error()
				}
			}()
		}
		wg.Wait()

		code, status := http.StatusOK, "healthy"
		deps := make(map[string]probeResult, len(checkers))
		for i, checker := range checkers {
			deps[checker.Name()] = results[i]
			if results[i].Status != "up" {
				code, status = http.StatusServiceUnavailable, "degraded"
			}
		}

		c.JSON(code, gin.H{"status": status, "dependencies": deps})
	}
}
