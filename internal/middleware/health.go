package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type healthStatus struct {
	Status      string    `json:"status"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
}

var (
	healthMu  sync.RWMutex
	version   = "dev"
	startTime = time.Now()
)

// HealthCheck reports process liveness plus uptime. The deployment's
// reverse proxy polls it, so it stays outside authentication.
func HealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		healthMu.RLock()
		defer healthMu.RUnlock()

		c.JSON(http.StatusOK, healthStatus{
			Status:      "ok",
			LastChecked: time.Now(),
			Uptime:      time.Since(startTime).String(),
			Version:     version,
		})
	}
}

// SetVersion records the build version main injects via ldflags.
func SetVersion(v string) {
	healthMu.Lock()
	defer healthMu.Unlock()
	version = v
}
