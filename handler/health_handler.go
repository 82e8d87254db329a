package handler

import (
	"context"
	"runtime"
	"time"

	"notewell/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var startTime = time.Now()

// HealthHandler reports liveness plus a snapshot of host and process
// health. The database check degrades the status without failing the
// endpoint.
func HealthHandler(c *gin.Context) {
	status := "healthy"

	dbStatus := "connected"
	ctx, cancel := context.WithTimeout(c, 2*time.Second)
	defer cancel()
	if err := utils.MongoClient.Ping(ctx, readpref.Primary()); err != nil {
		dbStatus = "unreachable"
		status = "degraded"
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	utils.Success(c, gin.H{
		"status":  status,
		"uptime":  time.Since(startTime).String(),
		"version": utils.GetEnvAsString("APP_VERSION", "dev"),
		"database": gin.H{
			"status": dbStatus,
		},
		"system": gin.H{
			"cpu_percent":    utils.GetCPUUsage(),
			"memory_percent": utils.GetMemoryUsage(),
			"goroutines":     runtime.NumGoroutine(),
			"heap_alloc_mb":  memStats.HeapAlloc / 1024 / 1024,
		},
	})
}
