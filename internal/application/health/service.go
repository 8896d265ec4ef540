package health

import (
	"context"
	"encoding/json"
	"runtime"
	"strconv"
	"time"

	"sitetrack-backend/internal/infrastructure/kvstore"
	"sitetrack-backend/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// CollectResult is the body of GET /health/json.
type CollectResult struct {
	Status       string               `json:"status"`
	Runtime      RuntimeInfo          `json:"runtime"`
	Traffic      TrafficInfo          `json:"traffic"`
	Dependencies map[string]DepStatus `json:"dependencies"`
}

type RuntimeInfo struct {
	UptimeSeconds int64      `json:"uptimeSeconds"`
	Memory        MemoryInfo `json:"memory"`
	Platform      string     `json:"platform"`
	GoVersion     string     `json:"goVersion"`
}

type MemoryInfo struct {
	AllocMB  int `json:"allocMb"`
	HeapUsed int `json:"heapUsed"`
}

type TrafficInfo struct {
	TotalRequests   int         `json:"totalRequests"`
	SuccessCount    int         `json:"successCount"`
	FailedCount     int         `json:"failedCount"`
	SuccessRate     string      `json:"successRate"`
	AvgResponseTime interface{} `json:"avgResponseTime"`
	LastRequest     interface{} `json:"lastRequest"`
}

type DepStatus struct {
	Status string      `json:"status"`
	PingMs interface{} `json:"pingMs"`
}

const (
	statusConnected     = "connected"
	statusDisconnected  = "disconnected"
	statusNotConfigured = "not_configured"
	statusError         = "error"
)

var processStart = time.Now()

// CollectHealth pings the key-value store and Redis and reads request traffic
// counters recorded by middleware.HealthMarker. Redis is optional; the service
// is "ok" when the store answers and Redis, if configured, answers too.
func CollectHealth(ctx context.Context, rdb *redis.Client, store kvstore.Store) CollectResult {
	result := CollectResult{Dependencies: make(map[string]DepStatus)}

	storeStatus := statusDisconnected
	var storePing *int64
	if store != nil {
		start := time.Now()
		if err := store.Ping(ctx); err == nil {
			ms := time.Since(start).Milliseconds()
			storePing = &ms
			storeStatus = statusConnected
		} else {
			storeStatus = statusError
		}
	}
	result.Dependencies["store"] = DepStatus{Status: storeStatus, PingMs: storePing}

	redisStatus := statusNotConfigured
	var redisPing *int64
	stats := TrafficInfo{AvgResponseTime: 0, SuccessRate: "100"}
	startMs := processStart.UnixMilli()

	if rdb != nil {
		start := time.Now()
		if err := rdb.Ping(ctx).Err(); err == nil {
			ms := time.Since(start).Milliseconds()
			redisPing = &ms
			redisStatus = statusConnected
			startMs = readTraffic(ctx, rdb, &stats, startMs)
		} else {
			redisStatus = statusError
		}
	}
	result.Dependencies["redis"] = DepStatus{Status: redisStatus, PingMs: redisPing}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	uptime := (time.Now().UnixMilli() - startMs) / 1000
	if uptime < 0 {
		uptime = 0
	}
	result.Runtime = RuntimeInfo{
		UptimeSeconds: uptime,
		Memory:        MemoryInfo{AllocMB: int(m.Alloc / 1024 / 1024), HeapUsed: int(m.HeapInuse / 1024 / 1024)},
		Platform:      runtime.GOOS + " (" + runtime.GOARCH + ")",
		GoVersion:     runtime.Version(),
	}
	result.Traffic = stats

	redisOK := redisStatus == statusConnected || redisStatus == statusNotConfigured
	if storeStatus == statusConnected && redisOK {
		result.Status = "ok"
	} else {
		result.Status = "issue"
	}
	return result
}

// readTraffic fills stats from the middleware counters and returns the recorded start time.
func readTraffic(ctx context.Context, rdb *redis.Client, stats *TrafficInfo, startMs int64) int64 {
	totalReq, _ := rdb.Get(ctx, middleware.KeyReqTotal).Result()
	totalErr, _ := rdb.Get(ctx, middleware.KeyReqErrors).Result()
	totalTime, _ := rdb.Get(ctx, middleware.KeyResTime).Result()
	resCount, _ := rdb.Get(ctx, middleware.KeyResCount).Result()
	startStr, _ := rdb.Get(ctx, middleware.KeyStartTime).Result()
	lastReq, _ := rdb.Get(ctx, middleware.KeyLastReq).Result()

	if startStr != "" {
		if t, err := strconv.ParseInt(startStr, 10, 64); err == nil {
			startMs = t
		}
	} else {
		rdb.Set(ctx, middleware.KeyStartTime, startMs, 0)
	}

	stats.TotalRequests, _ = strconv.Atoi(totalReq)
	stats.FailedCount, _ = strconv.Atoi(totalErr)
	stats.SuccessCount = stats.TotalRequests - stats.FailedCount
	if stats.TotalRequests > 0 {
		stats.SuccessRate = strconv.FormatFloat(float64(stats.SuccessCount)/float64(stats.TotalRequests)*100, 'f', 1, 64)
	}
	timeSum, _ := strconv.ParseFloat(totalTime, 64)
	count, _ := strconv.Atoi(resCount)
	if count > 0 {
		stats.AvgResponseTime = strconv.FormatFloat(timeSum/float64(count), 'f', 2, 64)
	}
	if lastReq != "" {
		var m map[string]interface{}
		_ = json.Unmarshal([]byte(lastReq), &m)
		stats.LastRequest = m
	}
	return startMs
}
