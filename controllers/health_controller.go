package controllers

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/ohsms/config"
	"github.com/l3montree-dev/ohsms/database"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/l3montree-dev/ohsms/utils"
)

var startedAt = time.Now()

// listeningBroker is implemented by brokers which hold LISTEN connections.
type listeningBroker interface {
	IsHealthy(ctx context.Context) bool
	GetActiveTopics() []shared.PubSubChannel
}

type HealthController struct {
	db     shared.DB
	pool   *pgxpool.Pool
	broker shared.PubSubBroker
}

func NewHealthController(db shared.DB, pool *pgxpool.Pool, broker shared.PubSubBroker) *HealthController {
	return &HealthController{db: db, pool: pool, broker: broker}
}

func (c *HealthController) Health(ctx shared.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  "failed to get database instance",
		})
	}
	if err := sqlDB.PingContext(ctx.Request().Context()); err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  "database ping failed",
		})
	}
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func (c *HealthController) Info(ctx shared.Context) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	resp := dtos.InfoResponse{
		Build: dtos.BuildInfo{
			Version:   config.Version,
			Commit:    config.Commit,
			Branch:    config.Branch,
			BuildDate: config.BuildDate,
		},
		Runtime: dtos.RuntimeInfo{
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
			Mem: dtos.MemStats{
				Alloc:      mem.Alloc,
				TotalAlloc: mem.TotalAlloc,
				Sys:        mem.Sys,
				HeapAlloc:  mem.HeapAlloc,
			},
		},
		Process: dtos.ProcessInfo{
			PID:           os.Getpid(),
			UptimeSeconds: int(time.Since(startedAt).Seconds()),
		},
	}
	if host, _ := os.Hostname(); host != "" {
		resp.Process.Hostname = host
	}

	resp.Database = c.databaseInfo(ctx)
	if b, ok := c.broker.(listeningBroker); ok {
		resp.Broker = &dtos.BrokerInfo{
			Healthy: b.IsHealthy(ctx.Request().Context()),
			Topics:  utils.Map(b.GetActiveTopics(), func(t shared.PubSubChannel) string { return string(t) }),
		}
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (c *HealthController) databaseInfo(ctx shared.Context) dtos.DatabaseInfo {
	poolCfg := database.GetPoolConfigFromEnv()
	poolInfo := dtos.PoolInfo{
		DBName:          poolCfg.DBName,
		MaxOpenConns:    poolCfg.MaxOpenConns,
		ConnMaxLifetime: poolCfg.ConnMaxLifetime.String(),
		ConnMaxIdleTime: poolCfg.ConnMaxIdleTime.String(),
	}
	info := dtos.DatabaseInfo{Status: "unknown", Pool: &poolInfo}

	sqlDB, err := c.db.DB()
	if err != nil {
		info.Status = "unhealthy"
		info.Error = shared.Ptr("failed to get database instance")
		return info
	}
	if err := sqlDB.PingContext(ctx.Request().Context()); err != nil {
		info.Status = "unhealthy"
		info.Error = shared.Ptr("database ping failed")
		return info
	}
	info.Status = "healthy"

	if c.pool != nil {
		stats := c.pool.Stat()
		poolInfo.TotalConns = int(stats.TotalConns())
		poolInfo.IdleConns = int(stats.IdleConns())
		poolInfo.AcquiredConns = int(stats.AcquiredConns())
		poolInfo.MaxConns = int(stats.MaxConns())
	} else {
		info.DBStats = sqlDB.Stats()
	}

	if version, dirty, err := database.GetMigrationVersionWithDB(c.db); err == nil {
		info.MigrationVersion = &version
		info.MigrationDirty = &dirty
	} else {
		info.MigrationError = shared.Ptr(err.Error())
	}
	return info
}
