package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-library/config"
	"campus-library/internal/api/handler"
	"campus-library/internal/api/middleware"
	"campus-library/internal/api/router"
	"campus-library/internal/repository"
	"campus-library/internal/service"
	"campus-library/pkg/database"
	"campus-library/pkg/redis"
)

// App 应用上下文：启动时一次性构建，显式传递给各层
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	DB      *gorm.DB
	Repo    *repository.Repository
	Service *service.Service

	redis *redis.Client
}

// New 连接数据库并装配 Repository → Service
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return nil, fmt.Errorf("数据库连接失败: %w", err)
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		closeDB(db)
		return nil, err
	}

	return &App{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Repo:    repo,
		Service: service.NewService(repo, logger),
	}, nil
}

// Migrate 执行全部未应用的数据库迁移
func (a *App) Migrate() error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	return database.RunMigrations(sqlDB, a.Logger)
}

// Rollback 回滚最近 steps 个迁移
func (a *App) Rollback(steps int) error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	return database.RollbackMigrations(sqlDB, steps, a.Logger)
}

// Engine 构建 HTTP 路由
// 启用 Redis 时使用跨实例限流，连接失败则降级为进程内限流，不中断启动
func (a *App) Engine() (*gin.Engine, error) {
	rl := a.Config.RateLimit
	limiter := middleware.NewLocalLimiter(rl.Requests, rl.Window)

	if a.Config.Redis.Enabled {
		rdb, err := redis.NewClient(&a.Config.Redis, a.Logger)
		if err != nil {
			a.Logger.Warn("Redis 连接失败，限流降级为进程内令牌桶", zap.Error(err))
		} else {
			a.redis = rdb
			limiter = middleware.NewRedisLimiter(rdb, rl.Requests, rl.Window)
		}
	}

	return router.Setup(a.Config, handler.NewHandler(a.Service), limiter, a.Logger)
}

// Close 释放数据库与 Redis 连接
func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		errs = append(errs, sqlDB.Close())
	}
	return errors.Join(errs...)
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
