package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"campus-library/config"
	"campus-library/internal/app"
	applogger "campus-library/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "library",
	Short: "Campus library portal",
	Long: `Campus library portal: register books, record borrows and
suggest books to students by department and year.

Without a subcommand the HTTP server is started.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default ./config/config.yaml)")
	rootCmd.AddCommand(serveCmd, migrateCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap 加载配置、初始化日志并构建应用上下文
func bootstrap() (*app.App, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("应用初始化失败", zap.Error(err))
		_ = logger.Sync()
		return nil, err
	}
	return a, nil
}

// shutdown 释放资源并刷新日志
func shutdown(a *app.App) {
	if err := a.Close(); err != nil {
		a.Logger.Error("释放资源失败", zap.Error(err))
	}
	_ = a.Logger.Sync()
}
