package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"workpulse/internal/config"
	"workpulse/internal/logging"
	"workpulse/internal/pipeline"
	"workpulse/internal/server"
	"workpulse/internal/store"
)

var (
	year    = flag.Int("year", 0, "目标年份 (覆盖配置文件)")
	month   = flag.Int("month", 0, "目标月份 (覆盖配置文件)")
	serve   = flag.Bool("serve", false, "启动查询服务而不是执行一次处理")
	port    = flag.Int("port", 0, "服务端口 (覆盖配置文件)")
	devMode = flag.Bool("dev", false, "开发模式")
	dataDir = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Workpulse - 员工生产力月度统计工具")
	fmt.Println("==========================================")

	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("加载配置失败，使用默认配置: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// 命令行参数覆盖配置
	if *year > 0 {
		cfg.Business.Year = *year
	}
	if *month > 0 {
		cfg.Business.Month = *month
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("配置无效: %v\n", err)
		os.Exit(1)
	}

	// 确保数据目录存在
	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		fmt.Printf("创建数据目录失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("数据目录: %s\n", dir)

	logger, closeLog := logging.NewWithFile(cfg.Server.DevMode, filepath.Join(dir, "workpulse.log"))
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Printf("关闭日志文件失败: %v\n", err)
		}
	}()

	st, err := store.New(filepath.Join(dir, "workpulse.db"))
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化数据库失败")
	}
	defer st.Close()

	runner := pipeline.NewRunner(cfg, st, logger)

	if *serve {
		runServer(cfg, st, runner, dir, logger)
		return
	}

	runOnce(cfg, runner, dir, logger)
}

// runOnce 执行一次周期处理后退出
func runOnce(cfg *config.AppConfig, runner *pipeline.Runner, dataDir string, logger zerolog.Logger) {
	target, err := cfg.TargetMonth()
	if err != nil {
		logger.Fatal().Err(err).Msg("目标月份无效")
	}

	result, err := runner.Run(dataDir, target)
	if errors.Is(err, pipeline.ErrAlreadyProcessed) {
		fmt.Printf("周期 %s 已处理过，无需重复执行\n", target)
		return
	}
	if err != nil {
		logger.Fatal().Err(err).Str("period", target.String()).Msg("处理失败")
	}

	fmt.Printf("周期 %s 处理完成: %d 名员工, %d 天\n", result.Period, result.Employees, result.Days)
	fmt.Printf("逐日得分簿: %s\n", result.DailyPath)
	fmt.Printf("最终报表:   %s\n", result.ReportPath)
}

// runServer 启动查询服务并等待退出信号
func runServer(cfg *config.AppConfig, st *store.Store, runner *pipeline.Runner, dataDir string, logger zerolog.Logger) {
	srv := server.NewServer(cfg, st, runner, dataDir, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			logger.Fatal().Err(err).Msg("服务启动失败")
		}
	}()

	fmt.Println("\n按 Ctrl+C 停止服务...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在关闭服务...")
}
