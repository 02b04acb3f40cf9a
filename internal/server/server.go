package server

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"workpulse/internal/config"
	"workpulse/internal/pipeline"
	"workpulse/internal/server/handlers"
	"workpulse/internal/store"
)

// Server HTTP服务器：对外提供打分结果查询与周期触发接口
type Server struct {
	router *gin.Engine
	api    *handlers.Handlers
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig, st *store.Store, runner *pipeline.Runner, dataDir string, logger zerolog.Logger) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router: gin.Default(),
		api:    handlers.New(st, runner, dataDir, logger),
	}

	s.setupRoutes()

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	s.router.GET("/health", s.api.Health)

	api := s.router.Group("/api/v1")
	{
		api.GET("/empleados", s.api.ListEmployees)
		api.GET("/empleado/:email", s.api.EmployeeSummary)
		api.GET("/metricas", s.api.Metrics)
		api.POST("/runs", s.api.TriggerRun)
		api.GET("/runs/:period", s.api.RunLogs)
	}
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router 返回底层路由（测试用）
func (s *Server) Router() *gin.Engine {
	return s.router
}
