package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"workpulse/internal/model"
	"workpulse/internal/pipeline"
	"workpulse/internal/store"
)

// Handlers API处理器
type Handlers struct {
	store   *store.Store
	runner  *pipeline.Runner
	dataDir string
	logger  zerolog.Logger

	// 同一进程内周期运行串行化
	runMu sync.Mutex
}

// New 创建处理器
func New(st *store.Store, runner *pipeline.Runner, dataDir string, logger zerolog.Logger) *Handlers {
	return &Handlers{
		store:   st,
		runner:  runner,
		dataDir: dataDir,
		logger:  logger,
	}
}

// Health 健康检查
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListEmployees 已落库的员工邮箱列表
func (h *Handlers) ListEmployees(c *gin.Context) {
	emails, err := h.store.ListEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if emails == nil {
		emails = []string{}
	}
	c.JSON(http.StatusOK, emails)
}

// EmployeeSummary 某员工的全部打分记录
func (h *Handlers) EmployeeSummary(c *gin.Context) {
	email := c.Param("email")

	records, err := h.store.GetEmployeeRecords(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Empleado no encontrado"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Metrics 按条件查询打分记录
func (h *Handlers) Metrics(c *gin.Context) {
	records, err := h.store.QueryMetrics(store.MetricsQuery{
		Email:      c.Query("email"),
		Categoria:  c.Query("categoria"),
		FechaDesde: c.Query("fecha_inicio"),
		FechaHasta: c.Query("fecha_fin"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if records == nil {
		records = []store.ProductivityRecord{}
	}
	c.JSON(http.StatusOK, records)
}

type triggerRunRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required"`
}

// TriggerRun 触发一个周期的处理
func (h *Handlers) TriggerRun(c *gin.Context) {
	var req triggerRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	month, err := model.NewMonth(req.Year, req.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.runMu.Lock()
	result, err := h.runner.Run(h.dataDir, month)
	h.runMu.Unlock()

	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrAlreadyProcessed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, pipeline.ErrMissingInput):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// RunLogs 某周期的运行历史
func (h *Handlers) RunLogs(c *gin.Context) {
	logs, err := h.store.ListRunLogs(c.Param("period"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if logs == nil {
		logs = []store.RunLog{}
	}
	c.JSON(http.StatusOK, logs)
}
