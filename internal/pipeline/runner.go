// Package pipeline 串起一个周期的完整处理：校验输入、清洗、归一、打分、汇总、落盘。
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"workpulse/internal/calculator"
	"workpulse/internal/cleaner"
	"workpulse/internal/config"
	"workpulse/internal/exporter"
	"workpulse/internal/model"
	"workpulse/internal/parser"
	"workpulse/internal/signal"
	"workpulse/internal/store"
)

// 周期目录内的固定文件名，与来源系统的投递约定一致
const (
	FileRawActivity = "Productividad_Google.xlsx"
	FileAutodesk    = "Autodesk.xlsx"
	FileMeetings    = "Meetings.xlsx"
	FileChats       = "chats_source.csv"
	FileVPN         = "VPN.csv"
	FilePersonnel   = "INFORME_PERSONAL.xlsx"

	FileCleaned     = "data_cleaned.xlsx"
	FileDailyScores = "productivity_by_day.xlsx"
	FileFinalReport = "final_table_with_results.xlsx"
)

// RequiredFiles 一次运行必需的输入文件
var RequiredFiles = []string{
	FileRawActivity,
	FileAutodesk,
	FileMeetings,
	FileChats,
	FileVPN,
	FilePersonnel,
}

// 哨兵错误：调用方（CLI/API）按此分支处理
var (
	ErrAlreadyProcessed = errors.New("period already processed")
	ErrMissingInput     = errors.New("missing input files")
)

// Result 一次运行的结果摘要
type Result struct {
	RunID      string `json:"run_id"`
	Period     string `json:"period"`
	Employees  int    `json:"employees"`
	Days       int    `json:"days"`
	DailyPath  string `json:"daily_path"`
	ReportPath string `json:"report_path"`
}

// Runner 周期运行器
type Runner struct {
	cfg    *config.AppConfig
	store  *store.Store
	logger zerolog.Logger
}

// NewRunner 创建运行器
func NewRunner(cfg *config.AppConfig, st *store.Store, logger zerolog.Logger) *Runner {
	return &Runner{cfg: cfg, store: st, logger: logger}
}

// Run 处理一个周期。
// 成功过的周期直接拒绝（ErrAlreadyProcessed）；任何阶段失败都不写最终报表，
// 只在运行日志里记一条失败原因。
func (r *Runner) Run(dataDir string, month model.Month) (*Result, error) {
	period := month.String()

	processed, err := r.store.HasProcessed(period)
	if err != nil {
		return nil, err
	}
	if processed {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyProcessed, period)
	}

	runID := uuid.New().String()
	if err := r.store.CreateRunLog(runID, period); err != nil {
		return nil, err
	}

	r.logger.Info().Str("run_id", runID).Str("period", period).Msg("开始处理周期")

	result, err := r.execute(dataDir, month, runID)
	if err != nil {
		r.logger.Error().Str("run_id", runID).Str("period", period).Err(err).Msg("周期处理失败")
		if logErr := r.store.FinishRunLog(runID, store.RunStatusFailed, err.Error()); logErr != nil {
			r.logger.Error().Err(logErr).Msg("写运行日志失败")
		}
		return nil, err
	}

	if err := r.store.FinishRunLog(runID, store.RunStatusSuccess, ""); err != nil {
		return nil, err
	}

	r.logger.Info().
		Str("run_id", runID).
		Str("period", period).
		Int("employees", result.Employees).
		Int("days", result.Days).
		Msg("周期处理完成")

	return result, nil
}

func (r *Runner) execute(dataDir string, month model.Month, runID string) (*Result, error) {
	periodDir := config.PeriodDir(dataDir, month)

	if err := ValidateInputs(periodDir); err != nil {
		return nil, err
	}

	// 清洗原始活动工作簿
	cleanedPath := filepath.Join(periodDir, FileCleaned)
	cl := cleaner.New(month, r.cfg.Business.ExcludeEmails)
	if err := cl.Clean(filepath.Join(periodDir, FileRawActivity), cleanedPath); err != nil {
		return nil, err
	}
	r.logger.Debug().Str("path", cleanedPath).Msg("活动工作簿清洗完成")

	// 名册
	personnelRows, err := parser.ParsePersonnel(filepath.Join(periodDir, FilePersonnel))
	if err != nil {
		return nil, err
	}
	roster, err := model.BuildRoster(personnelRows, r.cfg.Business.MailDomain)
	if err != nil {
		return nil, err
	}
	if roster.Len() == 0 {
		return nil, fmt.Errorf("roster is empty for %s", month)
	}
	r.logger.Debug().Int("employees", roster.Len()).Msg("名册构建完成")

	// 四个来源归一
	sources, cadUsers, err := r.normalizeSources(periodDir, month)
	if err != nil {
		return nil, err
	}

	// 系数矩阵
	profiles, err := r.cfg.Profiles()
	if err != nil {
		return nil, err
	}
	matrix := calculator.BuildCoefficientMatrix(roster, profiles, cadUsers)

	// 逐日打分
	book, err := parser.ParseActivityBook(cleanedPath, month)
	if err != nil {
		return nil, err
	}
	scorer := calculator.NewScorer(matrix, sources)
	scores, err := scorer.ScoreMonth(book)
	if err != nil {
		return nil, err
	}

	// 月度汇总
	report, err := calculator.BuildFinalReport(scores, roster)
	if err != nil {
		return nil, err
	}

	// 落盘：先逐日得分簿，最终报表最后写（失败的运行绝不产出报表）
	dailyPath := filepath.Join(periodDir, FileDailyScores)
	if err := exporter.WriteDailyScores(scores, dailyPath); err != nil {
		return nil, err
	}
	reportPath := filepath.Join(periodDir, FileFinalReport)
	if err := exporter.WriteFinalReport(report, reportPath); err != nil {
		return nil, err
	}

	// 落库
	if err := r.store.SavePeriodScores(scores, roster); err != nil {
		return nil, err
	}

	return &Result{
		RunID:      runID,
		Period:     month.String(),
		Employees:  len(report.Rows),
		Days:       len(scores.Sheets),
		DailyPath:  dailyPath,
		ReportPath: reportPath,
	}, nil
}

// normalizeSources 解析并归一四个可选来源，同时返回 CAD 工具用户清单
func (r *Runner) normalizeSources(periodDir string, month model.Month) (calculator.SourceTables, []string, error) {
	var sources calculator.SourceTables

	meetingRows, err := parser.ParseMeetings(filepath.Join(periodDir, FileMeetings))
	if err != nil {
		return sources, nil, err
	}
	sources.Meetings = signal.NormalizeMeetings(meetingRows, month, r.cfg.Business.DomainMarker)

	chatRows, err := parser.ParseChats(filepath.Join(periodDir, FileChats))
	if err != nil {
		return sources, nil, err
	}
	sources.Chats = signal.NormalizeChats(chatRows, month)

	autodeskPath := filepath.Join(periodDir, FileAutodesk)
	switch r.cfg.Business.AutodeskMode {
	case config.AutodeskModeAverage:
		avgRows, err := parser.ParseAutodeskAverages(autodeskPath)
		if err != nil {
			return sources, nil, err
		}
		sources.Autodesk = signal.NormalizeAutodeskAverage(avgRows, month)
	default:
		usageRows, err := parser.ParseAutodeskUsage(autodeskPath)
		if err != nil {
			return sources, nil, err
		}
		sources.Autodesk = signal.NormalizeAutodeskDaily(usageRows, month)
	}

	vpnRows, err := parser.ParseVPN(filepath.Join(periodDir, FileVPN))
	if err != nil {
		return sources, nil, err
	}
	sources.VPN = signal.NormalizeVPN(vpnRows, month, r.cfg.Business.MailDomain)

	cadUsers, err := parser.ParseAutodeskUsers(autodeskPath)
	if err != nil {
		return sources, nil, err
	}

	return sources, cadUsers, nil
}

// ValidateInputs 校验周期目录下的必需输入文件，缺失即整次运行失败
func ValidateInputs(periodDir string) error {
	var missing []string
	for _, name := range RequiredFiles {
		if _, err := os.Stat(filepath.Join(periodDir, name)); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w in %s: %s", ErrMissingInput, periodDir, strings.Join(missing, ", "))
	}
	return nil
}
