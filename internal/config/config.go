package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"workpulse/internal/model"
)

// AppConfig 应用配置
type AppConfig struct {
	Server       ServerConfig                  `toml:"server"`
	Data         DataConfig                    `toml:"data"`
	Business     BusinessConfig                `toml:"business"`
	Coefficients map[string]map[string]float64 `toml:"coefficients"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// BusinessConfig 业务配置
type BusinessConfig struct {
	Year          int      `toml:"year"`
	Month         int      `toml:"month"`
	MailDomain    string   `toml:"mail_domain"`    // 组织邮箱域，名册与 VPN 邮箱推导用
	DomainMarker  string   `toml:"domain_marker"`  // 会议 actor 的域名标记（模糊匹配）
	ExcludeEmails []string `toml:"exclude_emails"` // 清洗阶段剔除的邮箱（服务账号等）
	AutodeskMode  string   `toml:"autodesk_mode"`  // daily / average
}

// Autodesk 归一模式
const (
	AutodeskModeDaily   = "daily"
	AutodeskModeAverage = "average"
)

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20271,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Business: BusinessConfig{
			Year:         2024,
			Month:        1,
			MailDomain:   "ingetec.com.co",
			DomainMarker: "@ingetec",
			AutodeskMode: AutodeskModeDaily,
		},
		Coefficients: map[string]map[string]float64{
			model.ProfileModelers: {
				"Sent emails":    0.05,
				"Email last use": 0.05,
				"Edited files":   0.10,
				"Viewed files":   0.05,
				"Drive last use": 0.05,
				"Add files":      0.10,
				"Chat":           0.05,
				"Meetings":       0.05,
				"Autodesk":       0.45,
				"VPN":            0.05,
			},
			model.ProfileCat12345: {
				"Sent emails":    0.10,
				"Email last use": 0.10,
				"Edited files":   0.20,
				"Viewed files":   0.10,
				"Drive last use": 0.05,
				"Add files":      0.15,
				"Chat":           0.05,
				"Meetings":       0.20,
				"Autodesk":       0.00,
				"VPN":            0.05,
			},
			model.ProfileOthers: {
				"Sent emails":    0.10,
				"Email last use": 0.10,
				"Edited files":   0.20,
				"Viewed files":   0.10,
				"Drive last use": 0.10,
				"Add files":      0.20,
				"Chat":           0.05,
				"Meetings":       0.15,
				"Autodesk":       0.00,
				"VPN":            0.00,
			},
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 从可执行文件同目录的 config.toml 加载配置；文件不存在时使用默认配置
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig 保存配置到 config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}

// EnsureDataDir 确保数据目录存在
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// PeriodDir 某周期的输入目录：<dataDir>/YYYY-MM
func PeriodDir(dataDir string, month model.Month) string {
	return filepath.Join(dataDir, month.String())
}

// TargetMonth 配置中的目标月份
func (c *AppConfig) TargetMonth() (model.Month, error) {
	return model.NewMonth(c.Business.Year, c.Business.Month)
}

// Profiles 校验并装配三个系数档位。缺档位、缺维度或出现未知维度都报错。
func (c *AppConfig) Profiles() (model.ProfileSet, error) {
	var set model.ProfileSet

	load := func(name string) (model.Profile, error) {
		weights, ok := c.Coefficients[name]
		if !ok {
			return model.Profile{}, fmt.Errorf("coefficients: missing profile %q", name)
		}
		return model.ProfileFromMap(name, weights)
	}

	var err error
	if set.Modelers, err = load(model.ProfileModelers); err != nil {
		return set, err
	}
	if set.Cat12345, err = load(model.ProfileCat12345); err != nil {
		return set, err
	}
	if set.Others, err = load(model.ProfileOthers); err != nil {
		return set, err
	}

	return set, nil
}

// Validate 配置基础校验
func (c *AppConfig) Validate() error {
	if _, err := c.TargetMonth(); err != nil {
		return err
	}
	if c.Business.MailDomain == "" {
		return fmt.Errorf("business: mail_domain is required")
	}
	if c.Business.DomainMarker == "" {
		return fmt.Errorf("business: domain_marker is required")
	}
	switch c.Business.AutodeskMode {
	case AutodeskModeDaily, AutodeskModeAverage:
	default:
		return fmt.Errorf("business: unknown autodesk_mode %q", c.Business.AutodeskMode)
	}
	if _, err := c.Profiles(); err != nil {
		return err
	}
	return nil
}
