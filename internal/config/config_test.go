package config

import (
	"testing"

	"workpulse/internal/model"
)

func TestDefaultConfig_Valid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	set, err := cfg.Profiles()
	if err != nil {
		t.Fatalf("default profiles invalid: %v", err)
	}
	if set.Modelers.Weights[model.DimensionIndex(model.DimAutodesk)] != 0.45 {
		t.Fatalf("modelers autodesk weight wrong: %v", set.Modelers.Weights)
	}
	if set.Others.Weights[model.DimensionIndex(model.DimVPN)] != 0 {
		t.Fatalf("others vpn weight wrong: %v", set.Others.Weights)
	}
}

func TestValidate_Rejections(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Business.Month = 13
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for month 13")
	}

	cfg = DefaultConfig()
	cfg.Business.MailDomain = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for empty mail_domain")
	}

	cfg = DefaultConfig()
	cfg.Business.AutodeskMode = "weekly"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown autodesk_mode")
	}

	cfg = DefaultConfig()
	delete(cfg.Coefficients, model.ProfileOthers)
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing profile")
	}

	cfg = DefaultConfig()
	cfg.Coefficients[model.ProfileOthers]["Telepathy"] = 0.1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown dimension")
	}
}

func TestPeriodDir(t *testing.T) {
	t.Parallel()

	got := PeriodDir("/data", model.Month{Year: 2025, Month: 3})
	if got != "/data/2025-03" {
		t.Fatalf("unexpected period dir: %s", got)
	}
}
