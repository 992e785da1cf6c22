package config

import "testing"

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Grid.CellSize < 1 {
		t.Fatalf("expected a positive default cell size, got %d", cfg.Grid.CellSize)
	}
	if cfg.Thermal.Ambient != 20 {
		t.Fatalf("expected default ambient of 20, got %v", cfg.Thermal.Ambient)
	}
}

func TestParamsTranslatesThermalFields(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	p := cfg.Params()
	if p.Ambient != float32(cfg.Thermal.Ambient) {
		t.Fatalf("Params().Ambient mismatch: got %v want %v", p.Ambient, cfg.Thermal.Ambient)
	}
	if p.FireTemperature != float32(cfg.Combustion.FireTemperature) {
		t.Fatalf("Params().FireTemperature mismatch: got %v want %v", p.FireTemperature, cfg.Combustion.FireTemperature)
	}
}

func TestMustInitPanicsOnBadPath(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustInit to panic on an unreadable path")
		}
	}()
	MustInit("/nonexistent/path/defaults.yaml")
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() { global = saved }()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Cfg() to panic before Init()")
		}
	}()
	Cfg()
}
