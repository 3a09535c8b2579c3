package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MODEL", "")
	t.Setenv("OCR_LANGS", "")
	t.Setenv("ENABLE_FILE_LOGGING", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIKey != "sk-test" {
		t.Errorf("Expected APIKey sk-test, got %q", cfg.APIKey)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("Expected default model %q, got %q", DefaultModel, cfg.Model)
	}
	if cfg.Langs != DefaultLangs {
		t.Errorf("Expected default langs %q, got %q", DefaultLangs, cfg.Langs)
	}
	if cfg.EnableFileLogging {
		t.Error("File logging should default to off")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_ORG_ID", "org-123")
	t.Setenv("OPENAI_PROJECT_ID", "proj-456")
	t.Setenv("MODEL", "gpt-4o-mini")
	t.Setenv("ENABLE_FILE_LOGGING", "TRUE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OrgID != "org-123" || cfg.ProjectID != "proj-456" {
		t.Errorf("Org/project not passed through: %q %q", cfg.OrgID, cfg.ProjectID)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Expected model override, got %q", cfg.Model)
	}
	if !cfg.EnableFileLogging {
		t.Error("Expected file logging enabled")
	}
}
