// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{"-env", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected port 3318, got %d", cfg.Port)
	}
	if cfg.StoreType != "memory" {
		t.Errorf("expected store memory, got %s", cfg.StoreType)
	}
	if cfg.IDStrategy != "ulid" {
		t.Errorf("expected id strategy ulid, got %s", cfg.IDStrategy)
	}
	if cfg.Deductible != 500 {
		t.Errorf("expected deductible 500, got %v", cfg.Deductible)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_TYPE", "sqlite")
	t.Setenv("ID_STRATEGY", "sequence")
	t.Setenv("PAYOUT_DEDUCTIBLE", "250.5")

	cfg, err := ParseFlags([]string{"-env", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.StoreType != "sqlite" {
		t.Errorf("expected store sqlite, got %s", cfg.StoreType)
	}
	if cfg.IDStrategy != "sequence" {
		t.Errorf("expected id strategy sequence, got %s", cfg.IDStrategy)
	}
	if cfg.Deductible != 250.5 {
		t.Errorf("expected deductible 250.5, got %v", cfg.Deductible)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_TYPE", "sqlite")

	cfg, err := ParseFlags([]string{"-env", "", "-p", "8080", "-s", "memory", "-ids", "uuid", "-deductible", "0"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.StoreType != "memory" {
		t.Errorf("CLI should override env: expected memory, got %s", cfg.StoreType)
	}
	if cfg.IDStrategy != "uuid" {
		t.Errorf("expected uuid, got %s", cfg.IDStrategy)
	}
	if cfg.Deductible != 0 {
		t.Errorf("expected deductible 0, got %v", cfg.Deductible)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("ID_STRATEGY=sequence\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("ID_STRATEGY") })

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IDStrategy != "sequence" {
		t.Errorf("expected id strategy from env file, got %s", cfg.IDStrategy)
	}
}

func TestParseFlags_MissingEnvFileIgnored(t *testing.T) {
	_, err := ParseFlags([]string{"-env", filepath.Join(t.TempDir(), "absent.env")})
	if err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"bad port", []string{"-p", "70000"}},
		{"negative port", []string{"-p", "-1"}},
		{"bad store", []string{"-s", "postgres"}},
		{"bad id strategy", []string{"-ids", "timestamp"}},
		{"negative deductible", []string{"-deductible", "-5"}},
		{"unknown flag", []string{"-x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"-env", ""}, tc.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Errorf("expected error for %v", tc.args)
			}
		})
	}
}

func TestParseFlags_InvalidEnvValue(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	if _, err := ParseFlags([]string{"-env", ""}); err == nil {
		t.Error("expected error for non-numeric PORT")
	}
}
