// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("ADMIN_TOKEN", "test-token")
	os.Setenv("IP_HASH_SALT", "test-salt")
	os.Setenv("TRUSTED_IPS", "10.0.0.1, 10.0.0.2")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.SurveyID != "parent-survey" {
		t.Errorf("expected default survey id, got %s", cfg.SurveyID)
	}
	if len(cfg.TrustedIPs) != 2 || cfg.TrustedIPs[0] != "10.0.0.1" || cfg.TrustedIPs[1] != "10.0.0.2" {
		t.Errorf("expected trimmed trusted IPs, got %v", cfg.TrustedIPs)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin-token", "t1", "-ip-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_MissingSecrets(t *testing.T) {
	os.Clearenv()

	tests := []struct {
		name string
		args []string
	}{
		{"no database url", []string{"-admin-token", "t1", "-ip-salt", "s1"}},
		{"no admin token", []string{"-d", "file:test.db", "-ip-salt", "s1"}},
		{"no ip salt", []string{"-d", "file:test.db", "-admin-token", "t1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error for missing required value")
			}
		})
	}
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-d", "x", "-t", "mysql", "-admin-token", "t1", "-ip-salt", "s1"})
	if err == nil {
		t.Error("expected error for unsupported database type")
	}
}
