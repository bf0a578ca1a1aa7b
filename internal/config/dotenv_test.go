package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDotEnv(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	return path
}

func TestLoadDotEnv_LoadsValuesAndIgnoresNoise(t *testing.T) {
	t.Setenv("A", "")
	t.Setenv("B", "")
	t.Setenv("C", "")

	path := writeDotEnv(t, `
# comment

A=one
export B=two
C="three"
not a pair
`)

	applied, err := loadDotEnv(path)
	if err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
	if applied != 3 {
		t.Fatalf("applied=%d, want 3", applied)
	}

	for k, want := range map[string]string{"A": "one", "B": "two", "C": "three"} {
		if got := os.Getenv(k); got != want {
			t.Fatalf("%s=%q, want %q", k, got, want)
		}
	}
}

func TestLoadDotEnv_DoesNotOverwriteExistingEnv(t *testing.T) {
	t.Setenv("KEEP", "already")

	path := writeDotEnv(t, "KEEP=fromfile\n")

	applied, err := loadDotEnv(path)
	if err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
	if applied != 0 {
		t.Fatalf("applied=%d, want 0", applied)
	}
	if got := os.Getenv("KEEP"); got != "already" {
		t.Fatalf("KEEP=%q, want %q", got, "already")
	}
}

func TestLoadDotEnv_QuotesAndInlineComments(t *testing.T) {
	t.Setenv("Q", "")
	t.Setenv("H", "")
	t.Setenv("P", "")

	path := writeDotEnv(t, "Q='hello # world'\nH=200 # precio\nP=\"a\" # trailing\n")

	if _, err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	for k, want := range map[string]string{"Q": "hello # world", "H": "200", "P": "a"} {
		if got := os.Getenv(k); got != want {
			t.Fatalf("%s=%q, want %q", k, got, want)
		}
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	applied, err := loadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
	if err != nil || applied != 0 {
		t.Fatalf("loadDotEnv missing file = (%d, %v), want (0, nil)", applied, err)
	}
}
