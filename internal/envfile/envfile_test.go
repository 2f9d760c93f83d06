package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// unset clears variables for the test and restores them afterwards.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		_ = os.Unsetenv(key) //nolint:errcheck
	}
}

func TestLoad_NonexistentFile(t *testing.T) {
	if err := Load("/nonexistent/.env"); err != nil {
		t.Fatalf("expected nil for nonexistent file, got %v", err)
	}
}

func TestLoad_SetsUnsetVars(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env.local", "HARVEST_TEST_TOKEN=abc123\nHARVEST_TEST_ACCOUNT=99\n")
	unset(t, "HARVEST_TEST_TOKEN", "HARVEST_TEST_ACCOUNT")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("HARVEST_TEST_TOKEN"); got != "abc123" {
		t.Errorf("HARVEST_TEST_TOKEN = %q, want %q", got, "abc123")
	}
	if got := os.Getenv("HARVEST_TEST_ACCOUNT"); got != "99" {
		t.Errorf("HARVEST_TEST_ACCOUNT = %q, want %q", got, "99")
	}
}

func TestLoad_DoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "HARVEST_TEST_PRIORITY=from_file\n")

	t.Setenv("HARVEST_TEST_PRIORITY", "from_env")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("HARVEST_TEST_PRIORITY"); got != "from_env" {
		t.Errorf("HARVEST_TEST_PRIORITY = %q, want %q (env should take precedence)", got, "from_env")
	}
}

func TestLoad_SkipsCommentsAndBlanks(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "# comment line\n\nHARVEST_TEST_KEPT=yes\n  # indented comment\n")
	unset(t, "HARVEST_TEST_KEPT")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("HARVEST_TEST_KEPT"); got != "yes" {
		t.Errorf("HARVEST_TEST_KEPT = %q, want %q", got, "yes")
	}
}

func TestLoadAll_EarlierFilesWin(t *testing.T) {
	dir := t.TempDir()
	local := writeFile(t, dir, ".env.local", "HARVEST_TEST_CASCADE=local\n")
	global := writeFile(t, dir, "env", "HARVEST_TEST_CASCADE=global\nHARVEST_TEST_GLOBAL_ONLY=yes\n")
	unset(t, "HARVEST_TEST_CASCADE", "HARVEST_TEST_GLOBAL_ONLY")

	missing := filepath.Join(dir, ".env")
	if err := LoadAll(local, missing, global); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("HARVEST_TEST_CASCADE"); got != "local" {
		t.Errorf("HARVEST_TEST_CASCADE = %q, want %q (first file wins)", got, "local")
	}
	if got := os.Getenv("HARVEST_TEST_GLOBAL_ONLY"); got != "yes" {
		t.Errorf("HARVEST_TEST_GLOBAL_ONLY = %q, want %q", got, "yes")
	}
}

func TestPresent(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, ".env", "A=1\n")
	missing := filepath.Join(dir, ".env.local")
	second := writeFile(t, dir, "env", "B=2\n")

	got := Present(first, missing, second)
	want := []string{first, second}
	if len(got) != len(want) {
		t.Fatalf("Present() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Present()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPresent_NoneExist(t *testing.T) {
	dir := t.TempDir()
	if got := Present(filepath.Join(dir, ".env"), filepath.Join(dir, ".env.local")); len(got) != 0 {
		t.Errorf("Present() = %v, want empty", got)
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line    string
		wantKey string
		wantVal string
		wantOK  bool
	}{
		{"KEY=value", "KEY", "value", true},
		{"KEY=\"quoted value\"", "KEY", "quoted value", true},
		{"KEY='single quoted'", "KEY", "single quoted", true},
		{"export KEY=value", "KEY", "value", true},
		{"  KEY = value  ", "KEY", "value", true},
		{"no-equals-sign", "", "", false},
		{"=no-key", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		key, val, ok := parseLine(tt.line)
		if ok != tt.wantOK || key != tt.wantKey || val != tt.wantVal {
			t.Errorf("parseLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.line, key, val, ok, tt.wantKey, tt.wantVal, tt.wantOK)
		}
	}
}
