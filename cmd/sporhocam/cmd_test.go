// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Tests parseTime, truncate, padRight, and command wiring.
package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sporhocam/sporhocam/internal/storage"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "date and time with space",
			input:   "2025-01-31 08:30",
			wantErr: false,
		},
		{
			name:    "date and time with T",
			input:   "2025-01-31T08:30",
			wantErr: false,
		},
		{
			name:    "date only",
			input:   "2025-01-31",
			wantErr: false,
		},
		{
			name:    "RFC3339",
			input:   "2025-01-31T08:30:00Z",
			wantErr: false,
		},
		{
			name:    "RFC3339 with offset",
			input:   "2025-01-31T08:30:00+05:00",
			wantErr: false,
		},
		{
			name:    "invalid format",
			input:   "31-01-2025",
			wantErr: true,
		},
		{
			name:    "invalid random string",
			input:   "not a date",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
				return
			}

			if result.IsZero() {
				t.Errorf("parseTime(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestParseTimeValues(t *testing.T) {
	result, err := parseTime("2025-06-15")
	if err != nil {
		t.Fatalf("parseTime failed: %v", err)
	}

	if result.Year() != 2025 || result.Month() != time.June || result.Day() != 15 {
		t.Errorf("parseTime returned wrong date: got %v", result)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short string no truncation",
			input:  "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exact length no truncation",
			input:  "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "long string truncated",
			input:  "hello world this is long",
			maxLen: 10,
			want:   "hello w...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{
			name:   "short string padded",
			input:  "abc",
			length: 6,
			want:   "abc   ",
		},
		{
			name:   "exact length unchanged",
			input:  "abc",
			length: 3,
			want:   "abc",
		},
		{
			name:   "long string unchanged",
			input:  "abcdef",
			length: 3,
			want:   "abcdef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.input, tt.length)
			if got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	expected := []string{
		"seed", "add", "list", "delete", "trend",
		"bmr", "tdee", "bodyfat", "bmi",
		"exercises", "foods", "export", "import",
		"migrate", "mcp", "profile",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("Expected command %q to be registered", name)
		}
	}
}

func TestSeedCmdFlags(t *testing.T) {
	for _, name := range []string{"force", "repair", "batch-size", "curated"} {
		if seedCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s flag on seed command", name)
		}
	}
}

func TestListCmdFlags(t *testing.T) {
	if listCmd.Flags().Lookup("type") == nil {
		t.Error("Expected --type flag on list command")
	}
	if listCmd.Flags().Lookup("limit") == nil {
		t.Error("Expected --limit flag on list command")
	}
}

func TestTrendCmdFlags(t *testing.T) {
	if trendCmd.Flags().Lookup("days") == nil {
		t.Error("Expected --days flag on trend command")
	}
}

func TestExportCmdFlags(t *testing.T) {
	for _, name := range []string{"output", "type", "since"} {
		if exportCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected --%s flag on export command", name)
		}
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	expected := map[string]bool{"json": false, "yaml": false, "markdown": false}

	for _, arg := range exportCmd.ValidArgs {
		if _, ok := expected[arg]; ok {
			expected[arg] = true
		}
	}

	for arg, found := range expected {
		if !found {
			t.Errorf("Expected valid arg %q for exportCmd", arg)
		}
	}
}

func TestAddCmdAliases(t *testing.T) {
	found := false
	for _, alias := range addCmd.Aliases {
		if alias == "a" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'a' alias for addCmd")
	}
}

func TestListCmdAliases(t *testing.T) {
	expectedAliases := map[string]bool{"ls": false, "l": false}

	for _, alias := range listCmd.Aliases {
		if _, ok := expectedAliases[alias]; ok {
			expectedAliases[alias] = true
		}
	}

	for alias, found := range expectedAliases {
		if !found {
			t.Errorf("Expected alias %q for listCmd", alias)
		}
	}
}

func TestDeleteCmdAliases(t *testing.T) {
	expectedAliases := map[string]bool{"del": false, "rm": false}

	for _, alias := range deleteCmd.Aliases {
		if _, ok := expectedAliases[alias]; ok {
			expectedAliases[alias] = true
		}
	}

	for alias, found := range expectedAliases {
		if !found {
			t.Errorf("Expected alias %q for deleteCmd", alias)
		}
	}
}

// setupTestCLI points XDG paths at a temp dir and pre-creates the schema.
// The returned DB is a second handle onto the same database the commands
// will open through PersistentPreRunE.
func setupTestCLI(t *testing.T) *storage.DB {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	dbPath := filepath.Join(tmpDir, "sporhocam", "sporhocam.db")
	testDB, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	t.Cleanup(func() {
		if repo != nil {
			repo.Close()
			repo = nil
		}
		testDB.Close()
	})

	return testDB
}

func TestAddCmdWithDB(t *testing.T) {
	testDB := setupTestCLI(t)

	// Reset global flags
	addAt = ""
	addNotes = ""

	rootCmd.SetArgs([]string{"add", "weight", "82.5"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("add command failed: %v", err)
	}

	measurements, err := testDB.ListMeasurements(nil, 0)
	if err != nil {
		t.Fatalf("ListMeasurements failed: %v", err)
	}
	if len(measurements) != 1 {
		t.Fatalf("Expected 1 measurement, got %d", len(measurements))
	}
	if measurements[0].Value != 82.5 {
		t.Errorf("Expected value 82.5, got %f", measurements[0].Value)
	}
}

func TestAddCmdWithNotes(t *testing.T) {
	testDB := setupTestCLI(t)

	addAt = ""
	addNotes = ""

	rootCmd.SetArgs([]string{"add", "protein", "140", "--notes", "training day"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("add command with notes failed: %v", err)
	}

	measurements, err := testDB.ListMeasurements(nil, 0)
	if err != nil {
		t.Fatalf("ListMeasurements failed: %v", err)
	}
	if len(measurements) != 1 {
		t.Fatalf("Expected 1 measurement, got %d", len(measurements))
	}
	if measurements[0].Notes == nil || *measurements[0].Notes != "training day" {
		t.Error("Notes not set correctly")
	}
}

func TestAddCmdInvalidType(t *testing.T) {
	setupTestCLI(t)

	addAt = ""
	addNotes = ""

	rootCmd.SetArgs([]string{"add", "bogus", "5"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for unknown measurement type")
	}
}

func TestDeleteCmdByPrefix(t *testing.T) {
	testDB := setupTestCLI(t)

	addAt = ""
	addNotes = ""

	rootCmd.SetArgs([]string{"add", "weight", "80"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("add command failed: %v", err)
	}

	measurements, err := testDB.ListMeasurements(nil, 0)
	if err != nil {
		t.Fatalf("ListMeasurements failed: %v", err)
	}
	if len(measurements) != 1 {
		t.Fatalf("Expected 1 measurement, got %d", len(measurements))
	}

	prefix := measurements[0].ID.String()[:8]
	rootCmd.SetArgs([]string{"delete", prefix})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("delete command failed: %v", err)
	}

	remaining, err := testDB.ListMeasurements(nil, 0)
	if err != nil {
		t.Fatalf("ListMeasurements failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("Expected 0 measurements after delete, got %d", len(remaining))
	}
}

func TestTrendCmdInvalidType(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"trend", "bogus"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for unknown measurement type")
	}
}

func TestListCmdEmpty(t *testing.T) {
	setupTestCLI(t)

	listType = ""
	listLimit = 20

	rootCmd.SetArgs([]string{"list"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("list command failed: %v", err)
	}
}
