// ABOUTME: Integration tests for the sporhocam CLI.
// ABOUTME: Builds the binary and exercises the full seed/add/list workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "sporhocam-test")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/sporhocam")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	// Isolate data and config under a temp dir
	tmpDir := t.TempDir()

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Env = append(os.Environ(),
			"XDG_DATA_HOME="+tmpDir,
			"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Seed the reference data
	output, err := run("seed")
	if err != nil {
		t.Fatalf("Failed to seed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Seeding complete") {
		t.Errorf("Expected 'Seeding complete' in output, got: %s", output)
	}

	// Seeding again should be a no-op
	output, err = run("seed")
	if err != nil {
		t.Fatalf("Failed to re-seed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "already seeded") {
		t.Errorf("Expected 'already seeded' in output, got: %s", output)
	}

	// Add measurements
	output, err = run("add", "weight", "82.5")
	if err != nil {
		t.Fatalf("Failed to add weight: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Added weight") {
		t.Errorf("Expected 'Added weight' in output, got: %s", output)
	}

	output, err = run("add", "waist", "88")
	if err != nil {
		t.Fatalf("Failed to add waist: %v\n%s", err, output)
	}

	// List measurements
	output, err = run("list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "weight") || !strings.Contains(output, "waist") {
		t.Errorf("Expected weight and waist in list output, got: %s", output)
	}

	// Search the seeded reference data
	output, err = run("exercises", "search", "squat")
	if err != nil {
		t.Fatalf("Failed to search exercises: %v\n%s", err, output)
	}
	if !strings.Contains(strings.ToLower(output), "squat") {
		t.Errorf("Expected a squat result, got: %s", output)
	}

	// Trend on a single point is stable
	output, err = run("trend", "weight")
	if err != nil {
		t.Fatalf("Failed to analyze trend: %v\n%s", err, output)
	}
	if !strings.Contains(output, "stable") {
		t.Errorf("Expected 'stable' in trend output, got: %s", output)
	}

	// Profile round-trip
	output, err = run("profile", "set", "--sex", "male", "--age", "30", "--height", "180", "--activity", "moderate")
	if err != nil {
		t.Fatalf("Failed to set profile: %v\n%s", err, output)
	}

	output, err = run("bmr")
	if err != nil {
		t.Fatalf("Failed to compute BMR: %v\n%s", err, output)
	}
	if !strings.Contains(output, "BMR:") {
		t.Errorf("Expected BMR output, got: %s", output)
	}
}
