// ABOUTME: Sanity checks that the embedded bundle contains every resource.
package seeddata

import (
	"io/fs"
	"testing"
)

func TestBundleContainsAllResources(t *testing.T) {
	required := []string{
		"foods.csv",
		"exercises.csv",
		"crossfit_movements.csv",
		"benchmark_wods.csv",
		"cardio_workouts.csv",
	}
	fsys := FS()
	for _, name := range required {
		if _, err := fs.Stat(fsys, name); err != nil {
			t.Errorf("missing embedded resource %s: %v", name, err)
		}
	}

	for _, dir := range []string{"programs", "routines"} {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			t.Fatalf("read %s: %v", dir, err)
		}
		if len(entries) == 0 {
			t.Errorf("%s has no documents", dir)
		}
	}
}
