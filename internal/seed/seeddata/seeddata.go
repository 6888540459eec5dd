// ABOUTME: Embedded seed data bundle: CSV snapshots plus JSON templates.
// ABOUTME: Exposes the bundle as an fs.FS for the seeding pipeline.
package seeddata

import (
	"embed"
	"io/fs"
)

//go:embed *.csv programs routines
var bundle embed.FS

// FS returns the embedded seed data filesystem.
func FS() fs.FS {
	return fs.FS(bundle)
}
