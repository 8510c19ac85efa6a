package executor

import (
	"github.com/harrison/dataset/internal/fileutil"
	"github.com/harrison/dataset/internal/models"
)

// PresenceChecker reports whether a declared path is absent.
type PresenceChecker interface {
	Missing(path string) bool
}

// FSPresence checks the local filesystem. A path is present only if it names a regular file.
type FSPresence struct{}

// Missing implements PresenceChecker.
func (FSPresence) Missing(path string) bool {
	return !fileutil.IsRegularFile(path)
}

// MissingFiles returns the declared files of rec that checker reports missing,
// in field order. N/A and absent fields are never missing.
func MissingFiles(rec *models.Record, checker PresenceChecker) []string {
	var missing []string
	for _, path := range rec.DeclaredFiles() {
		if checker.Missing(path) {
			missing = append(missing, path)
		}
	}
	return missing
}
