package util

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists
func DirExists(dirname string) bool {
	info, err := os.Stat(dirname)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CreateDirIfNotExist creates a directory if it doesn't exist
func CreateDirIfNotExist(dir string) error {
	if dir == "" || DirExists(dir) {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// ReplaceExt swaps the extension of filename for ext (which includes the dot)
func ReplaceExt(filename, ext string) string {
	return filename[:len(filename)-len(filepath.Ext(filename))] + ext
}

// TimeTrack reports how long a function took through logf.
// Usage: defer TimeTrack(time.Now(), "FunctionName", log.Debugf)
func TimeTrack(start time.Time, name string, logf func(format string, v ...interface{})) {
	logf("%s took %s", name, time.Since(start))
}
