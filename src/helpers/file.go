package helpers

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// FileExists reports whether the given path exists and is a regular file.
func FileExists(filePath string, logger zap.SugaredLogger) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf("Error checking file %s: %v", filePath, err)
		}
		return false
	}
	return !info.IsDir()
}

// ReadFileMapped reads a whole file through a read-only memory mapping.
// The returned release function unmaps the data; callers must not hold on
// to the byte slice after calling it.
func ReadFileMapped(filePath string) ([]byte, func() error, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening file %s: %w", filePath, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("error reading file stats for %s: %w", filePath, err)
	}

	size := int(stat.Size())
	if size == 0 {
		return nil, func() error { return nil }, nil
	}

	data, err := unix.Mmap(int(file.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("error memory mapping file %s: %w", filePath, err)
	}

	return data, func() error { return unix.Munmap(data) }, nil
}

// WriteFileAtomic writes data to a temporary file in the same directory and
// renames it over the target, so readers never observe a half-written file.
func WriteFileAtomic(filePath string, data []byte) error {
	tmpPath := filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("error writing file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error replacing file %s: %w", filePath, err)
	}
	return nil
}
