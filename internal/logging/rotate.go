package logging

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// RotatingFile is an io.WriteCloser appending to a file that is rotated by
// size. Rotated files are named <path>.1 (newest) through <path>.N (oldest),
// N being the backup count. The file is opened on first write.
type RotatingFile struct {
	path        string
	maxBytes    int64
	backupCount int

	mu   sync.Mutex
	file *os.File
	size int64
}

// NewRotatingFile returns a RotatingFile for path. maxBytes must be positive
// and backupCount non-negative.
func NewRotatingFile(path string, maxBytes int64, backupCount int) *RotatingFile {
	return &RotatingFile{path: path, maxBytes: maxBytes, backupCount: backupCount}
}

// Write appends p, rotating first when p would bring a non-empty file to
// the size limit. A single write is never split across files.
func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) >= r.maxBytes {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// Close closes the active file. A later Write reopens it.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.close()
}

func (r *RotatingFile) open() error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

func (r *RotatingFile) close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// rotate shifts the backups up by one, dropping the oldest, and starts a new
// active file. Callers hold r.mu.
func (r *RotatingFile) rotate() error {
	if err := r.close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}

	if r.backupCount > 0 {
		if err := removeIfExists(r.backupName(r.backupCount)); err != nil {
			return err
		}
		for i := r.backupCount - 1; i >= 1; i-- {
			if err := renameIfExists(r.backupName(i), r.backupName(i+1)); err != nil {
				return err
			}
		}
		if err := renameIfExists(r.path, r.backupName(1)); err != nil {
			return err
		}
	} else if err := removeIfExists(r.path); err != nil {
		return err
	}

	return r.open()
}

func (r *RotatingFile) backupName(i int) string {
	return fmt.Sprintf("%s.%d", r.path, i)
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func renameIfExists(from, to string) error {
	if err := os.Rename(from, to); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to rotate %s: %w", from, err)
	}
	return nil
}
