package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// rotator is an io.Writer that caps the log file size and keeps a fixed
// number of numbered backups (gateway.log.1 is the most recent).
type rotator struct {
	filename string
	maxBytes int64
	backups  int
	file     *os.File
	size     int64
	mu       sync.Mutex
}

// Setup points the standard logger at both stdout and a size-rotated file.
// On any file error logging falls back to stdout only.
func Setup(filename string, maxSizeMB int64, backups int) {
	r := &rotator{
		filename: filename,
		maxBytes: maxSizeMB * 1024 * 1024,
		backups:  backups,
	}

	if err := r.open(); err != nil {
		log.Printf("Failed to open log file, using stdout only: %v", err)
		return
	}

	log.SetOutput(io.MultiWriter(os.Stdout, r))
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

func (r *rotator) open() error {
	info, err := os.Stat(r.filename)
	if os.IsNotExist(err) {
		return r.create()
	}
	if err != nil {
		return err
	}

	f, err := os.OpenFile(r.filename, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	r.file = f
	r.size = info.Size()
	return nil
}

func (r *rotator) create() error {
	f, err := os.OpenFile(r.filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	r.file = f
	r.size = 0
	return nil
}

func (r *rotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.size+int64(len(p)) > r.maxBytes {
		if err := r.rotate(); err != nil {
			// Keep writing to the old file rather than dropping log lines.
			fmt.Fprintf(os.Stderr, "Log rotation failed: %v\n", err)
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *rotator) rotate() error {
	if r.file != nil {
		r.file.Close()
	}

	// Shift backups up: log.2 -> log.3, log.1 -> log.2, log -> log.1.
	for i := r.backups - 1; i >= 1; i-- {
		old := fmt.Sprintf("%s.%d", r.filename, i)
		if _, err := os.Stat(old); os.IsNotExist(err) {
			continue
		}
		os.Rename(old, fmt.Sprintf("%s.%d", r.filename, i+1))
	}
	if _, err := os.Stat(r.filename); err == nil {
		os.Rename(r.filename, r.filename+".1")
	}

	return r.create()
}
