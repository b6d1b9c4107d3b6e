// Package store persists tasks as newline-terminated lines in a single file.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

const baseName = "later"

var (
	// ErrDataDirUnavailable indicates the per-user data directory is unknown.
	ErrDataDirUnavailable = errors.New("data directory is not available")
	// ErrMultiline indicates a task spans more than one line.
	ErrMultiline = errors.New("task body should be single-line")
	// ErrInvalidEncoding indicates a stored line is not valid UTF-8.
	ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")
)

// FileName returns the store file name for the given build mode. Debug
// builds use a distinct name so development runs never touch real tasks.
func FileName(release bool) string {
	if release {
		return baseName + ".txt"
	}
	return baseName + ".dbg.txt"
}

// ResolvePath joins dataDir with the store file name.
func ResolvePath(dataDir string, release bool) (string, error) {
	if strings.TrimSpace(dataDir) == "" {
		return "", ErrDataDirUnavailable
	}
	return filepath.Join(dataDir, FileName(release)), nil
}

// Store is a handle on one task file.
type Store struct {
	fs   afero.Fs
	path string
}

// New returns a store backed by the file at path on fsys.
func New(fsys afero.Fs, path string) *Store {
	return &Store{fs: fsys, path: path}
}

// Path returns the location of the task file.
func (s *Store) Path() string {
	return s.path
}

// open returns a nil file and nil error when readOnly is set and the file
// does not exist yet. Reads never create the file.
func (s *Store) open(readOnly bool) (afero.File, error) {
	if readOnly {
		f, err := s.fs.Open(s.path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, nil
			}
			return nil, fmt.Errorf("open %s: %w", s.path, err)
		}
		return f, nil
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", filepath.Dir(s.path), err)
	}
	f, err := s.fs.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	return f, nil
}

// Append writes task as the last line of the file.
func (s *Store) Append(task string) (err error) {
	if strings.Contains(task, "\n") {
		return ErrMultiline
	}

	f, err := s.open(false)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", s.path, cerr)
		}
	}()

	if _, err := io.WriteString(f, task+"\n"); err != nil {
		return fmt.Errorf("append to %s: %w", s.path, err)
	}
	return nil
}

// Tasks yields each stored task in file order. The sequence is single-pass:
// the file is opened when iteration starts and closed when it stops. A
// missing file yields nothing. The first error ends the sequence.
func (s *Store) Tasks() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f, err := s.open(true)
		if err != nil {
			yield("", err)
			return
		}
		if f == nil {
			return
		}
		defer f.Close()

		r := bufio.NewReader(f)
		for n := 1; ; n++ {
			line, err := r.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				yield("", fmt.Errorf("read %s: %w", s.path, err))
				return
			}
			if line == "" {
				return
			}
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !utf8.ValidString(line) {
				yield("", fmt.Errorf("%s line %d: %w", s.path, n, ErrInvalidEncoding))
				return
			}
			if !yield(line, nil) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// Clear deletes the task file. Clearing a store that was never written is
// not an error.
func (s *Store) Clear() error {
	if err := s.fs.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", s.path, err)
	}
	return nil
}
