package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// FileOptions tune a FileSource.
type FileOptions struct {
	// FromStart reads the whole existing file instead of only what gets
	// appended after Start.
	FromStart bool

	// Chunked returns each appended delta as a single string instead of
	// splitting it into lines. Structured decoders need the delta intact.
	Chunked bool
}

// FileSource tails one file by remembering the last observed length and
// reading whatever got appended since the previous poll. A shrinking file is
// treated as a rotation and re-read from the beginning.
type FileSource struct {
	path    string
	opts    FileOptions
	lastLen int64
	pending string // partial trailing line carried across polls
}

// NewFile returns a source tailing the file at path. The file may not exist
// yet; polling simply returns nothing until it appears.
func NewFile(path string, opts FileOptions) *FileSource {
	return &FileSource{path: path, opts: opts}
}

// Start records the current file length so polling only reports new data,
// unless FromStart asks for the backlog too.
func (s *FileSource) Start() error {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("log path %s is a directory", s.path)
	}
	if !s.opts.FromStart {
		s.lastLen = info.Size()
	}
	return nil
}

// Stop resets the tail position.
func (s *FileSource) Stop() error {
	s.lastLen = 0
	s.pending = ""
	return nil
}

// Poll reads the delta appended since the last call. It never waits for data.
func (s *FileSource) Poll() ([]string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat log file: %w", err)
	}

	size := info.Size()
	if size < s.lastLen {
		// rotated or truncated: start over
		s.lastLen = 0
		s.pending = ""
	}
	if size == s.lastLen {
		return nil, nil
	}

	delta, err := s.readRange(s.lastLen, size)
	if err != nil {
		return nil, err
	}
	s.lastLen = size

	if s.opts.Chunked {
		return []string{delta}, nil
	}
	return s.splitLines(delta), nil
}

func (s *FileSource) readRange(from, to int64) (string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return "", fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if _, err := file.Seek(from, io.SeekStart); err != nil {
		return "", fmt.Errorf("seek log file: %w", err)
	}
	buf := make([]byte, to-from)
	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read log file: %w", err)
	}
	return string(buf[:n]), nil
}

// splitLines returns the complete lines of delta, buffering a trailing
// partial line until its terminator arrives on a later poll.
func (s *FileSource) splitLines(delta string) []string {
	s.pending += delta
	if !strings.Contains(s.pending, "\n") {
		return nil
	}

	cut := strings.LastIndexByte(s.pending, '\n')
	complete := s.pending[:cut]
	s.pending = s.pending[cut+1:]

	var lines []string
	for _, line := range strings.Split(complete, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
