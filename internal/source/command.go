package source

import (
	"bufio"
	"fmt"
	"os/exec"
	"sync"
)

// CommandSource streams the stdout of a subprocess, one raw string per line.
// A goroutine owns the blocking reads and parks lines in a buffer so Poll can
// stay non-blocking.
type CommandSource struct {
	name string
	args []string

	cmd  *exec.Cmd
	done chan struct{}

	mu      sync.Mutex
	pending []string
}

// NewCommand returns a source that will run name with args on Start.
func NewCommand(name string, args ...string) *CommandSource {
	return &CommandSource{name: name, args: args}
}

// Start launches the subprocess and the goroutine scanning its stdout.
func (s *CommandSource) Start() error {
	s.cmd = exec.Command(s.name, s.args...)
	stdout, err := s.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("pipe %s stdout: %w", s.name, err)
	}
	if err := s.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", s.name, err)
	}

	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			s.mu.Lock()
			s.pending = append(s.pending, line)
			s.mu.Unlock()
		}
	}()
	return nil
}

// Stop kills the subprocess and waits for the scanner goroutine to finish.
// The error from Wait is discarded: the process dying by our own signal is
// the expected outcome here.
func (s *CommandSource) Stop() error {
	if s.cmd == nil {
		return nil
	}
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	_ = s.cmd.Wait()
	<-s.done
	return nil
}

// Poll drains the buffered lines without blocking.
func (s *CommandSource) Poll() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out, nil
}
