package source

import (
	"reflect"
	"testing"
	"time"
)

func TestCommandSource_StreamsStdout(t *testing.T) {
	src := NewCommand("sh", "-c", `printf 'alpha\nbeta\n'`)
	if err := src.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer func() { _ = src.Stop() }()

	var got []string
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && len(got) < 2 {
		lines, err := src.Poll()
		if err != nil {
			t.Fatalf("Poll: %v", err)
		}
		got = append(got, lines...)
		time.Sleep(time.Millisecond)
	}

	if !reflect.DeepEqual(got, []string{"alpha", "beta"}) {
		t.Errorf("got %v, want [alpha beta]", got)
	}
}

func TestCommandSource_StartFailureIsFatal(t *testing.T) {
	src := NewCommand("definitely-not-a-real-binary-7d1f")
	if err := src.Start(); err == nil {
		t.Fatal("Start succeeded for a missing binary, want error")
	}
}

func TestCommandSource_StopKillsProcess(t *testing.T) {
	src := NewCommand("sleep", "60")
	if err := src.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	done := make(chan struct{})
	go func() {
		_ = src.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return; process not killed")
	}
}
