package structured

import (
	"strings"
	"testing"
)

func TestProcessDelta_SingleItem(t *testing.T) {
	delta := "## 2025-01-15 10:30:00\n[main.rs:42] ERROR ## [AUTH]Login failed"

	entries := ProcessDelta(delta)
	if len(entries) != 1 {
		t.Fatalf("ProcessDelta returned %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.Content != "Login failed" {
		t.Errorf("Content = %q, want %q", e.Content, "Login failed")
	}
	if e.Time != "2025-01-15 10:30:00" {
		t.Errorf("Time = %q, want %q", e.Time, "2025-01-15 10:30:00")
	}
	if e.Raw != "[main.rs:42] ERROR ## [AUTH]Login failed" {
		t.Errorf("Raw = %q", e.Raw)
	}

	wantMeta := map[string]string{"level": "ERROR", "origin": "main.rs:42", "tag": "AUTH"}
	for key, want := range wantMeta {
		if got := e.Meta(key); got != want {
			t.Errorf("Meta(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestProcessDelta_NoDelimiter(t *testing.T) {
	tests := []struct {
		name  string
		delta string
	}{
		{"plain text", "just some unstructured noise\nand another line"},
		{"empty", ""},
		{"whitespace only", "   \n\t\n"},
		{"wrapper only", "[2025-01-15 10:30:00.123] [monitor]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProcessDelta(tt.delta); len(got) != 0 {
				t.Errorf("ProcessDelta(%q) returned %d entries, want 0", tt.delta, len(got))
			}
		})
	}
}

func TestProcessDelta_WrapperStripping(t *testing.T) {
	delta := "[2025-01-15 10:30:00.123] [monitor]\n" +
		"## 2025-01-15 10:30:00\n" +
		"[a.rs:1] INFO ## [T]first [2025-01-15 10:30:01.456] [monitor] still first"

	entries := ProcessDelta(delta)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if strings.Contains(entries[0].Content, "monitor") {
		t.Errorf("inline wrapper survived: %q", entries[0].Content)
	}
	if entries[0].Content != "first still first" {
		t.Errorf("Content = %q, want %q", entries[0].Content, "first still first")
	}
}

func TestProcessDelta_UnmatchedHeader(t *testing.T) {
	delta := "## 2025-01-15 10:30:00\nno header shape at all"

	entries := ProcessDelta(delta)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Content != "no header shape at all" {
		t.Errorf("Content = %q", e.Content)
	}
	for _, key := range []string{"level", "origin", "tag"} {
		if e.HasMeta(key) {
			t.Errorf("metadata %q present on unmatched header, want absent", key)
		}
	}
}

func TestProcessDelta_HeaderWithBOM(t *testing.T) {
	delta := "## 2025-01-15 10:30:00\n\uFEFF[lib.rs:7] WARN ## [NET] timeout"

	entries := ProcessDelta(delta)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Meta("level") != "WARN" || e.Meta("origin") != "lib.rs:7" || e.Meta("tag") != "NET" {
		t.Errorf("metadata = %v", e.Metadata)
	}
	if e.Content != "timeout" {
		t.Errorf("Content = %q, want %q", e.Content, "timeout")
	}
}

func TestProcessDelta_MultipleItemsInOrder(t *testing.T) {
	delta := "## 2025-01-15 10:30:00\n[a] INFO ## [T] one\n" +
		"## 2025-01-15 10:30:01\n[a] INFO ## [T] two\n" +
		"## 2025-01-15 10:30:02\n[a] INFO ## [T] three"

	entries := ProcessDelta(delta)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i, want := range []string{"one", "two", "three"} {
		if entries[i].Content != want {
			t.Errorf("entries[%d].Content = %q, want %q", i, entries[i].Content, want)
		}
	}
}

func TestProcessDelta_PauseInterleaved(t *testing.T) {
	delta := "## 2025-01-15 10:30:00\n[a] INFO ## [T] before\n" +
		"bef_effect_onpause_imp(ctx)\n" +
		"## 2025-01-15 10:31:00\n[a] INFO ## [T] after"

	entries := ProcessDelta(delta)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	want := []string{"before", "PAUSED", "after"}
	for i := range want {
		if entries[i].Content != want[i] {
			t.Errorf("entries[%d].Content = %q, want %q", i, entries[i].Content, want[i])
		}
	}
}

func TestProcessDelta_AdjacentPauseMarkersMerge(t *testing.T) {
	// markers on lines 3 and 5 with only a blank line 4 between them
	delta := "## 2025-01-15 10:30:00\n[a] INFO ## [T] head\n" +
		"bef_effect_onpause_imp(ctx)\n" +
		"\n" +
		"some OnPause happened\n" +
		"## 2025-01-15 10:31:00\n[a] INFO ## [T] tail"

	entries := ProcessDelta(delta)

	paused := 0
	for _, e := range entries {
		if e.Content == "PAUSED" {
			paused++
		}
	}
	if paused != 1 {
		t.Fatalf("got %d PAUSED entries, want 1 merged", paused)
	}
}

func TestProcessDelta_SeparatedPauseMarkersStaySeparate(t *testing.T) {
	delta := "## 2025-01-15 10:30:00\n[a] INFO ## [T] head\n" +
		"bef_effect_onpause_imp(ctx)\n" +
		"an unrelated line in between\n" +
		"onpause again\n" +
		"## 2025-01-15 10:31:00\n[a] INFO ## [T] tail"

	entries := ProcessDelta(delta)

	paused := 0
	for _, e := range entries {
		if e.Content == "PAUSED" {
			paused++
		}
	}
	if paused != 2 {
		t.Fatalf("got %d PAUSED entries, want 2", paused)
	}
}

func TestProcessDelta_ResumeMarker(t *testing.T) {
	delta := "## 2025-01-15 10:30:00\n[a] INFO ## [T] head\n" +
		"BEF_EFFECT_ONRESUME_IMP (ctx)"

	entries := ProcessDelta(delta)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[1].Content != "RESUMED" {
		t.Errorf("entries[1].Content = %q, want RESUMED", entries[1].Content)
	}
}

func TestProcessDelta_MarkerWithoutDelimiter(t *testing.T) {
	// special events are scanned independently of the item delimiters
	delta := "noise\nbef_effect_onpause_imp(ctx)\nmore noise"

	entries := ProcessDelta(delta)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Content != "PAUSED" {
		t.Errorf("Content = %q, want PAUSED", entries[0].Content)
	}
}

func TestProcessDelta_MultilineMessage(t *testing.T) {
	delta := "## 2025-01-15 10:30:00\n[a.rs:9] ERROR ## [DB] query failed\nstack line 1\nstack line 2"

	entries := ProcessDelta(delta)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if !strings.Contains(entries[0].Content, "stack line 2") {
		t.Errorf("multi-line message truncated: %q", entries[0].Content)
	}
}
