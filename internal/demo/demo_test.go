package demo

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseSpeed(t *testing.T) {
	for _, name := range []string{"instant", "fast", "normal", "slow"} {
		if s, err := ParseSpeed(name); err != nil || string(s) != name {
			t.Errorf("ParseSpeed(%q) = (%q, %v)", name, s, err)
		}
	}
	for _, name := range []string{"", "Fast", "ludicrous"} {
		if _, err := ParseSpeed(name); err == nil {
			t.Errorf("ParseSpeed(%q): expected error", name)
		}
	}
}

func TestSpeedScale(t *testing.T) {
	base := 50 * time.Millisecond
	cases := map[Speed]time.Duration{
		SpeedInstant: 0,
		SpeedFast:    10 * time.Millisecond,
		SpeedNormal:  base,
		SpeedSlow:    100 * time.Millisecond,
	}
	for speed, want := range cases {
		if got := speed.scale(base); got != want {
			t.Errorf("%s: got %v, want %v", speed, got, want)
		}
	}
}

func TestRunPlaysAllSessions(t *testing.T) {
	var out bytes.Buffer
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := NewConfig(&out, SpeedInstant)
	cfg.Clock = func() time.Time { return now }

	if err := Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 finished lines, got %d", len(lines))
	}

	finals := make([]string, len(lines))
	for i, line := range lines {
		frames := strings.Split(line, "\r")
		// A final frame narrower than the one before it is padded with blanks.
		finals[i] = strings.TrimRight(frames[len(frames)-1], " ")
	}

	wantBasic := "✅ Completed : [" + strings.Repeat("=", 50) + "] [100% | 100/100] ETA: 00h:00m:00s Ok, done!"
	if finals[0] != wantBasic {
		t.Errorf("basic:\n got  %q\n want %q", finals[0], wantBasic)
	}
	wantRelabel := "✅ Done      : [" + strings.Repeat("$", 50) + "] [100% | 100/100] ETA: 00h:00m:00s Ok, done!"
	if finals[1] != wantRelabel {
		t.Errorf("relabel:\n got  %q\n want %q", finals[1], wantRelabel)
	}
	if !strings.HasPrefix(finals[2], "✅ Downloaded: ["+strings.Repeat("#", 50)+"] 1000.00B/s / 1000.00B/s [100%] in 0s") {
		t.Errorf("download: got %q", finals[2])
	}
	if !strings.HasSuffix(finals[2], "✔️") {
		t.Errorf("download suffix: got %q", finals[2])
	}

	if !strings.Contains(lines[1], "Uploading: [") || !strings.Contains(lines[1], "(almost there)") {
		t.Error("relabel session must show the intermediate labels")
	}
	if !strings.Contains(lines[2], "Downloading: [") || !strings.Contains(lines[2], "📦") {
		t.Error("download session must show its working labels")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, NewConfig(&out, SpeedNormal))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if strings.Contains(out.String(), "\n") {
		t.Error("a cancelled session must not finish its bar")
	}
}
