package ffclip

import (
	"context"
	"slices"
	"strings"
	"testing"
)

func TestBuildTrimArgs(t *testing.T) {
	tr := NewTrimmer()
	args := tr.buildTrimArgs(TrimSpec{
		Input:       "/videos/cam1.mp4",
		Output:      "/clips/out.mp4",
		StartSec:    95,
		DurationSec: 20,
	})

	// 流复制是硬性要求，任何转码参数都不允许出现
	for _, banned := range []string{"-vf", "-b:v", "libx264"} {
		if slices.Contains(args, banned) {
			t.Errorf("args contain transcode flag %q: %v", banned, args)
		}
	}

	wantPairs := map[string]string{
		"-ss":  "95.000",
		"-t":   "20.000",
		"-i":   "/videos/cam1.mp4",
		"-c:v": "copy",
		"-c:a": "copy",
	}
	for flag, want := range wantPairs {
		i := slices.Index(args, flag)
		if i < 0 || i+1 >= len(args) {
			t.Fatalf("missing flag %q in %v", flag, args)
		}
		if args[i+1] != want {
			t.Errorf("%s = %q, want %q", flag, args[i+1], want)
		}
	}

	if !slices.Contains(args, "-y") {
		t.Error("missing overwrite flag -y")
	}
	if args[len(args)-1] != "/clips/out.mp4" {
		t.Errorf("last arg = %q, want output path", args[len(args)-1])
	}
}

func TestTrimInvalidSpec(t *testing.T) {
	tr := NewTrimmer()
	if err := tr.Trim(context.Background(), TrimSpec{Output: "/tmp/x.mp4", DurationSec: 1}); err == nil {
		t.Error("expected error for empty input")
	}
	if err := tr.Trim(context.Background(), TrimSpec{Input: "a", Output: "b", DurationSec: 0}); err == nil {
		t.Error("expected error for zero duration")
	}
}

func TestToolErrorMessage(t *testing.T) {
	err := &ToolError{Input: "/videos/cam1.mp4", Stderr: "moov atom not found\n", Err: context.DeadlineExceeded}
	msg := err.Error()
	for _, want := range []string{"/videos/cam1.mp4", "moov atom not found"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}
