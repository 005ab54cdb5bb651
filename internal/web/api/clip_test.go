package api

import "testing"

func TestAttachmentHeaderQuoted(t *testing.T) {
	got := attachmentHeader("ev_1 clip;v1.mp4")
	want := `attachment; filename="ev_1 clip;v1.mp4"`
	if got != want {
		t.Errorf("header = %s, want %s", got, want)
	}
}
