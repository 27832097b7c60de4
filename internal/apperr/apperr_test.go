package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(CodeInvalidInput, "duration must be positive, got %v", -1.0)
	want := "INVALID_INPUT: duration must be positive, got -1"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("pipe closed")
	err := Wrap(CodeEncoderOpen, cause, "ffmpeg failed to start")

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if !Is(err, CodeEncoderOpen) {
		t.Error("code not detected on wrapped error")
	}
	if Is(err, CodeFrameRender) {
		t.Error("unexpected code match")
	}
}

func TestCodeSurvivesFmtWrapping(t *testing.T) {
	err := fmt.Errorf("render: %w", New(CodeFrameRender, "frame 12 failed"))
	if GetCode(err) != CodeFrameRender {
		t.Errorf("Expected FRAME_RENDER through fmt wrapping, got %q", GetCode(err))
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(CodeConfiguration, "cannot create outputs")); got != "cannot create outputs" {
		t.Errorf("Expected bare message, got %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("Expected plain passthrough, got %q", got)
	}
}
