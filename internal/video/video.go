// Package video writes rendered frames to an encoded MP4 file.
//
// The FFmpeg sink streams raw RGBA frames over stdin into a single ffmpeg
// process, avoiding any intermediate files. Frames must be written in
// strict index order; ordering is the caller's responsibility.
package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/datadash/lowerthird/internal/apperr"
)

// Sink consumes frames in order and produces the terminal video artifact.
type Sink interface {
	// WriteFrame appends one frame to the sequence.
	WriteFrame(img *image.RGBA) error
	// Close finalizes the artifact and releases the encoder. It must be
	// called on every exit path; the artifact is only valid if Close
	// returned nil.
	Close() error
}

// Params describe the fixed output profile of one sink.
type Params struct {
	Width, Height int
	FPS           int
	Encoder       string // h264_videotoolbox, h264_nvenc or libx264
	Quality       int    // bitrate/cq/crf depending on encoder
}

// FFmpegSink pipes raw frames into one ffmpeg process.
type FFmpegSink struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	output logBuffer
	params Params
	closed bool
}

// logBuffer collects ffmpeg output. The exec stderr copier writes from its
// own goroutine while WriteFrame may read for an error message, so both
// sides go through the mutex.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// OpenFFmpeg starts the encoder process targeting path. Failure to start is
// an ENCODER_OPEN error.
func OpenFFmpeg(ctx context.Context, path string, p Params) (*FFmpegSink, error) {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"-framerate", fmt.Sprintf("%d", p.FPS),
		"-i", "-",
		"-an",
		"-r", fmt.Sprintf("%d", p.FPS),
		"-pix_fmt", "yuv420p",
		"-c:v", p.Encoder,
	}
	args = append(args, qualityArgs(p.Encoder, p.Quality)...)
	args = append(args, "-movflags", "+faststart", path)

	s := &FFmpegSink{params: p}
	s.cmd = exec.CommandContext(ctx, "ffmpeg", args...)
	s.cmd.Stdout = &s.output
	s.cmd.Stderr = &s.output

	stdin, err := s.cmd.StdinPipe()
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeEncoderOpen, err, "ffmpeg stdin pipe")
	}
	s.stdin = stdin

	if err := s.cmd.Start(); err != nil {
		return nil, apperr.Wrap(apperr.CodeEncoderOpen, err, "ffmpeg start")
	}
	return s, nil
}

// qualityArgs picks the quality flags per encoder. VideoToolbox does not
// support -q:v reliably, so it gets a bitrate instead.
func qualityArgs(encoder string, quality int) []string {
	switch encoder {
	case "h264_videotoolbox":
		return []string{"-b:v", fmt.Sprintf("%dk", quality*100)}
	case "h264_nvenc":
		return []string{"-cq", fmt.Sprintf("%d", quality)}
	default: // libx264
		return []string{"-crf", fmt.Sprintf("%d", quality), "-preset", "medium"}
	}
}

// WriteFrame streams one raw RGBA frame. The frame must match the sink's
// dimensions with a standard stride.
func (s *FFmpegSink) WriteFrame(img *image.RGBA) error {
	bounds := img.Bounds()
	if bounds.Dx() != s.params.Width || bounds.Dy() != s.params.Height {
		return apperr.New(apperr.CodeFrameRender, "frame %v does not match sink %dx%d",
			bounds, s.params.Width, s.params.Height)
	}

	raw := img
	if raw.Stride != bounds.Dx()*4 || bounds.Min.X != 0 || bounds.Min.Y != 0 {
		raw = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(raw, raw.Bounds(), img, bounds.Min, draw.Src)
	}

	if _, err := s.stdin.Write(raw.Pix); err != nil {
		return apperr.Wrap(apperr.CodeFrameRender, err, "write frame to encoder: %s", s.tail())
	}
	return nil
}

// Close shuts the input stream and waits for ffmpeg to finish the file.
func (s *FFmpegSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.stdin.Close()
	if err := s.cmd.Wait(); err != nil {
		return apperr.Wrap(apperr.CodeInternal, err, "ffmpeg exited with error: %s", s.tail())
	}
	return nil
}

// tail returns the last lines of ffmpeg output for error messages.
func (s *FFmpegSink) tail() string {
	out := strings.TrimSpace(s.output.String())
	lines := strings.Split(out, "\n")
	if len(lines) > 4 {
		lines = lines[len(lines)-4:]
	}
	return strings.Join(lines, " | ")
}
