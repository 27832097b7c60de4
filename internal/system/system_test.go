package system

import (
	"image"
	"testing"
)

func TestDefaultQuality(t *testing.T) {
	cases := map[string]int{
		"h264_videotoolbox": 75,
		"h264_nvenc":        28,
		"libx264":           23,
		"anything_else":     23,
	}
	for encoder, want := range cases {
		if got := DefaultQuality(encoder); got != want {
			t.Errorf("DefaultQuality(%s) = %d, want %d", encoder, got, want)
		}
	}
}

func TestRenderWorkersBounds(t *testing.T) {
	frameBytes := 1920 * 1080 * 4

	if got := RenderWorkers(1, frameBytes); got != 1 {
		t.Errorf("one frame should get one worker, got %d", got)
	}
	if got := RenderWorkers(0, frameBytes); got != 1 {
		t.Errorf("worker count must never drop below 1, got %d", got)
	}
	if got := RenderWorkers(10000, frameBytes); got < 1 {
		t.Errorf("got %d workers for a large job", got)
	}
}

func TestFramePoolRecycles(t *testing.T) {
	pool := NewFramePool(64, 32)

	a := pool.Get()
	if a.Bounds() != image.Rect(0, 0, 64, 32) {
		t.Fatalf("bounds = %v", a.Bounds())
	}
	pool.Put(a)

	b := pool.Get()
	if b.Bounds() != image.Rect(0, 0, 64, 32) {
		t.Fatalf("bounds = %v", b.Bounds())
	}
	pool.Put(b)
}

func TestFramePoolDropsForeignBuffers(t *testing.T) {
	pool := NewFramePool(64, 32)

	pool.Put(nil)
	pool.Put(image.NewRGBA(image.Rect(0, 0, 8, 8)))

	if got := pool.Get().Bounds(); got != image.Rect(0, 0, 64, 32) {
		t.Fatalf("pool returned foreign bounds %v", got)
	}
}
