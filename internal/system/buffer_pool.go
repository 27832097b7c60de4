package system

import (
	"image"
	"sync"
)

// FramePool recycles *image.RGBA frame buffers of a single fixed size to
// keep the render worker pool off the garbage collector's back. A render
// produces thousands of identically sized frames, so one bounds per pool
// is all that is needed.
type FramePool struct {
	bounds image.Rectangle
	pool   sync.Pool
}

// NewFramePool creates a pool for frames of the given dimensions.
func NewFramePool(width, height int) *FramePool {
	bounds := image.Rect(0, 0, width, height)
	return &FramePool{
		bounds: bounds,
		pool: sync.Pool{
			New: func() interface{} {
				return image.NewRGBA(bounds)
			},
		},
	}
}

// Get returns a frame buffer. Its pixels may contain data from a previous
// use; callers are expected to overwrite every pixel.
func (p *FramePool) Get() *image.RGBA {
	return p.pool.Get().(*image.RGBA)
}

// Put returns a frame buffer to the pool. Buffers of the wrong size are
// dropped on the floor.
func (p *FramePool) Put(img *image.RGBA) {
	if img == nil || img.Rect != p.bounds {
		return
	}
	p.pool.Put(img)
}
