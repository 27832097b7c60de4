// Package engine drives a full render: it validates the request, prepares
// immutable assets, renders frames on a worker pool and streams them in
// order into the encoder sink.
package engine

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/datadash/lowerthird/internal/apperr"
	"github.com/datadash/lowerthird/internal/config"
	"github.com/datadash/lowerthird/internal/renderer"
	"github.com/datadash/lowerthird/internal/system"
	"github.com/datadash/lowerthird/internal/timeline"
	"github.com/datadash/lowerthird/internal/video"
)

// SinkFactory opens the encoder sink for one output file. Swappable in
// tests to avoid spawning ffmpeg.
type SinkFactory func(ctx context.Context, path string, p video.Params) (video.Sink, error)

// Request describes one lowerthird clip.
type Request struct {
	MainTitle  string
	Subtitle   string
	OutputName string // file stem, no extension or path
	Style      string
	BadgeURL   string
	Duration   float64
}

// Engine renders clips one at a time. Frame rendering inside a clip is
// parallel; concurrent Generate calls are serialized so ffmpeg processes
// do not pile up.
type Engine struct {
	cfg      *config.Config
	logger   *log.Logger
	profile  timeline.Profile
	openSink SinkFactory

	mu sync.Mutex
}

// outputName permits file stems that cannot escape the output directory.
var outputName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// New builds an engine, loading the animation profile override when the
// configuration points at one.
func New(cfg *config.Config, logger *log.Logger) (*Engine, error) {
	profile := timeline.Default()
	if cfg.ProfilePath != "" {
		p, err := timeline.LoadProfile(cfg.ProfilePath)
		if err != nil {
			return nil, err
		}
		profile = p
	}

	return &Engine{
		cfg:     cfg,
		logger:  logger,
		profile: profile,
		openSink: func(ctx context.Context, path string, p video.Params) (video.Sink, error) {
			return video.OpenFFmpeg(ctx, path, p)
		},
	}, nil
}

// Generate renders the clip and returns the path of the finished MP4.
// Nothing is written to disk for an invalid request; a partially written
// file is removed on any later failure.
func (e *Engine) Generate(ctx context.Context, req Request) (string, error) {
	spec := renderer.DefaultSpec()
	spec.MainTitle = req.MainTitle
	spec.Subtitle = req.Subtitle
	spec.Duration = req.Duration
	spec.Style = req.Style
	spec.BadgeURL = req.BadgeURL

	if err := spec.Validate(); err != nil {
		return "", err
	}
	if !outputName.MatchString(req.OutputName) {
		return "", apperr.New(apperr.CodeInvalidInput, "output name %q is not a plain file stem", req.OutputName)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	assets, err := renderer.PrepareAssets(spec, e.profile)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.cfg.OutputDir, 0o755); err != nil {
		return "", apperr.Wrap(apperr.CodeConfiguration, err, "create output directory %s", e.cfg.OutputDir)
	}
	outPath := filepath.Join(e.cfg.OutputDir, req.OutputName+".mp4")

	sink, err := e.openSink(ctx, outPath, video.Params{
		Width:   spec.Width,
		Height:  spec.Height,
		FPS:     spec.FPS,
		Encoder: e.cfg.Encoder,
		Quality: e.cfg.Quality,
	})
	if err != nil {
		return "", err
	}

	start := time.Now()
	totalFrames := spec.TotalFrames()
	if err := e.renderAll(ctx, sink, spec, assets, totalFrames); err != nil {
		sink.Close()
		os.Remove(outPath)
		return "", err
	}
	if err := sink.Close(); err != nil {
		os.Remove(outPath)
		return "", err
	}

	e.logger.Info("clip rendered",
		"output", outPath,
		"frames", totalFrames,
		"duration", req.Duration,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return outPath, nil
}

type frameResult struct {
	index int
	frame *image.RGBA
}

// renderAll fans frame indexes out to a worker pool and funnels the
// results back into the sink in strict index order.
func (e *Engine) renderAll(ctx context.Context, sink video.Sink, spec renderer.AnimationSpec, assets *renderer.Assets, totalFrames int) error {
	frameBytes := spec.Width * spec.Height * 4
	workers := e.cfg.Workers
	if workers <= 0 {
		workers = system.RenderWorkers(totalFrames, frameBytes)
	}
	if workers > totalFrames {
		workers = totalFrames
	}
	pool := system.NewFramePool(spec.Width, spec.Height)

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	results := make(chan frameResult, workers)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < totalFrames; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var renderWG sync.WaitGroup
	for w := 0; w < workers; w++ {
		renderWG.Add(1)
		g.Go(func() error {
			defer renderWG.Done()
			// Font faces are not goroutine safe; every worker rasters
			// with its own copy.
			workerAssets := assets.Clone()
			for i := range jobs {
				buf := pool.Get()
				if err := renderer.RenderFrameInto(buf, i, totalFrames, spec, workerAssets); err != nil {
					pool.Put(buf)
					return err
				}
				select {
				case results <- frameResult{index: i, frame: buf}:
				case <-gctx.Done():
					pool.Put(buf)
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		renderWG.Wait()
		close(results)
	}()

	g.Go(func() error {
		next := 0
		pending := make(map[int]*image.RGBA, workers)
		for res := range results {
			pending[res.index] = res.frame
			for {
				buf, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				err := sink.WriteFrame(buf)
				pool.Put(buf)
				if err != nil {
					return err
				}
				next++
			}
		}
		return nil
	})

	return g.Wait()
}
