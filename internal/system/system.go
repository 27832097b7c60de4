// Package system probes the host environment: ffmpeg capabilities, CPU and
// memory budgets for the render worker pool, and process resource limits.
package system

import (
	"os/exec"
	"runtime"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// InitResourceLimits raises the open-file limit so ffmpeg and font probing
// never trip the default soft limit. Failures are logged and ignored.
func InitResourceLimits(logger *log.Logger) {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		logger.Debug("could not read file limit", "err", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}
	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		logger.Debug("could not raise file limit", "err", err)
		return
	}
	logger.Debug("open file limit raised", "limit", rLimit.Cur)
}

// DetectH264Encoder returns the best available H.264 encoder, preferring
// hardware acceleration (VideoToolbox on macOS, NVENC on NVIDIA), falling
// back to libx264.
func DetectH264Encoder() string {
	out, err := exec.Command("ffmpeg", "-encoders").CombinedOutput()
	if err != nil {
		return "libx264"
	}
	for _, enc := range []string{"h264_videotoolbox", "h264_nvenc"} {
		if strings.Contains(string(out), enc) {
			return enc
		}
	}
	return "libx264"
}

// DefaultQuality returns a sensible quality value for the given encoder:
// bitrate units for VideoToolbox, CQ for NVENC, CRF for libx264.
func DefaultQuality(encoder string) int {
	switch encoder {
	case "h264_videotoolbox":
		return 75
	case "h264_nvenc":
		return 28
	default:
		return 23
	}
}

// RenderWorkers sizes the frame-render worker pool: one worker per physical
// core, capped by the frame count and by available memory (each in-flight
// 1080p RGBA frame costs ~8 MB, and workers hold a few each).
func RenderWorkers(totalFrames, frameBytes int) int {
	workers := runtime.NumCPU()
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		workers = n
	}

	if vm, err := mem.VirtualMemory(); err == nil && frameBytes > 0 {
		budget := int(vm.Available / 2 / uint64(frameBytes*4))
		if budget > 0 && budget < workers {
			workers = budget
		}
	}

	if workers > totalFrames {
		workers = totalFrames
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
