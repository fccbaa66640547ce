package platform

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/spotget/spot-downloader/internal/model"
)

// External tool probe commands
const (
	FFmpegCommand = "ffmpeg"

	SpotdlVersionFlag = "--version"
	FFmpegVersionFlag = "-version"

	// ToolProbeTimeout bounds a single version probe.
	ToolProbeTimeout = 10 * time.Second
)

// Guidance shown when a probe fails
const (
	SpotdlMissingMessage = "spotDL command not found. Please ensure spotDL is installed and in your PATH."
	SpotdlInstallHint    = "You can install it using: pip install spotdl"
	FFmpegMissingMessage = "FFmpeg not found. spotDL may not function correctly without it."
	FFmpegDownloadHint   = "spotDL can try to download it for you. Run 'spotdl --download-ffmpeg' in your terminal."
)

// Messages for a binary missing at run time
const (
	CommandNotFoundFormat = "Error: The command '%s' was not found."
	PathGuidance          = "Please ensure 'spotdl' and 'ffmpeg' are correctly installed and accessible in your system's PATH."
)

// ToolStatus reports the outcome of probing one external tool.
type ToolStatus struct {
	Name      string
	Available bool
	Version   string // first line of the version output when available
}

// CheckTool runs the named tool with the given arguments and reports whether
// it executed successfully, together with the first line of its output.
func CheckTool(ctx context.Context, name string, args ...string) ToolStatus {
	ctx, cancel := context.WithTimeout(ctx, ToolProbeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return ToolStatus{Name: name}
	}

	version := strings.TrimSpace(string(out))
	if idx := strings.IndexByte(version, '\n'); idx >= 0 {
		version = strings.TrimSpace(version[:idx])
	}

	return ToolStatus{Name: name, Available: true, Version: version}
}

// CheckSpotdl probes the spotdl binary.
func CheckSpotdl(ctx context.Context) ToolStatus {
	return CheckTool(ctx, model.SpotdlCommand, SpotdlVersionFlag)
}

// CheckFFmpeg probes the ffmpeg binary.
func CheckFFmpeg(ctx context.Context) ToolStatus {
	return CheckTool(ctx, FFmpegCommand, FFmpegVersionFlag)
}
