package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spotget/spot-downloader/internal/platform"
)

// Probe result markers
const (
	markOK      = "✓"
	markMissing = "✗"
)

// doctorCmd checks that the external tools are installed
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that spotdl and ffmpeg are installed",
	Long: `Probes the spotdl and ffmpeg binaries and reports their versions.
Install guidance is printed for anything missing.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	spotdl := platform.CheckSpotdl(ctx)
	ffmpeg := platform.CheckFFmpeg(ctx)

	printToolStatus(spotdl, platform.SpotdlMissingMessage, platform.SpotdlInstallHint)
	printToolStatus(ffmpeg, platform.FFmpegMissingMessage, platform.FFmpegDownloadHint)

	if !spotdl.Available || !ffmpeg.Available {
		return fmt.Errorf("missing dependencies")
	}
	return nil
}

// printToolStatus renders one probe outcome with guidance when missing
func printToolStatus(status platform.ToolStatus, missingMessage, hint string) {
	if status.Available {
		fmt.Printf("%s %s: %s\n", markOK, status.Name, status.Version)
		return
	}

	fmt.Printf("%s %s: not found\n", markMissing, status.Name)
	fmt.Println("  " + missingMessage)
	fmt.Println("  " + hint)
}
