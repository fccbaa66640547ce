package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spotget/spot-downloader/internal/model"
	"github.com/spotget/spot-downloader/internal/platform"
)

// syncCmd aligns local files with a playlist or saved state
var syncCmd = &cobra.Command{
	Use:   "sync [url | file.spotdl]",
	Short: "Sync a playlist or album against the local directory",
	Long: `Downloads new tracks and removes deleted ones so the local directory
matches the playlist or album. The source is either a Spotify URL or a
.spotdl file from a previous save or sync.

When syncing from a URL, pass --save-file to record the sync state for
future runs. An existing .spotdl source is updated in place.

Examples:
  spot-console sync my-playlist.spotdl
  spot-console sync <playlist-url> --save-file my-playlist.spotdl`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

func init() {
	addCommonFlags(syncCmd)
	syncCmd.Flags().StringP(flagSaveFile, "s", "", "Path of the .spotdl file recording the sync state")
}

func runSync(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd, fileCfg)
	if err != nil {
		return err
	}

	source := args[0]

	// An existing .spotdl source carries its own state, no save file needed
	if strings.HasSuffix(source, model.SaveFileExtension) {
		if _, err := os.Stat(source); err == nil {
			opts.SaveFile = ""
		}
	}

	if err := runOperation(model.OperationSync, []string{source}, opts); err != nil {
		return err
	}

	if opts.SaveFile != "" {
		fmt.Printf(platform.SyncNoteFormat+"\n", opts.SaveFile)
	}
	return nil
}
