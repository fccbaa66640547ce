package main

import (
	"github.com/spf13/cobra"

	"github.com/spotget/spot-downloader/internal/model"
)

// saveCmd fetches metadata only and writes a .spotdl save file
var saveCmd = &cobra.Command{
	Use:   "save [urls...]",
	Short: "Save track metadata to a .spotdl file without downloading",
	Long: `Fetches metadata for the given Spotify URLs and writes it to a .spotdl
save file for later offline downloads or syncs. No audio is downloaded.

Example:
  spot-console save --save-file my-playlist.spotdl <playlist-url>`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSave,
}

func init() {
	f := saveCmd.Flags()
	f.StringP(flagSaveFile, "s", "", "Path of the .spotdl file to write (required)")
	f.String(flagExtraArgs, "", "Additional spotdl arguments, quoted as one string")
	saveCmd.MarkFlagRequired(flagSaveFile)
}

func runSave(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd, fileCfg)
	if err != nil {
		return err
	}
	// optionsFromFlags appends the .spotdl extension when missing
	return runOperation(model.OperationSave, args, opts)
}
