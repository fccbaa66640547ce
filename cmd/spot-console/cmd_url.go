package main

import (
	"github.com/spf13/cobra"

	"github.com/spotget/spot-downloader/internal/model"
)

// urlCmd prints the direct source URLs without downloading audio
var urlCmd = &cobra.Command{
	Use:   "url [urls...]",
	Short: "Print direct download URLs without downloading audio",
	Long: `Looks up the given Spotify URLs and prints the direct audio source
URLs spotdl would download from, without downloading anything.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runURL,
}

func init() {
	urlCmd.Flags().String(flagExtraArgs, "", "Additional spotdl arguments, quoted as one string")
}

func runURL(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd, fileCfg)
	if err != nil {
		return err
	}
	return runOperation(model.OperationURL, args, opts)
}
