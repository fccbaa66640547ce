package main

import (
	"github.com/spf13/cobra"

	"github.com/spotget/spot-downloader/internal/model"
)

// downloadCmd downloads audio for Spotify URLs or a search term
var downloadCmd = &cobra.Command{
	Use:   "download [urls...]",
	Short: "Download songs from Spotify URLs",
	Long: `Downloads audio for the given Spotify track, album, playlist or artist
URLs through spotdl, with metadata and album art embedded.

Examples:
  spot-console download https://open.spotify.com/track/0VjIjW4GlUZAMYd2vXMi3b
  spot-console download --format flac --bitrate disable <album-url>
  spot-console download --archive done.txt --playlist-start 10 <playlist-url>`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDownload,
}

func init() {
	addCommonFlags(downloadCmd)

	f := downloadCmd.Flags()
	f.Int(flagPlaylistStart, 0, "First playlist position to download")
	f.Int(flagPlaylistEnd, 0, "Last playlist position to download")
	f.String(flagArchive, "", "Archive file recording finished songs to skip on later runs")
	f.String(flagSearchQuery, "", "Custom search query template")
}

func runDownload(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd, fileCfg)
	if err != nil {
		return err
	}
	return runOperation(model.OperationDownload, args, opts)
}
