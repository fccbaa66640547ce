package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spotget/spot-downloader/internal/config"
	"github.com/spotget/spot-downloader/internal/model"
	"github.com/spotget/spot-downloader/internal/platform"
)

// Option flag names shared by the download-style commands
const (
	flagOutput        = "output"
	flagFormat        = "format"
	flagBitrate       = "bitrate"
	flagLyrics        = "lyrics"
	flagSkipMetadata  = "skip-metadata"
	flagSponsorBlock  = "sponsor-block"
	flagOverwrite     = "overwrite"
	flagThreads       = "threads"
	flagPlaylistStart = "playlist-start"
	flagPlaylistEnd   = "playlist-end"
	flagArchive       = "archive"
	flagSearchQuery   = "search-query"
	flagSaveFile      = "save-file"
	flagExtraArgs     = "extra-args"
)

// addCommonFlags registers the option flags shared by download and sync.
// Defaults shown in help are the zero values; the config file fills in the
// effective defaults at run time.
func addCommonFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP(flagOutput, "o", "", "Output directory for downloaded audio")
	f.StringP(flagFormat, "f", "", "Audio format (mp3, m4a, flac, opus, wav, aac)")
	f.String(flagBitrate, "", "Bitrate (0 for best, 320k, 256k, 192k, 128k, 96k, auto, disable)")
	f.Bool(flagLyrics, true, "Embed lyrics")
	f.Bool(flagSkipMetadata, false, "Skip embedding metadata")
	f.Bool(flagSponsorBlock, false, "Enable SponsorBlock for YouTube sources")
	f.String(flagOverwrite, "", "Overwrite mode (skip, force, metadata)")
	f.IntP(flagThreads, "t", 0, "Concurrent download threads (1-32)")
	f.String(flagExtraArgs, "", "Additional spotdl arguments, quoted as one string")
}

// optionsFromFlags merges the config file defaults with explicitly set
// flags. A flag value wins only when the user passed the flag, so stored
// defaults survive for everything else.
func optionsFromFlags(cmd *cobra.Command, cfg *config.FileConfig) (model.DownloadOptions, error) {
	opts := cfg.DownloadOptions()
	f := cmd.Flags()

	if f.Changed(flagOutput) {
		opts.OutputDir, _ = f.GetString(flagOutput)
	}
	if f.Changed(flagFormat) {
		opts.Format, _ = f.GetString(flagFormat)
	}
	if f.Changed(flagBitrate) {
		opts.Bitrate, _ = f.GetString(flagBitrate)
	}
	if f.Changed(flagLyrics) {
		opts.EmbedLyrics, _ = f.GetBool(flagLyrics)
	}
	if f.Changed(flagSkipMetadata) {
		opts.SkipMetadata, _ = f.GetBool(flagSkipMetadata)
	}
	if f.Changed(flagSponsorBlock) {
		opts.SponsorBlock, _ = f.GetBool(flagSponsorBlock)
	}
	if f.Changed(flagOverwrite) {
		opts.Overwrite, _ = f.GetString(flagOverwrite)
	}
	if f.Changed(flagThreads) {
		opts.Threads, _ = f.GetInt(flagThreads)
	}
	if f.Changed(flagPlaylistStart) {
		opts.PlaylistStart, _ = f.GetInt(flagPlaylistStart)
	}
	if f.Changed(flagPlaylistEnd) {
		opts.PlaylistEnd, _ = f.GetInt(flagPlaylistEnd)
	}
	if f.Changed(flagArchive) {
		opts.ArchiveFile, _ = f.GetString(flagArchive)
	}
	if f.Changed(flagSearchQuery) {
		opts.SearchQuery, _ = f.GetString(flagSearchQuery)
	}
	if f.Changed(flagSaveFile) {
		saveFile, _ := f.GetString(flagSaveFile)
		opts.SaveFile = model.EnsureSaveFileExtension(saveFile)
	}

	if f.Changed(flagExtraArgs) {
		raw, _ := f.GetString(flagExtraArgs)
		extra, err := platform.SplitArgString(raw)
		if err != nil {
			return opts, fmt.Errorf("invalid --%s: %w", flagExtraArgs, err)
		}
		opts.ExtraArgs = extra
	}

	return opts, nil
}
