package model

import "strconv"

// spotdl binary and flag names
const (
	SpotdlCommand = "spotdl"

	FlagOutput        = "--output"
	FlagFormat        = "--format"
	FlagBitrate       = "--bitrate"
	FlagLyrics        = "--lyrics"
	FlagNoLyrics      = "--no-lyrics"
	FlagNoMetadata    = "--no-metadata"
	FlagSponsorBlock  = "--sponsor-block"
	FlagOverwrite     = "--overwrite"
	FlagThreads       = "--threads"
	FlagPlaylistStart = "--playlist-start"
	FlagPlaylistEnd   = "--playlist-end"
	FlagArchive       = "--archive"
	FlagSearchQuery   = "--search-query"
	FlagSaveFile      = "--save-file"
)

// Bitrate display mapping: the UI shows "0 (best)" while spotdl expects "0"
const (
	BitrateBestLabel = "0 (best)"
	BitrateBestValue = "0"
)

// Default option values
const (
	DefaultFormat    = "mp3"
	DefaultBitrate   = BitrateBestValue
	DefaultOverwrite = OverwriteSkip
	DefaultThreads   = 4
	MinThreads       = 1
	MaxThreads       = 32
)

// Overwrite modes accepted by spotdl
const (
	OverwriteSkip     = "skip"
	OverwriteForce    = "force"
	OverwriteMetadata = "metadata"
)

// Save file extension written by spotdl save/sync
const (
	SaveFileExtension = ".spotdl"
)

// Option tables shared by both front-ends
var (
	AudioFormats   = []string{"mp3", "m4a", "flac", "opus", "wav", "aac"}
	BitrateChoices = []string{BitrateBestLabel, "320k", "256k", "192k", "128k", "96k", "auto", "disable"}
	OverwriteModes = []string{OverwriteSkip, OverwriteForce, OverwriteMetadata}
)

// DownloadOptions holds every choice collected by a front-end for one run.
// Fields map one-to-one onto spotdl flags; zero values mean "flag omitted".
type DownloadOptions struct {
	OutputDir     string   // --output
	Format        string   // --format
	Bitrate       string   // --bitrate, display label or raw value
	EmbedLyrics   bool     // --lyrics / --no-lyrics
	SkipMetadata  bool     // --no-metadata when true
	SponsorBlock  bool     // --sponsor-block when true
	Overwrite     string   // --overwrite
	Threads       int      // --threads when > 0
	PlaylistStart int      // --playlist-start when > 0 (download only)
	PlaylistEnd   int      // --playlist-end when > 0 (download only)
	ArchiveFile   string   // --archive (download only)
	SearchQuery   string   // --search-query (download only)
	SaveFile      string   // --save-file (save/sync only)
	ExtraArgs     []string // appended verbatim after all flags
}

// DefaultDownloadOptions returns the option set both front-ends start from
func DefaultDownloadOptions() DownloadOptions {
	return DownloadOptions{
		Format:      DefaultFormat,
		Bitrate:     DefaultBitrate,
		EmbedLyrics: true,
		Overwrite:   DefaultOverwrite,
		Threads:     DefaultThreads,
	}
}

// NormalizeBitrate maps the display label "0 (best)" to the spotdl value "0"
func NormalizeBitrate(choice string) string {
	if choice == BitrateBestLabel {
		return BitrateBestValue
	}
	return choice
}

// ToArgs renders the common download options as spotdl flags
func (o DownloadOptions) ToArgs() []string {
	var args []string

	if o.OutputDir != "" {
		args = append(args, FlagOutput, o.OutputDir)
	}

	if o.Format != "" {
		args = append(args, FlagFormat, o.Format)
	}

	if o.Bitrate != "" {
		args = append(args, FlagBitrate, NormalizeBitrate(o.Bitrate))
	}

	// spotdl embeds lyrics by default; both states are passed explicitly
	if o.EmbedLyrics {
		args = append(args, FlagLyrics)
	} else {
		args = append(args, FlagNoLyrics)
	}

	if o.SkipMetadata {
		args = append(args, FlagNoMetadata)
	}

	if o.SponsorBlock {
		args = append(args, FlagSponsorBlock)
	}

	if o.Overwrite != "" {
		args = append(args, FlagOverwrite, o.Overwrite)
	}

	if o.Threads > 0 {
		args = append(args, FlagThreads, strconv.Itoa(o.Threads))
	}

	return args
}

// BuildCommandArgs assembles the full spotdl argument list for one operation.
// Queries are Spotify URLs, a search term, or (for sync) a .spotdl file path.
func BuildCommandArgs(op Operation, queries []string, opts DownloadOptions) []string {
	args := []string{string(op)}
	args = append(args, queries...)

	switch op {
	case OperationDownload:
		args = append(args, opts.ToArgs()...)
		if opts.PlaylistStart > 0 {
			args = append(args, FlagPlaylistStart, strconv.Itoa(opts.PlaylistStart))
		}
		if opts.PlaylistEnd > 0 {
			args = append(args, FlagPlaylistEnd, strconv.Itoa(opts.PlaylistEnd))
		}
		if opts.ArchiveFile != "" {
			args = append(args, FlagArchive, opts.ArchiveFile)
		}
		if opts.SearchQuery != "" {
			args = append(args, FlagSearchQuery, opts.SearchQuery)
		}

	case OperationSave:
		if opts.SaveFile != "" {
			args = append(args, FlagSaveFile, opts.SaveFile)
		}

	case OperationSync:
		// When syncing from a URL, the save file records the sync state for
		// future runs; an existing .spotdl source is updated in place.
		if opts.SaveFile != "" {
			args = append(args, FlagSaveFile, opts.SaveFile)
		}
		args = append(args, opts.ToArgs()...)

	case OperationURL:
		// Queries only, no download options apply
	}

	args = append(args, opts.ExtraArgs...)

	return args
}

// EnsureSaveFileExtension appends the .spotdl extension when missing
func EnsureSaveFileExtension(path string) string {
	if path == "" {
		return path
	}
	if len(path) >= len(SaveFileExtension) && path[len(path)-len(SaveFileExtension):] == SaveFileExtension {
		return path
	}
	return path + SaveFileExtension
}
