package model

import (
	"testing"
)

func assertArgs(t *testing.T, args, expected []string) {
	t.Helper()

	if len(args) != len(expected) {
		t.Fatalf("Expected %d args, got %d: %v", len(expected), len(args), args)
	}

	for i, want := range expected {
		if args[i] != want {
			t.Errorf("Arg %d: expected %s, got %s", i, want, args[i])
		}
	}
}

func TestDefaultDownloadOptions(t *testing.T) {
	opts := DefaultDownloadOptions()

	if opts.Format != DefaultFormat {
		t.Errorf("Expected format %s, got %s", DefaultFormat, opts.Format)
	}
	if opts.Bitrate != DefaultBitrate {
		t.Errorf("Expected bitrate %s, got %s", DefaultBitrate, opts.Bitrate)
	}
	if !opts.EmbedLyrics {
		t.Error("Expected lyrics embedding on by default")
	}
	if opts.Overwrite != OverwriteSkip {
		t.Errorf("Expected overwrite %s, got %s", OverwriteSkip, opts.Overwrite)
	}
	if opts.Threads != DefaultThreads {
		t.Errorf("Expected %d threads, got %d", DefaultThreads, opts.Threads)
	}
}

func TestNormalizeBitrate(t *testing.T) {
	tests := []struct {
		choice   string
		expected string
	}{
		{BitrateBestLabel, BitrateBestValue},
		{"320k", "320k"},
		{"auto", "auto"},
		{"disable", "disable"},
		{"", ""},
	}

	for _, test := range tests {
		result := NormalizeBitrate(test.choice)
		if result != test.expected {
			t.Errorf("NormalizeBitrate(%q) = %q, expected %q", test.choice, result, test.expected)
		}
	}
}

func TestDownloadOptions_ToArgs_Defaults(t *testing.T) {
	args := DefaultDownloadOptions().ToArgs()

	expected := []string{
		FlagFormat, "mp3",
		FlagBitrate, "0",
		FlagLyrics,
		FlagOverwrite, "skip",
		FlagThreads, "4",
	}

	assertArgs(t, args, expected)
}

func TestDownloadOptions_ToArgs_AllSet(t *testing.T) {
	opts := DownloadOptions{
		OutputDir:    "/music",
		Format:       "flac",
		Bitrate:      BitrateBestLabel,
		EmbedLyrics:  false,
		SkipMetadata: true,
		SponsorBlock: true,
		Overwrite:    OverwriteForce,
		Threads:      8,
	}

	expected := []string{
		FlagOutput, "/music",
		FlagFormat, "flac",
		FlagBitrate, "0",
		FlagNoLyrics,
		FlagNoMetadata,
		FlagSponsorBlock,
		FlagOverwrite, "force",
		FlagThreads, "8",
	}

	assertArgs(t, opts.ToArgs(), expected)
}

func TestDownloadOptions_ToArgs_ZeroValues(t *testing.T) {
	// Empty options still state the lyrics choice explicitly
	args := DownloadOptions{}.ToArgs()
	assertArgs(t, args, []string{FlagNoLyrics})
}

func TestBuildCommandArgs_Download(t *testing.T) {
	opts := DownloadOptions{
		OutputDir:     "/music",
		Format:        "mp3",
		EmbedLyrics:   true,
		PlaylistStart: 2,
		PlaylistEnd:   10,
		ArchiveFile:   "done.txt",
		SearchQuery:   "{artist} - {title}",
	}

	args := BuildCommandArgs(OperationDownload, []string{"https://open.spotify.com/playlist/abc"}, opts)

	expected := []string{
		"download",
		"https://open.spotify.com/playlist/abc",
		FlagOutput, "/music",
		FlagFormat, "mp3",
		FlagLyrics,
		FlagPlaylistStart, "2",
		FlagPlaylistEnd, "10",
		FlagArchive, "done.txt",
		FlagSearchQuery, "{artist} - {title}",
	}

	assertArgs(t, args, expected)
}

func TestBuildCommandArgs_Save(t *testing.T) {
	opts := DownloadOptions{SaveFile: "playlist.spotdl"}

	args := BuildCommandArgs(OperationSave, []string{"https://open.spotify.com/playlist/abc"}, opts)

	expected := []string{
		"save",
		"https://open.spotify.com/playlist/abc",
		FlagSaveFile, "playlist.spotdl",
	}

	assertArgs(t, args, expected)
}

func TestBuildCommandArgs_SyncFromURL(t *testing.T) {
	opts := DownloadOptions{
		Format:      "mp3",
		EmbedLyrics: true,
		SaveFile:    "sync.spotdl",
	}

	args := BuildCommandArgs(OperationSync, []string{"https://open.spotify.com/playlist/abc"}, opts)

	expected := []string{
		"sync",
		"https://open.spotify.com/playlist/abc",
		FlagSaveFile, "sync.spotdl",
		FlagFormat, "mp3",
		FlagLyrics,
	}

	assertArgs(t, args, expected)
}

func TestBuildCommandArgs_SyncFromFile(t *testing.T) {
	// Syncing an existing .spotdl file needs no save file of its own
	opts := DownloadOptions{Format: "mp3", EmbedLyrics: true}

	args := BuildCommandArgs(OperationSync, []string{"sync.spotdl"}, opts)

	expected := []string{
		"sync",
		"sync.spotdl",
		FlagFormat, "mp3",
		FlagLyrics,
	}

	assertArgs(t, args, expected)
}

func TestBuildCommandArgs_URL(t *testing.T) {
	// Direct URL lookup ignores every download option
	opts := DefaultDownloadOptions()

	args := BuildCommandArgs(OperationURL, []string{"https://open.spotify.com/track/abc"}, opts)

	expected := []string{
		"url",
		"https://open.spotify.com/track/abc",
	}

	assertArgs(t, args, expected)
}

func TestBuildCommandArgs_ExtraArgs(t *testing.T) {
	opts := DownloadOptions{
		EmbedLyrics: true,
		ExtraArgs:   []string{"--log-level", "DEBUG"},
	}

	args := BuildCommandArgs(OperationDownload, []string{"query"}, opts)

	expected := []string{
		"download",
		"query",
		FlagLyrics,
		"--log-level", "DEBUG",
	}

	assertArgs(t, args, expected)
}

func TestEnsureSaveFileExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"playlist", "playlist.spotdl"},
		{"playlist.spotdl", "playlist.spotdl"},
		{"dir/playlist", "dir/playlist.spotdl"},
		{"", ""},
	}

	for _, test := range tests {
		result := EnsureSaveFileExtension(test.input)
		if result != test.expected {
			t.Errorf("EnsureSaveFileExtension(%s) = %s, expected %s", test.input, result, test.expected)
		}
	}
}
