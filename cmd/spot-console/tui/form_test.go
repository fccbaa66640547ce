package tui

import (
	"strings"
	"testing"

	"github.com/spotget/spot-downloader/internal/model"
)

func fieldByKey(t *testing.T, fields []formField, key string) *formField {
	t.Helper()
	for i := range fields {
		if fields[i].key == key {
			return &fields[i]
		}
	}
	t.Fatalf("field %q not found", key)
	return nil
}

func TestBuildFormFieldsPerOperation(t *testing.T) {
	st := NewStyles(LightTheme())
	opts := model.DefaultDownloadOptions()

	download := buildFormFields(model.OperationDownload, opts, st)
	fieldByKey(t, download, keyQueries)
	fieldByKey(t, download, keyPlaylistStart)
	fieldByKey(t, download, keyArchive)

	save := buildFormFields(model.OperationSave, opts, st)
	fieldByKey(t, save, keySaveFile)
	for _, f := range save {
		if f.key == keyFormat {
			t.Fatalf("save form should not offer download options")
		}
	}

	url := buildFormFields(model.OperationURL, opts, st)
	if len(url) != 2 {
		t.Fatalf("url form should hold queries and extra args only, got %d fields", len(url))
	}
}

func TestBuildFormFieldsPrefillsDefaults(t *testing.T) {
	st := NewStyles(LightTheme())
	opts := model.DefaultDownloadOptions()
	opts.Format = "flac"
	opts.SponsorBlock = true

	fields := buildFormFields(model.OperationDownload, opts, st)

	format := fieldByKey(t, fields, keyFormat)
	if format.choices[format.choice] != "flac" {
		t.Fatalf("expected format prefilled to flac, got %s", format.choices[format.choice])
	}
	if !fieldByKey(t, fields, keySponsorBlock).on {
		t.Fatalf("expected sponsor block toggle on")
	}
	if threads := fieldByKey(t, fields, keyThreads); threads.input.Value() != "4" {
		t.Fatalf("expected threads prefilled to 4, got %q", threads.input.Value())
	}
}

func TestAssembleRunDownload(t *testing.T) {
	st := NewStyles(LightTheme())
	base := model.DefaultDownloadOptions()
	fields := buildFormFields(model.OperationDownload, base, st)

	fieldByKey(t, fields, keyQueries).input.SetValue("https://open.spotify.com/track/a https://open.spotify.com/track/b")
	fieldByKey(t, fields, keyThreads).input.SetValue("8")
	fieldByKey(t, fields, keyPlaylistStart).input.SetValue("2")
	fieldByKey(t, fields, keyArchive).input.SetValue("archive.txt")
	fieldByKey(t, fields, keyExtraArgs).input.SetValue(`--log-level DEBUG`)
	fieldByKey(t, fields, keyMetadata).on = false

	queries, opts, err := assembleRun(model.OperationDownload, fields, base)
	if err != nil {
		t.Fatalf("assembleRun failed: %v", err)
	}
	if len(queries) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(queries))
	}
	if opts.Threads != 8 {
		t.Fatalf("expected 8 threads, got %d", opts.Threads)
	}
	if opts.PlaylistStart != 2 {
		t.Fatalf("expected playlist start 2, got %d", opts.PlaylistStart)
	}
	if opts.ArchiveFile != "archive.txt" {
		t.Fatalf("unexpected archive file %q", opts.ArchiveFile)
	}
	if !opts.SkipMetadata {
		t.Fatalf("expected metadata embedding disabled")
	}
	if len(opts.ExtraArgs) != 2 || opts.ExtraArgs[0] != "--log-level" {
		t.Fatalf("unexpected extra args %v", opts.ExtraArgs)
	}
}

func TestAssembleRunClampsThreads(t *testing.T) {
	st := NewStyles(LightTheme())
	base := model.DefaultDownloadOptions()
	fields := buildFormFields(model.OperationDownload, base, st)

	fieldByKey(t, fields, keyQueries).input.SetValue("https://open.spotify.com/track/a")
	fieldByKey(t, fields, keyThreads).input.SetValue("99")

	_, opts, err := assembleRun(model.OperationDownload, fields, base)
	if err != nil {
		t.Fatalf("assembleRun failed: %v", err)
	}
	if opts.Threads != model.MaxThreads {
		t.Fatalf("expected threads clamped to %d, got %d", model.MaxThreads, opts.Threads)
	}
}

func TestAssembleRunRejectsBadInput(t *testing.T) {
	st := NewStyles(LightTheme())
	base := model.DefaultDownloadOptions()

	// Missing queries
	fields := buildFormFields(model.OperationDownload, base, st)
	if _, _, err := assembleRun(model.OperationDownload, fields, base); err == nil {
		t.Fatalf("expected error for missing queries")
	}

	// Sync wording names the source
	fields = buildFormFields(model.OperationSync, base, st)
	_, _, err := assembleRun(model.OperationSync, fields, base)
	if err == nil || !strings.Contains(err.Error(), "sync source") {
		t.Fatalf("expected sync source error, got %v", err)
	}

	// Non-numeric thread count
	fields = buildFormFields(model.OperationDownload, base, st)
	fieldByKey(t, fields, keyQueries).input.SetValue("url")
	fieldByKey(t, fields, keyThreads).input.SetValue("many")
	if _, _, err := assembleRun(model.OperationDownload, fields, base); err == nil {
		t.Fatalf("expected error for bad thread count")
	}

	// Unterminated quote in extra arguments
	fields = buildFormFields(model.OperationDownload, base, st)
	fieldByKey(t, fields, keyQueries).input.SetValue("url")
	fieldByKey(t, fields, keyExtraArgs).input.SetValue(`--foo "bar`)
	if _, _, err := assembleRun(model.OperationDownload, fields, base); err == nil {
		t.Fatalf("expected error for unterminated quote")
	}
}

func TestAssembleRunSaveFile(t *testing.T) {
	st := NewStyles(LightTheme())
	base := model.DefaultDownloadOptions()

	fields := buildFormFields(model.OperationSave, base, st)
	fieldByKey(t, fields, keyQueries).input.SetValue("https://open.spotify.com/playlist/x")

	// Save requires a file name
	if _, _, err := assembleRun(model.OperationSave, fields, base); err == nil {
		t.Fatalf("expected error for missing save file")
	}

	// The .spotdl extension is appended when missing
	fieldByKey(t, fields, keySaveFile).input.SetValue("playlist_meta")
	_, opts, err := assembleRun(model.OperationSave, fields, base)
	if err != nil {
		t.Fatalf("assembleRun failed: %v", err)
	}
	if opts.SaveFile != "playlist_meta.spotdl" {
		t.Fatalf("unexpected save file %q", opts.SaveFile)
	}
}

func TestParseOptionalIndex(t *testing.T) {
	if n, err := parseOptionalIndex(""); err != nil || n != 0 {
		t.Fatalf("empty input should mean unset, got %d, %v", n, err)
	}
	if n, err := parseOptionalIndex(" 3 "); err != nil || n != 3 {
		t.Fatalf("expected 3, got %d, %v", n, err)
	}
	if _, err := parseOptionalIndex("0"); err == nil {
		t.Fatalf("expected error for zero index")
	}
	if _, err := parseOptionalIndex("three"); err == nil {
		t.Fatalf("expected error for non-numeric index")
	}
}

func TestCycleField(t *testing.T) {
	st := NewStyles(LightTheme())
	m := Model{fields: buildFormFields(model.OperationDownload, model.DefaultDownloadOptions(), st)}

	for i := range m.fields {
		if m.fields[i].key == keyFormat {
			m.focusIndex = i
		}
	}

	format := fieldByKey(t, m.fields, keyFormat)
	first := format.choices[format.choice]

	m.cycleField(m.focusIndex, 1)
	if format.choices[format.choice] == first {
		t.Fatalf("expected cycling to advance the format choice")
	}
	m.cycleField(m.focusIndex, -1)
	if format.choices[format.choice] != first {
		t.Fatalf("expected cycling back to restore %s", first)
	}
}
