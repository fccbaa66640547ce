package tui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spotget/spot-downloader/internal/model"
	"github.com/spotget/spot-downloader/internal/platform"
)

// fieldKind selects how a form field is edited and rendered
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldChoice
	fieldToggle
)

// Stable field identifiers used when the form is turned into run options
const (
	keyQueries       = "queries"
	keyOutput        = "output"
	keyFormat        = "format"
	keyBitrate       = "bitrate"
	keyThreads       = "threads"
	keyOverwrite     = "overwrite"
	keyLyrics        = "lyrics"
	keyMetadata      = "metadata"
	keySponsorBlock  = "sponsor-block"
	keyPlaylistStart = "playlist-start"
	keyPlaylistEnd   = "playlist-end"
	keyArchive       = "archive"
	keySearchQuery   = "search-query"
	keySaveFile      = "save-file"
	keyExtraArgs     = "extra-args"
)

// formField is one editable row of the option form
type formField struct {
	key   string
	label string
	kind  fieldKind

	input textinput.Model // fieldText

	choices []string // fieldChoice
	choice  int

	on bool // fieldToggle
}

func newTextField(key, label, value, placeholder string) formField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CharLimit = 512
	ti.Width = 48
	return formField{key: key, label: label, kind: fieldText, input: ti}
}

func newChoiceField(key, label string, choices []string, current string) formField {
	idx := 0
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}
	return formField{key: key, label: label, kind: fieldChoice, choices: choices, choice: idx}
}

func newToggleField(key, label string, on bool) formField {
	return formField{key: key, label: label, kind: fieldToggle, on: on}
}

// buildFormFields assembles the form rows for one operation, prefilled
// from the configured defaults.
func buildFormFields(op model.Operation, opts model.DownloadOptions, st Styles) []formField {
	queriesLabel := "Spotify URLs"
	queriesHint := "track, album, playlist or artist, separated by spaces"
	if op == model.OperationSync {
		queriesLabel = "Sync source"
		queriesHint = "playlist URL or path to a .spotdl file"
	}

	fields := []formField{
		newTextField(keyQueries, queriesLabel, "", queriesHint),
	}

	if op.UsesDownloadOptions() {
		fields = append(fields,
			newTextField(keyOutput, "Output directory", opts.OutputDir, "default: current directory"),
			newChoiceField(keyFormat, "Audio format", model.AudioFormats, opts.Format),
			newChoiceField(keyBitrate, "Bitrate", model.BitrateChoices, opts.Bitrate),
			newTextField(keyThreads, "Download threads", strconv.Itoa(opts.Threads), ""),
			newChoiceField(keyOverwrite, "Overwrite mode", model.OverwriteModes, opts.Overwrite),
			newToggleField(keyLyrics, "Embed lyrics", opts.EmbedLyrics),
			newToggleField(keyMetadata, "Embed metadata (art, info)", !opts.SkipMetadata),
			newToggleField(keySponsorBlock, "SponsorBlock", opts.SponsorBlock),
		)
	}

	switch op {
	case model.OperationDownload:
		fields = append(fields,
			newTextField(keyPlaylistStart, "Playlist start", "", "leave empty for start"),
			newTextField(keyPlaylistEnd, "Playlist end", "", "leave empty for end"),
			newTextField(keyArchive, "Archive file", "", "skips songs already recorded in this file"),
			newTextField(keySearchQuery, "Search query", "", "custom search for non-Spotify URLs"),
		)
	case model.OperationSave:
		fields = append(fields,
			newTextField(keySaveFile, "Save file", "", "e.g. playlist_meta.spotdl"),
		)
	case model.OperationSync:
		fields = append(fields,
			newTextField(keySaveFile, "Save file", "", "records the sync state for future runs"),
		)
	}

	fields = append(fields,
		newTextField(keyExtraArgs, "Extra arguments", "", "appended verbatim to the spotdl command"),
	)

	for i := range fields {
		if fields[i].kind == fieldText {
			fields[i].input.PlaceholderStyle = st.Muted
			fields[i].input.TextStyle = st.Body
		}
	}
	return fields
}

// openForm switches to the option form for the chosen operation
func (m Model) openForm(op model.Operation) (tea.Model, tea.Cmd) {
	m.op = op
	m.fields = buildFormFields(op, m.cfg.DownloadOptions(), m.styles)
	m.focusIndex = 0
	m.formErr = ""
	m.screen = screenForm
	return m, m.fields[0].input.Focus()
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.backToMenu(), nil

	case tea.KeyEnter:
		return m.startRun()

	case tea.KeyUp, tea.KeyShiftTab:
		return m.focusField(m.focusIndex - 1)

	case tea.KeyDown, tea.KeyTab:
		return m.focusField(m.focusIndex + 1)

	case tea.KeyLeft:
		if m.fields[m.focusIndex].kind != fieldText {
			m.cycleField(m.focusIndex, -1)
			return m, nil
		}

	case tea.KeyRight:
		if m.fields[m.focusIndex].kind != fieldText {
			m.cycleField(m.focusIndex, 1)
			return m, nil
		}

	case tea.KeySpace:
		if m.fields[m.focusIndex].kind == fieldToggle {
			m.cycleField(m.focusIndex, 1)
			return m, nil
		}
	}

	// Everything else is typed into the focused text field
	f := &m.fields[m.focusIndex]
	if f.kind == fieldText {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// focusField moves the focus, wrapping around both ends of the form
func (m Model) focusField(index int) (tea.Model, tea.Cmd) {
	if index < 0 {
		index = len(m.fields) - 1
	}
	if index >= len(m.fields) {
		index = 0
	}

	m.fields[m.focusIndex].input.Blur()
	m.focusIndex = index

	if m.fields[index].kind == fieldText {
		return m, m.fields[index].input.Focus()
	}
	return m, nil
}

// cycleField steps a choice field through its values or flips a toggle
func (m *Model) cycleField(index, delta int) {
	f := &m.fields[index]
	switch f.kind {
	case fieldChoice:
		n := len(f.choices)
		f.choice = (f.choice + delta + n) % n
	case fieldToggle:
		f.on = !f.on
	}
}

func (m Model) viewForm() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render(m.op.DisplayName()))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Fill in the run options, then press Enter."))
	sb.WriteString("\n\n")

	for i, f := range m.fields {
		sb.WriteString(m.renderField(f, i == m.focusIndex))
		sb.WriteString("\n")
	}

	if m.formErr != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render(m.formErr))
		sb.WriteString("\n")
	}

	return m.styles.Content.Render(sb.String())
}

func (m Model) renderField(f formField, focused bool) string {
	cursor := "  "
	label := m.styles.Body.Render(fmt.Sprintf("%-28s", f.label))
	if focused {
		cursor = m.styles.Prompt.Render("› ")
		label = m.styles.Bold.Render(fmt.Sprintf("%-28s", f.label))
	}

	var value string
	switch f.kind {
	case fieldText:
		value = f.input.View()
	case fieldChoice:
		value = f.choices[f.choice]
		if focused {
			value = m.styles.Selected.Render("◂ " + value + " ▸")
		}
	case fieldToggle:
		value = "no"
		if f.on {
			value = "yes"
		}
		if focused {
			value = m.styles.Selected.Render("◂ " + value + " ▸")
		}
	}

	return cursor + label + value
}

// startRun validates the form and launches the spotdl invocation
func (m Model) startRun() (tea.Model, tea.Cmd) {
	queries, opts, err := assembleRun(m.op, m.fields, m.cfg.DownloadOptions())
	if err != nil {
		m.formErr = err.Error()
		return m, nil
	}

	// An existing .spotdl sync source is updated in place, no save file
	if m.op == model.OperationSync && len(queries) == 1 && strings.HasSuffix(queries[0], model.SaveFileExtension) {
		if _, statErr := os.Stat(queries[0]); statErr == nil {
			opts.SaveFile = ""
		}
	}

	// save and url runs never write audio, leave the filesystem alone
	if opts.OutputDir != "" && m.op.UsesDownloadOptions() {
		abs, err := platform.ValidateOutputDir(opts.OutputDir)
		if err != nil {
			m.formErr = "Invalid output directory: " + err.Error()
			return m, nil
		}
		opts.OutputDir = abs
	}

	m.formErr = ""
	return m.launch(queries, opts)
}

// assembleRun converts the form rows into the queries and options for one
// run. The base options carry everything the form does not ask about.
func assembleRun(op model.Operation, fields []formField, base model.DownloadOptions) ([]string, model.DownloadOptions, error) {
	opts := base
	var queries []string

	for _, f := range fields {
		switch f.key {
		case keyQueries:
			queries = platform.SplitQueries(f.input.Value())
		case keyOutput:
			opts.OutputDir = strings.TrimSpace(f.input.Value())
		case keyFormat:
			opts.Format = f.choices[f.choice]
		case keyBitrate:
			opts.Bitrate = f.choices[f.choice]
		case keyThreads:
			threads, err := strconv.Atoi(strings.TrimSpace(f.input.Value()))
			if err != nil || threads < model.MinThreads {
				return nil, opts, fmt.Errorf("Download threads must be a whole number of at least %d", model.MinThreads)
			}
			if threads > model.MaxThreads {
				threads = model.MaxThreads
			}
			opts.Threads = threads
		case keyOverwrite:
			opts.Overwrite = f.choices[f.choice]
		case keyLyrics:
			opts.EmbedLyrics = f.on
		case keyMetadata:
			opts.SkipMetadata = !f.on
		case keySponsorBlock:
			opts.SponsorBlock = f.on
		case keyPlaylistStart:
			n, err := parseOptionalIndex(f.input.Value())
			if err != nil {
				return nil, opts, errors.New("Playlist start must be a number of at least 1")
			}
			opts.PlaylistStart = n
		case keyPlaylistEnd:
			n, err := parseOptionalIndex(f.input.Value())
			if err != nil {
				return nil, opts, errors.New("Playlist end must be a number of at least 1")
			}
			opts.PlaylistEnd = n
		case keyArchive:
			opts.ArchiveFile = strings.TrimSpace(f.input.Value())
		case keySearchQuery:
			opts.SearchQuery = strings.TrimSpace(f.input.Value())
		case keySaveFile:
			if v := strings.TrimSpace(f.input.Value()); v != "" {
				opts.SaveFile = model.EnsureSaveFileExtension(v)
			}
		case keyExtraArgs:
			extra, err := platform.SplitArgString(f.input.Value())
			if err != nil {
				return nil, opts, fmt.Errorf("Invalid extra arguments: %v", err)
			}
			opts.ExtraArgs = extra
		}
	}

	if len(queries) == 0 {
		if op == model.OperationSync {
			return nil, opts, errors.New("No sync source provided")
		}
		return nil, opts, errors.New("No URLs provided")
	}

	if op.NeedsSaveFile() && opts.SaveFile == "" {
		return nil, opts, errors.New("No filename provided for the metadata save")
	}

	return queries, opts, nil
}

// parseOptionalIndex reads a 1-based playlist index, empty meaning unset
func parseOptionalIndex(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid index %q", raw)
	}
	return n, nil
}
