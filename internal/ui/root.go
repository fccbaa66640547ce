package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/spotget/spot-downloader/internal/config"
	"github.com/spotget/spot-downloader/internal/download"
	"github.com/spotget/spot-downloader/internal/model"
	"github.com/spotget/spot-downloader/internal/platform"
)

// RootUI owns the main window widgets and routes job updates into them
type RootUI struct {
	window       fyne.Window
	downloadSvc  download.Downloader
	settings     *config.Settings
	localization *Localization

	// Query input
	queryEntry *widget.Entry

	// Operation and run controls
	operationSelect *widget.Select
	runBtn          *widget.Button
	stopBtn         *widget.Button
	clearLogBtn     *widget.Button

	// Download options
	outputDirEntry    *widget.Entry
	formatSelect      *widget.Select
	bitrateSelect     *widget.Select
	overwriteSelect   *widget.Select
	threadsEntry      *widget.Entry
	lyricsCheck       *widget.Check
	metadataCheck     *widget.Check
	sponsorBlockCheck *widget.Check

	// Operation specific options
	saveFileEntry      *widget.Entry
	archiveEntry       *widget.Entry
	searchQueryEntry   *widget.Entry
	playlistStartEntry *widget.Entry
	playlistEndEntry   *widget.Entry
	extraArgsEntry     *widget.Entry

	// Log console
	logLabel  *widget.Label
	logScroll *container.Scroll
	logMutex  sync.Mutex
	logLines  []string

	// Status bar
	statusLabel *widget.Label
	depsLabel   *widget.Label

	// labels tracks localization key -> label so language changes can
	// retext them in place
	labels map[string]*widget.Label

	// lastJob is the most recent job update; it drives the status line.
	// Written and read on the UI thread only.
	lastJob     *model.Job
	activeJobID string
}

// NewRootUI wires the settings store, localization, and download service
// into the main window
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.Downloader) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if err := platform.CreateDirectoryIfNotExists(settings.GetOutputDirectory()); err != nil {
		log.Printf("Could not create output directory: %v", err)
	}

	ui := &RootUI{
		window:       window,
		downloadSvc:  downloadSvc,
		settings:     settings,
		localization: localization,
		labels:       make(map[string]*widget.Label),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Job updates and streamed output lines flow back through these
	ui.downloadSvc.SetUpdateCallback(ui.onJobUpdate)
	ui.downloadSvc.SetLineCallback(ui.onJobLine)

	ui.setupUI()
	ui.checkDependencies()
	return ui
}

// setupUI builds the widget tree and installs it into the window
func (ui *RootUI) setupUI() {
	l := ui.localization

	ui.createMenu()

	// Query input
	ui.queryEntry = widget.NewMultiLineEntry()
	ui.queryEntry.SetPlaceHolder(l.GetText(KeyQueriesHint))
	ui.queryEntry.SetMinRowsVisible(QueryEntryMinRows)
	ui.queryEntry.Wrapping = fyne.TextWrapBreak

	// Download options
	ui.outputDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(IconFolder+" "+l.GetText(KeyBrowse), ui.onBrowseOutputDir)
	openDirBtn := widget.NewButton(IconOpenFolder, ui.onOpenOutputDir)
	openDirBtn.Importance = widget.LowImportance
	outputRow := container.NewBorder(nil, nil, ui.newLabel(KeyOutputDirectory),
		container.NewHBox(browseDirBtn, openDirBtn), ui.outputDirEntry)

	ui.formatSelect = widget.NewSelect(ui.settings.GetAudioFormatOptions(), nil)
	ui.bitrateSelect = widget.NewSelect(ui.settings.GetBitrateOptions(), nil)
	formatRow := container.NewGridWithColumns(4,
		ui.newLabel(KeyAudioFormat), ui.formatSelect,
		ui.newLabel(KeyBitrate), ui.bitrateSelect,
	)

	ui.overwriteSelect = widget.NewSelect(ui.settings.GetOverwriteModeOptions(), nil)
	ui.threadsEntry = widget.NewEntry()
	modeRow := container.NewGridWithColumns(4,
		ui.newLabel(KeyOverwrite), ui.overwriteSelect,
		ui.newLabel(KeyThreads), ui.numericCell(ui.threadsEntry),
	)

	ui.lyricsCheck = widget.NewCheck(l.GetText(KeyEmbedLyrics), nil)
	ui.metadataCheck = widget.NewCheck(l.GetText(KeyEmbedMetadata), nil)
	ui.sponsorBlockCheck = widget.NewCheck(l.GetText(KeySponsorBlock), nil)
	checksRow := container.NewHBox(ui.lyricsCheck, ui.metadataCheck, ui.sponsorBlockCheck)

	// Operation specific options, collapsed by default
	ui.saveFileEntry = widget.NewEntry()
	saveBrowseBtn := widget.NewButton(IconFolder+" "+l.GetText(KeyBrowse), ui.onBrowseSaveFile)
	saveFileRow := container.NewBorder(nil, nil, ui.newLabel(KeySaveFile), saveBrowseBtn, ui.saveFileEntry)

	ui.archiveEntry = widget.NewEntry()
	archiveBrowseBtn := widget.NewButton(IconFolder+" "+l.GetText(KeyBrowse), ui.onBrowseArchiveFile)
	archiveRow := container.NewBorder(nil, nil, ui.newLabel(KeyArchiveFile), archiveBrowseBtn, ui.archiveEntry)

	ui.searchQueryEntry = widget.NewEntry()
	searchRow := container.NewBorder(nil, nil, ui.newLabel(KeySearchQuery), nil, ui.searchQueryEntry)

	ui.playlistStartEntry = widget.NewEntry()
	ui.playlistEndEntry = widget.NewEntry()
	playlistRow := container.NewGridWithColumns(4,
		ui.newLabel(KeyPlaylistStart), ui.numericCell(ui.playlistStartEntry),
		ui.newLabel(KeyPlaylistEnd), ui.numericCell(ui.playlistEndEntry),
	)

	ui.extraArgsEntry = widget.NewEntry()
	extraRow := container.NewBorder(nil, nil, ui.newLabel(KeyExtraArgs), nil, ui.extraArgsEntry)

	advanced := widget.NewAccordion(widget.NewAccordionItem(
		l.GetText(KeyAdvancedOptions),
		container.NewVBox(saveFileRow, archiveRow, searchRow, playlistRow, extraRow),
	))

	// Run controls
	ui.operationSelect = widget.NewSelect(operationNames(), nil)
	ui.operationSelect.SetSelected(model.OperationDownload.DisplayName())

	ui.runBtn = widget.NewButton(l.GetText(KeyRun), ui.onRunClick)
	ui.runBtn.Importance = widget.HighImportance

	ui.stopBtn = widget.NewButton(l.GetText(KeyStop), ui.onStopClick)
	ui.stopBtn.Disable()

	ui.clearLogBtn = widget.NewButton(IconBroom+" "+l.GetText(KeyClearLog), ui.onClearLog)
	ui.clearLogBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	runControls := container.NewHBox(
		ui.newLabel(KeyOperation),
		ui.operationSelect,
		layout.NewSpacer(),
		ui.runBtn,
		ui.stopBtn,
		ui.clearLogBtn,
		settingsBtn,
	)

	// Log console
	ui.logLabel = widget.NewLabel("")
	ui.logLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.logLabel.Wrapping = fyne.TextWrapBreak
	ui.logScroll = container.NewVScroll(ui.logLabel)

	// Status bar
	ui.statusLabel = widget.NewLabel(l.GetText(KeyStatusReady))
	ui.depsLabel = widget.NewLabel(DashPlaceholder)
	statusBar := container.NewVBox(
		widget.NewSeparator(),
		container.NewBorder(nil, nil, ui.statusLabel, ui.depsLabel, nil),
	)

	topPanel := container.NewVBox(
		ui.newLabel(KeyQueriesLabel),
		ui.queryEntry,
		widget.NewSeparator(),
		ui.newLabel(KeyDownloadOptions),
		outputRow,
		formatRow,
		modeRow,
		checksRow,
		advanced,
		widget.NewSeparator(),
		runControls,
		ui.newLabel(KeyOutputLog),
	)

	content := container.NewBorder(
		topPanel,     // top
		statusBar,    // bottom
		nil,          // left
		nil,          // right
		ui.logScroll, // center - log console fills the rest
	)

	ui.window.SetContent(content)

	// Prefill the option widgets from stored settings
	ui.applyOptionDefaults()
}

// newLabel creates a localized label and registers it for language refresh
func (ui *RootUI) newLabel(key string) *widget.Label {
	label := widget.NewLabel(ui.localization.GetText(key))
	ui.labels[key] = label
	return label
}

// numericCell constrains a small numeric entry to a fixed width
func (ui *RootUI) numericCell(entry *widget.Entry) fyne.CanvasObject {
	return container.NewGridWrap(fyne.NewSize(NumericEntryWidth, entry.MinSize().Height), entry)
}

// operationNames returns the operation display names in menu order
func operationNames() []string {
	ops := model.Operations()
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.DisplayName())
	}
	return names
}

// createMenu installs the File and Language menus. It runs again after a
// language switch so the checkmark tracks the active language.
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	names := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(names))
	for code := range names {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range codes {
		langItem := fyne.NewMenuItem(names[code], func() {
			ui.onLanguageChange(code)
		})
		langItem.Checked = code == ui.localization.GetCurrentLanguage()
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange switches the language everywhere it shows
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts retexts every widget after a language switch
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(l.GetText(KeyAppTitle))

	for key, label := range ui.labels {
		label.SetText(l.GetText(key))
	}

	ui.queryEntry.SetPlaceHolder(l.GetText(KeyQueriesHint))
	ui.runBtn.SetText(l.GetText(KeyRun))
	ui.stopBtn.SetText(l.GetText(KeyStop))
	ui.clearLogBtn.SetText(IconBroom + " " + l.GetText(KeyClearLog))

	// widget.Check has no SetText
	ui.lyricsCheck.Text = l.GetText(KeyEmbedLyrics)
	ui.lyricsCheck.Refresh()
	ui.metadataCheck.Text = l.GetText(KeyEmbedMetadata)
	ui.metadataCheck.Refresh()
	ui.sponsorBlockCheck.Text = l.GetText(KeySponsorBlock)
	ui.sponsorBlockCheck.Refresh()

	ui.statusLabel.SetText(ui.statusText())
}

// applyOptionDefaults prefills the option widgets from stored settings
func (ui *RootUI) applyOptionDefaults() {
	opts := ui.settings.DownloadOptions()
	ui.outputDirEntry.SetText(opts.OutputDir)
	ui.formatSelect.SetSelected(opts.Format)
	ui.bitrateSelect.SetSelected(opts.Bitrate)
	ui.overwriteSelect.SetSelected(opts.Overwrite)
	ui.threadsEntry.SetText(strconv.Itoa(opts.Threads))
	ui.lyricsCheck.SetChecked(opts.EmbedLyrics)
	ui.metadataCheck.SetChecked(!opts.SkipMetadata)
	ui.sponsorBlockCheck.SetChecked(opts.SponsorBlock)
}

// checkDependencies probes the external tools in the background and reports
// the outcome in the status bar; missing tools get install guidance in the log
func (ui *RootUI) checkDependencies() {
	go func() {
		ctx := context.Background()
		spotdl := platform.CheckSpotdl(ctx)
		ffmpeg := platform.CheckFFmpeg(ctx)

		spotdlPart := model.SpotdlCommand + " " + spotdl.Version
		if !spotdl.Available {
			spotdlPart = model.SpotdlCommand + " missing"
			log.Printf("spotdl probe failed")
			ui.appendLog(platform.SpotdlMissingMessage, platform.SpotdlInstallHint)
		} else {
			log.Printf("Found %s", spotdlPart)
		}

		ffmpegPart := platform.FFmpegCommand + " OK"
		if !ffmpeg.Available {
			ffmpegPart = platform.FFmpegCommand + " missing"
			log.Printf("ffmpeg probe failed")
			ui.appendLog(platform.FFmpegMissingMessage, platform.FFmpegDownloadHint)
		}

		deps := spotdlPart + MiddleDotSeparator + ffmpegPart
		fyne.Do(func() {
			ui.depsLabel.SetText(deps)
		})
	}()
}

// onShowSettings opens the settings dialog over the main window
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved re-applies stored defaults and language after a save
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.applyOptionDefaults()
	ui.refreshUITexts()
	ui.createMenu()
}

// onBrowseOutputDir picks the download target folder
func (ui *RootUI) onBrowseOutputDir() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.outputDirEntry.SetText(uri.Path())
	}, ui.window)
}

// onOpenOutputDir opens the chosen output directory in the system file manager
func (ui *RootUI) onOpenOutputDir() {
	dir := strings.TrimSpace(ui.outputDirEntry.Text)
	if dir == "" {
		dir = ui.settings.GetOutputDirectory()
	}

	if expanded, err := platform.ExpandUserPath(dir); err == nil {
		dir = expanded
	}

	log.Printf("Opening output directory: %s", dir)
	if err := platform.OpenDirectory(dir); err != nil {
		log.Printf("Error opening directory %s: %v", dir, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningDir)+": "+err.Error()), ui.window.Canvas())
	}
}

// onBrowseSaveFile picks where the metadata save file goes
func (ui *RootUI) onBrowseSaveFile() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		ui.saveFileEntry.SetText(model.EnsureSaveFileExtension(path))
	}, ui.window)
}

// onBrowseArchiveFile picks an existing archive file
func (ui *RootUI) onBrowseArchiveFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		ui.archiveEntry.SetText(path)
	}, ui.window)
}

// selectedOperation maps the select widget back to the operation
func (ui *RootUI) selectedOperation() model.Operation {
	for _, op := range model.Operations() {
		if op.DisplayName() == ui.operationSelect.Selected {
			return op
		}
	}
	return model.OperationDownload
}

// onRunClick validates the form and starts a job
func (ui *RootUI) onRunClick() {
	op := ui.selectedOperation()

	queries := platform.SplitQueries(ui.queryEntry.Text)
	if len(queries) == 0 {
		msg := ui.localization.GetText(KeyNoQueries)
		ui.appendLog(msg)
		widget.ShowPopUp(widget.NewLabel(msg), ui.window.Canvas())
		return
	}

	opts, ok := ui.collectOptions(op)
	if !ok {
		return
	}

	// An existing .spotdl sync source is updated in place, no save file
	if op == model.OperationSync && len(queries) == 1 && strings.HasSuffix(queries[0], model.SaveFileExtension) {
		if _, err := os.Stat(queries[0]); err == nil {
			opts.SaveFile = ""
		}
	}

	// Each run starts with a fresh log
	ui.clearLogLines()
	ui.appendLog(
		fmt.Sprintf(StartingBannerFormat, op.DisplayName()),
		ExecutingPrefix+model.SpotdlCommand+" "+platform.QuoteCommand(model.BuildCommandArgs(op, queries, opts)),
	)

	job, err := ui.downloadSvc.StartJob(op, queries, opts)
	if err != nil {
		log.Printf("Failed to start job: %v", err)
		if errors.Is(err, download.ErrJobActive) {
			widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyJobActive)), ui.window.Canvas())
		} else {
			ui.appendLog("Error: " + err.Error())
			widget.ShowPopUp(widget.NewLabel("Error: "+err.Error()), ui.window.Canvas())
		}
		return
	}

	log.Printf("Job started: id=%s operation=%s queries=%d", job.ID, job.Operation, len(job.Queries))
	ui.activeJobID = job.ID

	ui.runBtn.Disable()
	ui.stopBtn.Enable()
}

// collectOptions assembles the option set from the form widgets. A false
// return means validation failed and the run must not start.
func (ui *RootUI) collectOptions(op model.Operation) (model.DownloadOptions, bool) {
	opts := model.DownloadOptions{
		Format:       ui.formatSelect.Selected,
		Bitrate:      ui.bitrateSelect.Selected,
		Overwrite:    ui.overwriteSelect.Selected,
		EmbedLyrics:  ui.lyricsCheck.Checked,
		SkipMetadata: !ui.metadataCheck.Checked,
		SponsorBlock: ui.sponsorBlockCheck.Checked,
	}

	if dir := strings.TrimSpace(ui.outputDirEntry.Text); dir != "" {
		abs, err := platform.ValidateOutputDir(dir)
		if err != nil {
			// spotdl falls back to its working directory, warn and continue
			log.Printf("Output directory rejected: %v", err)
			ui.appendLog(ui.localization.GetText(KeyBadOutputDir) + ": " + err.Error())
		} else {
			opts.OutputDir = abs
		}
	}

	if text := strings.TrimSpace(ui.threadsEntry.Text); text != "" {
		if threads, err := strconv.Atoi(text); err == nil {
			opts.Threads = threads
		}
	}

	switch op {
	case model.OperationDownload:
		opts.PlaylistStart = parsePositiveInt(ui.playlistStartEntry.Text)
		opts.PlaylistEnd = parsePositiveInt(ui.playlistEndEntry.Text)
		opts.ArchiveFile = strings.TrimSpace(ui.archiveEntry.Text)
		opts.SearchQuery = strings.TrimSpace(ui.searchQueryEntry.Text)

	case model.OperationSave:
		saveFile := strings.TrimSpace(ui.saveFileEntry.Text)
		if saveFile == "" {
			msg := ui.localization.GetText(KeySaveFileRequired)
			ui.appendLog(msg)
			widget.ShowPopUp(widget.NewLabel(msg), ui.window.Canvas())
			return opts, false
		}
		saveFile = model.EnsureSaveFileExtension(saveFile)
		ui.saveFileEntry.SetText(saveFile)
		opts.SaveFile = saveFile

	case model.OperationSync:
		if saveFile := strings.TrimSpace(ui.saveFileEntry.Text); saveFile != "" {
			opts.SaveFile = model.EnsureSaveFileExtension(saveFile)
		}
	}

	if raw := strings.TrimSpace(ui.extraArgsEntry.Text); raw != "" {
		extra, err := platform.SplitArgString(raw)
		if err != nil {
			// Unparseable extra arguments are skipped, the run proceeds
			log.Printf("Extra arguments rejected: %v", err)
			ui.appendLog(ui.localization.GetText(KeyBadExtraArgs) + ": " + err.Error())
		} else {
			opts.ExtraArgs = extra
		}
	}

	return opts, true
}

// parsePositiveInt returns the parsed value or 0 for empty/invalid input
func parsePositiveInt(text string) int {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// onStopClick requests the active job to stop
func (ui *RootUI) onStopClick() {
	if ui.activeJobID == "" {
		return
	}

	log.Printf("Stop requested for job %s", ui.activeJobID)
	if err := ui.downloadSvc.StopJob(ui.activeJobID); err != nil {
		log.Printf("Error stopping job %s: %v", ui.activeJobID, err)
	}
}

// onClearLog empties the log console
func (ui *RootUI) onClearLog() {
	ui.clearLogLines()
	log.Printf("Log console cleared")
	ui.statusLabel.SetText(ui.localization.GetText(KeyLogCleared))
}

// onJobLine receives one streamed output line from the running job
func (ui *RootUI) onJobLine(jobID, line string) {
	ui.appendLog(line)
}

// onJobUpdate handles job lifecycle updates from the download service
func (ui *RootUI) onJobUpdate(job *model.Job) {
	log.Printf("Job update received: id=%s status=%s exit=%d lines=%d",
		job.ID, job.Status, job.ExitCode, job.LineCount)

	finished := job.Status.IsFinished()

	fyne.Do(func() {
		ui.lastJob = job
		ui.statusLabel.SetText(ui.statusText())

		if job.Status.IsActive() {
			ui.runBtn.Disable()
			ui.stopBtn.Enable()
		} else {
			ui.runBtn.Enable()
			ui.stopBtn.Disable()
		}

		if finished {
			ui.activeJobID = ""
		}
	})

	if finished {
		ui.reportOutcome(job)
	}
}

// reportOutcome writes the completion banner and the failure summary for a
// finished job into the log console
func (ui *RootUI) reportOutcome(job *model.Job) {
	if download.IsMissingBinary(job) {
		ui.appendLog(
			"",
			fmt.Sprintf(platform.CommandNotFoundFormat, model.SpotdlCommand),
			platform.PathGuidance,
		)
		return
	}

	if job.Status == model.JobStatusStopped {
		ui.appendLog("", fmt.Sprintf(ui.localization.GetText(KeyStatusStopped), job.Operation.DisplayName()))
		return
	}

	ui.appendLog("", platform.RunBanner(job.ExitCode))

	if summary := platform.SummarizeRun(job.Operation, job.ExitCode, job.Failures); len(summary) > 0 {
		ui.appendLog("")
		ui.appendLog(summary...)
	}

	if job.Status == model.JobStatusCompleted {
		fyne.CurrentApp().SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeyAppTitle),
			Content: fmt.Sprintf(ui.localization.GetText(KeyStatusCompleted), job.Operation.DisplayName()),
		})
	}
}

// statusText renders the status line for the most recent job state
func (ui *RootUI) statusText() string {
	job := ui.lastJob
	if job == nil {
		return ui.localization.GetText(KeyStatusReady)
	}

	name := job.Operation.DisplayName()
	switch {
	case job.Status.IsActive():
		return fmt.Sprintf(ui.localization.GetText(KeyStatusInProgress), name)
	case job.Status == model.JobStatusCompleted:
		return fmt.Sprintf(ui.localization.GetText(KeyStatusCompleted), name)
	case job.Status == model.JobStatusStopped:
		return fmt.Sprintf(ui.localization.GetText(KeyStatusStopped), name)
	default:
		return fmt.Sprintf(ui.localization.GetText(KeyStatusFailed), name)
	}
}

// appendLog appends lines to the log console, trimming the oldest chunk when
// the scrollback cap is exceeded
func (ui *RootUI) appendLog(lines ...string) {
	ui.logMutex.Lock()
	ui.logLines = append(ui.logLines, lines...)
	if len(ui.logLines) > MaxLogLines {
		drop := len(ui.logLines) - MaxLogLines + LogTrimChunk
		ui.logLines = ui.logLines[drop:]
	}
	text := strings.Join(ui.logLines, "\n")
	ui.logMutex.Unlock()

	fyne.Do(func() {
		ui.logLabel.SetText(text)
		ui.logScroll.ScrollToBottom()
	})
}

// clearLogLines resets the log console content
func (ui *RootUI) clearLogLines() {
	ui.logMutex.Lock()
	ui.logLines = nil
	ui.logMutex.Unlock()

	fyne.Do(func() {
		ui.logLabel.SetText("")
	})
}
