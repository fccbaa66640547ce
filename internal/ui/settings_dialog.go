package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/spotget/spot-downloader/internal/config"
)

// SettingsDialog edits the persisted download defaults and the UI language
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	outputDirEntry    *widget.Entry
	formatSelect      *widget.Select
	bitrateSelect     *widget.Select
	overwriteSelect   *widget.Select
	lyricsCheck       *widget.Check
	sponsorBlockCheck *widget.Check
	threadsEntry      *widget.Entry
	languageSelect    *widget.Select
}

// NewSettingsDialog builds the dialog against the given settings store
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and displays the settings dialog in one call
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, window, localization, onSaved).Show()
}

// Show refreshes the widgets from the store and opens the dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI assembles the dialog form
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Output directory selection
	sd.outputDirEntry = widget.NewEntry()
	sd.outputDirEntry.SetPlaceHolder("Output directory path")

	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)

	// Audio format selection
	sd.formatSelect = widget.NewSelect(sd.settings.GetAudioFormatOptions(), nil)

	// Bitrate selection
	sd.bitrateSelect = widget.NewSelect(sd.settings.GetBitrateOptions(), nil)

	// Overwrite mode selection
	sd.overwriteSelect = widget.NewSelect(sd.settings.GetOverwriteModeOptions(), nil)

	// Embedding toggles
	sd.lyricsCheck = widget.NewCheck(l.GetText(KeyEmbedLyrics), nil)
	sd.sponsorBlockCheck = widget.NewCheck(l.GetText(KeySponsorBlock), nil)

	// Download threads
	sd.threadsEntry = widget.NewEntry()
	sd.threadsEntry.SetPlaceHolder("1-32")

	// Language codes, sorted for a stable menu order
	codes := make([]string, 0, len(sd.settings.GetLanguageOptions()))
	for code := range sd.settings.GetLanguageOptions() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	sd.languageSelect = widget.NewSelect(codes, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDownloadOptions)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyOutputDirectory)),
		outputDirRow,

		widget.NewLabel(l.GetText(KeyAudioFormat)),
		sd.formatSelect,

		widget.NewLabel(l.GetText(KeyBitrate)),
		sd.bitrateSelect,

		widget.NewLabel(l.GetText(KeyOverwrite)),
		sd.overwriteSelect,

		widget.NewLabel(l.GetText(KeyThreads)),
		sd.threadsEntry,

		sd.lyricsCheck,
		sd.sponsorBlockCheck,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings copies the stored values into the widgets
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.formatSelect.SetSelected(sd.settings.GetAudioFormat())
	sd.bitrateSelect.SetSelected(sd.settings.GetBitrate())
	sd.overwriteSelect.SetSelected(sd.settings.GetOverwriteMode())
	sd.lyricsCheck.SetChecked(sd.settings.GetEmbedLyrics())
	sd.sponsorBlockCheck.SetChecked(sd.settings.GetSponsorBlock())
	sd.threadsEntry.SetText(strconv.Itoa(sd.settings.GetThreads()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory picks the default output directory
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave persists every non-empty field once the dialog is confirmed
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	outputDir := sd.outputDirEntry.Text
	if outputDir != "" {
		sd.settings.SetOutputDirectory(outputDir)
	}

	if sd.formatSelect.Selected != "" {
		sd.settings.SetAudioFormat(sd.formatSelect.Selected)
	}

	if sd.bitrateSelect.Selected != "" {
		sd.settings.SetBitrate(sd.bitrateSelect.Selected)
	}

	if sd.overwriteSelect.Selected != "" {
		sd.settings.SetOverwriteMode(sd.overwriteSelect.Selected)
	}

	sd.settings.SetEmbedLyrics(sd.lyricsCheck.Checked)
	sd.settings.SetSponsorBlock(sd.sponsorBlockCheck.Checked)

	// The threads setter clamps out-of-range values
	if sd.threadsEntry.Text != "" {
		if threads, err := strconv.Atoi(sd.threadsEntry.Text); err == nil {
			sd.settings.SetThreads(threads)
		}
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
