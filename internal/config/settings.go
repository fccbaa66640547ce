package config

import (
	"fyne.io/fyne/v2"

	"github.com/spotget/spot-downloader/internal/model"
	"github.com/spotget/spot-downloader/internal/platform"
)

// Preference keys
const (
	KeyOutputDir    = "output_directory"
	KeyAudioFormat  = "audio_format"
	KeyBitrate      = "audio_bitrate"
	KeyOverwrite    = "overwrite_mode"
	KeyEmbedLyrics  = "embed_lyrics"
	KeySponsorBlock = "sponsor_block"
	KeyThreads      = "download_threads"
	KeyLanguage     = "app_language"
)

// Defaults that have no model-level constant
const (
	DefaultEmbedLyrics  = true
	DefaultSponsorBlock = false
	DefaultLanguage     = "system"
)

// Settings persists the GUI defaults through the Fyne preferences store
type Settings struct {
	app fyne.App
}

// NewSettings binds the settings to the app preferences
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured output directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		// Use the system Music directory
		defaultDir, err := platform.GetHomeMusicDir()
		if err != nil {
			defaultDir = "/tmp/music"
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetAudioFormat returns the configured audio format
func (s *Settings) GetAudioFormat() string {
	format := s.app.Preferences().String(KeyAudioFormat)
	if format == "" {
		s.SetAudioFormat(model.DefaultFormat)
		return model.DefaultFormat
	}
	return format
}

// SetAudioFormat sets the audio format
func (s *Settings) SetAudioFormat(format string) {
	s.app.Preferences().SetString(KeyAudioFormat, format)
}

// GetBitrate returns the configured bitrate choice in display form
func (s *Settings) GetBitrate() string {
	bitrate := s.app.Preferences().String(KeyBitrate)
	if bitrate == "" {
		s.SetBitrate(model.BitrateBestLabel)
		return model.BitrateBestLabel
	}
	return bitrate
}

// SetBitrate sets the bitrate choice
func (s *Settings) SetBitrate(bitrate string) {
	s.app.Preferences().SetString(KeyBitrate, bitrate)
}

// GetOverwriteMode returns the configured overwrite mode
func (s *Settings) GetOverwriteMode() string {
	mode := s.app.Preferences().String(KeyOverwrite)
	if mode == "" {
		s.SetOverwriteMode(model.DefaultOverwrite)
		return model.DefaultOverwrite
	}
	return mode
}

// SetOverwriteMode sets the overwrite mode
func (s *Settings) SetOverwriteMode(mode string) {
	s.app.Preferences().SetString(KeyOverwrite, mode)
}

// GetEmbedLyrics returns whether lyrics embedding is enabled
func (s *Settings) GetEmbedLyrics() bool {
	return s.app.Preferences().BoolWithFallback(KeyEmbedLyrics, DefaultEmbedLyrics)
}

// SetEmbedLyrics sets whether lyrics embedding is enabled
func (s *Settings) SetEmbedLyrics(embed bool) {
	s.app.Preferences().SetBool(KeyEmbedLyrics, embed)
}

// GetSponsorBlock returns whether SponsorBlock is enabled
func (s *Settings) GetSponsorBlock() bool {
	return s.app.Preferences().BoolWithFallback(KeySponsorBlock, DefaultSponsorBlock)
}

// SetSponsorBlock sets whether SponsorBlock is enabled
func (s *Settings) SetSponsorBlock(enabled bool) {
	s.app.Preferences().SetBool(KeySponsorBlock, enabled)
}

// GetThreads returns the number of concurrent download threads
func (s *Settings) GetThreads() int {
	value := s.app.Preferences().Int(KeyThreads)
	if value <= 0 {
		s.SetThreads(model.DefaultThreads)
		return model.DefaultThreads
	}
	return value
}

// SetThreads sets the number of concurrent download threads
func (s *Settings) SetThreads(count int) {
	if count < model.MinThreads {
		count = model.MinThreads
	}
	if count > model.MaxThreads {
		count = model.MaxThreads
	}
	s.app.Preferences().SetInt(KeyThreads, count)
}

// GetLanguage returns the UI language choice
func (s *Settings) GetLanguage() string {
	if lang := s.app.Preferences().String(KeyLanguage); lang != "" {
		return lang
	}
	s.SetLanguage(DefaultLanguage)
	return DefaultLanguage
}

// SetLanguage stores the UI language choice
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// DownloadOptions assembles the stored preferences into the option set used
// to prefill the main form
func (s *Settings) DownloadOptions() model.DownloadOptions {
	return model.DownloadOptions{
		OutputDir:    s.GetOutputDirectory(),
		Format:       s.GetAudioFormat(),
		Bitrate:      s.GetBitrate(),
		EmbedLyrics:  s.GetEmbedLyrics(),
		SponsorBlock: s.GetSponsorBlock(),
		Overwrite:    s.GetOverwriteMode(),
		Threads:      s.GetThreads(),
	}
}

// GetAudioFormatOptions returns available audio format options
func (s *Settings) GetAudioFormatOptions() []string {
	return model.AudioFormats
}

// GetBitrateOptions returns available bitrate options
func (s *Settings) GetBitrateOptions() []string {
	return model.BitrateChoices
}

// GetOverwriteModeOptions returns available overwrite mode options
func (s *Settings) GetOverwriteModeOptions() []string {
	return model.OverwriteModes
}

// GetLanguageOptions maps language codes to their display names
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
