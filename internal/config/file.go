package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/spotget/spot-downloader/internal/model"
	"github.com/spotget/spot-downloader/internal/platform"
)

// Console config file location
const (
	ConfigDirName  = "spot-downloader"
	ConfigFileName = "config.yaml"

	ConfigFilePermissions = 0644
)

// FileConfig holds the console front-end defaults persisted as YAML.
// The GUI keeps its own preference store; both map onto the same options.
type FileConfig struct {
	OutputDir    string `yaml:"output_dir"`
	Format       string `yaml:"format"`
	Bitrate      string `yaml:"bitrate"`
	EmbedLyrics  bool   `yaml:"embed_lyrics"`
	SponsorBlock bool   `yaml:"sponsor_block"`
	Overwrite    string `yaml:"overwrite"`
	Threads      int    `yaml:"threads"`
}

// DefaultFileConfig returns the configuration used when no file exists
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Format:      model.DefaultFormat,
		Bitrate:     model.DefaultBitrate,
		EmbedLyrics: true,
		Overwrite:   model.DefaultOverwrite,
		Threads:     model.DefaultThreads,
	}
}

// DefaultConfigPath returns the per-user config file location
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, ConfigDirName, ConfigFileName), nil
}

// LoadFileConfig reads the YAML config at path. A missing file is not an
// error; defaults are returned so the first run works without setup.
func LoadFileConfig(path string) (*FileConfig, error) {
	cfg := DefaultFileConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory when needed
func (c *FileConfig) Save(path string) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(path, data, ConfigFilePermissions)
}

// normalize replaces out-of-range values with usable defaults
func (c *FileConfig) normalize() {
	if c.Format == "" {
		c.Format = model.DefaultFormat
	}
	if c.Bitrate == "" {
		c.Bitrate = model.DefaultBitrate
	}
	if c.Overwrite == "" {
		c.Overwrite = model.DefaultOverwrite
	}
	if c.Threads < model.MinThreads {
		c.Threads = model.DefaultThreads
	}
	if c.Threads > model.MaxThreads {
		c.Threads = model.MaxThreads
	}
}

// DownloadOptions converts the file configuration into run options
func (c *FileConfig) DownloadOptions() model.DownloadOptions {
	return model.DownloadOptions{
		OutputDir:    c.OutputDir,
		Format:       c.Format,
		Bitrate:      c.Bitrate,
		EmbedLyrics:  c.EmbedLyrics,
		SponsorBlock: c.SponsorBlock,
		Overwrite:    c.Overwrite,
		Threads:      c.Threads,
	}
}
