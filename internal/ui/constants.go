package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings   = "⚙"
	IconFolder     = "📁"
	IconOpenFolder = "📂"
	IconMusic      = "🎵"
	IconBroom      = "🧹"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Run banners written to the log console around one invocation
const (
	StartingBannerFormat = "--- Starting %s ---"
	ExecutingPrefix      = "Executing: "
)

// Log console behavior
const (
	// MaxLogLines caps the console scrollback. Oldest lines are dropped in
	// chunks so trimming does not happen on every append.
	MaxLogLines  = 2000
	LogTrimChunk = 200
)

// Layout sizing
const (
	QueryEntryMinRows = 3

	NumericEntryWidth float32 = 80

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 480
)
