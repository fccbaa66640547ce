package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the option form to the download service, streams captured spotdl
// output into the log console, and renders the status bar and settings dialog.
// All UI strings are localized via Localization.
