package model

// Operation identifies one spotdl subcommand driven by the front-ends
type Operation string

const (
	// OperationDownload downloads audio for the given Spotify URLs or search query
	OperationDownload Operation = "download"

	// OperationSave fetches metadata only and writes a .spotdl save file
	OperationSave Operation = "save"

	// OperationSync downloads new and removes deleted tracks against a playlist or .spotdl file
	OperationSync Operation = "sync"

	// OperationURL prints the direct source URLs without downloading audio
	OperationURL Operation = "url"
)

// String returns the spotdl subcommand name
func (op Operation) String() string {
	return string(op)
}

// DisplayName returns the human-readable label used by menus and buttons
func (op Operation) DisplayName() string {
	switch op {
	case OperationDownload:
		return "Download Songs"
	case OperationSave:
		return "Save Metadata"
	case OperationSync:
		return "Sync Playlist/Album"
	case OperationURL:
		return "Get Direct URLs"
	default:
		return string(op)
	}
}

// UsesDownloadOptions returns true if the operation accepts the common download options
func (op Operation) UsesDownloadOptions() bool {
	return op == OperationDownload || op == OperationSync
}

// NeedsSaveFile returns true if the operation requires a .spotdl save file path
func (op Operation) NeedsSaveFile() bool {
	return op == OperationSave
}

// WantsFailureSummary returns true if a failure summary is shown after the run
func (op Operation) WantsFailureSummary() bool {
	return op == OperationDownload || op == OperationSync
}

// Operations returns all operations in menu order
func Operations() []Operation {
	return []Operation{OperationDownload, OperationSave, OperationSync, OperationURL}
}
