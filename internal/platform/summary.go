package platform

import (
	"fmt"

	"github.com/spotget/spot-downloader/internal/model"
)

// Post-run summary text
const (
	SummaryHeaderDownloads = "--- Summary of Skipped/Failed Downloads ---"
	SummaryFooterDownloads = "-------------------------------------------"
	SummaryHeaderSync      = "--- Summary of Skipped/Failed Sync Downloads ---"
	SummaryFooterSync      = "--------------------------------------------------"

	SummaryEntryPrefix = "- "

	NoCauseDownloads = "No specific song failures detected in output, but the command failed. Please review the full log for details."
	NoCauseSync      = "No specific song failures detected in output during sync, but the command failed. Please review the full log for details."

	AllProcessedDownloads = "All requested songs were processed successfully (or skipped according to --overwrite rules)."
	AllProcessedSync      = "Sync operation completed. All new/updated songs were processed successfully."
)

// Command completion banners
const (
	RunFailedBannerFormat = "--- Command Failed with Exit Code %d ---"
	RunCompletedBanner    = "--- Command Completed Successfully ---"
)

// Failure detail printed by the console front-ends after a failed run
const (
	ExecutedCommandPrefix = "Executed Command: "
	ReviewOutputHint      = "Please review the output above for specific errors from spotDL or your system."
)

// SyncNoteFormat reminds the user how to repeat a sync once a save file exists
const SyncNoteFormat = "Note: For future syncs, you can use the command 'spotdl sync %s' directly."

// RunBanner returns the completion banner matching an exit code.
func RunBanner(exitCode int) string {
	if exitCode != 0 {
		return fmt.Sprintf(RunFailedBannerFormat, exitCode)
	}
	return RunCompletedBanner
}

// SummarizeRun renders the post-run failure report for one finished
// invocation as display lines. Only download and sync runs are summarized;
// other operations return nil. Outcomes: every classified failure listed
// between header and footer, a hint to check the log when the run failed
// without a named cause, or a success line.
func SummarizeRun(op model.Operation, exitCode int, failures []string) []string {
	if !op.WantsFailureSummary() {
		return nil
	}

	header, footer := SummaryHeaderDownloads, SummaryFooterDownloads
	noCause, allDone := NoCauseDownloads, AllProcessedDownloads
	if op == model.OperationSync {
		header, footer = SummaryHeaderSync, SummaryFooterSync
		noCause, allDone = NoCauseSync, AllProcessedSync
	}

	if len(failures) > 0 {
		lines := make([]string, 0, len(failures)+2)
		lines = append(lines, header)
		for _, f := range failures {
			lines = append(lines, SummaryEntryPrefix+f)
		}
		lines = append(lines, footer)
		return lines
	}

	if exitCode != 0 {
		return []string{noCause}
	}

	return []string{allDone}
}
