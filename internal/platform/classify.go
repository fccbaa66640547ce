package platform

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Literal marker phrases spotdl prints when a song cannot be delivered.
// Matching is case-sensitive: a wording change in spotdl silently stops
// detection until the phrase is updated here.
const (
	MarkerNoMatch        = "Could not find a match for"
	MarkerDownloadFailed = "Failed to download"
	MarkerTrackFound     = "Track found but download failed"
)

// AudioProviderError handling
const (
	// AudioProviderTrigger flags provider-side failures that carry no song
	// name; a nearby YouTube URL identifies the track instead.
	AudioProviderTrigger = "AudioProviderError:"

	// URLLookaheadLines bounds the forward search for that URL, the trigger
	// line included.
	URLLookaheadLines = 4
)

// Failure record templates
const (
	FailureWithURLFormat = "Download failed for YouTube URL: %s (AudioProviderError)"
	FailureNoURLFormat   = "Download failed due to AudioProviderError (details in log: '%s')"
)

var (
	// explicitFailurePattern captures the song name following one of the
	// marker phrases, cut at the next colon when a reason suffix follows.
	explicitFailurePattern = regexp.MustCompile(
		`.*?(?:` + MarkerNoMatch + `|` + MarkerDownloadFailed + `|` + MarkerTrackFound + `):\s*(.*?)(?::.*)?$`)

	// youtubeURLPattern matches plain and music-subdomain YouTube watch URLs.
	youtubeURLPattern = regexp.MustCompile(`https?://(?:www\.)?(?:music\.)?youtube\.com/watch\?v=[\w-]+`)
)

// ClassifyFailures scans the captured output of one finished spotdl run and
// returns every detected failure as a sorted list of unique records. Lines
// matching neither pattern are skipped, so progress output, warnings, and
// unrelated errors produce no records; an empty or unrecognized input yields
// an empty result.
func ClassifyFailures(lines []string) []string {
	seen := make(map[string]struct{})

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		// Explicit failure messages name the song on the same line.
		if m := explicitFailurePattern.FindStringSubmatch(line); m != nil {
			if song := strings.TrimSpace(m[1]); song != "" {
				seen[song] = struct{}{}
			}
			continue
		}

		// Provider errors name no song; the YouTube URL the download was
		// resolved to usually follows within a few lines.
		if strings.Contains(line, AudioProviderTrigger) {
			if url := findNearbyURL(lines, i); url != "" {
				seen[fmt.Sprintf(FailureWithURLFormat, url)] = struct{}{}
			} else {
				seen[fmt.Sprintf(FailureNoURLFormat, line)] = struct{}{}
			}
			continue
		}
	}

	records := make([]string, 0, len(seen))
	for record := range seen {
		records = append(records, record)
	}
	sort.Strings(records)

	return records
}

// findNearbyURL searches the trigger line and the following lines inside the
// lookahead window for the first YouTube watch URL. Returns "" when none is
// found; the search never looks backward.
func findNearbyURL(lines []string, start int) string {
	end := start + URLLookaheadLines
	if end > len(lines) {
		end = len(lines)
	}

	for j := start; j < end; j++ {
		if url := youtubeURLPattern.FindString(lines[j]); url != "" {
			return url
		}
	}

	return ""
}
