package download

// Package download runs spotdl jobs through a pluggable command runner. It
// manages the job lifecycle, streams captured output lines to the front-end,
// and classifies failures once a run finishes.
