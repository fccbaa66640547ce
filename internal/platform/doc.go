package platform

// Package platform contains OS/platform integration and external tooling glue:
// filesystem helpers, spotdl output classification, tool version probes, and
// OS open/reveal.
