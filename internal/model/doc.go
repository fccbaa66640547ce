package model

// Package model defines domain data structures used across the app: download
// jobs, command options, operation and status enums. Structures are designed
// for direct binding in the front-ends and explicit state transitions.
