package model

// Package model defines domain data structures used across the app: the
// immutable LoadState value and its Kind discriminant. Structures are
// designed for direct binding in the UI and explicit state transitions,
// each transition constructing a new value.
