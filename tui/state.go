package tui

type state int

const (
	presetsState state = iota
	previewState
	errorState
)
