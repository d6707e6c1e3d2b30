package soul

import "fmt"

// ParseError is a problem with the user's input. Its message is meant to be
// shown to the user as is.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// NonSoulVerbError is returned when the command was parsed but names a verb
// the soul cannot handle itself. The caller should dispatch the parsed
// command to the surrounding engine instead.
type NonSoulVerbError struct {
	Parsed *ParseResult
}

func (e *NonSoulVerbError) Error() string { return e.Parsed.Verb }

// UnknownVerbError is returned when the typed verb is not recognized at all.
// The engine can still try other command tables before reporting it.
type UnknownVerbError struct {
	Verb      string
	Words     []string
	Qualifier string
}

func (e *UnknownVerbError) Error() string { return e.Verb }
