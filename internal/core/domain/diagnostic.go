package domain

// Diagnostic is the shape of a structured problem report produced by the
// external diagnostics formatter. The logging core consumes (never
// produces) this type; it is defined here for interface completeness.
type Diagnostic struct {
	Level       string
	Syntax      string
	Type        string
	Header      string
	Code        string
	MessageText string
	AbsFileName string
	RelFileName string
	Lines       []PrintLine
}

// PrintLine is one source line referenced by a Diagnostic, with the
// character span of the offending region.
type PrintLine struct {
	// LineIndex is the zero-based index of the line.
	LineIndex int
	// LineNumber is the 1-based display number of the line.
	LineNumber int
	// Text is the raw line content.
	Text string
	// ErrorCharStart is the zero-based column where the error span begins,
	// or -1 when no span applies.
	ErrorCharStart int
	// ErrorLength is the number of characters in the error span.
	ErrorLength int
}
