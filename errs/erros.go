package errs

// EmptyString names the error for a non-empty identifier (a path, a font
// code) that was required and not supplied. No function in this module
// returns it; worker.New reports an empty Workspace or DestinationDir as
// MalformedInput.
var EmptyString = New("empty string")

// Sentinel error kinds for the RTF decomposer/recomposer pipeline (§7).
// MalformedInput, EncodingError and IOFailure returned by the rtf package
// end the processing of the file at hand. BackendFailure does not: the
// Translator passes it to its ErrorSink and keeps the source text of the
// failed line as its translation, and the file's translation goes on.
// Compose additional context the same way the teacher composes its own
// sentinels: New(MalformedInput, "missing \\widowctrl").
var (
	// MalformedInput covers a missing \widowctrl or an unterminated cell
	// group. Bytes the control-word scan cannot use are skipped one at a
	// time rather than reported.
	MalformedInput = New("malformed rtf input")

	// EncodingError covers a cell's bytes failing UTF-8 decoding after extraction.
	EncodingError = New("invalid utf-8 in cell")

	// IOFailure covers any filesystem error while reading input or writing
	// the template/destination files.
	IOFailure = New("io failure")

	// BackendFailure covers a translator backend call returning an error.
	BackendFailure = New("translation backend failure")
)
