package applicants

import "errors"

var (
	// ErrNotFound signals an empty search result. It is a control signal, not
	// a storage failure.
	ErrNotFound = errors.New("no matching resumes found")
	// ErrInvalidInput signals a missing or unusable request parameter.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoText signals a PDF that fetched and parsed but contained no text.
	ErrNoText = errors.New("no text found in PDF")
)
