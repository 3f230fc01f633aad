package llm

import (
	"context"
	"errors"
)

// Client abstracts the generative model used for structured resume extraction.
type Client interface {
	// ExtractResume sends the resume text to the model and returns the parsed
	// record. At most one model call per invocation; callers wanting
	// resilience must re-invoke.
	ExtractResume(ctx context.Context, text string) (Resume, error)
}

// Resume is the structured record the model extracts from resume text.
type Resume struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Education  Education  `json:"education"`
	Experience Experience `json:"experience"`
	Skills     []string   `json:"skills"`
	Summary    *string    `json:"summary"`
}

// Education describes the highest qualification found in the resume.
type Education struct {
	Degree      *string `json:"degree"`
	Branch      *string `json:"branch"`
	Institution *string `json:"institution"`
	Year        *int    `json:"year"`
}

// Experience describes the most recent position found in the resume.
type Experience struct {
	JobTitle  *string `json:"job_title"`
	Company   *string `json:"company"`
	StartDate *string `json:"start_date"` // YYYY-MM
	EndDate   *string `json:"end_date"`   // YYYY-MM or "present"
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm provider not configured")

// Placeholder is a stub implementation used when no provider is configured.
type Placeholder struct{}

// ExtractResume returns ErrNotConfigured.
func (Placeholder) ExtractResume(ctx context.Context, text string) (Resume, error) {
	_ = ctx
	_ = text
	return Resume{}, ErrNotConfigured
}

var (
	// ErrEmptyResponse indicates the model call succeeded but returned no text.
	ErrEmptyResponse = errors.New("empty model response")
	// ErrNoJSON indicates no brace-delimited object was found in the response.
	ErrNoJSON = errors.New("no JSON object found in response")
	// ErrMalformedJSON indicates the located object is not valid JSON.
	ErrMalformedJSON = errors.New("malformed JSON in response")
	// ErrMissingField indicates name or email is absent after parsing.
	ErrMissingField = errors.New("required fields (name, email) missing in parsed data")
)
