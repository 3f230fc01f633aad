package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Greedy match from the first { to the last }, so an object survives being
// wrapped in prose or markdown fences.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// FirstJSONObject returns the first top-level brace-delimited object in the
// response text, or ErrNoJSON if none exists.
func FirstJSONObject(response string) (string, error) {
	match := jsonObjectPattern.FindString(response)
	if match == "" {
		return "", ErrNoJSON
	}
	return strings.TrimSpace(match), nil
}

// ParseResume locates the JSON object in a free-form model response and
// decodes it into a Resume. Field type mismatches from the model are tolerated
// (the offending field is left at its zero value); only name and email are
// validated.
func ParseResume(response string) (Resume, error) {
	raw, err := FirstJSONObject(response)
	if err != nil {
		return Resume{}, err
	}

	var resume Resume
	if err := json.Unmarshal([]byte(raw), &resume); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return Resume{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
		}
		// encoding/json keeps decoding past type errors, so the rest of the
		// record is already populated.
	}

	if strings.TrimSpace(resume.Name) == "" || strings.TrimSpace(resume.Email) == "" {
		return Resume{}, ErrMissingField
	}
	return resume, nil
}
