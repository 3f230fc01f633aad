package applicants

import "time"

// Applicant is the persisted resume record. At rest Name and Email hold
// hex(iv):hex(ciphertext) envelopes; in API responses they hold plaintext.
type Applicant struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Education  Education  `json:"education"`
	Experience Experience `json:"experience"`
	Skills     []string   `json:"skills"`
	Summary    *string    `json:"summary"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Education holds the highest qualification extracted from the resume.
type Education struct {
	Degree      *string `json:"degree"`
	Branch      *string `json:"branch"`
	Institution *string `json:"institution"`
	Year        *int    `json:"year"`
}

// Experience holds the most recent position extracted from the resume.
type Experience struct {
	JobTitle  *string `json:"job_title"`
	Company   *string `json:"company"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}
