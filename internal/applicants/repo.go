package applicants

import "context"

// Repo defines persistence operations for applicant records. Records are
// create-only; there is no update or delete.
type Repo interface {
	Create(ctx context.Context, applicant Applicant) error
	ListAll(ctx context.Context) ([]Applicant, error)
}
