package applicants

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-vault/internal/llm"
	"resume-vault/internal/shared/encryption"
	"resume-vault/internal/shared/metrics"
	"resume-vault/internal/shared/telemetry"
)

// TextFetcher retrieves a document from a URL and extracts its plain text.
type TextFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// Service runs the ingestion pipeline and serves retrieval and search.
// Process is a linear sequence: fetch, extract, validate, encrypt, persist,
// decrypt for the response. Any stage error ends the call; nothing partial is
// persisted.
type Service struct {
	Repo    Repo
	Fetcher TextFetcher
	LLM     llm.Client
	Codec   *encryption.Codec
}

// Process ingests the resume at url and returns the stored record with
// plaintext PII. The call is synchronous; it returns only once the record is
// durably written or a stage has failed.
func (s *Service) Process(ctx context.Context, url string) (Applicant, error) {
	if strings.TrimSpace(url) == "" {
		return Applicant{}, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	applicant, err := s.process(ctx, url)
	if err != nil {
		metrics.IncIngestFailed()
		return Applicant{}, err
	}
	return applicant, nil
}

func (s *Service) process(ctx context.Context, url string) (Applicant, error) {
	metrics.IncIngestStarted()
	started := metrics.NowMillis()

	telemetry.Info("resume.process.start", map[string]any{"url": url})

	text, err := s.Fetcher.FetchText(ctx, url)
	if err != nil {
		return Applicant{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Applicant{}, ErrNoText
	}
	telemetry.Info("resume.process.extracted", map[string]any{"url": url, "text_len": len(text)})

	resume, err := s.LLM.ExtractResume(ctx, text)
	if err != nil {
		return Applicant{}, err
	}
	if strings.TrimSpace(resume.Name) == "" || strings.TrimSpace(resume.Email) == "" {
		return Applicant{}, llm.ErrMissingField
	}

	encryptedName, err := s.Codec.Encrypt(resume.Name)
	if err != nil {
		return Applicant{}, fmt.Errorf("encrypt name: %w", err)
	}
	encryptedEmail, err := s.Codec.Encrypt(resume.Email)
	if err != nil {
		return Applicant{}, fmt.Errorf("encrypt email: %w", err)
	}

	entity := Applicant{
		ID:         uuid.NewString(),
		Name:       encryptedName,
		Email:      encryptedEmail,
		Education:  Education(resume.Education),
		Experience: Experience(resume.Experience),
		Skills:     resume.Skills,
		Summary:    resume.Summary,
		CreatedAt:  time.Now().UTC(),
	}
	if entity.Skills == nil {
		entity.Skills = []string{}
	}

	if err := s.Repo.Create(ctx, entity); err != nil {
		return Applicant{}, fmt.Errorf("save applicant: %w", err)
	}
	telemetry.Info("resume.process.saved", map[string]any{"applicant_id": entity.ID})

	// Round-trip the in-memory envelopes rather than echoing the model output,
	// so the response proves the stored record decrypts.
	response, err := s.decryptPII(entity)
	if err != nil {
		return Applicant{}, err
	}

	metrics.IncIngestCompleted()
	metrics.ObserveIngestDurationMs(metrics.NowMillis() - started)
	return response, nil
}

// List returns every stored applicant with PII decrypted.
func (s *Service) List(ctx context.Context) ([]Applicant, error) {
	stored, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}

	out := make([]Applicant, 0, len(stored))
	for _, applicant := range stored {
		decrypted, err := s.decryptPII(applicant)
		if err != nil {
			return nil, err
		}
		out = append(out, decrypted)
	}
	return out, nil
}

// SearchByName returns applicants whose decrypted name contains query,
// case-insensitive. The scan is linear in stored record count: name is
// encrypted at rest, so there is nothing to index. Zero matches yields
// ErrNotFound so callers can distinguish "no data" from a storage failure.
func (s *Service) SearchByName(ctx context.Context, query string) ([]Applicant, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	stored, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("search applicants: %w", err)
	}

	needle := strings.ToLower(query)
	var matches []Applicant
	for _, applicant := range stored {
		name, err := s.Codec.Decrypt(applicant.Name)
		if err != nil {
			return nil, fmt.Errorf("decrypt name for %s: %w", applicant.ID, err)
		}
		if !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		decrypted, err := s.decryptPII(applicant)
		if err != nil {
			return nil, err
		}
		matches = append(matches, decrypted)
	}

	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return matches, nil
}

func (s *Service) decryptPII(applicant Applicant) (Applicant, error) {
	name, err := s.Codec.Decrypt(applicant.Name)
	if err != nil {
		return Applicant{}, fmt.Errorf("decrypt name for %s: %w", applicant.ID, err)
	}
	email, err := s.Codec.Decrypt(applicant.Email)
	if err != nil {
		return Applicant{}, fmt.Errorf("decrypt email for %s: %w", applicant.ID, err)
	}
	applicant.Name = name
	applicant.Email = email
	return applicant, nil
}
