package applicants

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new applicant record.
func (r *PGRepo) Create(ctx context.Context, applicant Applicant) error {
	const query = `
INSERT INTO applicants (
    id,
    name,
    email,
    degree,
    branch,
    institution,
    graduation_year,
    job_title,
    company,
    start_date,
    end_date,
    skills,
    summary,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	skills, err := json.Marshal(applicant.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		applicant.ID,
		applicant.Name,
		applicant.Email,
		nullString(applicant.Education.Degree),
		nullString(applicant.Education.Branch),
		nullString(applicant.Education.Institution),
		nullInt(applicant.Education.Year),
		nullString(applicant.Experience.JobTitle),
		nullString(applicant.Experience.Company),
		nullString(applicant.Experience.StartDate),
		nullString(applicant.Experience.EndDate),
		skills,
		nullString(applicant.Summary),
		applicant.CreatedAt,
	)
	return err
}

// ListAll returns every stored applicant in natural storage order.
func (r *PGRepo) ListAll(ctx context.Context) ([]Applicant, error) {
	const query = `
SELECT id, name, email, degree, branch, institution, graduation_year, job_title, company, start_date, end_date, skills, summary, created_at
FROM applicants`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Applicant
	for rows.Next() {
		var (
			applicant Applicant
			degree    sql.NullString
			branch    sql.NullString
			inst      sql.NullString
			year      sql.NullInt64
			jobTitle  sql.NullString
			company   sql.NullString
			startDate sql.NullString
			endDate   sql.NullString
			skills    []byte
			summary   sql.NullString
		)
		if err := rows.Scan(
			&applicant.ID,
			&applicant.Name,
			&applicant.Email,
			&degree,
			&branch,
			&inst,
			&year,
			&jobTitle,
			&company,
			&startDate,
			&endDate,
			&skills,
			&summary,
			&applicant.CreatedAt,
		); err != nil {
			return nil, err
		}

		applicant.Education.Degree = stringPtr(degree)
		applicant.Education.Branch = stringPtr(branch)
		applicant.Education.Institution = stringPtr(inst)
		applicant.Education.Year = intPtr(year)
		applicant.Experience.JobTitle = stringPtr(jobTitle)
		applicant.Experience.Company = stringPtr(company)
		applicant.Experience.StartDate = stringPtr(startDate)
		applicant.Experience.EndDate = stringPtr(endDate)
		applicant.Summary = stringPtr(summary)

		applicant.Skills = []string{}
		if len(skills) > 0 {
			if err := json.Unmarshal(skills, &applicant.Skills); err != nil {
				return nil, fmt.Errorf("unmarshal skills for %s: %w", applicant.ID, err)
			}
		}

		out = append(out, applicant)
	}
	return out, rows.Err()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}
