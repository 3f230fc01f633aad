package applicants

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	degree := "B.Tech"
	year := 2020
	applicant := Applicant{
		ID:        "applicant-1",
		Name:      "0011:aabb",
		Email:     "2233:ccdd",
		Education: Education{Degree: &degree, Year: &year},
		Skills:    []string{"Go", "SQL"},
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO applicants").
		WithArgs(
			applicant.ID,
			applicant.Name,
			applicant.Email,
			degree,
			nil,
			nil,
			int64(year),
			nil,
			nil,
			nil,
			nil,
			[]byte(`["Go","SQL"]`),
			nil,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), applicant); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "degree", "branch", "institution", "graduation_year",
		"job_title", "company", "start_date", "end_date", "skills", "summary", "created_at",
	}).
		AddRow("applicant-1", "0011:aabb", "2233:ccdd", "B.Tech", nil, nil, 2020,
			"Engineer", "Acme", "2021", "Present", []byte(`["Go"]`), "summary", created).
		AddRow("applicant-2", "4455:eeff", "6677:9900", nil, nil, nil, nil,
			nil, nil, nil, nil, nil, nil, created)

	mock.ExpectQuery("SELECT (.+) FROM applicants").WillReturnRows(rows)

	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 applicants, got %d", len(got))
	}
	first := got[0]
	if first.ID != "applicant-1" || first.Name != "0011:aabb" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if first.Education.Degree == nil || *first.Education.Degree != "B.Tech" {
		t.Fatalf("expected degree B.Tech, got %v", first.Education.Degree)
	}
	if first.Education.Year == nil || *first.Education.Year != 2020 {
		t.Fatalf("expected year 2020, got %v", first.Education.Year)
	}
	if len(first.Skills) != 1 || first.Skills[0] != "Go" {
		t.Fatalf("unexpected skills: %v", first.Skills)
	}

	second := got[1]
	if second.Education.Degree != nil || second.Summary != nil {
		t.Fatalf("expected nil optional fields, got %+v", second)
	}
	if second.Skills == nil || len(second.Skills) != 0 {
		t.Fatalf("expected empty skills slice, got %v", second.Skills)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
