package postgres

import (
	"context"

	"jobready-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const cvColumns = `id, user_id, title, full_name, email, phone, location, summary, skills, experience, education, generated_html, created_at, updated_at`

type cvRepo struct {
	db *pgxpool.Pool
}

func NewCVRepository(db *pgxpool.Pool) domain.CVRepository {
	return &cvRepo{db: db}
}

func (r *cvRepo) Create(ctx context.Context, cv *domain.CV) error {
	skills := cv.Skills
	if skills == nil {
		skills = []string{}
	}

	query := `INSERT INTO cvs (user_id, title, full_name, email, phone, location, summary, skills, experience, education, generated_html, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
              RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		cv.UserID, cv.Title, cv.FullName, cv.Email, cv.Phone, cv.Location, cv.Summary,
		pq.Array(skills), cv.Experience, cv.Education, cv.GeneratedHTML,
	).Scan(&cv.ID, &cv.CreatedAt, &cv.UpdatedAt)
	return wrapErr("create cv", err)
}

func (r *cvRepo) GetByID(ctx context.Context, id int64) (*domain.CV, error) {
	query := `SELECT ` + cvColumns + ` FROM cvs WHERE id = $1`
	cv, err := scanCV(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapErr("get cv", err)
	}
	return cv, nil
}

func (r *cvRepo) UpdateHTML(ctx context.Context, id int64, html string) (*domain.CV, error) {
	query := `UPDATE cvs SET generated_html = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + cvColumns
	cv, err := scanCV(r.db.QueryRow(ctx, query, id, html))
	if err != nil {
		return nil, wrapErr("update cv html", err)
	}
	return cv, nil
}

func (r *cvRepo) ListByUser(ctx context.Context, userID string) ([]domain.CV, error) {
	query := `SELECT ` + cvColumns + ` FROM cvs WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapErr("list cvs", err)
	}
	defer rows.Close()

	cvs := []domain.CV{}
	for rows.Next() {
		cv, err := scanCV(rows)
		if err != nil {
			return nil, wrapErr("scan cv", err)
		}
		cvs = append(cvs, *cv)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list cvs", err)
	}
	return cvs, nil
}

func scanCV(row pgx.Row) (*domain.CV, error) {
	var cv domain.CV
	skills := []string{}
	err := row.Scan(
		&cv.ID, &cv.UserID, &cv.Title, &cv.FullName, &cv.Email, &cv.Phone, &cv.Location, &cv.Summary,
		pq.Array(&skills), &cv.Experience, &cv.Education, &cv.GeneratedHTML, &cv.CreatedAt, &cv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	cv.Skills = skills
	return &cv, nil
}
