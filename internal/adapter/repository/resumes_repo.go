package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

func (r *ResumesRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.ResumeSummary, error) {
	if r.pool == nil {
		return []domain.ResumeSummary{}, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id, user_id, title, template, ats_score, created_at, updated_at
		FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ResumeSummary{}
	for rows.Next() {
		var s domain.ResumeSummary
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.Template, &s.ATSScore, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ResumesRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Resume, error) {
	if r.pool == nil {
		return nil, domain.ErrNotFound
	}

	var res domain.Resume
	var docB []byte
	err := r.pool.QueryRow(ctx, `SELECT id, user_id, title, ats_score, document, created_at, updated_at
		FROM resumes WHERE id = $1`, id).
		Scan(&res.ID, &res.UserID, &res.Title, &res.ATSScore, &docB, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(docB, &res.Document); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	normalizeDocument(&res.Document)
	return &res, nil
}

// Save upserts the row; concurrent editors of the same id resolve
// last-write-wins.
func (r *ResumesRepo) Save(ctx context.Context, res *domain.Resume) error {
	if r.pool == nil {
		return nil
	}

	docB, err := json.Marshal(res.Document)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO resumes (id, user_id, title, template, ats_score, document, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, template = EXCLUDED.template, ats_score = EXCLUDED.ats_score, document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		res.ID, res.UserID, res.Title, res.Document.Template, res.ATSScore, docB, res.CreatedAt, res.UpdatedAt)
	return err
}

func (r *ResumesRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if r.pool == nil {
		return nil
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	return err
}

// normalizeDocument replaces nil collections from older rows so editors and
// templates can range without nil checks.
func normalizeDocument(d *model.Document) {
	if d.Education == nil {
		d.Education = []model.Education{}
	}
	if d.Experience == nil {
		d.Experience = []model.Experience{}
	}
	if d.Projects == nil {
		d.Projects = []model.Project{}
	}
	if d.Achievements == nil {
		d.Achievements = []model.Achievement{}
	}
	if d.Skills == nil {
		d.Skills = []model.Skill{}
	}
	if d.CustomSections == nil {
		d.CustomSections = []model.CustomSection{}
	}
}
