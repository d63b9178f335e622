package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ExportsRepo records export attempts in Postgres. A nil pool turns every
// call into a no-op so the service runs without a database.
type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

func (r *ExportsRepo) Save(ctx context.Context, e *domain.Export) error {
	if r.pool == nil {
		return nil
	}

	metaB, err := json.Marshal(e.Metadata)
	if err != nil {
		return fmt.Errorf("marshal export metadata: %w", err)
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO resume_exports (id, session_id, file_name, status, pages, size_bytes, font_base, score, metadata, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, pages = EXCLUDED.pages, size_bytes = EXCLUDED.size_bytes, metadata = EXCLUDED.metadata`,
		e.ID, e.SessionID, e.FileName, e.Status, e.Pages, e.SizeBytes, e.FontBase, e.Score, metaB, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert resume_exports: %w", err)
	}
	return nil
}

// ListForSession returns the most recent exports of a session, newest first.
func (r *ExportsRepo) ListForSession(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.Export, error) {
	if r.pool == nil {
		return []domain.Export{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx, `SELECT id, session_id, file_name, status, pages, size_bytes, font_base, score, metadata, created_at
		FROM resume_exports WHERE session_id = $1 ORDER BY created_at DESC LIMIT $2`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("query resume_exports: %w", err)
	}
	defer rows.Close()

	out := []domain.Export{}
	for rows.Next() {
		var e domain.Export
		var metaB []byte
		if err := rows.Scan(&e.ID, &e.SessionID, &e.FileName, &e.Status, &e.Pages, &e.SizeBytes, &e.FontBase, &e.Score, &metaB, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan resume_exports: %w", err)
		}
		if len(metaB) > 0 {
			if err := json.Unmarshal(metaB, &e.Metadata); err != nil {
				return nil, fmt.Errorf("decode export metadata: %w", err)
			}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
