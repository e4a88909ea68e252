package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type ProcessStepRepository struct {
	DB *sql.DB
}

func NewProcessStepRepository(db *sql.DB) *ProcessStepRepository {
	return &ProcessStepRepository{DB: db}
}

const processStepColumns = `id, step_number, title_en, title_ar, description_en, description_ar, "order", published, created_at, updated_at`

func scanProcessStep(row interface{ Scan(...any) error }) (*entity.ProcessStep, error) {
	var p entity.ProcessStep
	err := row.Scan(
		&p.ID, &p.StepNumber, &p.TitleEn, &p.TitleAr, &p.DescriptionEn, &p.DescriptionAr,
		&p.Order, &p.Published, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProcessStepRepository) List(ctx context.Context, filter entity.ContentFilter) ([]*entity.ProcessStep, int, error) {
	filter.Category = ""
	clause, args := contentWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM process_steps"+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting process steps: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := fmt.Sprintf(
		`SELECT %s FROM process_steps%s ORDER BY step_number ASC LIMIT $%d OFFSET $%d`,
		processStepColumns, clause, len(args)-1, len(args),
	)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing process steps: %w", err)
	}
	defer rows.Close()

	steps := []*entity.ProcessStep{}
	for rows.Next() {
		p, err := scanProcessStep(rows)
		if err != nil {
			return nil, 0, err
		}
		steps = append(steps, p)
	}
	return steps, total, rows.Err()
}

func (r *ProcessStepRepository) FindByID(ctx context.Context, id string) (*entity.ProcessStep, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+processStepColumns+" FROM process_steps WHERE id = $1", id)
	p, err := scanProcessStep(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

func (r *ProcessStepRepository) Create(ctx context.Context, p *entity.ProcessStep) error {
	query := `
		INSERT INTO process_steps
			(id, step_number, title_en, title_ar, description_en, description_ar, "order", published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.StepNumber, p.TitleEn, p.TitleAr, p.DescriptionEn, p.DescriptionAr,
		p.Order, p.Published, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting process step: %w", err)
	}
	return nil
}

func (r *ProcessStepRepository) Update(ctx context.Context, p *entity.ProcessStep) error {
	query := `
		UPDATE process_steps
		SET step_number = $2, title_en = $3, title_ar = $4, description_en = $5, description_ar = $6,
		    "order" = $7, published = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		p.ID, p.StepNumber, p.TitleEn, p.TitleAr, p.DescriptionEn, p.DescriptionAr, p.Order, p.Published,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	return err
}

func (r *ProcessStepRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM process_steps WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting process step: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
