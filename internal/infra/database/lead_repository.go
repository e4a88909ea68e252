package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, name, email, phone, message, status, source, priority, assigned_to, notes, created_at, updated_at`

func scanLead(row interface{ Scan(...any) error }) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone, &l.Message,
		&l.Status, &l.Source, &l.Priority, &l.AssignedTo, &l.Notes,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List applies the allow-listed filters and returns one page plus the total
// count. Ordering is fixed: newest first.
func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]*entity.Lead, int, error) {
	where := []string{}
	args := []any{}

	addFilter := func(column, value string) {
		if value != "" {
			args = append(args, value)
			where = append(where, fmt.Sprintf("%s = $%d", column, len(args)))
		}
	}
	addFilter("status", filter.Status)
	addFilter("source", filter.Source)
	addFilter("priority", filter.Priority)
	addFilter("assigned_to", filter.AssignedTo)

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM leads"+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting leads: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := fmt.Sprintf(
		"SELECT %s FROM leads%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		leadColumns, clause, len(args)-1, len(args),
	)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, 0, err
		}
		leads = append(leads, l)
	}
	return leads, total, rows.Err()
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+leadColumns+" FROM leads WHERE id = $1", id)
	l, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return l, err
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, message, status, source, priority, assigned_to, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Message,
		lead.Status, lead.Source, lead.Priority, lead.AssignedTo, lead.Notes,
		lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads
		SET name = $2, email = $3, phone = $4, message = $5, status = $6,
		    source = $7, priority = $8, assigned_to = $9, notes = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Message,
		lead.Status, lead.Source, lead.Priority, lead.AssignedTo, lead.Notes,
	).Scan(&lead.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	return err
}

// Stats aggregates counts grouped by status, source and priority. The three
// scans are separate queries with no snapshot guarantee; staleness across
// concurrent writes is accepted.
func (r *LeadRepository) Stats(ctx context.Context) (*entity.LeadStats, error) {
	stats := &entity.LeadStats{
		ByStatus:   map[string]int{},
		BySource:   map[string]int{},
		ByPriority: map[string]int{},
	}

	groupCount := func(column string, dest map[string]int) error {
		rows, err := r.DB.QueryContext(ctx,
			fmt.Sprintf("SELECT %s, COUNT(*) FROM leads GROUP BY %s", column, column))
		if err != nil {
			return fmt.Errorf("grouping leads by %s: %w", column, err)
		}
		defer rows.Close()
		for rows.Next() {
			var key string
			var n int
			if err := rows.Scan(&key, &n); err != nil {
				return err
			}
			dest[key] = n
		}
		return rows.Err()
	}

	if err := groupCount("status", stats.ByStatus); err != nil {
		return nil, err
	}
	if err := groupCount("source", stats.BySource); err != nil {
		return nil, err
	}
	if err := groupCount("priority", stats.ByPriority); err != nil {
		return nil, err
	}

	for _, n := range stats.ByStatus {
		stats.Total += n
	}
	return stats, nil
}
