package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type SubscriberRepository struct {
	DB *sql.DB
}

func NewSubscriberRepository(db *sql.DB) *SubscriberRepository {
	return &SubscriberRepository{DB: db}
}

func (r *SubscriberRepository) List(ctx context.Context, filter entity.SubscriberFilter) ([]*entity.Subscriber, int, error) {
	clause := ""
	args := []any{}
	if filter.Verified != nil {
		args = append(args, *filter.Verified)
		clause = " WHERE verified = $1"
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM subscribers"+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting subscribers: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := fmt.Sprintf(
		"SELECT id, email, verified, created_at FROM subscribers%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		clause, len(args)-1, len(args),
	)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := []*entity.Subscriber{}
	for rows.Next() {
		var s entity.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.Verified, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		subscribers = append(subscribers, &s)
	}
	return subscribers, total, rows.Err()
}

// Create inserts the subscriber. Two concurrent signups with the same email
// both reach this insert; the unique index on email rejects the loser, which
// surfaces as ErrEmailAlreadySubscribed.
func (r *SubscriberRepository) Create(ctx context.Context, s *entity.Subscriber) error {
	query := `INSERT INTO subscribers (id, email, verified, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.Email, s.Verified, s.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailAlreadySubscribed
		}
		return fmt.Errorf("inserting subscriber: %w", err)
	}
	return nil
}
