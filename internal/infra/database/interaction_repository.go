package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type InteractionRepository struct {
	DB *sql.DB
}

func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) Create(ctx context.Context, i *entity.Interaction) error {
	metadata, err := json.Marshal(i.Metadata)
	if err != nil {
		return fmt.Errorf("encoding interaction metadata: %w", err)
	}

	query := `
		INSERT INTO interactions
			(id, customer_id, type, direction, subject, content, outcome,
			 scheduled_at, completed_at, metadata, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = r.DB.ExecContext(ctx, query,
		i.ID, i.CustomerID, i.Type, i.Direction, i.Subject, i.Content, i.Outcome,
		i.ScheduledAt, i.CompletedAt, metadata, i.CreatedBy, i.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting interaction: %w", err)
	}
	return nil
}

func (r *InteractionRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*entity.Interaction, error) {
	query := `
		SELECT id, customer_id, type, direction, subject, content, outcome,
		       scheduled_at, completed_at, metadata, created_by, created_at
		FROM interactions
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("listing interactions: %w", err)
	}
	defer rows.Close()

	interactions := []*entity.Interaction{}
	for rows.Next() {
		var i entity.Interaction
		var metadata []byte
		err := rows.Scan(
			&i.ID, &i.CustomerID, &i.Type, &i.Direction, &i.Subject, &i.Content, &i.Outcome,
			&i.ScheduledAt, &i.CompletedAt, &metadata, &i.CreatedBy, &i.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &i.Metadata); err != nil {
				return nil, fmt.Errorf("decoding interaction metadata: %w", err)
			}
		}
		interactions = append(interactions, &i)
	}
	return interactions, rows.Err()
}
