package database

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/albenaa/albenaa-api/internal/entity"
)

func leadRows(leads ...*entity.Lead) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "message", "status", "source",
		"priority", "assigned_to", "notes", "created_at", "updated_at",
	})
	for _, l := range leads {
		rows.AddRow(l.ID, l.Name, l.Email, l.Phone, l.Message, l.Status, l.Source,
			l.Priority, l.AssignedTo, l.Notes, l.CreatedAt, l.UpdatedAt)
	}
	return rows
}

func TestLeadListWithFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	lead := entity.NewLead("Ahmed", "ahmed@example.com", "", "", entity.LeadSourceWebsite)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM leads WHERE status = $1 AND priority = $2")).
		WithArgs("NEW", "HIGH").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery("SELECT .* FROM leads WHERE status = \\$1 AND priority = \\$2 ORDER BY created_at DESC LIMIT \\$3 OFFSET \\$4").
		WithArgs("NEW", "HIGH", 20, 0).
		WillReturnRows(leadRows(lead))

	repo := NewLeadRepository(db)
	leads, total, err := repo.List(context.Background(), entity.LeadFilter{
		Status:   "NEW",
		Priority: "HIGH",
		Page:     1,
		PageSize: 20,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, leads, 1)
	assert.Equal(t, lead.ID, leads[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadListNoFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM leads")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT .* FROM leads ORDER BY created_at DESC LIMIT \\$1 OFFSET \\$2").
		WithArgs(50, 50).
		WillReturnRows(leadRows())

	repo := NewLeadRepository(db)
	leads, total, err := repo.List(context.Background(), entity.LeadFilter{Page: 2, PageSize: 50})

	assert.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, leads)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadFindByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM leads WHERE id = \\$1").
		WithArgs("ghost").
		WillReturnRows(leadRows())

	repo := NewLeadRepository(db)
	_, err = repo.FindByID(context.Background(), "ghost")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestLeadUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("UPDATE leads").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	repo := NewLeadRepository(db)
	lead := entity.NewLead("Ghost", "ghost@example.com", "", "", entity.LeadSourceOther)
	err = repo.Update(context.Background(), lead)

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestLeadUpdateRefreshesUpdatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	updatedAt := time.Now().Add(time.Minute)
	mock.ExpectQuery("UPDATE leads").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))

	repo := NewLeadRepository(db)
	lead := entity.NewLead("Ahmed", "ahmed@example.com", "", "", entity.LeadSourceWebsite)
	err = repo.Update(context.Background(), lead)

	assert.NoError(t, err)
	assert.Equal(t, updatedAt, lead.UpdatedAt)
}

func TestLeadStatsAggregation(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, COUNT(*) FROM leads GROUP BY status")).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("NEW", 4).AddRow("CONVERTED", 2))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT source, COUNT(*) FROM leads GROUP BY source")).
		WillReturnRows(sqlmock.NewRows([]string{"source", "count"}).
			AddRow("WEBSITE", 5).AddRow("PHONE", 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT priority, COUNT(*) FROM leads GROUP BY priority")).
		WillReturnRows(sqlmock.NewRows([]string{"priority", "count"}).
			AddRow("MEDIUM", 6))

	repo := NewLeadRepository(db)
	stats, err := repo.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 4, stats.ByStatus["NEW"])
	assert.Equal(t, 5, stats.BySource["WEBSITE"])
	assert.Equal(t, 6, stats.ByPriority["MEDIUM"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
