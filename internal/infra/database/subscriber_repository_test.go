package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/albenaa/albenaa-api/internal/entity"
)

func TestSubscriberCreateDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO subscribers").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewSubscriberRepository(db)
	err = repo.Create(context.Background(), entity.NewSubscriber("dup@example.com"))

	assert.ErrorIs(t, err, entity.ErrEmailAlreadySubscribed)
}

func TestSubscriberCreateSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	subscriber := entity.NewSubscriber("new@example.com")

	mock.ExpectExec("INSERT INTO subscribers").
		WithArgs(subscriber.ID, subscriber.Email, subscriber.Verified, subscriber.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewSubscriberRepository(db)
	err = repo.Create(context.Background(), subscriber)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriberListVerifiedFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	verified := true
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM subscribers WHERE verified = \\$1").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	subscriber := entity.NewSubscriber("reader@example.com")
	subscriber.Verified = true
	mock.ExpectQuery("SELECT id, email, verified, created_at FROM subscribers WHERE verified = \\$1 ORDER BY created_at DESC LIMIT \\$2 OFFSET \\$3").
		WithArgs(true, 50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "verified", "created_at"}).
			AddRow(subscriber.ID, subscriber.Email, subscriber.Verified, subscriber.CreatedAt))

	repo := NewSubscriberRepository(db)
	subscribers, total, err := repo.List(context.Background(), entity.SubscriberFilter{
		Verified: &verified,
		Page:     1,
		PageSize: 50,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, subscribers, 1)
	assert.True(t, subscribers[0].Verified)
	assert.NoError(t, mock.ExpectationsWereMet())
}
