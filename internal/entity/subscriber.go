package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Subscriber is a newsletter signup. Email is unique at the store level; a
// duplicate insert surfaces as ErrEmailAlreadySubscribed.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewSubscriber(email string) *Subscriber {
	return &Subscriber{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now(),
	}
}

type SubscriberFilter struct {
	// Verified filters on the verified flag when non-nil. This is the one
	// client-controlled ordering/filter exception on subscribers.
	Verified *bool
	Page     int
	PageSize int
}

type SubscriberRepositoryInterface interface {
	List(ctx context.Context, filter SubscriberFilter) ([]*Subscriber, int, error)
	Create(ctx context.Context, s *Subscriber) error
}
