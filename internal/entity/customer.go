package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Customer is a converted lead or a directly created contact.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	LeadID    string    `json:"leadId,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewCustomer(name, email, phone, company string) (*Customer, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if email == "" {
		return nil, errors.New("email is required")
	}
	now := time.Now()
	return &Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Company:   company,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

const (
	InteractionDirectionInbound  = "INBOUND"
	InteractionDirectionOutbound = "OUTBOUND"
)

const (
	InteractionTypeCall    = "CALL"
	InteractionTypeEmail   = "EMAIL"
	InteractionTypeMeeting = "MEETING"
	InteractionTypeVisit   = "SITE_VISIT"
	InteractionTypeOther   = "OTHER"
)

var (
	InteractionDirections = []string{InteractionDirectionInbound, InteractionDirectionOutbound}
	InteractionTypes      = []string{InteractionTypeCall, InteractionTypeEmail, InteractionTypeMeeting, InteractionTypeVisit, InteractionTypeOther}
)

// Interaction is a logged touchpoint owned by exactly one customer.
// Interactions are created only, never updated or deleted.
type Interaction struct {
	ID          string            `json:"id"`
	CustomerID  string            `json:"customerId"`
	Type        string            `json:"type"`
	Direction   string            `json:"direction"`
	Subject     string            `json:"subject"`
	Content     string            `json:"content,omitempty"`
	Outcome     string            `json:"outcome,omitempty"`
	ScheduledAt *time.Time        `json:"scheduledAt,omitempty"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedBy   string            `json:"createdBy,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func NewInteraction(customerID, typ, direction, subject string) *Interaction {
	return &Interaction{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Type:       typ,
		Direction:  direction,
		Subject:    subject,
		CreatedAt:  time.Now(),
	}
}

type CustomerFilter struct {
	Search   string
	Page     int
	PageSize int
}

type CustomerRepositoryInterface interface {
	List(ctx context.Context, filter CustomerFilter) ([]*Customer, int, error)
	FindByID(ctx context.Context, id string) (*Customer, error)
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
}

type InteractionRepositoryInterface interface {
	Create(ctx context.Context, i *Interaction) error
	FindByCustomerID(ctx context.Context, customerID string) ([]*Interaction, error)
}
