package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lead status values. No transition graph is enforced: any status in the set
// may overwrite any other at any time.
const (
	LeadStatusNew       = "NEW"
	LeadStatusContacted = "CONTACTED"
	LeadStatusQualified = "QUALIFIED"
	LeadStatusConverted = "CONVERTED"
	LeadStatusLost      = "LOST"
)

const (
	LeadPriorityLow    = "LOW"
	LeadPriorityMedium = "MEDIUM"
	LeadPriorityHigh   = "HIGH"
)

// Lead sources: the channel the inquiry arrived through.
const (
	LeadSourceWebsite  = "WEBSITE"
	LeadSourceReferral = "REFERRAL"
	LeadSourcePhone    = "PHONE"
	LeadSourceSocial   = "SOCIAL"
	LeadSourceExhibit  = "EXHIBITION"
	LeadSourceOther    = "OTHER"
)

var (
	LeadStatuses   = []string{LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusLost}
	LeadPriorities = []string{LeadPriorityLow, LeadPriorityMedium, LeadPriorityHigh}
	LeadSources    = []string{LeadSourceWebsite, LeadSourceReferral, LeadSourcePhone, LeadSourceSocial, LeadSourceExhibit, LeadSourceOther}
)

type Lead struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message,omitempty"`
	Status     string    `json:"status"`
	Source     string    `json:"source"`
	Priority   string    `json:"priority"`
	AssignedTo string    `json:"assignedTo,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewLead applies the defaults for a fresh inbound inquiry.
func NewLead(name, email, phone, message, source string) *Lead {
	now := time.Now()
	return &Lead{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Message:   message,
		Status:    LeadStatusNew,
		Source:    source,
		Priority:  LeadPriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// LeadFilter is the allow-listed subset of fields a lead listing may filter
// on. Empty fields are ignored.
type LeadFilter struct {
	Status     string
	Source     string
	Priority   string
	AssignedTo string
	Page       int
	PageSize   int
}

// LeadStats aggregates counts grouped by status, source and priority.
type LeadStats struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	BySource   map[string]int `json:"bySource"`
	ByPriority map[string]int `json:"byPriority"`
}

type LeadRepositoryInterface interface {
	List(ctx context.Context, filter LeadFilter) ([]*Lead, int, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	Create(ctx context.Context, lead *Lead) error
	Update(ctx context.Context, lead *Lead) error
	Stats(ctx context.Context) (*LeadStats, error)
}
