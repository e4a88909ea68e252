package validation

import (
	"time"

	"github.com/albenaa/albenaa-api/internal/entity"
)

type CreateCustomerInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	LeadID  string `json:"leadId"`
	Notes   string `json:"notes"`
}

func ValidateCreateCustomerInput(input CreateCustomerInput) []ValidationError {
	var errs []ValidationError

	errs = required(errs, "name", input.Name)
	if input.Email == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}
	if input.Phone != "" && !isValidPhoneNumber(input.Phone) {
		errs = append(errs, ValidationError{"phone", "must be a valid phone number"})
	}

	return errs
}

type UpdateCustomerInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Notes   *string `json:"notes"`
}

func ValidateUpdateCustomerInput(input UpdateCustomerInput) []ValidationError {
	var errs []ValidationError

	if input.Name != nil {
		errs = required(errs, "name", *input.Name)
	}
	if input.Email != nil && !isValidEmail(*input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}
	if input.Phone != nil && *input.Phone != "" && !isValidPhoneNumber(*input.Phone) {
		errs = append(errs, ValidationError{"phone", "must be a valid phone number"})
	}

	return errs
}

func (input UpdateCustomerInput) Apply(c *entity.Customer) {
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Email != nil {
		c.Email = *input.Email
	}
	if input.Phone != nil {
		c.Phone = *input.Phone
	}
	if input.Company != nil {
		c.Company = *input.Company
	}
	if input.Notes != nil {
		c.Notes = *input.Notes
	}
}

type CreateInteractionInput struct {
	Type        string            `json:"type"`
	Direction   string            `json:"direction"`
	Subject     string            `json:"subject"`
	Content     string            `json:"content"`
	Outcome     string            `json:"outcome"`
	ScheduledAt *time.Time        `json:"scheduledAt"`
	CompletedAt *time.Time        `json:"completedAt"`
	Metadata    map[string]string `json:"metadata"`
}

func ValidateCreateInteractionInput(input CreateInteractionInput) []ValidationError {
	var errs []ValidationError

	if input.Type == "" {
		errs = append(errs, ValidationError{"type", "is required"})
	} else if !inSet(input.Type, entity.InteractionTypes) {
		errs = append(errs, ValidationError{"type", "is not a valid type"})
	}
	if input.Direction == "" {
		errs = append(errs, ValidationError{"direction", "is required"})
	} else if !inSet(input.Direction, entity.InteractionDirections) {
		errs = append(errs, ValidationError{"direction", "must be INBOUND or OUTBOUND"})
	}
	errs = required(errs, "subject", input.Subject)

	return errs
}
