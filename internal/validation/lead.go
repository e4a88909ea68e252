package validation

import "github.com/albenaa/albenaa-api/internal/entity"

type CreateLeadInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	Source     string `json:"source"`
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	AssignedTo string `json:"assignedTo"`
	Notes      string `json:"notes"`
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
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
	if input.Source == "" {
		errs = append(errs, ValidationError{"source", "is required"})
	} else if !inSet(input.Source, entity.LeadSources) {
		errs = append(errs, ValidationError{"source", "is not a valid source"})
	}
	if input.Status != "" && !inSet(input.Status, entity.LeadStatuses) {
		errs = append(errs, ValidationError{"status", "is not a valid status"})
	}
	if input.Priority != "" && !inSet(input.Priority, entity.LeadPriorities) {
		errs = append(errs, ValidationError{"priority", "is not a valid priority"})
	}

	return errs
}

// UpdateLeadInput is the partial schema: every field optional, but a present
// field must satisfy the same constraint as on create.
type UpdateLeadInput struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Message    *string `json:"message"`
	Status     *string `json:"status"`
	Source     *string `json:"source"`
	Priority   *string `json:"priority"`
	AssignedTo *string `json:"assignedTo"`
	Notes      *string `json:"notes"`
}

func ValidateUpdateLeadInput(input UpdateLeadInput) []ValidationError {
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
	if input.Status != nil && !inSet(*input.Status, entity.LeadStatuses) {
		errs = append(errs, ValidationError{"status", "is not a valid status"})
	}
	if input.Source != nil && !inSet(*input.Source, entity.LeadSources) {
		errs = append(errs, ValidationError{"source", "is not a valid source"})
	}
	if input.Priority != nil && !inSet(*input.Priority, entity.LeadPriorities) {
		errs = append(errs, ValidationError{"priority", "is not a valid priority"})
	}

	return errs
}

// Apply copies the provided fields onto the lead. Status is overwritten
// as-is: transitions are deliberately unconstrained.
func (input UpdateLeadInput) Apply(lead *entity.Lead) {
	if input.Name != nil {
		lead.Name = *input.Name
	}
	if input.Email != nil {
		lead.Email = *input.Email
	}
	if input.Phone != nil {
		lead.Phone = *input.Phone
	}
	if input.Message != nil {
		lead.Message = *input.Message
	}
	if input.Status != nil {
		lead.Status = *input.Status
	}
	if input.Source != nil {
		lead.Source = *input.Source
	}
	if input.Priority != nil {
		lead.Priority = *input.Priority
	}
	if input.AssignedTo != nil {
		lead.AssignedTo = *input.AssignedTo
	}
	if input.Notes != nil {
		lead.Notes = *input.Notes
	}
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func ValidateContactInput(input ContactInput) []ValidationError {
	var errs []ValidationError

	errs = required(errs, "name", input.Name)
	if input.Email == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}
	if input.Phone == "" {
		errs = append(errs, ValidationError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errs = append(errs, ValidationError{"phone", "must be a valid phone number"})
	}
	errs = required(errs, "message", input.Message)

	return errs
}
