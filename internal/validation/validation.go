package validation

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Fields returns the offending field names, for error details.
func Fields(errs []ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func isValidURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

var phonePattern = regexp.MustCompile(`\D`)

func isValidPhoneNumber(phone string) bool {
	cleaned := phonePattern.ReplaceAllString(phone, "")
	return len(cleaned) >= 7 && len(cleaned) <= 15
}

func inSet(value string, set []string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func isValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// Pagination holds coerced query-string paging. Page is 1-indexed.
type Pagination struct {
	Page     int
	PageSize int
}

const MaxPageSize = 100

// ParsePagination coerces page/pageSize query values with defaults and
// bounds: page defaults to 1, pageSize to defaultSize, and pageSize is
// clamped to MaxPageSize. Non-numeric or sub-floor values fall back to the
// defaults rather than being rejected.
func ParsePagination(query url.Values, defaultSize int) Pagination {
	p := Pagination{Page: 1, PageSize: defaultSize}

	if raw := query.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if raw := query.Get("pageSize"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			p.PageSize = n
		}
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

func required(errs []ValidationError, field, value string) []ValidationError {
	if strings.TrimSpace(value) == "" {
		return append(errs, ValidationError{field, "is required"})
	}
	return errs
}
