// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/sesame/internal/errors"
)

var (
	// uuidV4Regex matches the canonical textual form of a version 4 UUID.
	uuidV4Regex = regexp.MustCompile(
		`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`,
	)

	// clientNameRegex matches the client names accepted in API_KEY_<CLIENT> variables.
	clientNameRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// UUIDv4 validates that a string is a canonical version 4 UUID.
var UUIDv4 = validation.NewStringRuleWithError(
	uuidV4Regex.MatchString,
	validation.NewError("validation_uuid_v4", "must be a valid UUIDv4"),
)

// ClientName validates an API client name.
var ClientName = validation.NewStringRuleWithError(
	clientNameRegex.MatchString,
	validation.NewError("validation_client_name", "must contain only letters, digits and underscores"),
)

// NoWhitespace validates that a string has no leading or trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not have leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// KeyID validates an encryption key id as written in ENCRYPTION_KEYS: no pair or
// list separators and no whitespace.
var KeyID = validation.NewStringRuleWithError(
	func(s string) bool {
		return !strings.ContainsAny(s, ":,") && !strings.ContainsFunc(s, unicode.IsSpace)
	},
	validation.NewError("validation_key_id", "must not contain ':', ',' or whitespace"),
)

// KeyIDRules are the rules applied to every configured or generated key id.
var KeyIDRules = []validation.Rule{validation.Required, NotBlank, NoWhitespace, KeyID}
