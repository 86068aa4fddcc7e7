package business

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"contact-editor/ui/editor/models"
	editorutils "contact-editor/ui/editor/utils"
)

// ValidateField validates a single form field value by its field ID.
// Returns nil for field IDs without validation rules.
func ValidateField(fieldID, value string) error {
	switch fieldID {
	case models.FieldName:
		return ValidateName(value)
	case models.FieldEmail:
		return ValidateEmail(value)
	case models.FieldPhone:
		return ValidatePhone(value)
	case models.FieldGroup:
		return ValidateGroup(value)
	case models.FieldFavorite:
		return ValidateFavorite(value)
	default:
		return nil
	}
}

// ValidateName validates a contact name. Length limits count characters,
// not bytes, so non-ASCII names get the full limit.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if utf8.RuneCountInString(trimmed) < editorutils.MinNameLength {
		return fmt.Errorf("name is empty")
	}

	if length := utf8.RuneCountInString(name); length > editorutils.MaxNameLength {
		return fmt.Errorf("name length (%d) exceeds maximum (%d)", length, editorutils.MaxNameLength)
	}

	return nil
}

// ValidateEmail validates an email address. Empty email is allowed.
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}

	// Байтовая длина намеренно: 254 — это предел адреса в октетах,
	// а не в символах.
	if len(email) > editorutils.MaxEmailLength {
		return fmt.Errorf("email length (%d) exceeds maximum (%d)", len(email), editorutils.MaxEmailLength)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}

	// mail.ParseAddress accepts display names ("John <a@b>"); the form
	// stores the bare address only.
	if addr.Address != email {
		return fmt.Errorf("email must be a bare address without display name")
	}

	return nil
}

// ValidatePhone validates a phone number. Empty phone is allowed.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}

	if length := utf8.RuneCountInString(phone); length < editorutils.MinPhoneLength {
		return fmt.Errorf("phone length (%d) is less than minimum (%d)", length, editorutils.MinPhoneLength)
	}

	if length := utf8.RuneCountInString(phone); length > editorutils.MaxPhoneLength {
		return fmt.Errorf("phone length (%d) exceeds maximum (%d)", length, editorutils.MaxPhoneLength)
	}

	for _, r := range phone {
		if r >= '0' && r <= '9' {
			continue
		}
		switch r {
		case '+', '-', ' ', '(', ')':
			continue
		}
		return fmt.Errorf("phone contains invalid character %q", r)
	}

	return nil
}

// ValidateGroup checks that the group is one of the known groups.
func ValidateGroup(group string) error {
	for _, g := range models.Groups {
		if group == g {
			return nil
		}
	}
	return fmt.Errorf("unknown group %q", group)
}

// ValidateFavorite checks the snapshot encoding of the favorite flag.
func ValidateFavorite(value string) error {
	if value != "true" && value != "false" {
		return fmt.Errorf("favorite must be %q or %q, got %q", "true", "false", value)
	}
	return nil
}
