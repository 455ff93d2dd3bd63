// Package validators implements the field-format checks and the store-backed
// business-rule checks shared by every create/update path. Format validators
// are pure; business validators only read through the Store capability.
package validators

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/majoduan/poa-backend/internal/apperrors"
)

const (
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8

	minUsernameLength = 3
	maxUsernameLength = 100

	minYear = 1900
	maxYear = 2100
)

var (
	// Letters only, including the extended Latin accented range.
	nameWordPattern = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ]+$`)

	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9\sñÑáéíóúÁÉÍÓÚüÜ]+$`)

	// local-part@domain.tld shape, no whitespace, no double @.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	yearPattern = regexp.MustCompile(`^\d{4}$`)

	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	digitPattern     = regexp.MustCompile(`\d`)
)

// ValidateDirectorName checks that a project director's name has between 2
// and 8 words, each made of letters only (accents allowed). Empty input is
// allowed: the field is optional and normalizes to "".
func ValidateDirectorName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}

	words := strings.Fields(name)
	if len(words) < 2 || len(words) > 8 {
		return "", apperrors.NewFormatInvalid("director name must contain between 2 and 8 words")
	}

	for _, word := range words {
		if !nameWordPattern.MatchString(word) {
			return "", apperrors.NewFormatInvalid("director name may only contain letters (accents allowed)")
		}
	}

	return name, nil
}

// ValidatePasswordStrength checks the minimal complexity rule:
// at least 8 characters, one uppercase letter and one digit.
func ValidatePasswordStrength(password string) error {
	if len(password) < MinPasswordLength {
		return apperrors.NewFormatInvalid("password must be at least 8 characters long")
	}
	if !uppercasePattern.MatchString(password) {
		return apperrors.NewFormatInvalid("password must contain at least one uppercase letter")
	}
	if !digitPattern.MatchString(password) {
		return apperrors.NewFormatInvalid("password must contain at least one digit")
	}
	return nil
}

// ValidateUsername trims and checks a display username: 3-100 characters,
// alphanumeric plus accented letters and spaces.
func ValidateUsername(username string) (string, error) {
	username = strings.TrimSpace(username)

	if len([]rune(username)) < minUsernameLength {
		return "", apperrors.NewFormatInvalid("username must be at least 3 characters long")
	}
	if len([]rune(username)) > maxUsernameLength {
		return "", apperrors.NewFormatInvalid("username cannot exceed 100 characters")
	}
	if !usernamePattern.MatchString(username) {
		return "", apperrors.NewFormatInvalid("username may only contain letters, numbers and spaces")
	}

	return username, nil
}

// ValidateEmailFormat trims, lowercases and shape-checks an email address.
// Emails are normalized to lowercase so uniqueness checks are case-insensitive.
func ValidateEmailFormat(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !emailPattern.MatchString(email) {
		return "", apperrors.NewFormatInvalid("please enter a valid email address")
	}

	return email, nil
}

// ValidateYearFormat checks a 4-digit year string within [1900, 2100].
func ValidateYearFormat(year string) (string, error) {
	if !yearPattern.MatchString(year) {
		return "", apperrors.NewFormatInvalid("year must have exactly 4 digits")
	}

	value, err := strconv.Atoi(year)
	if err != nil {
		return "", apperrors.NewFormatInvalid("year must have exactly 4 digits")
	}
	if value < minYear || value > maxYear {
		return "", apperrors.NewFormatInvalid("year must be between 1900 and 2100")
	}

	return year, nil
}

// ValidateDateRange checks the coherence of a primary date range and an
// optional extension range appended after it:
//
//   - end >= start
//   - extension start >= end
//   - extension end > extension start
//
// Nil fields skip the checks they participate in.
func ValidateDateRange(start, end, extensionStart, extensionEnd *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return apperrors.NewFormatInvalid("end date cannot be earlier than start date")
	}

	if extensionStart != nil && end != nil && extensionStart.Before(*end) {
		return apperrors.NewFormatInvalid("extension start date must be on or after the project end date")
	}

	if extensionEnd != nil && extensionStart != nil && !extensionEnd.After(*extensionStart) {
		return apperrors.NewFormatInvalid("extension end date must be after the extension start date")
	}

	return nil
}

// ValidateProjectDuration checks that the span between start and end, in
// whole months with a remainder over 15 days counting as one more month,
// does not exceed maxMonths. Nil dates skip the check.
func ValidateProjectDuration(start, end *time.Time, maxMonths int) error {
	if start == nil || end == nil {
		return nil
	}

	duration := MonthSpan(*start, *end)
	if duration > maxMonths {
		return apperrors.NewLimitExceeded(fmt.Sprintf(
			"project duration (%d months) exceeds the maximum duration (%d months) allowed for this project type",
			duration, maxMonths))
	}

	return nil
}

// ValidatePeriodDates requires a strictly increasing period range. Unlike
// ValidateDateRange, equal start and end dates are rejected.
func ValidatePeriodDates(start, end time.Time) error {
	if !end.After(start) {
		return apperrors.NewFormatInvalid("period end date must be after the period start date")
	}
	return nil
}

// ValidateCodeFormat trims an entity code and checks its length bounds.
func ValidateCodeFormat(code string, minLength, maxLength int) (string, error) {
	code = strings.TrimSpace(code)

	if len(code) < minLength {
		return "", apperrors.NewFormatInvalid(fmt.Sprintf("code must be at least %d characters long", minLength))
	}
	if len(code) > maxLength {
		return "", apperrors.NewFormatInvalid(fmt.Sprintf("code cannot exceed %d characters", maxLength))
	}

	return code, nil
}

// ValidateBudgetRange checks that a budget amount is positive and, when a
// maximum is supplied, does not exceed it. A nil amount skips the check.
func ValidateBudgetRange(amount, maxAmount *float64) error {
	if amount == nil {
		return nil
	}

	if *amount <= 0 {
		return apperrors.NewFormatInvalid("budget must be greater than 0")
	}

	if maxAmount != nil && *amount > *maxAmount {
		return apperrors.NewLimitExceeded(fmt.Sprintf(
			"budget (%.2f) exceeds the maximum budget (%.2f) allowed for this type",
			*amount, *maxAmount))
	}

	return nil
}

// MonthSpan returns the span between start and end in whole months,
// counting a remainder of more than 15 days as one additional month.
func MonthSpan(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months > 0 && start.AddDate(0, months, 0).After(end) {
		months--
	}

	remainder := start.AddDate(0, months, 0)
	days := int(end.Sub(remainder).Hours() / 24)
	if days > 15 {
		months++
	}

	return months
}
