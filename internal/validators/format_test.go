package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/majoduan/poa-backend/internal/apperrors"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func TestValidateDirectorName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		valid    bool
	}{
		{name: "Two words", input: "María González", expected: "María González", valid: true},
		{name: "Eight words", input: "Ana Belén De La Cruz Pérez Del Valle", expected: "Ana Belén De La Cruz Pérez Del Valle", valid: true},
		{name: "Trims surrounding whitespace", input: "  Juan Pérez  ", expected: "Juan Pérez", valid: true},
		{name: "Empty is allowed", input: "", expected: "", valid: true},
		{name: "Whitespace only is allowed", input: "   ", expected: "", valid: true},
		{name: "One word", input: "Juan", valid: false},
		{name: "Nine words", input: "a b c d e f g h i", valid: false},
		{name: "Contains digit", input: "Juan P3rez", valid: false},
		{name: "Contains symbol", input: "Juan Pérez-Gómez", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ValidateDirectorName(tc.input)
			if tc.valid {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, result)
			} else {
				assert.Error(t, err)
				kind, ok := apperrors.KindOf(err)
				assert.True(t, ok)
				assert.Equal(t, apperrors.FormatInvalid, kind)
			}
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "Uppercase and digit", password: "Password123", valid: true},
		{name: "No uppercase", password: "password123", valid: false},
		{name: "No digit", password: "PASSWORD", valid: false},
		{name: "Too short", password: "Pass1", valid: false},
		{name: "Exactly eight characters", password: "Abcdefg1", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tc.password)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		valid    bool
	}{
		{name: "Accented letters and spaces", input: "José María 42", expected: "José María 42", valid: true},
		{name: "Trimmed", input: "  abc  ", expected: "abc", valid: true},
		{name: "Too short", input: "ab", valid: false},
		{name: "Too long", input: stringOfLength(101), valid: false},
		{name: "Symbol rejected", input: "user@name", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ValidateUsername(tc.input)
			if tc.valid {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, result)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func stringOfLength(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}

func TestValidateEmailFormat(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		valid    bool
	}{
		{name: "Simple address", input: "user@example.com", expected: "user@example.com", valid: true},
		{name: "Lowercased", input: "User@Example.COM", expected: "user@example.com", valid: true},
		{name: "No at sign", input: "userexample.com", valid: false},
		{name: "Double at sign", input: "user@@example.com", valid: false},
		{name: "No dot in domain", input: "user@example", valid: false},
		{name: "Contains whitespace", input: "us er@example.com", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ValidateEmailFormat(tc.input)
			if tc.valid {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, result)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateYearFormat(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "Valid year", input: "2024", valid: true},
		{name: "Lower bound", input: "1900", valid: true},
		{name: "Upper bound", input: "2100", valid: true},
		{name: "Below range", input: "1899", valid: false},
		{name: "Above range", input: "2101", valid: false},
		{name: "Three digits", input: "999", valid: false},
		{name: "Five digits", input: "20240", valid: false},
		{name: "Not numeric", input: "20a4", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ValidateYearFormat(tc.input)
			if tc.valid {
				assert.NoError(t, err)
				assert.Equal(t, tc.input, result)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateDateRange(t *testing.T) {
	t.Run("End after start accepted", func(t *testing.T) {
		err := ValidateDateRange(datePtr(2024, 1, 1), datePtr(2024, 6, 1), nil, nil)
		assert.NoError(t, err)
	})

	t.Run("End equal to start accepted", func(t *testing.T) {
		err := ValidateDateRange(datePtr(2024, 1, 1), datePtr(2024, 1, 1), nil, nil)
		assert.NoError(t, err)
	})

	t.Run("End before start rejected", func(t *testing.T) {
		err := ValidateDateRange(datePtr(2024, 6, 1), datePtr(2024, 1, 1), nil, nil)
		assert.Error(t, err)
	})

	t.Run("Extension start before end rejected", func(t *testing.T) {
		err := ValidateDateRange(datePtr(2024, 1, 1), datePtr(2024, 6, 1), datePtr(2024, 5, 1), datePtr(2024, 8, 1))
		assert.Error(t, err)
	})

	t.Run("Extension end equal to extension start rejected", func(t *testing.T) {
		err := ValidateDateRange(datePtr(2024, 1, 1), datePtr(2024, 6, 1), datePtr(2024, 7, 1), datePtr(2024, 7, 1))
		assert.Error(t, err)
	})

	t.Run("Coherent extension accepted", func(t *testing.T) {
		err := ValidateDateRange(datePtr(2024, 1, 1), datePtr(2024, 6, 1), datePtr(2024, 6, 1), datePtr(2024, 9, 1))
		assert.NoError(t, err)
	})

	t.Run("Missing dates skip their checks", func(t *testing.T) {
		assert.NoError(t, ValidateDateRange(nil, nil, nil, nil))
		assert.NoError(t, ValidateDateRange(datePtr(2024, 1, 1), nil, nil, nil))
	})
}

func TestValidatePeriodDates(t *testing.T) {
	t.Run("Strictly increasing accepted", func(t *testing.T) {
		assert.NoError(t, ValidatePeriodDates(date(2024, 1, 1), date(2024, 12, 31)))
	})

	// Stricter than the general date-range check: equality is rejected here.
	t.Run("Equal dates rejected", func(t *testing.T) {
		assert.Error(t, ValidatePeriodDates(date(2024, 1, 1), date(2024, 1, 1)))
	})

	t.Run("End before start rejected", func(t *testing.T) {
		assert.Error(t, ValidatePeriodDates(date(2024, 12, 31), date(2024, 1, 1)))
	})
}

func TestMonthSpan(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{name: "Same day", start: date(2024, 1, 1), end: date(2024, 1, 1), expected: 0},
		{name: "Fifteen days round down", start: date(2024, 1, 1), end: date(2024, 1, 16), expected: 0},
		{name: "Nineteen days round up", start: date(2024, 1, 1), end: date(2024, 1, 20), expected: 1},
		{name: "Exactly one month", start: date(2024, 1, 1), end: date(2024, 2, 1), expected: 1},
		{name: "One month plus twenty days", start: date(2024, 1, 1), end: date(2024, 2, 21), expected: 2},
		{name: "Full year", start: date(2024, 1, 1), end: date(2025, 1, 1), expected: 12},
		{name: "Across year boundary", start: date(2024, 11, 15), end: date(2025, 2, 10), expected: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MonthSpan(tc.start, tc.end))
		})
	}
}

func TestValidateProjectDuration(t *testing.T) {
	t.Run("Twenty days fit one month", func(t *testing.T) {
		err := ValidateProjectDuration(datePtr(2024, 1, 1), datePtr(2024, 1, 20), 1)
		assert.NoError(t, err)
	})

	t.Run("Twenty days exceed zero months", func(t *testing.T) {
		err := ValidateProjectDuration(datePtr(2024, 1, 1), datePtr(2024, 1, 20), 0)
		assert.Error(t, err)
		kind, ok := apperrors.KindOf(err)
		assert.True(t, ok)
		assert.Equal(t, apperrors.LimitExceeded, kind)
	})

	t.Run("Year within twelve months", func(t *testing.T) {
		err := ValidateProjectDuration(datePtr(2024, 1, 1), datePtr(2024, 12, 31), 12)
		assert.NoError(t, err)
	})

	t.Run("Missing dates skip the check", func(t *testing.T) {
		assert.NoError(t, ValidateProjectDuration(nil, datePtr(2024, 1, 1), 0))
		assert.NoError(t, ValidateProjectDuration(datePtr(2024, 1, 1), nil, 0))
	})
}

func TestValidateCodeFormat(t *testing.T) {
	t.Run("Trimmed and accepted", func(t *testing.T) {
		code, err := ValidateCodeFormat("  POA-2024-001  ", 3, 50)
		assert.NoError(t, err)
		assert.Equal(t, "POA-2024-001", code)
	})

	t.Run("Too short", func(t *testing.T) {
		_, err := ValidateCodeFormat("ab", 3, 50)
		assert.Error(t, err)
	})

	t.Run("Too long", func(t *testing.T) {
		_, err := ValidateCodeFormat(stringOfLength(51), 3, 50)
		assert.Error(t, err)
	})
}

func TestValidateBudgetRange(t *testing.T) {
	budget := func(v float64) *float64 { return &v }

	testCases := []struct {
		name   string
		amount *float64
		max    *float64
		valid  bool
	}{
		{name: "Positive without max", amount: budget(100), max: nil, valid: true},
		{name: "Zero rejected", amount: budget(0), max: nil, valid: false},
		{name: "Negative rejected", amount: budget(-10), max: nil, valid: false},
		{name: "Over max rejected", amount: budget(100), max: budget(50), valid: false},
		{name: "Equal to max accepted", amount: budget(50), max: budget(50), valid: true},
		{name: "Nil amount skips", amount: nil, max: budget(50), valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBudgetRange(tc.amount, tc.max)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

// Validators hold no state: the same input always yields the same result.
func TestValidatorIdempotence(t *testing.T) {
	for i := 0; i < 3; i++ {
		_, err := ValidateDirectorName("Juan")
		assert.Error(t, err)

		assert.NoError(t, ValidatePasswordStrength("Password123"))

		email, err := ValidateEmailFormat("User@Example.com")
		assert.NoError(t, err)
		assert.Equal(t, "user@example.com", email)

		assert.Equal(t, 1, MonthSpan(date(2024, 1, 1), date(2024, 1, 20)))
	}
}
