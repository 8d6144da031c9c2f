package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// NIP validation (civil servant employee number, 18 digits)
func IsValidNIP(nip string) bool {
	return len(nip) == 18 && IsNumeric(nip)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Legacy izin rows store dates as "D/M/YYYY" with no zero padding.
var izinDateRegex = regexp.MustCompile(`^[0-9]{1,2}/[0-9]{1,2}/[0-9]{4}$`)

// ParseLegacyDate parses a "D/M/YYYY" date string into a calendar day.
// Returns false for anything malformed so dirty historical rows can be
// skipped instead of failing a whole aggregation.
func ParseLegacyDate(dateStr string) (time.Time, bool) {
	if !izinDateRegex.MatchString(dateStr) {
		return time.Time{}, false
	}
	t, err := time.Parse("2/1/2006", dateStr)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
