package utils

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	jsEventRegex = regexp.MustCompile(`on\w+="[^"]*"`)
	nameRegex    = regexp.MustCompile(`[0-9!@#$%^&*(),.?":{}|<>]`)

	xssPatterns = map[*regexp.Regexp]string{
		regexp.MustCompile(`(?i)<script.*>`):       "XSS detected: Script tag found",
		regexp.MustCompile(`(?i)javascript:`):      "XSS detected: JavaScript protocol found",
		regexp.MustCompile(`(?i)onerror=`):         "XSS detected: onerror event handler found",
		regexp.MustCompile(`(?i)onload=`):          "XSS detected: onload event handler found",
		regexp.MustCompile(`(?i)document\.cookie`): "XSS detected: document.cookie access found",
	}
)

// SanitizeString escapes HTML and strips tags and inline handlers
func SanitizeString(input string) string {
	sanitized := html.EscapeString(input)
	sanitized = htmlTagRegex.ReplaceAllString(sanitized, "")
	return jsEventRegex.ReplaceAllString(sanitized, "")
}

// ValidateXSS checks for common XSS attack patterns
func ValidateXSS(input string) (bool, string) {
	for pattern, message := range xssPatterns {
		if pattern.MatchString(input) {
			return false, message
		}
	}
	return true, ""
}

// ValidateEmail checks if the email is valid and safe
func ValidateEmail(email string) (bool, string) {
	if valid, msg := ValidateXSS(email); !valid {
		return false, "Email: " + msg
	}
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return false, "Invalid email format. Please enter a valid email address"
	}
	return true, ""
}

// FormatPhoneNumber normalizes a Ghanaian number to +233XXXXXXXXX
func FormatPhoneNumber(phone string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	switch {
	case strings.HasPrefix(digits, "233"):
		digits = digits[3:]
	case strings.HasPrefix(digits, "0"):
		digits = digits[1:]
	}

	if len(digits) != 9 {
		return "", fmt.Errorf("phone number must have 9 digits after the country code")
	}
	return "+233" + digits, nil
}

// ValidatePhone returns the normalized number when valid. Empty is allowed.
func ValidatePhone(phone string) (bool, string) {
	if strings.TrimSpace(phone) == "" {
		return true, ""
	}
	formatted, err := FormatPhoneNumber(phone)
	if err != nil {
		return false, err.Error()
	}
	return true, formatted
}

// ValidateName checks if the name is valid and safe
func ValidateName(name string) (bool, string) {
	if name == "" {
		return true, "" // Name is optional
	}
	if valid, msg := ValidateXSS(name); !valid {
		return false, "Name: " + msg
	}
	if len(strings.TrimSpace(name)) < 2 {
		return false, "Name must be at least 2 characters long"
	}
	if nameRegex.MatchString(name) {
		return false, "Name cannot contain numbers or special characters"
	}
	return true, ""
}

// ValidateStringLength validates string length
func ValidateStringLength(str string, min, max int) error {
	length := len([]rune(strings.TrimSpace(str)))
	if length < min {
		return fmt.Errorf("must be at least %d characters long", min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("must not exceed %d characters", max)
	}
	return nil
}

// IsHTTPURL reports whether raw is an absolute http(s) URL
func IsHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
