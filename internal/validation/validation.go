// Package validation provides input validation and URL normalization utilities.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateName checks that a display name is present.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("Name is required")
	}
	return nil
}

// ValidateEmail checks basic email format.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("Please include a valid email")
	}
	if len(email) > 254 {
		return fmt.Errorf("Please include a valid email")
	}
	return nil
}

// ValidatePassword checks the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("Please enter a password with 6 or more characters")
	}
	if len(password) > 128 {
		return fmt.Errorf("Password must not exceed 128 characters")
	}
	return nil
}

// NormalizeURL canonicalizes a URL to an absolute HTTPS form: a missing
// scheme becomes https, http is upgraded to https, scheme and host are
// lowercased, and a bare trailing slash is dropped. Empty input stays empty;
// input that cannot be parsed is returned trimmed but otherwise untouched.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	withScheme := trimmed
	if !strings.Contains(withScheme, "://") {
		withScheme = "https://" + withScheme
	}

	parsed, err := url.Parse(withScheme)
	if err != nil || parsed.Host == "" {
		return trimmed
	}

	parsed.Scheme = strings.ToLower(parsed.Scheme)
	if parsed.Scheme == "http" {
		parsed.Scheme = "https"
	}
	parsed.Host = strings.ToLower(parsed.Host)
	if parsed.Path == "/" && parsed.RawQuery == "" && parsed.Fragment == "" {
		parsed.Path = ""
	}

	return parsed.String()
}

// NormalizeSkills flattens a skills payload, which may arrive as a single
// string or a list of strings, into the comma-joined storage form.
func NormalizeSkills(values []string) string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, ",")
}
