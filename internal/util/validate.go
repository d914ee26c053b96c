package util

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// validLabelChars matches only alphanumeric characters and hyphens.
var validLabelChars = regexp.MustCompile(`^[a-zA-Z0-9\-]+$`)

// ValidateDomainName checks that a domain name is a dotted sequence of
// RFC 1123 labels:
//   - At least two labels (e.g. example.se)
//   - Each label 1-63 characters of a-z, A-Z, 0-9 and hyphens
//   - No label starts or ends with a hyphen
//   - At most 253 characters in total
//
// Internationalised labels (exämple.se) are checked in their punycode
// form, so length limits apply to what goes on the wire.
func ValidateDomainName(name string) error {
	labels := strings.Split(name, ".")
	if len(labels) < 2 {
		return fmt.Errorf("domain name %q must contain at least one period", name)
	}
	total := len(labels) - 1
	for _, label := range labels {
		ascii, err := validateLabel(label)
		if err != nil {
			return fmt.Errorf("domain name %q: %w", name, err)
		}
		total += len(ascii)
	}
	if total > 253 {
		return fmt.Errorf("domain name must be at most 253 characters, got %d", total)
	}
	return nil
}

// ValidateSubdomainLabel checks a single subdomain label. The Loopia
// wildcard "*" and the apex marker "@" are accepted as-is.
func ValidateSubdomainLabel(label string) error {
	if label == "*" || label == "@" {
		return nil
	}
	_, err := validateLabel(label)
	return err
}

// validateLabel checks one label and returns its ASCII form.
func validateLabel(label string) (string, error) {
	if label == "" {
		return "", fmt.Errorf("label must not be empty")
	}
	ascii := label
	if !isASCII(label) {
		var err error
		ascii, err = idna.Lookup.ToASCII(label)
		if err != nil {
			return "", fmt.Errorf("label %q is not a valid internationalised name: %w", label, err)
		}
	}
	if len(ascii) > 63 {
		return "", fmt.Errorf("label %q must be at most 63 characters, got %d", label, len(ascii))
	}
	if !validLabelChars.MatchString(ascii) {
		return "", fmt.Errorf("label %q contains invalid characters (only letters, digits and hyphens are allowed)", label)
	}
	if ascii[0] == '-' || ascii[len(ascii)-1] == '-' {
		return "", fmt.Errorf("label %q must not start or end with a hyphen", label)
	}
	return ascii, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
