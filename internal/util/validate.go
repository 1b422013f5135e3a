package util

import (
	"fmt"
	"regexp"
	"strings"
)

// validDomainChars matches only alphanumeric characters, hyphens, and periods.
var validDomainChars = regexp.MustCompile(`^[a-zA-Z0-9.\-]+$`)

// validMailboxChars matches the panel's mailbox naming rules: lowercase
// letters, digits, and underscores.
var validMailboxChars = regexp.MustCompile(`^[a-z0-9_]+$`)

// ValidateDomainName checks that a domain conforms to RFC 1123 hostname
// rules before it is sent to the panel:
//   - At least 2 characters
//   - Only alphanumeric characters (a-z, A-Z, 0-9), hyphens (-), and periods (.)
//   - First character must be alphanumeric
//   - Last character must not be a hyphen or period
func ValidateDomainName(name string) error {
	if len(name) < 2 {
		return fmt.Errorf("domain name must be at least 2 characters, got %d", len(name))
	}

	if !validDomainChars.MatchString(name) {
		return fmt.Errorf("domain name %q contains invalid characters (only a-z, A-Z, 0-9, hyphens, and periods are allowed)", name)
	}

	first := name[0]
	if !isAlphanumeric(first) {
		return fmt.Errorf("domain name must start with an alphanumeric character, got %q", string(first))
	}

	last := name[len(name)-1]
	if last == '-' || last == '.' {
		return fmt.Errorf("domain name must not end with a hyphen or period, got %q", string(last))
	}

	return nil
}

// ValidateMailboxName checks a mailbox name against the panel's rules:
// nonempty, lowercase alphanumeric and underscores only.
func ValidateMailboxName(name string) error {
	if name == "" {
		return fmt.Errorf("mailbox name must not be empty")
	}
	if !validMailboxChars.MatchString(name) {
		return fmt.Errorf("mailbox name %q contains invalid characters (only a-z, 0-9, and underscores are allowed)", name)
	}
	return nil
}

// ValidateEmailAddress checks the shape of an address before the panel
// sees it: exactly one @ with a valid domain after it.
func ValidateEmailAddress(address string) error {
	local, domain, found := strings.Cut(address, "@")
	if !found || strings.Contains(domain, "@") {
		return fmt.Errorf("email address %q must contain exactly one @", address)
	}
	if local == "" {
		return fmt.Errorf("email address %q has an empty local part", address)
	}
	if err := ValidateDomainName(domain); err != nil {
		return fmt.Errorf("email address %q: %w", address, err)
	}
	return nil
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
