package models

import (
	"errors"
	"regexp"
	"strings"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	slugStripChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// ErrInvalidSlug is returned for slugs outside [a-z0-9-].
var ErrInvalidSlug = errors.New("slug must contain only lowercase letters, digits and hyphens")

// ValidateSlug checks the canonical slug format.
func ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return ErrInvalidSlug
	}
	return nil
}

// Slugify derives a slug from a display name, used when the form leaves the
// slug field empty.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStripChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
