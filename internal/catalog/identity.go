package catalog

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases s and collapses every run of non-alphanumeric characters
// into a single dash. Deterministic, so persisted completion state stays
// valid across reloads of identical data.
func Slug(s string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// ItemID derives the completion-tracking identity for an item name and a
// single requirement token. Items sharing a name but carrying different
// requirements get distinct identities; that is how stations with the same
// part lists track progress independently.
func ItemID(name, requirement string) string {
	if strings.TrimSpace(requirement) == "" {
		return Slug(name)
	}
	return Slug(name) + "-" + Slug(requirement)
}

// GroupID derives the collapse-tracking identity for a requirement group.
func GroupID(groupName string) string {
	return Slug(groupName)
}
