package bank

import (
	"fmt"
	"strings"
)

// Registry is an immutable, ordered collection of bank profiles. Iteration
// order matters: detection returns the first matching profile.
type Registry struct {
	profiles []*Profile
}

// NewRegistry validates each profile and returns a registry over them.
// A profile whose field list disagrees with its transaction pattern's
// capture groups is rejected here rather than misbehaving at parse time.
func NewRegistry(profiles ...*Profile) (*Registry, error) {
	seen := make(map[string]bool)
	for _, p := range profiles {
		if err := p.validate(); err != nil {
			return nil, err
		}
		key := strings.ToUpper(p.Key)
		if seen[key] {
			return nil, fmt.Errorf("duplicate profile key %q", p.Key)
		}
		seen[key] = true
	}
	return &Registry{profiles: profiles}, nil
}

// Profiles returns the registered profiles in registry order.
func (r *Registry) Profiles() []*Profile {
	return r.profiles
}

// Keys returns the profile keys in registry order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.profiles))
	for i, p := range r.profiles {
		keys[i] = p.Key
	}
	return keys
}

// Lookup returns the profile with the given key (case-insensitive).
func (r *Registry) Lookup(key string) (*Profile, bool) {
	for _, p := range r.profiles {
		if strings.EqualFold(p.Key, key) {
			return p, true
		}
	}
	return nil, false
}

// Detect identifies the bank that issued a statement from one page's text.
// It first looks for a profile's display name as a case-insensitive
// substring (more reliable when present), then falls back to matching each
// profile's header pattern line by line, the same way the header locator
// does. Returns nil if neither stage matches.
func (r *Registry) Detect(pageText string) *Profile {
	lower := strings.ToLower(pageText)
	for _, p := range r.profiles {
		if strings.Contains(lower, strings.ToLower(p.Name)) {
			return p
		}
	}

	lines := strings.Split(pageText, "\n")
	for _, p := range r.profiles {
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if trimmed != "" && p.Header.MatchString(trimmed) {
				return p
			}
		}
	}
	return nil
}
