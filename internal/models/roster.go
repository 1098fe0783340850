package models

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Targets maps generated lure URLs to the recipient each was sent to.
// Iteration follows first-insertion order; rebinding a URL keeps its slot.
type Targets struct {
	urls *orderedmap.OrderedMap[string, string]
}

// NewTargets creates an empty roster.
func NewTargets() *Targets {
	return &Targets{urls: orderedmap.New[string, string]()}
}

// Set binds url to email, replacing any previous binding.
func (t *Targets) Set(url, email string) {
	t.urls.Set(url, email)
}

// Get returns the email bound to exactly url.
func (t *Targets) Get(url string) (string, bool) {
	if t == nil {
		return "", false
	}
	return t.urls.Get(url)
}

// Len returns the number of distinct URLs.
func (t *Targets) Len() int {
	if t == nil {
		return 0
	}
	return t.urls.Len()
}

// Match returns the email of the first roster URL contained in eventURL.
// Matching is case-sensitive.
func (t *Targets) Match(eventURL string) (string, bool) {
	if t == nil {
		return "", false
	}
	for pair := t.urls.Oldest(); pair != nil; pair = pair.Next() {
		if strings.Contains(eventURL, pair.Key) {
			return pair.Value, true
		}
	}
	return "", false
}

// URLs returns the roster URLs in iteration order.
func (t *Targets) URLs() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, t.urls.Len())
	for pair := t.urls.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Identity is an email address with its display name.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Identities maps email addresses to display names in supplement order.
type Identities struct {
	names *orderedmap.OrderedMap[string, string]
}

// NewIdentities creates an empty identity supplement.
func NewIdentities() *Identities {
	return &Identities{names: orderedmap.New[string, string]()}
}

// Set binds email to name, replacing any previous name.
func (s *Identities) Set(email, name string) {
	s.names.Set(email, name)
}

// Get returns the display name for email.
func (s *Identities) Get(email string) (string, bool) {
	if s == nil {
		return "", false
	}
	return s.names.Get(email)
}

// Len returns the number of distinct emails.
func (s *Identities) Len() int {
	if s == nil {
		return 0
	}
	return s.names.Len()
}

// List returns the identities in iteration order.
func (s *Identities) List() []Identity {
	if s == nil {
		return nil
	}
	out := make([]Identity, 0, s.names.Len())
	for pair := s.names.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Identity{Email: pair.Key, Name: pair.Value})
	}
	return out
}
