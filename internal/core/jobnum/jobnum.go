// Package jobnum detects administrative job-number rows
//
// A job-number row carries a token like "JB12345": a short alphabetic
// prefix immediately followed by digits, standing on its own token
// boundary. Such rows are excluded from the dataset entirely when
// filtering is enabled, independent of whether they would parse
package jobnum

import (
	"fmt"
	"regexp"
)

// DefaultPrefix is the site-standard job-number prefix
const DefaultPrefix = "JB"

var prefixOK = regexp.MustCompile(`^[A-Za-z]+$`)

// Matcher reports whether raw text contains a job-number token
type Matcher struct {
	prefix string
	re     *regexp.Regexp
}

// New builds a Matcher for the default prefix
func New() *Matcher {
	m, err := NewWithPrefix(DefaultPrefix)
	if err != nil {
		panic(err) // DefaultPrefix is alphabetic
	}
	return m
}

// NewWithPrefix builds a Matcher for a custom alphabetic prefix.
// Matching is case-insensitive and bounded on both sides so the token
// is never found embedded inside a longer word
func NewWithPrefix(prefix string) (*Matcher, error) {
	if !prefixOK.MatchString(prefix) {
		return nil, fmt.Errorf("jobnum: prefix %q must be alphabetic", prefix)
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(prefix) + `[0-9]+\b`)
	if err != nil {
		return nil, err
	}
	return &Matcher{prefix: prefix, re: re}, nil
}

// Prefix returns the configured prefix
func (m *Matcher) Prefix() string { return m.prefix }

// Match reports whether raw contains a job-number token
func (m *Matcher) Match(raw string) bool { return m.re.MatchString(raw) }
