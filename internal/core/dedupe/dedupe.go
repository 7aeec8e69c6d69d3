// Package dedupe prunes rows that repeat an already-seen pole number
//
// First occurrence wins: the earliest row (in original input order)
// bearing a given normalized pole number is kept and every later row
// with the same key is dropped. Rows without a pole number have no key
// and are never dropped
package dedupe

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Key is a normalized pole number used for uniqueness checks
type Key string

// pool of fresh transformer chains; transformers are not concurrency safe
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(), // unicode case folding
			width.Fold,   // map fullwidth forms to ASCII
		)
	},
}

// KeyOf derives the deduplication key for a pole number.
// ok is false when the pole number is absent or whitespace-only, in
// which case the row is exempt from deduplication
func KeyOf(poleNumber string) (Key, bool) {
	s := strings.TrimSpace(poleNumber)
	if s == "" {
		return "", false
	}

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = strings.ToLower(s)
	}

	return Key(strings.Join(strings.Fields(ns), " ")), true
}

// Set tracks pole numbers seen within one pipeline invocation.
// The zero value is not usable; call NewSet. A Set is not safe for
// concurrent use and must not outlive its invocation
type Set struct {
	seen map[Key]struct{}
}

// NewSet returns an empty Set
func NewSet() *Set { return &Set{seen: make(map[Key]struct{})} }

// Admit decides whether a row with the given pole number is kept.
// It returns true for keyless rows and for the first occurrence of each
// key, false for every repeat
func (s *Set) Admit(poleNumber string) bool {
	k, ok := KeyOf(poleNumber)
	if !ok {
		return true
	}
	if _, dup := s.seen[k]; dup {
		return false
	}
	s.seen[k] = struct{}{}
	return true
}

// Len returns the number of distinct keys admitted so far
func (s *Set) Len() int { return len(s.seen) }
