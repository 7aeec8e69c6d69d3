// Package splitter extracts the three marker fields from one raw string
//
// Expected shape
//
//	[marker name] <7-digit engine number> - <pole number>
//
// The 7-digit run is the only anchor. Hyphens inside the marker name are
// not delimiters; only the hyphen between the engine number and the pole
// number is significant. Rows that do not match keep all fields absent
package splitter

import (
	"regexp"
	"strings"
)

// pattern anchors on the fixed-width engine number, not on hyphens.
// The leading capture is non-greedy so the engine number binds to the
// leftmost 7-digit run that still lets the tail match
var pattern = regexp.MustCompile(`^(.*?)\s*([0-9]{7})\s*-\s*([0-9a-zA-Z\s-]+)$`)

// Fields is the outcome of splitting one raw marker string.
// An empty string means the field is absent; the three fields are either
// all present (marker name optionally absent) or all absent
type Fields struct {
	MarkerName   string
	EngineNumber string
	PoleNumber   string
}

// Parsed reports whether the row matched the expected shape
func (f Fields) Parsed() bool { return f.EngineNumber != "" }

// HasMarkerName reports whether a marker name preceded the engine number
func (f Fields) HasMarkerName() bool { return f.MarkerName != "" }

// Split splits one raw marker string into its fields.
// It is total: any input, including empty or whitespace-only text, yields
// a Fields value; failure to match is a normal outcome, not an error.
//
// For runs of 8+ digits the match is leftmost: the 7-digit window closest
// to the delimiter wins and leading digits join the marker name, e.g.
// "POLE TRANSFER 12345678 - 07613020" yields engine number "2345678"
// with "POLE TRANSFER 1" as the marker name
func Split(raw string) Fields {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Fields{}
	}

	m := pattern.FindStringSubmatch(raw)
	if m == nil {
		return Fields{}
	}

	pole := strings.TrimSpace(m[3])
	if pole == "" {
		// tail was pure whitespace; no partial extraction
		return Fields{}
	}

	return Fields{
		MarkerName:   strings.TrimSpace(m[1]),
		EngineNumber: m[2],
		PoleNumber:   pole,
	}
}
