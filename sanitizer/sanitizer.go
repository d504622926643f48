// Package sanitizer provides a small composable interface for cleaning
// strings before they enter a log line, using bitwise filter flags and
// transforms. The zero rule set is a passthrough.
package sanitizer

import (
	"encoding/hex"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching
const (
	FilterLineBreak    uint64 = 1 << iota // Matches '\n' and '\r'
	FilterControl                         // Matches control characters (unicode.IsControl)
	FilterNonPrintable                    // Matches runes not classified as printable by strconv.IsPrint
)

// Transform flags for matched characters
const (
	TransformStrip     uint64 = 1 << iota // Removes the character
	TransformSpace                        // Replaces the character with a single space
	TransformHexEncode                    // Encodes the character's UTF-8 bytes as "<XXYY>"
)

// PolicyPreset names a pre-configured rule set
type PolicyPreset string

const (
	PolicyRaw  PolicyPreset = "raw"  // Passthrough
	PolicyLine PolicyPreset = "line" // One-line-per-record output: line breaks removed, other controls hex-encoded
)

// rule pairs a filter with the transform applied to matching runes
type rule struct {
	filter    uint64
	transform uint64
}

var policyRules = map[PolicyPreset][]rule{
	PolicyRaw: {},
	PolicyLine: {
		{filter: FilterLineBreak, transform: TransformStrip},
		{filter: FilterControl, transform: TransformHexEncode},
	},
}

var filterCheckers = map[uint64]func(rune) bool{
	FilterLineBreak: func(r rune) bool { return r == '\n' || r == '\r' },
	FilterControl:   unicode.IsControl,
	FilterNonPrintable: func(r rune) bool {
		return !strconv.IsPrint(r)
	},
}

// Sanitizer applies an ordered rule list to input strings.
// Instances are immutable after construction and safe for concurrent use.
type Sanitizer struct {
	rules []rule
}

// New creates a Sanitizer with no rules (passthrough)
func New() *Sanitizer {
	return &Sanitizer{}
}

// NewWithPolicy creates a Sanitizer pre-configured with a named policy
func NewWithPolicy(policy PolicyPreset) *Sanitizer {
	return &Sanitizer{rules: policyRules[policy]}
}

// WithRule appends a filter/transform rule and returns the sanitizer for chaining
func (s *Sanitizer) WithRule(filter, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// matches reports whether any flag set in filter matches r
func matches(filter uint64, r rune) bool {
	for flag, check := range filterCheckers {
		if filter&flag != 0 && check(r) {
			return true
		}
	}
	return false
}

// Sanitize returns str with every matching rune transformed.
// The common case of no matches returns the input without allocating.
func (s *Sanitizer) Sanitize(str string) string {
	if len(s.rules) == 0 {
		return str
	}

	dirty := false
	for _, r := range str {
		for _, rl := range s.rules {
			if matches(rl.filter, r) {
				dirty = true
				break
			}
		}
		if dirty {
			break
		}
	}
	if !dirty {
		return str
	}

	buf := make([]byte, 0, len(str))
	for _, r := range str {
		transformed := false
		for _, rl := range s.rules {
			if !matches(rl.filter, r) {
				continue
			}
			switch {
			case rl.transform&TransformStrip != 0:
				// Dropped
			case rl.transform&TransformSpace != 0:
				buf = append(buf, ' ')
			case rl.transform&TransformHexEncode != 0:
				var enc [utf8.UTFMax]byte
				n := utf8.EncodeRune(enc[:], r)
				buf = append(buf, '<')
				buf = hex.AppendEncode(buf, enc[:n])
				buf = append(buf, '>')
			}
			transformed = true
			break // First matching rule wins
		}
		if !transformed {
			buf = utf8.AppendRune(buf, r)
		}
	}
	return string(buf)
}
