package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassthrough(t *testing.T) {
	s := New()
	assert.Equal(t, "raw\nwith\tcontrols", s.Sanitize("raw\nwith\tcontrols"))
}

func TestLinePolicyStripsLineBreaks(t *testing.T) {
	s := NewWithPolicy(PolicyLine)

	assert.Equal(t, "firstsecond", s.Sanitize("first\nsecond"))
	assert.Equal(t, "firstsecond", s.Sanitize("first\r\nsecond"))
	assert.Equal(t, "trailing", s.Sanitize("trailing\n"))
}

func TestLinePolicyHexEncodesControls(t *testing.T) {
	s := NewWithPolicy(PolicyLine)

	assert.Equal(t, "a<09>b", s.Sanitize("a\tb"))
	assert.Equal(t, "bell<07>", s.Sanitize("bell\a"))
}

func TestRawPolicyIsPassthrough(t *testing.T) {
	s := NewWithPolicy(PolicyRaw)
	assert.Equal(t, "a\nb\tc", s.Sanitize("a\nb\tc"))
}

func TestCleanInputReturnedUnchanged(t *testing.T) {
	s := NewWithPolicy(PolicyLine)
	input := "perfectly ordinary line with unicode: héllo"
	assert.Equal(t, input, s.Sanitize(input))
}

func TestWithRuleSpaceTransform(t *testing.T) {
	s := New().WithRule(FilterLineBreak, TransformSpace)
	assert.Equal(t, "one two", s.Sanitize("one\ntwo"))
}

func TestFirstMatchingRuleWins(t *testing.T) {
	// Line breaks are also control characters; the earlier rule decides
	s := New().
		WithRule(FilterLineBreak, TransformStrip).
		WithRule(FilterControl, TransformHexEncode)

	assert.Equal(t, "ab<09>c", s.Sanitize("a\nb\tc"))
}

func TestNonPrintableFilter(t *testing.T) {
	s := New().WithRule(FilterNonPrintable, TransformStrip)
	assert.Equal(t, "visible", s.Sanitize("visi​ble")) // Zero-width space removed
}

func TestMultiByteRunesSurvive(t *testing.T) {
	s := NewWithPolicy(PolicyLine)
	assert.Equal(t, "日本語テキスト", s.Sanitize("日本\n語テキスト"))
}

func TestEmptyString(t *testing.T) {
	s := NewWithPolicy(PolicyLine)
	assert.Empty(t, s.Sanitize(""))
}
