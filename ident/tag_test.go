package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagValueEscaping(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"semicolon", "a;b"},
		{"space", "a b"},
		{"backslash", `a\b`},
		{"cr", "a\rb"},
		{"lf", "a\nb"},
		{"all together", "a;b c\\d\re\nf"},
		{"plain", "no-escapes-needed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire := EscapeTagValue(tt.value)
			assert.Equal(t, tt.value, UnescapeTagValue(wire))
		})
	}
}

func TestUnescapeTagValueTreatsUnknownEscapeAsLiteral(t *testing.T) {
	assert.Equal(t, "x", UnescapeTagValue(`\x`))
}

func TestTagRenderEmptyValue(t *testing.T) {
	tag, err := NewTag("time", "")
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("time", tag.Render())
}

func TestNewTagValidatesKeyGrammar(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{"simple", "time", nil},
		{"vendor prefixed", "+example.com/foo", nil},
		{"namespaced", "example.com/bar", nil},
		{"empty", "", ErrInvalidTag},
		{"bare plus", "+", ErrInvalidTag},
		{"bare namespace", "example.com/", ErrInvalidTag},
		{"invalid char", "ti$me", ErrInvalidTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTag(tt.key, "v")
			assert.Equal(t, tt.wantErr, err)
		})
	}
}
