package ircmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquivalentSameType(t *testing.T) {
	a := NewQuit("goodbye")
	b := NewQuit("goodbye")
	assert.True(t, Equivalent(a, b))

	c := NewQuit("later")
	assert.False(t, Equivalent(a, c))
}

func TestEquivalentOtherCommandMatchesTyped(t *testing.T) {
	typed := NewPing("token123")
	other := NewOtherCommand("PING", "token123")
	assert.True(t, Equivalent(typed, other))
	assert.True(t, Equivalent(other, typed))
}

func TestEquivalentOtherCommandVerbMismatch(t *testing.T) {
	typed := NewPing("token123")
	other := NewOtherCommand("PONG", "token123")
	assert.False(t, Equivalent(typed, other))
}

func TestEquivalentOtherCommandArgMismatch(t *testing.T) {
	typed := NewPing("token123")
	other := NewOtherCommand("PING", "different")
	assert.False(t, Equivalent(typed, other))
}

func TestEquivalentOtherNumericMatchesTyped(t *testing.T) {
	typed := NewNumeric(1, "alice", "Welcome")
	other := NewOtherNumeric(1, "alice", "Welcome")
	assert.True(t, Equivalent(typed, other))
	assert.True(t, Equivalent(other, typed))
}

func TestEquivalentOtherNumericCodeMismatch(t *testing.T) {
	typed := NewNumeric(1, "alice", "Welcome")
	other := NewOtherNumeric(2, "alice", "Welcome")
	assert.False(t, Equivalent(typed, other))
}

func TestEquivalentUnrelatedTypesFalse(t *testing.T) {
	assert.False(t, Equivalent(NewQuit("x"), NewPing("x")))
}

func TestEquivalentNil(t *testing.T) {
	assert.True(t, Equivalent(nil, nil))
	assert.False(t, Equivalent(nil, NewQuit("x")))
}
