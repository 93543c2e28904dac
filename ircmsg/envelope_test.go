package ircmsg

import (
	"testing"

	"github.com/btnmasher/ircwire/ident"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageTagLastWins(t *testing.T) {
	a, err := ident.NewTag("a", "1")
	require.NoError(t, err)
	a2, err := ident.NewTag("a", "2")
	require.NoError(t, err)

	m := Message{Tags: []ident.Tag{a, a2}}

	v, ok := m.Tag("a")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = m.Tag("missing")
	assert.False(t, ok)
}

func TestMessageEqual(t *testing.T) {
	nick, err := ident.NewNickname("alice", uuid.New())
	require.NoError(t, err)

	a := Message{Origin: "alice!a@h", Command: NewNick(nick)}
	b := Message{Origin: "alice!a@h", Command: NewNick(nick)}
	assert.True(t, a.Equal(b))

	b.Origin = "bob!b@h"
	assert.False(t, a.Equal(b))
}

func TestMessageEqualDiffersOnCommand(t *testing.T) {
	a := Message{Command: NewQuit("bye")}
	b := Message{Command: NewQuit("later")}
	assert.False(t, a.Equal(b))
}
