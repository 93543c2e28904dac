package codec

import (
	"testing"

	"github.com/btnmasher/ircwire/ident"
	"github.com/btnmasher/ircwire/ircmsg"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustChannel(t *testing.T, raw string) ident.ChannelName {
	t.Helper()
	ch, err := ident.NewChannelName(raw)
	require.NoError(t, err)
	return ch
}

func mustNick(t *testing.T, name string, id uuid.UUID) ident.Nickname {
	t.Helper()
	n, err := ident.NewNickname(name, id)
	require.NoError(t, err)
	return n
}

func TestParsePrivMsgWithTag(t *testing.T) {
	line := "@time=2023-01-01T12:00:00Z :alice!alice@host PRIVMSG #general :Hello, world!"
	msg, err := Parse(line)
	require.NoError(t, err)

	assert.Equal(t, "alice!alice@host", msg.Origin)
	v, ok := msg.Tag("time")
	assert.True(t, ok)
	assert.Equal(t, "2023-01-01T12:00:00Z", v)

	priv, ok := msg.Command.(ircmsg.PrivMsgCommand)
	require.True(t, ok)
	assert.Equal(t, "Hello, world!", priv.Text)
	require.Len(t, priv.Recipients, 1)
	assert.Equal(t, "#general", priv.Recipients[0].String())
}

func TestNumericReplyCarriesTarget(t *testing.T) {
	line := ":server.example 001 alice :Welcome to the server"
	msg, err := Parse(line)
	require.NoError(t, err)

	assert.Equal(t, "server.example", msg.Origin)
	assert.Equal(t, "alice", msg.Target)

	num, ok := msg.Command.(ircmsg.NumericCommand)
	require.True(t, ok)
	assert.Equal(t, 1, num.Code)
	assert.Equal(t, []string{"Welcome to the server"}, num.Args)

	encoded, err := Encode(msg)
	require.NoError(t, err)
	assert.Equal(t, ":server.example 001 alice :Welcome to the server", encoded)
}

func TestJoinWithKeys(t *testing.T) {
	msg, err := Parse("JOIN #a,#b k1,k2")
	require.NoError(t, err)

	join, ok := msg.Command.(ircmsg.JoinCommand)
	require.True(t, ok)
	assert.Equal(t, []string{"k1", "k2"}, join.Keys)
	assert.Len(t, join.Channels, 2)

	j0, err := Parse("JOIN 0")
	require.NoError(t, err)
	_, ok = j0.Command.(ircmsg.Join0Command)
	assert.True(t, ok)

	empty, err := Encode(ircmsg.Message{Command: ircmsg.NewJoin(nil, nil)})
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}

func TestModeWithUnknownLetterDropped(t *testing.T) {
	msg, err := Parse("MODE #chan +iZ")
	require.NoError(t, err)

	// "i" is the only single-change mode letter and it isn't one of the
	// promoted pseudo-commands, so this stays a ChannelModeCommand.
	cmc, ok := msg.Command.(ircmsg.ChannelModeCommand)
	require.True(t, ok)
	require.Len(t, cmc.Add, 1)
	assert.Equal(t, byte('i'), cmc.Add[0].Letter)
	assert.Empty(t, cmc.Remove)
}

func TestModeBanPromotesToTypedCommand(t *testing.T) {
	msg, err := Parse("MODE #chan +b *!*@bad.host")
	require.NoError(t, err)

	ban, ok := msg.Command.(ircmsg.BanCommand)
	require.True(t, ok)
	assert.Equal(t, "#chan", ban.Channel.String())
	assert.Equal(t, "*!*@bad.host", ban.Mask)
}

func TestModeVoicePromotesWithNickname(t *testing.T) {
	id := uuid.New()
	nick := mustNick(t, "alice", id)
	line := "MODE #chan +v " + nick.Encode()

	msg, err := Parse(line)
	require.NoError(t, err)

	voice, ok := msg.Command.(ircmsg.VoiceCommand)
	require.True(t, ok)
	assert.True(t, voice.Nick.Equal(nick))
}

func TestModeCombinedOpVoiceAssignsParamsInOrder(t *testing.T) {
	id1, id2 := uuid.New(), uuid.New()
	nick1 := mustNick(t, "nick1", id1)
	nick2 := mustNick(t, "nick2", id2)
	line := "MODE #chan +ov " + nick1.Encode() + " " + nick2.Encode()

	msg, err := Parse(line)
	require.NoError(t, err)

	// Two changes in one line, so this stays the generic
	// ChannelModeCommand rather than promoting to a single named type.
	cmc, ok := msg.Command.(ircmsg.ChannelModeCommand)
	require.True(t, ok)
	require.Len(t, cmc.Add, 2)

	assert.Equal(t, byte('o'), cmc.Add[0].Letter)
	assert.Equal(t, nick1.Encode(), cmc.Add[0].Param)
	assert.Equal(t, byte('v'), cmc.Add[1].Letter)
	assert.Equal(t, nick2.Encode(), cmc.Add[1].Param)
}

func TestUserModeGetter(t *testing.T) {
	id := uuid.New()
	nick := mustNick(t, "bob", id)

	msg, err := Parse("MODE " + nick.Encode())
	require.NoError(t, err)

	_, ok := msg.Command.(ircmsg.ModeGetUserCommand)
	assert.True(t, ok)
}

func TestCTCPActionRoundTrip(t *testing.T) {
	id := uuid.New()
	nick := mustNick(t, "bob", id)
	recipient := ident.NewNickRecipient(nick)

	cmd := ircmsg.NewCTCP([]ident.Recipient{recipient}, "ACTION", "waves")
	msg := ircmsg.Message{Command: cmd}

	line, err := Encode(msg)
	require.NoError(t, err)

	parsed, err := Parse(line)
	require.NoError(t, err)

	got, ok := parsed.Command.(ircmsg.CTCPCommand)
	require.True(t, ok)
	assert.Equal(t, "ACTION", got.CTCPVerb)
	assert.Equal(t, "waves", got.Args)
}

func TestDCCSendRoundTrip(t *testing.T) {
	id := uuid.New()
	nick := mustNick(t, "bob", id)
	recipient := ident.NewNickRecipient(nick)

	cmd := ircmsg.NewDCCSend(recipient, "photo.png", "192.168.0.1", 1024, 2048)
	line, err := Encode(ircmsg.Message{Command: cmd})
	require.NoError(t, err)

	parsed, err := Parse(line)
	require.NoError(t, err)

	got, ok := parsed.Command.(ircmsg.DCCSendCommand)
	require.True(t, ok)
	assert.Equal(t, "photo.png", got.Args[0])
}

func TestKickBoundary(t *testing.T) {
	alice := mustNick(t, "alice", uuid.New())
	bob := mustNick(t, "bob", uuid.New())
	msg, err := Parse("KICK #a,#b " + alice.Encode() + "," + bob.Encode() + " :spamming")
	require.NoError(t, err)

	kick, ok := msg.Command.(ircmsg.KickCommand)
	require.True(t, ok)
	assert.Equal(t, "spamming", kick.Reason)
	assert.Len(t, kick.Channels, 2)
	assert.Len(t, kick.Nicks, 2)
}

func TestCapLSEmptyList(t *testing.T) {
	msg, err := Parse("CAP LS")
	require.NoError(t, err)

	cap, ok := msg.Command.(ircmsg.CapCommand)
	require.True(t, ok)
	assert.Equal(t, ircmsg.CapLS, cap.Sub)
	assert.Empty(t, cap.Capabilities)
}

func TestInvalidCapSubcommand(t *testing.T) {
	_, err := Parse("CAP BOGUS")
	assert.ErrorIs(t, err, ErrInvalidCapSubcommand)
}

func TestUnknownVerbBecomesOtherCommand(t *testing.T) {
	msg, err := Parse("FOOBAR a b c")
	require.NoError(t, err)

	other, ok := msg.Command.(ircmsg.OtherCommand)
	require.True(t, ok)
	assert.Equal(t, "FOOBAR", other.VerbText)
	assert.Equal(t, []string{"a", "b", "c"}, other.Args)
}

func TestArgumentCountMismatch(t *testing.T) {
	_, err := Parse("PRIVMSG #general")
	var argErr *ArgumentError
	assert.ErrorAs(t, err, &argErr)
	assert.Equal(t, "PRIVMSG", argErr.Verb)
}

func TestRoundTripProperty(t *testing.T) {
	id := uuid.New()
	nick := mustNick(t, "alice", id)
	ch := mustChannel(t, "#general")

	messages := []ircmsg.Message{
		{Command: ircmsg.NewNick(nick)},
		{Origin: "srv", Command: ircmsg.NewPrivMsg([]ident.Recipient{ident.NewChannelRecipient(ch)}, "hello there")},
		{Command: ircmsg.NewJoin([]ident.ChannelName{ch}, nil)},
		{Command: ircmsg.NewTopicSet(ch, "new topic here")},
		{Target: "alice", Command: ircmsg.NewNumeric(1, "Welcome")},
		{Command: ircmsg.NewQuit("goodbye now")},
	}

	for _, m := range messages {
		line, err := Encode(m)
		require.NoError(t, err)
		parsed, err := Parse(line)
		require.NoError(t, err)
		assert.True(t, m.Equal(parsed), "round trip mismatch for %q", line)
	}
}

func TestMaxLineLength(t *testing.T) {
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'x'
	}
	_, err := Encode(ircmsg.Message{Command: ircmsg.NewQuit(string(long))})
	assert.ErrorIs(t, err, ErrLineTooLong)
}
