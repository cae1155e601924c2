package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/bingo-party/internal/apperrors"
	"github.com/palemoky/bingo-party/internal/game/card"
	"github.com/palemoky/bingo-party/internal/game/rule"
	"github.com/palemoky/bingo-party/internal/protocol"
	"github.com/palemoky/bingo-party/internal/testutil"
)

// setupRoom creates a room with a host and n-1 guests
func setupRoom(t *testing.T, rm *RoomManager, n int) (*Room, []*testutil.SimpleClient) {
	t.Helper()

	host := testutil.NewSimpleClient("c1", "")
	room, err := rm.CreateRoom(host, "Player1")
	require.NoError(t, err)

	clients := []*testutil.SimpleClient{host}
	for i := 2; i <= n; i++ {
		c := testutil.NewSimpleClient(
			"c"+string(rune('0'+i)),
			"",
		)
		_, err := rm.JoinRoom(c, room.Code, "Player"+string(rune('0'+i)))
		require.NoError(t, err)
		clients = append(clients, c)
	}
	return room, clients
}

func TestStartGame_NotHost(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	room, clients := setupRoom(t, rm, 2)

	err := rm.StartGame(clients[1], room.Code)
	assert.ErrorIs(t, err, apperrors.ErrNotHost)
	assert.False(t, room.GameStarted)
	assert.Empty(t, clients[0].MessagesOfType(protocol.MsgGameStarted))
}

func TestStartGame_RoomNotFound(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	client := testutil.NewSimpleClient("c1", "Alice")

	err := rm.StartGame(client, "ZZZZ")
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}

func TestStartGame_DealsIndividualCards(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	room, clients := setupRoom(t, rm, 3)

	require.NoError(t, rm.StartGame(clients[0], room.Code))
	assert.True(t, room.GameStarted)

	cards := make([][]string, 0, len(clients))
	for _, c := range clients {
		msgs := c.MessagesOfType(protocol.MsgGameStarted)
		require.Len(t, msgs, 1, "each player gets exactly one game-started")

		payload, err := protocol.ParsePayload[protocol.GameStartedPayload](msgs[0])
		require.NoError(t, err)
		require.Len(t, payload.Card, card.Size)
		assert.Equal(t, card.FreeSpace, payload.Card[card.FreeSpaceIndex])
		assert.Len(t, payload.Players, 3)
		cards = append(cards, payload.Card)
	}

	// Draws are independent per player; identical cards are astronomically
	// unlikely with a 36-phrase pool
	assert.NotEqual(t, cards[0], cards[1])
	assert.NotEqual(t, cards[0], cards[2])
}

func TestMarkSquare_TogglesAndBroadcasts(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	room, clients := setupRoom(t, rm, 2)
	require.NoError(t, rm.StartGame(clients[0], room.Code))

	win, err := rm.MarkSquare(clients[1], room.Code, 3)
	require.NoError(t, err)
	assert.Nil(t, win)

	for _, c := range clients {
		msgs := c.MessagesOfType(protocol.MsgSquareMarked)
		require.Len(t, msgs, 1, "square-marked goes to the whole room")
		payload, err := protocol.ParsePayload[protocol.SquareMarkedPayload](msgs[0])
		require.NoError(t, err)
		assert.Equal(t, clients[1].GetID(), payload.PlayerID)
		assert.Equal(t, 3, payload.Index)
		assert.True(t, payload.Marked)
	}

	// Second mark on the same cell toggles it off
	_, err = rm.MarkSquare(clients[1], room.Code, 3)
	require.NoError(t, err)
	msgs := clients[0].MessagesOfType(protocol.MsgSquareMarked)
	require.Len(t, msgs, 2)
	payload, err := protocol.ParsePayload[protocol.SquareMarkedPayload](msgs[1])
	require.NoError(t, err)
	assert.False(t, payload.Marked)
}

func TestMarkSquare_NotInRoom(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	room, _ := setupRoom(t, rm, 1)
	stranger := testutil.NewSimpleClient("cx", "Mallory")

	_, err := rm.MarkSquare(stranger, room.Code, 0)
	assert.ErrorIs(t, err, apperrors.ErrNotInRoom)
}

func TestMarkSquare_FreeSpaceIsTogglable(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	room, clients := setupRoom(t, rm, 1)
	require.NoError(t, rm.StartGame(clients[0], room.Code))

	// The free space starts marked and has no toggle guard
	_, err := rm.MarkSquare(clients[0], room.Code, card.FreeSpaceIndex)
	require.NoError(t, err)
	assert.Equal(t, 0, room.GetPlayerInfo(clients[0].GetID()).MarkedCount)
}

func TestMarkSquare_RowWinFiresOnce(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	room, clients := setupRoom(t, rm, 2)
	require.NoError(t, rm.StartGame(clients[0], room.Code))

	// Toggle the five cells of row 0, one at a time
	for i := range 4 {
		win, err := rm.MarkSquare(clients[1], room.Code, i)
		require.NoError(t, err)
		assert.Nil(t, win, "no win before the row is complete")
		assert.Empty(t, clients[0].MessagesOfType(protocol.MsgPlayerWon))
	}

	win, err := rm.MarkSquare(clients[1], room.Code, 4)
	require.NoError(t, err)
	require.NotNil(t, win)
	assert.Equal(t, clients[1].GetID(), win.PlayerID)
	assert.Equal(t, rule.ModeRegular, win.Mode)
	assert.Equal(t, 6, win.MarkedCount) // row 0 plus the free space

	for _, c := range clients {
		msgs := c.MessagesOfType(protocol.MsgPlayerWon)
		require.Len(t, msgs, 1, "player-won broadcast fires exactly once")
		payload, err := protocol.ParsePayload[protocol.PlayerWonPayload](msgs[0])
		require.NoError(t, err)
		assert.Equal(t, "regular", payload.Mode)
	}
}

func TestContinueToBlackout(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	room, clients := setupRoom(t, rm, 2)
	require.NoError(t, rm.StartGame(clients[0], room.Code))

	err := rm.ContinueToBlackout(clients[1], room.Code)
	assert.ErrorIs(t, err, apperrors.ErrNotHost)

	require.NoError(t, rm.ContinueToBlackout(clients[0], room.Code))
	assert.Equal(t, rule.ModeBlackout, room.Mode)

	msgs := clients[1].MessagesOfType(protocol.MsgBlackoutModeStarted)
	require.Len(t, msgs, 1)
}

func TestMarkSquare_BlackoutWin(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	room, clients := setupRoom(t, rm, 1)
	require.NoError(t, rm.StartGame(clients[0], room.Code))
	require.NoError(t, rm.ContinueToBlackout(clients[0], room.Code))

	// Mark everything except the last cell
	for i := range 24 {
		if i == card.FreeSpaceIndex {
			continue
		}
		win, err := rm.MarkSquare(clients[0], room.Code, i)
		require.NoError(t, err)
		assert.Nil(t, win, "a full line is not enough in blackout mode")
	}

	win, err := rm.MarkSquare(clients[0], room.Code, 24)
	require.NoError(t, err)
	require.NotNil(t, win)
	assert.Equal(t, rule.ModeBlackout, win.Mode)
	assert.Equal(t, rule.BoardSize, win.MarkedCount)
}

func TestNewRound_ResetsCardsAndMode(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	room, clients := setupRoom(t, rm, 2)
	require.NoError(t, rm.StartGame(clients[0], room.Code))
	require.NoError(t, rm.ContinueToBlackout(clients[0], room.Code))

	_, err := rm.MarkSquare(clients[1], room.Code, 7)
	require.NoError(t, err)

	require.NoError(t, rm.NewRound(clients[0], room.Code))
	assert.Equal(t, rule.ModeRegular, room.Mode)

	for _, c := range clients {
		msgs := c.MessagesOfType(protocol.MsgNewRoundStarted)
		require.Len(t, msgs, 1)
		payload, err := protocol.ParsePayload[protocol.NewRoundStartedPayload](msgs[0])
		require.NoError(t, err)
		require.Len(t, payload.Card, card.Size)
		assert.Equal(t, "regular", payload.Mode)

		// Marks are back to the free space only
		assert.Equal(t, 1, room.GetPlayerInfo(c.GetID()).MarkedCount)
	}
}

func TestFinishGame_TieGoesToFirstJoined(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	room, clients := setupRoom(t, rm, 3)
	require.NoError(t, rm.StartGame(clients[0], room.Code))

	// clients[1] and clients[2] end up with the same marked count
	_, err := rm.MarkSquare(clients[1], room.Code, 0)
	require.NoError(t, err)
	_, err = rm.MarkSquare(clients[2], room.Code, 5)
	require.NoError(t, err)

	win, err := rm.FinishGame(clients[0], room.Code)
	require.NoError(t, err)
	require.NotNil(t, win)
	// Strict > scan in join order: clients[1] keeps the tie
	assert.Equal(t, clients[1].GetID(), win.PlayerID)
	assert.Equal(t, 2, win.MarkedCount)

	for _, c := range clients {
		msgs := c.MessagesOfType(protocol.MsgGameFinished)
		require.Len(t, msgs, 1)
	}
}

func TestFinishGame_NotHost(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	room, clients := setupRoom(t, rm, 2)

	_, err := rm.FinishGame(clients[1], room.Code)
	assert.ErrorIs(t, err, apperrors.ErrNotHost)
	assert.Empty(t, clients[0].MessagesOfType(protocol.MsgGameFinished))
}
