package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/bingo-party/internal/protocol"
	"github.com/palemoky/bingo-party/internal/server/storage"
	"github.com/palemoky/bingo-party/internal/testutil"
)

func TestRemoveClient_HostPromotion(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	host := testutil.NewSimpleClient("c1", "")
	guest := testutil.NewSimpleClient("c2", "")

	room, err := rm.CreateRoom(host, "Alice")
	require.NoError(t, err)
	_, err = rm.JoinRoom(guest, room.Code, "Bob")
	require.NoError(t, err)

	rm.RemoveClient(host)

	assert.Empty(t, host.GetRoom())
	assert.Equal(t, 1, room.PlayerCount())

	msgs := guest.MessagesOfType(protocol.MsgNewHost)
	require.Len(t, msgs, 1)
	payload, err := protocol.ParsePayload[protocol.NewHostPayload](msgs[0])
	require.NoError(t, err)
	require.Len(t, payload.Players, 1)
	assert.True(t, payload.Players[0].IsHost)
	assert.Equal(t, "c2", payload.Players[0].ConnectionID)
}

func TestRemoveClient_NonHostLeaves(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	host := testutil.NewSimpleClient("c1", "")
	guest := testutil.NewSimpleClient("c2", "")

	room, err := rm.CreateRoom(host, "Alice")
	require.NoError(t, err)
	_, err = rm.JoinRoom(guest, room.Code, "Bob")
	require.NoError(t, err)

	rm.RemoveClient(guest)

	msgs := host.MessagesOfType(protocol.MsgPlayerLeft)
	require.Len(t, msgs, 1)
	payload, err := protocol.ParsePayload[protocol.PlayerLeftPayload](msgs[0])
	require.NoError(t, err)
	assert.Equal(t, "c2", payload.PlayerID)
	assert.Len(t, payload.Players, 1)

	// Host keeps the room, no host transfer happened
	assert.Empty(t, host.MessagesOfType(protocol.MsgNewHost))
	assert.Equal(t, "c1", room.HostID)
}

func TestRemoveClient_LastPlayerSchedulesExpiry(t *testing.T) {
	t.Parallel()

	rm := NewRoomManager(storage.NewRedisStore(nil), 50*time.Millisecond)
	host := testutil.NewSimpleClient("c1", "")

	room, err := rm.CreateRoom(host, "Alice")
	require.NoError(t, err)

	rm.RemoveClient(host)

	// Not deleted immediately: the room lingers until the idle timeout
	assert.NotNil(t, rm.GetRoom(room.Code))

	assert.Eventually(t, func() bool {
		return rm.GetRoom(room.Code) == nil
	}, time.Second, 10*time.Millisecond)
	assert.Zero(t, rm.RoomCount())
}

func TestJoinRevivesExpiringRoom(t *testing.T) {
	t.Parallel()

	rm := NewRoomManager(storage.NewRedisStore(nil), 80*time.Millisecond)
	host := testutil.NewSimpleClient("c1", "")
	guest := testutil.NewSimpleClient("c2", "")

	room, err := rm.CreateRoom(host, "Alice")
	require.NoError(t, err)

	rm.RemoveClient(host)
	require.NotNil(t, rm.GetRoom(room.Code))

	// Joining an empty, not-yet-expired room is allowed and cancels the timer
	_, err = rm.JoinRoom(guest, room.Code, "Bob")
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)
	assert.NotNil(t, rm.GetRoom(room.Code))

	// The reviver becomes the new host
	players := room.GetAllPlayersInfo()
	require.Len(t, players, 1)
	assert.True(t, players[0].IsHost)
	assert.Equal(t, "c2", room.HostID)
}

func TestExpiry_RescheduleReplacesStaleTimer(t *testing.T) {
	t.Parallel()

	rm := NewRoomManager(storage.NewRedisStore(nil), 60*time.Millisecond)
	host := testutil.NewSimpleClient("c1", "")
	guest := testutil.NewSimpleClient("c2", "")

	room, err := rm.CreateRoom(host, "Alice")
	require.NoError(t, err)

	// Empty the room twice in a row: the second schedule must replace
	// the first timer, not race it
	rm.RemoveClient(host)
	_, err = rm.JoinRoom(guest, room.Code, "Bob")
	require.NoError(t, err)
	rm.RemoveClient(guest)

	assert.Eventually(t, func() bool {
		return rm.GetRoom(room.Code) == nil
	}, time.Second, 10*time.Millisecond)
}
