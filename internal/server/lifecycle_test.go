package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/bingo-party/internal/game/room"
	"github.com/palemoky/bingo-party/internal/protocol"
	"github.com/palemoky/bingo-party/internal/server/storage"
)

func TestShutdown_NotifiesAndClosesClients(t *testing.T) {
	t.Parallel()

	c1 := &Client{ID: "c1", send: make(chan []byte, 4)}
	c2 := &Client{ID: "c2", send: make(chan []byte, 4)}
	s := &Server{
		clients:     map[string]*Client{"c1": c1, "c2": c2},
		roomManager: room.NewRoomManager(storage.NewRedisStore(nil), time.Minute),
	}

	s.Shutdown()

	for _, c := range []*Client{c1, c2} {
		// 先收到关闭通知
		data, ok := <-c.send
		require.True(t, ok)
		msg, err := protocol.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, protocol.MsgError, msg.Type)

		// 随后通道关闭
		_, ok = <-c.send
		assert.False(t, ok)
	}
}
