package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return client, mr
}

func TestRedisStore_SaveLoadDeleteRoom(t *testing.T) {
	client, mr := newTestRedis(t)
	defer mr.Close()
	store := NewRedisStore(client)
	ctx := context.Background()

	roomData := &RoomData{
		Code:        "ABCD",
		GameStarted: true,
		Mode:        "regular",
		Players: []PlayerData{
			{ID: "p1", Username: "Alice", IsHost: true, MarkedCount: 3},
		},
		CreatedAt: time.Now().Unix(),
	}

	// Save
	err := store.SaveRoom(ctx, roomData.Code, roomData)
	assert.NoError(t, err)

	// Load
	loaded, err := store.LoadRoom(ctx, roomData.Code)
	assert.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, roomData.Code, loaded.Code)
	assert.True(t, loaded.GameStarted)
	require.Len(t, loaded.Players, 1)
	assert.True(t, loaded.Players[0].IsHost)

	// Delete
	err = store.DeleteRoom(ctx, roomData.Code)
	assert.NoError(t, err)

	loaded, err = store.LoadRoom(ctx, roomData.Code)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_NilClientIsNoop(t *testing.T) {
	t.Parallel()

	store := NewRedisStore(nil)
	ctx := context.Background()

	assert.NoError(t, store.SaveRoom(ctx, "ABCD", &RoomData{Code: "ABCD"}))
	loaded, err := store.LoadRoom(ctx, "ABCD")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
	assert.NoError(t, store.DeleteRoom(ctx, "ABCD"))
}

func TestLeaderboard_RecordAndQuery(t *testing.T) {
	client, mr := newTestRedis(t)
	defer mr.Close()
	lm := NewLeaderboardManager(client)
	ctx := context.Background()

	require.NoError(t, lm.RecordWin(ctx, "p1", "Alice"))
	require.NoError(t, lm.RecordWin(ctx, "p1", "Alice"))
	require.NoError(t, lm.RecordWin(ctx, "p2", "Bob"))

	wins, err := lm.GetPlayerWins(ctx, "p1")
	assert.NoError(t, err)
	assert.EqualValues(t, 2, wins)

	rank, err := lm.GetPlayerRank(ctx, "p1")
	assert.NoError(t, err)
	assert.EqualValues(t, 1, rank)

	entries, err := lm.GetLeaderboard(ctx, 10)
	assert.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "p1", entries[0].PlayerID)
	assert.Equal(t, "Alice", entries[0].Username)
	assert.EqualValues(t, 2, entries[0].Wins)
	assert.Equal(t, "p2", entries[1].PlayerID)
}

func TestLeaderboard_UnknownPlayer(t *testing.T) {
	client, mr := newTestRedis(t)
	defer mr.Close()
	lm := NewLeaderboardManager(client)
	ctx := context.Background()

	wins, err := lm.GetPlayerWins(ctx, "ghost")
	assert.NoError(t, err)
	assert.Zero(t, wins)

	rank, err := lm.GetPlayerRank(ctx, "ghost")
	assert.NoError(t, err)
	assert.Zero(t, rank)
}
