package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key 前缀
	roomKeyPrefix = "bingo:room:"

	// 房间快照过期时间，仅用于观测，进程不会在启动时回读
	roomExpiration = 2 * time.Hour
)

// RoomData 房间快照（用于 Redis 序列化）
type RoomData struct {
	Code        string       `json:"code"`
	GameStarted bool         `json:"game_started"`
	Mode        string       `json:"mode"`
	Players     []PlayerData `json:"players"`
	CreatedAt   int64        `json:"created_at"`
}

// PlayerData 玩家快照
type PlayerData struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	IsHost      bool   `json:"is_host"`
	MarkedCount int    `json:"marked_count"`
}

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储，client 为 nil 时所有写入都是空操作（测试用）
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SaveRoom 保存房间快照到 Redis
func (rs *RedisStore) SaveRoom(ctx context.Context, code string, data *RoomData) error {
	if rs.client == nil || data == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化房间数据失败: %w", err)
	}

	key := roomKeyPrefix + code
	return rs.client.Set(ctx, key, jsonData, roomExpiration).Err()
}

// LoadRoom 从 Redis 读取房间快照（仅观测用途）
func (rs *RedisStore) LoadRoom(ctx context.Context, code string) (*RoomData, error) {
	if rs.client == nil {
		return nil, nil
	}

	key := roomKeyPrefix + code
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // 房间不存在
		}
		return nil, err
	}

	var roomData RoomData
	if err := json.Unmarshal(data, &roomData); err != nil {
		return nil, fmt.Errorf("反序列化房间数据失败: %w", err)
	}

	return &roomData, nil
}

// DeleteRoom 从 Redis 删除房间快照
func (rs *RedisStore) DeleteRoom(ctx context.Context, code string) error {
	if rs.client == nil {
		return nil
	}

	key := roomKeyPrefix + code
	return rs.client.Del(ctx, key).Err()
}
