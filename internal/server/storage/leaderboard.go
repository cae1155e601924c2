package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const (
	leaderboardKey  = "bingo:leaderboard:wins"
	usernameHashKey = "bingo:usernames"
)

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank     int
	PlayerID string
	Username string
	Wins     int64
}

// LeaderboardManager 胜场排行榜，基于 Redis 有序集合
type LeaderboardManager struct {
	client *redis.Client
}

// NewLeaderboardManager 创建排行榜管理器，client 为 nil 时所有操作都是空操作
func NewLeaderboardManager(client *redis.Client) *LeaderboardManager {
	return &LeaderboardManager{client: client}
}

// RecordWin 记录一次胜利并刷新昵称映射
func (lm *LeaderboardManager) RecordWin(ctx context.Context, playerID, username string) error {
	if lm.client == nil {
		return nil
	}

	pipe := lm.client.Pipeline()
	pipe.ZIncrBy(ctx, leaderboardKey, 1, playerID)
	pipe.HSet(ctx, usernameHashKey, playerID, username)
	_, err := pipe.Exec(ctx)
	return err
}

// GetPlayerWins 获取玩家胜场，未上榜返回 0
func (lm *LeaderboardManager) GetPlayerWins(ctx context.Context, playerID string) (int64, error) {
	if lm.client == nil {
		return 0, nil
	}

	score, err := lm.client.ZScore(ctx, leaderboardKey, playerID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return int64(score), nil
}

// GetPlayerRank 获取玩家排名（1 起始），未上榜返回 0
func (lm *LeaderboardManager) GetPlayerRank(ctx context.Context, playerID string) (int64, error) {
	if lm.client == nil {
		return 0, nil
	}

	rank, err := lm.client.ZRevRank(ctx, leaderboardKey, playerID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return rank + 1, nil
}

// GetLeaderboard 获取前 limit 名
func (lm *LeaderboardManager) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if lm.client == nil {
		return nil, nil
	}

	results, err := lm.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for i, z := range results {
		playerID, _ := z.Member.(string)
		username, _ := lm.client.HGet(ctx, usernameHashKey, playerID).Result()
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			PlayerID: playerID,
			Username: username,
			Wins:     int64(z.Score),
		})
	}
	return entries, nil
}
