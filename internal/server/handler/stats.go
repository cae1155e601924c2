package handler

import (
	"context"

	"github.com/palemoky/bingo-party/internal/protocol"
	"github.com/palemoky/bingo-party/internal/types"
)

// handleGetStats 获取个人胜场统计
func (h *Handler) handleGetStats(client types.ClientInterface) {
	ctx := context.Background()

	wins, err := h.leaderboard.GetPlayerWins(ctx, client.GetID())
	if err != nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "获取统计失败"))
		return
	}

	rank, _ := h.leaderboard.GetPlayerRank(ctx, client.GetID())

	client.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, protocol.StatsResultPayload{
		PlayerID: client.GetID(),
		Username: client.GetName(),
		Wins:     wins,
		Rank:     rank,
	}))
}

// handleGetLeaderboard 获取排行榜
func (h *Handler) handleGetLeaderboard(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg)
	if err != nil {
		// 默认获取前 10
		payload = &protocol.GetLeaderboardPayload{Limit: 10}
	}

	// 限制请求数量
	if payload.Limit <= 0 || payload.Limit > 50 {
		payload.Limit = 10
	}

	entries, err := h.leaderboard.GetLeaderboard(context.Background(), payload.Limit)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "获取排行榜失败"))
		return
	}

	// 转换为协议格式
	protocolEntries := make([]protocol.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		protocolEntries = append(protocolEntries, protocol.LeaderboardEntry{
			Rank:     e.Rank,
			PlayerID: e.PlayerID,
			Username: e.Username,
			Wins:     e.Wins,
		})
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboardResult, protocol.LeaderboardResultPayload{
		Entries: protocolEntries,
	}))
}
