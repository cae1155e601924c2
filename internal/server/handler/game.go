package handler

import (
	"context"
	"log"

	"github.com/palemoky/bingo-party/internal/game/card"
	"github.com/palemoky/bingo-party/internal/protocol"
	"github.com/palemoky/bingo-party/internal/types"
)

// handleStartGame 处理开始游戏
func (h *Handler) handleStartGame(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.StartGamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.rooms.StartGame(client, payload.RoomCode); err != nil {
		h.sendError(client, err)
	}
}

// handleMarkSquare 处理标记格子
func (h *Handler) handleMarkSquare(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.MarkSquarePayload](msg)
	if err != nil || payload.Index < 0 || payload.Index >= card.Size {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	win, err := h.rooms.MarkSquare(client, payload.RoomCode, payload.Index)
	if err != nil {
		h.sendError(client, err)
		return
	}

	// 胜利写入排行榜，不阻塞消息处理
	if win != nil {
		go func() {
			if err := h.leaderboard.RecordWin(context.Background(), win.PlayerID, win.Username); err != nil {
				log.Printf("记录胜场失败: %v", err)
			}
		}()
	}
}

// handleNewRound 处理开启新一轮
func (h *Handler) handleNewRound(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.NewRoundPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.rooms.NewRound(client, payload.RoomCode); err != nil {
		h.sendError(client, err)
	}
}

// handleContinueToBlackout 处理进入全黑模式
func (h *Handler) handleContinueToBlackout(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ContinueToBlackoutPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.rooms.ContinueToBlackout(client, payload.RoomCode); err != nil {
		h.sendError(client, err)
	}
}

// handleFinishGame 处理结束游戏
func (h *Handler) handleFinishGame(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.FinishGamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	win, err := h.rooms.FinishGame(client, payload.RoomCode)
	if err != nil {
		h.sendError(client, err)
		return
	}

	go func() {
		if err := h.leaderboard.RecordWin(context.Background(), win.PlayerID, win.Username); err != nil {
			log.Printf("记录胜场失败: %v", err)
		}
	}()
}
