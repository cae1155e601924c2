package handler

import (
	"errors"
	"log"

	"github.com/palemoky/bingo-party/internal/apperrors"
	"github.com/palemoky/bingo-party/internal/game/room"
	"github.com/palemoky/bingo-party/internal/protocol"
	"github.com/palemoky/bingo-party/internal/server/storage"
	"github.com/palemoky/bingo-party/internal/types"
)

// Deps 处理器依赖
type Deps struct {
	RoomManager *room.RoomManager
	Leaderboard *storage.LeaderboardManager
	ChatLimiter types.ChatLimiter
}

// Handler 消息处理器
type Handler struct {
	rooms       *room.RoomManager
	leaderboard *storage.LeaderboardManager
	chatLimiter types.ChatLimiter
}

// NewHandler 创建处理器
func NewHandler(deps Deps) *Handler {
	return &Handler{
		rooms:       deps.RoomManager,
		leaderboard: deps.Leaderboard,
		chatLimiter: deps.ChatLimiter,
	}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	switch msg.Type {
	// 房间操作
	case protocol.MsgCreateRoom:
		h.handleCreateRoom(client, msg)
	case protocol.MsgJoinRoom:
		h.handleJoinRoom(client, msg)

	// 游戏操作
	case protocol.MsgStartGame:
		h.handleStartGame(client, msg)
	case protocol.MsgMarkSquare:
		h.handleMarkSquare(client, msg)
	case protocol.MsgNewRound:
		h.handleNewRound(client, msg)
	case protocol.MsgContinueToBlackout:
		h.handleContinueToBlackout(client, msg)
	case protocol.MsgFinishGame:
		h.handleFinishGame(client, msg)

	// 排行榜操作
	case protocol.MsgGetStats:
		h.handleGetStats(client)
	case protocol.MsgGetLeaderboard:
		h.handleGetLeaderboard(client, msg)

	// 聊天
	case protocol.MsgChat:
		h.handleChat(client, msg)

	default:
		log.Printf("⚠️  未知消息类型: '%s' (来自玩家: %s, ID: %s)", msg.Type, client.GetName(), client.GetID())
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}

// sendError 将业务错误转换为错误消息下发
func (h *Handler) sendError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(protocol.NewErrorMessage(gameErr.Code))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
