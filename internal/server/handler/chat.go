package handler

import (
	"strings"
	"time"

	"github.com/palemoky/bingo-party/internal/protocol"
	"github.com/palemoky/bingo-party/internal/types"
)

// handleChat 处理房间聊天消息
func (h *Handler) handleChat(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ChatPayload](msg)
	if err != nil || strings.TrimSpace(payload.Text) == "" {
		return
	}

	code := client.GetRoom()
	if code == "" {
		client.SendMessage(protocol.NewErrorMessageWithText(
			protocol.ErrCodeNotInRoom, "不在房间中，无法发送消息"))
		return
	}

	// 聊天限流检查
	allowed, reason := h.chatLimiter.AllowChat(client.GetID())
	if !allowed {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeRateLimit, reason))
		return
	}

	room := h.rooms.GetRoom(code)
	if room == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeRoomNotFound))
		return
	}

	// 填充发送者信息
	payload.SenderID = client.GetID()
	payload.SenderName = client.GetName()
	payload.Time = time.Now().Unix()

	room.Broadcast(protocol.MustNewMessage(protocol.MsgChat, payload))
}
