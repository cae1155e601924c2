package server

import (
	"log"

	"github.com/palemoky/bingo-party/internal/protocol"
)

// Shutdown 关闭服务器
func (s *Server) Shutdown() {
	// 通知所有在线客户端
	s.Broadcast(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "服务器正在关闭，连接即将断开"))

	// 关闭所有客户端连接
	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clientsMu.Unlock()

	// 停止房间过期定时器
	s.roomManager.Stop()

	// 关闭 Redis
	if s.redis != nil {
		_ = s.redis.Close()
	}

	log.Println("服务器已关闭")
}
