package apperrors

import (
	"github.com/palemoky/bingo-party/internal/protocol"
)

// GameError 游戏错误（房间操作共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrGameStarted  = &GameError{Code: protocol.ErrCodeGameStarted, Message: "游戏已开始，无法加入"}
	ErrNotHost      = &GameError{Code: protocol.ErrCodeNotHost, Message: "只有房主可以执行该操作"}
	ErrNotInRoom    = &GameError{Code: protocol.ErrCodeNotInRoom, Message: "您不在房间中"}
)
