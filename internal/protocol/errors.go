package protocol

// 错误码
const (
	ErrCodeUnknown      = 1000
	ErrCodeInvalidMsg   = 1001
	ErrCodeRateLimit    = 1002 // 速率限制
	ErrCodeRoomNotFound = 2001
	ErrCodeGameStarted  = 2002 // 游戏已开始，禁止加入
	ErrCodeNotHost      = 2003 // 非房主执行特权操作
	ErrCodeNotInRoom    = 2004
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:      "未知错误",
	ErrCodeInvalidMsg:   "无效的消息格式",
	ErrCodeRateLimit:    "请求过于频繁",
	ErrCodeRoomNotFound: "房间不存在",
	ErrCodeGameStarted:  "游戏已开始，无法加入",
	ErrCodeNotHost:      "只有房主可以执行该操作",
	ErrCodeNotInRoom:    "您不在房间中",
}

// NewErrorMessage 按错误码构造 error 事件，文案来自 ErrorMessages
func NewErrorMessage(code int) *Message {
	return MustNewMessage(MsgError, ErrorPayload{
		Code:    code,
		Message: ErrorMessages[code],
	})
}

// NewErrorMessageWithText 按错误码构造 error 事件，文案由调用方给出
func NewErrorMessageWithText(code int, text string) *Message {
	return MustNewMessage(MsgError, ErrorPayload{
		Code:    code,
		Message: text,
	})
}
