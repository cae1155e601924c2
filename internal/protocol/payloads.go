package protocol

// --- 客户端请求 Payloads ---

// CreateRoomPayload 创建房间请求
type CreateRoomPayload struct {
	Username string `json:"username"` // 显示昵称，由客户端提供
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	RoomCode string `json:"room_code"`
	Username string `json:"username"`
}

// StartGamePayload 开始游戏请求
type StartGamePayload struct {
	RoomCode string `json:"room_code"`
}

// MarkSquarePayload 标记格子请求
type MarkSquarePayload struct {
	RoomCode string `json:"room_code"`
	Index    int    `json:"index"` // 0-24，按行展开的 5×5 下标
}

// NewRoundPayload 新一轮请求
type NewRoundPayload struct {
	RoomCode string `json:"room_code"`
}

// ContinueToBlackoutPayload 进入全黑模式请求
type ContinueToBlackoutPayload struct {
	RoomCode string `json:"room_code"`
}

// FinishGamePayload 结束游戏请求
type FinishGamePayload struct {
	RoomCode string `json:"room_code"`
}

// GetLeaderboardPayload 获取排行榜请求
type GetLeaderboardPayload struct {
	Limit int `json:"limit"` // 数量，默认 10
}

// ChatPayload 聊天消息（服务端填充发送者信息后原样广播）
type ChatPayload struct {
	Text       string `json:"text"`
	SenderID   string `json:"sender_id,omitempty"`
	SenderName string `json:"sender_name,omitempty"`
	Time       int64  `json:"time,omitempty"` // Unix 秒
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	ConnectionID string `json:"connection_id"`
}

// PlayerInfo 玩家公开信息（不含卡片内容）
type PlayerInfo struct {
	ConnectionID string `json:"connection_id"`
	Username     string `json:"username"`
	IsHost       bool   `json:"is_host"`
	MarkedCount  int    `json:"marked_count"`
}

// RoomCreatedPayload 房间创建成功响应
type RoomCreatedPayload struct {
	RoomCode string       `json:"room_code"`
	Players  []PlayerInfo `json:"players"`
}

// RoomJoinedPayload 加入房间成功响应
type RoomJoinedPayload struct {
	RoomCode string       `json:"room_code"`
	GameMode string       `json:"game_mode"`
	Players  []PlayerInfo `json:"players"`
}

// PlayerJoinedPayload 其他玩家加入通知
type PlayerJoinedPayload struct {
	Player  PlayerInfo   `json:"player"`
	Players []PlayerInfo `json:"players"`
}

// PlayerLeftPayload 玩家离开通知
type PlayerLeftPayload struct {
	PlayerID string       `json:"player_id"`
	Username string       `json:"username"`
	Players  []PlayerInfo `json:"players"`
}

// NewHostPayload 房主转移通知
type NewHostPayload struct {
	Players []PlayerInfo `json:"players"`
}

// GameStartedPayload 游戏开始响应（每个玩家只收到自己的卡片）
type GameStartedPayload struct {
	Card    []string     `json:"card"`
	Players []PlayerInfo `json:"players"`
}

// SquareMarkedPayload 格子标记通知
type SquareMarkedPayload struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	Index    int    `json:"index"`
	Marked   bool   `json:"marked"` // 切换后的新值
}

// PlayerWonPayload 胜利通知
type PlayerWonPayload struct {
	PlayerID    string `json:"player_id"`
	Username    string `json:"username"`
	Mode        string `json:"mode"`
	MarkedCount int    `json:"marked_count"`
}

// NewRoundStartedPayload 新一轮开始响应（每个玩家只收到自己的卡片）
type NewRoundStartedPayload struct {
	Card []string `json:"card"`
	Mode string   `json:"mode"`
}

// BlackoutModeStartedPayload 全黑模式开始通知
type BlackoutModeStartedPayload struct {
	Mode string `json:"mode"`
}

// GameFinishedPayload 游戏结算通知
type GameFinishedPayload struct {
	PlayerID    string `json:"player_id"`
	Username    string `json:"username"`
	MarkedCount int    `json:"marked_count"`
}

// StatsResultPayload 个人统计结果
type StatsResultPayload struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	Wins     int64  `json:"wins"`
	Rank     int64  `json:"rank"` // 1 起始，0 表示未上榜
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	Wins     int64  `json:"wins"`
}

// LeaderboardResultPayload 排行榜结果
type LeaderboardResultPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// ErrorPayload 错误消息
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
