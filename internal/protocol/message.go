package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 房间操作
	MsgCreateRoom MessageType = "create-room" // 创建房间
	MsgJoinRoom   MessageType = "join-room"   // 加入房间

	// 游戏操作
	MsgStartGame          MessageType = "start-game"           // 房主开始游戏
	MsgMarkSquare         MessageType = "mark-square"          // 标记/取消标记格子
	MsgNewRound           MessageType = "new-round"            // 房主开启新一轮
	MsgContinueToBlackout MessageType = "continue-to-blackout" // 进入全黑模式
	MsgFinishGame         MessageType = "finish-game"          // 房主结束游戏

	// 信息查询
	MsgGetStats       MessageType = "get-stats"       // 获取个人统计
	MsgGetLeaderboard MessageType = "get-leaderboard" // 获取排行榜

	// 聊天
	MsgChat MessageType = "chat" // 房间聊天
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected MessageType = "connected" // 连接成功，下发连接 ID

	// 房间相关
	MsgRoomCreated  MessageType = "room-created"  // 房间创建成功
	MsgRoomJoined   MessageType = "room-joined"   // 加入房间成功
	MsgPlayerJoined MessageType = "player-joined" // 其他玩家加入
	MsgPlayerLeft   MessageType = "player-left"   // 玩家离开
	MsgNewHost      MessageType = "new-host"      // 房主转移

	// 游戏流程
	MsgGameStarted         MessageType = "game-started"          // 游戏开始，下发卡片
	MsgSquareMarked        MessageType = "square-marked"         // 有人标记了格子
	MsgPlayerWon           MessageType = "player-won"            // 有人达成胜利条件
	MsgNewRoundStarted     MessageType = "new-round-started"     // 新一轮开始
	MsgBlackoutModeStarted MessageType = "blackout-mode-started" // 全黑模式开始
	MsgGameFinished        MessageType = "game-finished"         // 游戏结束结算

	// 排行榜
	MsgStatsResult       MessageType = "stats-result"       // 个人统计结果
	MsgLeaderboardResult MessageType = "leaderboard-result" // 排行榜结果

	// 错误
	MsgError MessageType = "error" // 错误消息
)
