package room

import (
	"sync"
	"time"

	"github.com/palemoky/bingo-party/internal/game/card"
	"github.com/palemoky/bingo-party/internal/game/rule"
	"github.com/palemoky/bingo-party/internal/protocol"
	"github.com/palemoky/bingo-party/internal/server/storage"
	"github.com/palemoky/bingo-party/internal/types"
)

const (
	roomCodeLength = 4                            // 房间号长度
	roomCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" // 房间号字符集
)

// Player 房间中的玩家
type Player struct {
	Client   types.ClientInterface
	Username string
	IsHost   bool
	Card     []string             // 游戏开始前为空，开始后固定 25 格
	Marks    [rule.BoardSize]bool // 标记向量，下标 12 在发牌时强制置真
}

// Room 游戏房间
type Room struct {
	Code        string             // 房间号
	HostID      string             // 当前房主的连接 ID
	Players     map[string]*Player // 玩家列表
	PlayerOrder []string           // 玩家顺序（按加入先后，房主继任依据）
	GameStarted bool               // 是否已开始，开始后禁止加入
	Mode        rule.GameMode      // 当前胜利判定模式
	CreatedAt   time.Time          // 创建时间

	mu sync.RWMutex
}

// RoomManager 房间管理器
type RoomManager struct {
	redisStore  *storage.RedisStore
	idleTimeout time.Duration
	rooms       map[string]*Room
	expiry      map[string]*time.Timer // 空房间过期定时器，按房间号索引
	mu          sync.RWMutex
}

// NewRoomManager 创建房间管理器
func NewRoomManager(rs *storage.RedisStore, idleTimeout time.Duration) *RoomManager {
	return &RoomManager{
		redisStore:  rs,
		idleTimeout: idleTimeout,
		rooms:       make(map[string]*Room),
		expiry:      make(map[string]*time.Timer),
	}
}

// newPlayer 创建玩家，标记向量只有中心格为真
func newPlayer(client types.ClientInterface, username string, isHost bool) *Player {
	p := &Player{
		Client:   client,
		Username: username,
		IsHost:   isHost,
	}
	p.Marks[card.FreeSpaceIndex] = true
	return p
}

// resetForNewCard 发新卡片并重置标记向量
func (p *Player) resetForNewCard() {
	p.Card = card.Generate()
	p.Marks = [rule.BoardSize]bool{}
	p.Marks[card.FreeSpaceIndex] = true
}

// Broadcast 向房间内所有玩家发送消息
func (r *Room) Broadcast(msg *protocol.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.broadcastLocked(msg)
}

// BroadcastExcept 向除指定玩家外的所有玩家发送消息
func (r *Room) BroadcastExcept(exceptID string, msg *protocol.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, p := range r.Players {
		if id != exceptID {
			p.Client.SendMessage(msg)
		}
	}
}

func (r *Room) broadcastLocked(msg *protocol.Message) {
	for _, p := range r.Players {
		p.Client.SendMessage(msg)
	}
}

// GetPlayerInfo 获取单个玩家的公开信息
func (r *Room) GetPlayerInfo(id string) protocol.PlayerInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.playerInfoLocked(id)
}

// GetAllPlayersInfo 按加入顺序获取所有玩家的公开信息
func (r *Room) GetAllPlayersInfo() []protocol.PlayerInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.playersInfoLocked()
}

func (r *Room) playerInfoLocked(id string) protocol.PlayerInfo {
	p, ok := r.Players[id]
	if !ok {
		return protocol.PlayerInfo{}
	}
	return protocol.PlayerInfo{
		ConnectionID: id,
		Username:     p.Username,
		IsHost:       p.IsHost,
		MarkedCount:  rule.MarkedCount(p.Marks),
	}
}

func (r *Room) playersInfoLocked() []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, 0, len(r.Players))
	for _, id := range r.PlayerOrder {
		infos = append(infos, r.playerInfoLocked(id))
	}
	return infos
}

// PlayerCount 获取房间当前人数
func (r *Room) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.Players)
}
