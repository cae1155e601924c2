package room

import (
	"log"

	"github.com/palemoky/bingo-party/internal/apperrors"
	"github.com/palemoky/bingo-party/internal/game/rule"
	"github.com/palemoky/bingo-party/internal/protocol"
	"github.com/palemoky/bingo-party/internal/types"
)

const defaultMode = rule.ModeRegular

// WinInfo 胜利/结算信息，交给调用方记录排行榜
type WinInfo struct {
	PlayerID    string
	Username    string
	Mode        rule.GameMode
	MarkedCount int
}

// StartGame 房主开始游戏：每个玩家发一张独立随机卡片，
// 每个玩家只收到自己的卡片
func (rm *RoomManager) StartGame(client types.ClientInterface, code string) error {
	room, err := rm.getRoom(code)
	if err != nil {
		return err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.HostID != client.GetID() {
		return apperrors.ErrNotHost
	}

	for _, id := range room.PlayerOrder {
		room.Players[id].resetForNewCard()
	}
	room.GameStarted = true

	players := room.playersInfoLocked()
	for _, id := range room.PlayerOrder {
		p := room.Players[id]
		p.Client.SendMessage(protocol.MustNewMessage(protocol.MsgGameStarted, protocol.GameStartedPayload{
			Card:    p.Card,
			Players: players,
		}))
	}

	log.Printf("🎮 房间 %s 游戏开始，%d 名玩家", code, len(room.Players))

	rm.saveSnapshot(room)

	return nil
}

// MarkSquare 切换玩家的格子标记并广播，随后判定胜利。
// 中心格没有特殊保护，玩家可以取消它的标记，发牌时会重新置真
func (rm *RoomManager) MarkSquare(client types.ClientInterface, code string, index int) (*WinInfo, error) {
	room, err := rm.getRoom(code)
	if err != nil {
		return nil, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	p, ok := room.Players[client.GetID()]
	if !ok {
		return nil, apperrors.ErrNotInRoom
	}

	p.Marks[index] = !p.Marks[index]

	room.broadcastLocked(protocol.MustNewMessage(protocol.MsgSquareMarked, protocol.SquareMarkedPayload{
		PlayerID: client.GetID(),
		Username: p.Username,
		Index:    index,
		Marked:   p.Marks[index],
	}))

	if !rule.CheckWin(p.Marks, room.Mode) {
		return nil, nil
	}

	win := &WinInfo{
		PlayerID:    client.GetID(),
		Username:    p.Username,
		Mode:        room.Mode,
		MarkedCount: rule.MarkedCount(p.Marks),
	}

	room.broadcastLocked(protocol.MustNewMessage(protocol.MsgPlayerWon, protocol.PlayerWonPayload{
		PlayerID:    win.PlayerID,
		Username:    win.Username,
		Mode:        string(win.Mode),
		MarkedCount: win.MarkedCount,
	}))

	log.Printf("🏆 玩家 %s 在房间 %s 获胜（%s，%d 格）", win.Username, code, win.Mode, win.MarkedCount)

	return win, nil
}

// NewRound 房主开启新一轮：重新发卡、重置标记、回到常规模式
func (rm *RoomManager) NewRound(client types.ClientInterface, code string) error {
	room, err := rm.getRoom(code)
	if err != nil {
		return err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.HostID != client.GetID() {
		return apperrors.ErrNotHost
	}

	room.Mode = rule.ModeRegular
	for _, id := range room.PlayerOrder {
		p := room.Players[id]
		p.resetForNewCard()
		p.Client.SendMessage(protocol.MustNewMessage(protocol.MsgNewRoundStarted, protocol.NewRoundStartedPayload{
			Card: p.Card,
			Mode: string(room.Mode),
		}))
	}

	log.Printf("🔄 房间 %s 开启新一轮", code)

	rm.saveSnapshot(room)

	return nil
}

// ContinueToBlackout 房主把本轮升级为全黑模式，卡片和标记保持不变
func (rm *RoomManager) ContinueToBlackout(client types.ClientInterface, code string) error {
	room, err := rm.getRoom(code)
	if err != nil {
		return err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.HostID != client.GetID() {
		return apperrors.ErrNotHost
	}

	room.Mode = rule.ModeBlackout

	room.broadcastLocked(protocol.MustNewMessage(protocol.MsgBlackoutModeStarted, protocol.BlackoutModeStartedPayload{
		Mode: string(room.Mode),
	}))

	log.Printf("⬛ 房间 %s 进入全黑模式", code)

	rm.saveSnapshot(room)

	return nil
}

// FinishGame 房主结束游戏：线性扫描找出标记数最多的玩家，
// 严格大于才更新，平局时先加入者胜出
func (rm *RoomManager) FinishGame(client types.ClientInterface, code string) (*WinInfo, error) {
	room, err := rm.getRoom(code)
	if err != nil {
		return nil, err
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.HostID != client.GetID() {
		return nil, apperrors.ErrNotHost
	}

	var winner *Player
	var winnerID string
	best := -1
	for _, id := range room.PlayerOrder {
		p := room.Players[id]
		if count := rule.MarkedCount(p.Marks); count > best {
			winner, winnerID, best = p, id, count
		}
	}
	if winner == nil {
		return nil, apperrors.ErrNotInRoom
	}

	win := &WinInfo{
		PlayerID:    winnerID,
		Username:    winner.Username,
		Mode:        room.Mode,
		MarkedCount: best,
	}

	room.broadcastLocked(protocol.MustNewMessage(protocol.MsgGameFinished, protocol.GameFinishedPayload{
		PlayerID:    win.PlayerID,
		Username:    win.Username,
		MarkedCount: win.MarkedCount,
	}))

	log.Printf("🏁 房间 %s 游戏结束，%s 以 %d 格领先", code, win.Username, win.MarkedCount)

	return win, nil
}
