package room

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/palemoky/bingo-party/internal/apperrors"
	"github.com/palemoky/bingo-party/internal/protocol"
	"github.com/palemoky/bingo-party/internal/types"
)

// CreateRoom 创建房间，创建者即房主
func (rm *RoomManager) CreateRoom(client types.ClientInterface, username string) (*Room, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	// 生成唯一房间号
	code := rm.generateRoomCode()

	room := &Room{
		Code:        code,
		HostID:      client.GetID(),
		Players:     make(map[string]*Player),
		PlayerOrder: make([]string, 0, 4),
		Mode:        defaultMode,
		CreatedAt:   time.Now(),
	}

	room.Players[client.GetID()] = newPlayer(client, username, true)
	room.PlayerOrder = append(room.PlayerOrder, client.GetID())
	client.SetName(username)
	client.SetRoom(code)

	rm.rooms[code] = room

	rm.saveSnapshot(room)

	log.Printf("🏠 房间 %s 已创建，房主 %s", code, username)

	return room, nil
}

// JoinRoom 加入房间。不拒绝加入已空但尚未过期的房间，
// 加入会取消挂起的过期定时器（"复活"房间）
func (rm *RoomManager) JoinRoom(client types.ClientInterface, code, username string) (*Room, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	room, exists := rm.rooms[code]
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}

	room.mu.Lock()
	defer room.mu.Unlock()

	if room.GameStarted {
		return nil, apperrors.ErrGameStarted
	}

	rm.cancelExpiryLocked(code)

	room.Players[client.GetID()] = newPlayer(client, username, false)
	room.PlayerOrder = append(room.PlayerOrder, client.GetID())
	client.SetName(username)
	client.SetRoom(code)

	// 空房间被复活时没有房主，第一个加入者接任
	if _, ok := room.Players[room.HostID]; !ok {
		room.HostID = client.GetID()
		room.Players[client.GetID()].IsHost = true
	}

	log.Printf("👤 玩家 %s 加入房间 %s", username, code)

	// 通知房间内其他玩家
	for id, p := range room.Players {
		if id != client.GetID() {
			p.Client.SendMessage(protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
				Player:  room.playerInfoLocked(client.GetID()),
				Players: room.playersInfoLocked(),
			}))
		}
	}

	rm.saveSnapshot(room)

	return room, nil
}

// GetRoom 获取房间
func (rm *RoomManager) GetRoom(code string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[code]
}

// RoomCount 获取当前房间数（含空置待过期的房间）
func (rm *RoomManager) RoomCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.rooms)
}

// getRoom 查找房间，所有处理流程的第一步
func (rm *RoomManager) getRoom(code string) (*Room, error) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	room, exists := rm.rooms[code]
	if !exists {
		return nil, apperrors.ErrRoomNotFound
	}
	return room, nil
}

// generateRoomCode 生成房间号。循环到撞不上为止：
// 26^4 个候选对上几十个活跃房间，实际只会跑一轮
func (rm *RoomManager) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[rand.IntN(len(roomCodeChars))]
		}
		codeStr := string(code)
		if _, exists := rm.rooms[codeStr]; !exists {
			return codeStr
		}
	}
}

// saveSnapshot 异步写入 Redis 快照，仅观测用途
func (rm *RoomManager) saveSnapshot(room *Room) {
	go func() { _ = rm.redisStore.SaveRoom(context.Background(), room.Code, room.ToRoomData()) }()
}
