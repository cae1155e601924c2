package room

import (
	"context"
	"log"
	"time"

	"github.com/palemoky/bingo-party/internal/protocol"
	"github.com/palemoky/bingo-party/internal/types"
)

// RemoveClient 处理连接断开：把玩家从所在房间移除。
// 房间变空时不立即删除，而是挂起过期定时器，等待可能的重新加入；
// 房主离开时由加入顺序最早的玩家接任
func (rm *RoomManager) RemoveClient(client types.ClientInterface) {
	code := client.GetRoom()
	if code == "" {
		return
	}

	rm.mu.RLock()
	room, exists := rm.rooms[code]
	rm.mu.RUnlock()
	if !exists {
		return
	}

	room.mu.Lock()

	player, exists := room.Players[client.GetID()]
	if !exists {
		room.mu.Unlock()
		return
	}

	delete(room.Players, client.GetID())
	for i, id := range room.PlayerOrder {
		if id == client.GetID() {
			room.PlayerOrder = append(room.PlayerOrder[:i], room.PlayerOrder[i+1:]...)
			break
		}
	}
	client.SetRoom("")

	log.Printf("👋 玩家 %s 离开房间 %s", player.Username, code)

	if len(room.Players) == 0 {
		room.mu.Unlock()
		rm.scheduleExpiry(code)
		rm.saveSnapshot(room)
		return
	}

	if player.IsHost {
		// 房主继任：加入顺序最早的玩家接棒
		newHostID := room.PlayerOrder[0]
		room.Players[newHostID].IsHost = true
		room.HostID = newHostID
		room.broadcastLocked(protocol.MustNewMessage(protocol.MsgNewHost, protocol.NewHostPayload{
			Players: room.playersInfoLocked(),
		}))
		log.Printf("👑 房间 %s 房主转移给 %s", code, room.Players[newHostID].Username)
	} else {
		room.broadcastLocked(protocol.MustNewMessage(protocol.MsgPlayerLeft, protocol.PlayerLeftPayload{
			PlayerID: client.GetID(),
			Username: player.Username,
			Players:  room.playersInfoLocked(),
		}))
	}

	room.mu.Unlock()
	rm.saveSnapshot(room)
}

// scheduleExpiry 为空房间挂起过期定时器，已有定时器先取消，避免重复删除
func (rm *RoomManager) scheduleExpiry(code string) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	rm.cancelExpiryLocked(code)
	rm.expiry[code] = time.AfterFunc(rm.idleTimeout, func() {
		rm.expireRoom(code)
	})

	log.Printf("⏳ 房间 %s 已无玩家，%s 后过期", code, rm.idleTimeout)
}

// cancelExpiryLocked 取消挂起的过期定时器，调用方需持有 rm.mu
func (rm *RoomManager) cancelExpiryLocked(code string) {
	if timer, ok := rm.expiry[code]; ok {
		timer.Stop()
		delete(rm.expiry, code)
	}
}

// expireRoom 定时器回调。定时器挂起期间可能有玩家重新加入，
// 删除前必须重新确认房间仍然为空
func (rm *RoomManager) expireRoom(code string) {
	rm.mu.Lock()
	delete(rm.expiry, code)

	room, exists := rm.rooms[code]
	if !exists {
		rm.mu.Unlock()
		return
	}

	room.mu.RLock()
	empty := len(room.Players) == 0
	room.mu.RUnlock()

	if !empty {
		rm.mu.Unlock()
		return
	}

	delete(rm.rooms, code)
	rm.mu.Unlock()

	go func() { _ = rm.redisStore.DeleteRoom(context.Background(), code) }()

	log.Printf("🧹 房间 %s 空置超时已清理", code)
}

// Stop 停止所有挂起的过期定时器（优雅关闭用）
func (rm *RoomManager) Stop() {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	for code, timer := range rm.expiry {
		timer.Stop()
		delete(rm.expiry, code)
	}
}
