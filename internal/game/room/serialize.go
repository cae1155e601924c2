package room

import (
	"github.com/palemoky/bingo-party/internal/game/rule"
	"github.com/palemoky/bingo-party/internal/server/storage"
)

// ToRoomData 将 Room 转换为可序列化的快照
func (r *Room) ToRoomData() *storage.RoomData {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data := &storage.RoomData{
		Code:        r.Code,
		GameStarted: r.GameStarted,
		Mode:        string(r.Mode),
		Players:     make([]storage.PlayerData, 0, len(r.Players)),
		CreatedAt:   r.CreatedAt.Unix(),
	}

	for _, id := range r.PlayerOrder {
		p := r.Players[id]
		data.Players = append(data.Players, storage.PlayerData{
			ID:          id,
			Username:    p.Username,
			IsHost:      p.IsHost,
			MarkedCount: rule.MarkedCount(p.Marks),
		})
	}

	return data
}
