package card

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

const (
	// Size 卡片格子总数（5×5）
	Size = 25
	// FreeSpaceIndex 中心格下标
	FreeSpaceIndex = 12
	// FreeSpace 中心格固定内容
	FreeSpace = "FREE SPACE"
	// DrawCount 每张卡片从词库抽取的短语数
	DrawCount = Size - 1
)

func init() {
	if len(Phrases) < DrawCount {
		panic(fmt.Sprintf("card: phrase pool has %d entries, need at least %d", len(Phrases), DrawCount))
	}
}

// Generate 生成一张随机卡片：均匀打乱词库副本，取前 24 条，
// 在下标 12 处插入 FREE SPACE，后续条目顺延
func Generate() []string {
	pool := slices.Clone(Phrases)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	cells := make([]string, 0, Size)
	cells = append(cells, pool[:FreeSpaceIndex]...)
	cells = append(cells, FreeSpace)
	cells = append(cells, pool[FreeSpaceIndex:DrawCount]...)
	return cells
}
