package rule

// GameMode 胜利判定模式
type GameMode string

const (
	ModeRegular  GameMode = "regular"  // 任意一行/列/对角线
	ModeBlackout GameMode = "blackout" // 全部 25 格
)

// BoardSize 卡片格子总数
const BoardSize = 25

// lines 常规模式下的 12 条获胜线：5 行、5 列、2 条对角线
// （按行展开的 5×5 下标）
var lines = [12][5]int{
	// 行
	{0, 1, 2, 3, 4},
	{5, 6, 7, 8, 9},
	{10, 11, 12, 13, 14},
	{15, 16, 17, 18, 19},
	{20, 21, 22, 23, 24},
	// 列
	{0, 5, 10, 15, 20},
	{1, 6, 11, 16, 21},
	{2, 7, 12, 17, 22},
	{3, 8, 13, 18, 23},
	{4, 9, 14, 19, 24},
	// 对角线
	{0, 6, 12, 18, 24},
	{4, 8, 12, 16, 20},
}

// CheckWin 判定标记向量是否满足胜利条件，纯函数
func CheckWin(marks [BoardSize]bool, mode GameMode) bool {
	if mode == ModeBlackout {
		for _, m := range marks {
			if !m {
				return false
			}
		}
		return true
	}

	for _, line := range lines {
		complete := true
		for _, idx := range line {
			if !marks[idx] {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}

// MarkedCount 统计已标记的格子数
func MarkedCount(marks [BoardSize]bool) int {
	count := 0
	for _, m := range marks {
		if m {
			count++
		}
	}
	return count
}
