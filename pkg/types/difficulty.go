package types

import "fmt"

// Difficulty 定义战斗模式/难度
type Difficulty int

const (
	DifficultyNormal Difficulty = iota
	DifficultyEasy
	DifficultyHard
	DifficultyExtreme
	DifficultyInfinity        // 无尽模式，无胜利条件
	DifficultyBossRush        // 首领连战
	DifficultyBossRushExtreme // 首领连战（极限）
)

var difficultyNames = map[Difficulty]string{
	DifficultyNormal:          "NORMAL",
	DifficultyEasy:            "EASY",
	DifficultyHard:            "HARD",
	DifficultyExtreme:         "EXTREME",
	DifficultyInfinity:        "INFINITY",
	DifficultyBossRush:        "BOSS_RUSH",
	DifficultyBossRushExtreme: "BOSS_RUSH_EXTREME",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DIFFICULTY(%d)", int(d))
}

// IsBossRush 返回是否为首领连战模式（两种强度都算）
func (d Difficulty) IsBossRush() bool {
	return d == DifficultyBossRush || d == DifficultyBossRushExtreme
}

// ParseDifficulty 根据名称解析难度
func ParseDifficulty(name string) (Difficulty, error) {
	for id, n := range difficultyNames {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", name)
}
