package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CombatConfig 战斗核心的可调参数
//
// 未在 YAML 中出现的字段保留 DefaultCombatConfig 中的默认值。
type CombatConfig struct {
	Simulation SimulationConfig      `yaml:"simulation"`
	Field      FieldConfig           `yaml:"field"`
	Player     PlayerConfig          `yaml:"player"`
	Enemies    map[string]EnemyStats `yaml:"enemies"`
	Spawn      SpawnConfig           `yaml:"spawn"`
	Boss       BossConfig            `yaml:"boss"`
	Stages     StageConfig           `yaml:"stages"`
	Loot       LootConfig            `yaml:"loot"`
}

// SimulationConfig 固定步长时钟参数
type SimulationConfig struct {
	StepsPerSecond  float64 `yaml:"stepsPerSecond"`  // 逻辑帧率，默认 90
	MaxFrameDeltaMs float64 `yaml:"maxFrameDeltaMs"` // 单次渲染帧最多累积的时间（毫秒）
	Particles       bool    `yaml:"particles"`       // 是否生成装饰粒子
}

// FieldConfig 战场尺寸
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"` // 越过边界多少像素后回收实体
}

// PlayerConfig 玩家机体参数
type PlayerConfig struct {
	BaseHP     float64 `yaml:"baseHp"`
	StartX     float64 `yaml:"startX"`
	StartY     float64 `yaml:"startY"`
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"`
	FocusSpeed float64 `yaml:"focusSpeed"`

	FireInterval int `yaml:"fireInterval"` // 基础射击间隔（帧）

	HitDamage    float64 `yaml:"hitDamage"`    // 每次被击中扣除的固定值
	HitPadding   float64 `yaml:"hitPadding"`   // 判定半径附加值
	GrazeRadius  float64 `yaml:"grazeRadius"`  // 擦弹半径
	GrazeScore   int     `yaml:"grazeScore"`   // 擦弹得分
	BodyPadding  float64 `yaml:"bodyPadding"`  // 机体碰撞附加半径
	HitInvuln    int     `yaml:"hitInvuln"`    // 受伤后无敌帧
	ShieldInvuln int     `yaml:"shieldInvuln"` // 护盾吸收后无敌帧

	ReviveInvuln      int     `yaml:"reviveInvuln"`
	ReviveBlastRadius float64 `yaml:"reviveBlastRadius"`
	ReviveBlastDamage float64 `yaml:"reviveBlastDamage"`

	RegenDelay        int `yaml:"regenDelay"`        // 未受伤多少帧后开始回血
	BoostedRegenDelay int `yaml:"boostedRegenDelay"` // 回血增益下的延迟
	RegenInterval     int `yaml:"regenInterval"`     // 每隔多少帧回复 1 点
}

// EnemyStats 杂兵基础属性
type EnemyStats struct {
	HP    float64 `yaml:"hp"`
	Size  float64 `yaml:"size"`
	Score int     `yaml:"score"`
	Color string  `yaml:"color"`
}

// SpawnConfig 杂兵生成节奏
type SpawnConfig struct {
	Intervals       map[string]int `yaml:"intervals"` // 难度名 -> 生成间隔（帧）
	DefaultInterval int            `yaml:"defaultInterval"`
	InfinityBase    int            `yaml:"infinityBase"`
	InfinityMin     int            `yaml:"infinityMin"`
	InfinityStep    int            `yaml:"infinityStep"`
	SpawnY          float64        `yaml:"spawnY"`
	SpawnMinX       float64        `yaml:"spawnMinX"`
	SpawnRangeX     float64        `yaml:"spawnRangeX"`
	StageHPGrowth   float64        `yaml:"stageHpGrowth"`
	InfinityGrowth  float64        `yaml:"infinityHpGrowth"`
	BaseTankChance  float64        `yaml:"baseTankChance"`
	TankChanceStep  float64        `yaml:"tankChanceStep"`
}

// BossConfig 首领参数
type BossConfig struct {
	BaseHP            float64            `yaml:"baseHp"`
	HPMultipliers     map[string]float64 `yaml:"hpMultipliers"` // 难度名 -> 血量倍率
	BossRushHP        HPRange            `yaml:"bossRushHp"`
	BossRushExtremeHP HPRange            `yaml:"bossRushExtremeHp"`
	GammaHPMultiplier float64            `yaml:"gammaHpMultiplier"`
	FireRates         map[string]int     `yaml:"fireRates"`
	DefaultFireRate   int                `yaml:"defaultFireRate"`
	StageTimeLimit    int                `yaml:"stageTimeLimit"` // 超过此帧数强制出现首领
	WaveDelay         int                `yaml:"waveDelay"`      // 首领死亡后的间隔
	DialogueFrames    int                `yaml:"dialogueFrames"`
	Dialogue          string             `yaml:"dialogue"`
	ScorePerStage     int                `yaml:"scorePerStage"`
	KillBonus         int                `yaml:"killBonus"`
}

// HPRange 首领连战的血量区间（按阶段线性插值）
type HPRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// StageConfig 阶段上限
type StageConfig struct {
	MaxStages         int `yaml:"maxStages"`
	BossRushMaxStages int `yaml:"bossRushMaxStages"`
}

// LootConfig 数据碎片掉落倍率
type LootConfig struct {
	DifficultyMultipliers map[string]float64 `yaml:"difficultyMultipliers"`
	DefaultMultiplier     float64            `yaml:"defaultMultiplier"`
	BossRushMultiplier    float64            `yaml:"bossRushMultiplier"`
	MinRoll               int                `yaml:"minRoll"`
	MaxRoll               int                `yaml:"maxRoll"`
}

// DefaultCombatConfig 返回内置默认参数
func DefaultCombatConfig() *CombatConfig {
	return &CombatConfig{
		Simulation: SimulationConfig{
			StepsPerSecond:  90,
			MaxFrameDeltaMs: 100,
			Particles:       true,
		},
		Field: FieldConfig{Width: 600, Height: 800, Margin: 50},
		Player: PlayerConfig{
			BaseHP:            100,
			StartX:            300,
			StartY:            700,
			Size:              8,
			Speed:             5,
			FocusSpeed:        2.5,
			FireInterval:      6,
			HitDamage:         20,
			HitPadding:        4,
			GrazeRadius:       20,
			GrazeScore:        10,
			BodyPadding:       5,
			HitInvuln:         60,
			ShieldInvuln:      30,
			ReviveInvuln:      120,
			ReviveBlastRadius: 200,
			ReviveBlastDamage: 500,
			RegenDelay:        600,
			BoostedRegenDelay: 300,
			RegenInterval:     60,
		},
		Enemies: map[string]EnemyStats{
			"drone":       {HP: 30, Size: 12, Score: 100, Color: "#aa00ff"},
			"interceptor": {HP: 60, Size: 15, Score: 300, Color: "#00ffaa"},
			"tank":        {HP: 150, Size: 22, Score: 600, Color: "#ffaa00"},
			"seeker":      {HP: 20, Size: 10, Score: 200, Color: "#ff0000"},
			"stealth":     {HP: 80, Size: 18, Score: 500, Color: "#444444"},
		},
		Spawn: SpawnConfig{
			Intervals: map[string]int{
				"EASY":    50,
				"NORMAL":  30,
				"HARD":    15,
				"EXTREME": 10,
			},
			DefaultInterval: 30,
			InfinityBase:    20,
			InfinityMin:     5,
			InfinityStep:    2,
			SpawnY:          -30,
			SpawnMinX:       20,
			SpawnRangeX:     560,
			StageHPGrowth:   0.2,
			InfinityGrowth:  0.5,
			BaseTankChance:  0.85,
			TankChanceStep:  0.05,
		},
		Boss: BossConfig{
			BaseHP: 2500,
			HPMultipliers: map[string]float64{
				"EASY":    0.6,
				"NORMAL":  1.0,
				"HARD":    1.5,
				"EXTREME": 2.0,
			},
			BossRushHP:        HPRange{Min: 5000, Max: 20000},
			BossRushExtremeHP: HPRange{Min: 10000, Max: 50000},
			GammaHPMultiplier: 1.25,
			FireRates: map[string]int{
				"EASY":              60,
				"HARD":              25,
				"EXTREME":           15,
				"BOSS_RUSH":         25,
				"BOSS_RUSH_EXTREME": 25,
			},
			DefaultFireRate: 45,
			StageTimeLimit:  1800,
			WaveDelay:       120,
			DialogueFrames:  120,
			Dialogue:        "WARNING: MASSIVE SIGNAL DETECTED",
			ScorePerStage:   5000,
			KillBonus:       10000,
		},
		Stages: StageConfig{MaxStages: 6, BossRushMaxStages: 16},
		Loot: LootConfig{
			DifficultyMultipliers: map[string]float64{
				"EASY":   3,
				"NORMAL": 2,
			},
			DefaultMultiplier:  1.5,
			BossRushMultiplier: 2,
			MinRoll:            1,
			MaxRoll:            5,
		},
	}
}

// ParseCombatConfig 解析 YAML 内容并覆盖默认参数
func ParseCombatConfig(data []byte) (*CombatConfig, error) {
	cfg := DefaultCombatConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse combat config YAML: %w", err)
	}
	if err := validateCombatConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid combat config: %w", err)
	}
	return cfg, nil
}

// LoadCombatConfig 从文件加载战斗参数
// 参数：
//
//	path - 以 "data/" 开头时从嵌入资源读取，否则从磁盘读取
//
// 返回：
//
//	*CombatConfig - 合并默认值后的配置
//	error - 读取、解析或校验失败
func LoadCombatConfig(path string) (*CombatConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read combat config %s: %w", path, err)
	}
	cfg, err := ParseCombatConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func validateCombatConfig(cfg *CombatConfig) error {
	if cfg.Simulation.StepsPerSecond <= 0 {
		return fmt.Errorf("simulation.stepsPerSecond must be positive, got %v", cfg.Simulation.StepsPerSecond)
	}
	if cfg.Simulation.MaxFrameDeltaMs <= 0 {
		return fmt.Errorf("simulation.maxFrameDeltaMs must be positive, got %v", cfg.Simulation.MaxFrameDeltaMs)
	}
	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		return fmt.Errorf("field size must be positive, got %vx%v", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Field.Margin < 0 {
		return fmt.Errorf("field.margin cannot be negative, got %v", cfg.Field.Margin)
	}
	if cfg.Player.BaseHP <= 0 {
		return fmt.Errorf("player.baseHp must be positive, got %v", cfg.Player.BaseHP)
	}
	if cfg.Player.FireInterval < 1 {
		return fmt.Errorf("player.fireInterval must be at least 1, got %d", cfg.Player.FireInterval)
	}
	if cfg.Player.RegenInterval < 1 {
		return fmt.Errorf("player.regenInterval must be at least 1, got %d", cfg.Player.RegenInterval)
	}
	for _, name := range []string{"drone", "interceptor", "tank", "seeker", "stealth"} {
		stats, ok := cfg.Enemies[name]
		if !ok {
			return fmt.Errorf("enemy %s: stats are required", name)
		}
		if stats.HP <= 0 {
			return fmt.Errorf("enemy %s: hp must be positive, got %v", name, stats.HP)
		}
		if stats.Size <= 0 {
			return fmt.Errorf("enemy %s: size must be positive, got %v", name, stats.Size)
		}
	}
	for name, interval := range cfg.Spawn.Intervals {
		if interval < 1 {
			return fmt.Errorf("spawn interval for %s must be at least 1, got %d", name, interval)
		}
	}
	if cfg.Spawn.InfinityMin < 1 {
		return fmt.Errorf("spawn.infinityMin must be at least 1, got %d", cfg.Spawn.InfinityMin)
	}
	if cfg.Loot.MinRoll < 1 || cfg.Loot.MaxRoll < cfg.Loot.MinRoll {
		return fmt.Errorf("loot roll range invalid: [%d, %d]", cfg.Loot.MinRoll, cfg.Loot.MaxRoll)
	}
	if cfg.Stages.MaxStages < 1 || cfg.Stages.BossRushMaxStages < 1 {
		return fmt.Errorf("stage limits must be at least 1")
	}
	return nil
}

// GetEnemyStats 获取杂兵属性
// 如果类型不存在，返回 nil 和 false
func (c *CombatConfig) GetEnemyStats(name string) (*EnemyStats, bool) {
	stats, ok := c.Enemies[name]
	if !ok {
		return nil, false
	}
	return &stats, true
}

// SpawnInterval 返回指定难度的杂兵生成间隔（不含无尽模式的阶段计算）
func (c *CombatConfig) SpawnInterval(difficulty string) int {
	if v, ok := c.Spawn.Intervals[difficulty]; ok {
		return v
	}
	return c.Spawn.DefaultInterval
}

// BossHPMultiplier 返回普通模式下的首领血量倍率，未配置返回 1
func (c *CombatConfig) BossHPMultiplier(difficulty string) float64 {
	if v, ok := c.Boss.HPMultipliers[difficulty]; ok {
		return v
	}
	return 1
}

// BossFireRate 返回首领攻击间隔
func (c *CombatConfig) BossFireRate(difficulty string) int {
	if v, ok := c.Boss.FireRates[difficulty]; ok {
		return v
	}
	return c.Boss.DefaultFireRate
}

// LootMultiplier 返回难度对应的碎片倍率
func (c *CombatConfig) LootMultiplier(difficulty string) float64 {
	if v, ok := c.Loot.DifficultyMultipliers[difficulty]; ok {
		return v
	}
	return c.Loot.DefaultMultiplier
}
