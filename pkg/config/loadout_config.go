package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadoutConfig 出击配置文件结构
//
// 名称使用武器/符卡/增益的配置名（如 "PLASMA_CUTTER"），类型转换和合法性校验由 game 包完成。
type LoadoutConfig struct {
	Difficulty   string         `yaml:"difficulty"`
	PityStacks   int            `yaml:"pityStacks"`
	Weapons      []string       `yaml:"weapons"`
	Spells       []string       `yaml:"spells"`
	WeaponLevels map[string]int `yaml:"weaponLevels"`
	SpellLevels  map[string]int `yaml:"spellLevels"`
	Boosters     []string       `yaml:"boosters"`
}

// LoadLoadoutConfig 从 YAML 文件加载出击配置
func LoadLoadoutConfig(path string) (*LoadoutConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read loadout file %s: %w", path, err)
	}

	var cfg LoadoutConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse loadout YAML from %s: %w", path, err)
	}

	if cfg.Difficulty == "" {
		cfg.Difficulty = "NORMAL"
	}
	if len(cfg.Weapons) == 0 {
		return nil, fmt.Errorf("invalid loadout in %s: at least one weapon is required", path)
	}
	if cfg.PityStacks < 0 {
		return nil, fmt.Errorf("invalid loadout in %s: pityStacks cannot be negative, got %d", path, cfg.PityStacks)
	}

	return &cfg, nil
}
