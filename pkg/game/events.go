package game

// GameOverEvent 一局结束时发出的终止事件
type GameOverEvent struct {
	Score     int
	Victory   bool
	Fragments int
}

// Cue 本帧产生的提示事件，供音频等外部协作者消费
type Cue int

const (
	CueShoot Cue = iota
	CueExplosion
	CueSpell
	CueBossWarning
	CuePlayerHit
)

func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueExplosion:
		return "explosion"
	case CueSpell:
		return "spell"
	case CueBossWarning:
		return "boss_warning"
	case CuePlayerHit:
		return "player_hit"
	}
	return "unknown"
}
