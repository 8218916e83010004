package types

// EnemyType 定义敌人的类型
type EnemyType int

const (
	EnemyDrone        EnemyType = iota // 无人机：蛇形下降、瞄准射击
	EnemyInterceptor                   // 拦截机：下冲后横切
	EnemyTank                          // 坦克：缓慢、三向散射
	EnemySeeker                        // 追踪者：直扑玩家
	EnemyStealth                       // 隐形机：直线弹
	EnemyBoss                          // 首领
	EnemySeraphDrone                   // 炽天使护卫（delta 首领的卫星）
	EnemyOracleMinion                  // 神谕仆从（theta 首领召唤）
)

func (t EnemyType) String() string {
	switch t {
	case EnemyDrone:
		return "drone"
	case EnemyInterceptor:
		return "interceptor"
	case EnemyTank:
		return "tank"
	case EnemySeeker:
		return "seeker"
	case EnemyStealth:
		return "stealth"
	case EnemyBoss:
		return "boss"
	case EnemySeraphDrone:
		return "seraph_drone"
	case EnemyOracleMinion:
		return "oracle_minion"
	}
	return "unknown"
}

// BossVariant 首领变体
//
// 神谕仆从复用 alpha/beta 标签：alpha 为环绕型，beta 为巡逻型。
type BossVariant int

const (
	VariantNone BossVariant = iota
	VariantAlpha
	VariantBeta
	VariantGamma
	VariantDelta
	VariantTheta
)

// BossVariants 按首领连战顺序返回五种变体
func BossVariants() []BossVariant {
	return []BossVariant{VariantAlpha, VariantBeta, VariantGamma, VariantDelta, VariantTheta}
}

// CodeName 返回首领名称中的代号
func (v BossVariant) CodeName() string {
	switch v {
	case VariantAlpha:
		return "CONSTRUCT"
	case VariantBeta:
		return "VIPER"
	case VariantGamma:
		return "TITAN"
	case VariantDelta:
		return "SERAPH"
	case VariantTheta:
		return "ORACLE"
	}
	return "UNKNOWN"
}

func (v BossVariant) String() string {
	switch v {
	case VariantAlpha:
		return "alpha"
	case VariantBeta:
		return "beta"
	case VariantGamma:
		return "gamma"
	case VariantDelta:
		return "delta"
	case VariantTheta:
		return "theta"
	}
	return "none"
}
