package game

// InputState 单个逻辑帧的原始按键快照
//
// 表现层在每帧采样一次，模拟核心只读取这个结构，不接触任何输入设备。
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool // Z 或空格
	Focus bool // Shift：低速精确移动

	// Spell 对应 X/C/V 三个符卡槽位
	Spell [3]bool
}
