package game

import "time"

// Clock 固定步长累加器
//
// 渲染层每帧调用 Advance 传入真实经过的时间，Clock 返回本帧应执行的逻辑步数。
// 单帧累积时间有上限，卡顿后不会一次补跑大量逻辑帧。
type Clock struct {
	step     time.Duration
	maxDelta time.Duration
	backlog  time.Duration
	paused   bool
	steps    uint64
}

// NewClock 创建时钟
// 参数:
//   - stepsPerSecond: 逻辑帧率（如 90）
//   - maxDelta: 单次 Advance 最多累积的时间
func NewClock(stepsPerSecond float64, maxDelta time.Duration) *Clock {
	return &Clock{
		step:     time.Duration(float64(time.Second) / stepsPerSecond),
		maxDelta: maxDelta,
	}
}

// Step 返回单个逻辑帧的时长
func (c *Clock) Step() time.Duration {
	return c.step
}

// Advance 累积经过的时间并返回需要执行的逻辑步数
// 暂停期间不累积，返回 0
func (c *Clock) Advance(elapsed time.Duration) int {
	if c.paused || elapsed <= 0 {
		return 0
	}
	if elapsed > c.maxDelta {
		elapsed = c.maxDelta
	}
	c.backlog += elapsed

	n := 0
	for c.backlog >= c.step {
		c.backlog -= c.step
		n++
	}
	c.steps += uint64(n)
	return n
}

// Run 累积时间并同步执行对应次数的 step 回调，返回执行次数
func (c *Clock) Run(elapsed time.Duration, step func()) int {
	n := c.Advance(elapsed)
	for i := 0; i < n; i++ {
		step()
	}
	return n
}

// Alpha 返回未消耗的时间占一个步长的比例，可用于渲染插值
func (c *Clock) Alpha() float64 {
	return float64(c.backlog) / float64(c.step)
}

// TotalSteps 返回累计执行的逻辑步数
func (c *Clock) TotalSteps() uint64 {
	return c.steps
}

// SetPaused 设置暂停状态
func (c *Clock) SetPaused(paused bool) {
	c.paused = paused
}

// TogglePause 切换暂停状态并返回新状态
func (c *Clock) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

// Paused 返回是否暂停
func (c *Clock) Paused() bool {
	return c.paused
}
