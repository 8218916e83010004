package game

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// RunRecord 一局结束后的归档记录
type RunRecord struct {
	ID         string    `yaml:"id"`
	Difficulty string    `yaml:"difficulty"`
	Score      int       `yaml:"score"`
	Victory    bool      `yaml:"victory"`
	Fragments  int       `yaml:"fragments"`
	PityStacks int       `yaml:"pityStacks"` // 本局结束后下一局的战术支援层数
	FinishedAt time.Time `yaml:"finishedAt"`
}

// runHistoryFile 存档文件结构
type runHistoryFile struct {
	Runs []RunRecord `yaml:"runs"`
}

// 存储路径常量
const (
	runHistoryObject   = "runs"
	runHistoryProperty = "history"
	// DefaultRunHistoryLimit 保留的最近记录数
	DefaultRunHistoryLimit = 50
)

// RunHistory 战斗记录存储
//
// 战斗核心本身不做持久化；RunHistory 位于外部边界，消费 GameOverEvent。
type RunHistory struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	records      []RunRecord
	limit        int
	now          func() time.Time
}

// NewRunHistory 创建记录存储并尝试加载已有记录
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil
//
// 返回：
//   - *RunHistory: 存储实例（加载失败时为空记录）
//   - error: 加载失败的原因（不影响使用）
func NewRunHistory(gdataManager *gdata.Manager) (*RunHistory, error) {
	h := &RunHistory{
		gdataManager: gdataManager,
		limit:        DefaultRunHistoryLimit,
		now:          time.Now,
	}
	if err := h.Load(); err != nil {
		log.Printf("[RunHistory] Warning: Failed to load run history: %v (starting empty)", err)
		return h, err
	}
	return h, nil
}

// Load 从 gdata 加载记录
func (h *RunHistory) Load() error {
	h.records = nil
	if h.gdataManager == nil {
		return nil
	}
	if !h.gdataManager.ObjectPropExists(runHistoryObject, runHistoryProperty) {
		return nil
	}

	data, err := h.gdataManager.LoadObjectProp(runHistoryObject, runHistoryProperty)
	if err != nil {
		return fmt.Errorf("failed to load run history: %w", err)
	}

	var file runHistoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal run history: %w", err)
	}
	h.records = file.Runs
	log.Printf("[RunHistory] Loaded %d runs", len(h.records))
	return nil
}

// Save 把记录写入 gdata，降级模式下直接返回 nil
func (h *RunHistory) Save() error {
	if h.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(runHistoryFile{Runs: h.records})
	if err != nil {
		return fmt.Errorf("failed to marshal run history: %w", err)
	}
	if err := h.gdataManager.SaveObjectProp(runHistoryObject, runHistoryProperty, data); err != nil {
		return fmt.Errorf("failed to save run history: %w", err)
	}
	return nil
}

// Record 归档一局结果并保存
// 参数：
//   - ev: 战斗核心发出的结束事件
//   - setup: 本局的开局参数（用于记录难度和计算下一局层数）
func (h *RunHistory) Record(ev GameOverEvent, setup RunSetup) (RunRecord, error) {
	rec := RunRecord{
		ID:         uuid.NewString(),
		Difficulty: setup.Difficulty.String(),
		Score:      ev.Score,
		Victory:    ev.Victory,
		Fragments:  ev.Fragments,
		PityStacks: NextPityStacks(setup.PityStacks, ev.Victory),
		FinishedAt: h.now().UTC(),
	}

	h.records = append(h.records, rec)
	if len(h.records) > h.limit {
		h.records = h.records[len(h.records)-h.limit:]
	}

	if err := h.Save(); err != nil {
		return rec, err
	}
	log.Printf("[RunHistory] Recorded run %s: score=%d victory=%v", rec.ID, rec.Score, rec.Victory)
	return rec, nil
}

// Records 返回记录副本（按时间先后）
func (h *RunHistory) Records() []RunRecord {
	out := make([]RunRecord, len(h.records))
	copy(out, h.records)
	return out
}

// TotalFragments 返回所有记录的碎片总数
func (h *RunHistory) TotalFragments() int {
	total := 0
	for _, r := range h.records {
		total += r.Fragments
	}
	return total
}

// Best 返回最高分记录
func (h *RunHistory) Best() (RunRecord, bool) {
	if len(h.records) == 0 {
		return RunRecord{}, false
	}
	best := h.records[0]
	for _, r := range h.records[1:] {
		if r.Score > best.Score {
			best = r
		}
	}
	return best, true
}

// CurrentPityStacks 返回最近一局结束后的战术支援层数
func (h *RunHistory) CurrentPityStacks() int {
	if len(h.records) == 0 {
		return 0
	}
	return h.records[len(h.records)-1].PityStacks
}
