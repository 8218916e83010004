// simulate 无窗口运行一局战斗，用于平衡性检查和复现问题
//
// 用法:
//
//	go run ./cmd/simulate --seed 42 --frames 5400
//	go run ./cmd/simulate --difficulty BOSS_RUSH --boosters ATTACK_UP,EXTRA_LIFE --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/decker502/voidline/pkg/battle"
	"github.com/decker502/voidline/pkg/config"
	"github.com/decker502/voidline/pkg/game"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	combatPath = flag.String("combat", "data/combat.yaml", "战斗参数文件")
	loadout    = flag.String("loadout", "data/loadout.yaml", "出击配置文件")
	difficulty = flag.String("difficulty", "", "覆盖难度")
	boosters   = flag.String("boosters", "", "追加增益，逗号分隔")
	pity       = flag.Int("pity", 0, "战术支援层数")
	seed       = flag.Int64("seed", 1, "随机种子")
	frames     = flag.Int("frames", 90*60, "最多运行的逻辑帧数")
	idle       = flag.Bool("idle", false, "不移动不射击（测试纯受击）")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	cfg, err := config.LoadCombatConfig(*combatPath)
	if err != nil {
		return err
	}
	lc, err := config.LoadLoadoutConfig(*loadout)
	if err != nil {
		return err
	}
	if *difficulty != "" {
		lc.Difficulty = strings.ToUpper(*difficulty)
	}
	if *boosters != "" {
		lc.Boosters = append(lc.Boosters, strings.Split(strings.ToUpper(*boosters), ",")...)
	}
	lc.PityStacks = *pity

	setup, err := game.RunSetupFromConfig(lc)
	if err != nil {
		return err
	}
	sim, err := battle.NewSimulation(cfg, setup, *seed)
	if err != nil {
		return err
	}

	cues := make(map[game.Cue]int)
	for i := 0; i < *frames; i++ {
		sim.Step(autopilot(i, *idle))
		for _, c := range sim.Cues() {
			cues[c]++
		}
		if _, over := sim.GameOver(); over {
			break
		}
	}

	snap := sim.Snapshot()
	fmt.Fprintf(out, "difficulty: %s  seed: %d\n", setup.Difficulty, *seed)
	fmt.Fprintf(out, "frames:     %d\n", snap.Frame)
	fmt.Fprintf(out, "stage:      %d\n", snap.Stage)
	fmt.Fprintf(out, "score:      %d\n", snap.Score)
	fmt.Fprintf(out, "fragments:  %d\n", snap.Fragments)
	fmt.Fprintf(out, "hp:         %.1f/%.1f  revives: %d  graze: %d\n", snap.HP, snap.MaxHP, snap.Revives, snap.Grazing)
	if ev, over := sim.GameOver(); over {
		fmt.Fprintf(out, "result:     victory=%v\n", ev.Victory)
	} else {
		fmt.Fprintf(out, "result:     still running\n")
	}
	for c := game.CueShoot; c <= game.CuePlayerHit; c++ {
		fmt.Fprintf(out, "cue %-13s %d\n", c.String()+":", cues[c])
	}
	return nil
}

// autopilot 持续射击并左右摆动，每 10 秒尝试释放符卡
func autopilot(frame int, idle bool) game.InputState {
	if idle {
		return game.InputState{}
	}
	in := game.InputState{Fire: true}
	if (frame/120)%2 == 0 {
		in.Left = true
	} else {
		in.Right = true
	}
	if frame%900 == 0 && frame > 0 {
		in.Spell[(frame/900)%3] = true
	}
	return in
}
