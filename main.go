package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/decker502/voidline/pkg/app"
	"github.com/decker502/voidline/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

// stringList 可重复的字符串参数
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, strings.ToUpper(strings.TrimSpace(v)))
	return nil
}

func main() {
	var boosters stringList
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	difficulty := flag.String("difficulty", "", "Override difficulty (NORMAL, EASY, HARD, EXTREME, INFINITY, BOSS_RUSH, BOSS_RUSH_EXTREME)")
	loadout := flag.String("loadout", "", "Loadout YAML file (default: embedded data/loadout.yaml)")
	combat := flag.String("combat", "", "Combat config YAML file (default: embedded data/combat.yaml)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	pity := flag.Int("pity", -1, "Support stacks (-1 = from loadout or run history)")
	flag.Var(&boosters, "booster", "Add a booster by name (repeatable)")
	flag.Parse()

	if err := app.ParseBoosters(boosters); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		CombatPath:  *combat,
		LoadoutPath: *loadout,
		Difficulty:  strings.ToUpper(*difficulty),
		Boosters:    boosters,
		Pity:        *pity,
		Seed:        *seed,
	})
	if err != nil {
		// 非 verbose 模式下 log 输出已被丢弃
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	w, h := a.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("VOIDLINE")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
