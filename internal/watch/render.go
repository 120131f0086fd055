package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/cory-johannsen/grindstone/internal/game/action"
	"github.com/cory-johannsen/grindstone/internal/game/regen"
)

const barWidth = 20

// Frame is everything one status line shows.
type Frame struct {
	HP, SP    float64
	Pool      regen.PoolState
	HasPool   bool
	Action    *action.ActiveAction
	LastEvent string
	Now       time.Time
	Color     bool
}

// Render formats f as a single status line.
func Render(f Frame) string {
	c := func(color string) string {
		if f.Color {
			return color
		}
		return ""
	}

	var b strings.Builder
	if !f.HasPool {
		b.WriteString(Colorize(c(Dim), "waiting for pool sync"))
	} else {
		hpColor := Green
		if f.Pool.MaxHP > 0 && f.HP < float64(f.Pool.MaxHP)/4 {
			hpColor = BrightRed
		}
		b.WriteString(Colorf(c(hpColor), "HP %s %.0f/%d", bar(f.HP, f.Pool.MaxHP), f.HP, f.Pool.MaxHP))
		b.WriteString("  ")
		b.WriteString(Colorf(c(Cyan), "SP %s %.0f/%d", bar(f.SP, f.Pool.MaxSP), f.SP, f.Pool.MaxSP))
		if f.Pool.InBattle {
			b.WriteString("  ")
			b.WriteString(Colorize(c(Bold+Red), "IN BATTLE"))
		}
	}

	if f.Action != nil {
		v := f.Action.View(f.Now)
		b.WriteString("  ")
		b.WriteString(Colorf(c(Yellow), "%s #%d %3.0f%% (%s left)",
			v.ActionID, v.Attempt, v.Progress*100, v.Remaining.Round(time.Second)))
	} else {
		b.WriteString("  ")
		b.WriteString(Colorize(c(Dim), "idle"))
	}

	if f.LastEvent != "" {
		b.WriteString("  ")
		b.WriteString(Colorize(c(Dim), f.LastEvent))
	}
	return b.String()
}

func bar(cur float64, size int) string {
	filled := 0
	if size > 0 {
		filled = int(cur / float64(size) * barWidth)
	}
	filled = min(max(filled, 0), barWidth)
	return fmt.Sprintf("[%s%s]", strings.Repeat("#", filled), strings.Repeat(".", barWidth-filled))
}
