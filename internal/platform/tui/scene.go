package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/pharmacy-quest/internal/core"
	"github.com/vovakirdan/pharmacy-quest/internal/quest"
)

const title = "АПТЕЧНЫЙ КВЕСТ"

// clutterRunes fill the scene so that item glyphs have something to hide among.
var clutterRunes = []rune("·.:;,'`~-=+*°оеаинтсрвлкмдпуяАБВГДЕЖЗИКЛМНОПРСТУФХЦЧШЭЮЯ")

// drawMenu draws the title and the three menu buttons; cursor marks the
// keyboard selection.
func drawMenu(scr *core.Screen, l Layout, cursor int) {
	buttons := menuButtons(l)
	if len(buttons) > 0 {
		scr.DrawTextCentered(buttons[0].Rect.Y-3, title, core.ColorBrightGreen)
		scr.DrawTextCentered(buttons[0].Rect.Y-2, "найдите лекарства на полках", core.ColorGray)
	}
	for i, b := range buttons {
		drawButton(scr, b, i == cursor)
	}
}

func drawButton(scr *core.Screen, b Button, selected bool) {
	c := core.ColorWhite
	label := b.Label
	if selected {
		c = core.ColorBrightGreen
		label = "> " + label + " <"
	}
	scr.DrawBox(b.Rect, c)
	x := b.Rect.X + (b.Rect.W-runeLen(label))/2
	scr.DrawText(x, b.Rect.Y+b.Rect.H/2, label, c)
}

// drawPlaying draws the panel with the checklist and the scene with the
// active level's items hidden in seeded clutter.
func drawPlaying(scr *core.Screen, l Layout, snap quest.Snapshot, seed int64) {
	itemCells := make(map[[2]int]quest.Item, len(snap.Items))
	for _, it := range snap.Items {
		col, row := l.ItemCell(it)
		if _, taken := itemCells[[2]int{col, row}]; !taken {
			itemCells[[2]int{col, row}] = it
		}
	}

	panel := l.PanelCols()
	rng := rand.New(rand.NewSource(seed + int64(snap.Level)))
	for row := 0; row < l.Rows; row++ {
		for col := panel; col < l.Cols; col++ {
			// Draw from the generator for every cell so item cells do not
			// shift the clutter around them.
			r := clutterRunes[rng.Intn(len(clutterRunes))]
			dense := rng.Intn(100) < 45
			if it, ok := itemCells[[2]int{col, row}]; ok {
				drawItem(scr, col, row, it, snap)
				continue
			}
			if !dense {
				continue
			}
			c := core.ColorDim
			if rng.Intn(3) == 0 {
				c = core.ColorGray
			}
			scr.Set(col, row, r, c)
		}
	}

	drawPanel(scr, l, snap)

	if snap.Screen == quest.ScreenLevelTransition {
		msg := "Уровень пройден!"
		if snap.Level == snap.Levels {
			msg = "Все лекарства найдены!"
		}
		w := runeLen(msg) + 4
		box := core.NewRect(panel+(l.Cols-panel-w)/2, l.Rows/2-1, w, 3)
		scr.DrawRect(box, ' ', core.ColorDefault)
		scr.DrawBox(box, core.ColorYellow)
		scr.DrawText(box.X+2, box.Y+1, msg, core.ColorYellow)
	}
}

func drawItem(scr *core.Screen, col, row int, it quest.Item, snap quest.Snapshot) {
	switch {
	case it.ID == snap.LastFound:
		scr.Set(col, row, '✓', core.ColorBrightGreen)
	case snap.IsFound(it.ID):
		scr.Set(col, row, '✓', core.ColorGreen)
	default:
		scr.Set(col, row, itemGlyph(it), core.ColorWhite)
	}
}

// itemGlyph is the first letter of the item label.
func itemGlyph(it quest.Item) rune {
	for _, r := range strings.ToUpper(it.Label) {
		return r
	}
	return '?'
}

func drawPanel(scr *core.Screen, l Layout, snap quest.Snapshot) {
	w := l.PanelCols()
	if w < 3 {
		return
	}
	scr.DrawRect(core.NewRect(0, 0, w, l.Rows), ' ', core.ColorDefault)
	scr.DrawBox(core.NewRect(0, 0, w, l.Rows), core.ColorCyan)

	inner := w - 2
	y := 1
	line := func(text string, c core.Color) {
		if y < l.Rows-1 {
			scr.DrawText(1, y, clip(text, inner), c)
		}
		y++
	}

	line(fmt.Sprintf("Уровень %d/%d", snap.Level, snap.Levels), core.ColorBrightWhite)
	line(fmt.Sprintf("Очки: %d", snap.Score), core.ColorYellow)
	line(fmt.Sprintf("Время: %02d:%02d", snap.Minutes, snap.Seconds), core.ColorWhite)
	y++
	line("Найдите:", core.ColorCyan)
	for _, it := range snap.Items {
		if snap.IsFound(it.ID) {
			line("[✓] "+it.Label, core.ColorGreen)
		} else {
			line("[ ] "+it.Label, core.ColorWhite)
		}
	}
}

// drawNameEntry draws the final score and the name prompt.
func drawNameEntry(scr *core.Screen, l Layout, snap quest.Snapshot) {
	mid := l.Rows / 2
	scr.DrawTextCentered(mid-7, "Игра окончена!", core.ColorBrightGreen)
	scr.DrawTextCentered(mid-5, fmt.Sprintf("Очки: %d", snap.Score), core.ColorYellow)
	scr.DrawTextCentered(mid-4, fmt.Sprintf("Время: %02d:%02d", snap.Minutes, snap.Seconds), core.ColorWhite)
	scr.DrawTextCentered(mid-2, "Введите имя:", core.ColorCyan)

	field := core.NewRect((l.Cols-buttonWidth)/2, mid-1, buttonWidth, 3)
	scr.DrawBox(field, core.ColorWhite)
	text := snap.Name
	if snap.CursorVisible {
		text += "_"
	}
	scr.DrawText(field.X+1, field.Y+1, clipLeft(text, field.W-2), core.ColorBrightWhite)

	drawButton(scr, saveButton(l), false)
}

// drawLeaderboard draws the rendered table lines and the back button.
func drawLeaderboard(scr *core.Screen, l Layout, tableView string, empty bool) {
	scr.DrawTextCentered(1, "Таблица лидеров", core.ColorBrightGreen)

	if empty {
		scr.DrawTextCentered(4, "Пока нет результатов", core.ColorGray)
	} else {
		lines := strings.Split(tableView, "\n")
		width := 0
		for _, ln := range lines {
			width = max(width, runeLen(ln))
		}
		x := max((l.Cols-width)/2, 0)
		for i, ln := range lines {
			c := core.ColorWhite
			if i == 0 {
				c = core.ColorCyan
			}
			scr.DrawText(x, 3+i, ln, c)
		}
	}

	drawButton(scr, backButton(l), false)
}

func runeLen(s string) int {
	return len([]rune(s))
}

// clip keeps the first n runes of s.
func clip(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// clipLeft keeps the last n runes of s so the cursor stays visible.
func clipLeft(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
