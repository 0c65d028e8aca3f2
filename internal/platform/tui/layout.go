package tui

import (
	"github.com/vovakirdan/pharmacy-quest/internal/core"
	"github.com/vovakirdan/pharmacy-quest/internal/quest"
)

// Layout projects the 1440x1024 scene onto a grid of terminal cells.
// The last terminal row belongs to the help bar and is not part of the scene.
type Layout struct {
	Cols int
	Rows int
}

// NewLayout builds the layout for a terminal of the given size.
func NewLayout(width, height int) Layout {
	return Layout{
		Cols: max(width, 1),
		Rows: max(height-1, 1),
	}
}

// PanelCols is the width of the left panel in cells.
func (l Layout) PanelCols() int {
	return quest.PanelWidth * l.Cols / quest.SceneWidth
}

// CellToScene returns the scene pixel at the centre of cell (col, row).
// The second result is false for cells outside the scene.
func (l Layout) CellToScene(col, row int) (core.Point, bool) {
	if col < 0 || row < 0 || col >= l.Cols || row >= l.Rows {
		return core.Point{}, false
	}
	x := (2*col + 1) * quest.SceneWidth / (2 * l.Cols)
	y := (2*row + 1) * quest.SceneHeight / (2 * l.Rows)
	return core.Pt(x, y), true
}

// SceneToCell returns the cell covering scene pixel p.
func (l Layout) SceneToCell(p core.Point) (int, int) {
	col := core.Clamp(p.X*l.Cols/quest.SceneWidth, 0, l.Cols-1)
	row := core.Clamp(p.Y*l.Rows/quest.SceneHeight, 0, l.Rows-1)
	return col, row
}

// ItemCell returns the cell where an item is drawn.
func (l Layout) ItemCell(it quest.Item) (int, int) {
	return l.SceneToCell(core.Pt(it.Pos.X+quest.PanelWidth, it.Pos.Y))
}

// Button is a clickable labelled box.
type Button struct {
	Label string
	Rect  core.Rect
	Event quest.EventKind
}

// Hit reports whether the cell (col, row) is on the button.
func (b Button) Hit(col, row int) bool {
	return b.Rect.Contains(col, row)
}

const (
	buttonWidth  = 24
	buttonHeight = 3
)

// menuButtons lays out the main menu vertically around the middle of the screen.
func menuButtons(l Layout) []Button {
	labels := []struct {
		text  string
		event quest.EventKind
	}{
		{"Новая игра", quest.EventStartGame},
		{"Таблица лидеров", quest.EventViewLeaderboard},
		{"Выход", quest.EventQuit},
	}

	top := l.Rows/2 - 4
	buttons := make([]Button, len(labels))
	for i, lb := range labels {
		buttons[i] = Button{
			Label: lb.text,
			Rect:  core.NewRect((l.Cols-buttonWidth)/2, top+i*(buttonHeight+1), buttonWidth, buttonHeight),
			Event: lb.event,
		}
	}
	return buttons
}

// saveButton is the pointer confirm control of the name prompt.
func saveButton(l Layout) Button {
	return Button{
		Label: "Сохранить",
		Rect:  core.NewRect((l.Cols-buttonWidth)/2, l.Rows/2+3, buttonWidth, buttonHeight),
		Event: quest.EventConfirm,
	}
}

// backButton returns from the leaderboard to the menu.
func backButton(l Layout) Button {
	return Button{
		Label: "Назад",
		Rect:  core.NewRect((l.Cols-buttonWidth)/2, l.Rows-buttonHeight-1, buttonWidth, buttonHeight),
		Event: quest.EventBack,
	}
}

// buttonAt returns the button under cell (col, row).
func buttonAt(buttons []Button, col, row int) (Button, bool) {
	for _, b := range buttons {
		if b.Hit(col, row) {
			return b, true
		}
	}
	return Button{}, false
}
