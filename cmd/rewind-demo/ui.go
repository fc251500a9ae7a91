package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/rewind"
	"github.com/dshills/rewind/internal/config"
)

// field is one undo-tracked text input. Each keystroke records a tagged
// snapshot, so every edit is individually undoable.
type field struct {
	label   string
	content string
	tracker *rewind.Tracker[string]
}

func newField(label string, capacity int) *field {
	f := &field{label: label}
	f.tracker = rewind.NewTracker(
		func() string { return f.content },
		func(s string) { f.content = s },
		rewind.WithCapacity(capacity),
	)
	return f
}

func (f *field) insert(r rune) {
	f.content += string(r)
	f.tracker.RecordTagged(fmt.Sprintf("insert %q in %s", r, f.label))
}

func (f *field) deleteLast() {
	runes := []rune(f.content)
	if len(runes) == 0 {
		return
	}
	f.content = string(runes[:len(runes)-1])
	f.tracker.RecordTagged(fmt.Sprintf("delete in %s", f.label))
}

// ui owns the terminal screen and the undo machinery behind the fields.
type ui struct {
	screen tcell.Screen
	cfg    config.Config

	fields []*field
	active int

	agg        *rewind.Aggregator
	lastAction string
}

func newUI(cfg config.Config) (*ui, error) {
	title := newField("title", cfg.Title.Capacity)
	body := newField("body", cfg.Body.Capacity)

	agg, err := rewind.NewAggregator(title.tracker, body.tracker)
	if err != nil {
		return nil, err
	}

	u := &ui{
		cfg:    cfg,
		fields: []*field{title, body},
		agg:    agg,
	}
	for _, f := range u.fields {
		f.tracker.OnStateSet(func(tag any) {
			if tag == nil {
				u.lastAction = "state set"
				return
			}
			u.lastAction = fmt.Sprint(tag)
		})
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	u.screen = screen
	return u, nil
}

func (u *ui) shutdown() {
	if u.screen != nil {
		u.screen.Fini()
	}
}

// run drives the event loop until the user quits.
func (u *ui) run() error {
	for {
		u.draw()

		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if u.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey applies one key event. Returns true when the user quits.
func (u *ui) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		u.active = (u.active + 1) % len(u.fields)
	case tcell.KeyCtrlZ:
		if err := u.agg.Undo(); err != nil {
			u.lastAction = err.Error()
		}
	case tcell.KeyCtrlY:
		if err := u.agg.Redo(); err != nil {
			u.lastAction = err.Error()
		}
	case tcell.KeyCtrlS:
		u.agg.ClearIsChangedFlag()
		u.lastAction = "marked saved"
	case tcell.KeyCtrlX:
		u.agg.ClearStacks()
		u.lastAction = "history cleared"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		u.fields[u.active].deleteLast()
	case tcell.KeyRune:
		u.fields[u.active].insert(ev.Rune())
	}
	return false
}

func (u *ui) draw() {
	u.screen.Clear()

	labelStyle := tcell.StyleDefault.Bold(true)
	dimStyle := tcell.StyleDefault.Dim(true)

	row := 1
	for i, f := range u.fields {
		style := tcell.StyleDefault
		if i == u.active {
			style = style.Underline(true)
		}
		drawString(u.screen, 2, row, labelStyle, f.label+":")

		x := 2 + runewidth.StringWidth(f.label) + 2
		drawString(u.screen, x, row, style, f.content)
		if i == u.active {
			u.screen.ShowCursor(x+runewidth.StringWidth(f.content), row)
		}
		row += 2
	}

	status := fmt.Sprintf("undo:%v  redo:%v  changed:%v",
		u.agg.CanUndo(), u.agg.CanRedo(), u.agg.IsChanged())
	if u.cfg.ShowTags && u.lastAction != "" {
		status += "  |  " + u.lastAction
	}

	_, h := u.screen.Size()
	drawString(u.screen, 2, h-3, dimStyle, status)
	drawString(u.screen, 2, h-2, dimStyle,
		"tab switch  ctrl-z undo  ctrl-y redo  ctrl-s save  ctrl-x clear  esc quit")

	u.screen.Show()
}

// drawString renders text starting at x,y, advancing by display width so
// wide runes stay aligned.
func drawString(s tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}
