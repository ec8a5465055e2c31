package main

import (
	"fmt"

	eb "github.com/hajimehoshi/ebiten/v2"

	"jigsaw/puzzle"
)

// TopUI is the control bar: difficulty, picture and start.
type TopUI struct {
	Rect FRectangle

	Disabled      bool
	StartDisabled bool

	DifficultyButtons []*TextButton
	ImagePrevButton   *TextButton
	ImageNextButton   *TextButton
	StartButton       *TextButton

	ImageName string

	Difficulty         int
	OnDifficultyChange func(difficulty int)
	OnImageStep        func(step int)
	OnStart            func()

	// widths of each element, in units of the bar's layout
	DifficultyWidth float64 // constant
	StepWidth       float64 // constant
	NameWidth       float64 // constant
	StartWidth      float64 // constant
	GapWidth        float64 // constant
}

func NewTopUI() *TopUI {
	tu := new(TopUI)

	tu.DifficultyWidth = 1.2
	tu.StepWidth = 0.8
	tu.NameWidth = 3.4
	tu.StartWidth = 2
	tu.GapWidth = 0.3

	// ==============================
	// create difficulty buttons
	// ==============================
	for _, d := range puzzle.SupportedDifficulties {
		b := NewTextButton(fmt.Sprintf("%dx%d", d, d))
		b.OnClick = func() {
			prevDifficulty := tu.Difficulty
			tu.Difficulty = d
			if tu.OnDifficultyChange != nil && prevDifficulty != tu.Difficulty {
				tu.OnDifficultyChange(tu.Difficulty)
			}
		}
		tu.DifficultyButtons = append(tu.DifficultyButtons, b)
	}

	// ==============================
	// create picture buttons
	// ==============================
	tu.ImagePrevButton = NewTextButton("<")
	tu.ImagePrevButton.OnClick = func() {
		if tu.OnImageStep != nil {
			tu.OnImageStep(-1)
		}
	}

	tu.ImageNextButton = NewTextButton(">")
	tu.ImageNextButton.OnClick = func() {
		if tu.OnImageStep != nil {
			tu.OnImageStep(+1)
		}
	}

	tu.StartButton = NewTextButton("start")
	tu.StartButton.OnClick = func() {
		if tu.OnStart != nil {
			tu.OnStart()
		}
	}

	return tu
}

func (tu *TopUI) buttons() []*TextButton {
	buttons := make([]*TextButton, 0, len(tu.DifficultyButtons)+3)
	buttons = append(buttons, tu.DifficultyButtons...)
	buttons = append(buttons, tu.ImagePrevButton, tu.ImageNextButton, tu.StartButton)
	return buttons
}

func (tu *TopUI) Update() {
	tu.layout()

	for i, b := range tu.DifficultyButtons {
		b.Disabled = tu.Disabled
		b.Selected = puzzle.SupportedDifficulties[i] == tu.Difficulty
	}
	tu.ImagePrevButton.Disabled = tu.Disabled
	tu.ImageNextButton.Disabled = tu.Disabled
	tu.StartButton.Disabled = tu.Disabled || tu.StartDisabled

	for _, b := range tu.buttons() {
		b.Update()
	}
}

func (tu *TopUI) Draw(dst *eb.Image) {
	for _, b := range tu.buttons() {
		b.Draw(dst)
	}

	tu.DrawImageName(dst)
}

func (tu *TopUI) totalWidth() float64 {
	n := float64(len(tu.DifficultyButtons))
	return n*tu.DifficultyWidth + (n-1)*tu.GapWidth*0.5 +
		tu.GapWidth + tu.StepWidth*2 + tu.NameWidth +
		tu.GapWidth + tu.StartWidth
}

func (tu *TopUI) layout() {
	unit := tu.Rect.Dx() / tu.totalWidth()
	h := tu.Rect.Dy()
	x := tu.Rect.Min.X
	y := tu.Rect.Min.Y

	next := func(w float64) FRectangle {
		r := FRectXYWH(x, y, w*unit, h)
		x += w * unit
		return r
	}

	for i, b := range tu.DifficultyButtons {
		if i > 0 {
			next(tu.GapWidth * 0.5)
		}
		b.Rect = next(tu.DifficultyWidth)
	}

	next(tu.GapWidth)
	tu.ImagePrevButton.Rect = next(tu.StepWidth)
	next(tu.NameWidth)
	tu.ImageNextButton.Rect = next(tu.StepWidth)

	next(tu.GapWidth)
	tu.StartButton.Rect = next(tu.StartWidth)
}

func (tu *TopUI) ImageNameRect() FRectangle {
	prev := tu.ImagePrevButton.Rect
	next := tu.ImageNextButton.Rect
	return FRect(prev.Max.X, prev.Min.Y, next.Min.X, next.Max.Y).Inset(prev.Dy() * 0.15)
}

func (tu *TopUI) DrawImageName(dst *eb.Image) {
	op := &DrawTextOptions{}
	op.ColorScale.ScaleWithColor(TheColorTable[ColorStatusText])

	DrawTextInRect(dst, tu.ImageName, ClearFace, tu.ImageNameRect(), op)
}
