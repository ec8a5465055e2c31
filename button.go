package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
)

type ButtonState int

const (
	ButtonStateNormal ButtonState = iota
	ButtonStateHover
	ButtonStateDown
)

type BaseButton struct {
	Rect FRectangle

	Disabled bool

	// fires when the button is released over it
	OnClick func()

	State ButtonState

	readyToClick bool
}

func (b *BaseButton) Update() {
	if b.Disabled {
		if b.State != ButtonStateNormal {
			SetRedraw()
		}
		b.State = ButtonStateNormal
		b.readyToClick = false
		return
	}

	prevState := b.State

	// touch
	if IsTouchJustPressed(b.Rect, nil) {
		b.State = ButtonStateDown
		b.readyToClick = true
	}
	if IsTouchJustReleased(b.Rect, nil) {
		if b.readyToClick && b.OnClick != nil {
			b.OnClick()
		}
		b.readyToClick = false
		b.State = ButtonStateNormal
	}

	// mouse
	pt := CursorFPt()

	inRect := pt.In(b.Rect)

	if inRect {
		if IsMouseButtonJustPressed(eb.MouseButtonLeft) {
			b.State = ButtonStateDown
			b.readyToClick = true
		}

		if b.readyToClick && IsMouseButtonJustReleased(eb.MouseButtonLeft) {
			if b.OnClick != nil {
				b.OnClick()
			}
			b.readyToClick = false
		}

		if b.State != ButtonStateDown || !IsMouseButtonPressed(eb.MouseButtonLeft) {
			b.State = ButtonStateHover
		}
	} else if len(TheInputManager.TouchingBuf) <= 0 {
		b.State = ButtonStateNormal
		b.readyToClick = false
	}

	if b.State != prevState {
		SetRedraw()
	}
}

type TextButton struct {
	BaseButton

	Text string

	// drawn with ColorButtonSelected when not hovered or pressed
	Selected bool
}

func NewTextButton(text string) *TextButton {
	b := new(TextButton)
	b.Text = text
	return b
}

func (b *TextButton) Colors() (bg color.Color, fg color.Color) {
	fg = TheColorTable[ColorButtonText]

	if b.Disabled {
		return TheColorTable[ColorButtonDisabled], fg
	}

	switch b.BaseButton.State {
	case ButtonStateHover:
		bg = TheColorTable[ColorButtonOnHover]
	case ButtonStateDown:
		bg = TheColorTable[ColorButtonOnDown]
	default:
		if b.Selected {
			bg = TheColorTable[ColorButtonSelected]
		} else {
			bg = TheColorTable[ColorButton]
		}
	}

	return bg, fg
}

func (b *TextButton) Draw(dst *eb.Image) {
	bgColor, textColor := b.Colors()

	// draw background color
	FillRect(dst, b.Rect, bgColor)

	// draw text color
	op := &DrawTextOptions{}
	op.ColorScale.ScaleWithColor(textColor)

	DrawTextInRect(dst, b.Text, ClearFace, b.Rect.Inset(b.Rect.Dy()*0.15), op)
}
