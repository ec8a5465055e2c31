package main

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"

	eb "github.com/hajimehoshi/ebiten/v2"

	"jigsaw/notify"
	"jigsaw/picture"
	"jigsaw/puzzle"
)

type GameResult int

const (
	ResultNone GameResult = iota
	ResultSolved
	ResultExpired
)

type GameUI struct {
	Controller *puzzle.Controller

	Difficulty int

	Sources     []picture.Source
	SourceIndex int

	Loader picture.Loader
	// ebiten copy of Loader.Image(), nil while loading
	Picture *eb.Image

	Canvas *CanvasSurface
	// canvas size used while no picture is ready
	PlaceholderSize image.Point

	TopUI *TopUI

	Pointer PointerTracker

	Notifier *notify.Notifier

	TimeLeft int
	Result   GameResult
	// remaining seconds when solved
	ResultTime int
	BannerTimer Timer

	StatusHeight float64 // constant, relative to ScreenHeight
	Margin       float64 // constant

	// available width the current picture was fitted to
	fittedWidth float64
	lastDragged int
}

func NewGameUI(sources []picture.Source, difficulty int, settings puzzle.Settings) *GameUI {
	gu := new(GameUI)

	gu.Difficulty = puzzle.ClampDifficulty(difficulty)
	gu.Sources = sources

	gu.StatusHeight = 0.05
	gu.Margin = 8

	gu.BannerTimer.Duration = UpdateDelta() * 20

	gu.Notifier = notify.New(notify.DefaultPreferences(), FlagNotify)

	gu.Controller = puzzle.NewController(settings, &sessionListener{ui: gu})
	if FlagSeed != 0 {
		seed := uint64(FlagSeed)
		gu.Controller.NewRand = func() *rand.Rand {
			seed++
			return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
		}
	}

	gu.TopUI = NewTopUI()
	gu.TopUI.Difficulty = gu.Difficulty
	gu.TopUI.OnDifficultyChange = func(difficulty int) {
		gu.SetDifficulty(difficulty)
	}
	gu.TopUI.OnImageStep = func(step int) {
		gu.SelectSource(gu.SourceIndex + step)
	}
	gu.TopUI.OnStart = func() {
		gu.Start()
	}

	gu.TimeLeft = settings.TimeLimit
	gu.lastDragged = puzzle.NoTile

	return gu
}

// =================================
// actions
// =================================

func (gu *GameUI) SetDifficulty(difficulty int) {
	if err := puzzle.ValidateDifficulty(difficulty); err != nil {
		ErrorLogger.Printf("%v", err)
		return
	}
	gu.Difficulty = difficulty
	gu.TopUI.Difficulty = difficulty
	SetRedraw()
}

// SelectSource switches to the source at index, wrapping around.
// The running session, if any, is dropped and the placeholder is
// shown until the new picture is loaded.
func (gu *GameUI) SelectSource(index int) {
	if len(gu.Sources) <= 0 {
		return
	}

	index %= len(gu.Sources)
	if index < 0 {
		index += len(gu.Sources)
	}

	gu.SourceIndex = index
	gu.loadSource(gu.Sources[index])
}

// AddSource appends src and selects it.
func (gu *GameUI) AddSource(src picture.Source) {
	gu.Sources = append(gu.Sources, src)
	gu.SelectSource(len(gu.Sources) - 1)
}

func (gu *GameUI) loadSource(src picture.Source) {
	gu.Controller.Teardown()
	gu.Result = ResultNone

	gu.setPicture(nil)
	gu.fittedWidth = gu.availableWidth()
	gu.Loader.Load(src, gu.fittedWidth)

	InfoLogger.Printf("loading %s", src.Name)
	SetRedraw()
}

func (gu *GameUI) setPicture(img *image.NRGBA) {
	if gu.Picture != nil {
		gu.Picture.Deallocate()
		gu.Picture = nil
	}

	if img != nil {
		gu.Picture = eb.NewImageFromImage(img)
		size := img.Bounds().Size()
		gu.PlaceholderSize = size
		if gu.Canvas == nil {
			gu.Canvas = NewCanvasSurface(size.X, size.Y)
		} else {
			gu.Canvas.Resize(size.X, size.Y)
		}
	}
}

// Start begins a new session with the current difficulty and picture.
func (gu *GameUI) Start() {
	err := gu.Controller.Start(gu.Difficulty, gu.CanvasSize(), gu.pictureImage())
	if err != nil {
		if errors.Is(err, puzzle.ErrImageNotReady) {
			InfoLogger.Printf("can't start yet: %v", err)
		} else {
			ErrorLogger.Printf("failed to start: %v", err)
		}
		return
	}

	gu.Result = ResultNone
	gu.BannerTimer.Current = 0

	InfoLogger.Printf(
		"started %dx%d puzzle on %s", gu.Difficulty, gu.Difficulty, gu.Loader.Source().Name)
	SetRedraw()
}

// Restart starts over with the same settings, if a picture is ready.
func (gu *GameUI) Restart() {
	if gu.Picture != nil {
		gu.Start()
	}
}

func (gu *GameUI) pictureImage() image.Image {
	// a nil *eb.Image must not become a non-nil image.Image
	if gu.Picture == nil {
		return nil
	}
	return gu.Picture
}

// ResultText describes how the last session ended.
func (gu *GameUI) ResultText() string {
	switch gu.Result {
	case ResultSolved:
		return fmt.Sprintf("solved %dx%d %s with %d seconds left",
			gu.Difficulty, gu.Difficulty, gu.Loader.Source().Name, gu.ResultTime)
	case ResultExpired:
		return "time is up"
	}
	return ""
}

// =================================
// update
// =================================

func (gu *GameUI) Update() {
	// picture loading
	if gu.Loader.Poll() {
		if err := gu.Loader.Err(); err != nil {
			ErrorLogger.Printf("%v", err)
		} else {
			gu.setPicture(gu.Loader.Image())
			InfoLogger.Printf("loaded %s", gu.Loader.Source().Name)
		}
		SetRedraw()
	}

	// refit the picture when the window width changes between sessions
	if gu.fittedWidth != gu.availableWidth() &&
		!gu.Controller.HasSession() && !gu.Loader.IsLoading() && gu.Picture != nil {
		gu.setPicture(nil)
		gu.fittedWidth = gu.availableWidth()
		gu.Loader.Refit(gu.fittedWidth)
	}

	// top ui
	gu.TopUI.Rect = gu.TopUIRect()
	gu.TopUI.StartDisabled = gu.Picture == nil
	gu.TopUI.ImageName = gu.imageName()
	gu.TopUI.Update()

	// board input
	gu.Pointer.Update(gu.CanvasRect(), gu.CanvasSize(), gu.Controller.Push)

	gu.Controller.Update(UpdateDelta())

	dragged := puzzle.NoTile
	if s := gu.Controller.Session(); s != nil {
		dragged = s.Drag.Dragged()
	}
	if dragged != puzzle.NoTile && dragged != gu.lastDragged {
		PlaySoundBytes(SoundPickup, 1)
	}
	gu.lastDragged = dragged

	if gu.Result != ResultNone && gu.BannerTimer.Current < gu.BannerTimer.Duration {
		gu.BannerTimer.TickUp()
		gu.BannerTimer.ClampCurrent()
		SetRedraw()
	}

	if s := gu.Controller.Session(); s != nil {
		DebugPrint("state", s.State)
		DebugPrintf("placed", "%d/%d", s.Board.PlacedCount(), s.Board.TileCount())
		DebugPrint("dragged", s.Drag.Dragged())
	}
	DebugPrint("picture", gu.Loader.Source().Name)
}

func (gu *GameUI) imageName() string {
	switch {
	case gu.Loader.IsLoading():
		return "loading..."
	case gu.Loader.Err() != nil:
		return gu.Loader.Source().Name + " (failed)"
	}
	return gu.Loader.Source().Name
}

// =================================
// layout
// =================================

func (gu *GameUI) availableWidth() float64 {
	return max(ScreenWidth, 1)
}

func (gu *GameUI) TopUIRect() FRectangle {
	h := puzzle.Clamp(ScreenHeight*0.07, 28, 56)
	return FRectXYWH(gu.Margin, gu.Margin, max(ScreenWidth-gu.Margin*2, 0), h)
}

func (gu *GameUI) StatusRect() FRectangle {
	top := gu.TopUIRect()
	h := puzzle.Clamp(ScreenHeight*gu.StatusHeight, 20, 40)
	return FRectXYWH(top.Min.X, top.Max.Y+gu.Margin*0.5, top.Dx(), h)
}

// CanvasSize is the logical canvas size in pixels.
func (gu *GameUI) CanvasSize() FPoint {
	if gu.Picture != nil {
		return ImageSizeFPt(gu.Picture)
	}
	if gu.PlaceholderSize.X > 0 && gu.PlaceholderSize.Y > 0 {
		return PointToFPoint(gu.PlaceholderSize)
	}
	w := gu.availableWidth() * picture.WidthRatio
	return FPt(w, w*0.75)
}

// CanvasRect is where the canvas is shown on screen.
// The canvas is shrunk to fit below the status line, never enlarged.
func (gu *GameUI) CanvasRect() FRectangle {
	size := gu.CanvasSize()
	status := gu.StatusRect()

	areaTop := status.Max.Y + gu.Margin
	areaH := max(ScreenHeight-areaTop-gu.Margin, 1)
	areaW := max(ScreenWidth, 1)

	scale := min(1, areaW/size.X, areaH/size.Y)

	w, h := size.X*scale, size.Y*scale
	return FRectXYWH(ScreenWidth*0.5-w*0.5, areaTop, w, h)
}

// =================================
// draw
// =================================

func (gu *GameUI) Draw(dst *eb.Image) {
	dst.Fill(TheColorTable[ColorBg])

	gu.TopUI.Draw(dst)
	gu.drawStatus(dst)
	gu.drawCanvas(dst)
	gu.drawBanner(dst)
}

func (gu *GameUI) drawStatus(dst *eb.Image) {
	rect := gu.StatusRect()
	half := rect.Dx() * 0.5

	op := &DrawTextOptions{}
	op.ColorScale.ScaleWithColor(TheColorTable[ColorStatusText])

	timeText := fmt.Sprintf("time: %d", gu.TimeLeft)
	drawTextLeft(dst, timeText, ClearFace, FRectXYWH(rect.Min.X, rect.Min.Y, half, rect.Dy()), op)

	if s := gu.Controller.Session(); s != nil {
		progress := fmt.Sprintf("placed %d/%d", s.Board.PlacedCount(), s.Board.TileCount())
		drawTextRight(dst, progress, ClearFace, FRectXYWH(rect.Min.X+half, rect.Min.Y, half, rect.Dy()), op)
	}
}

func (gu *GameUI) drawCanvas(dst *eb.Image) {
	rect := gu.CanvasRect()

	if gu.Picture == nil || gu.Canvas == nil || !gu.Controller.HasSession() {
		gu.drawPlaceholder(dst, rect)
		return
	}

	if gu.Controller.NeedsRedraw() {
		gu.Canvas.BgColor = TheColorTable[ColorCanvasBg]
		style := puzzle.RenderStyle{
			StrokeColor:    TheColorTable[ColorTileStroke],
			HighlightColor: TheColorTable[ColorTileHighlight],
			StrokeWidth:    puzzle.DefaultRenderStyle.StrokeWidth,
		}
		gu.Controller.Render(gu.Canvas, gu.Picture, style)
	}

	canvasSize := gu.Canvas.Size()

	op := &DrawImageOptions{}
	op.GeoM.Scale(rect.Dx()/canvasSize.X, rect.Dy()/canvasSize.Y)
	op.GeoM.Translate(rect.Min.X, rect.Min.Y)
	DrawImage(dst, gu.Canvas.Image, op)
}

func (gu *GameUI) drawPlaceholder(dst *eb.Image, rect FRectangle) {
	FillRect(dst, rect, TheColorTable[ColorPlaceholder])

	var caption string
	switch {
	case gu.Loader.IsLoading():
		caption = "loading..."
	case gu.Loader.Err() != nil:
		caption = "couldn't load the picture"
	case gu.Picture == nil:
		caption = "no picture"
	default:
		caption = "press start"
	}

	op := &DrawTextOptions{}
	op.ColorScale.ScaleWithColor(TheColorTable[ColorPlaceholderText])

	textRect := FRectWH(rect.Dx()*0.6, min(rect.Dy()*0.15, 60))
	center := rect.Center()
	textRect = CenterFRectangle(textRect, center.X, center.Y)

	DrawTextInRect(dst, caption, ClearFace, textRect, op)
}

func (gu *GameUI) drawBanner(dst *eb.Image) {
	if gu.Result == ResultNone {
		return
	}

	var bg = TheColorTable[ColorBannerSolved]
	var text = "solved!"
	if gu.Result == ResultExpired {
		bg = TheColorTable[ColorBannerExpired]
		text = "time is up!"
	}

	t := gu.BannerTimer.Normalize()

	canvas := gu.CanvasRect()
	h := min(canvas.Dy()*0.2, 90)
	rect := FRectXYWH(canvas.Min.X, canvas.Min.Y+canvas.Dy()*0.5-h*0.5, canvas.Dx(), h)

	FillRect(dst, rect, ColorFade(bg, t))

	op := &DrawTextOptions{}
	op.ColorScale.ScaleWithColor(ColorFade(TheColorTable[ColorBannerText], t))
	DrawTextInRect(dst, text, BoldFace, rect.Inset(h*0.2), op)
}

// =================================
// session listener
// =================================

type sessionListener struct {
	ui *GameUI
}

func (l *sessionListener) TimeChanged(remaining int) {
	l.ui.TimeLeft = remaining
	SetRedraw()
}

func (l *sessionListener) Solved() {
	gu := l.ui

	gu.Result = ResultSolved
	gu.ResultTime = gu.TimeLeft
	gu.BannerTimer.Current = 0

	InfoLogger.Printf("solved with %d seconds left", gu.TimeLeft)
	PlaySoundBytes(SoundSolved, 1)
	gu.Notifier.Solved(gu.TimeLeft)
	SetRedraw()
}

func (l *sessionListener) TimeExpired() {
	gu := l.ui

	gu.Result = ResultExpired
	gu.BannerTimer.Current = 0

	InfoLogger.Printf("time expired")
	PlaySoundBytes(SoundExpired, 1)
	gu.Notifier.Expired()
	SetRedraw()
}

func (l *sessionListener) Dropped(result puzzle.DropResult) {
	if result.Snapped && !result.Solved {
		PlaySoundBytes(SoundSnap, 1)
	}
}
