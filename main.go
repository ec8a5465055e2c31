package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"

	"jigsaw/picture"
	"jigsaw/puzzle"
)

var (
	ScreenWidth  float64 = 800
	ScreenHeight float64 = 720
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var PprofEnabled bool

type imageFlags []string

func (f *imageFlags) String() string {
	return strings.Join(*f, ",")
}

func (f *imageFlags) Set(path string) error {
	*f = append(*f, path)
	return nil
}

var (
	FlagDifficulty int
	FlagTimeLimit  int
	FlagTolerance  float64
	FlagImages     imageFlags
	FlagColorTable string
	FlagSeed       int64
	FlagNotify     bool
	FlagMute       bool
)

func init() {
	flag.IntVar(&FlagDifficulty, "difficulty", puzzle.DefaultDifficulty, "grid size, one of 3, 4, 5 or 6")
	flag.IntVar(&FlagTimeLimit, "time", puzzle.DefaultTimeLimit, "seconds to solve a puzzle")
	flag.Float64Var(&FlagTolerance, "tolerance", puzzle.DefaultSnapTolerance, "snap distance in pixels")
	flag.Var(&FlagImages, "image", "picture file to play with, can be repeated")
	flag.StringVar(&FlagColorTable, "colors", "", "color table json, F5 reloads it and F10 saves it")
	flag.Int64Var(&FlagSeed, "seed", 0, "scramble seed, 0 for random")
	flag.BoolVar(&FlagNotify, "notify", false, "show a desktop notification when a puzzle ends")
	flag.BoolVar(&FlagMute, "mute", false, "start with sound off")
}

type App struct {
	ShowDebugConsole bool

	Game *GameUI
}

func NewApp() *App {
	a := new(App)

	if err := puzzle.ValidateDifficulty(FlagDifficulty); err != nil {
		ErrorLogger.Printf("%v, using %d", err, puzzle.ClampDifficulty(FlagDifficulty))
	}

	settings := puzzle.DefaultSettings()
	settings.Difficulty = puzzle.ClampDifficulty(FlagDifficulty)
	if FlagTimeLimit > 0 {
		settings.TimeLimit = FlagTimeLimit
	}
	if FlagTolerance > 0 {
		settings.SnapTolerance = FlagTolerance
	}

	a.Game = NewGameUI(PictureSources(), settings.Difficulty, settings)
	a.Game.SelectSource(0)

	return a
}

// PictureSources lists pictures given with -image, then the built-in ones.
func PictureSources() []picture.Source {
	var sources []picture.Source
	for _, path := range FlagImages {
		sources = append(sources, picture.FileSource(path))
	}
	for _, name := range picture.GeneratedNames() {
		sources = append(sources, picture.GeneratedSource(name))
	}
	return sources
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	UpdateInput()
	UpdateSound()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)
	DebugPrint("uptime", GlobalTimerNow().Truncate(time.Second))

	a.HandleHotkeys()

	a.Game.Update()

	if a.ShowDebugConsole {
		SetRedraw()
	}

	return nil
}

func (a *App) HandleHotkeys() {
	// ==========================
	// color table loading and saving
	// ==========================
	if IsKeyJustPressed(ReloadColorTableKey) && FlagColorTable != "" {
		if err := LoadColorTable(FlagColorTable); err != nil {
			ErrorLogger.Printf("failed to load color table: %v", err)
		} else {
			InfoLogger.Printf("loaded color table from %s", FlagColorTable)
		}
	}

	if IsKeyJustPressed(SaveColorTableKey) {
		path := FlagColorTable
		if path == "" {
			path = DefaultColorTablePath
		}
		if err := SaveColorTable(path); err != nil {
			ErrorLogger.Printf("failed to save color table: %v", err)
		} else {
			InfoLogger.Printf("saved color table to %s", path)
		}
	}

	// ==========================
	// debug showing
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
		SetRedraw()
	}

	// ==========================
	// game
	// ==========================
	if IsKeyJustPressed(RestartKey) {
		a.Game.Restart()
	}
	if IsKeyJustPressed(StartKey) {
		a.Game.Start()
	}

	for i, key := range DifficultyKeys {
		if IsKeyJustPressed(key) {
			a.Game.SetDifficulty(puzzle.SupportedDifficulties[i])
		}
	}

	if IsKeyJustPressed(PrevImageKey) {
		a.Game.SelectSource(a.Game.SourceIndex - 1)
	}
	if IsKeyJustPressed(NextImageKey) {
		a.Game.SelectSource(a.Game.SourceIndex + 1)
	}

	if IsKeyJustPressed(PasteImageKey) {
		if data := ClipboardReadImage(); len(data) > 0 {
			a.Game.AddSource(picture.BytesSource("pasted", data))
		} else if path := strings.TrimSpace(ClipboardReadText()); path != "" {
			// a copied file path
			a.Game.AddSource(picture.FileSource(path))
		} else {
			InfoLogger.Print("no image in the clipboard")
		}
	}

	if IsKeyJustPressed(CopyResultKey) {
		if text := a.Game.ResultText(); text != "" {
			ClipboardWriteText(text)
		}
	}

	if IsKeyJustPressed(MuteKey) {
		SetMuted(!IsMuted())
		InfoLogger.Printf("muted: %v", IsMuted())
	}

	if IsKeyJustPressed(VolumeDownKey) {
		SetGlobalVolume(GlobalVolume() - 0.1)
	}
	if IsKeyJustPressed(VolumeUpKey) {
		SetGlobalVolume(GlobalVolume() + 0.1)
	}
}

func (a *App) Draw(dst *eb.Image) {
	if !ShouldRedraw() && !a.Game.Controller.NeedsRedraw() {
		return
	}

	a.Game.Draw(dst)

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}

	ClearRedraw()
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if ScreenWidth != f64(outsideWidth) || ScreenHeight != f64(outsideHeight) {
		SetRedraw()
	}

	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	InitClipboardManager()

	LoadAssets()

	InitSound()

	app := NewApp()

	eb.SetVsyncEnabled(true)
	eb.SetScreenClearedEveryFrame(false)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("Jigsaw")

	if err := eb.RunGame(app); err != nil {
		ErrorLogger.Fatalf("%v", err)
	}

	app.Game.Notifier.Wait()
}
