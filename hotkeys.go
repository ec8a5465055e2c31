package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ReloadColorTableKey eb.Key = eb.KeyF5
	SaveColorTableKey   eb.Key = eb.KeyF10

	ShowDebugConsoleKey = eb.KeyF1

	RestartKey eb.Key = eb.KeyR
	StartKey   eb.Key = eb.KeyEnter

	PrevImageKey eb.Key = eb.KeyArrowLeft
	NextImageKey eb.Key = eb.KeyArrowRight

	PasteImageKey eb.Key = eb.KeyV
	CopyResultKey eb.Key = eb.KeyC

	MuteKey       eb.Key = eb.KeyM
	VolumeDownKey eb.Key = eb.KeyMinus
	VolumeUpKey   eb.Key = eb.KeyEqual
)

// one per puzzle.SupportedDifficulties
var DifficultyKeys = []eb.Key{eb.Key3, eb.Key4, eb.Key5, eb.Key6}

const DefaultColorTablePath = "colors.json"
