package main

import (
	"bytes"

	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	ClearFace *ebt.GoTextFace
	BoldFace  *ebt.GoTextFace
	MonoFace  *ebt.GoTextFace
)

func loadFace(name string, ttf []byte) *ebt.GoTextFace {
	faceSource, err := ebt.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		ErrorLogger.Fatalf("failed to load font %s: %v", name, err)
	}

	return &ebt.GoTextFace{
		Source: faceSource,
		Size:   64,
	}
}

func LoadAssets() {
	ClearFace = loadFace("goregular", goregular.TTF)
	BoldFace = loadFace("gobold", gobold.TTF)
	MonoFace = loadFace("gomono", gomono.TTF)

	if FlagColorTable != "" {
		if err := LoadColorTable(FlagColorTable); err != nil {
			ErrorLogger.Printf("failed to load color table: %v", err)
		}
	}
}
