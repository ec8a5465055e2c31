package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
)

type ColorTableIndex int

const (
	ColorBg ColorTableIndex = iota

	ColorCanvasBg
	ColorPlaceholder
	ColorPlaceholderText

	ColorTileStroke
	ColorTileHighlight

	ColorStatusText

	ColorButton
	ColorButtonOnHover
	ColorButtonOnDown
	ColorButtonSelected
	ColorButtonDisabled
	ColorButtonText

	ColorBannerSolved
	ColorBannerExpired
	ColorBannerText

	ColorTableSize
)

var colorTableNames = [ColorTableSize]string{
	ColorBg: "Bg",

	ColorCanvasBg:        "CanvasBg",
	ColorPlaceholder:     "Placeholder",
	ColorPlaceholderText: "PlaceholderText",

	ColorTileStroke:    "TileStroke",
	ColorTileHighlight: "TileHighlight",

	ColorStatusText: "StatusText",

	ColorButton:         "Button",
	ColorButtonOnHover:  "ButtonOnHover",
	ColorButtonOnDown:   "ButtonOnDown",
	ColorButtonSelected: "ButtonSelected",
	ColorButtonDisabled: "ButtonDisabled",
	ColorButtonText:     "ButtonText",

	ColorBannerSolved:  "BannerSolved",
	ColorBannerExpired: "BannerExpired",
	ColorBannerText:    "BannerText",
}

func (i ColorTableIndex) String() string {
	if i < 0 || i >= ColorTableSize {
		return fmt.Sprintf("ColorTableIndex(%d)", int(i))
	}
	return colorTableNames[i]
}

var TheColorTable [ColorTableSize]color.NRGBA

func init() {
	TheColorTable = DefaultColorTable()
}

func DefaultColorTable() [ColorTableSize]color.NRGBA {
	var table [ColorTableSize]color.NRGBA

	table[ColorBg] = color.NRGBA{245, 245, 245, 255}

	table[ColorCanvasBg] = color.NRGBA{255, 255, 255, 255}
	table[ColorPlaceholder] = color.NRGBA{0xdd, 0xdd, 0xdd, 255}
	table[ColorPlaceholderText] = color.NRGBA{90, 90, 90, 255}

	table[ColorTileStroke] = color.NRGBA{0, 0, 0, 255}
	table[ColorTileHighlight] = color.NRGBA{255, 0, 0, 255}

	table[ColorStatusText] = color.NRGBA{20, 20, 20, 255}

	table[ColorButton] = color.NRGBA{0x68, 0x84, 0x97, 255}
	table[ColorButtonOnHover] = color.NRGBA{0x51, 0x99, 0xCC, 255}
	table[ColorButtonOnDown] = color.NRGBA{0x8D, 0xBC, 0xDE, 255}
	table[ColorButtonSelected] = color.NRGBA{0x2E, 0x5E, 0x7E, 255}
	table[ColorButtonDisabled] = color.NRGBA{0xB0, 0xB0, 0xB0, 255}
	table[ColorButtonText] = color.NRGBA{255, 255, 255, 255}

	table[ColorBannerSolved] = color.NRGBA{0x3C, 0xA0, 0x5A, 230}
	table[ColorBannerExpired] = color.NRGBA{0xC0, 0x3C, 0x3C, 230}
	table[ColorBannerText] = color.NRGBA{255, 255, 255, 255}

	return table
}

// ColorTableToJson encodes table as a map from color name to css color string.
func ColorTableToJson(table [ColorTableSize]color.NRGBA) ([]byte, error) {
	tableMap := make(map[string]string)

	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		tableMap[i.String()] = ColorToString(table[i])
	}

	jsonBytes, err := json.MarshalIndent(tableMap, "", "    ")
	if err != nil {
		return nil, err
	}

	return jsonBytes, nil
}

// ColorTableFromJson decodes what ColorTableToJson produces.
// Colors missing from tableJson keep their default value, unknown names are ignored.
func ColorTableFromJson(tableJson []byte) ([ColorTableSize]color.NRGBA, error) {
	colorTable := DefaultColorTable()

	var tableMap map[string]string

	err := json.Unmarshal(tableJson, &tableMap)
	if err != nil {
		return colorTable, err
	}

	stringToIndex := make(map[string]int)
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		stringToIndex[i.String()] = int(i)
	}

	for k, v := range tableMap {
		index, ok := stringToIndex[k]
		if !ok {
			continue
		}
		clr, err := ParseColorString(v)
		if err != nil {
			return colorTable, fmt.Errorf("color %s: %w", k, err)
		}
		colorTable[index] = clr
	}

	return colorTable, nil
}

func LoadColorTable(path string) error {
	jsonBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	table, err := ColorTableFromJson(jsonBytes)
	if err != nil {
		return err
	}

	TheColorTable = table
	SetRedraw()

	return nil
}

func SaveColorTable(path string) error {
	jsonBytes, err := ColorTableToJson(TheColorTable)
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonBytes, 0664)
}
