package main

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Face geometry in pixels.
const (
	snapKeyW     = 64.0
	snapKeyH     = 44.0
	snapGap      = 10.0
	snapPad      = 16.0
	snapDisplayH = 56.0
)

var snapshotKeys = [][]string{
	{"AC", "C", "/", "*"},
	{"7", "8", "9", "-"},
	{"4", "5", "6", "+"},
	{"1", "2", "3", "="},
	{"0", ".", "", ""},
}

// snapshotPNG draws the calculator face (display, pending operator, keypad)
// into a PNG file.
func (m *model) snapshotPNG(filename string) error {
	cols := len(snapshotKeys[0])
	rows := len(snapshotKeys)

	imageWidth := int(snapPad*2 + snapKeyW*float64(cols) + snapGap*float64(cols-1))
	imageHeight := int(snapPad*2 + snapDisplayH + snapGap + snapKeyH*float64(rows) + snapGap*float64(rows-1))

	bg, fg := color.Color(color.White), color.Color(color.Black)
	if m.theme == ThemeDark {
		bg, fg = color.Black, color.White
	}
	errColor := color.RGBA{R: 0xcc, G: 0x33, B: 0x33, A: 0xff}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bg)
	dc.Clear()
	dc.SetColor(fg)

	// Load font for text rendering
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	// Display panel with the value right-aligned
	displayW := float64(imageWidth) - snapPad*2
	dc.SetLineWidth(2)
	dc.DrawRoundedRectangle(snapPad, snapPad, displayW, snapDisplayH, 6)
	dc.Stroke()

	if m.engine.InError() {
		dc.SetColor(errColor)
	}
	dc.DrawStringAnchored(m.engine.DisplayText(), snapPad+displayW-10, snapPad+snapDisplayH/2, 1, 0.35)
	dc.SetColor(fg)

	if op, ok := m.engine.PendingOperator(); ok {
		dc.DrawStringAnchored("Op: "+op.String(), snapPad+10, snapPad+snapDisplayH/2, 0, 0.35)
	}

	// Keypad grid
	top := snapPad + snapDisplayH + snapGap
	for row, labels := range snapshotKeys {
		for col, label := range labels {
			if label == "" {
				continue
			}
			x := snapPad + float64(col)*(snapKeyW+snapGap)
			y := top + float64(row)*(snapKeyH+snapGap)
			dc.DrawRoundedRectangle(x, y, snapKeyW, snapKeyH, 6)
			dc.Stroke()
			dc.DrawStringAnchored(label, x+snapKeyW/2, y+snapKeyH/2, 0.5, 0.35)
		}
	}

	return dc.SavePNG(filename)
}
