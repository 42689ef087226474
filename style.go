package overlay

import "github.com/inkyblackness/imgui-go/v4"

// Theme is a set of imgui style-color overrides applied once, at Manager
// construction, via WithTheme. Colors not present in the map keep imgui's
// defaults.
type Theme struct {
	Colors map[imgui.StyleColorID]imgui.Vec4
}

// Apply writes the theme's colors into the current imgui style. An imgui
// context must exist.
func (t Theme) Apply() {
	style := imgui.CurrentStyle()
	for id, color := range t.Colors {
		style.SetColor(id, color)
	}
}

// RGBA builds an imgui color from 0-255 channel values.
func RGBA(r, g, b, a uint8) imgui.Vec4 {
	return imgui.Vec4{
		X: float32(r) / 255,
		Y: float32(g) / 255,
		Z: float32(b) / 255,
		W: float32(a) / 255,
	}
}

// DarkTheme is a neutral dark theme.
func DarkTheme() Theme {
	return Theme{Colors: map[imgui.StyleColorID]imgui.Vec4{
		imgui.StyleColorText:          RGBA(255, 255, 255, 255),
		imgui.StyleColorWindowBg:      RGBA(20, 20, 20, 230),
		imgui.StyleColorTitleBg:       RGBA(40, 40, 45, 255),
		imgui.StyleColorTitleBgActive: RGBA(55, 55, 60, 255),
		imgui.StyleColorFrameBg:       RGBA(35, 35, 35, 255),
		imgui.StyleColorButton:        RGBA(50, 50, 50, 255),
		imgui.StyleColorButtonHovered: RGBA(70, 70, 70, 255),
		imgui.StyleColorButtonActive:  RGBA(90, 90, 90, 255),
		imgui.StyleColorBorder:        RGBA(80, 80, 80, 255),
	}}
}

// GTATheme is the dark cyan/yellow look used by the in-game tooling.
func GTATheme() Theme {
	return Theme{Colors: map[imgui.StyleColorID]imgui.Vec4{
		imgui.StyleColorText:           RGBA(255, 255, 255, 255),
		imgui.StyleColorTextDisabled:   RGBA(128, 128, 128, 255),
		imgui.StyleColorWindowBg:       RGBA(0, 0, 0, 220),
		imgui.StyleColorTitleBg:        RGBA(0, 60, 90, 255),
		imgui.StyleColorTitleBgActive:  RGBA(0, 80, 120, 255),
		imgui.StyleColorFrameBg:        RGBA(20, 20, 20, 255),
		imgui.StyleColorFrameBgHovered: RGBA(30, 40, 50, 255),
		imgui.StyleColorFrameBgActive:  RGBA(0, 100, 150, 255),
		imgui.StyleColorButton:         RGBA(40, 40, 40, 255),
		imgui.StyleColorButtonHovered:  RGBA(60, 80, 100, 255),
		imgui.StyleColorButtonActive:   RGBA(0, 150, 200, 255),
		imgui.StyleColorCheckMark:      RGBA(255, 200, 0, 255),
		imgui.StyleColorBorder:         RGBA(100, 100, 100, 255),
		imgui.StyleColorSeparator:      RGBA(0, 150, 200, 128),
		imgui.StyleColorHeader:         RGBA(0, 80, 120, 255),
		imgui.StyleColorHeaderHovered:  RGBA(0, 100, 150, 255),
		imgui.StyleColorHeaderActive:   RGBA(0, 120, 180, 255),
	}}
}
