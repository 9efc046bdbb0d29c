package render

import (
	"github.com/gdamore/tcell/v2"

	"glyphstorm/content"
)

// Palette. One place for every color so the scheme can be retuned
// without touching renderers
var (
	colorBackground = tcell.NewRGBColor(16, 16, 24)
	colorText       = tcell.NewRGBColor(192, 196, 208)
	colorDim        = tcell.NewRGBColor(92, 96, 112)
	colorAccent     = tcell.NewRGBColor(122, 162, 247)
	colorDanger     = tcell.NewRGBColor(247, 118, 142)
	colorGood       = tcell.NewRGBColor(158, 206, 106)
	colorGold       = tcell.NewRGBColor(224, 175, 104)
	colorFlash      = tcell.NewRGBColor(255, 255, 255)

	StyleBackground = tcell.StyleDefault.Background(colorBackground).Foreground(colorText)
	StyleText       = StyleBackground
	StyleDim        = StyleBackground.Foreground(colorDim)
	StyleAccent     = StyleBackground.Foreground(colorAccent)
	StyleDanger     = StyleBackground.Foreground(colorDanger)
	StyleGood       = StyleBackground.Foreground(colorGood)
	StyleGold       = StyleBackground.Foreground(colorGold)
	StyleFlash      = StyleBackground.Foreground(colorFlash).Bold(true)

	StylePlayer     = StyleBackground.Foreground(tcell.NewRGBColor(255, 255, 255)).Bold(true)
	StyleProjectile = StyleBackground.Foreground(tcell.NewRGBColor(125, 207, 255))
	StyleEnemyShot  = StyleBackground.Foreground(tcell.NewRGBColor(255, 158, 100))
	StyleDrone      = StyleBackground.Foreground(tcell.NewRGBColor(180, 249, 248))
	StyleMineArmed  = StyleBackground.Foreground(colorDanger).Bold(true)
	StyleMineInert  = StyleDim
	StyleZone       = StyleBackground.Foreground(colorGood)
	StyleDying      = StyleDim
)

// enemyStyles keys the palette by enemy definition. Unknown ids fall
// back to StyleDanger so new content renders without a palette entry
var enemyStyles = map[content.EnemyID]tcell.Style{
	"basic":   StyleBackground.Foreground(tcell.NewRGBColor(187, 154, 247)),
	"runner":  StyleBackground.Foreground(tcell.NewRGBColor(224, 175, 104)),
	"brute":   StyleBackground.Foreground(colorDanger).Bold(true),
	"spitter": StyleBackground.Foreground(tcell.NewRGBColor(255, 158, 100)),
	"cluster": StyleBackground.Foreground(tcell.NewRGBColor(158, 206, 106)),
}

// EnemyStyle returns the base style for an enemy definition
func EnemyStyle(id content.EnemyID) tcell.Style {
	if s, ok := enemyStyles[id]; ok {
		return s
	}
	return StyleDanger
}
