// Package icon renders status symbols in the variant chosen by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/spf13/viper"
	"github.com/ttygif/ttygif/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Progress
	Frame
	Film
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "▣"},
	Fail:     {emoji: "❌", nerd: "", plain: "✗", kaomoji: "(×_×)", squares: "▨"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", kaomoji: "(・・;)", squares: "▤"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(・_・)", squares: "▦"},
	Frame:    {emoji: "🖼️", nerd: "", plain: "#", kaomoji: "[¬º-°]¬", squares: "▩"},
	Film:     {emoji: "🎞️", nerd: "", plain: "*", kaomoji: "ヽ(°〇°)ﾉ", squares: "▥"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
