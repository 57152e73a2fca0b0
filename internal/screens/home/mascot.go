package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/umlstudy/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle      MascotVariant = iota // nothing read yet
	MascotStudying                       // some chapters read
	MascotGraduated                      // every chapter read
)

const mascotIdle = `┌─────────┐
│ Student │
├─────────┤
│ ◉     ◉ │
└─────────┘`

const mascotStudying = `┌─────────┐
│ Student │
├─────────┤
│ ◉  ▿  ◉ │
└────┬────┘
     ◇`

const mascotGraduated = `  ▄▄▄▄▄▄▄
┌─────────┐
│ Student │
├─────────┤
│ ★  ▿  ★ │
└─────────┘`

// MascotFor picks the variant for read out of total chapters.
func MascotFor(read, total int) MascotVariant {
	switch {
	case total > 0 && read >= total:
		return MascotGraduated
	case read > 0:
		return MascotStudying
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotStudying:
		art = mascotStudying
		fg = theme.Secondary
	case MascotGraduated:
		art = mascotGraduated
		fg = theme.Highlight
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
