package community

import (
	"strings"
	"time"
)

type ColorTheme string

const (
	Blue   ColorTheme = "BLUE"
	Green  ColorTheme = "GREEN"
	Red    ColorTheme = "RED"
	Purple ColorTheme = "PURPLE"
	Orange ColorTheme = "ORANGE"
	Yellow ColorTheme = "YELLOW"
	Indigo ColorTheme = "INDIGO"
	Pink   ColorTheme = "PINK"
	Rose   ColorTheme = "ROSE"
	Amber  ColorTheme = "AMBER"
)

// CSSClass is the background class clients paint the community with.
func (c ColorTheme) CSSClass() string {
	return "bg-" + strings.ToLower(string(c)) + "-500"
}

type Community struct {
	Id          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ColorTheme  ColorTheme `json:"colorTheme"`
	Color       string     `json:"color"`
	CreatorId   int64      `json:"creatorId"`
	Created     time.Time  `json:"createdAt"`
}

type CreateRequest struct {
	Name        string `json:"name" validate:"notblank,max=20"`
	Description string `json:"description" validate:"max=100"`
	ColorTheme  string `json:"colorTheme" validate:"required,oneof=BLUE GREEN RED PURPLE ORANGE YELLOW INDIGO PINK ROSE AMBER"`
}

// Normalize trims the name and upper-cases the theme, so "blue" is accepted.
func (r *CreateRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.ColorTheme = strings.ToUpper(strings.TrimSpace(r.ColorTheme))
}
