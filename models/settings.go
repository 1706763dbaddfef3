// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CardSide selects which side of a card is shown first.
type CardSide string

const (
	SideFront CardSide = "front"
	SideBack  CardSide = "back"
)

// Valid reports whether s is a known card side.
func (s CardSide) Valid() bool {
	return s == SideFront || s == SideBack
}

// Opposite returns the other side of the card.
func (s CardSide) Opposite() CardSide {
	if s == SideBack {
		return SideFront
	}
	return SideBack
}

// Theme is the colour scheme of the user interface.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// SettingsKey is the name of the durable settings record.
const SettingsKey = "app.settings"

// Settings holds the user's display and interaction preferences.
type Settings struct {
	DefaultCardSide       CardSide `json:"defaultCardSide"`
	RightClickEditEnabled bool     `json:"rightClickEditEnabled"`
	Theme                 *Theme   `json:"theme,omitempty"`
}

// DefaultSettings returns the settings used when nothing valid is stored.
func DefaultSettings() Settings {
	return Settings{
		DefaultCardSide:       SideFront,
		RightClickEditEnabled: true,
	}
}

// Valid reports whether every present field holds a known value.
func (s Settings) Valid() bool {
	if !s.DefaultCardSide.Valid() {
		return false
	}
	return s.Theme == nil || s.Theme.Valid()
}

// SettingsPatch is a partial update of [Settings]. Nil fields are left unchanged.
type SettingsPatch struct {
	DefaultCardSide       *CardSide
	RightClickEditEnabled *bool
	Theme                 *Theme
}

// Apply returns s with every non-nil field of p copied over it. Unknown
// card sides and themes are ignored, so the result is valid whenever s is.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.DefaultCardSide != nil && p.DefaultCardSide.Valid() {
		s.DefaultCardSide = *p.DefaultCardSide
	}
	if p.RightClickEditEnabled != nil {
		s.RightClickEditEnabled = *p.RightClickEditEnabled
	}
	if p.Theme != nil && p.Theme.Valid() {
		theme := *p.Theme
		s.Theme = &theme
	}
	return s
}
