// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

const (
	// MaxSideLength is the maximum number of characters on either side of a card.
	MaxSideLength = 500
	// MaxCategoryLength is the maximum number of characters in a category.
	MaxCategoryLength = 50

	// DefaultFrontLang is used when a draft does not specify the front language.
	DefaultFrontLang = "English"
	// DefaultBackLang is used when a draft does not specify the back language.
	DefaultBackLang = "Vietnamese"
)

// FlashCard is a single front/back language pair.
//
// ID is assigned by the persistence layer on create and is never reused.
// A nil Category is serialized as JSON null.
type FlashCard struct {
	ID        int64     `json:"id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	FrontLang string    `json:"frontLang"`
	BackLang  string    `json:"backLang"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CardFields is a card without its identity and timestamps. It is the body of
// create and update requests and the shape a draft takes in the card form.
type CardFields struct {
	Front     string  `json:"front" validate:"required,max=500"`
	Back      string  `json:"back" validate:"required,max=500"`
	FrontLang string  `json:"frontLang" validate:"required"`
	BackLang  string  `json:"backLang" validate:"required"`
	Category  *string `json:"category,omitempty" validate:"omitempty,max=50"`
}

// Fields returns the editable part of the card.
func (c FlashCard) Fields() CardFields {
	return CardFields{
		Front:     c.Front,
		Back:      c.Back,
		FrontLang: c.FrontLang,
		BackLang:  c.BackLang,
		Category:  c.Category,
	}
}

// WithFields returns a copy of the card with the editable part replaced.
func (c FlashCard) WithFields(f CardFields) FlashCard {
	c.Front = f.Front
	c.Back = f.Back
	c.FrontLang = f.FrontLang
	c.BackLang = f.BackLang
	c.Category = f.Category
	return c
}

// CategoryOrEmpty returns the category or an empty string when it is unset.
func (c FlashCard) CategoryOrEmpty() string {
	if c.Category == nil {
		return ""
	}
	return *c.Category
}

// NewCategory converts user input to a category pointer: blank input yields nil.
func NewCategory(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
