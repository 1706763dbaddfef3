// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// LanguageOption is one entry of the fixed language table used for card
// input and export filtering.
type LanguageOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// LanguageOptions is the ordered set of selectable languages.
var LanguageOptions = []LanguageOption{
	{Value: "english", Label: "English"},
	{Value: "bulgarian", Label: "Bulgarian"},
	{Value: "german", Label: "German"},
	{Value: "vietnamese", Label: "Vietnamese"},
	{Value: "french", Label: "French"},
}

// LookupLanguage finds a language option by value or label, ignoring case.
func LookupLanguage(s string) (LanguageOption, bool) {
	s = strings.TrimSpace(s)
	for _, opt := range LanguageOptions {
		if strings.EqualFold(opt.Value, s) || strings.EqualFold(opt.Label, s) {
			return opt, true
		}
	}
	return LanguageOption{}, false
}
