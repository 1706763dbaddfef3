// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExportType selects whether every card is exported or only those matching
// a language filter.
type ExportType string

const (
	ExportAll      ExportType = "all"
	ExportSpecific ExportType = "specific"
)

// FilterMode tells which card side languages are matched during a specific export.
type FilterMode string

const (
	FilterEither FilterMode = "either"
	FilterFront  FilterMode = "front"
	FilterBack   FilterMode = "back"

	// FilterNone is reported in the export details of an "all" export.
	FilterNone FilterMode = "none"
)

// ExportFileName is the default name of a written export document.
const ExportFileName = "flashcards_export.json"

// ExportRequest describes what to export.
type ExportRequest struct {
	Type       ExportType
	Languages  []string
	FilterMode FilterMode
}

// ExportDetails is the metadata header of an export document.
type ExportDetails struct {
	Type       ExportType `json:"type"`
	Languages  []string   `json:"languages"`
	FilterMode FilterMode `json:"filterMode"`
}

// ExportedCard is a card as written to an export document: no id, no timestamps.
type ExportedCard struct {
	Front     string  `json:"front"`
	FrontLang string  `json:"frontLang"`
	Back      string  `json:"back"`
	BackLang  string  `json:"backLang"`
	Category  *string `json:"category"`
}

// ExportPayload is the complete export document.
type ExportPayload struct {
	ExportDetails ExportDetails  `json:"exportDetails"`
	Cards         []ExportedCard `json:"cards"`
}

// Fields converts an exported card back into create fields.
func (c ExportedCard) Fields() CardFields {
	return CardFields{
		Front:     c.Front,
		Back:      c.Back,
		FrontLang: c.FrontLang,
		BackLang:  c.BackLang,
		Category:  c.Category,
	}
}

// ExportResult describes a produced export document.
type ExportResult struct {
	// Path is the written file; empty for clipboard exports.
	Path  string
	Count int
	Data  []byte
}

// ImportResult counts the outcome of an import.
type ImportResult struct {
	Imported int
	Skipped  int
}
