package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-flashcards/models"
)

// allLanguages is the language list reported for an "all" export.
const allLanguages = "all"

// FilterExport derives an export document from cards. It never mutates its
// input. Language matching ignores case.
func FilterExport(cards []models.FlashCard, req models.ExportRequest) (models.ExportPayload, error) {
	switch req.Type {
	case models.ExportAll:
		return buildPayload(cards, models.ExportDetails{
			Type:       models.ExportAll,
			Languages:  []string{allLanguages},
			FilterMode: models.FilterNone,
		})

	case models.ExportSpecific:
		languages := selectedLanguages(req.Languages)
		if len(languages) == 0 {
			return models.ExportPayload{}, ErrNoLanguagesSelected
		}

		mode := req.FilterMode
		switch mode {
		case "":
			mode = models.FilterEither
		case models.FilterEither, models.FilterFront, models.FilterBack:
		default:
			return models.ExportPayload{}, fmt.Errorf("%w: %q", ErrUnknownFilterMode, mode)
		}

		selected := make(map[string]struct{}, len(languages))
		for _, lang := range languages {
			selected[strings.ToLower(lang)] = struct{}{}
		}

		matched := make([]models.FlashCard, 0, len(cards))
		for _, card := range cards {
			if matchesLanguages(card, selected, mode) {
				matched = append(matched, card)
			}
		}

		return buildPayload(matched, models.ExportDetails{
			Type:       models.ExportSpecific,
			Languages:  languages,
			FilterMode: mode,
		})

	default:
		return models.ExportPayload{}, ErrUnknownExportType
	}
}

// selectedLanguages returns the trimmed, non-blank entries of languages.
func selectedLanguages(languages []string) []string {
	selected := make([]string, 0, len(languages))
	for _, lang := range languages {
		if lang = strings.TrimSpace(lang); lang != "" {
			selected = append(selected, lang)
		}
	}
	return selected
}

func matchesLanguages(card models.FlashCard, selected map[string]struct{}, mode models.FilterMode) bool {
	_, front := selected[strings.ToLower(card.FrontLang)]
	_, back := selected[strings.ToLower(card.BackLang)]

	switch mode {
	case models.FilterFront:
		return front
	case models.FilterBack:
		return back
	default:
		return front || back
	}
}

func buildPayload(cards []models.FlashCard, details models.ExportDetails) (models.ExportPayload, error) {
	if len(cards) == 0 {
		return models.ExportPayload{}, ErrEmptyResult
	}

	exported := make([]models.ExportedCard, 0, len(cards))
	for _, c := range cards {
		exported = append(exported, models.ExportedCard{
			Front:     c.Front,
			FrontLang: c.FrontLang,
			Back:      c.Back,
			BackLang:  c.BackLang,
			Category:  c.Category,
		})
	}

	return models.ExportPayload{ExportDetails: details, Cards: exported}, nil
}
