package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/internal/validators"
	"github.com/MKhiriev/go-flashcards/models"
)

type cardService struct {
	cardRepository store.CardRepository

	logger *logger.Logger
}

func NewCardService(cardRepository store.CardRepository, logger *logger.Logger) CardService {
	return &cardService{
		cardRepository: cardRepository,
		logger:         logger,
	}
}

func (c *cardService) ListCards(ctx context.Context) ([]models.FlashCard, error) {
	return c.cardRepository.ListCards(ctx)
}

func (c *cardService) GetCard(ctx context.Context, id int64) (models.FlashCard, error) {
	return c.cardRepository.GetCard(ctx, id)
}

func (c *cardService) CreateCard(ctx context.Context, fields models.CardFields) (models.FlashCard, error) {
	return c.cardRepository.CreateCard(ctx, validators.TrimFields(fields))
}

func (c *cardService) UpdateCard(ctx context.Context, id int64, fields models.CardFields) (models.FlashCard, error) {
	return c.cardRepository.UpdateCard(ctx, id, validators.TrimFields(fields))
}

func (c *cardService) DeleteCard(ctx context.Context, id int64) error {
	return c.cardRepository.DeleteCard(ctx, id)
}

func (c *cardService) SeedDemoCards(ctx context.Context) (int, error) {
	count, err := c.cardRepository.CountCards(ctx)
	if err != nil {
		return 0, fmt.Errorf("count cards before seeding: %w", err)
	}
	if count > 0 {
		c.logger.Debug().Str("func", "cardService.SeedDemoCards").Int64("count", count).Msg("collection is not empty, skipping seed")
		return 0, nil
	}

	for i, fields := range demoCards() {
		if _, err = c.cardRepository.CreateCard(ctx, fields); err != nil {
			return i, fmt.Errorf("seed demo card %d: %w", i, err)
		}
	}

	c.logger.Info().Str("func", "cardService.SeedDemoCards").Int("count", len(demoCards())).Msg("seeded demo cards")
	return len(demoCards()), nil
}

func demoCards() []models.CardFields {
	card := func(front, back, category string) models.CardFields {
		return models.CardFields{
			Front:     front,
			Back:      back,
			FrontLang: "English",
			BackLang:  "Spanish",
			Category:  models.NewCategory(category),
		}
	}

	return []models.CardFields{
		card("Hello", "Hola", "greetings"),
		card("Goodbye", "Adiós", "greetings"),
		card("Thank you", "Gracias", "politeness"),
		card("Please", "Por favor", "politeness"),
		card("Good morning", "Buenos días", "greetings"),
		card("Good night", "Buenas noches", "greetings"),
		card("How are you?", "¿Cómo estás?", "conversation"),
		card("I love you", "Te quiero", "emotions"),
	}
}
