package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/utils"
	"github.com/MKhiriev/go-flashcards/models"
)

const cardsPath = "/api/cards"

var traceIDs = utils.NewUUIDGenerator()

type httpCardGateway struct {
	client *utils.HTTPClient

	hashKey string

	logger *logger.Logger
}

// NewHTTPCardGateway constructs an HTTP/REST implementation of [CardGateway].
// It normalises and validates the base URL from cfg.HTTPAddress, configures
// the underlying HTTP client with the resolved base URL, request timeout and
// retry policy, and initialises the shared HMAC hasher pool used for body
// signatures when cfg.HashKey is set.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCardGateway(cfg config.ClientAdapter, logger *logger.Logger) (CardGateway, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithRetries(cfg.RetryCount, cfg.RetryWaitTime)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	if cfg.HashKey != "" {
		utils.InitHasherPool(cfg.HashKey)
	}

	return &httpCardGateway{client: client, hashKey: cfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListCards implements [CardGateway] via GET /api/cards.
func (h *httpCardGateway) ListCards(ctx context.Context) ([]models.FlashCard, error) {
	resp, err := h.request(ctx).Get(cardsPath)
	if err != nil {
		return nil, fmt.Errorf("list cards request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	cards := make([]models.FlashCard, 0)
	if err = json.Unmarshal(resp.Body(), &cards); err != nil {
		return nil, fmt.Errorf("%w: decode cards: %w", ErrUnexpectedResponse, err)
	}

	return cards, nil
}

// CreateCard implements [CardGateway] via POST /api/cards.
func (h *httpCardGateway) CreateCard(ctx context.Context, fields models.CardFields) (models.FlashCard, error) {
	req, err := h.signedRequest(ctx, fields)
	if err != nil {
		return models.FlashCard{}, fmt.Errorf("%w: %w", ErrNotCreated, err)
	}

	resp, err := req.Post(cardsPath)
	if err != nil {
		return models.FlashCard{}, fmt.Errorf("%w: create card request: %w", ErrNotCreated, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FlashCard{}, fmt.Errorf("%w: %w", ErrNotCreated, err)
	}

	return decodeCard(resp)
}

// GetCard implements [CardGateway] via GET /api/cards/{id}.
func (h *httpCardGateway) GetCard(ctx context.Context, id int64) (models.FlashCard, error) {
	resp, err := h.request(ctx).Get(cardPath(id))
	if err != nil {
		return models.FlashCard{}, fmt.Errorf("get card request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FlashCard{}, err
	}

	return decodeCard(resp)
}

// UpdateCard implements [CardGateway] via PUT /api/cards/{id}.
func (h *httpCardGateway) UpdateCard(ctx context.Context, id int64, fields models.CardFields) (models.FlashCard, error) {
	req, err := h.signedRequest(ctx, fields)
	if err != nil {
		return models.FlashCard{}, fmt.Errorf("%w: %w", ErrNotUpdated, err)
	}

	resp, err := req.Put(cardPath(id))
	if err != nil {
		return models.FlashCard{}, fmt.Errorf("%w: update card request: %w", ErrNotUpdated, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FlashCard{}, fmt.Errorf("%w: %w", ErrNotUpdated, err)
	}

	return decodeCard(resp)
}

// DeleteCard implements [CardGateway] via DELETE /api/cards/{id}.
func (h *httpCardGateway) DeleteCard(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).Delete(cardPath(id))
	if err != nil {
		return fmt.Errorf("%w: delete card request: %w", ErrNotDeleted, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %w", ErrNotDeleted, err)
	}

	return nil
}

// request starts a request bound to ctx. The trace id from ctx is forwarded,
// or a new one is generated so that server logs can be matched to client logs.
func (h *httpCardGateway) request(ctx context.Context) *resty.Request {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = traceIDs.Generate()
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader(utils.TraceIDHeader, traceID)
}

// signedRequest marshals body once so that the signature covers exactly the
// bytes that are sent.
func (h *httpCardGateway) signedRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(utils.SignatureHeader, hex.EncodeToString(utils.Hash(payload)))
	}

	return req, nil
}

func decodeCard(resp *resty.Response) (models.FlashCard, error) {
	var card models.FlashCard
	if err := json.Unmarshal(resp.Body(), &card); err != nil {
		return models.FlashCard{}, fmt.Errorf("%w: decode card: %w", ErrUnexpectedResponse, err)
	}
	return card, nil
}

func cardPath(id int64) string {
	return cardsPath + "/" + strconv.FormatInt(id, 10)
}
