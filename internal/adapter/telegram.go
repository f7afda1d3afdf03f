package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-roster-bot/internal/config"
	"github.com/MKhiriev/go-roster-bot/internal/logger"
	"github.com/MKhiriev/go-roster-bot/internal/utils"
	"github.com/MKhiriev/go-roster-bot/models"
)

// methodPath is the Bot API route; {token} is bound once per client.
const methodPath = "/bot{token}/"

// allowedUpdates limits delivery to the update kinds the bot handles.
var allowedUpdates = []string{"message"}

type telegramAdapter struct {
	client *utils.HTTPClient

	requestTimeout time.Duration

	logger *logger.Logger
}

type getUpdatesRequest struct {
	Offset         int64    `json:"offset,omitempty"`
	Timeout        int      `json:"timeout"`
	AllowedUpdates []string `json:"allowed_updates,omitempty"`
}

// NewTelegramAdapter constructs the resty implementation of [BotAdapter].
// It validates the token and normalises cfg.BaseURL.
//
// The client itself has no timeout: every call is bounded by a context
// deadline of cfg.RequestTimeout, extended by the poll timeout for
// getUpdates.
func NewTelegramAdapter(cfg config.Adapter, logger *logger.Logger) (BotAdapter, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidConfig)
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base url: %w", ErrInvalidConfig, err)
	}

	client := utils.NewHTTPClient(baseURL, 0)
	client.SetRawPathParam("token", token)

	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = config.DefaultAdapterRequestTimeout
	}

	return &telegramAdapter{client: client, requestTimeout: requestTimeout, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return config.DefaultTelegramBaseURL, nil
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// GetUpdates implements [BotAdapter] via getUpdates.
func (t *telegramAdapter) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]models.Update, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout+t.requestTimeout)
	defer cancel()

	body := getUpdatesRequest{
		Offset:         offset,
		Timeout:        int(timeout / time.Second),
		AllowedUpdates: allowedUpdates,
	}

	var updates []models.Update
	if err := t.call(ctx, "getUpdates", body, &updates); err != nil {
		return nil, err
	}

	return updates, nil
}

// SendMessage implements [BotAdapter] via sendMessage.
func (t *telegramAdapter) SendMessage(ctx context.Context, chatID int64, text string) error {
	ctx, cancel := context.WithTimeout(ctx, t.requestTimeout)
	defer cancel()

	return t.call(ctx, "sendMessage", models.SendMessageRequest{ChatID: chatID, Text: text}, nil)
}

// SendDocument implements [BotAdapter] via a multipart sendDocument upload.
func (t *telegramAdapter) SendDocument(ctx context.Context, chatID int64, doc models.Document) error {
	ctx, cancel := context.WithTimeout(ctx, t.requestTimeout)
	defer cancel()

	resp, err := t.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{"chat_id": strconv.FormatInt(chatID, 10)}).
		SetMultipartField("document", doc.FileName, doc.ContentType, bytes.NewReader(doc.Content)).
		Post(methodPath + "sendDocument")
	if err != nil {
		return transportError("sendDocument", err)
	}

	return decodeEnvelope(resp.StatusCode(), resp.Body(), nil)
}

// SetWebhook implements [BotAdapter] via setWebhook.
func (t *telegramAdapter) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	ctx, cancel := context.WithTimeout(ctx, t.requestTimeout)
	defer cancel()

	req := models.SetWebhookRequest{URL: webhookURL, SecretToken: secret, AllowedUpdates: allowedUpdates}
	return t.call(ctx, "setWebhook", req, nil)
}

// DeleteWebhook implements [BotAdapter] via deleteWebhook.
func (t *telegramAdapter) DeleteWebhook(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, t.requestTimeout)
	defer cancel()

	return t.call(ctx, "deleteWebhook", struct{}{}, nil)
}

// call POSTs body as JSON to method and decodes the result into result,
// which may be nil.
func (t *telegramAdapter) call(ctx context.Context, method string, body, result any) error {
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(methodPath + method)
	if err != nil {
		return transportError(method, err)
	}

	if err = decodeEnvelope(resp.StatusCode(), resp.Body(), result); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("method", method).Msg("telegram call failed")
		return err
	}

	return nil
}

func decodeEnvelope(statusCode int, raw []byte, result any) error {
	var envelope models.APIResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("%w: decode response (%d): %w", ErrAPI, statusCode, err)
	}

	if err := mapAPIError(statusCode, envelope); err != nil {
		return err
	}

	if result == nil || len(envelope.Result) == 0 {
		return nil
	}

	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("%w: decode result: %w", ErrAPI, err)
	}

	return nil
}
