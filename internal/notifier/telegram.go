package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"log"
	"net/http"
	"net/url"
	"time"
)

const telegramAPI = "https://api.telegram.org"

// TelegramNotifier talks to the Telegram Bot API on behalf of one chat.
type TelegramNotifier struct {
	BotToken string
	ChatID   string
	APIBase  string
	Client   *http.Client

	// Retries is the number of extra attempts for a reply; Backoff is the
	// first delay, doubled after each failure.
	Retries int
	Backoff time.Duration
}

// NewTelegramNotifier creates a notifier with optional proxy support.
func NewTelegramNotifier(botToken, chatID, proxyURL string) *TelegramNotifier {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &TelegramNotifier{
		BotToken: botToken,
		ChatID:   chatID,
		APIBase:  telegramAPI,
		Client:   &http.Client{Timeout: 30 * time.Second, Transport: transport},
		Retries:  2,
		Backoff:  time.Second,
	}
}

// APIError is a request the Bot API answered with ok=false.
type APIError struct {
	Method      string
	Code        int
	Description string
	RetryAfter  time.Duration
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s: %d %s", e.Method, e.Code, e.Description)
}

// Temporary reports whether the request may succeed when repeated.
func (e *APIError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	ErrorCode   int             `json:"error_code"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
	Parameters  *struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters"`
}

// call posts payload to a Bot API method and decodes its result into out.
func (t *TelegramNotifier) call(ctx context.Context, client *http.Client, method string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", method, err)
	}
	endpoint := fmt.Sprintf("%s/bot%s/%s", t.APIBase, t.BotToken, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	var res apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return fmt.Errorf("decode %s response (status %d): %w", method, resp.StatusCode, err)
	}
	if !res.OK {
		apiErr := &APIError{Method: method, Code: res.ErrorCode, Description: res.Description}
		if apiErr.Code == 0 {
			apiErr.Code = resp.StatusCode
		}
		if res.Parameters != nil {
			apiErr.RetryAfter = time.Duration(res.Parameters.RetryAfter) * time.Second
		}
		return apiErr
	}
	if out != nil && len(res.Result) > 0 {
		if err := json.Unmarshal(res.Result, out); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
	}
	return nil
}

// Send sends an HTML message to the configured chat once.
func (t *TelegramNotifier) Send(ctx context.Context, text string) error {
	return t.call(ctx, t.Client, "sendMessage", sendMessageRequest{
		ChatID:                t.ChatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	}, nil)
}

// Reply sends plain text as a preformatted block so tables stay aligned.
// Rate limits and server errors are retried; other API errors are not.
func (t *TelegramNotifier) Reply(ctx context.Context, text string) error {
	msg := "<pre>" + html.EscapeString(text) + "</pre>"
	delay := t.Backoff
	for attempt := 0; ; attempt++ {
		err := t.Send(ctx, msg)
		if err == nil {
			return nil
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) && !apiErr.Temporary() {
			return err
		}
		if attempt >= t.Retries {
			return fmt.Errorf("reply failed after %d attempts: %w", attempt+1, err)
		}

		wait := delay
		if apiErr != nil && apiErr.RetryAfter > wait {
			wait = apiErr.RetryAfter
		}
		log.Printf("[WARN] Telegram reply failed (attempt %d/%d): %v, retrying in %v", attempt+1, t.Retries+1, err, wait)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		delay *= 2
	}
}
