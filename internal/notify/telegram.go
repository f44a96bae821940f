package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds one delivery attempt, including media upload.
const DefaultTimeout = 15 * time.Second

// Telegram sends alerts through the Telegram Bot API. Media attachments
// pick the API method by file extension: images go out as photos,
// gif as animation, mp4/mov as video.
type Telegram struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

// TelegramOption configures a Telegram notifier.
type TelegramOption func(*Telegram)

// WithBaseURL overrides the API host, mainly for tests.
func WithBaseURL(u string) TelegramOption {
	return func(t *Telegram) { t.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) TelegramOption {
	return func(t *Telegram) { t.client = c }
}

// NewTelegram creates a Telegram notifier for one chat.
func NewTelegram(token, chatID string, opts ...TelegramOption) *Telegram {
	t := &Telegram{
		token:   token,
		chatID:  chatID,
		baseURL: "https://api.telegram.org",
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Send delivers one alert. When a media file is attached and readable it
// is uploaded with the alert as caption; otherwise the alert degrades to a
// plain text message.
func (t *Telegram) Send(ctx context.Context, text string, media *Media) error {
	if media != nil {
		field := mediaField(media.Path)
		if field != "" {
			f, err := os.Open(media.Path)
			if err == nil {
				defer f.Close()
				return t.sendMedia(ctx, field, filepath.Base(media.Path), f, text)
			}
			// Unreadable asset must not block the alert.
		}
	}
	return t.sendMessage(ctx, text)
}

// mediaField maps a file extension to the Telegram upload field, which
// doubles as the method suffix (photo -> sendPhoto).
func mediaField(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return "photo"
	case ".gif":
		return "animation"
	case ".mp4", ".mov":
		return "video"
	default:
		return ""
	}
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

func (t *Telegram) sendMessage(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:                t.chatID,
		Text:                  text,
		ParseMode:             "Markdown",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return t.do(req, "sendMessage")
}

func (t *Telegram) sendMedia(ctx context.Context, field, filename string, file io.Reader, caption string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	_ = w.WriteField("chat_id", t.chatID)
	_ = w.WriteField("caption", caption)
	_ = w.WriteField("parse_mode", "Markdown")

	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	method := "send" + strings.ToUpper(field[:1]) + field[1:]
	url := fmt.Sprintf("%s/bot%s/%s", t.baseURL, t.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return t.do(req, method)
}

func (t *Telegram) do(req *http.Request, method string) error {
	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram %s: %s: %s", method, resp.Status, string(body))
	}
	return nil
}
