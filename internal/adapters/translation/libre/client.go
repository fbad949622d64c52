// Package libre habla con un servidor compatible con LibreTranslate (POST /translate).
package libre

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"medtrack-core/internal/platform/httpclient"
	"medtrack-core/internal/ports/translation"
)

var (
	ErrLibreNotConfigured = errors.New("translate client not configured")
	ErrLibreUpstream      = errors.New("translate upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrLibreNotConfigured
	}
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLibreNotConfigured, err)
	}
	return &Client{http: hc, apiKey: strings.TrimSpace(cfg.APIKey)}, nil
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if c == nil || c.http == nil {
		return "", ErrLibreNotConfigured
	}
	targetLang = strings.ToLower(strings.TrimSpace(targetLang))
	if strings.TrimSpace(text) == "" || targetLang == "" {
		return text, nil
	}

	var out translateResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/translate", nil, nil, translateRequest{
		Q:      text,
		Source: "auto",
		Target: targetLang,
		Format: "text",
		APIKey: c.apiKey,
	}, &out)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLibreUpstream, err)
	}
	if strings.TrimSpace(out.TranslatedText) == "" {
		return "", fmt.Errorf("%w: empty translation", ErrLibreUpstream)
	}
	return out.TranslatedText, nil
}

var _ translation.Translator = (*Client)(nil)
