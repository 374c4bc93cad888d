package copperx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const maxRedirects = 5

// APIError representa una respuesta no exitosa de la API de Copperx.
// Los fallos de transporte también se normalizan aquí, con Status cero.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api request failed with status %d: %s", e.Status, e.Message)
}

// AsAPIError extrae un APIError de la cadena de errores si lo hay.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Client es el límite HTTP único hacia la API remota de Copperx.
// El token de la sesión que actúa siempre llega como argumento explícito;
// el cliente no guarda credenciales.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient construye el cliente apuntando a la API configurada.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		logger: logger,
	}
}

// Get ejecuta un GET autenticado y decodifica la respuesta en out.
func (c *Client) Get(ctx context.Context, token, path string, out any) error {
	return c.do(ctx, http.MethodGet, token, path, nil, out)
}

// Post ejecuta un POST autenticado con cuerpo JSON.
func (c *Client) Post(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, token, path, body, out)
}

// Put ejecuta un PUT autenticado con cuerpo JSON.
func (c *Client) Put(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, token, path, body, out)
}

func (c *Client) do(ctx context.Context, method, token, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("copperx request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		}
		return &APIError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := upstreamMessage(respBody)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		if c.logger != nil {
			c.logger.Warn("copperx api error",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status", resp.StatusCode),
				zap.String("message", msg),
			)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func upstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
