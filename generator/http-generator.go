package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// ImageGenerator turns an enhanced prompt into the URL of a generated image.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

type imageRequest struct {
	Prompt string `json:"prompt"`
}

type imageResponse struct {
	Status   string `json:"status"`
	ImageURL string `json:"imageUrl"`
	Message  string `json:"message"`
}

// HTTPImageGenerator calls a JSON image-generation API:
// POST {prompt} -> {status, imageUrl} | {status, message}.
type HTTPImageGenerator struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
}

func NewHTTPImageGenerator(endpoint string, timeout time.Duration) *HTTPImageGenerator {
	return &HTTPImageGenerator{
		endpoint: endpoint,
		timeout:  timeout,
		client:   &http.Client{Timeout: timeout},
	}
}

func (g *HTTPImageGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	payload, err := json.Marshal(imageRequest{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", ErrTimeout
		}
		return "", &TransportError{Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		if isTimeout(err) {
			return "", ErrTimeout
		}
		return "", &TransportError{Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &TransportError{Err: fmt.Errorf("received status code %d", res.StatusCode)}
	}

	var result imageResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if result.Status == "success" && result.ImageURL != "" {
		return result.ImageURL, nil
	}

	msg := result.Message
	if msg == "" {
		msg = "Unknown error occurred"
	}
	return "", &ReportedError{Message: msg}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
