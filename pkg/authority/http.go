package authority

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/log"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	DefaultAuthorityURL = "http://localhost:8080"

	// maxResponseBytes bounds a decoded response body.
	maxResponseBytes = 4 << 20
)

// HTTPClient talks to the authority with JSON over HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ Authority = &HTTPClient{}

type NewHTTPClientOptions struct {
	// BaseURL is the authority root, e.g. http://localhost:8080.
	BaseURL string
	// HTTPClient defaults to a client with keep-alive connections and no overall timeout;
	// deadlines come from the request context.
	HTTPClient *http.Client
}

func NewHTTPClient(opts NewHTTPClientOptions) *HTTPClient {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultAuthorityURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     30 * time.Second,
			},
		}
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *HTTPClient) StartGame(ctx context.Context, req *StartGameRequest) (*StartGameResponse, error) {
	b, err := c.post(ctx, StartGamePath, req)
	if err != nil {
		return nil, err
	}

	resp := &StartGameResponse{}
	if err := json.Unmarshal(b, resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode start game response: %v", ErrMalformedResponse, err)
	}
	if resp.SessionID == "" {
		return nil, fmt.Errorf("%w: start game response has no session_id", ErrMalformedResponse)
	}
	return resp, nil
}

func (c *HTTPClient) SendInput(ctx context.Context, req *InputRequest) (*gametypes.WorldState, error) {
	b, err := c.post(ctx, InputPath, req)
	if err != nil {
		return nil, err
	}

	worldState := &gametypes.WorldState{}
	if err := json.Unmarshal(b, worldState); err != nil {
		return nil, fmt.Errorf("%w: failed to decode world state: %v", ErrMalformedResponse, err)
	}
	worldState.Raw = b
	return worldState, nil
}

// post sends body as JSON and returns the decoded response body of a 2xx answer.
func (c *HTTPClient) post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "zstd, gzip")

	log.Trace("POST %s %s", path, payload)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	b, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	return b, nil
}

// readBody reads the response body, undoing any zstd or gzip content encoding.
func readBody(resp *http.Response) ([]byte, error) {
	var r io.Reader = resp.Body
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "", "identity":
	case "zstd":
		dec, err := zstd.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		defer dec.Close()
		r = dec
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		r = gz
	default:
		return nil, fmt.Errorf("%w: unsupported content encoding %q", ErrMalformedResponse, resp.Header.Get("Content-Encoding"))
	}

	b, err := io.ReadAll(io.LimitReader(r, maxResponseBytes+1))
	if err != nil {
		return nil, err
	}
	if len(b) > maxResponseBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrMalformedResponse, maxResponseBytes)
	}
	return b, nil
}
