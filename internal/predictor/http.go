package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// HTTP calls a remote model server. Initialize asks the server to load the
// model; PredictBatch sends the whole batch in one request.
type HTTP struct {
	endpoint string
	key      string
	client   *http.Client
	ready    atomic.Bool
}

func NewHTTP(endpoint, key string, timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &HTTP{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		client:   &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Inputs []ScoringInput `json:"inputs"`
}

type predictResponse struct {
	Efficiencies []float64 `json:"efficiencies"`
}

func (p *HTTP) IsReady() bool {
	return p.ready.Load()
}

func (p *HTTP) Initialize(ctx context.Context) error {
	resp, err := p.post(ctx, "/v1/model/load", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("model load: %s", statusError(resp))
	}
	p.ready.Store(true)
	return nil
}

func (p *HTTP) PredictBatch(ctx context.Context, inputs []ScoringInput) ([]float64, error) {
	if !p.IsReady() {
		return nil, ErrNotReady
	}

	resp, err := p.post(ctx, "/v1/predict", predictRequest{Inputs: inputs})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("predict: %s", statusError(resp))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode predict response: %w", err)
	}
	return out.Efficiencies, nil
}

func (p *HTTP) post(ctx context.Context, path string, body any) (*http.Response, error) {
	var buf io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+path, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.key != "" {
		req.Header.Set("Authorization", "Bearer "+p.key)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", path, err)
	}
	return resp, nil
}

func statusError(resp *http.Response) string {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if len(msg) == 0 {
		return resp.Status
	}
	return fmt.Sprintf("%s: %s", resp.Status, strings.TrimSpace(string(msg)))
}
