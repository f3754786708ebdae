package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/pkg/util"
)

// HTTPProvider calls an external classification endpoint with a hard timeout.
type HTTPProvider struct {
	url    string
	client *http.Client
}

// NewHTTPProvider builds a provider from config. Returns Noop when disabled
// or no URL is configured.
func NewHTTPProvider(cfg config.SuggestConfig) Provider {
	if !cfg.Enabled || cfg.URL == "" {
		return Noop{}
	}
	return &HTTPProvider{
		url:    cfg.URL,
		client: &http.Client{Timeout: cfg.Timeout()},
	}
}

// Suggest posts the input and decodes the suggestion. All failures come back
// as EXTERNAL_SERVICE_ERROR for the caller to swallow.
func (p *HTTPProvider) Suggest(ctx context.Context, input Input) (*Suggestion, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, util.NewExternalServiceError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, util.NewExternalServiceError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, util.NewExternalServiceError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, util.NewExternalServiceError(fmt.Errorf("suggestion endpoint returned %d", resp.StatusCode))
	}

	var suggestion Suggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestion); err != nil {
		return nil, util.NewExternalServiceError(err)
	}
	return &suggestion, nil
}
