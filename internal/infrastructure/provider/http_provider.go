package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/veyra-labs/veyra-risk-service/internal/domain"
)

// Shared transport: the pipeline issues many small lookups, so connection
// reuse matters more than per-request setup cost.
var defaultTransport = &http.Transport{
	Proxy: http.ProxyFromEnvironment,
	DialContext: (&net.Dialer{
		Timeout:   2 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 100,
	IdleConnTimeout:     90 * time.Second,
	TLSHandshakeTimeout: 2 * time.Second,
}

// HTTPValidationProvider calls the external reputation service. Callers
// bound each lookup with a context deadline; the client timeout is a
// backstop only.
type HTTPValidationProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPValidationProvider(baseURL, apiKey string, timeout time.Duration) *HTTPValidationProvider {
	return &HTTPValidationProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Transport: defaultTransport,
			Timeout:   timeout,
		},
	}
}

type reputationResponse struct {
	RiskScore float64  `json:"risk_score"`
	Flags     []string `json:"flags"`
}

func (p *HTTPValidationProvider) Lookup(ctx context.Context, kind domain.SubjectKind, subjectKey string) (*domain.ValidationResult, error) {
	endpoint := fmt.Sprintf("%s/v1/reputation?kind=%s&subject=%s",
		p.baseURL, url.QueryEscape(string(kind)), url.QueryEscape(subjectKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build reputation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: reputation lookup returned %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}

	var body reputationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode reputation response: %w", err)
	}

	return &domain.ValidationResult{
		SubjectKey: subjectKey,
		Kind:       kind,
		Score:      body.RiskScore,
		Flags:      body.Flags,
	}, nil
}
