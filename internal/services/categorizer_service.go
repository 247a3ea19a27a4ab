package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"ledger-engine/internal/config"
	"ledger-engine/internal/models"
)

var (
	// ErrCategorization means every provider attempt was exhausted.
	ErrCategorization = errors.New("categorization failed after exhausting attempts")
)

const providerURLTemplate = "https://router.huggingface.co/%s/v1/chat/completions"

// Provider is one classification backend in the rotation
type Provider struct {
	Name string
	URL  string
}

// providerError carries the HTTP status of a failed provider call so the
// retry loop can tell transient (5xx) from permanent (4xx) failures.
type providerError struct {
	provider string
	status   int
	msg      string
}

func (e *providerError) Error() string {
	return fmt.Sprintf("provider %s: status %d: %s", e.provider, e.status, e.msg)
}

func (e *providerError) transient() bool {
	return e.status == 0 || e.status >= 500
}

// RemoteCategorizer classifies normalized transaction descriptions by
// sending one batched request per call to an LLM backend, rotating
// across providers on transient failures.
type RemoteCategorizer struct {
	providers      []Provider
	model          string
	token          string
	maxAttempts    int
	attemptTimeout time.Duration
	backoffBase    time.Duration
	httpClient     *http.Client
	breakers       map[string]CircuitBreakerInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
	systemPrompt   string
}

// NewRemoteCategorizer creates a categorizer from configuration,
// deriving provider endpoints from the provider names
func NewRemoteCategorizer(cfg config.CategorizerConfig, metrics MetricsRecorderInterface) RemoteCategorizerInterface {
	providers := make([]Provider, 0, len(cfg.Providers))
	for _, name := range cfg.Providers {
		providers = append(providers, Provider{
			Name: name,
			URL:  fmt.Sprintf(providerURLTemplate, name),
		})
	}
	return NewRemoteCategorizerWithProviders(cfg, providers, metrics)
}

// NewRemoteCategorizerWithProviders creates a categorizer against an
// explicit provider set
func NewRemoteCategorizerWithProviders(cfg config.CategorizerConfig, providers []Provider, metrics MetricsRecorderInterface) RemoteCategorizerInterface {
	breakers := make(map[string]CircuitBreakerInterface, len(providers))
	for _, p := range providers {
		breakers[p.Name] = NewCircuitBreaker(DefaultCircuitBreakerConfig())
	}

	return &RemoteCategorizer{
		providers:      providers,
		model:          cfg.Model,
		token:          cfg.APIToken,
		maxAttempts:    cfg.MaxAttempts,
		attemptTimeout: cfg.AttemptTimeout,
		backoffBase:    cfg.BackoffBase,
		httpClient:     &http.Client{},
		breakers:       breakers,
		metrics:        metrics,
		logger:         slog.Default(),
		systemPrompt:   buildSystemPrompt(),
	}
}

// buildSystemPrompt enumerates the closed taxonomy so the model can only
// answer with known category ids
func buildSystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are a bank transaction categorizer. ")
	b.WriteString("Each input line is one normalized transaction description. ")
	b.WriteString("Assign every line exactly one category from this list:\n")
	for _, c := range models.AllCategories() {
		fmt.Fprintf(&b, "%d: %s\n", c.ID, c.Name)
	}
	b.WriteString("Respond with strict JSON only, no markdown, in the shape ")
	b.WriteString(`{"trans_category_list":[{"norm_desc":"...","category_id":N,"category_name":"...","note":"..."}]} `)
	b.WriteString("with one entry per input line, norm_desc copied verbatim.")
	return b.String()
}

// chat completions request/response shapes (OpenAI-compatible)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type categoryListPayload struct {
	TransCategoryList []models.CategoryAssignment `json:"trans_category_list"`
}

// Categorize sends the distinct descriptions to a provider and returns
// the assignment for each description the model resolved. Descriptions
// missing from the response are simply absent from the map; the caller
// decides what an unresolved description means.
func (c *RemoteCategorizer) Categorize(ctx context.Context, descriptions []string) (map[string]models.CategoryAssignment, error) {
	if len(descriptions) == 0 {
		return map[string]models.CategoryAssignment{}, nil
	}

	distinct := dedupeSorted(descriptions)

	tried := make(map[string]bool, len(c.providers))
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		provider := c.pickProvider(tried)
		tried[provider.Name] = true

		result, err := c.callProvider(ctx, provider, distinct)
		if err == nil {
			c.breakers[provider.Name].RecordSuccess()
			c.metrics.CategorizerAttempt(provider.Name, "success")
			return result, nil
		}

		c.breakers[provider.Name].RecordFailure()
		c.metrics.CategorizerAttempt(provider.Name, "failure")
		lastErr = err

		var pe *providerError
		if errors.As(err, &pe) && !pe.transient() {
			return nil, fmt.Errorf("non-transient provider failure: %w", err)
		}

		c.logger.Warn("categorization attempt failed",
			slog.Int("attempt", attempt),
			slog.String("provider", provider.Name),
			slog.String("error", err.Error()),
		)

		if attempt < c.maxAttempts {
			if err := sleepContext(ctx, c.backoff(attempt)); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrCategorization, lastErr)
}

// backoff grows linearly with the attempt number, never decreasing
func (c *RemoteCategorizer) backoff(attempt int) time.Duration {
	return c.backoffBase * time.Duration(attempt)
}

// pickProvider prefers a provider not yet tried in this call whose
// breaker is closed. A provider with an open breaker counts as already
// tried; once every candidate is exhausted the rotation wraps around.
func (c *RemoteCategorizer) pickProvider(tried map[string]bool) Provider {
	for _, p := range c.providers {
		if !tried[p.Name] && !c.breakers[p.Name].IsOpen() {
			return p
		}
	}
	return c.providers[len(tried)%len(c.providers)]
}

func (c *RemoteCategorizer) callProvider(ctx context.Context, provider Provider, descriptions []string) (map[string]models.CategoryAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, c.attemptTimeout)
	defer cancel()

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: c.systemPrompt},
			{Role: "user", Content: strings.Join(descriptions, "\n")},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal categorization request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, provider.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build categorization request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providerError{provider: provider.Name, status: 0, msg: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &providerError{provider: provider.Name, status: 0, msg: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &providerError{provider: provider.Name, status: resp.StatusCode, msg: truncate(string(raw), 200)}
	}

	return c.decodeAssignments(provider, raw)
}

// decodeAssignments unwraps the chat completion and schema-checks each
// entry against the taxonomy; invalid entries are dropped, not fatal
func (c *RemoteCategorizer) decodeAssignments(provider Provider, raw []byte) (map[string]models.CategoryAssignment, error) {
	var chat chatResponse
	if err := json.Unmarshal(raw, &chat); err != nil {
		return nil, &providerError{provider: provider.Name, status: 0, msg: "malformed completion envelope"}
	}
	if len(chat.Choices) == 0 {
		return nil, &providerError{provider: provider.Name, status: 0, msg: "empty completion"}
	}

	var list categoryListPayload
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &list); err != nil {
		return nil, &providerError{provider: provider.Name, status: 0, msg: "completion content is not the expected JSON schema"}
	}

	assignments := make(map[string]models.CategoryAssignment, len(list.TransCategoryList))
	for _, a := range list.TransCategoryList {
		if !a.Valid() {
			c.logger.Warn("dropping invalid category assignment",
				slog.String("norm_desc", a.NormDesc),
				slog.Int("category_id", a.CategoryID),
			)
			continue
		}
		if a.CategoryName == "" {
			a.CategoryName = models.CategoryNameByID(a.CategoryID)
		}
		assignments[a.NormDesc] = a
	}
	return assignments, nil
}

func dedupeSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	sort.Strings(result)
	return result
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
