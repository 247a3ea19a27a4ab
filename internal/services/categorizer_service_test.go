package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"ledger-engine/internal/config"
	"ledger-engine/internal/models"

	"github.com/stretchr/testify/suite"
)

type CategorizerTestSuite struct {
	suite.Suite
}

func TestCategorizerSuite(t *testing.T) {
	suite.Run(t, new(CategorizerTestSuite))
}

func (s *CategorizerTestSuite) newCategorizer(providers []Provider) *RemoteCategorizer {
	cfg := config.CategorizerConfig{
		Model:          "test-model",
		APIToken:       "test-token",
		MaxAttempts:    3,
		AttemptTimeout: 2 * time.Second,
		BackoffBase:    time.Millisecond,
	}
	return NewRemoteCategorizerWithProviders(cfg, providers, NewNoopMetrics()).(*RemoteCategorizer)
}

// completionBody wraps assignments in the chat-completion envelope the
// provider returns
func (s *CategorizerTestSuite) completionBody(assignments []models.CategoryAssignment) string {
	content, err := json.Marshal(categoryListPayload{TransCategoryList: assignments})
	s.Require().NoError(err)

	envelope := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"content": string(content)}},
		},
	}
	body, err := json.Marshal(envelope)
	s.Require().NoError(err)
	return string(body)
}

func (s *CategorizerTestSuite) TestCategorize_Success() {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		s.Equal("Bearer test-token", r.Header.Get("Authorization"))

		var req chatRequest
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("test-model", req.Model)
		s.Len(req.Messages, 2)

		fmt.Fprint(w, s.completionBody([]models.CategoryAssignment{
			{NormDesc: "METRO STORE", CategoryID: models.CategoryIDGroceries, CategoryName: "Groceries"},
			{NormDesc: "UBER TRIP", CategoryID: models.CategoryIDTransport},
		}))
	}))
	defer server.Close()

	c := s.newCategorizer([]Provider{{Name: "primary", URL: server.URL}})

	result, err := c.Categorize(context.Background(), []string{"METRO STORE", "UBER TRIP", "METRO STORE"})
	s.Require().NoError(err)
	s.Len(result, 2)
	s.Equal(models.CategoryIDGroceries, result["METRO STORE"].CategoryID)
	s.Equal(int32(1), atomic.LoadInt32(&requests), "duplicate descriptions must not cause extra calls")

	// name backfilled from the taxonomy when the model omits it
	s.Equal("Transportation", result["UBER TRIP"].CategoryName)
}

func (s *CategorizerTestSuite) TestCategorize_InvalidEntriesDropped() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, s.completionBody([]models.CategoryAssignment{
			{NormDesc: "METRO STORE", CategoryID: models.CategoryIDGroceries},
			{NormDesc: "BAD ID", CategoryID: 99},
			{NormDesc: "", CategoryID: models.CategoryIDOther},
		}))
	}))
	defer server.Close()

	c := s.newCategorizer([]Provider{{Name: "primary", URL: server.URL}})

	result, err := c.Categorize(context.Background(), []string{"METRO STORE", "BAD ID"})
	s.Require().NoError(err)
	s.Len(result, 1)
	s.Contains(result, "METRO STORE")
}

func (s *CategorizerTestSuite) TestCategorize_FailsOverToSecondProvider() {
	var primaryCalls, secondaryCalls int32

	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&primaryCalls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer primary.Close()

	secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&secondaryCalls, 1)
		fmt.Fprint(w, s.completionBody([]models.CategoryAssignment{
			{NormDesc: "METRO STORE", CategoryID: models.CategoryIDGroceries},
		}))
	}))
	defer secondary.Close()

	c := s.newCategorizer([]Provider{
		{Name: "primary", URL: primary.URL},
		{Name: "secondary", URL: secondary.URL},
	})

	result, err := c.Categorize(context.Background(), []string{"METRO STORE"})
	s.Require().NoError(err)
	s.Len(result, 1)
	s.Equal(int32(1), atomic.LoadInt32(&primaryCalls))
	s.Equal(int32(1), atomic.LoadInt32(&secondaryCalls))
}

func (s *CategorizerTestSuite) TestCategorize_SkipsOpenBreakerProvider() {
	var primaryCalls int32

	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&primaryCalls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer primary.Close()

	secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, s.completionBody([]models.CategoryAssignment{
			{NormDesc: "METRO STORE", CategoryID: models.CategoryIDGroceries},
		}))
	}))
	defer secondary.Close()

	c := s.newCategorizer([]Provider{
		{Name: "primary", URL: primary.URL},
		{Name: "secondary", URL: secondary.URL},
	})

	// Trip the primary's breaker; rotation must go straight to the
	// secondary without probing the open provider.
	for i := 0; i < DefaultCircuitBreakerConfig().MaxFailures; i++ {
		c.breakers["primary"].RecordFailure()
	}

	result, err := c.Categorize(context.Background(), []string{"METRO STORE"})
	s.Require().NoError(err)
	s.Len(result, 1)
	s.Equal(int32(0), atomic.LoadInt32(&primaryCalls))
}

func (s *CategorizerTestSuite) TestCategorize_ClientErrorIsNotRetried() {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	c := s.newCategorizer([]Provider{
		{Name: "primary", URL: server.URL},
		{Name: "secondary", URL: server.URL},
	})

	_, err := c.Categorize(context.Background(), []string{"METRO STORE"})
	s.Error(err)
	s.NotErrorIs(err, ErrCategorization)
	s.Equal(int32(1), atomic.LoadInt32(&calls), "a 4xx must fail the batch without another attempt")
}

func (s *CategorizerTestSuite) TestCategorize_ExhaustsAttemptBudget() {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := s.newCategorizer([]Provider{
		{Name: "primary", URL: server.URL},
		{Name: "secondary", URL: server.URL},
	})

	_, err := c.Categorize(context.Background(), []string{"METRO STORE"})
	s.ErrorIs(err, ErrCategorization)
	s.Equal(int32(3), atomic.LoadInt32(&calls))
}

func (s *CategorizerTestSuite) TestCategorize_MalformedCompletionIsTransient() {
	var calls int32
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		fmt.Fprint(w, `{"choices":[{"message":{"content":"not json"}}]}`)
	}))
	defer bad.Close()

	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, s.completionBody([]models.CategoryAssignment{
			{NormDesc: "METRO STORE", CategoryID: models.CategoryIDGroceries},
		}))
	}))
	defer good.Close()

	c := s.newCategorizer([]Provider{
		{Name: "primary", URL: bad.URL},
		{Name: "secondary", URL: good.URL},
	})

	result, err := c.Categorize(context.Background(), []string{"METRO STORE"})
	s.Require().NoError(err)
	s.Len(result, 1)
	s.Equal(int32(1), atomic.LoadInt32(&calls))
}

func (s *CategorizerTestSuite) TestCategorize_EmptyInput() {
	c := s.newCategorizer([]Provider{{Name: "primary", URL: "http://unreachable.invalid"}})

	result, err := c.Categorize(context.Background(), nil)
	s.NoError(err)
	s.Empty(result)
}

func (s *CategorizerTestSuite) TestBuildSystemPrompt_EnumeratesTaxonomy() {
	prompt := buildSystemPrompt()
	for _, c := range models.AllCategories() {
		s.Contains(prompt, c.Name)
	}
	s.Contains(prompt, "trans_category_list")
}
