package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/precis/internal/store"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockJSON(map[string]int{"b": 2}),
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: UserMessage("first")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: UserMessage("second")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsPurpose(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]string{}), MockJSON(map[string]string{}))

	_, _ = mock.Generate(WithPurpose(context.Background(), "reference-summary"), Request{System: "sum"})
	_, _ = mock.Generate(WithPurpose(context.Background(), "summary-feedback"), Request{System: "fb"})

	req, ok := mock.CallFor("summary-feedback")
	if !ok {
		t.Fatal("no call recorded for summary-feedback")
	}
	if req.System != "fb" {
		t.Errorf("System = %q, want fb", req.System)
	}
	if _, ok := mock.CallFor("keyword-gloss"); ok {
		t.Error("unexpected call for keyword-gloss")
	}
}

func TestResponse_DecodeAndText(t *testing.T) {
	r := &Response{Content: quoteText("요약")}
	if r.Text() != "요약" {
		t.Errorf("Text() = %q", r.Text())
	}

	var out struct{ Summary string }
	bad := &Response{Content: json.RawMessage(`[1,2]`)}
	var inv *ErrInvalidResponse
	if err := bad.Decode(&out); !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	ctx = WithPurpose(ctx, "keyword-gloss")
	if p := PurposeFrom(ctx); p != "keyword-gloss" {
		t.Fatalf("expected 'keyword-gloss', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"openai with key", Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "g"}}, false},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, true},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"OPENAI_API_KEY", "GEMINI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider without keys")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a provider")
	}
	if cfg.Provider != ProviderGemini || cfg.Gemini.APIKey != "g-key" {
		t.Errorf("got provider %q key %q, want gemini first", cfg.Provider, cfg.Gemini.APIKey)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("defaults not applied: %+v", cfg.Retry)
	}
}

type fakeSink struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeSink) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, data)
	return f.err
}

func TestWithLogging_RecordsEvents(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"summary":"s"}`), Usage: Usage{InputTokens: 12, OutputTokens: 4}},
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	sink := &fakeSink{}
	p := WithLogging(mock, ProviderMock, sink, nil)

	ctx := WithPurpose(context.Background(), "reference-summary")
	req := Request{System: "sys", Messages: UserMessage("passage"), Schema: summarySchemaForTest()}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := p.Generate(ctx, req); err == nil {
		t.Fatal("second call should fail")
	}

	if len(sink.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(sink.events))
	}
	ok := sink.events[0]
	if !ok.Success || ok.Purpose != "reference-summary" || ok.InputTokens != 12 || ok.Provider != ProviderMock {
		t.Errorf("unexpected success event: %+v", ok)
	}
	if ok.ResponseBody != `{"summary":"s"}` {
		t.Errorf("ResponseBody = %q", ok.ResponseBody)
	}
	failed := sink.events[1]
	if failed.Success || failed.ErrorMessage == "" {
		t.Errorf("unexpected failure event: %+v", failed)
	}
}

func TestWithLogging_SinkErrorDoesNotFailCall(t *testing.T) {
	mock := NewMockProvider(MockJSON(map[string]string{"summary": "s"}))
	p := WithLogging(mock, ProviderMock, &fakeSink{err: errors.New("disk full")}, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("sink error leaked into call: %v", err)
	}
}

func TestSerializeRequest(t *testing.T) {
	s := serializeRequest(Request{
		System:   "role",
		Messages: UserMessage("passage text"),
		Schema:   summarySchemaForTest(),
	})
	for _, want := range []string{"[system]\nrole", "[user]\npassage text", "[schema: test-summary]"} {
		if !strings.Contains(s, want) {
			t.Errorf("serialized request missing %q:\n%s", want, s)
		}
	}
}

func TestWithObserver(t *testing.T) {
	var gotPurpose string
	var gotErr error
	calls := 0
	obs := func(purpose string, _ time.Duration, err error) {
		calls++
		gotPurpose = purpose
		gotErr = err
	}

	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	p := WithObserver(mock, obs)
	_, _ = p.Generate(WithPurpose(context.Background(), "summary-feedback"), Request{})

	if calls != 1 || gotPurpose != "summary-feedback" {
		t.Fatalf("observer saw calls=%d purpose=%q", calls, gotPurpose)
	}
	var rl *ErrRateLimit
	if !errors.As(gotErr, &rl) {
		t.Errorf("observer error = %v", gotErr)
	}

	if WithObserver(mock, nil) != Provider(mock) {
		t.Error("nil observer should return the inner provider")
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 20*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	if WithTimeout(blockingProvider{}, 0) != Provider(blockingProvider{}) {
		t.Error("zero timeout should return the inner provider")
	}
}

func TestNewProvider(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{Provider: ProviderOpenAI}, Options{}); err == nil {
		t.Fatal("expected validation error without a key")
	}

	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, Options{})
	if err != nil {
		t.Fatalf("NewProvider(mock): %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q, want mock", p.ModelID())
	}
}

func TestNewProvider_MockOption(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	offline := NewMockProvider()
	offline.Fallback = func(Request) MockResponse { return MockJSON(map[string]string{"summary": "ok"}) }

	p, err := NewProvider(context.Background(), cfg, Options{Mock: offline})
	if err != nil {
		t.Fatalf("NewProvider(mock): %v", err)
	}
	for range 2 {
		if _, err := p.Generate(context.Background(), Request{}); err != nil {
			t.Fatalf("Generate: %v", err)
		}
	}
	if offline.CallCount() != 2 {
		t.Errorf("CallCount = %d, want 2", offline.CallCount())
	}
}
