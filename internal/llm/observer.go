package llm

import (
	"context"
	"time"
)

// Observer is told about every completed LLM call.
type Observer func(purpose string, latency time.Duration, err error)

type observedProvider struct {
	inner Provider
	obs   Observer
}

// WithObserver wraps p so that obs sees each call's purpose, latency and
// outcome. It is used to feed metrics.
func WithObserver(p Provider, obs Observer) Provider {
	if obs == nil {
		return p
	}
	return &observedProvider{inner: p, obs: obs}
}

func (o *observedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := o.inner.Generate(ctx, req)
	o.obs(PurposeFrom(ctx), time.Since(start), err)
	return resp, err
}

func (o *observedProvider) ModelID() string {
	return o.inner.ModelID()
}

// timeoutProvider bounds each Generate call, retries included.
type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps p so each call gets at most d. A zero duration disables
// the bound.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, timeout: d}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
