package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit is a 429 from the provider. RetryAfter is zero when the
// provider did not say how long to wait.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse is output that is not JSON or does not match the
// request's schema, such as feedback without a score for every criterion.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers outages, network failures and rejected
// credentials.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded is a response cut off at MaxTokens. Content holds
// the partial output for the event log.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// Outcome is the coarse result of a Generate call, used as a metrics label
// and an API error code.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeRateLimited Outcome = "rate_limited"
	OutcomeInvalid     Outcome = "invalid_response"
	OutcomeTruncated   Outcome = "truncated"
	OutcomeCanceled    Outcome = "canceled"
	OutcomeError       Outcome = "error"
)

// Classify maps err to its Outcome.
func Classify(err error) Outcome {
	var (
		rl  *ErrRateLimit
		inv *ErrInvalidResponse
		mt  *ErrMaxTokensExceeded
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &rl):
		return OutcomeRateLimited
	case errors.As(err, &inv):
		return OutcomeInvalid
	case errors.As(err, &mt):
		return OutcomeTruncated
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	}
	return OutcomeError
}

// Explain returns a message for teachers in Korean. Errors that are not
// from a provider keep their own text.
func Explain(err error) string {
	switch Classify(err) {
	case OutcomeRateLimited:
		return "요청이 너무 많습니다. 잠시 후 다시 시도해 주세요."
	case OutcomeInvalid, OutcomeTruncated:
		return "AI 응답을 해석하지 못했습니다. 다시 시도해 주세요."
	case OutcomeCanceled:
		return "요청이 취소되었거나 시간이 초과되었습니다."
	}
	var un *ErrProviderUnavailable
	if errors.As(err, &un) {
		return "AI 서비스에 연결할 수 없습니다. API 키와 네트워크를 확인해 주세요."
	}
	return err.Error()
}
