package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want Outcome
	}{
		{nil, OutcomeOK},
		{&ErrRateLimit{}, OutcomeRateLimited},
		{fmt.Errorf("feedback: %w", &ErrInvalidResponse{Err: errors.New("missing score")}), OutcomeInvalid},
		{&ErrMaxTokensExceeded{}, OutcomeTruncated},
		{fmt.Errorf("summary: %w", context.DeadlineExceeded), OutcomeCanceled},
		{&ErrProviderUnavailable{}, OutcomeError},
		{errors.New("boom"), OutcomeError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.err), "%v", tc.err)
	}
}

func TestExplain(t *testing.T) {
	assert.Contains(t, Explain(&ErrRateLimit{}), "잠시 후")
	assert.Contains(t, Explain(&ErrProviderUnavailable{Err: errors.New("401")}), "API 키")
	assert.Equal(t, "gloss down", Explain(errors.New("gloss down")))
}
