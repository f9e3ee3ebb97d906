package gemini

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/waqashussainziarana-ux/woogenius/internal/domain/repository"
	"google.golang.org/api/googleapi"
)

// retryDelayPattern matches an explicit server-requested wait such as
// "retry in 2.5s" inside a rate-limit error body.
var retryDelayPattern = regexp.MustCompile(`(?i)retry in ([0-9]+(?:\.[0-9]+)?)\s*s`)

// RetryPolicy is the rate-limit-aware retry strategy for remote model
// calls. Two tiers: an error that names a required wait sleeps exactly that
// duration plus Margin; a generic rate-limit error backs off exponentially
// from BaseDelay. Non-rate-limit errors are never retried.
type RetryPolicy struct {
	BaseDelay   time.Duration
	Multiplier  float64
	MaxDelay    time.Duration
	MaxAttempts int
	Margin      time.Duration

	// Sleep is replaceable so the policy can be tested against a fake
	// failing transport without real waiting. nil uses a context-aware
	// sleep.
	Sleep func(time.Duration)
}

// DefaultRetryPolicy returns the production parameters.
func DefaultRetryPolicy() *RetryPolicy {
	return &RetryPolicy{
		BaseDelay:   time.Second,
		Multiplier:  2,
		MaxDelay:    30 * time.Second,
		MaxAttempts: 4,
		Margin:      500 * time.Millisecond,
	}
}

// Do runs fn, retrying rate-limit failures per the policy. Each retry
// consumes one attempt whether the wait was server-requested or backed off.
// On exhaustion the last error comes back wrapped in ErrAIRateLimited.
func (p *RetryPolicy) Do(ctx context.Context, fn func() error) error {
	delay := p.BaseDelay
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !isRateLimit(err) {
			return err
		}
		if attempt >= p.MaxAttempts {
			return fmt.Errorf("%w: %v", repository.ErrAIRateLimited, err)
		}

		wait := delay
		if requested, ok := parseRetryDelay(err); ok {
			wait = requested + p.Margin
		} else {
			delay = time.Duration(float64(delay) * p.Multiplier)
			if delay > p.MaxDelay {
				delay = p.MaxDelay
			}
		}

		if err := p.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func (p *RetryPolicy) sleep(ctx context.Context, d time.Duration) error {
	if p.Sleep != nil {
		p.Sleep(d)
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// isRateLimit classifies an error as a retryable rate-limit failure. An
// error that names a wait duration is retryable by itself, with or without
// the usual 429/quota markers.
func isRateLimit(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 429 {
		return true
	}
	if _, ok := parseRetryDelay(err); ok {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "resource exhausted")
}

// parseRetryDelay extracts a server-requested wait duration, if any.
func parseRetryDelay(err error) (time.Duration, bool) {
	m := retryDelayPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return 0, false
	}
	seconds, convErr := strconv.ParseFloat(m[1], 64)
	if convErr != nil || seconds <= 0 {
		return 0, false
	}
	return time.Duration(seconds * float64(time.Second)), true
}
