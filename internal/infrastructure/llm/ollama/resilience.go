package ollama

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/insightlab/insightsort/internal/infrastructure/resilience"
)

// classifyOllamaError decides what the circuit breaker should count as a
// failure. Canceled contexts and client-side errors are not the model's
// fault; server errors and network failures are.
func classifyOllamaError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{RecordFailure: false}
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return resilience.ErrorClassification{RecordFailure: statusErr.StatusCode >= http.StatusInternalServerError}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return resilience.ErrorClassification{RecordFailure: true}
	}
	return resilience.ErrorClassification{RecordFailure: true}
}
