// Package geo is the boundary to the external location oracle: the outbound
// client that issues lookups and the parser for the packed payloads its
// callbacks deliver.
package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
)

const defaultRequestTimeout = 10 * time.Second

// HTTPLocationOracle implements ports.LocationOracle over HTTP. A lookup is a
// POST carrying the correlation id and the order id; the oracle answers later
// on the callback endpoint.
type HTTPLocationOracle struct {
	baseURL string
	client  *http.Client
}

// NewHTTPLocationOracle creates an oracle client for the given base URL.
func NewHTTPLocationOracle(baseURL string) *HTTPLocationOracle {
	return &HTTPLocationOracle{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultRequestTimeout},
	}
}

type lookupRequest struct {
	RequestID string `json:"request_id"`
	OrderID   string `json:"order_id"`
}

// RequestLocation issues the lookup. Any transport error or non-2xx answer
// means the lookup was not accepted and no callback will follow.
func (o *HTTPLocationOracle) RequestLocation(ctx context.Context, requestID, orderID kernel.UUID) error {
	body, err := json.Marshal(lookupRequest{
		RequestID: requestID.String(),
		OrderID:   orderID.String(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/locations", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("location oracle rejected lookup: %s", resp.Status)
	}

	return nil
}
