// Package notifier delivers completed orders to the business owner through the
// email sink service. The sink's transport, templating and provider credentials
// are its own concern; this package only speaks its JSON contract.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/seasideseafood/storefront/internal/storefront/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client dispatches order notifications over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
	metrics    *Metrics
}

// NewClient constructs a dispatcher for the sink at endpoint. Outbound
// requests carry trace context via the instrumented transport.
func NewClient(endpoint string, timeout time.Duration, metrics *Metrics) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		metrics: metrics,
	}
}

// orderPayload is the sink's wire format. Amounts are KSh, quantities KG.
type orderPayload struct {
	OrderID          string        `json:"orderId"`
	CustomerName     string        `json:"customerName"`
	CustomerPhone    string        `json:"customerPhone"`
	CustomerEmail    string        `json:"customerEmail,omitempty"`
	DeliveryLocation string        `json:"deliveryLocation"`
	Items            []itemPayload `json:"items"`
	PaymentMethod    string        `json:"paymentMethod"`
	TotalAmount      float64       `json:"totalAmount"`
	OrderType        string        `json:"orderType"`
}

type itemPayload struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	CategoryDisplay string  `json:"categoryDisplay"`
	Quantity        float64 `json:"quantity"`
	Price           float64 `json:"price"`
	DeliveryOption  string  `json:"deliveryOption"`
	CleaningFee     float64 `json:"cleaningFee"`
	TotalPrice      float64 `json:"totalPrice"`
}

type sinkResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Error     string `json:"error"`
}

// Dispatch posts the order to the sink and returns its delivery identifier.
// Any non-2xx response is a failure.
func (c *Client) Dispatch(ctx context.Context, order domain.OrderRecord) (string, error) {
	start := time.Now()
	messageID, err := c.dispatch(ctx, order)
	c.metrics.RecordDispatch(ctx, time.Since(start).Seconds(), err == nil)
	return messageID, err
}

func (c *Client) dispatch(ctx context.Context, order domain.OrderRecord) (string, error) {
	body, err := json.Marshal(buildPayload(order))
	if err != nil {
		return "", fmt.Errorf("encode order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build sink request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("post order notification: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", fmt.Errorf("read sink response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("sink returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed sinkResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode sink response: %w", err)
	}
	if !parsed.Success {
		return "", fmt.Errorf("sink rejected order: %s", parsed.Error)
	}

	return parsed.MessageID, nil
}

func buildPayload(order domain.OrderRecord) orderPayload {
	items := make([]itemPayload, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, itemPayload{
			Name:            line.Name,
			Category:        string(line.Category),
			CategoryDisplay: line.CategoryDisplay,
			Quantity:        line.Quantity.Kilograms(),
			Price:           kes(line.UnitPriceCents),
			DeliveryOption:  string(line.Option),
			CleaningFee:     kes(line.PrepFeeCents),
			TotalPrice:      kes(line.TotalCents),
		})
	}

	return orderPayload{
		OrderID:          order.ID,
		CustomerName:     order.Customer.Name,
		CustomerPhone:    order.Customer.Phone,
		CustomerEmail:    order.Customer.Email,
		DeliveryLocation: order.Customer.Location,
		Items:            items,
		PaymentMethod:    string(order.Payment),
		TotalAmount:      kes(order.TotalCents),
		OrderType:        string(order.Type),
	}
}

// kes converts cents to KSh for the sink, which formats whole shillings.
func kes(cents int64) float64 {
	return float64(cents) / 100
}
