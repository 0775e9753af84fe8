package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// TreasuryAccount names the platform side of a transfer. The treasury service
// resolves it to its own custody wallet.
const TreasuryAccount = "treasury"

// Treasury moves settlement-asset value between accounts. It is the one
// external call the ledger engine makes: the call must resolve to success or
// failure before any record write commits, and a failure aborts the whole
// operation.
type Treasury interface {
	Transfer(ctx context.Context, amount int64, from, to string) error
}

// Client talks to the treasury service over HTTP with the shared service
// token. Every transfer carries a fresh reference ID so a retried request is
// idempotent on the treasury side.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Transfer(ctx context.Context, amount int64, from, to string) error {
	url := fmt.Sprintf("%s/api/v1/internal/transfers", c.BaseURL)

	reqBody := map[string]interface{}{
		"reference": uuid.NewString(),
		"amount":    amount,
		"from":      from,
		"to":        to,
	}
	jsonData, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Service-Token", c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("treasury transfer failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Printf("Treasury transfer rejected (%d): %s", resp.StatusCode, string(body))
		return fmt.Errorf("treasury transfer rejected: status %d", resp.StatusCode)
	}
	return nil
}
