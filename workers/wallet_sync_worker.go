package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"gaming-rewards-platform/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletSyncClient pulls treasury-side account balances so operators can
// reconcile them against ledger state. The mirror table is never read by the
// engine itself.
type WalletSyncClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	DB         *gorm.DB
}

func NewWalletSyncClient(db *gorm.DB, baseURL, token string) *WalletSyncClient {
	return &WalletSyncClient{
		BaseURL: baseURL,
		Token:   token,
		DB:      db,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetChangedWallets fetches accounts whose balances changed since the given
// time.
func (c *WalletSyncClient) GetChangedWallets(ctx context.Context, since time.Time) ([]models.WalletMirror, error) {
	u, err := url.Parse(fmt.Sprintf("%s/api/v1/internal/accounts", c.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	q := u.Query()
	q.Set("since", since.UTC().Format(time.RFC3339))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Service-Token", c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call treasury service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("treasury service returned status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		Accounts []models.WalletMirror `json:"accounts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode treasury response: %w", err)
	}
	return response.Accounts, nil
}

// PollWallets upserts balance changes into wallet_mirrors on a fixed interval.
// The sync window only advances after a successful upsert, so a failed batch
// is retried on the next tick.
func PollWallets(ctx context.Context, client *WalletSyncClient, pollInterval time.Duration) {
	log.Println("Starting wallet balance polling...")
	lastSyncTime := time.Now().UTC().Add(-24 * time.Hour)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Wallet polling stopped.")
			return
		case <-ticker.C:
			tickTime := time.Now().UTC()

			wallets, err := client.GetChangedWallets(ctx, lastSyncTime)
			if err != nil {
				log.Printf("Error polling wallet balances: %v", err)
				continue
			}
			if len(wallets) == 0 {
				continue
			}

			if err := client.DB.Clauses(
				clause.OnConflict{
					Columns: []clause.Column{{Name: "account_id"}},
					DoUpdates: clause.AssignmentColumns([]string{
						"chain",
						"token",
						"balance",
						"last_balance_check_at",
						"updated_at",
					}),
				},
			).Create(&wallets).Error; err != nil {
				log.Printf("Failed to upsert %d wallet mirror(s): %v", len(wallets), err)
				continue
			}

			lastSyncTime = tickTime
			log.Printf("Upserted %d wallet mirror(s)", len(wallets))
		}
	}
}
