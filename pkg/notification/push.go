package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config holds the fixed identity of the push application
type Config struct {
	Endpoint string
	AppID    string
	APIKey   string
}

// Dispatcher posts push notifications to the third-party notification
// service. Delivery is a single HTTP POST: success is an HTTP 200 response,
// anything else is failure. No retry, no per-device accounting.
type Dispatcher struct {
	endpoint string
	appID    string
	apiKey   string
	client   *http.Client
}

// NewDispatcher creates a push dispatcher for the configured service
func NewDispatcher(cfg Config) *Dispatcher {
	return &Dispatcher{
		endpoint: cfg.Endpoint,
		appID:    cfg.AppID,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: defaultTimeout},
	}
}

// envelope is the fixed payload shape of the notification service
type envelope struct {
	AppID              string            `json:"app_id"`
	IncludePlayerIDs   []string          `json:"include_player_ids"`
	Headings           map[string]string `json:"headings"`
	Contents           map[string]string `json:"contents"`
	Data               map[string]string `json:"data,omitempty"`
	BigPicture         string            `json:"big_picture,omitempty"`
	SmallIcon          string            `json:"small_icon"`
	AndroidAccentColor string            `json:"android_accent_color"`
}

// Send posts a notification to the given device identifiers. An empty device
// list is a no-op returning false. Returns true only on HTTP 200.
func (d *Dispatcher) Send(ctx context.Context, deviceIDs []string, title, message string, data map[string]string, imageURL string) bool {
	if len(deviceIDs) == 0 {
		return false
	}

	payload := envelope{
		AppID:              d.appID,
		IncludePlayerIDs:   deviceIDs,
		Headings:           map[string]string{"en": title},
		Contents:           map[string]string{"en": message},
		Data:               data,
		BigPicture:         imageURL,
		SmallIcon:          "ic_stat_sosfido",
		AndroidAccentColor: "FF9976D2",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("⚠️  Push payload marshal failed: %v", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("⚠️  Push request build failed: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+d.apiKey)

	resp, err := d.client.Do(req)
	if err != nil {
		log.Printf("⚠️  Push delivery failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️  Push service returned status %d", resp.StatusCode)
		return false
	}
	return true
}
