package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var webhookClient = &http.Client{Timeout: 10 * time.Second}

// ErrWebhookUnconfigured reports a missing webhook URL in configuration.
var ErrWebhookUnconfigured = errors.New("webhook url not configured")

// SendWebhookMessage posts a chat message payload to the given webhook URL.
// The call blocks the caller for at most the client timeout; there is no retry.
func SendWebhookMessage(url, content string) error {
	if url == "" {
		return ErrWebhookUnconfigured
	}

	body, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return err
	}

	resp, err := webhookClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}
