package notifications

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

type Ntfy struct {
	baseURL string
	topic   string
	enabled bool
	client  *http.Client
}

func NewNtfy(enableNotifications bool, notificationsBaseURL, topic string, client *http.Client) *Ntfy {
	if client == nil {
		client = &http.Client{}
	}
	return &Ntfy{
		baseURL: strings.TrimSuffix(notificationsBaseURL, "/"),
		topic:   topic,
		enabled: enableNotifications,
		client:  client,
	}
}

type ErrNotificationFailed struct {
	statusCode int
}

func (e ErrNotificationFailed) Error() string {
	return fmt.Sprintf("ntfy wrong response - want: 2xx, got: %d", e.statusCode)
}

/* Publishes which action changed the Book table and how many rows it touched. Disabled: does nothing. */
func (ntf *Ntfy) BooksChanged(ctx context.Context, action string, rowsAffected int64) error {
	if !ntf.enabled {
		return nil
	}

	message := fmt.Sprintf("Books changed: Action: %s Rows: %d", action, rowsAffected)
	topicURL := ntf.baseURL + "/" + ntf.topic

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, topicURL, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("delivering message (%s) to topic (%s): %w", message, topicURL, err)
	}
	req.Header.Set("Title", "Bookstore "+action)

	resp, err := ntf.client.Do(req)
	if err != nil {
		return fmt.Errorf("delivering message (%s) to topic (%s): %w", message, topicURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("delivering message (%s) to topic (%s): %w", message, topicURL, ErrNotificationFailed{statusCode: resp.StatusCode})
	}
	return nil
}
