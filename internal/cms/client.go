// Package cms fetches event records from the upstream catalog CMS. The CMS
// is an external collaborator; only the lookup this service needs is exposed.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"event-booking/pkg/utils"

	"go.uber.org/zap"
)

// Event is kept opaque: the CMS owns the shape, we only need the id to
// locate the right entry.
type Event map[string]any

// NotFoundError mirrors a lookup miss inside an otherwise healthy
// CMS response.
type NotFoundError struct {
	EventID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no matching event found for ID %d", e.EventID)
}

type Client interface {
	GetEvent(ctx context.Context, eventID int64, lang string) (Event, error)
}

type client struct {
	config utils.CMSConfig
	http   *http.Client
	log    *zap.Logger
}

func NewClient(config utils.CMSConfig, log *zap.Logger) Client {
	return &client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
		log:    log.With(zap.String("client", "cms")),
	}
}

func (c *client) GetEvent(ctx context.Context, eventID int64, lang string) (Event, error) {
	requestURL := fmt.Sprintf("%s?l=%s", c.config.EventsURL, url.QueryEscape(lang))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build events request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("CMS events request failed", zap.Error(err))
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read events response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch events: CMS returned status %d", resp.StatusCode)
	}

	events, err := normalizeEvents(body)
	if err != nil {
		return nil, err
	}

	for _, event := range events {
		if id, ok := numericID(event["id"]); ok && id == eventID {
			return event, nil
		}
	}

	return nil, &NotFoundError{EventID: eventID}
}

// normalizeEvents accepts the CMS envelope variants: a bare list, or an
// object wrapping the list under "data", "events" or "result".
func normalizeEvents(body []byte) ([]Event, error) {
	var asList []Event
	if err := json.Unmarshal(body, &asList); err == nil {
		return asList, nil
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(body, &asObject); err != nil {
		return nil, fmt.Errorf("decode events response: %w", err)
	}

	for _, key := range []string{"data", "events", "result"} {
		raw, ok := asObject[key]
		if !ok {
			continue
		}
		var events []Event
		if err := json.Unmarshal(raw, &events); err == nil {
			return events, nil
		}
	}

	return nil, fmt.Errorf("unknown events response format")
}

func numericID(value any) (int64, bool) {
	switch v := value.(type) {
	case float64:
		return int64(v), true
	case json.Number:
		id, err := v.Int64()
		return id, err == nil
	default:
		return 0, false
	}
}
