package googlecalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/table-reservation/internal/domain"
)

const (
	pageSize = 250

	// maxPages ограничивает постраничное чтение одного окна
	maxPages = 20
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Google Calendar API v3 для одного календаря
type Client struct {
	baseURL    string
	calendarID string
	location   *time.Location
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
// httpClient должен быть авторизован (см. NewHTTPClient)
func NewClient(baseURL, calendarID string, location *time.Location, httpClient *http.Client, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		calendarID: calendarID,
		location:   location,
		httpClient: httpClient,
		log:        log,
	}
}

// ListEvents возвращает события окна [timeMin, timeMax), развернутые в отдельные вхождения
// События на весь день и отмененные события пропускаются
func (c *Client) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]domain.CalendarEvent, error) {
	var (
		result    []domain.CalendarEvent
		pageToken string
	)

	for page := 0; page < maxPages; page++ {
		resp, err := c.listPage(ctx, timeMin, timeMax, pageToken)
		if err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			if item.Status == statusCancelled || item.Start.DateTime == "" {
				continue
			}
			ev, err := c.toDomain(item)
			if err != nil {
				return nil, err
			}
			result = append(result, ev)
		}

		if resp.NextPageToken == "" {
			return result, nil
		}
		pageToken = resp.NextPageToken
	}

	return nil, fmt.Errorf("%w: more than %d pages for window %s..%s",
		ErrInvalidResponse, maxPages, timeMin.Format(time.RFC3339), timeMax.Format(time.RFC3339))
}

// InsertEvent создает событие и возвращает его идентификатор
func (c *Client) InsertEvent(ctx context.Context, event domain.CalendarEvent) (string, error) {
	body, err := json.Marshal(c.fromDomain(event))
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.eventsURL(nil), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var created Event
	if err := c.do(req, &created); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("%w: created event has no id", ErrInvalidResponse)
	}

	c.log.Info("Google Calendar event created: id=%s start=%s", created.ID, created.Start.DateTime)
	return created.ID, nil
}

func (c *Client) listPage(ctx context.Context, timeMin, timeMax time.Time, pageToken string) (*EventsPage, error) {
	query := url.Values{}
	query.Set("timeMin", timeMin.Format(time.RFC3339))
	query.Set("timeMax", timeMax.Format(time.RFC3339))
	query.Set("singleEvents", "true")
	query.Set("orderBy", "startTime")
	query.Set("maxResults", fmt.Sprint(pageSize))
	query.Set("timeZone", c.location.String())
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.eventsURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	var page EventsPage
	if err := c.do(req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// do выполняет запрос и разбирает ответ
// 4xx кроме 429 - отказ (domain.ErrEventStoreRejected), сеть, 429 и 5xx - ErrUnavailable
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, readErrorMessage(resp.Body))
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: status %d: %s", domain.ErrEventStoreRejected, resp.StatusCode, readErrorMessage(resp.Body))
	default:
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) eventsURL(query url.Values) string {
	u := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(c.calendarID))
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) toDomain(item Event) (domain.CalendarEvent, error) {
	start, err := time.Parse(time.RFC3339, item.Start.DateTime)
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("%w: event %s start: %v", ErrInvalidResponse, item.ID, err)
	}
	end, err := time.Parse(time.RFC3339, item.End.DateTime)
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("%w: event %s end: %v", ErrInvalidResponse, item.ID, err)
	}

	return domain.CalendarEvent{
		ID:          item.ID,
		Summary:     item.Summary,
		Description: item.Description,
		Start:       start.In(c.location),
		End:         end.In(c.location),
	}, nil
}

func (c *Client) fromDomain(ev domain.CalendarEvent) Event {
	return Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start: EventDateTime{
			DateTime: ev.Start.In(c.location).Format(time.RFC3339),
			TimeZone: c.location.String(),
		},
		End: EventDateTime{
			DateTime: ev.End.In(c.location).Format(time.RFC3339),
			TimeZone: c.location.String(),
		},
	}
}

func readErrorMessage(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, 64<<10))

	var apiErr ErrorResponse
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return string(data)
}
