package googlecalendar

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// ScopeEvents доступ на чтение и создание событий
const ScopeEvents = "https://www.googleapis.com/auth/calendar.events"

// NewHTTPClient создает авторизованный HTTP клиент
// credentialsFile - JSON сервисного аккаунта; если пуст, используются Application Default Credentials
func NewHTTPClient(ctx context.Context, credentialsFile string, timeout time.Duration) (*http.Client, error) {
	var creds *google.Credentials

	if credentialsFile == "" {
		found, err := google.FindDefaultCredentials(ctx, ScopeEvents)
		if err != nil {
			return nil, fmt.Errorf("%w: find default credentials: %v", ErrCredentials, err)
		}
		creds = found
	} else {
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrCredentials, credentialsFile, err)
		}
		parsed, err := google.CredentialsFromJSON(ctx, data, ScopeEvents)
		if err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrCredentials, credentialsFile, err)
		}
		creds = parsed
	}

	client := oauth2.NewClient(ctx, creds.TokenSource)
	client.Timeout = timeout

	return client, nil
}
