package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SessionBooking/internal/domain"
)

// Client клиент каталога пользователей (UserService).
// Консультанты - пользователи с ролью из конфигурации.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListByRole получает всех пользователей с указанной ролью
func (c *Client) ListByRole(ctx context.Context, role string) ([]domain.Provider, error) {
	endpoint := fmt.Sprintf("%s/internal/users?role=%s", c.baseURL, url.QueryEscape(role))

	var users []User
	if err := c.get(ctx, endpoint, &users); err != nil {
		return nil, err
	}

	providers := make([]domain.Provider, 0, len(users))
	for _, u := range users {
		if u.Role != "" && u.Role != role {
			c.log.Warn("ListByRole: user %s has role %q, expected %q, skipping", u.ID, u.Role, role)
			continue
		}
		providers = append(providers, u.ToProvider())
	}

	return providers, nil
}

// GetProvider получает консультанта по ID. Пользователь с другой ролью считается не найденным.
func (c *Client) GetProvider(ctx context.Context, id uuid.UUID, role string) (*domain.Provider, error) {
	endpoint := fmt.Sprintf("%s/internal/users/%s", c.baseURL, id)

	var user User
	if err := c.get(ctx, endpoint, &user); err != nil {
		return nil, err
	}

	if user.Role != role {
		return nil, fmt.Errorf("%w: user %s has role %q", ErrUserNotFound, id, user.Role)
	}

	provider := user.ToProvider()
	return &provider, nil
}

// GetSpecialties получает специализации консультанта
func (c *Client) GetSpecialties(ctx context.Context, id uuid.UUID) ([]string, error) {
	endpoint := fmt.Sprintf("%s/internal/users/%s/specialties", c.baseURL, id)

	var resp SpecialtiesResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	if resp.Specialties == nil {
		return []string{}, nil
	}
	return resp.Specialties, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrUserNotFound
	case http.StatusBadRequest:
		return fmt.Errorf("%w: bad request: %s", ErrInvalidResponse, readError(resp.Body))
	default:
		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: status code %d: %s", ErrUnavailable, resp.StatusCode, readError(resp.Body))
		}
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func readError(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(raw)
}
