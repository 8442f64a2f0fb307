package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/bachelormess/mess-manager/internal/config"
	"github.com/bachelormess/mess-manager/internal/logger"
	"github.com/bachelormess/mess-manager/internal/utils"
	"github.com/bachelormess/mess-manager/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with
// the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the registration payload
// to POST /api/auth/register and returns the created identity summary.
// Registration does not authenticate; the caller logs in afterwards.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the returned bearer token is stored via
// SetToken and the full response (token plus identity summary) is returned.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&loginResp).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(loginResp.Token)
	return loginResp, nil
}

// Logout implements [ServerAdapter]. It POSTs to POST /api/auth/logout and
// clears the stored token whether or not the server acknowledged; the
// session ends client-side either way.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")

	h.SetToken("")

	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	return mapHTTPError(resp)
}

// Me implements [ServerAdapter]. It GETs GET /api/auth/me and returns the
// identity summary behind the current token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode me response: %w", err)
	}

	return user, nil
}

// SubmitMeal implements [ServerAdapter]. It POSTs the meal payload to
// POST /api/meals. Returns [ErrConflict] (wrapped) when the day already
// has a record, [ErrServerUnavailable] on transport failure.
func (h *httpServerAdapter) SubmitMeal(ctx context.Context, req models.MealRequest) (models.Meal, error) {
	var meal models.Meal

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&meal).
		Post("/api/meals")
	if err != nil {
		return models.Meal{}, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Meal{}, err
	}

	return meal, nil
}

// ListMeals implements [ServerAdapter].
func (h *httpServerAdapter) ListMeals(ctx context.Context, query ListQuery) ([]models.Meal, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(query.params()).
		Get("/api/meals")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var meals []models.Meal
	if err = json.Unmarshal(resp.Body(), &meals); err != nil {
		return nil, fmt.Errorf("decode meals response: %w", err)
	}

	return meals, nil
}

// SetMealStatus implements [ServerAdapter]. Admin only.
func (h *httpServerAdapter) SetMealStatus(ctx context.Context, mealID string, status models.ApprovalStatus) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.StatusUpdateRequest{Status: status}).
		Patch("/api/meals/" + url.PathEscape(mealID) + "/status")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}

	return mapHTTPError(resp)
}

// SubmitBazar implements [ServerAdapter]. It POSTs the bazar payload to
// POST /api/bazar.
func (h *httpServerAdapter) SubmitBazar(ctx context.Context, req models.BazarRequest) (models.BazarEntry, error) {
	var entry models.BazarEntry

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&entry).
		Post("/api/bazar")
	if err != nil {
		return models.BazarEntry{}, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BazarEntry{}, err
	}

	return entry, nil
}

// ListBazar implements [ServerAdapter].
func (h *httpServerAdapter) ListBazar(ctx context.Context, query ListQuery) ([]models.BazarEntry, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(query.params()).
		Get("/api/bazar")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.BazarEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode bazar response: %w", err)
	}

	return entries, nil
}

// SetBazarStatus implements [ServerAdapter]. Admin only.
func (h *httpServerAdapter) SetBazarStatus(ctx context.Context, entryID string, status models.ApprovalStatus) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.StatusUpdateRequest{Status: status}).
		Patch("/api/bazar/" + url.PathEscape(entryID) + "/status")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}

	return mapHTTPError(resp)
}

// Dashboard implements [ServerAdapter]. The server decides the scope from
// the caller's role: members receive their own totals, admins the
// mess-wide figures with the per-member breakdown.
func (h *httpServerAdapter) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	resp, err := h.authedRequest(ctx).Get("/api/dashboard")
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DashboardStats{}, err
	}

	var stats models.DashboardStats
	if err = json.Unmarshal(resp.Body(), &stats); err != nil {
		return models.DashboardStats{}, fmt.Errorf("decode dashboard response: %w", err)
	}

	return stats, nil
}

// ListUsers implements [ServerAdapter]. Admin only.
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode users response: %w", err)
	}

	return users, nil
}

// SetUserRole implements [ServerAdapter]. Admin only; assigning
// super_admin additionally requires a super_admin session server-side.
func (h *httpServerAdapter) SetUserRole(ctx context.Context, userID string, role models.Role) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RoleUpdateRequest{Role: role}).
		Patch("/api/users/" + url.PathEscape(userID) + "/role")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}

	return mapHTTPError(resp)
}

// SetUserStatus implements [ServerAdapter]. Admin only.
func (h *httpServerAdapter) SetUserStatus(ctx context.Context, userID string, status models.UserStatus) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UserStatusUpdateRequest{Status: status}).
		Patch("/api/users/" + url.PathEscape(userID) + "/status")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// params flattens the query into resty query parameters, omitting zero
// values so the server applies its defaults.
func (q ListQuery) params() map[string]string {
	params := make(map[string]string, 2)
	if q.UserID != "" {
		params["user_id"] = q.UserID
	}
	if q.Status != "" {
		params["status"] = string(q.Status)
	}
	return params
}
