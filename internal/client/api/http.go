package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/actionunit/aumcli/internal/client/models"
)

// validate checks outgoing payloads at the client boundary, before a request
// is built. A failed validation never reaches the wire.
var validate = validator.New(validator.WithRequiredStructEnabled())

// HTTPClient implements Client over net/http. It holds no session state;
// auth headers and 401 handling belong to the transport installed on hc.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient returns a client rooted at baseURL. hc may carry the auth
// transport; if nil, http.DefaultClient is used.
func NewHTTPClient(baseURL string, hc *http.Client) *HTTPClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

// do performs exactly one HTTP call. A non-2xx response is returned as an
// *APIError with the raw body attached; transport errors pass through
// unchanged.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		if err := validate.Struct(body); err != nil {
			return fmt.Errorf("invalid payload: %w", err)
		}
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding payload: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: data}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func idPath(base string, id int64) string {
	return base + strconv.FormatInt(id, 10) + "/"
}

func yearQuery(year int) url.Values {
	if year <= 0 {
		return nil
	}
	return url.Values{"year": {strconv.Itoa(year)}}
}

// --- auth ---

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, PathLogin, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	var out SignupResponse
	if err := c.do(ctx, http.MethodPost, PathSignup, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RefreshToken(ctx context.Context, refresh string) (*RefreshResponse, error) {
	var out RefreshResponse
	if err := c.do(ctx, http.MethodPost, PathTokenRefresh, nil, RefreshRequest{Refresh: refresh}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- members ---

func (c *HTTPClient) Members(ctx context.Context) ([]models.Member, error) {
	var out []models.Member
	if err := c.do(ctx, http.MethodGet, PathMembers, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Member(ctx context.Context, id int64) (*models.Member, error) {
	var out models.Member
	if err := c.do(ctx, http.MethodGet, idPath(PathMembers, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateMember(ctx context.Context, m models.Member) (*models.Member, error) {
	var out models.Member
	if err := c.do(ctx, http.MethodPost, PathMembers, nil, m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateMember(ctx context.Context, id int64, m models.Member) (*models.Member, error) {
	var out models.Member
	if err := c.do(ctx, http.MethodPut, idPath(PathMembers, id), nil, m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- receipts ---

func (c *HTTPClient) Receipts(ctx context.Context) ([]models.Receipt, error) {
	var out []models.Receipt
	if err := c.do(ctx, http.MethodGet, PathReceipts, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Receipt(ctx context.Context, id int64) (*models.Receipt, error) {
	var out models.Receipt
	if err := c.do(ctx, http.MethodGet, idPath(PathReceipts, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateReceipt(ctx context.Context, r models.Receipt) (*models.Receipt, error) {
	var out models.Receipt
	if err := c.do(ctx, http.MethodPost, PathReceipts, nil, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteReceipt(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath(PathReceipts, id), nil, nil, nil)
}

// --- payments ---

func (c *HTTPClient) Payments(ctx context.Context) ([]models.Payment, error) {
	var out []models.Payment
	if err := c.do(ctx, http.MethodGet, PathPayments, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreatePayment(ctx context.Context, p models.Payment) (*models.Payment, error) {
	var out models.Payment
	if err := c.do(ctx, http.MethodPost, PathPayments, nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeletePayment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath(PathPayments, id), nil, nil, nil)
}

// --- events ---

func (c *HTTPClient) Events(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := c.do(ctx, http.MethodGet, PathEvents, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Event(ctx context.Context, id int64) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodGet, idPath(PathEvents, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, e models.Event) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodPost, PathEvents, nil, e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateEvent(ctx context.Context, id int64, e models.Event) (*models.Event, error) {
	var out models.Event
	if err := c.do(ctx, http.MethodPut, idPath(PathEvents, id), nil, e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath(PathEvents, id), nil, nil, nil)
}

// --- yearly dues ---

func (c *HTTPClient) YearlyDues(ctx context.Context) ([]models.YearlyDues, error) {
	var out []models.YearlyDues
	if err := c.do(ctx, http.MethodGet, PathYearlyDues, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) YearlyDuesByID(ctx context.Context, id int64) (*models.YearlyDues, error) {
	var out models.YearlyDues
	if err := c.do(ctx, http.MethodGet, idPath(PathYearlyDues, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateYearlyDues(ctx context.Context, d models.YearlyDues) (*models.YearlyDues, error) {
	var out models.YearlyDues
	if err := c.do(ctx, http.MethodPost, PathYearlyDues, nil, d, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateYearlyDues(ctx context.Context, id int64, d models.YearlyDues) (*models.YearlyDues, error) {
	var out models.YearlyDues
	if err := c.do(ctx, http.MethodPut, idPath(PathYearlyDues, id), nil, d, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteYearlyDues(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, idPath(PathYearlyDues, id), nil, nil, nil)
}

// --- member reports ---

func (c *HTTPClient) MemberDuesReport(ctx context.Context) (*models.MemberDuesReport, error) {
	var out models.MemberDuesReport
	if err := c.do(ctx, http.MethodGet, PathMemberDuesReport, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) TransportLeviesReport(ctx context.Context) ([]models.TransportLevy, error) {
	var out []models.TransportLevy
	if err := c.do(ctx, http.MethodGet, PathTransportLevies, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UpcomingEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := c.do(ctx, http.MethodGet, PathUpcomingEvents, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) OutstandingAmountsReport(ctx context.Context) ([]models.OutstandingAmount, error) {
	var out []models.OutstandingAmount
	if err := c.do(ctx, http.MethodGet, PathOutstandingAmounts, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) MemberPaymentHistory(ctx context.Context) ([]models.Receipt, error) {
	var out []models.Receipt
	if err := c.do(ctx, http.MethodGet, PathMemberPaymentHistory, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- dashboards and insights ---

func (c *HTTPClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := c.do(ctx, http.MethodGet, PathDashboardStats, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) RecentActivity(ctx context.Context) ([]models.Activity, error) {
	var out []models.Activity
	if err := c.do(ctx, http.MethodGet, PathDashboardActivity, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) MembershipInsights(ctx context.Context) (*models.Insights, error) {
	var out models.Insights
	if err := c.do(ctx, http.MethodGet, PathMembershipInsight, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ReceiptsInsights(ctx context.Context, year int) (*models.Insights, error) {
	var out models.Insights
	if err := c.do(ctx, http.MethodGet, PathReceiptsInsight, yearQuery(year), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) PaymentsInsights(ctx context.Context, year int) (*models.Insights, error) {
	var out models.Insights
	if err := c.do(ctx, http.MethodGet, PathPaymentsInsight, yearQuery(year), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) EventsInsights(ctx context.Context, year int) (*models.Insights, error) {
	var out models.Insights
	if err := c.do(ctx, http.MethodGet, PathEventsInsight, yearQuery(year), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- role management ---

func (c *HTTPClient) Users(ctx context.Context, search string) (*UsersResponse, error) {
	var q url.Values
	if search != "" {
		q = url.Values{"search": {search}}
	}
	var out UsersResponse
	if err := c.do(ctx, http.MethodGet, PathMemberRoles, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateUserRoles(ctx context.Context, id int64, roles models.RoleUpdate) (*UserResponse, error) {
	path := fmt.Sprintf("%s%d/update/", PathMemberRoles, id)
	var out UserResponse
	if err := c.do(ctx, http.MethodPatch, path, nil, roles, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- church profile ---

func (c *HTTPClient) ChurchInfo(ctx context.Context) (*models.Church, error) {
	var out models.Church
	if err := c.do(ctx, http.MethodGet, PathChurchInfo, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateChurchContact(ctx context.Context, contact models.ChurchContact) (*models.Church, error) {
	var out models.Church
	if err := c.do(ctx, http.MethodPatch, PathChurchContact, nil, contact, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ Client = (*HTTPClient)(nil)
