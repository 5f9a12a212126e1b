// Package api is the typed HTTP surface of the welfare backend: one request
// builder per endpoint, no retries, no caching. All session state lives in
// the session store; retry-on-401 is the transport's job.
package api

import (
	"context"
	"strings"

	"github.com/actionunit/aumcli/internal/client/models"
)

// Backend endpoint paths, relative to the configured base URL.
const (
	PathLogin        = "/api/auth/login/"
	PathSignup       = "/api/auth/signup/"
	PathTokenRefresh = "/api/auth/token/refresh/"

	PathMembers    = "/api/members/"
	PathReceipts   = "/api/receipts/"
	PathPayments   = "/api/payments/"
	PathEvents     = "/api/events/"
	PathYearlyDues = "/api/yearly-dues/"

	PathMemberRoles   = "/api/member-roles/"
	PathChurchInfo    = "/api/church-info/"
	PathChurchContact = "/api/church-contact/"

	PathMemberDuesReport     = "/api/reports-member-dues"
	PathTransportLevies      = "/api/reports-transport-levies/"
	PathUpcomingEvents       = "/api/events-upcoming-list/"
	PathOutstandingAmounts   = "/api/reports-outstanding-amounts/"
	PathMemberPaymentHistory = "/api/member-payment-history/"

	PathDashboardStats    = "/api/dashboard/stats/"
	PathDashboardActivity = "/api/dashboard/recent-activity/"
	PathMembershipInsight = "/api/membership/insights/"
	PathReceiptsInsight   = "/api/receipts/insights/"
	PathPaymentsInsight   = "/api/payments/insights/"
	PathEventsInsight     = "/api/events/insights/"
)

// unauthenticatedPaths are the three endpoints that must never carry an
// Authorization header and must never trigger a refresh-retry cycle.
var unauthenticatedPaths = []string{PathLogin, PathSignup, PathTokenRefresh}

// IsUnauthenticatedPath reports whether the request path belongs to the
// unauthenticated trio.
func IsUnauthenticatedPath(path string) bool {
	for _, p := range unauthenticatedPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Client is the full request-builder surface. Consumers should depend on the
// subset they use; tests substitute hand-written fakes.
type Client interface {
	// Auth (unauthenticated trio).
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error)
	RefreshToken(ctx context.Context, refresh string) (*RefreshResponse, error)

	// Members.
	Members(ctx context.Context) ([]models.Member, error)
	Member(ctx context.Context, id int64) (*models.Member, error)
	CreateMember(ctx context.Context, m models.Member) (*models.Member, error)
	UpdateMember(ctx context.Context, id int64, m models.Member) (*models.Member, error)

	// Receipts.
	Receipts(ctx context.Context) ([]models.Receipt, error)
	Receipt(ctx context.Context, id int64) (*models.Receipt, error)
	CreateReceipt(ctx context.Context, r models.Receipt) (*models.Receipt, error)
	DeleteReceipt(ctx context.Context, id int64) error

	// Payments.
	Payments(ctx context.Context) ([]models.Payment, error)
	CreatePayment(ctx context.Context, p models.Payment) (*models.Payment, error)
	DeletePayment(ctx context.Context, id int64) error

	// Events.
	Events(ctx context.Context) ([]models.Event, error)
	Event(ctx context.Context, id int64) (*models.Event, error)
	CreateEvent(ctx context.Context, e models.Event) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, e models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error

	// Yearly dues.
	YearlyDues(ctx context.Context) ([]models.YearlyDues, error)
	YearlyDuesByID(ctx context.Context, id int64) (*models.YearlyDues, error)
	CreateYearlyDues(ctx context.Context, d models.YearlyDues) (*models.YearlyDues, error)
	UpdateYearlyDues(ctx context.Context, id int64, d models.YearlyDues) (*models.YearlyDues, error)
	DeleteYearlyDues(ctx context.Context, id int64) error

	// Member reports.
	MemberDuesReport(ctx context.Context) (*models.MemberDuesReport, error)
	TransportLeviesReport(ctx context.Context) ([]models.TransportLevy, error)
	UpcomingEvents(ctx context.Context) ([]models.Event, error)
	OutstandingAmountsReport(ctx context.Context) ([]models.OutstandingAmount, error)
	MemberPaymentHistory(ctx context.Context) ([]models.Receipt, error)

	// Dashboards and insights.
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	RecentActivity(ctx context.Context) ([]models.Activity, error)
	MembershipInsights(ctx context.Context) (*models.Insights, error)
	ReceiptsInsights(ctx context.Context, year int) (*models.Insights, error)
	PaymentsInsights(ctx context.Context, year int) (*models.Insights, error)
	EventsInsights(ctx context.Context, year int) (*models.Insights, error)

	// Role management.
	Users(ctx context.Context, search string) (*UsersResponse, error)
	UpdateUserRoles(ctx context.Context, id int64, roles models.RoleUpdate) (*UserResponse, error)

	// Church profile.
	ChurchInfo(ctx context.Context) (*models.Church, error)
	UpdateChurchContact(ctx context.Context, c models.ChurchContact) (*models.Church, error)
}
