package cli

import (
	"context"
	"fmt"

	"github.com/actionunit/aumcli/internal/client/api"
)

// Dashboard prints the view matching the user's roles: admins get the fund
// overview, members get their own dues position. The flags are independent,
// so a user with both roles sees both sections.
func (a *App) Dashboard(ctx context.Context) error {
	shown := false

	if a.authService.IsWelfareAdmin() || a.authService.IsChurchAdmin() {
		if err := a.adminDashboard(ctx); err != nil {
			return err
		}
		shown = true
	}

	if a.authService.IsMember() {
		if err := a.memberDashboard(ctx); err != nil {
			return err
		}
		shown = true
	}

	if !shown {
		fmt.Println("No dashboard available for your roles")
	}
	return nil
}

func (a *App) adminDashboard(ctx context.Context) error {
	stats, err := a.apiClient.DashboardStats(ctx)
	if err != nil {
		a.Error(api.ExtractMessage(err))
		return err
	}

	fmt.Printf("Members:  %d total, %d active\n", stats.TotalMembers, stats.ActiveMembers)
	fmt.Printf("Receipts: %.2f total, %.2f this month\n", stats.TotalReceipts, stats.MonthlyReceipts)
	fmt.Printf("Payments: %.2f total, %.2f this month\n", stats.TotalPayments, stats.MonthlyPayments)
	fmt.Printf("Events:   %d total, %d upcoming\n", stats.TotalEvents, stats.UpcomingEvents)
	fmt.Printf("Balance:  %.2f\n", stats.Balance)

	activity, err := a.apiClient.RecentActivity(ctx)
	if err != nil {
		a.Error(api.ExtractMessage(err))
		return err
	}
	for _, act := range activity {
		fmt.Printf("  [%s] %s (%s)\n", act.Type, act.Description, act.Time)
	}
	return nil
}

func (a *App) memberDashboard(ctx context.Context) error {
	report, err := a.apiClient.MemberDuesReport(ctx)
	if err != nil {
		a.Error(api.ExtractMessage(err))
		return err
	}

	fmt.Printf("Dues: %.2f paid of %.2f expected", report.TotalPaid, report.TotalDuesExpected)
	if report.TotalDuesExpected > 0 {
		fmt.Printf(" (%d%%)", int(report.TotalPaid/report.TotalDuesExpected*100+0.5))
	}
	fmt.Println()

	events, err := a.apiClient.UpcomingEvents(ctx)
	if err != nil {
		a.Error(api.ExtractMessage(err))
		return err
	}
	for _, e := range events {
		fmt.Printf("  upcoming: %s on %s at %s\n", e.EventType, e.EventDate, e.Venue)
	}
	return nil
}
