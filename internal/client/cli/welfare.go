package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/actionunit/aumcli/internal/client/api"
	"github.com/actionunit/aumcli/internal/client/models"
)

// Members lists the registered members.
func (a *App) Members(ctx context.Context) error {
	members, err := a.apiClient.Members(ctx)
	if err != nil {
		a.Error(api.ExtractMessage(err))
		return err
	}

	for _, m := range members {
		fmt.Printf("%4d  %-30s %-15s %s\n", m.ID, m.FullName, m.PhoneNumber, m.Status)
	}
	fmt.Printf("%d member(s)\n", len(members))
	return nil
}

// AddMember prompts for the member form and creates the record. The church
// reference comes from the logged-in user, as the mobile form does it.
func (a *App) AddMember(ctx context.Context) error {
	m := models.Member{
		Status:     "active",
		DateJoined: time.Now().Format("2006-01-02"),
	}

	var err error
	if m.FullName, err = getSimpleText(a.reader, "Full name", os.Stdout); err != nil {
		return err
	}
	if m.PhoneNumber, err = getSimpleText(a.reader, "Phone number", os.Stdout); err != nil {
		return err
	}
	if m.Gender, err = getSimpleText(a.reader, "Gender", os.Stdout); err != nil {
		return err
	}
	if m.Location, err = getSimpleText(a.reader, "Location", os.Stdout); err != nil {
		return err
	}
	if u := a.store.CurrentUser(); u != nil && u.Church != nil {
		m.Church = u.Church.ID
	}

	created, err := a.apiClient.CreateMember(ctx, m)
	if err != nil {
		a.Error(api.ExtractMessage(err))
		return err
	}

	a.Success(fmt.Sprintf("Member %s added", created.FullName))
	return nil
}

// Receipts lists recorded receipts.
func (a *App) Receipts(ctx context.Context) error {
	receipts, err := a.apiClient.Receipts(ctx)
	if err != nil {
		a.Error(api.ExtractMessage(err))
		return err
	}

	for _, r := range receipts {
		fmt.Printf("%4d  member=%d %-12s %8.2f %s\n", r.ID, r.Member, r.ReceiptType, r.Amount, r.Date)
	}
	fmt.Printf("%d receipt(s)\n", len(receipts))
	return nil
}

// AddReceipt records money received from a member.
func (a *App) AddReceipt(ctx context.Context) error {
	now := time.Now()
	r := models.Receipt{
		Date: now.Format("2006-01-02"),
		Year: now.Year(),
	}

	var err error
	if r.Member, err = GetID(a.reader, "Member id", os.Stdout); err != nil {
		return err
	}
	if r.ReceiptType, err = getSimpleText(a.reader, "Receipt type (dues, levy, donation)", os.Stdout); err != nil {
		return err
	}
	if r.Amount, err = GetAmount(a.reader, "Amount", os.Stdout); err != nil {
		return err
	}
	if r.Details, err = getSimpleText(a.reader, "Details (optional)", os.Stdout); err != nil {
		return err
	}
	if u := a.store.CurrentUser(); u != nil {
		r.CreatedBy = u.ID
	}

	if _, err := a.apiClient.CreateReceipt(ctx, r); err != nil {
		a.Error(api.ExtractMessage(err))
		return err
	}

	a.Success("Receipt created successfully")
	return nil
}

// Payments lists welfare payouts.
func (a *App) Payments(ctx context.Context) error {
	payments, err := a.apiClient.Payments(ctx)
	if err != nil {
		a.Error(api.ExtractMessage(err))
		return err
	}

	for _, p := range payments {
		fmt.Printf("%4d  %-16s %-24s %8.2f %s\n", p.ID, p.PaymentType, p.PayeeName, p.Amount, p.Date)
	}
	fmt.Printf("%d payment(s)\n", len(payments))
	return nil
}

// Events lists member events and their levies.
func (a *App) Events(ctx context.Context) error {
	events, err := a.apiClient.Events(ctx)
	if err != nil {
		a.Error(api.ExtractMessage(err))
		return err
	}

	for _, e := range events {
		paid := " "
		if e.IsLevyPaid {
			paid = "✔"
		}
		fmt.Printf("%4d  %-12s member=%d %s levy=%.2f %s\n", e.ID, e.EventType, e.Member, e.EventDate, e.LevyAmount, paid)
	}
	fmt.Printf("%d event(s)\n", len(events))
	return nil
}

// Dues lists the yearly dues settings.
func (a *App) Dues(ctx context.Context) error {
	dues, err := a.apiClient.YearlyDues(ctx)
	if err != nil {
		a.Error(api.ExtractMessage(err))
		return err
	}

	for _, d := range dues {
		fmt.Printf("%4d  year=%d monthly=%.2f\n", d.ID, d.Year, d.MonthlyAmount)
	}
	return nil
}

// Roles lists users with their role flags.
func (a *App) Roles(ctx context.Context) error {
	resp, err := a.apiClient.Users(ctx, "")
	if err != nil {
		a.Error(api.ExtractMessage(err))
		return err
	}

	for _, u := range resp.Users {
		fmt.Printf("%4d  %-24s member=%t welfare_admin=%t church_admin=%t\n",
			u.ID, u.Name, u.IsMember, u.IsWelfareAdmin, u.IsChurchAdmin)
	}
	return nil
}
