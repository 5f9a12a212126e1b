package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/actionunit/aumcli/internal/client/api"
)

// getSimpleText is an indirection used to facilitate testing.
var getSimpleText = GetSimpleText

// Login prompts for a phone number and authenticates. Offline and backend
// failures have already been surfaced through the Notifier by the time the
// service returns.
func (a *App) Login(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone number", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.authService.Login(ctx, phone)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", user.Name)
	return nil
}

// Signup walks through the church-account form and submits it.
func (a *App) Signup(ctx context.Context) error {
	var req api.SignupRequest
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Church name", &req.ChurchName},
		{"Welfare name", &req.WelfareName},
		{"Location", &req.Location},
		{"Church email", &req.ChurchEmail},
		{"Welfare mobile money number", &req.WelfareMomo},
		{"Church mobile money number", &req.ChurchMomo},
		{"Your full name", &req.Name},
		{"Your phone number", &req.PhoneNumber},
		{"Gender", &req.Gender},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	_, err := a.authService.Signup(ctx, req)
	return err
}

// Logout clears the session; it succeeds offline.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.Error(err.Error())
		return err
	}
	fmt.Println("Logged out")
	return nil
}

// Status probes connectivity on demand and prints the result.
func (a *App) Status(ctx context.Context) error {
	st := a.monitor.Refresh(ctx)
	if st.Connected {
		fmt.Printf("online (%s)\n", st.ConnectionType)
	} else {
		fmt.Println("offline")
	}
	return nil
}
