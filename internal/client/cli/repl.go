package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. Tests replace it with a stub.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL needs. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Members(ctx context.Context) error
	AddMember(ctx context.Context) error
	Receipts(ctx context.Context) error
	AddReceipt(ctx context.Context) error
	Payments(ctx context.Context) error
	Events(ctx context.Context) error
	Dues(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Roles(ctx context.Context) error
}

// runREPL reads a line, takes the first token as the command, and dispatches
// to a. Handlers log their own errors; the loop stays resilient and exits on
// EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("aum %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: status, members, addmember, receipts, addreceipt, payments, events, dues, dashboard, roles, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, status, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "members":
			_ = a.Members(ctx)

		case "addmember":
			_ = a.AddMember(ctx)

		case "receipts":
			_ = a.Receipts(ctx)

		case "addreceipt":
			_ = a.AddReceipt(ctx)

		case "payments":
			_ = a.Payments(ctx)

		case "events":
			_ = a.Events(ctx)

		case "dues":
			_ = a.Dues(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "roles":
			_ = a.Roles(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
