package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Categories(ctx context.Context) error
	Products(ctx context.Context) error
	Order(ctx context.Context) error
	Bills(ctx context.Context) error
	Users(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Smart Bill CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — authenticate
//	  - forgot         — request a password reset
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - dashboard      — show category/product/bill counts
//	  - categories     — manage categories
//	  - products       — manage products
//	  - order          — compose and submit an order
//	  - bills          — list, download, delete bills
//	  - users          — manage accounts (admin only)
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Commands outside the current auth state are rejected with a short message
// instead of being dispatched. Errors returned by command handlers are
// ignored here; handlers report their own errors. This keeps the REPL loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("smartbill> %s > ", statusFn()))
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
				if a.isAdmin() {
					printlnFn("Available commands: dashboard, categories, products, order, bills, users, logout, exit")
				} else {
					printlnFn("Available commands: dashboard, categories, products, order, bills, logout, exit")
				}
			} else {
				printlnFn("Available commands: signup, login, forgot, exit")
			}

		case "signup":
			if a.isLoggedIn() {
				printlnFn("Already logged in.")
				continue
			}
			_ = a.Signup(ctx)

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in.")
				continue
			}
			_ = a.Login(ctx)

		case "forgot":
			if a.isLoggedIn() {
				printlnFn("Already logged in.")
				continue
			}
			_ = a.ForgotPassword(ctx)

		case "dashboard":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			_ = a.Dashboard(ctx)

		case "categories":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			_ = a.Categories(ctx)

		case "products":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			_ = a.Products(ctx)

		case "order":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			_ = a.Order(ctx)

		case "bills":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			_ = a.Bills(ctx)

		case "users":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			if !a.isAdmin() {
				printlnFn("Admin access required.")
				continue
			}
			_ = a.Users(ctx)

		case "logout":
			if !a.isLoggedIn() {
				printlnFn("Not logged in.")
				continue
			}
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
