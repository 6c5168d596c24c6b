package cli

import (
	"context"
	"fmt"
	"os"
)

// Users lists the non-admin accounts and toggles their active status.
// The REPL only dispatches here for admins.
func (a *App) Users(ctx context.Context) error {
	users, err := a.users.Users(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(users) == 0 {
		printlnFn("No users yet.")
		return nil
	}

	size := choosePageSize(a.reader, os.Stdout)
	showPaged(a.reader, os.Stdout, len(users), size, func(from, to int) {
		for _, u := range users[from:to] {
			state := "inactive"
			if u.Status == "true" {
				state = "active"
			}
			fmt.Fprintf(os.Stdout, "%4d  %-24s %-28s %-14s %s\n",
				u.UserID, u.UserName, u.UserEmail, u.UserPhoneNo, state)
		}
	})

	action, err := getSimpleText(a.reader, "Action: activate, deactivate (Enter to go back)", os.Stdout)
	if err != nil {
		return err
	}

	switch action {
	case "":
		return nil
	case "activate":
		return a.setUserStatus(ctx, true)
	case "deactivate":
		return a.setUserStatus(ctx, false)
	default:
		printlnFn("Unknown action:", action)
		return nil
	}
}

func (a *App) setUserStatus(ctx context.Context, active bool) error {
	id, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.users.SetStatus(ctx, id, active); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("User updated.")
	return nil
}
