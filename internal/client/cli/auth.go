package cli

import (
	"context"
	"os"

	"github.com/Venkatesh1410/smartbill/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and tries to authenticate. On failure the
// backend's message is shown as-is; nothing is stored locally.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Login successful!")
	return nil
}

// Signup prompts for the account fields and attempts to register. When the
// backend issues a token right away the session opens immediately.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone number", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	req := models.SignupRequest{
		UserName:    name,
		UserEmail:   email,
		Password:    password,
		UserPhoneNo: phone,
	}
	if err := a.auth.Signup(ctx, req); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Success!")
	return nil
}

// ForgotPassword asks the backend to reset the account's password.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Check your mailbox for further instructions.")
	return nil
}

// Logout clears the session and the cached lists.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}
