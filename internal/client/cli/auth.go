package cli

import (
	"context"
	"fmt"
)

func (app *App) signup(ctx context.Context) error {

	name, err := GetSimpleText(app.reader, "Enter name", app.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(app.reader, "Enter email", app.out)
	if err != nil {
		return err
	}
	password, err := GetSecret("Enter password", app.out)
	if err != nil {
		return err
	}
	secretKey, err := GetSecret("Enter secret key", app.out)
	if err != nil {
		return err
	}

	userID, err := app.client.Signup(ctx, name, email, password, secretKey)
	if err != nil {
		return err
	}

	app.userID = userID
	fmt.Fprintf(app.out, "Account created, user id: %s\n", userID)
	return nil
}

func (app *App) login(ctx context.Context) error {

	email, err := GetSimpleText(app.reader, "Enter email", app.out)
	if err != nil {
		return err
	}
	password, err := GetSecret("Enter password", app.out)
	if err != nil {
		return err
	}
	secretKey, err := GetSecret("Enter secret key", app.out)
	if err != nil {
		return err
	}

	userID, err := app.client.Login(ctx, email, password, secretKey)
	if err != nil {
		return err
	}

	app.userID = userID
	fmt.Fprintln(app.out, "Login successful")
	return nil
}
