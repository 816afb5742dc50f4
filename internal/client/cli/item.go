package cli

import (
	"context"
	"fmt"
)

func (app *App) addItem(ctx context.Context) error {
	if err := app.requireLogin(); err != nil {
		return err
	}

	siteName, err := GetSimpleText(app.reader, "Enter site name", app.out)
	if err != nil {
		return err
	}
	link, err := GetSimpleText(app.reader, "Enter link (optional)", app.out)
	if err != nil {
		return err
	}
	password, err := GetSecret("Enter site password", app.out)
	if err != nil {
		return err
	}

	if err := app.client.SaveItem(ctx, app.userID, siteName, link, password); err != nil {
		return err
	}

	fmt.Fprintln(app.out, "Saved")
	return nil
}

func (app *App) listItems(ctx context.Context) error {
	if err := app.requireLogin(); err != nil {
		return err
	}

	items, err := app.client.ListItems(ctx, app.userID)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(app.out, "Vault is empty")
		return nil
	}

	for _, item := range items {
		fmt.Fprintf(app.out, "%s  %s  %s  %s  (%s)\n",
			item.ID, item.SiteName, item.Link, item.Password,
			item.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (app *App) deleteItem(ctx context.Context) error {
	if err := app.requireLogin(); err != nil {
		return err
	}

	itemID, err := GetSimpleText(app.reader, "Enter item id", app.out)
	if err != nil {
		return err
	}

	if err := app.client.DeleteItem(ctx, app.userID, itemID); err != nil {
		return err
	}

	fmt.Fprintln(app.out, "Deleted")
	return nil
}
