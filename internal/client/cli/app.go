// Package cli implements the interactive passvault client: signup, login,
// and vault management over the server's HTTP API.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/client/api"
)

type App struct {
	client *api.Client
	reader *bufio.Reader
	out    io.Writer

	// userID is set after a successful login; vault commands require it
	userID string
}

func NewApp(serverAddr string) *App {
	return &App{
		client: api.NewClient(serverAddr),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (app *App) printHelp() {
	fmt.Fprintln(app.out, `Commands:
  signup   create a new account
  login    log in to an existing account
  add      save a credential to the vault
  list     show saved credentials
  delete   remove a credential by id
  help     show this help
  quit     exit`)
}

// Run executes the command loop until quit, EOF, or context cancellation.
func (app *App) Run(ctx context.Context) error {

	app.printHelp()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		cmd, err := GetSimpleText(app.reader, "Enter command", app.out)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch strings.ToLower(cmd) {
		case "signup":
			err = app.signup(ctx)
		case "login":
			err = app.login(ctx)
		case "add":
			err = app.addItem(ctx)
		case "list":
			err = app.listItems(ctx)
		case "delete":
			err = app.deleteItem(ctx)
		case "help":
			app.printHelp()
		case "quit", "exit":
			return nil
		case "":
			continue
		default:
			fmt.Fprintf(app.out, "Unknown command: %s\n", cmd)
		}

		if err != nil {
			fmt.Fprintf(app.out, "Error: %v\n", err)
		}
	}
}

func (app *App) requireLogin() error {
	if app.userID == "" {
		return fmt.Errorf("please login first")
	}
	return nil
}
