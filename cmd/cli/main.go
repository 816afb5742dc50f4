package main

import (
	"context"
	"flag"
	"log"

	"github.com/dmitrijs2005/passvault/internal/client/cli"
)

func main() {

	serverAddr := flag.String("a", "http://localhost:8080", "passvault server address")
	flag.Parse()

	app := cli.NewApp(*serverAddr)

	if err := app.Run(context.Background()); err != nil {
		log.Printf("%v", err)
	}
}
