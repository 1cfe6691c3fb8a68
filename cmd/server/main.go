// Command server runs the HTTP API.
package main

import (
	"context"
	"log"

	"github.com/avolkovx/coursehub/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("run: %v", err)
	}
}
