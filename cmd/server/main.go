// Command server starts the example HTTP application. Configuration comes
// from the environment (optionally a .env file); SIGINT/SIGTERM trigger a
// graceful drain and resource teardown.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/RanchoCooper/go-hexagonal/app"
)

func main() {
	application, err := app.New()
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
