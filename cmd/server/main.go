// Command server runs the FactSphere REST API in front of the configured
// store until SIGINT or SIGTERM.
//
// Configuration is read from CONFIG_PATH (fallback ./config.yaml) and the
// environment.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/factsphere/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
