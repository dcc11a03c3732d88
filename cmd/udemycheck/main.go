// ABOUTME: Manual probe for Udemy API credentials
// ABOUTME: Exchanges the client credentials and runs one search against the live API

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"skillscope-api/core/interfaces"
	"skillscope-api/core/providers/udemy"
	"skillscope-api/infrastructure/cache/memory"
	stdhttp "skillscope-api/infrastructure/http/standard"
	"skillscope-api/infrastructure/logger"
	"skillscope-api/pkg/config"
)

func main() {
	query := flag.String("q", "python", "search query to probe with")
	max := flag.Int("max", 5, "number of courses to request")
	flag.Parse()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !cfg.Providers.HasUdemyCredentials() {
		fmt.Fprintln(os.Stderr, "UDEMY_CLIENT_ID and UDEMY_CLIENT_SECRET must be set")
		os.Exit(1)
	}

	deps := interfaces.Dependencies{
		Cache:      memory.NewMemoryCache(),
		HTTPClient: stdhttp.NewStandardHTTPClient(30 * time.Second),
		Logger:     logger.NewLogrusLogger(cfg.Log),
	}
	client := udemy.NewClient(deps, cfg.Providers, 30*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	courses := client.Search(ctx, *query, *max)
	if len(courses) == 0 {
		fmt.Println("no courses returned; check credentials and logs above")
		os.Exit(1)
	}

	fmt.Printf("token exchange and search succeeded, %d courses for %q:\n", len(courses), *query)
	for _, c := range courses {
		fmt.Printf("  %d  %-50.50s  %d subscribers\n", c.ID, c.Title, c.NumSubscribers)
	}
}
