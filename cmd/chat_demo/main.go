// README: Demo program exercising intent extraction against the live model.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"tripdesk/internal/ai"
	"tripdesk/internal/modules/intent"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	provider, err := ai.NewGeminiProvider(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	logger, _ := zap.NewDevelopment()
	classifier := intent.NewClassifier(provider, logger)

	message := "Find flights from NYC to Paris on 2030-06-01 for 2 adults"
	if len(os.Args) > 1 {
		message = os.Args[1]
	}
	fmt.Printf("User: %s\n", message)

	result := classifier.Classify(ctx, message, nil, time.Now().UTC().Format(time.RFC3339))

	fmt.Printf("Tier: %s\n", result.Tier)
	fmt.Printf("Intent: %s\n", result.Params.Intent)
	if result.Params.Departure != "" {
		fmt.Printf("Departure: %s\n", result.Params.Departure)
	}
	if result.Params.Destination != "" {
		fmt.Printf("Destination: %s\n", result.Params.Destination)
	}
	if result.Params.OutboundDate != "" {
		fmt.Printf("Outbound: %s\n", result.Params.OutboundDate)
	}
	if result.Params.Adults > 0 {
		fmt.Printf("Adults: %d\n", result.Params.Adults)
	}
}
