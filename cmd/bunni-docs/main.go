package main

import (
	"log"

	"github.com/zeframlou/bunni-docs/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ bunni-docs failed to start: %v", err)
	}
}
