package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"

	"github.com/ArchAbalkhail/real-estate-rent-calculator/pkg/api/rent"
)

type serverConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
}

func main() {
	// Load environment variables
	godotenv.Load()

	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("[FATAL] Bad server config: %v\n", err)
		os.Exit(1)
	}

	// Rent analysis endpoints
	http.HandleFunc("/api/rent/analyze", rent.HandleAnalyze)
	http.HandleFunc("/api/rent/sensitivity", rent.HandleSensitivity)

	fmt.Printf("API server starting on :%s...\n", cfg.Port)
	fmt.Println("  - POST /api/rent/analyze")
	fmt.Println("  - POST /api/rent/sensitivity")

	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
