package main

import (
	"log"

	"github.com/jobtools/adzuna-go/internal/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; real environments set the variables
	// directly.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
