package bootstrap

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv reads a local .env file when present. Deployed environments set
// MONGO_URI, JWT_SECRET and the mailer variables directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}
