// Command keygen mints an HMAC-signed API key for a given user id,
// using the same secret and algorithm the running server verifies
// against.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/arnavshah/roster-feasibility/pkg/auth"
)

func main() {
	_ = godotenv.Load("../.env")
	_ = godotenv.Load(".env")

	if len(os.Args) < 2 {
		fmt.Println("Usage: keygen <userID>")
		os.Exit(1)
	}

	userID := os.Args[1]
	secret := os.Getenv("API_MASTER_SECRET")
	if secret == "" {
		fmt.Println("Error: API_MASTER_SECRET not found in environment")
		os.Exit(1)
	}

	key := auth.GenerateHMACKey(userID, []byte(secret))
	fmt.Printf("Generated Key for %s:\n%s\n", userID, key)
}
