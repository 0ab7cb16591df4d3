package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"cart-api/internal/auth"
)

// tokengen issues a signed test token for local API calls. In production
// tokens come from the external auth service.
func main() {
	userID := flag.String("user", "", "user identifier to embed in the token")
	flag.Parse()

	logger := log.New(os.Stderr, "[tokengen] ", log.LstdFlags|log.LUTC)

	if *userID == "" {
		logger.Fatal("usage: tokengen -user <userId>")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "test-secret-key"
	}

	token, err := auth.Sign(*userID, secret)
	if err != nil {
		logger.Fatalf("sign token: %v", err)
	}

	fmt.Println(token)
}
