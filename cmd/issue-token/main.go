// Command issue-token prints a signed access token for a user id. It is a
// development aid for calling the API without the external login service.
//
// Usage:
//
//	issue-token --user=3f0c2b8e-0d6b-4c1e-9a7e-2f8d1c5b9a10 [--ttl=1h]
//
// Reads the server configuration, so the secret and issuer always match.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/rbradwell/language-learning/internal/auth"
	"github.com/rbradwell/language-learning/internal/config"
)

func main() {
	user := flag.String("user", "", "user id to put in the token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to auth.access_token_ttl)")
	flag.Parse()

	userID, err := uuid.Parse(*user)
	if err != nil || userID == uuid.Nil {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --user=<uuid> [--ttl=1h]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime).GenerateAccessToken(userID)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Now().Add(lifetime).UTC().Format(time.RFC3339))
}
