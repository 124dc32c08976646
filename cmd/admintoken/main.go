// Command admintoken mints a JWT for the admin endpoints and prints it to
// stdout. Requires AUTH_JWT_SECRET to be configured.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/wanderto/wanderto-backend/internal/auth"
	"github.com/wanderto/wanderto-backend/internal/config"
)

func main() {
	subject := flag.String("subject", "admin", "token subject (who the token identifies)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if !cfg.Auth.AdminEnabled() {
		log.Fatal("AUTH_JWT_SECRET is not configured")
	}

	token, err := auth.NewManager(cfg.Auth).Generate(*subject)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
