package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/loadouthq/setups/pkg/jwt"
)

// devtoken signs a bearer token for local development and testing.
func main() {
	privateKeyPath := flag.String("key", "./keys/private.pem", "Path to JWT private key")
	publicKeyPath := flag.String("pub", "./keys/public.pem", "Path to JWT public key (for -generate)")
	userID := flag.String("user", "user:dev", "User ID for the token")
	issuer := flag.String("issuer", "setups.loadouthq.dev", "JWT issuer")
	expMins := flag.Int("exp", 60*24, "Token expiration in minutes (default: 24 hours)")
	generate := flag.Bool("generate", false, "Generate a key pair at -key/-pub if missing")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	if *generate {
		if _, err := os.Stat(*privateKeyPath); os.IsNotExist(err) {
			if err := jwt.GenerateKeyPair(*privateKeyPath, *publicKeyPath); err != nil {
				fmt.Fprintf(os.Stderr, "Error generating key pair: %v\n", err)
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "Generated key pair at %s / %s\n", *privateKeyPath, *publicKeyPath)
		}
	}

	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: *privateKeyPath,
		Issuer:         *issuer,
		ExpirationMins: *expMins,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nGenerate a key pair first: devtoken -generate\n")
		os.Exit(1)
	}

	claims := jwt.Claims{
		Subject: *userID,
		UserID:  *userID,
	}

	token, err := jwtService.Sign(claims)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   *expMins * 60,
			"user_id":      *userID,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
	} else {
		expTime := time.Now().Add(time.Duration(*expMins) * time.Minute)
		fmt.Println("Dev Token Generated")
		fmt.Println("===================")
		fmt.Printf("User ID:  %s\n", *userID)
		fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
		fmt.Println()
		fmt.Println("Token:")
		fmt.Println(token)
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  curl -H 'Authorization: Bearer <token>' http://localhost:8080/setups\n")
	}
}
