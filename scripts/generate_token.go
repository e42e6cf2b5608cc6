package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"

	"github.com/kingrain94/shop-rag-api/internal/domain"
)

// Claims matches what middleware.AuthMiddleware reads: "sub" names the
// operator and "roles" carries admin and/or support.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	subject := flag.String("sub", "", "Operator identity for the token")
	roles := flag.String("roles", string(domain.RoleAdmin), "Comma-separated list of roles (admin, support)")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *subject == "" {
		log.Fatal("-sub is required")
	}

	rolesList := []string{}
	for _, role := range strings.Split(*roles, ",") {
		role = strings.TrimSpace(role)
		if role == "" {
			continue
		}
		if !domain.IsValidRole(role) {
			log.Fatalf("Unknown role %q", role)
		}
		rolesList = append(rolesList, role)
	}

	now := time.Now()
	claims := &Claims{
		Roles: rolesList,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   *subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(*expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT_SECRET_KEY is required")
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", tokenString)
}
