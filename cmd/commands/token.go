package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"jailoo/internal/auth"
	"jailoo/internal/presentation"
)

// HandleToken mints an admin bearer token signed with the shared secret.
// Meant for operators and local development; production tokens come from
// the identity provider.
func HandleToken(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("usage: jailoo token <subject> [ttl]"))
	}

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		ExitOnError(errors.New("AUTH_JWT_SECRET is not set"))
	}

	ttl := 24 * time.Hour
	if len(args) > 3 {
		parsed, err := time.ParseDuration(args[3])
		if err != nil {
			ExitOnError(err)
		}
		ttl = parsed
	}

	token, err := auth.Issue(secret, args[2], presentation.AdminRole, ttl)
	if err != nil {
		ExitOnError(err)
	}

	fmt.Println(token)
}
