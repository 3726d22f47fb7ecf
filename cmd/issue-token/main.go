// Command issue-token prints a signed bearer token for a reviewer, admin or
// system actor. Tokens are signed with auth.jwt_secret from the app config.
//
// Flags:
//
//	--actor  actor id recorded on every change made with the token (required)
//	--role   reviewer | admin | system (default reviewer)
//	--ttl    override auth.access_token_ttl
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/heartmarshall/scholarship-curator/internal/auth"
	"github.com/heartmarshall/scholarship-curator/internal/config"
	"github.com/heartmarshall/scholarship-curator/internal/domain"
)

func main() {
	actor := flag.String("actor", "", "actor id (required)")
	role := flag.String("role", string(domain.ActorRoleReviewer), "reviewer | admin | system")
	ttl := flag.Duration("ttl", 0, "override auth.access_token_ttl")
	flag.Parse()

	if strings.TrimSpace(*actor) == "" {
		fmt.Fprintln(os.Stderr, "issue-token: --actor is required")
		flag.Usage()
		os.Exit(1)
	}

	r := domain.ActorRole(strings.ToLower(*role))
	if !r.IsValid() {
		fmt.Fprintf(os.Stderr, "issue-token: unknown role %q\n", *role)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if *ttl <= 0 {
		*ttl = cfg.Auth.AccessTokenTTL
	}

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, *ttl)
	token, err := jwtMgr.GenerateAccessToken(strings.TrimSpace(*actor), r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue-token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
