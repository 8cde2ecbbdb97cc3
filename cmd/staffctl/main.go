// Command staffctl provisions staff users and issues session tokens.
//
//	staffctl grant -auth-id AUTH_ID -email EMAIL -role admin|editor|viewer [-active=false]
//	staffctl token -auth-id AUTH_ID -email EMAIL
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/bilacert/bilacert-api/internal/auth"
	"github.com/bilacert/bilacert-api/internal/config"
	"github.com/bilacert/bilacert-api/internal/domain"
	"github.com/bilacert/bilacert-api/internal/repo"
	"github.com/bilacert/bilacert-api/internal/sysutil"
)

const usage = `usage:
  staffctl grant -auth-id ID -email EMAIL -role admin|editor|viewer [-active=false]
  staffctl token -auth-id ID -email EMAIL`

func main() {
	_ = godotenv.Load()
	sysutil.SetupLogger(os.Stderr, os.Getenv("LOG_LEVEL"), true)

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Error().Err(err).Msg("staffctl failed")
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return flag.ErrHelp
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	switch args[0] {
	case "grant":
		return grant(cfg, args[1:], out)
	case "token":
		return token(cfg, args[1:], out)
	default:
		fmt.Fprintln(os.Stderr, usage)
		return flag.ErrHelp
	}
}

func grant(cfg config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("grant", flag.ContinueOnError)
	authID := fs.String("auth-id", "", "identity provider subject")
	email := fs.String("email", "", "staff email")
	role := fs.String("role", string(domain.RoleViewer), "admin, editor or viewer")
	active := fs.Bool("active", true, "set false to deactivate the profile")
	if err := fs.Parse(args); err != nil {
		return err
	}
	r := domain.Role(strings.ToLower(strings.TrimSpace(*role)))
	if *authID == "" || *email == "" {
		return errors.New("grant: -auth-id and -email are required")
	}
	if !r.Valid() {
		return fmt.Errorf("grant: unknown role %q", *role)
	}

	db, err := repo.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()
	if err := repo.AutoMigrate(db); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	u, err := repo.UpsertUserRole(ctx, db, *authID, *email, r, *active)
	if err != nil {
		return err
	}
	log.Info().Str("auth_id", u.AuthID).Str("role", string(u.Role)).Bool("active", u.IsActive).Msg("staff user saved")
	status := "active"
	if !u.IsActive {
		status = "inactive"
	}
	fmt.Fprintf(out, "%s %s %s %s\n", u.AuthID, u.Email, u.Role, status)
	return nil
}

func token(cfg config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	authID := fs.String("auth-id", "", "identity provider subject")
	email := fs.String("email", "", "staff email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *authID == "" {
		return errors.New("token: -auth-id is required")
	}
	if !cfg.Auth.Enabled() {
		return errors.New("token: AUTH_JWT_SECRET is not set")
	}
	tok, err := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL).Issue(*authID, *email)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, tok)
	return nil
}
