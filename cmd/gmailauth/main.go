// Command gmailauth runs the one-time OAuth consent flow and writes the token
// file the API server reads at startup.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/justsurfingit/job-platform/internal/auth"
	"github.com/justsurfingit/job-platform/internal/config"
	"github.com/justsurfingit/job-platform/internal/logger"
)

func main() {
	credentials := flag.String("credentials", "", "OAuth client secret file (defaults to GMAIL_CREDENTIALS_FILE)")
	tokenFile := flag.String("token", "", "where to write the token (defaults to GMAIL_TOKEN_FILE)")
	flag.Parse()
	_ = godotenv.Load()

	env := func(key string) string {
		// JWT_SECRET is irrelevant here but config validation needs it
		if key == "JWT_SECRET" && os.Getenv(key) == "" {
			return "unused"
		}
		return os.Getenv(key)
	}
	cfg, err := config.FromEnv(env)
	if err != nil {
		logger.Fatal("gmailauth", "load config", err)
	}
	if *credentials == "" {
		*credentials = cfg.GmailCredentialsFile
	}
	if *tokenFile == "" {
		*tokenFile = cfg.GmailTokenFile
	}

	oauthConfig, err := auth.GmailConfig(*credentials)
	if err != nil {
		logger.Fatal("gmailauth", "read credentials", err)
	}
	tok, err := auth.TokenFromWeb(context.Background(), oauthConfig, os.Stdin, os.Stdout)
	if err != nil {
		logger.Fatal("gmailauth", "authorize", err)
	}
	if err := auth.SaveToken(*tokenFile, tok); err != nil {
		logger.Fatal("gmailauth", "save token", err)
	}
	logger.Info("gmailauth", "token saved to %s", *tokenFile)
}
