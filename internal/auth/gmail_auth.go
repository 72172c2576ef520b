package auth

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailConfig reads the OAuth client secret file (the app's identity) and
// scopes it to sending mail.
func GmailConfig(credentialsFile string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read client secret file: %w", err)
	}
	config, err := google.ConfigFromJSON(b, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("parse client secret file: %w", err)
	}
	return config, nil
}

// NewGmailService builds a Gmail client from a previously saved token. It
// never prompts; run cmd/gmailauth once to create the token file.
func NewGmailService(ctx context.Context, credentialsFile, tokenFile string) (*gmail.Service, error) {
	config, err := GmailConfig(credentialsFile)
	if err != nil {
		return nil, err
	}
	tok, err := TokenFromFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("read gmail token: %w", err)
	}
	client := config.Client(ctx, tok)
	return gmail.NewService(ctx, option.WithHTTPClient(client))
}

// TokenFromWeb walks the operator through the consent screen and exchanges
// the pasted code for a token.
func TokenFromWeb(ctx context.Context, config *oauth2.Config, in io.Reader, out io.Writer) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(out, "\n---------------------------------------------------------\n")
	fmt.Fprintf(out, "OPEN THIS LINK TO AUTHORIZE GMAIL ACCESS:\n%v\n", authURL)
	fmt.Fprintf(out, "---------------------------------------------------------\n")
	fmt.Fprintf(out, "Paste the code here: ")

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("empty authorization code")
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return tok, nil
}

func TokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

func SaveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("cache oauth token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}
