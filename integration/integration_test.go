//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	mailglass "github.com/mailglass/client-go"
)

var (
	consumerKey    string
	consumerSecret string
	accountID      string
	baseURL        string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	consumerKey = os.Getenv("MAILGLASS_CONSUMER_KEY")
	consumerSecret = os.Getenv("MAILGLASS_CONSUMER_SECRET")
	accountID = os.Getenv("MAILGLASS_ACCOUNT_ID")
	baseURL = os.Getenv("MAILGLASS_URL")

	if consumerKey == "" || consumerSecret == "" {
		os.Stderr.WriteString("Skipping integration tests: MAILGLASS_CONSUMER_KEY / MAILGLASS_CONSUMER_SECRET not set\n")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T) *mailglass.Client {
	t.Helper()

	opts := []mailglass.Option{
		mailglass.WithTimeout(30 * time.Second),
		mailglass.WithToken(os.Getenv("MAILGLASS_TOKEN"), os.Getenv("MAILGLASS_TOKEN_SECRET")),
	}
	if baseURL != "" {
		opts = append(opts, mailglass.WithBaseURL(baseURL))
	}
	if accountID != "" {
		opts = append(opts, mailglass.WithAccountID(accountID))
	}

	client, err := mailglass.New(consumerKey, consumerSecret, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestGetAccount(t *testing.T) {
	client := newClient(t)
	if client.AccountID() == "" {
		t.Skip("MAILGLASS_ACCOUNT_ID not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	account, err := client.DoDictionary(ctx, client.GetAccount())
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if account["id"] != client.AccountID() {
		t.Errorf("account id = %v, want %s", account["id"], client.AccountID())
	}
}

func TestListMessages(t *testing.T) {
	client := newClient(t)
	if client.AccountID() == "" {
		t.Skip("MAILGLASS_ACCOUNT_ID not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	messages, err := client.DoList(ctx, client.GetMessages(&mailglass.MessageListOptions{Limit: 5}))
	if err != nil {
		t.Fatalf("GetMessages: %v", err)
	}
	if len(messages) > 5 {
		t.Errorf("messages = %d, want at most 5", len(messages))
	}
}

func TestUnknownMessageIsNotFound(t *testing.T) {
	client := newClient(t)
	if client.AccountID() == "" {
		t.Skip("MAILGLASS_ACCOUNT_ID not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := client.DoDictionary(ctx, client.GetMessage("does-not-exist", nil))
	if !errors.Is(err, mailglass.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
