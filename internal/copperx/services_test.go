package copperx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	body   map[string]any
}

// newRecordingServer captura cada petición y responde con el JSON dado.
func newRecordingServer(t *testing.T, response string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&rec.body)
		}
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, rec
}

func TestRequestOTP(t *testing.T) {
	server, rec := newRecordingServer(t, `{"success":true}`)
	svc := NewAuthService(NewClient(server.URL, time.Second, zap.NewNop()))

	if err := svc.RequestOTP(context.Background(), "a@b.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.method != http.MethodPost || rec.path != "/auth/email-otp/request" {
		t.Fatalf("unexpected request: %s %s", rec.method, rec.path)
	}
	if rec.body["email"] != "a@b.com" {
		t.Fatalf("unexpected body: %v", rec.body)
	}
}

func TestAuthenticateOTP(t *testing.T) {
	server, rec := newRecordingServer(t, `{
		"token":"t","refreshToken":"r",
		"user":{"organizationId":"org1","firstName":"A"}
	}`)
	svc := NewAuthService(NewClient(server.URL, time.Second, zap.NewNop()))

	resp, err := svc.AuthenticateOTP(context.Background(), "a@b.com", "111111")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.path != "/auth/email-otp/authenticate" {
		t.Fatalf("unexpected path %s", rec.path)
	}
	if rec.body["email"] != "a@b.com" || rec.body["otp"] != "111111" {
		t.Fatalf("unexpected body: %v", rec.body)
	}
	if resp.Token != "t" || resp.RefreshToken != "r" || resp.User.OrganizationID != "org1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetBalances(t *testing.T) {
	server, rec := newRecordingServer(t, `[{"amount":"12.5","currency":"USDC","network":"POLYGON"}]`)
	svc := NewWalletService(NewClient(server.URL, time.Second, zap.NewNop()))

	balances, err := svc.GetBalances(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.method != http.MethodGet || rec.path != "/wallets/balances" {
		t.Fatalf("unexpected request: %s %s", rec.method, rec.path)
	}
	if len(balances) != 1 || balances[0].Currency != "USDC" {
		t.Fatalf("unexpected balances: %+v", balances)
	}
}

func TestSetDefaultWallet(t *testing.T) {
	server, rec := newRecordingServer(t, `{"id":"w1","isDefault":true}`)
	svc := NewWalletService(NewClient(server.URL, time.Second, zap.NewNop()))

	wallet, err := svc.SetDefaultWallet(context.Background(), "tok", "w1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.method != http.MethodPut || rec.path != "/wallets/default" {
		t.Fatalf("unexpected request: %s %s", rec.method, rec.path)
	}
	if rec.body["walletId"] != "w1" {
		t.Fatalf("unexpected body: %v", rec.body)
	}
	if !wallet.IsDefault {
		t.Fatalf("unexpected wallet: %+v", wallet)
	}
}

func TestSendEmailTransfer(t *testing.T) {
	server, rec := newRecordingServer(t, `{"id":"tr1","status":"PENDING"}`)
	svc := NewTransferService(NewClient(server.URL, time.Second, zap.NewNop()))

	transfer, err := svc.SendEmailTransfer(context.Background(), "tok", EmailTransferInput{
		Amount:    "10",
		Currency:  "USDC",
		Recipient: "x@y.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.path != "/transfers/send" {
		t.Fatalf("unexpected path %s", rec.path)
	}
	if rec.body["recipient"] != "x@y.com" {
		t.Fatalf("unexpected body: %v", rec.body)
	}
	if _, hasMessage := rec.body["message"]; hasMessage {
		t.Fatalf("empty message must be omitted, body: %v", rec.body)
	}
	if transfer.ID != "tr1" {
		t.Fatalf("unexpected transfer: %+v", transfer)
	}
}

func TestSendWalletTransfer(t *testing.T) {
	server, rec := newRecordingServer(t, `{"id":"tr2"}`)
	svc := NewTransferService(NewClient(server.URL, time.Second, zap.NewNop()))

	_, err := svc.SendWalletTransfer(context.Background(), "tok", WalletTransferInput{
		Amount:   "5",
		Currency: "USDC",
		Address:  "0xabc",
		Network:  "ETH",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.path != "/transfers/wallet-withdraw" {
		t.Fatalf("unexpected path %s", rec.path)
	}
	if rec.body["address"] != "0xabc" || rec.body["network"] != "ETH" {
		t.Fatalf("unexpected body: %v", rec.body)
	}
}

func TestGetTransferHistoryPaging(t *testing.T) {
	server, rec := newRecordingServer(t, `{"items":[],"total":0,"page":2,"limit":5}`)
	svc := NewTransferService(NewClient(server.URL, time.Second, zap.NewNop()))

	history, err := svc.GetTransferHistory(context.Background(), "tok", 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.path != "/transfers" || rec.query != "page=2&limit=5" {
		t.Fatalf("unexpected request: %s?%s", rec.path, rec.query)
	}
	if history.Page != 2 || history.Limit != 5 {
		t.Fatalf("unexpected history: %+v", history)
	}
}
