package testutil

import (
	"context"
	"sync"

	"github.com/VinodVen/growthai/pkg/ai"
	"github.com/VinodVen/growthai/pkg/billing"
	"github.com/VinodVen/growthai/pkg/email"
)

// FakeCompleter returns Reply or Err and records every request.
type FakeCompleter struct {
	Reply    string
	Err      error
	Requests []ai.CompletionRequest
}

func (f *FakeCompleter) Complete(ctx context.Context, req ai.CompletionRequest) (string, error) {
	f.Requests = append(f.Requests, req)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}

// FakeSender records messages. It is safe for concurrent use.
type FakeSender struct {
	mu       sync.Mutex
	Err      error
	Messages []email.Message
	Welcomes []string
	welcomed chan string
}

func (f *FakeSender) Send(ctx context.Context, msg email.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Messages = append(f.Messages, msg)
	return nil
}

func (f *FakeSender) SendWelcomeEmail(ctx context.Context, to, ownerName, businessName string) error {
	f.mu.Lock()
	f.Welcomes = append(f.Welcomes, to)
	ch := f.welcomed
	f.mu.Unlock()
	if ch != nil {
		ch <- to
	}
	return f.Err
}

// WelcomeSent returns a channel receiving the recipient of each welcome email.
func (f *FakeSender) WelcomeSent() <-chan string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.welcomed == nil {
		f.welcomed = make(chan string, 8)
	}
	return f.welcomed
}

func (f *FakeSender) Sent() []email.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]email.Message(nil), f.Messages...)
}

// FakeBilling is a billing.Provider with canned answers.
type FakeBilling struct {
	Session     billing.CheckoutSession
	Result      billing.CheckoutResult
	Err         error
	Checkouts   []billing.CheckoutRequest
	VerifyCalls int
}

func (f *FakeBilling) CreateCheckout(ctx context.Context, req billing.CheckoutRequest) (*billing.CheckoutSession, error) {
	f.Checkouts = append(f.Checkouts, req)
	if f.Err != nil {
		return nil, f.Err
	}
	s := f.Session
	return &s, nil
}

func (f *FakeBilling) VerifyCheckout(ctx context.Context, sessionID string) (*billing.CheckoutResult, error) {
	f.VerifyCalls++
	if f.Err != nil {
		return nil, f.Err
	}
	r := f.Result
	return &r, nil
}

var (
	_ ai.Completer     = (*FakeCompleter)(nil)
	_ email.Sender     = (*FakeSender)(nil)
	_ billing.Provider = (*FakeBilling)(nil)
)
