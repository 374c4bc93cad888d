package notify

import (
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"payout-bot/internal/domain"
)

type fakeSubscription struct {
	organizationID string
	handler        DepositHandler
	closed         bool
}

func (s *fakeSubscription) Close() error {
	s.closed = true
	return nil
}

// emit simula la llegada de un evento por el canal, si sigue abierto.
func (s *fakeSubscription) emit(deposit domain.DepositNotification) {
	if !s.closed {
		s.handler(deposit)
	}
}

type fakeSource struct {
	subs []*fakeSubscription
	err  error
}

func (f *fakeSource) Subscribe(organizationID, _ string, handler DepositHandler) (Subscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	sub := &fakeSubscription{organizationID: organizationID, handler: handler}
	f.subs = append(f.subs, sub)
	return sub, nil
}

func TestSubscribeDeliversDeposits(t *testing.T) {
	source := &fakeSource{}
	relay := NewRelay(zap.NewNop(), source)

	var got []domain.DepositNotification
	if err := relay.Subscribe(1, "org1", "tok", func(d domain.DepositNotification) {
		got = append(got, d)
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	source.subs[0].emit(domain.DepositNotification{ID: "d1", Amount: "10", Currency: "USDC"})

	if len(got) != 1 || got[0].ID != "d1" {
		t.Fatalf("expected one delivered deposit, got %+v", got)
	}
	if !relay.Active(1) {
		t.Fatal("expected active subscription")
	}
}

func TestResubscribeTearsDownPriorChannel(t *testing.T) {
	source := &fakeSource{}
	relay := NewRelay(zap.NewNop(), source)

	if err := relay.Subscribe(1, "org1", "tok", func(domain.DepositNotification) {}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := relay.Subscribe(1, "org2", "tok2", func(domain.DepositNotification) {}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(source.subs) != 2 {
		t.Fatalf("expected two opened channels, got %d", len(source.subs))
	}
	if !source.subs[0].closed {
		t.Fatal("prior channel must be closed on resubscribe")
	}
	if source.subs[1].closed {
		t.Fatal("new channel must remain open")
	}
	if source.subs[1].organizationID != "org2" {
		t.Fatalf("expected org2 channel, got %q", source.subs[1].organizationID)
	}
}

// gatedSource retiene cada Subscribe hasta que todos los esperados
// están en vuelo, para forzar la carrera entre dos inicios de sesión.
type gatedSource struct {
	arrived *sync.WaitGroup

	mu   sync.Mutex
	subs []*gatedSubscription
}

type gatedSubscription struct {
	mu     sync.Mutex
	closed bool
}

func (s *gatedSubscription) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *gatedSubscription) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (g *gatedSource) Subscribe(_, _ string, _ DepositHandler) (Subscription, error) {
	g.arrived.Done()
	g.arrived.Wait()

	sub := &gatedSubscription{}
	g.mu.Lock()
	g.subs = append(g.subs, sub)
	g.mu.Unlock()
	return sub, nil
}

func TestConcurrentResubscribeLeavesSingleOpenChannel(t *testing.T) {
	var arrived sync.WaitGroup
	arrived.Add(2)
	source := &gatedSource{arrived: &arrived}
	relay := NewRelay(zap.NewNop(), source)

	var done sync.WaitGroup
	for i := 0; i < 2; i++ {
		done.Add(1)
		go func() {
			defer done.Done()
			if err := relay.Subscribe(1, "org1", "tok", func(domain.DepositNotification) {}); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	done.Wait()

	if len(source.subs) != 2 {
		t.Fatalf("expected two opened channels, got %d", len(source.subs))
	}
	open := 0
	for _, sub := range source.subs {
		if !sub.isClosed() {
			open++
		}
	}
	if open != 1 {
		t.Fatalf("expected exactly one open channel after racing subscribes, got %d", open)
	}

	relay.Unsubscribe(1)
	for i, sub := range source.subs {
		if !sub.isClosed() {
			t.Fatalf("channel %d still open after unsubscribe", i)
		}
	}
}

func TestUnsubscribeRemovesChannelAndStopsDelivery(t *testing.T) {
	source := &fakeSource{}
	relay := NewRelay(zap.NewNop(), source)

	calls := 0
	if err := relay.Subscribe(1, "org1", "tok", func(domain.DepositNotification) {
		calls++
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	relay.Unsubscribe(1)

	if !source.subs[0].closed {
		t.Fatal("expected channel closed")
	}
	if relay.Active(1) {
		t.Fatal("expected no residual mapping")
	}

	source.subs[0].emit(domain.DepositNotification{ID: "d1"})
	if calls != 0 {
		t.Fatalf("expected no deliveries after unsubscribe, got %d", calls)
	}
}

func TestUnsubscribeWithoutSubscriptionIsNoop(t *testing.T) {
	relay := NewRelay(zap.NewNop(), &fakeSource{})
	relay.Unsubscribe(99)
}

func TestSubscribeErrorLeavesNoMapping(t *testing.T) {
	source := &fakeSource{err: errors.New("dial failed")}
	relay := NewRelay(zap.NewNop(), source)

	if err := relay.Subscribe(1, "org1", "tok", func(domain.DepositNotification) {}); err == nil {
		t.Fatal("expected error")
	}
	if relay.Active(1) {
		t.Fatal("failed subscribe must not register a channel")
	}
}
