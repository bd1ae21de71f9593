package services

import (
	"sync"
	"testing"
	"time"

	"github.com/meinhoongagan/backoffice-api/metrics"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/sirupsen/logrus/hooks/test"
)

type sentMail struct {
	kind string
	to   string
	body string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentMail
}

func (n *recordingNotifier) record(kind, to, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentMail{kind: kind, to: to, body: body})
}

func (n *recordingNotifier) SendOTPEmail(to, code string)          { n.record("otp", to, code) }
func (n *recordingNotifier) SendCredentialEmail(to, secret string) { n.record("credential", to, secret) }
func (n *recordingNotifier) SendLoginNotice(to, notice string)     { n.record("notice", to, notice) }

func (n *recordingNotifier) kinds() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.sent))
	for i, m := range n.sent {
		out[i] = m.kind
	}
	return out
}

func (n *recordingNotifier) last() sentMail {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent[len(n.sent)-1]
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fixture struct {
	svc      *Services
	store    *store.Store
	notifier *recordingNotifier
	clock    *fakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log, _ := test.NewNullLogger()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	st := store.NewMemory()
	n := &recordingNotifier{}
	svc := New(Deps{
		Store:     st,
		Notifier:  n,
		Passwords: PlaintextPasswords{},
		Tokens:    NewTokenIssuer("test-secret", clock.Now),
		Metrics:   metrics.New(),
		Log:       log,
		Now:       clock.Now,
	})
	return &fixture{svc: svc, store: st, notifier: n, clock: clock}
}

func ptr[T any](v T) *T { return &v }
