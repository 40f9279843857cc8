package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

type captureAuditRepo struct {
	mu      sync.Mutex
	records []domain.AuditLogin
	failOn  string
	done    chan struct{}
	expect  int
}

func (r *captureAuditRepo) Insert(_ context.Context, rec *domain.AuditLogin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.Username == r.failOn {
		return errors.New("write refused")
	}
	r.records = append(r.records, *rec)
	if r.done != nil && len(r.records) == r.expect {
		close(r.done)
	}
	return nil
}

func (r *captureAuditRepo) List(context.Context, ports.ListFilter) ([]*domain.AuditLogin, int64, error) {
	return nil, 0, nil
}

func TestAuditWriter_PreservesPerUserOrder(t *testing.T) {
	repo := &captureAuditRepo{done: make(chan struct{}), expect: 3}
	w := NewAuditWriter(1, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	for i, auth := range []bool{false, false, true} {
		w.Record(domain.AuditLogin{Username: "alice", Auth: auth, CreatedAt: time.Unix(int64(i), 0)})
	}

	select {
	case <-repo.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for audit writes")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.records) != 3 {
		t.Fatalf("records = %d, want 3", len(repo.records))
	}
	want := []bool{false, false, true}
	for i, rec := range repo.records {
		if rec.Auth != want[i] {
			t.Fatalf("record %d auth = %v, want %v", i, rec.Auth, want[i])
		}
	}
}

func TestAuditWriter_WriteFailureDoesNotStopWorker(t *testing.T) {
	repo := &captureAuditRepo{failOn: "mallory", done: make(chan struct{}), expect: 1}
	w := NewAuditWriter(1, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	w.Record(domain.AuditLogin{Username: "mallory", Auth: false})
	w.Record(domain.AuditLogin{Username: "alice", Auth: true})

	select {
	case <-repo.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for audit write after failure")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.records) != 1 || repo.records[0].Username != "alice" {
		t.Fatalf("unexpected records after failure: %+v", repo.records)
	}
}
