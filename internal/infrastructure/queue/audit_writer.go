package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/backoffice/admin-api/internal/api/metrics"
	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditWriter persists login audit records asynchronously. Records are routed
// to a fixed set of workers by hashing the username, so records for one
// account are written in the order they were produced. Writes never block the
// login path and write failures never surface to callers.
type AuditWriter struct {
	workers []chan domain.AuditLogin
	repo    ports.AuditLoginRepository
	log     zerolog.Logger
}

// NewAuditWriter creates an AuditWriter with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditWriter(numWorkers int, repo ports.AuditLoginRepository, log zerolog.Logger) *AuditWriter {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	w := &AuditWriter{
		workers: make([]chan domain.AuditLogin, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range w.workers {
		w.workers[i] = make(chan domain.AuditLogin, channelBuffer)
	}
	return w
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (w *AuditWriter) Start(ctx context.Context) {
	for i, ch := range w.workers {
		go w.runWorker(ctx, i, ch)
	}
}

// Record hands an audit record to the worker responsible for its username.
// When the worker's buffer is full the record is dropped and counted rather
// than stalling the caller.
func (w *AuditWriter) Record(rec domain.AuditLogin) {
	idx := w.shardIndex(rec.Username)
	select {
	case w.workers[idx] <- rec:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(w.workers[idx])))
	default:
		metrics.AuditDroppedTotal.Inc()
		w.log.Warn().
			Str("username", rec.Username).
			Int("worker_id", idx).
			Msg("audit queue full, record dropped")
	}
}

// shardIndex maps a username deterministically to a worker index.
func (w *AuditWriter) shardIndex(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32()) % len(w.workers)
}

func (w *AuditWriter) runWorker(ctx context.Context, id int, ch <-chan domain.AuditLogin) {
	for {
		select {
		case <-ctx.Done():
			return
		case rec, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := w.repo.Insert(ctx, &rec); err != nil {
				metrics.AuditWriteFailuresTotal.Inc()
				w.log.Error().Err(err).
					Str("username", rec.Username).
					Int("worker_id", id).
					Msg("audit write failed")
			}
		}
	}
}
