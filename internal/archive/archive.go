// Package archive keeps a local history of generated plans in a JetStream
// stream, one message per plan.
package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/trainer/internal/form"
	"github.com/mark3labs/trainer/internal/logger"
	"github.com/mark3labs/trainer/internal/nats"
	"github.com/mark3labs/trainer/internal/plan"
	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamName    = "trainer_plans"
	subjectPrefix = "trainer.plans."
	retention     = 365 * 24 * time.Hour
	fetchBatch    = 256
)

// ErrNotFound is returned when no record matches an ID.
var ErrNotFound = errors.New("plan not found")

// Record is one archived generation: what was submitted and what came back.
type Record struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Title     string      `json:"title"`
	Input     form.Data   `json:"input"`
	Result    plan.Result `json:"result"`
}

// Summary is the listing view of a Record.
type Summary struct {
	ID        string
	CreatedAt time.Time
	Title     string
	Days      int
}

// SubjectFor returns the subject a record is stored under.
func SubjectFor(id string) string {
	return subjectPrefix + id
}

// Store reads and writes records.
type Store struct {
	js     jetstream.JetStream
	stream jetstream.Stream
	now    func() time.Time
}

// NewStore creates or updates the plan stream on js.
func NewStore(ctx context.Context, js jetstream.JetStream) (*Store, error) {
	stream, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{subjectPrefix + ">"},
		Storage:  jetstream.FileStorage,
		MaxAge:   retention,
	})
	if err != nil {
		return nil, fmt.Errorf("setting up plan stream: %w", err)
	}
	return &Store{js: js, stream: stream, now: time.Now}, nil
}

// Append stores a new record and returns it.
func (s *Store) Append(ctx context.Context, in form.Data, res plan.Result) (*Record, error) {
	rec := &Record{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Title:     plan.Title(res),
		Input:     in,
		Result:    res,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshaling record: %w", err)
	}
	ack, err := s.js.Publish(ctx, SubjectFor(rec.ID), data)
	if err != nil {
		logger.Error("Failed to archive plan %s: %v", rec.ID, err)
		return nil, fmt.Errorf("publishing record: %w", err)
	}
	logger.Debug("Archived plan %s at seq=%d", rec.ID, ack.Sequence)
	return rec, nil
}

// Get returns the record with id. A unique ID prefix is accepted.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		full, err := s.resolvePrefix(ctx, id)
		if err != nil {
			return nil, err
		}
		id = full
	}

	msg, err := s.stream.GetLastMsgForSubject(ctx, SubjectFor(id))
	if err != nil {
		if errors.Is(err, jetstream.ErrMsgNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("reading record %s: %w", id, err)
	}
	var rec Record
	if err := json.Unmarshal(msg.Data, &rec); err != nil {
		return nil, fmt.Errorf("decoding record %s: %w", id, err)
	}
	return &rec, nil
}

func (s *Store) resolvePrefix(ctx context.Context, prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrNotFound)
	}
	all, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	var match string
	for _, sum := range all {
		if strings.HasPrefix(sum.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			match = sum.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, prefix)
	}
	return match, nil
}

// List returns summaries of every record, newest first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	var out []Summary
	err := s.each(ctx, func(rec Record) {
		days := 0
		if rec.Result.TrainingPlan != nil {
			days = len(rec.Result.TrainingPlan.WeeklySchedule)
		}
		out = append(out, Summary{ID: rec.ID, CreatedAt: rec.CreatedAt, Title: rec.Title, Days: days})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// each replays the stream from the start.
func (s *Store) each(ctx context.Context, fn func(Record)) error {
	consumer, err := s.stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return fmt.Errorf("creating consumer: %w", err)
	}

	skipped := 0
	for {
		msgs, err := consumer.FetchNoWait(fetchBatch)
		if err != nil {
			return fmt.Errorf("fetching plan records: %w", err)
		}
		n := 0
		for msg := range msgs.Messages() {
			n++
			var rec Record
			if err := json.Unmarshal(msg.Data(), &rec); err != nil {
				skipped++
				_ = msg.Ack()
				continue
			}
			fn(rec)
			_ = msg.Ack()
		}
		if err := msgs.Error(); err != nil && !endOfStream(err) {
			return fmt.Errorf("reading plan records: %w", err)
		}
		if n < fetchBatch {
			break
		}
	}
	if skipped > 0 {
		logger.Warn("Skipped %d malformed plan records", skipped)
	}
	return nil
}

// endOfStream reports whether a fetch error only means nothing was left.
func endOfStream(err error) bool {
	return errors.Is(err, jetstream.ErrNoMessages) || errors.Is(err, natsgo.ErrTimeout)
}

// Archive owns the embedded server backing a Store.
type Archive struct {
	*Store
	nats *nats.Embedded
}

// Open starts the embedded server under dataDir/plans and opens the store.
func Open(ctx context.Context, dataDir string) (*Archive, error) {
	e, err := nats.Start(filepath.Join(dataDir, "plans"))
	if err != nil {
		return nil, err
	}
	st, err := NewStore(ctx, e.JS)
	if err != nil {
		_ = e.Close()
		return nil, err
	}
	return &Archive{Store: st, nats: e}, nil
}

// Close stops the embedded server.
func (a *Archive) Close() error {
	return a.nats.Close()
}
