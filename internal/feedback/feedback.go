// Package feedback records user relevance feedback as append-only
// JSONL. Entries are write-only at runtime: nothing here feeds back
// into ranking.
package feedback

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	rerrors "github.com/retriva/retriva/internal/errors"
)

// Rating is the user's judgment of an answer.
type Rating int

const (
	RatingNegative Rating = -1
	RatingNeutral  Rating = 0
	RatingPositive Rating = 1
)

// Entry is one recorded feedback event.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Query     string    `json:"query"`
	Context   string    `json:"context,omitempty"`
	Answer    string    `json:"answer,omitempty"`
	Rating    Rating    `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
}

// Logger appends entries to a JSONL file. A file lock serializes
// writers across processes sharing the log.
type Logger struct {
	path string
	lock *flock.Flock
}

// NewLogger creates a feedback logger writing to path. The parent
// directory is created if missing.
func NewLogger(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, rerrors.Wrap(err, rerrors.CodeFeedbackWrite, "failed to create feedback directory")
	}
	return &Logger{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

// Record appends one entry. A zero timestamp is filled with the current
// time.
func (l *Logger) Record(ctx context.Context, entry Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return rerrors.Wrap(err, rerrors.CodeFeedbackWrite, "failed to marshal feedback entry")
	}
	line = append(line, '\n')

	locked, err := l.lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return rerrors.Wrap(err, rerrors.CodeFeedbackWrite, "failed to acquire feedback lock")
	}
	if !locked {
		return rerrors.New(rerrors.CodeFeedbackWrite, "feedback log is locked")
	}
	defer func() { _ = l.lock.Unlock() }()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return rerrors.Wrap(err, rerrors.CodeFeedbackWrite, "failed to open feedback log")
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(line); err != nil {
		return rerrors.Wrap(err, rerrors.CodeFeedbackWrite, "failed to append feedback entry")
	}
	return nil
}

// Path returns the log file location.
func (l *Logger) Path() string {
	return l.path
}
