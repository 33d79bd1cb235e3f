package engine

// Every mutation is appended to the journal before the collection file is
// rewritten. The journal is an audit trail, not a redo log; recovery replay
// is out of scope.

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// JournalEntry represents a single entry in the journal.
type JournalEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Op         string    `json:"op"`
	Kind       string    `json:"kind"`
	DocumentID string    `json:"document_id,omitempty"`
}

// Journal appends mutation records to date-stamped, size-capped files. One
// journal is shared by every collection of a store, so appends from writers
// holding different collection locks are serialized here.
type Journal struct {
	dir         string
	mu          sync.Mutex
	file        *os.File
	currentDate time.Time
	currentSize int64
	maxFileSize int64
	logger      *zap.SugaredLogger
}

func NewJournal(dir string, maxFileSize int64, logger *zap.SugaredLogger) (*Journal, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory %s: %w", dir, err)
	}
	j := &Journal{dir: dir, maxFileSize: maxFileSize, logger: logger}
	if err := j.ensureCorrectFileOpen(); err != nil {
		return nil, err
	}
	return j, nil
}

// ensureCorrectFileOpen rolls the journal file over at midnight and when
// the size cap is reached. Callers hold j.mu.
func (j *Journal) ensureCorrectFileOpen() error {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if j.file != nil && j.currentDate.Equal(today) && j.currentSize < j.maxFileSize {
		return nil
	}
	if j.file != nil {
		if err := j.file.Close(); err != nil {
			j.logger.Warnf("Error closing journal file: %v", err)
		}
		j.file = nil
	}

	name := fmt.Sprintf("journal_%s.log", today.Format("2006-01-02"))
	path := filepath.Join(j.dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening journal file %s: %w", path, err)
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("error reading journal file stats: %w", err)
	}

	// A rolled-over same-day file keeps appending; the date suffix only
	// changes at midnight, so the cap is advisory within one day.
	j.file = file
	j.currentDate = today
	j.currentSize = stat.Size()
	return nil
}

// Append writes one mutation record. Failures are reported but must not
// block the data write; the caller decides whether to log and continue.
func (j *Journal) Append(op, kind, documentID string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.ensureCorrectFileOpen(); err != nil {
		return err
	}
	entry := JournalEntry{
		Timestamp:  time.Now().UTC(),
		Op:         op,
		Kind:       kind,
		DocumentID: documentID,
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("error encoding journal entry: %w", err)
	}
	line = append(line, '\n')
	n, err := j.file.Write(line)
	if err != nil {
		return fmt.Errorf("error writing journal entry: %w", err)
	}
	j.currentSize += int64(n)
	return nil
}

func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.file == nil {
		return nil
	}
	err := j.file.Close()
	j.file = nil
	return err
}
