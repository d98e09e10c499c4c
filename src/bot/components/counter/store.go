package counter

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/emberpeak/supportbot/src/bot/types"
)

// fileRecord is the on-disk shape. The field names are shared with the
// web panel's reader, so they stay as-is.
type fileRecord struct {
	TicketCounter int `json:"ticketCounter"`
	ApplyCounter  int `json:"applyCounter"`
	UnbanCounter  int `json:"unbanCounter"`
}

// Store hands out per-kind sequence numbers for new case channels.
// Counters only ever move forward: a failed channel creation after an
// increment leaves a gap rather than reusing the number.
type Store struct {
	mu     sync.Mutex
	path   string
	record fileRecord
}

// Load reads the counter file, treating a missing file as all-zero
// counters. Any other read or parse failure is an error; silently
// restarting from zero would hand out duplicate case numbers.
func Load(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read counters %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.record); err != nil {
		return nil, fmt.Errorf("parse counters %s: %w", path, err)
	}

	return s, nil
}

// Next increments the counter for kind and flushes the file before
// returning. The increment and flush happen under one lock so two
// concurrent submissions cannot hand out the same number. A flush
// failure is logged but does not roll the counter back.
func (s *Store) Next(kind types.CaseKind) (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	switch kind {
	case types.KindTicket:
		s.record.TicketCounter++
		n = s.record.TicketCounter
	case types.KindApply:
		s.record.ApplyCounter++
		n = s.record.ApplyCounter
	case types.KindUnban:
		s.record.UnbanCounter++
		n = s.record.UnbanCounter
	}

	if err := s.flush(); err != nil {
		log.Printf("counter: flush %s: %v", s.path, err)
	}

	return fmt.Sprintf("%03d", n), n
}

// Snapshot returns the current counter values for the status server.
func (s *Store) Snapshot() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]int{
		string(types.KindTicket): s.record.TicketCounter,
		string(types.KindApply):  s.record.ApplyCounter,
		string(types.KindUnban):  s.record.UnbanCounter,
	}
}

func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.record, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}
