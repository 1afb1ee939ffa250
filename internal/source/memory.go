package source

import (
	"context"
	"fmt"
	"sync"
)

// MemorySource holds sheets in memory. Primarily useful for tests and
// local seeding; it honors the same contract as the file-backed sources,
// including the "sheet absent" error on unknown sheet names.
type MemorySource struct {
	mu     sync.RWMutex
	sheets map[string][]Row
}

// NewMemory creates a MemorySource with the given sheets. The map may be
// nil; sheets can also be added later via AddSheet.
func NewMemory(sheets map[string][]Row) *MemorySource {
	if sheets == nil {
		sheets = make(map[string][]Row)
	}
	return &MemorySource{sheets: sheets}
}

// AddSheet creates or replaces a sheet.
func (s *MemorySource) AddSheet(name string, rows []Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheets[name] = rows
}

// Rows returns a copy of the named sheet's rows.
func (s *MemorySource) Rows(ctx context.Context, sheet string) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, ok := s.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}
	out := make([]Row, len(rows))
	copy(out, rows)
	return out, nil
}

// Append adds one row to the end of the named sheet.
func (s *MemorySource) Append(ctx context.Context, sheet string, row Row) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sheets[sheet]; !ok {
		return fmt.Errorf("sheet %q not found", sheet)
	}
	s.sheets[sheet] = append(s.sheets[sheet], row)
	return nil
}
