package ledger

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"medtime/internal/domain"
	"medtime/internal/errors"
	"medtime/internal/repository/sqlite"
	"medtime/internal/validation"
)

// Store owns the full ordered collection of entries, the single active-timer
// pointer, and the work-schedule configuration. Every mutation persists the
// changed state slices synchronously before returning. All entries are owned
// exclusively by the store; callers only ever see copies.
type Store struct {
	mu   sync.Mutex
	repo sqlite.Repository
	log  *zap.Logger

	entries       []domain.TimeEntry // newest-created first
	activeTimerID string             // empty when no timer is running
	schedule      domain.WorkSchedule

	entryValidator    *validation.EntryValidator
	scheduleValidator *validation.ScheduleValidator
}

// New creates a ledger store hydrated from the repository. Absent or
// unparsable state falls back to built-in defaults without error.
func New(ctx context.Context, repo sqlite.Repository, log *zap.Logger) *Store {
	s := &Store{
		repo:              repo,
		log:               log,
		entryValidator:    validation.NewEntryValidator(),
		scheduleValidator: validation.NewScheduleValidator(),
	}
	s.hydrate(ctx)
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	s.entries = seedEntries()
	s.activeTimerID = ""
	s.schedule = domain.DefaultWorkSchedule()

	if data, found, err := s.repo.Get(ctx, sqlite.KeyEntries); err == nil && found {
		var entries []domain.TimeEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			s.log.Warn("discarding unparsable stored entries", zap.Error(err))
		} else {
			s.entries = entries
		}
	} else if err != nil {
		s.log.Warn("failed to load stored entries", zap.Error(err))
	}

	if data, found, err := s.repo.Get(ctx, sqlite.KeyActiveTimer); err == nil && found {
		var id *string
		if err := json.Unmarshal(data, &id); err != nil {
			s.log.Warn("discarding unparsable active-timer pointer", zap.Error(err))
		} else if id != nil {
			s.activeTimerID = *id
		}
	} else if err != nil {
		s.log.Warn("failed to load active-timer pointer", zap.Error(err))
	}

	if data, found, err := s.repo.Get(ctx, sqlite.KeyWorkSchedule); err == nil && found {
		var schedule domain.WorkSchedule
		if err := json.Unmarshal(data, &schedule); err != nil {
			s.log.Warn("discarding unparsable work schedule", zap.Error(err))
		} else {
			s.schedule = schedule
		}
	} else if err != nil {
		s.log.Warn("failed to load work schedule", zap.Error(err))
	}
}

// AddEntry builds a manual entry from the given fields and prepends it to
// the collection.
func (s *Store) AddEntry(ctx context.Context, fields domain.EntryFields) (domain.TimeEntry, error) {
	if err := s.entryValidator.ValidateFields(fields); err != nil {
		return domain.TimeEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.NewEntry(fields)
	s.entries = append([]domain.TimeEntry{entry}, s.entries...)
	if err := s.persistEntries(ctx); err != nil {
		return domain.TimeEntry{}, err
	}
	return entry, nil
}

// UpdateEntry applies a partial update to the entry with the given id,
// replacing it in place so the relative order of entries is preserved. An
// unknown id is a silent no-op, reported through found=false.
func (s *Store) UpdateEntry(ctx context.Context, id string, patch domain.EntryPatch) (domain.TimeEntry, bool, error) {
	if err := s.entryValidator.ValidatePatch(patch); err != nil {
		return domain.TimeEntry{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.entries {
		if entry.ID == id {
			updated := entry.Apply(patch)
			s.entries[i] = updated
			if err := s.persistEntries(ctx); err != nil {
				return domain.TimeEntry{}, false, err
			}
			return updated, true, nil
		}
	}
	return domain.TimeEntry{}, false, nil
}

// DeleteEntry removes the entry with the given id; unknown ids are a silent
// no-op. Deleting the running entry also clears the timer pointer so the
// single-timer invariant holds.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0:0]
	removed := false
	for _, entry := range s.entries {
		if entry.ID == id {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	if !removed {
		return nil
	}

	s.entries = kept
	if err := s.persistEntries(ctx); err != nil {
		return err
	}
	if s.activeTimerID == id {
		s.activeTimerID = ""
		return s.persistActiveTimer(ctx)
	}
	return nil
}

// DeleteAllEntries clears the collection unconditionally.
func (s *Store) DeleteAllEntries(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []domain.TimeEntry{}
	if err := s.persistEntries(ctx); err != nil {
		return err
	}
	if s.activeTimerID != "" {
		s.activeTimerID = ""
		return s.persistActiveTimer(ctx)
	}
	return nil
}

// StartTimer clocks in: it creates a running entry at the current instant,
// prepends it, and sets the active-timer pointer. Starting while a timer is
// already running is rejected with an explicit conflict.
func (s *Store) StartTimer(ctx context.Context) (domain.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeTimerID != "" {
		return domain.TimeEntry{}, errors.NewTimerRunningError(s.activeTimerID)
	}

	entry := domain.NewTimerEntry()
	s.entries = append([]domain.TimeEntry{entry}, s.entries...)
	s.activeTimerID = entry.ID

	if err := s.persistEntries(ctx); err != nil {
		return domain.TimeEntry{}, err
	}
	if err := s.persistActiveTimer(ctx); err != nil {
		return domain.TimeEntry{}, err
	}
	return entry, nil
}

// StopTimer clocks out the running entry, finalizing its duration and
// clearing the pointer. When no timer is active it is a no-op and returns a
// nil entry.
func (s *Store) StopTimer(ctx context.Context, notes *string) (*domain.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeTimerID == "" {
		return nil, nil
	}

	var stopped *domain.TimeEntry
	for i, entry := range s.entries {
		if entry.ID == s.activeTimerID {
			updated := entry.Stop(notes)
			s.entries[i] = updated
			stopped = &updated
			break
		}
	}
	s.activeTimerID = ""

	if stopped != nil {
		if err := s.persistEntries(ctx); err != nil {
			return nil, err
		}
	}
	if err := s.persistActiveTimer(ctx); err != nil {
		return nil, err
	}
	return stopped, nil
}

// UpdateWorkSchedule shallow-merges the patch into the schedule.
func (s *Store) UpdateWorkSchedule(ctx context.Context, patch domain.SchedulePatch) (domain.WorkSchedule, error) {
	if err := s.scheduleValidator.ValidatePatch(patch); err != nil {
		return domain.WorkSchedule{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.schedule = s.schedule.Merge(patch)
	if err := s.persistSchedule(ctx); err != nil {
		return domain.WorkSchedule{}, err
	}
	return s.schedule, nil
}

// Entries returns a snapshot of the collection, newest-created first.
func (s *Store) Entries() []domain.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.TimeEntry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

// GetEntry returns the entry with the given id.
func (s *Store) GetEntry(id string) (domain.TimeEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return domain.TimeEntry{}, false
}

// ActiveTimerID returns the running entry's id, or empty when none.
func (s *Store) ActiveTimerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTimerID
}

// ActiveEntry returns the currently running entry, if any.
func (s *Store) ActiveEntry() (domain.TimeEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeTimerID == "" {
		return domain.TimeEntry{}, false
	}
	for _, entry := range s.entries {
		if entry.ID == s.activeTimerID {
			return entry, true
		}
	}
	return domain.TimeEntry{}, false
}

// WorkSchedule returns the current schedule configuration.
func (s *Store) WorkSchedule() domain.WorkSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schedule
}

// persist helpers run under s.mu.

func (s *Store) persistEntries(ctx context.Context) error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return errors.NewDatabaseError("encode entries", err)
	}
	return s.repo.Put(ctx, sqlite.KeyEntries, data)
}

func (s *Store) persistActiveTimer(ctx context.Context) error {
	var id *string
	if s.activeTimerID != "" {
		id = &s.activeTimerID
	}
	data, err := json.Marshal(id)
	if err != nil {
		return errors.NewDatabaseError("encode active-timer pointer", err)
	}
	return s.repo.Put(ctx, sqlite.KeyActiveTimer, data)
}

func (s *Store) persistSchedule(ctx context.Context) error {
	data, err := json.Marshal(s.schedule)
	if err != nil {
		return errors.NewDatabaseError("encode work schedule", err)
	}
	return s.repo.Put(ctx, sqlite.KeyWorkSchedule, data)
}
