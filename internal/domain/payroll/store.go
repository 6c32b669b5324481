package payroll

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"simgaji/internal/platform/kv"
	"simgaji/internal/platform/logger"
)

// DataSlot is the persisted slot holding the serialized record array.
const DataSlot = "ditjen_gaji_data"

// Store owns the persisted payroll records. It is the only assigner of
// record IDs and the only caller of the derived-field computation. Every
// mutation rewrites the whole slot inside one storage transaction.
type Store struct {
	kv   *kv.Store
	slot string
	log  zerolog.Logger
	now  func() time.Time
	id   func() string
}

func NewStore(kvs *kv.Store) *Store {
	return &Store{
		kv:   kvs,
		slot: DataSlot,
		log:  logger.WithComponent("payroll.store"),
		now:  func() time.Time { return time.Now().UTC() },
		id:   uuid.NewString,
	}
}

// Initialize ensures the slot exists. A no-op if it already does.
func (s *Store) Initialize() error {
	return s.kv.Update(s.slot, func(old []byte) ([]byte, error) {
		if old != nil {
			return old, nil
		}
		return []byte("[]"), nil
	})
}

// ListAll returns every record. Read failures and corrupt content degrade
// to an empty result; the diagnostic is logged, not returned.
func (s *Store) ListAll() []Record {
	raw, err := s.kv.Get(s.slot)
	if err != nil {
		s.log.Error().Err(err).Msg("reading record slot failed")
		return []Record{}
	}
	return s.decode(raw)
}

func (s *Store) decode(raw []byte) []Record {
	if raw == nil {
		return []Record{}
	}
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		s.log.Error().Err(err).Msg("record slot content is corrupt")
		return []Record{}
	}
	return records
}

func (s *Store) GetByID(id string) *Record {
	for _, record := range s.ListAll() {
		if record.ID == id {
			found := record
			return &found
		}
	}
	return nil
}

func (s *Store) build(in RecordInput, now time.Time) Record {
	gross, deduction, net := DeriveAll(in.WorkDays, in.DailyRate, in.TaxPercent)
	return Record{
		ID:               s.id(),
		WorkUnitCode:     in.WorkUnitCode,
		Month:            in.Month,
		Year:             in.Year,
		Date:             in.Date,
		PayrollNumber:    in.PayrollNumber,
		EmployeeID:       in.EmployeeID,
		EmployeeName:     in.EmployeeName,
		GradeCode:        in.GradeCode,
		TaxID:            in.TaxID,
		BankCode:         in.BankCode,
		BankName:         in.BankName,
		AccountNumber:    in.AccountNumber,
		BankBranchName:   in.BankBranchName,
		WorkDays:         in.WorkDays,
		DailyRate:        in.DailyRate,
		TaxPercent:       in.TaxPercent,
		GrossPay:         gross,
		Deduction:        deduction,
		NetPay:           net,
		EmployeeCategory: in.EmployeeCategory,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Create validates the identity constraints, assigns a fresh ID, computes
// the derived fields and appends the record to the slot.
func (s *Store) Create(in RecordInput) (Record, error) {
	if err := CheckIdentity(in); err != nil {
		return Record{}, err
	}
	record := s.build(in, s.now())
	err := s.mutate(func(records []Record) []Record {
		return append(records, record)
	})
	if err != nil {
		return Record{}, err
	}
	return record, nil
}

// CreateBulk appends every input in a single persisted write. Per-item
// semantics match Create; there is no transactional guarantee between the
// items beyond being written together.
func (s *Store) CreateBulk(inputs []RecordInput) ([]Record, error) {
	for _, in := range inputs {
		if err := CheckIdentity(in); err != nil {
			return nil, err
		}
	}
	now := s.now()
	created := make([]Record, 0, len(inputs))
	for _, in := range inputs {
		created = append(created, s.build(in, now))
	}
	err := s.mutate(func(records []Record) []Record {
		return append(records, created...)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update merges the partial update onto the stored record, recomputes the
// derived fields from the merged inputs unconditionally and refreshes
// UpdatedAt. Returns nil, nil when the ID does not exist.
func (s *Store) Update(id string, upd RecordUpdate) (*Record, error) {
	existing := s.GetByID(id)
	if existing == nil {
		return nil, nil
	}
	merged := upd.Merge(existing.Input())
	if err := CheckIdentity(merged); err != nil {
		return nil, err
	}

	var updated *Record
	err := s.mutate(func(records []Record) []Record {
		for i := range records {
			if records[i].ID != id {
				continue
			}
			next := s.build(merged, s.now())
			next.ID = records[i].ID
			next.CreatedAt = records[i].CreatedAt
			records[i] = next
			updated = &next
			break
		}
		return records
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove deletes a record by ID. Returns false, nil when no record with
// that ID exists.
func (s *Store) Remove(id string) (bool, error) {
	removed := false
	err := s.mutate(func(records []Record) []Record {
		kept := records[:0]
		for _, record := range records {
			if record.ID == id {
				removed = true
				continue
			}
			kept = append(kept, record)
		}
		return kept
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// RemoveBulk deletes every record whose ID is in ids. Missing IDs are
// silently skipped; the result does not distinguish them.
func (s *Store) RemoveBulk(ids []string) (bool, error) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	err := s.mutate(func(records []Record) []Record {
		kept := records[:0]
		for _, record := range records {
			if _, ok := drop[record.ID]; ok {
				continue
			}
			kept = append(kept, record)
		}
		return kept
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListDistinctYears returns the distinct year values, newest first.
func (s *Store) ListDistinctYears() []int {
	seen := map[int]struct{}{}
	var years []int
	for _, record := range s.ListAll() {
		if _, ok := seen[record.Year]; ok {
			continue
		}
		seen[record.Year] = struct{}{}
		years = append(years, record.Year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Stats returns the dashboard aggregates over all records.
func (s *Store) Stats() Stats {
	return CalculateStats(s.ListAll())
}

// ClearAll empties the slot.
func (s *Store) ClearAll() error {
	return s.kv.Put(s.slot, []byte("[]"))
}

func (s *Store) mutate(fn func(records []Record) []Record) error {
	return s.kv.Update(s.slot, func(old []byte) ([]byte, error) {
		next, err := json.Marshal(fn(s.decode(old)))
		if err != nil {
			return nil, fmt.Errorf("encode records: %w", err)
		}
		return next, nil
	})
}
