package payroll

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simgaji/internal/platform/kv"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	kvs, err := kv.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kvs.Close() })

	store := NewStore(kvs)
	require.NoError(t, store.Initialize())
	return store
}

func validInput() RecordInput {
	return RecordInput{
		WorkUnitCode:     "123456",
		Month:            "Januari",
		Year:             2025,
		Date:             "2025-01-15",
		PayrollNumber:    "GP001",
		EmployeeID:       "199001012020121001",
		EmployeeName:     "Ahmad Sudirman",
		GradeCode:        "III/a",
		TaxID:            "123456789012345",
		BankCode:         "002",
		BankName:         "BRI",
		AccountNumber:    "1234567890",
		BankBranchName:   "Cabang Jakarta",
		WorkDays:         22,
		DailyRate:        500000,
		TaxPercent:       5,
		EmployeeCategory: CategoryCivil,
	}
}

func TestCreateDerivesAndStamps(t *testing.T) {
	store := testStore(t)

	created, err := store.Create(validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 11000000.0, created.GrossPay)
	assert.Equal(t, 550000.0, created.Deduction)
	assert.Equal(t, 10450000.0, created.NetPay)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	all := store.ListAll()
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestCreateRejectsBadEmployeeID(t *testing.T) {
	store := testStore(t)

	in := validInput()
	in.EmployeeID = "12345678901234567" // 17 chars
	_, err := store.Create(in)
	assert.ErrorIs(t, err, ErrEmployeeIDLength)
	assert.Empty(t, store.ListAll())
}

func TestGetByID(t *testing.T) {
	store := testStore(t)
	created, err := store.Create(validInput())
	require.NoError(t, err)

	found := store.GetByID(created.ID)
	require.NotNil(t, found)
	assert.Equal(t, created.EmployeeName, found.EmployeeName)

	assert.Nil(t, store.GetByID("missing"))
}

func TestUpdateRecomputesDerived(t *testing.T) {
	store := testStore(t)
	store.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	created, err := store.Create(validInput())
	require.NoError(t, err)

	store.now = func() time.Time { return time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC) }
	newRate := 600000.0
	updated, err := store.Update(created.ID, RecordUpdate{DailyRate: &newRate})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// Recomputed from the new rate and the existing workDays/taxPercent.
	assert.Equal(t, 13200000.0, updated.GrossPay)
	assert.Equal(t, 660000.0, updated.Deduction)
	assert.Equal(t, 12540000.0, updated.NetPay)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateMissingID(t *testing.T) {
	store := testStore(t)
	days := 10
	updated, err := store.Update("missing", RecordUpdate{WorkDays: &days})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestRemove(t *testing.T) {
	store := testStore(t)
	created, err := store.Create(validInput())
	require.NoError(t, err)

	ok, err := store.Remove("missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, store.ListAll(), 1)

	ok, err = store.Remove(created.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, store.ListAll())

	// Idempotent on re-invocation.
	ok, err = store.Remove(created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoveBulkSkipsMissing(t *testing.T) {
	store := testStore(t)
	first, err := store.Create(validInput())
	require.NoError(t, err)
	second := validInput()
	second.EmployeeName = "Siti Rahmawati"
	kept, err := store.Create(second)
	require.NoError(t, err)

	ok, err := store.RemoveBulk([]string{first.ID, "missing"})
	require.NoError(t, err)
	assert.True(t, ok)

	all := store.ListAll()
	require.Len(t, all, 1)
	assert.Equal(t, kept.ID, all[0].ID)
}

func TestCreateBulk(t *testing.T) {
	store := testStore(t)

	second := validInput()
	second.EmployeeName = "Siti Rahmawati"
	created, err := store.CreateBulk([]RecordInput{validInput(), second})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotEqual(t, created[0].ID, created[1].ID)
	assert.Len(t, store.ListAll(), 2)
}

func TestListDistinctYears(t *testing.T) {
	store := testStore(t)
	for _, year := range []int{2024, 2025, 2024, 2023} {
		in := validInput()
		in.Year = year
		_, err := store.Create(in)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{2025, 2024, 2023}, store.ListDistinctYears())
}

func TestListAllDegradesOnCorruptSlot(t *testing.T) {
	kvs, err := kv.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kvs.Close() })

	require.NoError(t, kvs.Put(DataSlot, []byte("{not json")))
	store := NewStore(kvs)
	assert.Empty(t, store.ListAll())
}

func TestClearAll(t *testing.T) {
	store := testStore(t)
	_, err := store.Create(validInput())
	require.NoError(t, err)

	require.NoError(t, store.ClearAll())
	assert.Empty(t, store.ListAll())
	assert.Equal(t, Stats{}, store.Stats())
}

func TestInitializeIdempotent(t *testing.T) {
	store := testStore(t)
	_, err := store.Create(validInput())
	require.NoError(t, err)

	require.NoError(t, store.Initialize())
	assert.Len(t, store.ListAll(), 1)
}
