package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadops/courseslot-backend/internal/model"
	"github.com/acadops/courseslot-backend/internal/repository"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func allocateRequest() *model.AllocateSlotRequest {
	return &model.AllocateSlotRequest{
		CourseID:  1,
		Forenoon:  true,
		Afternoon: false,
		Course: model.CourseSnapshot{
			Year:        intPtr(2),
			Stream:      strPtr("CSE"),
			CourseCode:  strPtr("CS201"),
			CourseTitle: strPtr("Data Structures"),
			School:      strPtr("SCOPE"),
		},
		Faculty: "A Kumar",
		EmpID:   "1001",
	}
}

func setupAllocationService() (*AllocationService, *mockLedger) {
	ledger := newMockLedger()
	svc := NewAllocationService(ledger, nil, zerolog.Nop())
	return svc, ledger
}

func TestAllocationService_Allocate_RejectsNoSlotSelected(t *testing.T) {
	svc, ledger := setupAllocationService()

	req := allocateRequest()
	req.Forenoon = false
	req.Afternoon = false

	_, err := svc.Allocate(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoSlotSelected)
	assert.Empty(t, ledger.allocations)
}

func TestAllocationService_Allocate_SnapshotsCourse(t *testing.T) {
	svc, ledger := setupAllocationService()
	ledger.forenoon[1] = 1

	a, err := svc.Allocate(context.Background(), allocateRequest())
	require.NoError(t, err)

	require.NotNil(t, a.CourseCode)
	assert.Equal(t, "CS201", *a.CourseCode)
	assert.Equal(t, "A Kumar", a.Faculty)
	assert.Equal(t, "1001", a.EmpID)
	assert.True(t, a.ForenoonSlots)
	assert.False(t, a.AfternoonSlots)
	assert.Equal(t, 0, ledger.forenoon[1])
}

func TestAllocationService_Allocate_InsufficientSlots(t *testing.T) {
	svc, ledger := setupAllocationService()
	ledger.forenoon[1] = 0

	_, err := svc.Allocate(context.Background(), allocateRequest())
	assert.ErrorIs(t, err, repository.ErrInsufficientSlots)
	assert.Empty(t, ledger.allocations)
}

func TestAllocationService_Allocate_BothSlotsConsumeBothCounters(t *testing.T) {
	svc, ledger := setupAllocationService()
	ledger.forenoon[1] = 2
	ledger.afternoon[1] = 2

	req := allocateRequest()
	req.Afternoon = true

	_, err := svc.Allocate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, ledger.forenoon[1])
	assert.Equal(t, 1, ledger.afternoon[1])
}

func TestAllocationService_Deallocate_RequiresKeys(t *testing.T) {
	svc, _ := setupAllocationService()

	_, err := svc.Deallocate(context.Background(), &model.DeallocateRequest{CourseCode: "CS201"})
	assert.ErrorIs(t, err, ErrMissingReversalKey)

	_, err = svc.Deallocate(context.Background(), &model.DeallocateRequest{EmpID: "1001"})
	assert.ErrorIs(t, err, ErrMissingReversalKey)
}

func TestAllocationService_Deallocate_RemovesAllocation(t *testing.T) {
	svc, ledger := setupAllocationService()
	ledger.forenoon[1] = 1

	_, err := svc.Allocate(context.Background(), allocateRequest())
	require.NoError(t, err)

	deleted, err := svc.Deallocate(context.Background(), &model.DeallocateRequest{
		EmpID:      "1001",
		CourseCode: "CS201",
		Forenoon:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Empty(t, ledger.allocations)
}

func TestAllocationService_Deallocate_CodeMatchIsCaseSensitive(t *testing.T) {
	svc, ledger := setupAllocationService()
	ledger.forenoon[1] = 1

	_, err := svc.Allocate(context.Background(), allocateRequest())
	require.NoError(t, err)

	// The reversal key is matched byte for byte, not case-folded.
	_, err = svc.Deallocate(context.Background(), &model.DeallocateRequest{
		EmpID:      "1001",
		CourseCode: "cs201",
		Forenoon:   true,
	})
	assert.ErrorIs(t, err, repository.ErrNoMatch)
	assert.Len(t, ledger.allocations, 1)
}

func TestAllocationService_Deallocate_NoMatch(t *testing.T) {
	svc, _ := setupAllocationService()

	_, err := svc.Deallocate(context.Background(), &model.DeallocateRequest{
		EmpID:      "9999",
		CourseCode: "CS999",
	})
	assert.ErrorIs(t, err, repository.ErrNoMatch)
}
