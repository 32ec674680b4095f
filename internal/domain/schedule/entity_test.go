//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"stagepass/internal/domain/schedule"
	"stagepass/internal/domain/team"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseDate = time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC)

func mustSlot(t *testing.T, performer string, hour int) schedule.TimeSlot {
	t.Helper()
	slot, err := schedule.NewTimeSlot(
		baseDate.Add(time.Duration(hour)*time.Hour),
		baseDate.Add(time.Duration(hour+1)*time.Hour),
		performer,
		nil,
	)
	require.NoError(t, err)
	return slot
}

func mustSchedule(t *testing.T, slots ...schedule.TimeSlot) *schedule.Schedule {
	t.Helper()
	window, err := schedule.NewPublishWindow(nil, nil)
	require.NoError(t, err)
	pricing, err := schedule.NewPricing(nil, nil, nil, nil, nil)
	require.NoError(t, err)
	s, err := schedule.NewSchedule(uuid.New(), "가을 공연", nil, baseDate, window, 50, nil, nil, nil, pricing, true, slots)
	require.NoError(t, err)
	return s
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("start must precede end", func(t *testing.T) {
		_, err := schedule.NewTimeSlot(baseDate.Add(time.Hour), baseDate, "밴드A", nil)
		require.ErrorIs(t, err, schedule.ErrInvalidSlotTimes)
	})

	t.Run("performer name required", func(t *testing.T) {
		_, err := schedule.NewTimeSlot(baseDate, baseDate.Add(time.Hour), "  ", nil)
		require.ErrorIs(t, err, schedule.ErrEmptyPerformer)
	})

	t.Run("performer name trimmed", func(t *testing.T) {
		slot, err := schedule.NewTimeSlot(baseDate, baseDate.Add(time.Hour), "  밴드A  ", nil)
		require.NoError(t, err)
		assert.Equal(t, "밴드A", slot.PerformerName())
	})
}

func TestNewSchedule(t *testing.T) {
	window, _ := schedule.NewPublishWindow(nil, nil)
	pricing, _ := schedule.NewPricing(nil, nil, nil, nil, nil)

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := schedule.NewSchedule(uuid.New(), "  ", nil, baseDate, window, 10, nil, nil, nil, pricing, true, nil)
		require.ErrorIs(t, err, schedule.ErrEmptyTitle)
	})

	t.Run("non-positive capacity rejected", func(t *testing.T) {
		_, err := schedule.NewSchedule(uuid.New(), "공연", nil, baseDate, window, 0, nil, nil, nil, pricing, true, nil)
		require.ErrorIs(t, err, schedule.ErrInvalidCapacity)
	})
}

func TestNewPublishWindow(t *testing.T) {
	public := baseDate
	open := baseDate.Add(-time.Hour)

	_, err := schedule.NewPublishWindow(&public, &open)
	require.ErrorIs(t, err, schedule.ErrTicketOpenTooEarly)
}

func TestResolvePerformers(t *testing.T) {
	owner := uuid.New()
	band, err := team.NewTeam("밴드A", owner, nil, nil, nil, nil)
	require.NoError(t, err)

	s := mustSchedule(t,
		mustSlot(t, "밴드a", 19), // case-insensitive match
		mustSlot(t, "무명팀", 20),
	)

	s.ResolvePerformers([]*team.Team{band})

	slots := s.Slots()
	require.NotNil(t, slots[0].ResolvedTeamID())
	assert.Equal(t, band.ID(), *slots[0].ResolvedTeamID())
	assert.Nil(t, slots[1].ResolvedTeamID())
}

func TestDistinctPerformers(t *testing.T) {
	s := mustSchedule(t,
		mustSlot(t, "밴드A", 18),
		mustSlot(t, "밴드a", 19), // same key as above
		mustSlot(t, "밴드B", 20),
	)

	assert.Equal(t, []string{"밴드A", "밴드B"}, s.DistinctPerformers())
}

func TestSlotByID(t *testing.T) {
	slot := mustSlot(t, "밴드A", 19)
	s := mustSchedule(t, slot)

	t.Run("existing slot found", func(t *testing.T) {
		found, err := s.SlotByID(slot.ID())
		require.NoError(t, err)
		assert.Equal(t, slot.PerformerName(), found.PerformerName())
	})

	t.Run("foreign slot rejected", func(t *testing.T) {
		_, err := s.SlotByID(uuid.New())
		require.ErrorIs(t, err, schedule.ErrSlotNotFound)
	})
}

func TestCanReserveAt(t *testing.T) {
	now := baseDate.Add(12 * time.Hour)
	window, _ := schedule.NewPublishWindow(nil, nil)
	pricing, _ := schedule.NewPricing(nil, nil, nil, nil, nil)

	t.Run("published schedule open by default", func(t *testing.T) {
		s := mustSchedule(t)
		require.NoError(t, s.CanReserveAt(now))
	})

	t.Run("unpublished schedule hidden", func(t *testing.T) {
		s, err := schedule.NewSchedule(uuid.New(), "공연", nil, baseDate, window, 10, nil, nil, nil, pricing, false, nil)
		require.NoError(t, err)
		require.ErrorIs(t, s.CanReserveAt(now), schedule.ErrNotPublished)
	})

	t.Run("before public release hidden", func(t *testing.T) {
		public := now.Add(time.Hour)
		w, err := schedule.NewPublishWindow(&public, nil)
		require.NoError(t, err)
		s, err := schedule.NewSchedule(uuid.New(), "공연", nil, baseDate, w, 10, nil, nil, nil, pricing, true, nil)
		require.NoError(t, err)
		require.ErrorIs(t, s.CanReserveAt(now), schedule.ErrNotPublished)
	})

	t.Run("visible but ticket sales not open", func(t *testing.T) {
		public := now.Add(-2 * time.Hour)
		open := now.Add(time.Hour)
		w, err := schedule.NewPublishWindow(&public, &open)
		require.NoError(t, err)
		s, err := schedule.NewSchedule(uuid.New(), "공연", nil, baseDate, w, 10, nil, nil, nil, pricing, true, nil)
		require.NoError(t, err)
		require.ErrorIs(t, s.CanReserveAt(now), schedule.ErrTicketNotOpen)
	})
}

func TestHasRemainingCapacity(t *testing.T) {
	s := mustSchedule(t)

	assert.True(t, s.HasRemainingCapacity(49))
	assert.False(t, s.HasRemainingCapacity(50))
}

func TestSoftDelete(t *testing.T) {
	t.Run("deletes without reservations", func(t *testing.T) {
		s := mustSchedule(t)
		require.NoError(t, s.SoftDelete(0))
		assert.True(t, s.IsDeleted())
	})

	t.Run("refuses with active reservations", func(t *testing.T) {
		s := mustSchedule(t)
		require.ErrorIs(t, s.SoftDelete(3), schedule.ErrHasReservations)
	})

	t.Run("double delete rejected", func(t *testing.T) {
		s := mustSchedule(t)
		require.NoError(t, s.SoftDelete(0))
		require.ErrorIs(t, s.SoftDelete(0), schedule.ErrAlreadyDeleted)
	})
}

func TestPricingAmountFor(t *testing.T) {
	advance := int64(15000)
	gradeS := int64(30000)
	pricing, err := schedule.NewPricing(&advance, nil, nil, &gradeS, nil)
	require.NoError(t, err)

	t.Run("tiered grade priced", func(t *testing.T) {
		grade := schedule.GradeS
		amount, err := pricing.AmountFor(&grade)
		require.NoError(t, err)
		assert.Equal(t, gradeS, amount)
	})

	t.Run("unpriced grade rejected", func(t *testing.T) {
		grade := schedule.GradeR
		_, err := pricing.AmountFor(&grade)
		require.ErrorIs(t, err, schedule.ErrGradeNotPriced)
	})

	t.Run("no grade falls back to advance", func(t *testing.T) {
		amount, err := pricing.AmountFor(nil)
		require.NoError(t, err)
		assert.Equal(t, advance, amount)
	})

	t.Run("free event resolves to zero", func(t *testing.T) {
		free, err := schedule.NewPricing(nil, nil, nil, nil, nil)
		require.NoError(t, err)
		amount, err := free.AmountFor(nil)
		require.NoError(t, err)
		assert.Zero(t, amount)
		assert.True(t, free.IsFree())
	})

	t.Run("negative price rejected", func(t *testing.T) {
		bad := int64(-1)
		_, err := schedule.NewPricing(&bad, nil, nil, nil, nil)
		require.ErrorIs(t, err, schedule.ErrNegativePrice)
	})
}
