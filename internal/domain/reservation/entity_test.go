//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"stagepass/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, won int64) reservation.Money {
	t.Helper()
	m, err := reservation.NewMoney(won)
	require.NoError(t, err)
	return m
}

func mustRefundAccount(t *testing.T) *reservation.RefundAccount {
	t.Helper()
	acc, err := reservation.NewRefundAccount("신한", "110-123-456789", "김하늘")
	require.NoError(t, err)
	return &acc
}

func TestNewReservation(t *testing.T) {
	userID := uuid.New()
	scheduleID := uuid.New()

	cases := []struct {
		name              string
		method            reservation.PaymentMethod
		amount            int64
		withRefundAccount bool
		wantPayment       reservation.PaymentStatus
		wantStatus        reservation.Status
		errIs             error
	}{
		{
			name:        "card payment confirms immediately",
			method:      reservation.MethodCard,
			amount:      15000,
			wantPayment: reservation.PaymentCompleted,
			wantStatus:  reservation.StatusConfirmed,
		},
		{
			name:              "paid bank transfer stays pending",
			method:            reservation.MethodBank,
			amount:            15000,
			withRefundAccount: true,
			wantPayment:       reservation.PaymentPending,
			wantStatus:        reservation.StatusPending,
		},
		{
			name:   "paid bank transfer without refund account rejected",
			method: reservation.MethodBank,
			amount: 15000,
			errIs:  reservation.ErrRefundAccountRequired,
		},
		{
			name:        "free bank transfer confirms immediately",
			method:      reservation.MethodBank,
			amount:      0,
			wantPayment: reservation.PaymentCompleted,
			wantStatus:  reservation.StatusConfirmed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var acc *reservation.RefundAccount
			if tc.withRefundAccount {
				acc = mustRefundAccount(t)
			}

			res, err := reservation.NewReservation(
				userID, scheduleID, nil, "밴드A", nil,
				tc.method, mustMoney(t, tc.amount), acc,
			)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tc.wantPayment, res.PaymentStatus())
			assert.Equal(t, tc.wantStatus, res.Status())
			assert.NotEmpty(t, res.QRCode())
			assert.False(t, res.IsEntered())
		})
	}
}

func TestConfirmPayment(t *testing.T) {
	t.Run("pending payment confirms", func(t *testing.T) {
		res, err := reservation.NewReservation(
			uuid.New(), uuid.New(), nil, "밴드A", nil,
			reservation.MethodBank, mustMoney(t, 20000), mustRefundAccount(t),
		)
		require.NoError(t, err)
		require.True(t, res.IsAwaitingPayment())

		require.NoError(t, res.ConfirmPayment())

		assert.Equal(t, reservation.PaymentCompleted, res.PaymentStatus())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.False(t, res.IsAwaitingPayment())
	})

	t.Run("already completed payment rejected", func(t *testing.T) {
		res, err := reservation.NewReservation(
			uuid.New(), uuid.New(), nil, "밴드A", nil,
			reservation.MethodCard, mustMoney(t, 20000), nil,
		)
		require.NoError(t, err)

		require.ErrorIs(t, res.ConfirmPayment(), reservation.ErrPaymentNotPending)
	})

	t.Run("cancelled reservation rejected", func(t *testing.T) {
		res, err := reservation.NewReservation(
			uuid.New(), uuid.New(), nil, "밴드A", nil,
			reservation.MethodBank, mustMoney(t, 20000), mustRefundAccount(t),
		)
		require.NoError(t, err)
		require.NoError(t, res.Cancel())

		require.ErrorIs(t, res.ConfirmPayment(), reservation.ErrAlreadyCancelled)
	})
}

func TestMarkEntered(t *testing.T) {
	now := time.Date(2025, 10, 4, 19, 0, 0, 0, time.UTC)

	t.Run("first entry transitions to used", func(t *testing.T) {
		res, err := reservation.NewReservation(
			uuid.New(), uuid.New(), nil, "밴드A", nil,
			reservation.MethodCard, mustMoney(t, 0), nil,
		)
		require.NoError(t, err)

		require.NoError(t, res.MarkEntered(now))

		assert.True(t, res.IsEntered())
		assert.Equal(t, reservation.StatusUsed, res.Status())
		require.NotNil(t, res.EnteredAt())
		assert.Equal(t, now, *res.EnteredAt())
	})

	t.Run("second entry is a conflict", func(t *testing.T) {
		res, err := reservation.NewReservation(
			uuid.New(), uuid.New(), nil, "밴드A", nil,
			reservation.MethodCard, mustMoney(t, 0), nil,
		)
		require.NoError(t, err)
		require.NoError(t, res.MarkEntered(now))

		require.ErrorIs(t, res.MarkEntered(now.Add(time.Minute)), reservation.ErrAlreadyEntered)
	})

	t.Run("cancelled reservation cannot enter", func(t *testing.T) {
		res, err := reservation.NewReservation(
			uuid.New(), uuid.New(), nil, "밴드A", nil,
			reservation.MethodCard, mustMoney(t, 0), nil,
		)
		require.NoError(t, err)
		require.NoError(t, res.Cancel())

		require.ErrorIs(t, res.MarkEntered(now), reservation.ErrAlreadyCancelled)
	})
}

func TestCancel(t *testing.T) {
	t.Run("completed payment refunds on cancel", func(t *testing.T) {
		res, err := reservation.NewReservation(
			uuid.New(), uuid.New(), nil, "밴드A", nil,
			reservation.MethodCard, mustMoney(t, 15000), nil,
		)
		require.NoError(t, err)

		require.NoError(t, res.Cancel())

		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.Equal(t, reservation.PaymentRefunded, res.PaymentStatus())
	})

	t.Run("pending payment cancels without refund", func(t *testing.T) {
		res, err := reservation.NewReservation(
			uuid.New(), uuid.New(), nil, "밴드A", nil,
			reservation.MethodBank, mustMoney(t, 15000), mustRefundAccount(t),
		)
		require.NoError(t, err)

		require.NoError(t, res.Cancel())

		assert.Equal(t, reservation.PaymentCancelled, res.PaymentStatus())
	})

	t.Run("entered reservation cannot cancel", func(t *testing.T) {
		res, err := reservation.NewReservation(
			uuid.New(), uuid.New(), nil, "밴드A", nil,
			reservation.MethodCard, mustMoney(t, 0), nil,
		)
		require.NoError(t, err)
		require.NoError(t, res.MarkEntered(time.Now()))

		require.ErrorIs(t, res.Cancel(), reservation.ErrEnteredCannotCancel)
	})

	t.Run("double cancel rejected", func(t *testing.T) {
		res, err := reservation.NewReservation(
			uuid.New(), uuid.New(), nil, "밴드A", nil,
			reservation.MethodCard, mustMoney(t, 0), nil,
		)
		require.NoError(t, err)
		require.NoError(t, res.Cancel())

		require.ErrorIs(t, res.Cancel(), reservation.ErrAlreadyCancelled)
	})
}

func TestNewRefundAccount(t *testing.T) {
	cases := []struct {
		name    string
		bank    string
		account string
		holder  string
		errIs   error
	}{
		{name: "known bank ok", bank: "KB국민", account: "123-456", holder: "김하늘"},
		{name: "spaces trimmed", bank: " 신한 ", account: " 123 ", holder: " 김하늘 "},
		{name: "unknown bank rejected", bank: "은하은행", account: "123", holder: "김하늘", errIs: reservation.ErrUnknownBank},
		{name: "missing holder rejected", bank: "신한", account: "123", holder: " ", errIs: reservation.ErrIncompleteRefundAccount},
		{name: "missing account rejected", bank: "신한", account: "", holder: "김하늘", errIs: reservation.ErrIncompleteRefundAccount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reservation.NewRefundAccount(tc.bank, tc.account, tc.holder)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewMoney(t *testing.T) {
	t.Run("negative rejected", func(t *testing.T) {
		_, err := reservation.NewMoney(-1)
		require.ErrorIs(t, err, reservation.ErrNegativeAmount)
	})

	t.Run("zero is free", func(t *testing.T) {
		m, err := reservation.NewMoney(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})
}
