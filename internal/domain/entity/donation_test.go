package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/masjid-digital/donation-processor/internal/domain/error"
	coremocks "github.com/masjid-digital/donation-processor/mocks/port/core"
)

const testMinimumAmount = int64(10000)

func TestNewDonation(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	t.Run("Valid donation creation", func(t *testing.T) {
		email := "donor@example.com"
		donation, err := NewDonation(NewDonationInput{
			DonorName:  "Ahmad Fulan",
			DonorEmail: &email,
			Amount:     50000,
			Category:   string(CategoryInfaq),
			Notes:      "untuk renovasi",
		}, testMinimumAmount, mockTime)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, donation.ID)
		assert.Equal(t, "Ahmad Fulan", donation.DonorName)
		assert.Equal(t, int64(50000), donation.Amount)
		assert.Equal(t, CategoryInfaq, donation.Category)
		assert.Equal(t, StatusPending, donation.Status)
		assert.Empty(t, donation.Code)
		assert.Nil(t, donation.ConfirmedAt)
		assert.Nil(t, donation.ConfirmedBy)
		assert.Equal(t, fixedTime, donation.CreatedAt)
		assert.Equal(t, fixedTime, donation.UpdatedAt)
	})

	t.Run("Donor name is trimmed", func(t *testing.T) {
		donation, err := NewDonation(NewDonationInput{
			DonorName: "  Siti Aminah  ",
			Amount:    25000,
			Category:  string(CategoryZakat),
		}, testMinimumAmount, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Siti Aminah", donation.DonorName)
	})

	t.Run("Empty donor name", func(t *testing.T) {
		donation, err := NewDonation(NewDonationInput{
			DonorName: "   ",
			Amount:    50000,
			Category:  string(CategoryInfaq),
		}, testMinimumAmount, mockTime)

		assert.Nil(t, donation)
		assert.True(t, errors.Is(err, errs.ErrInvalidDonorName))
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Amount below minimum", func(t *testing.T) {
		donation, err := NewDonation(NewDonationInput{
			DonorName: "Ahmad Fulan",
			Amount:    testMinimumAmount - 1,
			Category:  string(CategoryInfaq),
		}, testMinimumAmount, mockTime)

		assert.Nil(t, donation)
		assert.True(t, errors.Is(err, errs.ErrAmountBelowMinimum))
	})

	t.Run("Amount exactly at minimum is accepted", func(t *testing.T) {
		donation, err := NewDonation(NewDonationInput{
			DonorName: "Ahmad Fulan",
			Amount:    testMinimumAmount,
			Category:  string(CategorySedekah),
		}, testMinimumAmount, mockTime)

		require.NoError(t, err)
		assert.Equal(t, testMinimumAmount, donation.Amount)
	})

	t.Run("Unknown category", func(t *testing.T) {
		donation, err := NewDonation(NewDonationInput{
			DonorName: "Ahmad Fulan",
			Amount:    50000,
			Category:  "lottery",
		}, testMinimumAmount, mockTime)

		assert.Nil(t, donation)
		assert.True(t, errors.Is(err, errs.ErrInvalidCategory))
	})
}

func TestDonationConfirm(t *testing.T) {
	createdAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	confirmedAt := createdAt.Add(2 * time.Hour)
	staffID := uuid.New()

	newPending := func() *Donation {
		return &Donation{
			ID:        uuid.New(),
			Code:      "A1B2C3D4",
			DonorName: "Ahmad Fulan",
			Amount:    50000,
			Category:  CategoryInfaq,
			Status:    StatusPending,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
	}

	t.Run("Pending donation confirms", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(confirmedAt).Once()

		donation := newPending()
		err := donation.Confirm(staffID, mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, donation.Status)
		require.NotNil(t, donation.ConfirmedAt)
		assert.Equal(t, confirmedAt, *donation.ConfirmedAt)
		require.NotNil(t, donation.ConfirmedBy)
		assert.Equal(t, staffID, *donation.ConfirmedBy)
		assert.True(t, donation.ConfirmedAt.After(donation.CreatedAt))
		assert.True(t, donation.IsTerminal())
	})

	t.Run("Confirming twice fails deterministically", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(confirmedAt).Once()

		donation := newPending()
		require.NoError(t, donation.Confirm(staffID, mockTime))

		err := donation.Confirm(staffID, mockTime)
		assert.True(t, errors.Is(err, errs.ErrAlreadyConfirmed))
		assert.True(t, errs.IsStateTransitionError(err))

		var se *errs.StateTransitionError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, string(StatusConfirmed), se.CurrentStatus)
		assert.Equal(t, "confirm", se.Attempted)
	})

	t.Run("Confirming a cancelled donation fails", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(confirmedAt).Once()

		donation := newPending()
		require.NoError(t, donation.Cancel(staffID, "duplicate entry", mockTime))

		err := donation.Confirm(staffID, mockTime)
		assert.True(t, errors.Is(err, errs.ErrAlreadyCancelled))
	})
}

func TestDonationCancel(t *testing.T) {
	createdAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	cancelledAt := createdAt.Add(time.Hour)
	staffID := uuid.New()

	t.Run("Pending donation cancels with reason", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(cancelledAt).Once()

		donation := &Donation{
			ID:        uuid.New(),
			Status:    StatusPending,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}

		err := donation.Cancel(staffID, "donor withdrew", mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, donation.Status)
		assert.Equal(t, "donor withdrew", donation.CancelReason)
		// confirmation timestamp must stay nil on cancellation
		assert.Nil(t, donation.ConfirmedAt)
		assert.True(t, donation.IsTerminal())
	})

	t.Run("Cancelling twice fails deterministically", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(cancelledAt).Once()

		donation := &Donation{
			ID:     uuid.New(),
			Status: StatusPending,
		}
		require.NoError(t, donation.Cancel(staffID, "", mockTime))

		err := donation.Cancel(staffID, "", mockTime)
		assert.True(t, errors.Is(err, errs.ErrAlreadyCancelled))
	})
}

func TestCategoryValidation(t *testing.T) {
	for _, category := range Categories() {
		assert.True(t, IsValidCategory(string(category)), "category %s should be valid", category)
	}

	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory("INFAQ"))
	assert.False(t, IsValidCategory("donasi"))
}

func TestStatusValidation(t *testing.T) {
	assert.True(t, IsValidStatus("pending"))
	assert.True(t, IsValidStatus("confirmed"))
	assert.True(t, IsValidStatus("cancelled"))
	assert.False(t, IsValidStatus("canceled"))
	assert.False(t, IsValidStatus(""))
}
