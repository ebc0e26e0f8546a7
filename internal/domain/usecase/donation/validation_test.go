package donation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	errs "github.com/masjid-digital/donation-processor/internal/domain/error"
	"github.com/masjid-digital/donation-processor/internal/domain/port/usecase"
)

func TestValidateCreate(t *testing.T) {
	validator := NewValidator(testMinimumAmount)

	testCases := []struct {
		name        string
		req         usecase.CreateDonationRequest
		expectedErr error
	}{
		{
			name: "Valid request",
			req: usecase.CreateDonationRequest{
				DonorName: "Ahmad Fulan",
				Amount:    testMinimumAmount,
				Category:  string(entity.CategorySedekah),
			},
			expectedErr: nil,
		},
		{
			name: "Blank donor name",
			req: usecase.CreateDonationRequest{
				DonorName: "\t ",
				Amount:    50000,
				Category:  string(entity.CategoryInfaq),
			},
			expectedErr: errs.ErrInvalidDonorName,
		},
		{
			name: "Amount below minimum",
			req: usecase.CreateDonationRequest{
				DonorName: "Ahmad Fulan",
				Amount:    testMinimumAmount - 1,
				Category:  string(entity.CategoryInfaq),
			},
			expectedErr: errs.ErrAmountBelowMinimum,
		},
		{
			name: "Unknown category",
			req: usecase.CreateDonationRequest{
				DonorName: "Ahmad Fulan",
				Amount:    50000,
				Category:  "raffle",
			},
			expectedErr: errs.ErrInvalidCategory,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidateCreate(tc.req)
			if tc.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.expectedErr))
			assert.True(t, errs.IsValidationError(err))
		})
	}
}

func TestValidateListFilter(t *testing.T) {
	validator := NewValidator(testMinimumAmount)

	t.Run("Empty filters pass", func(t *testing.T) {
		assert.NoError(t, validator.ValidateListFilter("", ""))
	})

	t.Run("Known status and category pass", func(t *testing.T) {
		assert.NoError(t, validator.ValidateListFilter("pending", "zakat"))
	})

	t.Run("Unknown status is rejected", func(t *testing.T) {
		err := validator.ValidateListFilter("canceled", "")
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Unknown category is rejected", func(t *testing.T) {
		err := validator.ValidateListFilter("", "raffle")
		assert.True(t, errors.Is(err, errs.ErrInvalidCategory))
	})
}
