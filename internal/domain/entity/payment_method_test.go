package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/masjid-digital/donation-processor/internal/domain/error"
	coremocks "github.com/masjid-digital/donation-processor/mocks/port/core"
)

func strPtr(s string) *string {
	return &s
}

func TestNewPaymentMethod(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	t.Run("Bank transfer with account fields", func(t *testing.T) {
		method, err := NewPaymentMethod(PaymentMethodInput{
			Name:          "Bank Syariah Indonesia",
			Type:          string(TypeBankTransfer),
			AccountNumber: strPtr("7201234567"),
			AccountName:   strPtr("Masjid Al-Ikhlas"),
			Instructions:  "Transfer ke rekening di atas, lalu konfirmasi ke pengurus",
			DisplayOrder:  1,
		}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, TypeBankTransfer, method.Type)
		assert.True(t, method.IsActive)
		assert.Equal(t, fixedTime, method.CreatedAt)
	})

	t.Run("QRIS with QR image", func(t *testing.T) {
		method, err := NewPaymentMethod(PaymentMethodInput{
			Name:       "QRIS",
			Type:       string(TypeQRIS),
			QRImageURL: strPtr("https://cdn.example.com/qris.png"),
		}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, TypeQRIS, method.Type)
		assert.Nil(t, method.AccountNumber)
	})

	t.Run("Empty name", func(t *testing.T) {
		method, err := NewPaymentMethod(PaymentMethodInput{
			Name: "  ",
			Type: string(TypeQRIS),
		}, mockTime)

		assert.Nil(t, method)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Unknown type", func(t *testing.T) {
		method, err := NewPaymentMethod(PaymentMethodInput{
			Name: "Pulsa",
			Type: "phone_credit",
		}, mockTime)

		assert.Nil(t, method)
		assert.True(t, errors.Is(err, errs.ErrInvalidPaymentMethodType))
	})

	t.Run("Bank transfer missing both account fields", func(t *testing.T) {
		method, err := NewPaymentMethod(PaymentMethodInput{
			Name: "BCA",
			Type: string(TypeBankTransfer),
		}, mockTime)

		assert.Nil(t, method)
		assert.True(t, errors.Is(err, errs.ErrMissingAccountFields))

		var ve *errs.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, []string{"account_number", "account_name"}, ve.Fields)
	})

	t.Run("E-wallet missing account name only", func(t *testing.T) {
		method, err := NewPaymentMethod(PaymentMethodInput{
			Name:          "GoPay",
			Type:          string(TypeEWallet),
			AccountNumber: strPtr("081234567890"),
			AccountName:   strPtr("   "),
		}, mockTime)

		assert.Nil(t, method)

		var ve *errs.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, []string{"account_name"}, ve.Fields)
	})

	t.Run("QRIS missing QR image", func(t *testing.T) {
		method, err := NewPaymentMethod(PaymentMethodInput{
			Name: "QRIS",
			Type: string(TypeQRIS),
		}, mockTime)

		assert.Nil(t, method)
		assert.True(t, errors.Is(err, errs.ErrMissingQRImage))
	})
}

func TestPaymentMethodApplyUpdate(t *testing.T) {
	createdAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	updatedAt := createdAt.Add(24 * time.Hour)

	newMethod := func(t *testing.T) *PaymentMethod {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(createdAt).Maybe()
		method, err := NewPaymentMethod(PaymentMethodInput{
			Name:          "Bank Syariah Indonesia",
			Type:          string(TypeBankTransfer),
			AccountNumber: strPtr("7201234567"),
			AccountName:   strPtr("Masjid Al-Ikhlas"),
			DisplayOrder:  1,
		}, mockTime)
		require.NoError(t, err)
		return method
	}

	t.Run("Valid update overwrites editable fields", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(updatedAt).Once()

		method := newMethod(t)
		originalID := method.ID

		err := method.ApplyUpdate(PaymentMethodInput{
			Name:         "QRIS Masjid",
			Type:         string(TypeQRIS),
			QRImageURL:   strPtr("https://cdn.example.com/qris.png"),
			Instructions: "Pindai kode QR dengan aplikasi pembayaran",
			DisplayOrder: 3,
		}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, originalID, method.ID)
		assert.Equal(t, "QRIS Masjid", method.Name)
		assert.Equal(t, TypeQRIS, method.Type)
		assert.Equal(t, 3, method.DisplayOrder)
		assert.True(t, method.IsActive)
		assert.Equal(t, updatedAt, method.UpdatedAt)
	})

	t.Run("Invalid update leaves the method unchanged", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		method := newMethod(t)
		err := method.ApplyUpdate(PaymentMethodInput{
			Name: "BCA",
			Type: string(TypeBankTransfer),
		}, mockTime)

		assert.True(t, errors.Is(err, errs.ErrMissingAccountFields))
		assert.Equal(t, "Bank Syariah Indonesia", method.Name)
		assert.Equal(t, createdAt, method.UpdatedAt)
	})
}

func TestPaymentMethodDeactivate(t *testing.T) {
	deactivatedAt := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(deactivatedAt).Once()

	method := &PaymentMethod{IsActive: true}
	method.Deactivate(mockTime)

	assert.False(t, method.IsActive)
	assert.Equal(t, deactivatedAt, method.UpdatedAt)
}
