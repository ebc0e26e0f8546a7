package migration

import (
	"context"

	"github.com/masjid-digital/donation-processor/internal/domain/entity"
	usecaseport "github.com/masjid-digital/donation-processor/internal/domain/port/usecase"
)

func strPtr(s string) *string { return &s }

// defaultPaymentMethods seeds a fresh installation with the usual channels
// so the donation form is usable before staff configure their own
var defaultPaymentMethods = []entity.PaymentMethodInput{
	{
		Name:          "Bank Syariah Indonesia",
		Type:          string(entity.TypeBankTransfer),
		AccountNumber: strPtr("7100000001"),
		AccountName:   strPtr("Yayasan Masjid"),
		Instructions:  "Transfer ke rekening di atas lalu konfirmasi melalui form donasi",
		DisplayOrder:  1,
	},
	{
		Name:         "QRIS",
		Type:         string(entity.TypeQRIS),
		QRImageURL:   strPtr("/assets/qris-placeholder.png"),
		Instructions: "Pindai kode QR dengan aplikasi pembayaran apa pun",
		DisplayOrder: 2,
	},
}

// SeedDefaultPaymentMethods creates the default payment methods when the
// registry is empty
func SeedDefaultPaymentMethods(ctx context.Context, registry usecaseport.PaymentMethodUseCase) error {
	existing, err := registry.List(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, input := range defaultPaymentMethods {
		if _, err := registry.Create(ctx, input); err != nil {
			return err
		}
	}

	return nil
}
