package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerr "github.com/masjid-digital/donation-processor/internal/domain/error"
	donationUseCase "github.com/masjid-digital/donation-processor/internal/domain/usecase/donation"
	"github.com/masjid-digital/donation-processor/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error to the standard error envelope. Validation
// errors carry their offending field names so clients can highlight them.
func respondError(c *gin.Context, err error) {
	resp := dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	}

	var ve *domainerr.ValidationError
	if errors.As(err, &ve) {
		resp.Fields = ve.Fields
	}

	c.JSON(donationUseCase.HTTPStatus(err), resp)
}
