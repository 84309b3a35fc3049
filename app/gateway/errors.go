package gateway

import (
	"errors"
	"fmt"

	"beesides-api/app/driver/appwrite"
	apperrors "beesides-api/app/utils/errors"
)

// platformError maps a driver failure to an AppError. Platform messages are
// kept verbatim for the caller; transport failures get the fallback message.
func platformError(fallback string, err error) error {
	var pe *appwrite.PlatformError
	if errors.As(err, &pe) {
		return apperrors.NewPlatformError(pe.Message, pe)
	}
	return apperrors.NewPlatformError(fallback, fmt.Errorf("%s: %w", fallback, err))
}
