package create_booking

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.BathhouseID <= 0 {
		return fmt.Errorf("%w: bathhouseID must be positive", ErrInvalidInput)
	}

	if req.StartUTC.IsZero() || req.EndUTC.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	// Начало должно быть строго раньше окончания
	if !req.StartUTC.Before(req.EndUTC) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInterval)
	}

	// Бронирование в прошлое запрещено
	if req.StartUTC.Before(now) {
		return fmt.Errorf("%w: start must not be in the past", ErrInvalidInterval)
	}

	return nil
}
