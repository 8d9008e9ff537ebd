package usecases

import (
	"strings"
	"time"

	"github.com/google/uuid"

	domainerrors "campus-market.backend/internal/domain/errors"
	"campus-market.backend/pkg/utils"
)

var (
	nowUTC = func() time.Time { return time.Now().UTC() }
	newID  = utils.GenerateUUIDv7
)

// parseID parses a path or body identifier. Malformed ids cannot match any
// row, so they report notFoundMsg the same way a missing row does.
func parseID(raw, notFoundMsg string) (uuid.UUID, error) {
	id, ok := utils.ParseUUID(strings.TrimSpace(raw))
	if !ok {
		return uuid.Nil, domainerrors.NotFound(notFoundMsg)
	}
	return id, nil
}

// trimmedPtr trims *s and maps blank values to nil.
func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
