package plan

import (
	"errors"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
)

var passthroughErrors = []error{
	domain.ErrPlannedItemNotFound,
	domain.ErrFavoriteNotFound,
	domain.ErrItemNotFound,
	domain.ErrInvalidInput,
}

func isDomainError(err error) bool {
	for _, target := range passthroughErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
