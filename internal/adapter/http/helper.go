package http

import (
	"errors"
	"net/http"
	"strings"

	claimuc "weldtrack-backend/internal/usecase/claim"

	"weldtrack-backend/internal/domain/catalog"
	"weldtrack-backend/internal/domain/claim"
	"weldtrack-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// respondError maps domain sentinels onto HTTP codes; anything
// unrecognized is a generic 500. Nothing retries automatically.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, user.ErrAccountPending):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, claim.ErrNotFound), errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, user.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, user.ErrDuplicateID), errors.Is(err, claim.ErrInvalidTransition),
		errors.Is(err, claim.ErrEmptyComment), errors.Is(err, claim.ErrNotEditable),
		errors.Is(err, claim.ErrNotOwner):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, claimuc.ErrNoLineItems), errors.Is(err, claimuc.ErrWelderOverBudget),
		errors.Is(err, claimuc.ErrForemanOverBudget), errors.Is(err, claimuc.ErrOverTotalBudget):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
