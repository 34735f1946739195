package http

import (
	"net/http"

	"weldtrack-backend/internal/domain/user"
	"weldtrack-backend/internal/usecase/account"
	"weldtrack-backend/internal/usecase/review"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	uc       *review.Usecase
	accounts *account.Usecase
}

func NewReviewHandler(uc *review.Usecase, accounts *account.Usecase) *ReviewHandler {
	return &ReviewHandler{uc: uc, accounts: accounts}
}

type commentReq struct {
	Comment string `json:"comment"`
}

func (h *ReviewHandler) ApproveClaim(c echo.Context) error {
	var req commentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.Approve(c.Request().Context(), c.Param("claim_id"), req.Comment)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReviewHandler) RejectClaim(c echo.Context) error {
	var req commentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.Reject(c.Request().Context(), c.Param("claim_id"), req.Comment)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReviewHandler) ResetClaim(c echo.Context) error {
	out, err := h.uc.Reset(c.Request().Context(), c.Param("claim_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReviewHandler) SaveComment(c echo.Context) error {
	var req commentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	out, err := h.uc.SaveComment(c.Request().Context(), c.Param("claim_id"), req.Comment)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReviewHandler) ApproveUser(c echo.Context) error {
	if err := h.uc.ApproveUser(c.Request().Context(), c.Param("user_id")); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ReviewHandler) ListUsers(c echo.Context) error {
	out, err := h.accounts.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Notifications backs the UI shell's badge polling; the shell owns the
// timer, this endpoint just returns a snapshot.
func (h *ReviewHandler) Notifications(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user_id is required"})
	}
	var requester *user.User
	if userID == "guest" {
		requester = user.Guest()
	} else {
		var err error
		requester, err = h.accounts.GetUser(c.Request().Context(), userID)
		if err != nil {
			return respondError(c, err)
		}
	}
	out, err := h.uc.CountNotifications(c.Request().Context(), requester)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
