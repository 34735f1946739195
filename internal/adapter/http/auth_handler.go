package http

import (
	"net/http"

	"weldtrack-backend/internal/usecase/account"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *account.Usecase }

func NewAuthHandler(uc *account.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type registerReq struct {
	UserID      string `json:"id"          validate:"required,userid"`
	Name        string `json:"name"        validate:"required"`
	Password    string `json:"password"    validate:"required,min=4"`
	Workstation string `json:"workstation" validate:"required,yard"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	u, err := h.uc.Register(c.Request().Context(), account.RegisterInput{
		UserID:      req.UserID,
		Name:        req.Name,
		Password:    req.Password,
		Workstation: req.Workstation,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

type loginReq struct {
	UserID   string `json:"id"       validate:"required"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	u, err := h.uc.Login(c.Request().Context(), req.UserID, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}
