package http

import (
	"net/http"

	"weldtrack-backend/internal/domain/catalog"
	"weldtrack-backend/internal/domain/claim"
	claimuc "weldtrack-backend/internal/usecase/claim"

	"github.com/labstack/echo/v4"
)

type ClaimHandler struct{ uc *claimuc.Usecase }

func NewClaimHandler(uc *claimuc.Usecase) *ClaimHandler { return &ClaimHandler{uc: uc} }

type allocationReq struct {
	WorkerID   string  `json:"worker_id"`
	WorkerName string  `json:"worker_name"`
	Role       string  `json:"role"   validate:"required,role"`
	Amount     float64 `json:"amount" validate:"gte=0"`
}

type lineItemReq struct {
	SpecID     string  `json:"spec_id"    validate:"required"`
	DrawingNo  string  `json:"drawing_no"`
	WeldNo     string  `json:"weld_no"    validate:"required"`
	ItemSerial string  `json:"item_serial"`
	Weight     float64 `json:"weight"`
	Price      float64 `json:"price"`
	UTDate     string  `json:"ut_date"`
}

type submitClaimReq struct {
	Workstation   string          `json:"workstation"    validate:"required,yard"`
	ApplicantName string          `json:"applicant_name" validate:"required"`
	SubmitDate    string          `json:"submit_date"    validate:"required,datetime=2006-01-02"`
	MasterItemID  string          `json:"master_item_id" validate:"required"`
	Items         []lineItemReq   `json:"items"          validate:"dive"`
	Allocations   []allocationReq `json:"allocations"    validate:"dive"`
}

func (r submitClaimReq) toInput() claimuc.SubmitInput {
	in := claimuc.SubmitInput{
		Workstation:   r.Workstation,
		ApplicantName: r.ApplicantName,
		SubmitDate:    r.SubmitDate,
		MasterItemID:  r.MasterItemID,
	}
	for _, it := range r.Items {
		in.Items = append(in.Items, claim.LineItem{
			SpecID:     it.SpecID,
			DrawingNo:  it.DrawingNo,
			WeldNo:     it.WeldNo,
			ItemSerial: it.ItemSerial,
			Weight:     it.Weight,
			Price:      it.Price,
			UTDate:     it.UTDate,
		})
	}
	for _, a := range r.Allocations {
		in.Allocations = append(in.Allocations, claim.Allocation{
			WorkerID:   a.WorkerID,
			WorkerName: a.WorkerName,
			Role:       claim.Role(a.Role),
			Amount:     a.Amount,
		})
	}
	return in
}

func (h *ClaimHandler) SubmitClaim(c echo.Context) error {
	var req submitClaimReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	res, err := h.uc.Submit(c.Request().Context(), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *ClaimHandler) UpdateClaim(c echo.Context) error {
	claimID := c.Param("claim_id")
	if claimID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing claim_id path param"})
	}
	var req submitClaimReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	res, err := h.uc.Update(c.Request().Context(), claimID, req.Workstation, req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ClaimHandler) GetClaim(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("claim_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClaimHandler) ListClaims(c echo.Context) error {
	f := claimuc.ListFilter{
		Workstation: c.QueryParam("workstation"),
		Status:      claim.Status(c.QueryParam("status")),
		Quarter:     c.QueryParam("quarter"),
		Query:       c.QueryParam("q"),
	}
	out, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClaimHandler) CheckApplied(c echo.Context) error {
	weldNo := c.QueryParam("weld_no")
	masterItemID := c.QueryParam("master_item_id")
	if weldNo == "" || masterItemID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "weld_no and master_item_id are required"})
	}
	applied, err := h.uc.CheckIfApplied(c.Request().Context(), weldNo, masterItemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"applied": applied})
}

// ---- authoring drafts (no persistence, pure catalog transforms) ----

type draftReq struct {
	MasterItemID string `json:"master_item_id" validate:"required"`
	ConfigName   string `json:"config_name"`
	ItemSerial   string `json:"item_serial"`
	SubmitDate   string `json:"submit_date"    validate:"required,datetime=2006-01-02"`
}

type draftResp struct {
	Items       []claim.LineItem     `json:"items"`
	Allocations []claim.Allocation   `json:"allocations"`
	Budget      claimuc.BudgetReport `json:"budget"`
}

// DraftClaim seeds a fresh form: line items for the chosen (or first)
// configuration plus the default roster with an even split.
func (h *ClaimHandler) DraftClaim(c echo.Context) error {
	var req draftReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	item, err := catalog.ItemByID(req.MasterItemID)
	if err != nil {
		return respondError(c, err)
	}
	configName := req.ConfigName
	if configName == "" {
		if names := item.ConfigNames(); len(names) > 0 {
			configName = names[0]
		}
	}
	items := claimuc.BuildLineItems(item, configName, req.ItemSerial, req.SubmitDate)
	allocs := claimuc.BuildDefaultAllocations(item)
	return c.JSON(http.StatusOK, draftResp{
		Items:       items,
		Allocations: allocs,
		Budget:      claimuc.ValidateBudget(allocs, item),
	})
}

type redistributeReq struct {
	MasterItemID string          `json:"master_item_id" validate:"required"`
	Allocations  []allocationReq `json:"allocations"    validate:"dive"`
}

// Redistribute recomputes the even split over the roster as it stands
// and reports the budget position.
func (h *ClaimHandler) Redistribute(c echo.Context) error {
	var req redistributeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	item, err := catalog.ItemByID(req.MasterItemID)
	if err != nil {
		return respondError(c, err)
	}
	allocs := make([]claim.Allocation, 0, len(req.Allocations))
	for _, a := range req.Allocations {
		allocs = append(allocs, claim.Allocation{
			WorkerID:   a.WorkerID,
			WorkerName: a.WorkerName,
			Role:       claim.Role(a.Role),
			Amount:     a.Amount,
		})
	}
	out := claimuc.Redistribute(allocs, item)
	return c.JSON(http.StatusOK, draftResp{
		Allocations: out,
		Budget:      claimuc.ValidateBudget(out, item),
	})
}
