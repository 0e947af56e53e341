package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go-online-store/internal/delivery/dto"
	"go-online-store/internal/usecase"
	"go-online-store/pkg/response"
	"go-online-store/pkg/validator"
)

type SaleHandler struct {
	saleUsecase usecase.SaleUsecase
	validator   *validator.CustomValidator
}

func NewSaleHandler(saleUsecase usecase.SaleUsecase, validator *validator.CustomValidator) *SaleHandler {
	return &SaleHandler{
		saleUsecase: saleUsecase,
		validator:   validator,
	}
}

// AddSale handles sale creation
// @Summary Add a new sale
// @Description Record a sale and debit product stock atomically
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body dto.AddSaleRequest true "Add Sale Request"
// @Success 200 {object} dto.AddSaleResponse
// @Failure 400 {object} response.MessageBody
// @Router /add_sale [post]
func (h *SaleHandler) AddSale(w http.ResponseWriter, r *http.Request) {
	var req dto.AddSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Message(err))
		return
	}

	sale, err := h.saleUsecase.AddSale(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.AddSaleResponse{
		Message: "Added Sale",
		Sale:    *sale,
	})
}

// CloseSale handles the terminal open -> closed transition
// @Summary Close a sale
// @Description Close an open sale; closed sales cannot be reopened or deleted
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body dto.SaleIDRequest true "Close Sale Request"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} response.MessageBody
// @Router /close_sale [put]
func (h *SaleHandler) CloseSale(w http.ResponseWriter, r *http.Request) {
	var req dto.SaleIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Message(err))
		return
	}

	if err := h.saleUsecase.CloseSale(r.Context(), req.SalesID); err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Sale %d closed successfully", req.SalesID),
	})
}

// DeleteSale handles removal of open sales
// @Summary Delete an open sale
// @Description Delete a sale that is still open; stock is not restored
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body dto.SaleIDRequest true "Delete Sale Request"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} response.MessageBody
// @Router /delete_sale [delete]
func (h *SaleHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	var req dto.SaleIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Message(err))
		return
	}

	if err := h.saleUsecase.DeleteSale(r.Context(), req.SalesID); err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Sale %d deleted successfully", req.SalesID),
	})
}

// GetSales handles open-sales listing
// @Summary Get all open sales
// @Description List open sales joined with the current product snapshot
// @Tags Sales
// @Produce json
// @Success 200 {object} dto.GetSalesResponse
// @Failure 400 {object} response.MessageBody
// @Router /get_sales [get]
func (h *SaleHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.saleUsecase.GetOpenSales(r.Context())
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.GetSalesResponse{
		Message: "Open sales consulted",
		Sales:   sales,
	})
}
