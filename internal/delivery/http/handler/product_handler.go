package handler

import (
	"encoding/json"
	"net/http"

	"go-online-store/internal/delivery/dto"
	"go-online-store/internal/usecase"
	"go-online-store/pkg/response"
	"go-online-store/pkg/validator"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validator      *validator.CustomValidator
}

func NewProductHandler(productUsecase usecase.ProductUsecase, validator *validator.CustomValidator) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validator:      validator,
	}
}

// AddProduct handles product registration
// @Summary Add a new product
// @Description Register a new product with its price and initial stock
// @Tags Products
// @Accept json
// @Produce json
// @Param request body dto.AddProductRequest true "Add Product Request"
// @Success 200 {object} dto.AddProductResponse
// @Failure 400 {object} response.MessageBody
// @Router /add_product [post]
func (h *ProductHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Message(err))
		return
	}

	product, err := h.productUsecase.AddProduct(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.AddProductResponse{
		Message: "Added Product",
		Product: *product,
	})
}

// UpdateStock handles stock overwrites
// @Summary Update product stock
// @Description Set the available stock of a product, returning before/after values
// @Tags Products
// @Accept json
// @Produce json
// @Param request body dto.UpdateStockRequest true "Update Stock Request"
// @Success 200 {object} dto.UpdateStockResponse
// @Failure 400 {object} response.MessageBody
// @Router /update_stock [put]
func (h *ProductHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Message(err))
		return
	}

	change, err := h.productUsecase.UpdateStock(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.UpdateStockResponse{
		Message: "Updated stock",
		Product: *change,
	})
}

// DeleteProduct handles product removal
// @Summary Delete a product
// @Description Remove a product that has never been sold
// @Tags Products
// @Accept json
// @Produce json
// @Param request body dto.DeleteProductRequest true "Delete Product Request"
// @Success 200 {object} dto.DeleteProductResponse
// @Failure 400 {object} response.MessageBody
// @Router /delete_product [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Message(err))
		return
	}

	name, err := h.productUsecase.DeleteProduct(r.Context(), req.Name)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.DeleteProductResponse{
		Message: "Product deleted",
		Name:    name,
	})
}

// GetProduct handles product lookups
// @Summary Get product by name
// @Description Fetch all data of a registered product
// @Tags Products
// @Produce json
// @Param name query string true "Product name"
// @Success 200 {object} dto.GetProductResponse
// @Failure 400 {object} response.MessageBody
// @Router /get_product [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		response.BadRequest(w, "The product name must be informed")
		return
	}

	product, err := h.productUsecase.GetProduct(r.Context(), name)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.GetProductResponse{
		Message: "Product all data",
		Product: *product,
	})
}
