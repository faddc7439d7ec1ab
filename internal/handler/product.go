package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/pizza-service/internal/auth"
	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProductService interface {
	CreateProduct(ctx context.Context, in entities.CreateProduct) (entities.Product, error)
	Products(ctx context.Context, cursor entities.Cursor) (entities.ProductsPage, error)
	UpdateProduct(ctx context.Context, baseSku string, upd entities.ProductUpdate) error
	UpdateVariant(ctx context.Context, baseSku, variantSku string, upd entities.VariantUpdate) error
	DeleteProduct(ctx context.Context, baseSku string) error
}

type ProductHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	svc       ProductService
	authorize Middleware
}

func NewProductHandler(logger *slog.Logger, svc ProductService, authorize Middleware) *ProductHandler {
	return &ProductHandler{
		logger:    logger.With(slog.String("handler", "product")),
		validate:  validator.New(),
		svc:       svc,
		authorize: authorize,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.With(h.authorize).Post(auth.RouteProducts, h.CreateProduct)
	r.With(h.authorize).Post(auth.RouteProductsFind, h.Products)
	r.With(h.authorize).Patch(auth.RouteProductsUpdate, h.UpdateProduct)
	r.With(h.authorize).Post(auth.RouteProductsDelete, h.DeleteProduct)
}

// CreateProduct adds a product with its variants.
// @Summary      Create product
// @Description  Variant skus are derived as BASESKU_SIZE. Between 1 and 99 variants.
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateProductRequest  true  "Product"
// @Success      200  {object}  CreateProductResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Product exists"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	for _, v := range req.Variants {
		if !v.Price.IsPositive() {
			utils.WriteError(w, "variant price must be positive", http.StatusBadRequest)
			return
		}
	}

	product, err := h.svc.CreateProduct(ctx, CreateProductJSONToEntity(req))
	if err != nil {
		writeServiceError(w, r, h.logger, "failed to create product", err, slog.String("sku", req.Sku))
		return
	}

	utils.WriteJSON(w, CreateProductResponse{
		Message: "PRODUCT_CREATED",
		Product: ProductEntityToJSON(product),
	}, http.StatusOK)
}

// Products lists the catalog page by page.
// @Summary      List products
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      PageRequest  false  "Continuation"
// @Success      200  {object}  ProductsPageResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /products/find [post]
func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PageRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	page, err := h.svc.Products(ctx, entities.Cursor(req.NextKey))
	if err != nil {
		writeServiceError(w, r, h.logger, "failed to list products", err)
		return
	}

	products := make([]Product, 0, len(page.Products))
	for _, p := range page.Products {
		products = append(products, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, ProductsPageResponse{Products: products, NextKey: string(page.Next)}, http.StatusOK)
}

// UpdateProduct patches a base product or one variant.
// @Summary      Update product
// @Description  Base products may change name. Variants may change price and type, never size.
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateProductRequest  true  "Update"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /products/update [patch]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	attrs := req.UpdatedAttributes
	if !req.IsVariantUpdate {
		if err := h.svc.UpdateProduct(ctx, req.BaseSku, entities.ProductUpdate{Name: attrs.Name}); err != nil {
			writeServiceError(w, r, h.logger, "failed to update product", err, slog.String("base_sku", req.BaseSku))
			return
		}
		utils.WriteJSON(w, MessageResponse{Message: "Product updated successfully."}, http.StatusOK)
		return
	}

	if attrs.Price != nil && !attrs.Price.IsPositive() {
		utils.WriteError(w, "variant price must be positive", http.StatusBadRequest)
		return
	}
	upd := entities.VariantUpdate{Price: attrs.Price, Type: attrs.Type}
	if attrs.Size != nil {
		size := entities.ProductSize(*attrs.Size)
		upd.Size = &size
	}

	if err := h.svc.UpdateVariant(ctx, req.BaseSku, req.VariantSku, upd); err != nil {
		writeServiceError(w, r, h.logger, "failed to update variant", err,
			slog.String("base_sku", req.BaseSku),
			slog.String("variant_sku", req.VariantSku),
		)
		return
	}
	utils.WriteJSON(w, MessageResponse{Message: "Variant updated successfully."}, http.StatusOK)
}

// DeleteProduct removes a product and all its variants.
// @Summary      Delete product
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      DeleteProductRequest  true  "Product"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /products/delete [post]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DeleteProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.DeleteProduct(ctx, req.ProductID); err != nil {
		writeServiceError(w, r, h.logger, "failed to delete product", err, slog.String("base_sku", req.ProductID))
		return
	}
	utils.WriteJSON(w, MessageResponse{Message: "PRODUCT_DELETED"}, http.StatusOK)
}
