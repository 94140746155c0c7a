package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/internal/interfaces/http/middleware"
	"muza-life.backend/internal/interfaces/http/response"
)

type ProductService interface {
	Create(ctx context.Context, input *entities.CreateProductInput) (*entities.Product, error)
	Get(ctx context.Context, id uint, isAdmin bool) (*entities.Product, error)
	List(ctx context.Context, filter entities.ProductFilter, isAdmin bool) ([]*entities.Product, error)
	Patch(ctx context.Context, id uint, patch *entities.ProductPatch) (*entities.Product, error)
	Delete(ctx context.Context, id uint) error
	ListFAQs(ctx context.Context) ([]*entities.FAQ, error)
	GetFAQ(ctx context.Context, id uint) (*entities.FAQ, error)
}

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	productUsecase ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase ProductService) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

// List lists catalog products with optional filters
// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	filter := entities.ProductFilter{Search: c.Query("search")}

	if raw := c.Query("typeId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid typeId"))
			return
		}
		typeID := uint(id)
		filter.TypeID = &typeID
	}
	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid minPrice"))
			return
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid maxPrice"))
			return
		}
		filter.MaxPrice = &v
	}
	isAdmin := middleware.IsAdmin(c)
	filter.IncludeHidden = isAdmin && c.Query("includeHidden") == "true"

	products, err := h.productUsecase.List(c.Request.Context(), filter, isAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"products": products})
}

// Get returns one product
// GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid product ID"))
		return
	}

	product, err := h.productUsecase.Get(c.Request.Context(), id, middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"product": product})
}

// Create adds a product to the catalog
// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var input entities.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"product": product})
}

// Patch partially updates a product
// PATCH /api/products/:id
func (h *ProductHandler) Patch(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid product ID"))
		return
	}

	var patch entities.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.Patch(c.Request.Context(), id, &patch)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"product": product})
}

// Delete removes a product
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid product ID"))
		return
	}

	if err := h.productUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ListFAQs lists storefront FAQs
// GET /api/faqs
func (h *ProductHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.productUsecase.ListFAQs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"faqs": faqs})
}

// GetFAQ returns one FAQ entry
// GET /api/faqs/:id
func (h *ProductHandler) GetFAQ(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid FAQ ID"))
		return
	}

	faq, err := h.productUsecase.GetFAQ(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"faq": faq})
}
