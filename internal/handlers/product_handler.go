package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/odutech/internal/audit"
	productdomain "github.com/BruksfildServices01/odutech/internal/domain/product"
	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/httpresp"
	"github.com/BruksfildServices01/odutech/internal/middleware"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/pagination"
)

type ProductHandler struct {
	repo  productdomain.Repository
	audit *audit.Dispatcher
}

func NewProductHandler(repo productdomain.Repository, audit *audit.Dispatcher) *ProductHandler {
	return &ProductHandler{repo: repo, audit: audit}
}

// --------- Requests ---------

type ProductRequest struct {
	Name          string  `json:"name" form:"name"`
	Description   string  `json:"description" form:"description"`
	Price         float64 `json:"price" form:"price"`
	StockQuantity int     `json:"stock_quantity" form:"stock_quantity"`
}

func (r ProductRequest) toModel() models.Product {
	return models.Product{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
	}
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	page, err := h.repo.List(c.Request.Context(), userID, productdomain.ListFilter{
		Search: c.Query("search"),
		Page:   pagination.Parse(c.Query("page")),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_products")
		return
	}

	httpresp.OK(c, page)
}

func (h *ProductHandler) Options(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	items, err := h.repo.ListAll(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_products")
		return
	}

	httpresp.List(c, items)
}

func (h *ProductHandler) Get(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	p, err := h.repo.Get(c.Request.Context(), userID, id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_product")
		return
	}

	httpresp.OK(c, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	p := req.toModel()
	p.UserID = userID

	if err := productdomain.Validate(&p); err != nil {
		httperr.FromError(c, err, "invalid_request")
		return
	}

	if err := h.repo.Create(c.Request.Context(), &p); err != nil {
		httperr.FromError(c, err, "failed_to_create_product")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "product_created",
		Entity:   "product",
		EntityID: &p.ID,
		Metadata: map[string]any{"name": p.Name, "price": p.Price},
	})

	httpresp.Created(c, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	p := req.toModel()
	p.ID = id
	p.UserID = userID

	if err := productdomain.Validate(&p); err != nil {
		httperr.FromError(c, err, "invalid_request")
		return
	}

	if err := h.repo.Update(c.Request.Context(), &p); err != nil {
		httperr.FromError(c, err, "failed_to_update_product")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "product_updated",
		Entity:   "product",
		EntityID: &p.ID,
	})

	httpresp.OK(c, p)
}

// Delete desvincula os atendimentos que usavam o produto.
func (h *ProductHandler) Delete(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), userID, id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_product")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "product_deleted",
		Entity:   "product",
		EntityID: &id,
	})

	httpresp.NoContent(c)
}
