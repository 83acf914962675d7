package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/concungshop/shop-admin/internal/logging"
	"github.com/concungshop/shop-admin/internal/middleware/auth"
	"github.com/concungshop/shop-admin/internal/mykafka"
	"github.com/concungshop/shop-admin/internal/service"
	"github.com/concungshop/shop-admin/internal/transport"
	"github.com/concungshop/shop-admin/internal/util"
)

// AvatarField is the multipart part the product forms attach the image to.
// Only the original filename is kept; upload storage is handled elsewhere.
const AvatarField = "path"

type ProductHandler struct {
	Svc        *service.ProductService
	Categories *service.CategoryService
	Nav        *NavBuilder
	Producer   *mykafka.Producer
}

func (h *ProductHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, fmt.Sprint(event["productID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	page := util.ParseIntDefault(c.QueryParam("page"), 0)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	sortField := c.QueryParam("sortField")
	if sortField == "" {
		sortField = "name"
	}
	sortDir := c.QueryParam("sortDir")
	if sortDir == "" {
		sortDir = "asc"
	}
	reverseSortDir := "asc"
	if sortDir == "asc" {
		reverseSortDir = "desc"
	}

	productPage, err := h.Svc.FindPage(ctx, page, size, sortField, sortDir)
	if err != nil {
		l.Error("list_products_failed", "status", 500, "reason", "cannot page products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot page products")
	}

	nav, err := h.Nav.Build(ctx, auth.Username(c))
	if err != nil {
		l.Error("list_products_failed", "status", 500, "reason", "cannot build nav", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot build nav")
	}

	l.Info("list_products_success")
	return c.Render(http.StatusOK, "product/list", echo.Map{
		"Nav":            nav,
		"Products":       productPage.Items,
		"SortField":      sortField,
		"SortDir":        sortDir,
		"ReverseSortDir": reverseSortDir,
		"CurrentPage":    page,
		"TotalPages":     productPage.TotalPages,
	})
}

func (h *ProductHandler) CreateForm(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_form")

	nav, err := h.Nav.Build(ctx, auth.Username(c))
	if err != nil {
		l.Error("create_form_failed", "status", 500, "reason", "cannot build nav", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot build nav")
	}

	return c.Render(http.StatusOK, "product/create", echo.Map{
		"Nav":     nav,
		"Product": transport.ProductDto{},
	})
}

// Create persists a new product. The uploaded file contributes only its
// original filename, and every created product starts activated.
func (h *ProductHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var dto transport.ProductDto
	if err := c.Bind(&dto); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "invalid form", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if file, err := c.FormFile(AvatarField); err == nil && file.Filename != "" {
		dto.Avatar = file.Filename
	}
	dto.Activated = true

	saved, err := h.Svc.Save(ctx, dto)
	if err != nil {
		l.Error("create_product_failed", "status", 500, "reason", "cannot save product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save product")
	}

	h.publish(c, map[string]any{
		"type":      "product_created",
		"productID": saved.ID,
		"name":      saved.Name,
	})

	l.Info("create_product_success", "product_id", saved.ID)
	return c.Redirect(http.StatusFound, "/product/list")
}

func (h *ProductHandler) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.detail")

	id, err := parseID(c)
	if err != nil {
		l.Warn("product_detail_failed", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	product, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("product_detail_failed", "status", 404, "reason", "product not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("product_detail_failed", "status", 500, "reason", "cannot get product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	nav, err := h.Nav.Build(ctx, auth.Username(c))
	if err != nil {
		l.Error("product_detail_failed", "status", 500, "reason", "cannot build nav", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot build nav")
	}

	return c.Render(http.StatusOK, "product/detail", echo.Map{
		"Nav":     nav,
		"Product": product,
	})
}

func (h *ProductHandler) EditForm(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.edit_form")

	id, err := parseID(c)
	if err != nil {
		l.Warn("edit_form_failed", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	product, err := h.Svc.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("edit_form_failed", "status", 404, "reason", "product not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("edit_form_failed", "status", 500, "reason", "cannot get product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	nav, err := h.Nav.Build(ctx, auth.Username(c))
	if err != nil {
		l.Error("edit_form_failed", "status", 500, "reason", "cannot build nav", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot build nav")
	}

	return c.Render(http.StatusOK, "product/edit", echo.Map{
		"Nav":     nav,
		"Product": product,
	})
}

// Edit updates a product. Attaching a file replaces the avatar with the
// file's original name; without one the stored avatar stays as it is.
func (h *ProductHandler) Edit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.edit")

	var dto transport.ProductDto
	if err := c.Bind(&dto); err != nil {
		l.Warn("edit_product_failed", "status", 400, "reason", "invalid form", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if file, err := c.FormFile(AvatarField); err == nil && file.Filename != "" {
		dto.Avatar = file.Filename
	} else {
		existing, err := h.Svc.FindByID(ctx, dto.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				l.Warn("edit_product_failed", "status", 404, "reason", "product not found", "error", err)
				return echo.NewHTTPError(http.StatusNotFound, "product not found")
			}
			l.Error("edit_product_failed", "status", 500, "reason", "cannot get product", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
		}
		dto.Avatar = existing.Avatar
	}

	saved, err := h.Svc.Save(ctx, dto)
	if err != nil {
		l.Error("edit_product_failed", "status", 500, "reason", "cannot save product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save product")
	}

	h.publish(c, map[string]any{
		"type":      "product_updated",
		"productID": saved.ID,
		"name":      saved.Name,
	})

	l.Info("edit_product_success", "product_id", saved.ID)
	return c.Redirect(http.StatusFound, fmt.Sprintf("/product/edit/%d", saved.ID))
}

func (h *ProductHandler) Remove(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.remove")

	id, err := parseID(c)
	if err != nil {
		l.Warn("remove_product_failed", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	if err := h.Svc.Remove(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("remove_product_failed", "status", 404, "reason", "product not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("remove_product_failed", "status", 500, "reason", "cannot delete product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product")
	}

	h.publish(c, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	l.Info("remove_product_success", "product_id", id)
	return c.Redirect(http.StatusFound, "/product/list")
}

func (h *ProductHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	term := strings.ToLower(c.QueryParam("searchTerm"))
	products, err := h.Svc.FindByNameContaining(ctx, term)
	if err != nil {
		l.Error("search_products_failed", "status", 500, "reason", "cannot search products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot search products")
	}

	nav, err := h.Nav.Build(ctx, auth.Username(c))
	if err != nil {
		l.Error("search_products_failed", "status", 500, "reason", "cannot build nav", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot build nav")
	}

	l.Info("search_products_success", "term", term, "hits", len(products))
	return c.Render(http.StatusOK, "product/search", echo.Map{
		"Nav":               nav,
		"ProductListSearch": products,
	})
}

func (h *ProductHandler) SearchByCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search_by_category")

	id, err := parseID(c)
	if err != nil {
		l.Warn("search_by_category_failed", "status", 400, "reason", "id is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	category, err := h.Categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("search_by_category_failed", "status", 404, "reason", "category not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "category not found")
		}
		l.Error("search_by_category_failed", "status", 500, "reason", "cannot get category", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get category")
	}

	products, err := h.Svc.FindByCategory(ctx, *category)
	if err != nil {
		l.Error("search_by_category_failed", "status", 500, "reason", "cannot search products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot search products")
	}

	nav, err := h.Nav.Build(ctx, auth.Username(c))
	if err != nil {
		l.Error("search_by_category_failed", "status", 500, "reason", "cannot build nav", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot build nav")
	}

	return c.Render(http.StatusOK, "product/search", echo.Map{
		"Nav":               nav,
		"ProductListSearch": products,
	})
}
