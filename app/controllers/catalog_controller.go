package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/collection"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// Index lists products, optionally paginated with ?page=&perPage=.
func (c *CatalogController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.All()
	if err != nil {
		fail(w, r, "list products", err)
		return
	}
	page, perPage := queryInt(r, "page", 1), queryInt(r, "perPage", 0)
	if perPage <= 0 {
		response.Success(w, products)
		return
	}
	response.Paginated(w, collection.Paginate(products, page, perPage), response.Pagination{
		Page: page, PerPage: perPage, Total: len(products),
	})
}

func (c *CatalogController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	p, found, err := c.catalog.ByID(id)
	if err != nil {
		fail(w, r, "show product", err)
		return
	}
	if !found {
		response.NotFound(w)
		return
	}
	response.Success(w, p)
}

// Search answers GET /api/products/search?q=.
func (c *CatalogController) Search(w http.ResponseWriter, r *http.Request) {
	hits, err := c.catalog.Search(r.URL.Query().Get("q"))
	if err != nil {
		fail(w, r, "search products", err)
		return
	}
	response.Success(w, hits)
}
