package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getIndex(w http.ResponseWriter, r *http.Request) error {
	products, err := h.services.ProductService.ListProducts(r.Context(), store.ProductFilter{})
	if err != nil {
		return err
	}

	return h.render(w, r, http.StatusOK, viewShopIndex, page{Title: "Shop", Data: products})
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) error {
	products, err := h.services.ProductService.ListProducts(r.Context(), store.ProductFilter{})
	if err != nil {
		return err
	}

	return h.render(w, r, http.StatusOK, viewProductList, page{Title: "All Products", Data: products})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) error {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil || productID <= 0 {
		return ErrNotFound
	}

	product, err := h.services.ProductService.GetProduct(r.Context(), productID)
	if err != nil {
		return err
	}

	return h.render(w, r, http.StatusOK, viewProductDetail, page{Title: product.Title, Path: "/products", Data: product})
}
