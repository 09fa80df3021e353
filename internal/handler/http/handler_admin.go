package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/internal/utils"
	"github.com/MKhiriev/go-shop/internal/validators"
	"github.com/MKhiriev/go-shop/models"
)

// productInput is the add-product form as typed by the user.
type productInput struct {
	Title       string
	Price       string
	Description string
}

func (h *Handler) getAddProduct(w http.ResponseWriter, r *http.Request) error {
	return h.render(w, r, http.StatusOK, viewEditProduct, page{Title: "Add Product", Data: productInput{}})
}

func (h *Handler) postAddProduct(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	user, ok := utils.UserFromContext(ctx)
	if !ok {
		return ErrNoUser
	}

	// a stored image is only kept once a product references it
	upload, hasUpload := utils.UploadFromContext(ctx)
	created := false
	defer func() {
		if !hasUpload || created {
			return
		}
		if err := h.uploads.Remove(upload.Path); err != nil {
			logger.FromRequest(r).Err(err).Str("path", upload.Path).Msg("error removing rejected upload")
		}
	}()

	input := productInput{
		Title:       r.PostFormValue("title"),
		Price:       r.PostFormValue("price"),
		Description: r.PostFormValue("description"),
	}
	rejected := func(msg string) error {
		return h.render(w, r, http.StatusUnprocessableEntity, viewEditProduct, page{Title: "Add Product", ErrorMessage: msg, Data: input})
	}

	price, err := validators.ParsePrice(input.Price)
	if err != nil {
		msg, _ := validators.UserMessage(err)
		return rejected(msg)
	}

	form := models.ProductForm{
		Title:       input.Title,
		Price:       price,
		Description: input.Description,
	}
	if hasUpload {
		form.ImagePath = upload.Path
	}

	if _, err = h.services.ProductService.CreateProduct(ctx, user.UserID, form); err != nil {
		msg, ok := formErrorMessage(err)
		if !ok {
			return err
		}
		return rejected(msg)
	}
	created = true

	return redirect(w, r, "/admin/products")
}

func (h *Handler) getAdminProducts(w http.ResponseWriter, r *http.Request) error {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		return ErrNoUser
	}

	products, err := h.services.ProductService.ListProducts(r.Context(), store.ProductFilter{UserID: user.UserID})
	if err != nil {
		return err
	}

	return h.render(w, r, http.StatusOK, viewAdminProducts, page{Title: "Admin Products", Data: products})
}

func (h *Handler) postDeleteProduct(w http.ResponseWriter, r *http.Request) error {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		return ErrNoUser
	}

	productID, err := strconv.ParseInt(r.PostFormValue("productId"), 10, 64)
	if err != nil || productID <= 0 {
		return ErrNotFound
	}

	if err = h.services.ProductService.DeleteProduct(r.Context(), productID, user.UserID); err != nil {
		return err
	}

	return redirect(w, r, "/admin/products")
}
