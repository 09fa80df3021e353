package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path"

	"github.com/MKhiriev/go-shop/internal/session"
	"github.com/MKhiriev/go-shop/internal/utils"
	"github.com/MKhiriev/go-shop/models"
)

//go:embed views
var viewsFS embed.FS

// View names, relative to the views directory without the extension.
const (
	viewNotFound      = "404"
	viewServerError   = "500"
	viewStatus        = "status"
	viewShopIndex     = "shop/index"
	viewProductList   = "shop/product-list"
	viewProductDetail = "shop/product-detail"
	viewAdminProducts = "admin/products"
	viewEditProduct   = "admin/edit-product"
	viewLogin         = "auth/login"
	viewSignup        = "auth/signup"
)

var viewNames = []string{
	viewNotFound, viewServerError, viewStatus,
	viewShopIndex, viewProductList, viewProductDetail,
	viewAdminProducts, viewEditProduct,
	viewLogin, viewSignup,
}

// renderer holds one template set per view, each parsed together with the
// shared layout.
type renderer struct {
	views map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	views := make(map[string]*template.Template, len(viewNames))
	for _, name := range viewNames {
		t, err := template.New(path.Base(name)).ParseFS(viewsFS, "views/layout.html", "views/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("error parsing view %q: %w", name, err)
		}
		views[name] = t
	}

	return &renderer{views: views}, nil
}

func (v *renderer) execute(w io.Writer, name string, data any) error {
	t, ok := v.views[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// page is the data passed to every view.
type page struct {
	locals

	Title        string
	Path         string
	User         *models.User
	ErrorMessage string
	InfoMessages []string

	// Data is the view specific payload.
	Data any
}

// render executes the view into a buffer and writes it with status.
// Template locals, the resolved user and pending flash messages are taken
// from the request.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, p page) error {
	ctx := r.Context()

	p.locals, _ = localsFromContext(ctx)
	if p.Path == "" {
		p.Path = r.URL.Path
	}
	if user, ok := utils.UserFromContext(ctx); ok {
		p.User = user
	}
	if sess, ok := session.FromContext(ctx); ok {
		if p.ErrorMessage == "" {
			if msgs := sess.Flashes(session.FlashError); len(msgs) > 0 {
				p.ErrorMessage = msgs[0]
			}
		}
		p.InfoMessages = append(p.InfoMessages, sess.Flashes(session.FlashInfo)...)
	}

	var buf bytes.Buffer
	if err := h.views.execute(&buf, name, p); err != nil {
		return fmt.Errorf("error rendering view %q: %w", name, err)
	}
	if err := session.CommitPending(ctx); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// redirect commits pending session changes and sends a 302 to target.
func redirect(w http.ResponseWriter, r *http.Request, target string) error {
	if err := session.CommitPending(r.Context()); err != nil {
		return err
	}
	http.Redirect(w, r, target, http.StatusFound)
	return nil
}
