package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-shop/internal/app"
	"github.com/MKhiriev/go-shop/internal/service"
	"github.com/MKhiriev/go-shop/internal/session"
	"github.com/MKhiriev/go-shop/internal/validators"
	"github.com/MKhiriev/go-shop/models"
)

func (h *Handler) getLogin(w http.ResponseWriter, r *http.Request) error {
	return h.render(w, r, http.StatusOK, viewLogin, page{Title: "Login", Data: models.LoginForm{}})
}

func (h *Handler) postLogin(w http.ResponseWriter, r *http.Request) error {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		return ErrNoSession
	}

	form := models.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.services.AuthService.Login(r.Context(), form)
	if err != nil {
		msg, ok := formErrorMessage(err)
		if !ok {
			return err
		}
		form.Password = ""
		return h.render(w, r, http.StatusUnprocessableEntity, viewLogin, page{Title: "Login", ErrorMessage: msg, Data: form})
	}

	returnTo, _ := sess.Pop(returnToKey)
	if err = h.sessions.Regenerate(sess); err != nil {
		return err
	}
	sess.LogIn(user.UserID)

	return redirect(w, r, safeReturnTo(returnTo))
}

func (h *Handler) getSignup(w http.ResponseWriter, r *http.Request) error {
	return h.render(w, r, http.StatusOK, viewSignup, page{Title: "Signup", Data: models.SignupForm{}})
}

func (h *Handler) postSignup(w http.ResponseWriter, r *http.Request) error {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		return ErrNoSession
	}

	form := models.SignupForm{
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}

	if _, err := h.services.AuthService.Signup(r.Context(), form); err != nil {
		msg, ok := formErrorMessage(err)
		if !ok {
			return err
		}
		form.Password, form.ConfirmPassword = "", ""
		return h.render(w, r, http.StatusUnprocessableEntity, viewSignup, page{Title: "Signup", ErrorMessage: msg, Data: form})
	}

	sess.AddFlash(session.FlashInfo, app.MsgSignedUp)
	return redirect(w, r, "/login")
}

func (h *Handler) postLogout(w http.ResponseWriter, r *http.Request) error {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		return ErrNoSession
	}

	h.sessions.Destroy(sess)
	return redirect(w, r, "/")
}

// formErrorMessage returns the message shown next to a rejected form, or
// false when err is not caused by the user's input.
func formErrorMessage(err error) (string, bool) {
	if msg, ok := validators.UserMessage(err); ok {
		return msg, true
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return app.MsgInvalidCredentials, true
	case errors.Is(err, service.ErrEmailTaken):
		return app.MsgEmailTaken, true
	case errors.Is(err, service.ErrInvalidDataProvided):
		return app.MsgInvalidForm, true
	}
	return "", false
}

// safeReturnTo only allows local paths as a redirect target.
func safeReturnTo(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
