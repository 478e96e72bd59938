// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/claim-desk/models"
	"github.com/danielhkuo/claim-desk/registry"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html").Funcs(template.FuncMap{
		"ago":   func(t time.Time) string { return humanize.Time(t) },
		"money": func(v float64) string { return humanize.CommafWithDigits(v, 2) },
	}).ParseFS(templateFS, "templates/index.html"),
)

// Form field names
const (
	formPolicyNumber = "policy_number"
	formType         = "type"
	formAmount       = "amount"
	formDescription  = "description"
)

type FormHandler struct {
	reg *registry.Registry
}

func NewFormHandler(reg *registry.Registry) *FormHandler {
	return &FormHandler{reg: reg}
}

type pageData struct {
	Claims     []models.Claim
	Types      []string
	Draft      models.Draft
	Error      string
	ErrorField string
}

// ShowForm handles GET /
func (h *FormHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "", "")
}

// SubmitForm handles POST /form
// The posted fields replace the held draft, which is then submitted.
func (h *FormHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	policy := r.PostFormValue(formPolicyNumber)
	claimType := r.PostFormValue(formType)
	amount := models.NewAmount(r.PostFormValue(formAmount))
	description := r.PostFormValue(formDescription)
	_, err := h.reg.UpdateAndSubmitDraft(r.Context(), models.DraftUpdate{
		PolicyNumber: &policy,
		Type:         &claimType,
		Amount:       &amount,
		Description:  &description,
	})
	var ve *registry.ValidationError
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.As(err, &ve):
		h.render(w, r, http.StatusUnprocessableEntity, ve.Err.Error(), ve.Field)
	default:
		slog.Error("failed to submit claim form", "error", err)
		http.Error(w, "Failed to submit claim", http.StatusInternalServerError)
	}
}

func (h *FormHandler) render(w http.ResponseWriter, r *http.Request, status int, errMsg, errField string) {
	claims, err := h.reg.Claims(r.Context())
	if err != nil {
		slog.Error("failed to list claims", "error", err)
		http.Error(w, "Failed to list claims", http.StatusInternalServerError)
		return
	}

	data := pageData{
		Claims:     claims,
		Types:      h.reg.ClaimTypes(),
		Draft:      h.reg.Draft(),
		Error:      errMsg,
		ErrorField: errField,
	}

	// Render into a buffer so a template error can still become a 500
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		slog.Error("failed to render form", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
