package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures how a component is patched into the page of a
// datastar request.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the component replaces.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

type templResponse struct {
	component templ.Component
	options   []TemplOption
	status    int
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ renders component as an HTML page, or for a datastar request as an
// element patch configured by opts.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts}
}

// TemplStatus is Templ with an explicit status for the HTML page.
func TemplStatus(status int, component templ.Component) Response {
	return templResponse{component: component, status: status}
}
