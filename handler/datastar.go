package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// IsDataStar reports whether r was sent by the datastar client: it accepts
// an event stream, carries the "datastar" query parameter, or sets the
// Datastar-Request header.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	if r.Header.Get("Datastar-Request") == "true" {
		return true
	}
	return r.URL.Query().Has("datastar")
}

// ElementPatch is one component patched by a DataStar response.
type ElementPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch pairs a component with its patch options.
func Patch(component templ.Component, opts ...TemplOption) ElementPatch {
	return ElementPatch{Component: component, Options: opts}
}

type dataStarResponse struct {
	signals any
	patches []ElementPatch
}

func (d dataStarResponse) Render(w http.ResponseWriter, r *http.Request) error {
	sse := datastar.NewSSE(w, r)
	if d.signals != nil {
		data, err := json.Marshal(d.signals)
		if err != nil {
			return err
		}
		if err := sse.PatchSignals(data); err != nil {
			return err
		}
	}
	for _, p := range d.patches {
		if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
			return err
		}
	}
	return nil
}

// DataStar streams a signal patch, when signals is not nil, followed by the
// element patches in order.
func DataStar(signals any, patches ...ElementPatch) Response {
	return dataStarResponse{signals: signals, patches: patches}
}
