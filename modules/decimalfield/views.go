package decimalfield

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/didley/decimal-input/svc/preset"
)

// StatusElementID is the id of the element POST /field patches.
const StatusElementID = "decimal-status"

// PageParams contains data for rendering the field page.
type PageParams struct {
	Title    string
	Action   string
	Presets  []preset.Preset
	Selected string
}

// StatusParams contains data for rendering the status line under the field.
type StatusParams struct {
	Valid   bool
	Value   string
	Message string
}

// Views renders the module's HTML. Any nil view falls back to the
// built-in one.
type Views struct {
	Page   func(PageParams) templ.Component
	Status func(StatusParams) templ.Component
}

func (v Views) withDefaults() Views {
	if v.Page == nil {
		v.Page = Page
	}
	if v.Status == nil {
		v.Status = Status
	}
	return v
}

// Page is the built-in page: one text input bound to the "value" signal
// that posts to the field endpoint on every input event.
func Page(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		signals, err := json.Marshal(map[string]any{
			"value":    "",
			"accepted": "",
			"preset":   p.Selected,
			"valid":    true,
			"number":   nil,
			"error":    "",
		})
		if err != nil {
			return err
		}

		action, err := postAction(p.Action)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%[1]s</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"></script>
</head>
<body>
<main data-signals="%[2]s">
<h1>%[1]s</h1>
<label for="decimal-value">Value</label>
<input id="decimal-value" inputmode="decimal" autocomplete="off" data-bind-value data-on-input__debounce.100ms="%[3]s">
`, templ.EscapeString(p.Title), templ.EscapeString(string(signals)), templ.EscapeString(action)); err != nil {
			return err
		}

		if len(p.Presets) > 0 {
			if _, err := io.WriteString(w, "<select data-bind-preset>\n"); err != nil {
				return err
			}
			for _, pr := range p.Presets {
				selected := ""
				if pr.Name == p.Selected {
					selected = " selected"
				}
				if _, err := fmt.Fprintf(w, "<option value=\"%s\"%s>%s</option>\n",
					templ.EscapeString(pr.Name), selected, templ.EscapeString(presetLabel(pr))); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</select>\n"); err != nil {
				return err
			}
		}

		if err := Status(StatusParams{Valid: true}).Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n</main>\n</body>\n</html>\n")
		return err
	})
}

// Status is the built-in status line.
func Status(p StatusParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		class, text := "valid", p.Value
		if !p.Valid {
			class, text = "invalid", p.Message
		}
		_, err := fmt.Fprintf(w, `<p id="%s" class="%s">%s</p>`, StatusElementID, class, templ.EscapeString(text))
		return err
	})
}

func presetLabel(p preset.Preset) string {
	if p.Description == "" {
		return p.Name
	}
	return p.Name + " - " + p.Description
}

// postAction returns the datastar expression posting to url. The url is
// written as a JSON string literal, so quotes in it cannot end the
// expression.
func postAction(url string) (string, error) {
	quoted, err := templ.JSONString(url)
	if err != nil {
		return "", err
	}
	return "@post(" + quoted + ")", nil
}
