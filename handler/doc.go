// Package handler turns typed request handlers into http.HandlerFunc.
//
// A HandlerFunc receives a Context and a request struct filled by binders
// from pkg/binder, and returns a Response: JSON for API clients, Templ for
// HTML pages and datastar element patches, or DataStar for signal and
// element patches streamed as server-sent events.
//
//	type validateRequest struct {
//		Value string `query:"value"`
//	}
//
//	func validate(ctx handler.Context, req validateRequest) handler.Response {
//		return handler.JSON(decimalinput.Parse(req.Value))
//	}
//
//	r.Get("/validate", handler.Wrap(validate, handler.WithBinders(binder.Query())))
//
// Errors from binding and rendering, and errors passed to JSONError, are
// classified by Classify: validator.ValidationErrors become 422 with field
// details, binder failures 400 and HTTPError its own status.
package handler
