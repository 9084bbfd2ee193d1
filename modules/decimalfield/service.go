package decimalfield

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	decimalinput "github.com/didley/decimal-input"
	"github.com/didley/decimal-input/handler"
	"github.com/didley/decimal-input/pkg/binder"
	"github.com/didley/decimal-input/pkg/logger"
	"github.com/didley/decimal-input/pkg/sanitizer"
	"github.com/didley/decimal-input/pkg/validator"
	"github.com/didley/decimal-input/svc/preset"
)

// Log events of POST /field.
const (
	EventFieldAccepted = "decimal_field.accepted"
	EventFieldRejected = "decimal_field.rejected"
)

// Service exposes the decimal pipeline to forms over HTTP.
type Service struct {
	cfg     Config
	presets Presets
	views   Views
	log     *slog.Logger
}

// NewService returns the module. presets may be nil, in which case every
// preset name is unknown.
func NewService(cfg Config, presets Presets, views Views, log *slog.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		cfg:     cfg.withDefaults(),
		presets: presets,
		views:   views.withDefaults(),
		log:     log.With(logger.Component("decimalfield")),
	}
}

// Handle returns the module router:
//
//	GET  /          field page
//	GET  /validate  JSON result for a value and options
//	POST /field     datastar signal and element patches for a keystroke
//	GET  /presets   JSON list of presets
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrMethodNotAllowed).Render(w, r)
	})

	r.Get("/", handler.Wrap(s.page,
		handler.WithBinders(binder.Query()),
		handler.WithLogger(s.log),
	))
	r.Get("/validate", handler.Wrap(s.validate,
		handler.WithBinders(binder.Query()),
		handler.WithLogger(s.log),
	))
	r.Post("/field", handler.Wrap(s.field,
		handler.WithBinders(binder.Signals()),
		handler.WithLogger(s.log),
	))
	r.Get("/presets", handler.Wrap(s.listPresets, handler.WithLogger(s.log)))

	return r
}

type pageRequest struct {
	Preset string `query:"preset"`
}

func (s *Service) page(_ handler.Context, req pageRequest) handler.Response {
	list := s.presetList()

	selected := req.Preset
	if selected == "" && len(list) > 0 {
		selected = list[0].Name
	}

	return handler.Templ(s.views.Page(PageParams{
		Title:    s.cfg.Title,
		Action:   s.cfg.BasePath + "/field",
		Presets:  list,
		Selected: selected,
	}))
}

func (s *Service) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	if err := req.Validate(s.cfg.MaxInputLength); err != nil {
		return handler.JSONError(err)
	}

	opts, err := s.resolve(req.Preset, decimalinput.Options{Min: req.Min, Max: req.Max, Digits: req.Digits})
	if err != nil {
		return handler.JSONError(err)
	}

	result := decimalinput.Parse(req.Value, decimalinput.WithOptions(opts))

	var meta map[string]any
	if !result.Valid {
		if errs := validator.ExtractValidationErrors(decimalinput.Explain(req.Value, decimalinput.WithOptions(opts))); errs != nil {
			meta = map[string]any{"errors": errs.Map()}
		}
	}

	s.log.DebugContext(ctx, "value validated",
		logger.Input(req.Value, result.Valid),
		logger.Preset(req.Preset),
	)
	return handler.JSON(result, handler.WithMeta(meta))
}

func (s *Service) field(ctx handler.Context, sig FieldSignals) handler.Response {
	raw := sanitizer.RemoveControlChars(sig.Value)

	reject := func(message string) handler.Response {
		s.log.DebugContext(ctx, "keystroke rejected",
			logger.Event(EventFieldRejected),
			logger.Input(raw, false),
			logger.Preset(sig.Preset),
		)
		return handler.DataStar(
			FieldPatch{Value: sig.Accepted, Accepted: sig.Accepted, Error: message},
			handler.Patch(s.views.Status(StatusParams{Message: message})),
		)
	}

	if err := validator.Apply(validator.MaxLenString("value", raw, s.cfg.MaxInputLength)); err != nil {
		return reject(firstMessage(err))
	}

	opts, err := s.resolve(sig.Preset, decimalinput.Options{})
	if err != nil {
		return reject(firstMessage(err))
	}

	value, number, ok := decimalinput.Parse(raw, decimalinput.WithOptions(opts)).Get()
	if !ok {
		return reject(firstMessage(decimalinput.Explain(raw, decimalinput.WithOptions(opts))))
	}

	n := number.Float64()
	s.log.DebugContext(ctx, "keystroke accepted",
		logger.Event(EventFieldAccepted),
		logger.Input(raw, true),
		logger.Preset(sig.Preset),
	)
	return handler.DataStar(
		FieldPatch{Value: value, Accepted: value, Valid: true, Number: &n},
		handler.Patch(s.views.Status(StatusParams{Valid: true, Value: value})),
	)
}

func (s *Service) listPresets(handler.Context, struct{}) handler.Response {
	return handler.JSON(s.presetList())
}

func (s *Service) presetList() []preset.Preset {
	if s.presets == nil {
		return []preset.Preset{}
	}
	return s.presets.List()
}
