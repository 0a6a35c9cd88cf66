package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-quoteform/pkg/model"
	"github.com/goliatone/go-quoteform/pkg/render"
	rendertemplate "github.com/goliatone/go-quoteform/pkg/render/template"
	gotemplate "github.com/goliatone/go-quoteform/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the quote form markup: category tabs, visibility-toggled
// panels, per-field error slots, and the status element.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the form template against the registry and per-request
// options. The active category defaults to the definition's.
func (r *Renderer) Render(ctx context.Context, form *model.Registry, options render.RenderOptions) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if form == nil {
		return nil, fmt.Errorf("html renderer: form registry is nil")
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", buildContext(form, options))
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func buildContext(form *model.Registry, options render.RenderOptions) map[string]any {
	active := options.ActiveCategory
	if !form.HasCategory(active) {
		active = form.DefaultCategory()
	}

	method := strings.ToUpper(strings.TrimSpace(options.Method))
	if method == "" {
		method = "POST"
	}

	categories := make([]map[string]any, 0, len(form.Categories()))
	for _, info := range form.Categories() {
		categories = append(categories, map[string]any{
			"key":    string(info.Key),
			"label":  info.Label,
			"active": info.Key == active,
		})
	}

	shared := make([]map[string]any, 0)
	panelFields := make(map[model.Category][]map[string]any)
	for _, field := range form.Fields() {
		fieldCtx := buildFieldContext(field, options)
		if field.Category == "" {
			shared = append(shared, fieldCtx)
			continue
		}
		panelFields[field.Category] = append(panelFields[field.Category], fieldCtx)
	}

	panels := make([]map[string]any, 0, len(form.Categories()))
	for _, info := range form.Categories() {
		fields := panelFields[info.Key]
		if len(fields) == 0 {
			continue
		}
		panels = append(panels, map[string]any{
			"key":    string(info.Key),
			"active": info.Key == active,
			"fields": fields,
		})
	}

	return map[string]any{
		"form": map[string]any{
			"key":    form.Definition().Key,
			"title":  form.Title(active),
			"action": options.Action,
			"method": method,
		},
		"active_category": string(active),
		"categories":      categories,
		"shared_fields":   shared,
		"panels":          panels,
		"status": map[string]any{
			"message": options.StatusMessage,
			"level":   options.StatusLevel,
		},
		"chrome": map[string]any{
			"form":    string(ClassForm),
			"tabs":    string(ClassTabs),
			"tab":     string(ClassTab),
			"panel":   string(ClassPanel),
			"field":   string(ClassField),
			"error":   string(ClassError),
			"invalid": string(ClassInvalid),
			"status":  string(ClassStatus),
			"actions": string(ClassActions),
		},
		"theme": buildThemeContext(options.Theme),
	}
}

func buildFieldContext(field model.Field, options render.RenderOptions) map[string]any {
	inputType := field.InputType
	if inputType == "" {
		inputType = "text"
	}

	value := ""
	if raw, ok := options.Values[string(field.Name)]; ok && raw != nil {
		value = fmt.Sprint(raw)
	}

	message := ""
	if msgs := options.Errors[string(field.Name)]; len(msgs) > 0 {
		message = msgs[0]
	}

	return map[string]any{
		"name":        string(field.Name),
		"label":       field.Label,
		"placeholder": field.Placeholder,
		"input_type":  inputType,
		"required":    field.Required,
		"value":       value,
		"error":       message,
		"has_error":   message != "",
	}
}
