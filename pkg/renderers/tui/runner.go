package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-quoteform/pkg/engine"
	"github.com/goliatone/go-quoteform/pkg/model"
	"github.com/goliatone/go-quoteform/pkg/validation"
)

// Runner walks an engine's visible fields as terminal prompts: category
// selection first, then one prompt per field with inline rule feedback, and a
// final confirmation before Submit. The same engine instance backs the whole
// session, so cross-field rules and payload assembly behave exactly as on any
// other surface.
type Runner struct {
	engine        *engine.Engine
	driver        PromptDriver
	theme         Theme
	confirmPrompt string
	skipConfirm   bool
}

// NewRunner constructs a runner with defaults (survey driver, confirmation on).
func NewRunner(eng *engine.Engine, options ...Option) (*Runner, error) {
	if eng == nil {
		return nil, errors.New("tui: engine is required")
	}

	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Runner{
		engine:        eng,
		driver:        driver,
		confirmPrompt: "Submeter o pedido?",
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		return nil, ErrNoDriver
	}
	return r, nil
}

// Run executes one interactive session: pick a category, fill every visible
// field, confirm, submit. Validation failures that only surface at submit
// time (cross-field date rules) re-prompt the offending fields and retry.
func (r *Runner) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}

	if err := r.selectCategory(ctx); err != nil {
		return err
	}

	if title := r.engine.Title(); title != "" {
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+title); err != nil {
			return err
		}
	}

	for _, field := range r.engine.VisibleFields() {
		if err := r.promptField(ctx, field); err != nil {
			return err
		}
	}

	return r.submit(ctx)
}

func (r *Runner) selectCategory(ctx context.Context) error {
	categories := r.engine.Registry().Categories()
	if len(categories) < 2 {
		return nil
	}

	labels := make([]string, 0, len(categories))
	defaultIndex := 0
	for i, info := range categories {
		labels = append(labels, info.Label)
		if info.Key == r.engine.ActiveCategory() {
			defaultIndex = i
		}
	}

	choice, err := r.driver.Select(ctx, SelectConfig{
		Message:      r.theme.PromptPrefix + "Tipo de seguro",
		Options:      labels,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return err
	}
	if choice >= 0 && choice < len(categories) {
		r.engine.SetActiveCategory(categories[choice].Key)
	}
	return nil
}

func (r *Runner) promptField(ctx context.Context, field model.Field) error {
	message := r.theme.PromptPrefix + promptLabel(field)
	current := r.engine.Value(field.Name)
	validate := r.fieldValidator(field)

	var response string
	var err error
	if field.InputType == "textarea" {
		response, err = r.driver.TextArea(ctx, TextAreaConfig{
			Message:   message,
			Default:   current,
			Help:      field.Placeholder,
			Validator: validate,
		})
	} else {
		response, err = r.driver.Input(ctx, InputConfig{
			Message:     message,
			Default:     current,
			Help:        field.Placeholder,
			Placeholder: field.Placeholder,
			Validator:   validate,
		})
	}
	if err != nil {
		return err
	}
	return r.engine.SetValue(field.Name, response)
}

// fieldValidator mirrors the engine's per-field checks so feedback lands
// inline while typing instead of after submit.
func (r *Runner) fieldValidator(field model.Field) func(string) error {
	rule, err := validation.ForKind(field.Rule, field.RuleParam)
	if err != nil {
		rule = nil
	}
	required := r.engine.Registry().RequiredMessage()

	return func(input string) error {
		value := strings.TrimSpace(input)
		if value == "" {
			if field.Required {
				return errors.New(required)
			}
			return nil
		}
		if rule != nil && !rule(value, time.Now()) {
			return errors.New(invalidMessage(field))
		}
		return nil
	}
}

func (r *Runner) submit(ctx context.Context) error {
	if !r.skipConfirm {
		ok, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: r.theme.PromptPrefix + r.confirmPrompt,
			Default: true,
		})
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	for {
		state, err := r.engine.Submit(ctx)
		if err != nil {
			r.reportStatus(ctx)
			return err
		}

		switch state {
		case engine.StateSuccess:
			r.reportStatus(ctx)
			return nil
		case engine.StateIdle:
			// Cross-field rules only fail here; re-prompt what they flagged.
			if err := r.reprompt(ctx); err != nil {
				return err
			}
		default:
			return fmt.Errorf("tui: unexpected submit state %s", state)
		}
	}
}

func (r *Runner) reprompt(ctx context.Context) error {
	presenter, ok := r.engine.Presenter().(*engine.MemoryPresenter)
	if !ok {
		return errors.New("tui: cannot recover field errors from presenter")
	}

	for _, field := range r.engine.VisibleFields() {
		message := presenter.ErrorFor(field.Name)
		if message == "" {
			continue
		}
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
			return err
		}
		if err := r.promptField(ctx, field); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) reportStatus(ctx context.Context) {
	presenter, ok := r.engine.Presenter().(*engine.MemoryPresenter)
	if !ok {
		return
	}
	message, status := presenter.Status()
	if message == "" {
		return
	}
	prefix := r.theme.InfoPrefix
	if status == engine.StatusError {
		prefix = r.theme.ErrorPrefix
	}
	_ = r.driver.Info(ctx, prefix+message)
}

func promptLabel(field model.Field) string {
	label := field.Label
	if label == "" {
		label = string(field.Name)
	}
	if field.Required {
		label += " *"
	}
	return label
}

func invalidMessage(field model.Field) string {
	if field.LiveMessage != "" {
		return field.LiveMessage
	}
	if field.Message != "" {
		return field.Message
	}
	return model.DefaultInvalidMessage
}
