package builder

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-quoteform/pkg/model"
	pkgopenapi "github.com/goliatone/go-quoteform/pkg/openapi"
)

// Builder implements pkgopenapi.Builder using kin-openapi. It reads an
// operation's JSON request body schema and lifts each property into a form
// field, honoring the x-quoteform-* vendor extensions for the semantics plain
// JSON Schema cannot carry.
type Builder struct {
	options pkgopenapi.BuilderOptions
}

var _ pkgopenapi.Builder = (*Builder)(nil)

// New constructs a Builder with the given options.
func New(options pkgopenapi.BuilderOptions) pkgopenapi.Builder {
	return &Builder{options: options}
}

// Definition extracts the request body schema of the named operation and
// converts it into a form definition.
func (b *Builder) Definition(ctx context.Context, doc pkgopenapi.Document, operationID string) (model.Definition, error) {
	if err := ctx.Err(); err != nil {
		return model.Definition{}, err
	}
	if operationID == "" {
		return model.Definition{}, errors.New("openapi builder: operation id is required")
	}

	raw := doc.Raw()
	if len(raw) == 0 {
		return model.Definition{}, errors.New("openapi builder: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: b.options.ResolveReferences,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return model.Definition{}, fmt.Errorf("openapi builder: load document: %w", err)
	}

	if b.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return model.Definition{}, fmt.Errorf("openapi builder: validate: %w", err)
		}
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return model.Definition{}, fmt.Errorf("openapi builder: operation %q not found", operationID)
	}

	body, err := b.requestSchema(operation)
	if err != nil {
		return model.Definition{}, err
	}

	def := model.Definition{
		Key:   operationID,
		Title: operation.Summary,
	}

	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, err := buildField(name, ref.Value, required[name])
		if err != nil {
			return model.Definition{}, err
		}
		def.Fields = append(def.Fields, field)
	}

	def.Categories = collectCategories(operation, def.Fields)
	if def.DefaultCategory == "" && len(def.Categories) > 0 {
		def.DefaultCategory = def.Categories[0].Key
	}

	return def, nil
}

func (b *Builder) requestSchema(operation *openapi3.Operation) (*openapi3.Schema, error) {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil, errors.New("openapi builder: operation has no request body")
	}

	contentType := b.options.ContentType
	if contentType == "" {
		contentType = "application/json"
	}

	media := operation.RequestBody.Value.Content[contentType]
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("openapi builder: request body has no %s schema", contentType)
	}
	return media.Schema.Value, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func buildField(name string, schema *openapi3.Schema, required bool) (model.Field, error) {
	field := model.Field{
		Name:        model.Name(name),
		Label:       schema.Title,
		Placeholder: schema.Description,
		Required:    required,
		InputType:   inputTypeFor(schema),
	}

	if rule := extString(schema.Extensions, pkgopenapi.ExtensionRule); rule != "" {
		field.Rule = model.RuleKind(rule)
	} else {
		field.Rule = inferRule(schema)
	}
	field.RuleParam = extInt(schema.Extensions, pkgopenapi.ExtensionRuleParam)
	field.Category = model.Category(extString(schema.Extensions, pkgopenapi.ExtensionCategory))
	field.Message = extString(schema.Extensions, pkgopenapi.ExtensionMessage)
	field.Normalize = model.Normalize(extString(schema.Extensions, pkgopenapi.ExtensionNormalize))
	field.FreeText = extBool(schema.Extensions, pkgopenapi.ExtensionFreeText)

	return field, nil
}

func inputTypeFor(schema *openapi3.Schema) string {
	switch schema.Format {
	case "email":
		return "email"
	case "date":
		return "date"
	case "textarea":
		return "textarea"
	}
	return ""
}

// inferRule maps standard JSON Schema formats to rule kinds when no explicit
// extension is present.
func inferRule(schema *openapi3.Schema) model.RuleKind {
	switch schema.Format {
	case "email":
		return model.RuleEmail
	default:
		return model.RuleNone
	}
}

// collectCategories reads the operation-level category table when present and
// synthesizes entries for any field category it omits. Labels default to the
// key with the first letter upcased.
func collectCategories(operation *openapi3.Operation, fields []model.Field) []model.CategoryInfo {
	var out []model.CategoryInfo
	seen := make(map[model.Category]bool)

	if table, ok := operation.Extensions[pkgopenapi.ExtensionCategory].(map[string]any); ok {
		keys := make([]string, 0, len(table))
		for key := range table {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			label, _ := table[key].(string)
			out = append(out, model.CategoryInfo{Key: model.Category(key), Label: label})
			seen[model.Category(key)] = true
		}
	}

	for _, field := range fields {
		if field.Category == "" || seen[field.Category] {
			continue
		}
		seen[field.Category] = true
		out = append(out, model.CategoryInfo{
			Key:   field.Category,
			Label: upperFirst(string(field.Category)),
		})
	}
	return out
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func extString(ext map[string]any, key string) string {
	if len(ext) == 0 {
		return ""
	}
	value, _ := ext[key].(string)
	return value
}

func extInt(ext map[string]any, key string) int {
	if len(ext) == 0 {
		return 0
	}
	switch value := ext[key].(type) {
	case float64:
		return int(value)
	case int:
		return value
	}
	return 0
}

func extBool(ext map[string]any, key string) bool {
	if len(ext) == 0 {
		return false
	}
	value, _ := ext[key].(bool)
	return value
}
