package contract

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// GenerateOperationID names the generation operation in the contract.
const GenerateOperationID = "generateJoke"

const hiddenExtension = "x-jokeform-hidden"

// Field describes one input of the form.
type Field struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Default     string   `json:"default,omitempty"`
	Required    bool     `json:"required,omitempty"`
	Hidden      bool     `json:"hidden,omitempty"`
}

// Form is the definition of the joke form derived from one operation.
type Form struct {
	OperationID string  `json:"operationId"`
	Method      string  `json:"method"`
	Path        string  `json:"path"`
	Fields      []Field `json:"fields"`
}

// Field returns the named field.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Options returns the enum values of the named field, or nil.
func (f Form) Options(name string) []string {
	field, ok := f.Field(name)
	if !ok {
		return nil
	}
	return append([]string(nil), field.Enum...)
}

// Default parses the embedded contract into the generation form.
func Default(ctx context.Context) (Form, error) {
	return Parse(ctx, embeddedDocument, GenerateOperationID)
}

// Load fetches src with loader and parses operationID out of it.
func Load(ctx context.Context, loader *Loader, src Source, operationID string) (Form, error) {
	if loader == nil {
		loader = NewLoader()
	}
	raw, err := loader.Load(ctx, src)
	if err != nil {
		return Form{}, err
	}
	return Parse(ctx, raw, operationID)
}

// Parse loads an OpenAPI 3 document and extracts the JSON request body of
// operationID into a Form. Fields are ordered as declared in the schema's
// required list first, then alphabetically.
func Parse(ctx context.Context, raw []byte, operationID string) (Form, error) {
	if len(raw) == 0 {
		return Form{}, errors.New("contract: document is empty")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return Form{}, fmt.Errorf("contract: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return Form{}, fmt.Errorf("contract: validate: %w", err)
	}

	method, path, op := findOperation(doc, operationID)
	if op == nil {
		return Form{}, fmt.Errorf("%w: %s", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(op)
	if schema == nil {
		return Form{}, fmt.Errorf("%w: %s", ErrNoRequestSchema, operationID)
	}

	return Form{
		OperationID: operationID,
		Method:      method,
		Path:        path,
		Fields:      buildFields(schema),
	}, nil
}

func findOperation(doc *openapi3.T, operationID string) (string, string, *openapi3.Operation) {
	if doc.Paths == nil {
		return "", "", nil
	}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return strings.ToUpper(method), path, op
			}
		}
	}
	return "", "", nil
}

func requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	mt := op.RequestBody.Value.Content.Get("application/json")
	if mt == nil || mt.Schema == nil {
		return nil
	}
	return mt.Schema.Value
}

func buildFields(schema *openapi3.Schema) []Field {
	required := make(map[string]int, len(schema.Required))
	for i, name := range schema.Required {
		required[name] = i
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, iok := required[names[i]]
		rj, jok := required[names[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return names[i] < names[j]
		}
	})

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value
		_, isRequired := required[name]
		fields = append(fields, Field{
			Name:        name,
			Label:       labelFor(name, prop.Title),
			Type:        schemaType(prop.Type),
			Description: prop.Description,
			Enum:        stringify(prop.Enum),
			Default:     stringValue(prop.Default),
			Required:    isRequired,
			Hidden:      isHidden(prop.Extensions),
		})
	}
	return fields
}

func labelFor(name, title string) string {
	if strings.TrimSpace(title) != "" {
		return title
	}
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return strings.Join(values, ",")
}

func stringify(values []any) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

func stringValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func isHidden(extensions map[string]any) bool {
	hidden, ok := extensions[hiddenExtension].(bool)
	return ok && hidden
}
