package validation

import (
	"errors"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/saad12354/site-stock-app/pkg/inventory"
)

var (
	schemaOnce sync.Once
	schemaDoc  *openapi3.Schema
)

// OpenAPISchema returns the rule table expressed as an OpenAPI 3 object
// schema. Catalogs become fixed-length arrays of entry objects; omitted
// catalogs are allowed so partial documents can be layered over defaults.
// The returned schema is shared and must not be modified.
func OpenAPISchema() *openapi3.Schema {
	schemaOnce.Do(func() {
		schemaDoc = buildSchema(rules)
	})
	return schemaDoc
}

func buildSchema(list []Rule) *openapi3.Schema {
	root := openapi3.NewObjectSchema()
	root.Title = "Inventory"

	for _, rule := range list {
		parts := strings.Split(rule.Path, ".")
		if len(parts) == 1 {
			root.WithProperty(rule.Path, leafSchema(rule))
			if rule.Required {
				root.Required = append(root.Required, rule.Path)
			}
			continue
		}

		name, fieldName := parts[0], parts[2]
		if _, ok := root.Properties[name]; !ok {
			size := int64(len(mustKeys(inventory.Catalog(name))))
			items := openapi3.NewArraySchema().
				WithItems(openapi3.NewObjectSchema()).
				WithMinItems(size).
				WithMaxItems(size)
			root.WithProperty(name, items)
		}
		entry := root.Properties[name].Value.Items.Value
		entry.WithProperty(fieldName, leafSchema(rule))
	}
	return root
}

func leafSchema(rule Rule) *openapi3.Schema {
	var s *openapi3.Schema
	switch rule.Type {
	case FieldTypeInteger:
		s = openapi3.NewIntegerSchema().WithMin(float64(rule.Min)).WithMax(float64(rule.Max))
	case FieldTypeNumber:
		s = openapi3.NewFloat64Schema().WithMin(float64(rule.Min)).WithMax(float64(rule.Max))
	case FieldTypeBoolean:
		s = openapi3.NewBoolSchema()
	default:
		s = openapi3.NewStringSchema()
		if rule.Required {
			s.WithMinLength(1)
		}
		if rule.MaxLength > 0 {
			s.WithMaxLength(int64(rule.MaxLength))
		}
		if len(rule.Enum) > 0 {
			values := make([]any, len(rule.Enum))
			for i, v := range rule.Enum {
				values[i] = v
			}
			s.WithEnum(values...)
		}
	}
	s.Description = rule.Label
	return s
}

func mustKeys(c inventory.Catalog) []string {
	keys, err := inventory.Keys(c)
	if err != nil {
		return nil
	}
	return keys
}

// ValidateDocument checks a raw decoded document (JSON numbers as float64,
// objects as map[string]any) against OpenAPISchema before it is decoded into
// an aggregate. It catches type errors that Validate cannot see once values
// are already typed.
func ValidateDocument(doc any) Result {
	err := OpenAPISchema().VisitJSON(doc, openapi3.MultiErrors())
	if err == nil {
		return Result{Valid: true}
	}
	issues := collectSchemaErrors(err, nil)
	if len(issues) == 0 {
		issues = []Issue{{Rule: RuleType, Message: strings.TrimSpace(err.Error())}}
	}
	return Result{Valid: false, Issues: issues}
}

func collectSchemaErrors(err error, out []Issue) []Issue {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		for _, inner := range multi {
			out = collectSchemaErrors(inner, out)
		}
		return out
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		return append(out, Issue{
			Field:   strings.Join(schemaErr.JSONPointer(), "."),
			Rule:    ruleFromSchemaField(schemaErr.SchemaField),
			Message: strings.TrimSpace(schemaErr.Reason),
		})
	}

	return append(out, Issue{Rule: RuleType, Message: strings.TrimSpace(err.Error())})
}

func ruleFromSchemaField(field string) string {
	switch field {
	case "minimum":
		return RuleMin
	case "maximum":
		return RuleMax
	case "minLength", "required":
		return RuleRequired
	case "maxLength":
		return RuleMaxLength
	case "enum":
		return RuleEnum
	case "minItems", "maxItems":
		return RuleCatalog
	default:
		return RuleType
	}
}
