// Package statefile reads and writes inventory aggregates as YAML (JSON is
// accepted on read). Documents are layered over the default aggregate, so a
// file only needs the fields it sets; a catalog that is present replaces the
// whole default catalog.
package statefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/saad12354/site-stock-app/pkg/inventory"
	"github.com/saad12354/site-stock-app/pkg/validation"
)

var (
	// ErrEmpty is returned for a document with no content.
	ErrEmpty = errors.New("statefile: document is empty")
	// ErrNotObject is returned when the document root is not a mapping.
	ErrNotObject = errors.New("statefile: document root must be a mapping")
)

// Load reads path and decodes it. See Decode.
func Load(path string) (*inventory.State, validation.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, validation.Result{}, fmt.Errorf("statefile: read %s: %w", path, err)
	}
	state, result, err := Decode(data)
	if err != nil {
		return nil, result, fmt.Errorf("statefile: %s: %w", path, err)
	}
	return state, result, nil
}

// Decode parses data into an aggregate. The raw document is first checked
// against the validation schema; structural issues there (wrong types,
// unknown enum values, wrong catalog length) are reported in the result
// together with the rule-table issues of the decoded aggregate. Issues are
// advisory: a decodable document always yields a state.
func Decode(data []byte) (*inventory.State, validation.Result, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, validation.Result{}, ErrEmpty
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, validation.Result{}, fmt.Errorf("statefile: parse: %w", err)
	}
	doc, err := normalise(raw)
	if err != nil {
		return nil, validation.Result{}, err
	}
	docResult := validation.ValidateDocument(doc)

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, docResult, fmt.Errorf("statefile: parse: %w", err)
	}
	retagNumbers(&node, nil)

	state := inventory.New()
	if err := node.Decode(state); err != nil {
		return nil, docResult, fmt.Errorf("statefile: decode: %w", err)
	}

	result := validation.Validate(state)
	return state, merge(docResult, result), nil
}

// Encode writes state as YAML. Measured values are written as plain numbers.
func Encode(w io.Writer, state *inventory.State) error {
	if state == nil {
		return inventory.ErrNilState
	}
	var node yaml.Node
	if err := node.Encode(state); err != nil {
		return fmt.Errorf("statefile: encode: %w", err)
	}
	retagNumbers(&node, nil)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("statefile: encode: %w", err)
	}
	return enc.Close()
}

// Save writes state to path.
func Save(path string, state *inventory.State) error {
	var buf bytes.Buffer
	if err := Encode(&buf, state); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("statefile: write %s: %w", path, err)
	}
	return nil
}

// normalise turns a YAML tree into the JSON shapes the schema validator
// expects (float64 numbers, map[string]any objects). Quoted numbers in
// numeric fields are accepted and converted.
func normalise(raw any) (any, error) {
	payload, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("statefile: normalise: %w", err)
	}
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("statefile: normalise: %w", err)
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	coerceNumbers(root, "")
	return root, nil
}

func coerceNumbers(value any, path string) any {
	switch v := value.(type) {
	case map[string]any:
		for key, child := range v {
			v[key] = coerceNumbers(child, join(path, key))
		}
	case []any:
		for i, child := range v {
			v[i] = coerceNumbers(child, join(path, strconv.Itoa(i)))
		}
	case string:
		if !numericField(path) {
			return v
		}
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			f, _ := d.Float64()
			return f
		}
	}
	return value
}

// retagNumbers turns string scalars holding numbers in numeric fields into
// plain YAML numbers, both for quoted input and for decimals on output.
func retagNumbers(node *yaml.Node, path []string) {
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			retagNumbers(child, path)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			retagNumbers(node.Content[i+1], append(path, node.Content[i].Value))
		}
	case yaml.SequenceNode:
		for i, child := range node.Content {
			retagNumbers(child, append(path, strconv.Itoa(i)))
		}
	case yaml.ScalarNode:
		if node.Tag != "!!str" || !numericField(strings.Join(path, ".")) {
			return
		}
		value := strings.TrimSpace(node.Value)
		if _, err := decimal.NewFromString(value); err != nil {
			return
		}
		node.Value = value
		node.Style = 0
		node.Tag = "!!int"
		if strings.ContainsAny(value, ".eE") {
			node.Tag = "!!float"
		}
	}
}

func numericField(path string) bool {
	rule, ok := validation.RuleFor(path)
	return ok && rule.Numeric()
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// merge combines schema issues with rule issues, dropping rule issues for
// fields the schema already reported.
func merge(doc, rules validation.Result) validation.Result {
	if doc.Valid {
		return rules
	}
	seen := make(map[string]bool, len(doc.Issues))
	issues := append([]validation.Issue(nil), doc.Issues...)
	for _, issue := range doc.Issues {
		seen[issue.Field] = true
	}
	for _, issue := range rules.Issues {
		if !seen[issue.Field] {
			issues = append(issues, issue)
		}
	}
	return validation.Result{Valid: false, Issues: issues}
}
