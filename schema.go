package valida

// Schema is an immutable description of the values it accepts. Every
// keyword is optional; an absent keyword never produces an error. A zero
// Schema accepts everything.
//
// AnyOf/OneOf are composition nodes: when either is set it is evaluated
// instead of the flat keyword chain, never combined with it.
//
// Items is always a list; a single-schema items document decodes to a
// one-element list, which means the same thing (every element must
// satisfy at least one listed schema). Required is likewise always a
// list. Contains holds a literal; nil means the keyword is absent.
type Schema struct {
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Nullable bool   `json:"nullable,omitempty" yaml:"nullable,omitempty"`

	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`

	Minimum       *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum       *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MinLength     *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength     *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinItems      *int     `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems      *int     `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	MinProperties *int     `json:"minProperties,omitempty" yaml:"minProperties,omitempty"`
	MaxProperties *int     `json:"maxProperties,omitempty" yaml:"maxProperties,omitempty"`

	Pattern *string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Format  *string `json:"format,omitempty" yaml:"format,omitempty"`

	Enum     []any `json:"enum,omitempty" yaml:"enum,omitempty"`
	Contains any   `json:"contains,omitempty" yaml:"contains,omitempty"`

	UniqueItems bool      `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`
	Items       []*Schema `json:"items,omitempty" yaml:"items,omitempty"`

	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	AdditionalProperties *bool              `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
}

// knownTypes are the kinds a schema may declare through the type keyword.
var knownTypes = map[string]Kind{
	"string":  KindString,
	"number":  KindNumber,
	"boolean": KindBoolean,
	"object":  KindObject,
	"array":   KindArray,
}

// SchemaFromValue builds a Schema from a generic decoded document
// (map[string]any with nested maps, slices and scalars). Keywords
// carrying a value of the wrong type are dropped rather than rejected,
// the same permissiveness the engine applies at validation time.
// A non-object document yields nil, which validates as "no constraints".
func SchemaFromValue(v any) *Schema {
	if KindOf(v) != KindObject {
		return nil
	}
	doc := asObject(v)

	s := &Schema{}
	if t, ok := doc["type"].(string); ok {
		s.Type = t
	}
	if b, ok := doc["nullable"].(bool); ok {
		s.Nullable = b
	}

	s.AnyOf = subschemaList(doc["anyOf"])
	s.OneOf = subschemaList(doc["oneOf"])

	s.Minimum = floatKeyword(doc, "minimum")
	s.Maximum = floatKeyword(doc, "maximum")
	s.MinLength = intKeyword(doc, "minLength")
	s.MaxLength = intKeyword(doc, "maxLength")
	s.MinItems = intKeyword(doc, "minItems")
	s.MaxItems = intKeyword(doc, "maxItems")
	s.MinProperties = intKeyword(doc, "minProperties")
	s.MaxProperties = intKeyword(doc, "maxProperties")

	if p, ok := doc["pattern"].(string); ok {
		s.Pattern = &p
	}
	if f, ok := doc["format"].(string); ok {
		s.Format = &f
	}

	if KindOf(doc["enum"]) == KindArray {
		s.Enum = asArray(doc["enum"])
	}
	if c, ok := doc["contains"]; ok && c != nil {
		s.Contains = c
	}
	if b, ok := doc["uniqueItems"].(bool); ok {
		s.UniqueItems = b
	}

	switch KindOf(doc["items"]) {
	case KindObject:
		if sub := SchemaFromValue(doc["items"]); sub != nil {
			s.Items = []*Schema{sub}
		}
	case KindArray:
		s.Items = subschemaList(doc["items"])
	}

	switch req := doc["required"].(type) {
	case string:
		s.Required = []string{req}
	default:
		if KindOf(doc["required"]) == KindArray {
			for _, name := range asArray(doc["required"]) {
				if n, ok := name.(string); ok {
					s.Required = append(s.Required, n)
				}
			}
		}
	}

	if KindOf(doc["properties"]) == KindObject {
		props := asObject(doc["properties"])
		s.Properties = make(map[string]*Schema, len(props))
		for name, raw := range props {
			if sub := SchemaFromValue(raw); sub != nil {
				s.Properties[name] = sub
			}
		}
	}
	if b, ok := doc["additionalProperties"].(bool); ok {
		s.AdditionalProperties = &b
	}

	return s
}

func subschemaList(v any) []*Schema {
	if KindOf(v) != KindArray {
		return nil
	}
	var subs []*Schema
	for _, raw := range asArray(v) {
		if sub := SchemaFromValue(raw); sub != nil {
			subs = append(subs, sub)
		}
	}
	return subs
}

func floatKeyword(doc map[string]any, key string) *float64 {
	if n, ok := asNumber(doc[key]); ok {
		return &n
	}
	return nil
}

func intKeyword(doc map[string]any, key string) *int {
	if n, ok := asNumber(doc[key]); ok {
		i := int(n)
		return &i
	}
	return nil
}
