package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
	"github.com/valyala/fasttemplate"
)

// Bindings maps placeholder names to values.
type Bindings map[string]string

// Var is a single user-supplied binding.
type Var struct {
	Key   string
	Value string
}

// ParseVar parses a KEY=VALUE pair. The value may itself contain '='.
func ParseVar(raw string) (Var, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return Var{}, fmt.Errorf("invalid variable %q (expected KEY=VALUE)", raw)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return Var{}, fmt.Errorf("invalid variable %q: empty key", raw)
	}
	return Var{Key: key, Value: value}, nil
}

// NewBindings assembles bindings from frontmatter sample values (only when
// useSample is set) and user vars. User vars win over samples; later vars win
// over earlier ones.
func NewBindings(sample any, useSample bool, vars []Var) (Bindings, error) {
	bindings := make(Bindings)

	if useSample && sample != nil {
		values, ok := sample.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("sample must be a mapping, got %T", sample)
		}
		for key, value := range values {
			text, err := Stringify(value)
			if err != nil {
				return nil, fmt.Errorf("sample %q: %w", key, err)
			}
			bindings[key] = text
		}
	}

	for _, v := range vars {
		bindings[v.Key] = v.Value
	}
	return bindings, nil
}

// Stringify converts a decoded YAML value to its substitution text, spelled
// the way the original Python renderer printed it: True/False, None, and
// floats that keep a trailing ".0". Sequences and mappings are encoded as
// compact JSON.
func Stringify(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "None", nil
	case bool:
		if v {
			return "True", nil
		}
		return "False", nil
	case float32:
		return formatFloat(float64(v), 32), nil
	case float64:
		return formatFloat(v, 64), nil
	case []any, map[string]any:
		data, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return cast.ToStringE(value)
}

// formatFloat mirrors Python's float repr: positional notation for decimal
// exponents in [-4, 16), scientific outside it.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, bits)
	_, exponent, _ := strings.Cut(sci, "e")
	exp, err := strconv.Atoi(exponent)
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	text := strconv.FormatFloat(f, 'f', -1, bits)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

// Substitute replaces every {{key}} token whose key is bound. Tokens are
// matched whole in one left-to-right pass, so keys that are substrings of
// other keys never collide and inserted values are not rescanned.
func Substitute(text string, vars Bindings) (string, error) {
	if len(vars) == 0 {
		return text, nil
	}

	return fasttemplate.ExecuteFuncStringWithErr(text, PlaceholderStart, PlaceholderEnd, func(w io.Writer, tag string) (int, error) {
		prefix, tag := splitNestedStart(tag, PlaceholderStart)

		// "{{{name}}" holds the token "{{name}}" one brace later.
		for {
			if _, ok := vars[tag]; ok || !strings.HasPrefix(tag, "{") {
				break
			}
			prefix += "{"
			tag = tag[1:]
		}

		if value, ok := vars[tag]; ok {
			return io.WriteString(w, prefix+value)
		}
		return io.WriteString(w, prefix+PlaceholderStart+tag+PlaceholderEnd)
	})
}
