package toml

import (
	goerrors "errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	stellartoml "github.com/marwen-abid/stellartoml-go"
	"github.com/marwen-abid/stellartoml-go/errors"
)

var (
	assetCodeRE        = regexp.MustCompile(`^[a-zA-Z0-9]{1,12}$`)
	codeTemplateRE     = regexp.MustCompile(`^[a-zA-Z0-9?]{1,12}$`)
	maxDisplayDecimals = int64(255)
)

// reader extracts typed values from one decoded TOML table.
// The first conversion failure is kept in err and every later call becomes
// a no-op, so a record can be filled in a single struct literal and checked
// once.
type reader struct {
	path   string
	values map[string]any
	err    error
}

func newReader(path string, values map[string]any) *reader {
	return &reader{path: path, values: values}
}

// field returns the diagnostic path of key within this table.
func (r *reader) field(key string) string {
	if r.path == "" {
		return key
	}
	return r.path + "." + key
}

// lookup finds the first of names present in the table. Each name is also
// tried in the opposite case, so "code" matches "CODE" and "SIGNING_KEY"
// matches "signing_key". A table holding both spellings is ambiguous and
// fails.
func (r *reader) lookup(names ...string) (string, any, bool) {
	if r.err != nil {
		return "", nil, false
	}
	for _, name := range names {
		alt := swapCase(name)
		v, ok := r.values[name]
		altV, altOK := r.values[alt]
		switch {
		case ok && altOK && alt != name:
			r.fail(errors.NewFieldError(
				errors.INVALID_FIELD,
				r.field(alt),
				fmt.Sprintf("duplicate of %s", r.field(name)),
				nil,
			).With("expected", "a single "+name+" key"))
			return "", nil, false
		case ok:
			return name, v, true
		case altOK:
			return alt, altV, true
		}
	}
	return "", nil, false
}

// key returns the spelling of name present in the table, or name itself.
func (r *reader) key(name string) string {
	if _, ok := r.values[name]; ok {
		return name
	}
	if alt := swapCase(name); alt != name {
		if _, ok := r.values[alt]; ok {
			return alt
		}
	}
	return name
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) str(names ...string) string {
	key, v, ok := r.lookup(names...)
	if !ok {
		return ""
	}
	s, isStr := v.(string)
	if !isStr {
		r.fail(invalidType(r.field(key), "string", v))
		return ""
	}
	return s
}

func (r *reader) uri(name string) *stellartoml.URI {
	key, v, ok := r.lookup(name)
	if !ok {
		return nil
	}
	u, err := toURI(r.field(key), v)
	if err != nil {
		r.fail(err)
		return nil
	}
	return &u
}

func (r *reader) publicKey(name string) *stellartoml.PublicKey {
	key, v, ok := r.lookup(name)
	if !ok {
		return nil
	}
	k, err := toPublicKey(r.field(key), v)
	if err != nil {
		r.fail(err)
		return nil
	}
	return &k
}

func (r *reader) publicKeys(name string) []stellartoml.PublicKey {
	key, v, ok := r.lookup(name)
	if !ok {
		return nil
	}
	items, isArr := v.([]any)
	if !isArr {
		r.fail(invalidType(r.field(key), "array of strings", v))
		return nil
	}
	if len(items) == 0 {
		return nil
	}
	keys := make([]stellartoml.PublicKey, 0, len(items))
	for i, item := range items {
		k, err := toPublicKey(fmt.Sprintf("%s[%d]", r.field(key), i), item)
		if err != nil {
			r.fail(err)
			return nil
		}
		keys = append(keys, k)
	}
	return keys
}

func (r *reader) strs(name string) []string {
	key, v, ok := r.lookup(name)
	if !ok {
		return nil
	}
	items, isArr := v.([]any)
	if !isArr {
		r.fail(invalidType(r.field(key), "array of strings", v))
		return nil
	}
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, isStr := item.(string)
		if !isStr {
			r.fail(invalidType(fmt.Sprintf("%s[%d]", r.field(key), i), "string", item))
			return nil
		}
		out = append(out, s)
	}
	return out
}

func (r *reader) integer(name string) *int64 {
	key, v, ok := r.lookup(name)
	if !ok {
		return nil
	}
	n, isInt := v.(int64)
	if !isInt {
		r.fail(invalidType(r.field(key), "integer", v))
		return nil
	}
	return &n
}

func (r *reader) boolean(name string) *bool {
	key, v, ok := r.lookup(name)
	if !ok {
		return nil
	}
	b, isBool := v.(bool)
	if !isBool {
		r.fail(invalidType(r.field(key), "boolean", v))
		return nil
	}
	return &b
}

// enum reads a string restricted to allowed, compared case-insensitively.
// The lowercase form is returned.
func (r *reader) enum(name string, allowed []string) string {
	key, v, ok := r.lookup(name)
	if !ok {
		return ""
	}
	s, isStr := v.(string)
	if !isStr {
		r.fail(invalidType(r.field(key), "string", v))
		return ""
	}
	s = strings.ToLower(s)
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	expected := "one of " + strings.Join(allowed, "|")
	r.fail(errors.NewFieldError(
		errors.INVALID_FIELD,
		r.field(key),
		fmt.Sprintf("expected %s, got %q", expected, s),
		nil,
	).With("expected", expected))
	return ""
}

// table returns a reader for the sub-table under name, or nil when absent.
func (r *reader) table(name string) *reader {
	key, v, ok := r.lookup(name)
	if !ok {
		return nil
	}
	m, isMap := v.(map[string]any)
	if !isMap {
		r.fail(invalidType(r.field(key), "table", v))
		return nil
	}
	return newReader(r.field(key), m)
}

// tables returns one reader per entry of the array of tables under the first
// of names present. With single set, a lone table is read as one entry.
func (r *reader) tables(single bool, names ...string) []*reader {
	key, v, ok := r.lookup(names...)
	if !ok {
		return nil
	}
	field := r.field(key)

	var entries []map[string]any
	switch t := v.(type) {
	case []map[string]any:
		entries = t
	case []any:
		entries = make([]map[string]any, 0, len(t))
		for i, item := range t {
			m, isMap := item.(map[string]any)
			if !isMap {
				r.fail(invalidType(fmt.Sprintf("%s[%d]", field, i), "table", item))
				return nil
			}
			entries = append(entries, m)
		}
	case map[string]any:
		if !single {
			r.fail(invalidType(field, "array of tables", v))
			return nil
		}
		return []*reader{newReader(field, t)}
	default:
		r.fail(invalidType(field, "array of tables", v))
		return nil
	}

	readers := make([]*reader, len(entries))
	for i, m := range entries {
		readers[i] = newReader(fmt.Sprintf("%s[%d]", field, i), m)
	}
	return readers
}

// missing records that a required key is absent.
func (r *reader) missing(name, expected string) {
	r.fail(errors.NewFieldError(
		errors.INVALID_FIELD,
		r.field(name),
		"required field is missing",
		nil,
	).With("expected", expected))
}

// check validates s against re when it is set.
func (r *reader) check(name, s string, re *regexp.Regexp, expected string) {
	if r.err != nil || s == "" || re.MatchString(s) {
		return
	}
	r.fail(errors.NewFieldError(
		errors.INVALID_FIELD,
		r.field(r.key(name)),
		fmt.Sprintf("expected %s, got %q", expected, s),
		nil,
	).With("expected", expected))
}

func toURI(field string, v any) (stellartoml.URI, error) {
	s, ok := v.(string)
	if !ok {
		return stellartoml.URI{}, invalidType(field, "URI string", v)
	}
	u, err := stellartoml.ParseURI(s)
	if err != nil {
		return stellartoml.URI{}, withField(err, field)
	}
	return u, nil
}

func toPublicKey(field string, v any) (stellartoml.PublicKey, error) {
	s, ok := v.(string)
	if !ok {
		return stellartoml.PublicKey{}, invalidType(field, "public key string", v)
	}
	k, err := stellartoml.ParsePublicKey(s)
	if err != nil {
		return stellartoml.PublicKey{}, withField(err, field)
	}
	return k, nil
}

func withField(err error, field string) error {
	var se *errors.StellarTomlError
	if goerrors.As(err, &se) {
		return se.WithField(field)
	}
	return err
}

func invalidType(field, expected string, got any) error {
	return errors.NewFieldError(
		errors.INVALID_FIELD,
		field,
		fmt.Sprintf("expected %s, got %s", expected, typeName(got)),
		nil,
	).With("expected", expected)
}

// typeName names the TOML type of a decoded value.
func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int64:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case time.Time:
		return "datetime"
	case []any, []map[string]any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func swapCase(s string) string {
	if upper := strings.ToUpper(s); upper != s {
		return upper
	}
	return strings.ToLower(s)
}
