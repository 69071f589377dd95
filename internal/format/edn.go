package format

import (
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes v as EDN. Values go through encoding/json first so json
// tags and MarshalText implementations decide the shape; object keys become
// keywords.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var tree any
	if err := json.Unmarshal(b, &tree); err != nil {
		return err
	}
	e := ednWriter{pretty: pretty}
	e.value(tree, 0)
	e.sb.WriteByte('\n')
	_, err = io.WriteString(w, e.sb.String())
	return err
}

type ednWriter struct {
	sb     strings.Builder
	pretty bool
}

func (e *ednWriter) value(v any, depth int) {
	switch t := v.(type) {
	case nil:
		e.sb.WriteString("nil")
	case bool:
		e.sb.WriteString(strconv.FormatBool(t))
	case string:
		e.sb.WriteString(strconv.Quote(t))
	case float64:
		if t == float64(int64(t)) {
			e.sb.WriteString(strconv.FormatInt(int64(t), 10))
		} else {
			e.sb.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
		}
	case []any:
		e.open('[')
		for i, x := range t {
			e.sep(i, depth+1)
			e.value(x, depth+1)
		}
		e.close(']', len(t), depth)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.open('{')
		for i, k := range keys {
			e.sep(i, depth+1)
			e.sb.WriteByte(':')
			e.sb.WriteString(keyword(k))
			e.sb.WriteByte(' ')
			e.value(t[k], depth+1)
		}
		e.close('}', len(keys), depth)
	}
}

func (e *ednWriter) open(ch byte) { e.sb.WriteByte(ch) }

func (e *ednWriter) sep(i, depth int) {
	switch {
	case e.pretty:
		e.sb.WriteByte('\n')
		e.sb.WriteString(strings.Repeat("  ", depth))
	case i > 0:
		e.sb.WriteByte(' ')
	}
}

func (e *ednWriter) close(ch byte, n, depth int) {
	if e.pretty && n > 0 {
		e.sb.WriteByte('\n')
		e.sb.WriteString(strings.Repeat("  ", depth))
	}
	e.sb.WriteByte(ch)
}

func keyword(k string) string {
	return strings.ReplaceAll(strings.TrimSpace(k), " ", "-")
}
