package output

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/stacklok/egeria-client-go/internal/jsonutil"
)

// relatedSeparator joins qualified names in relationship columns
const relatedSeparator = ", "

// headerFields maps column keys to values derived from the element header
var headerFields = map[string]func(Element) any{
	"guid":      func(e Element) any { return e.GUID() },
	"type_name": func(e Element) any { return e.TypeName() },
	"status":    func(e Element) any { return e.Status() },
	"classifications": func(e Element) any {
		return strings.Join(e.Classifications(), relatedSeparator)
	},
	"subject_area": func(e Element) any {
		return e.Get("elementHeader.subjectArea.classificationProperties.subjectAreaName").String()
	},
	"mermaid":     func(e Element) any { return e.Mermaid() },
	"created_by":  func(e Element) any { return e.Get("elementHeader.versions.createdBy").String() },
	"create_time": func(e Element) any { return e.Get("elementHeader.versions.createTime").String() },
	"updated_by":  func(e Element) any { return e.Get("elementHeader.versions.updatedBy").String() },
	"update_time": func(e Element) any { return e.Get("elementHeader.versions.updateTime").String() },
	"version": func(e Element) any {
		if v := e.Get("elementHeader.versions.version"); v.Exists() {
			return v.Int()
		}
		return nil
	},
	"anchor_guid": func(e Element) any {
		return e.Get("elementHeader.anchor.classificationProperties.anchorGUID").String()
	},
}

// populateColumns fills a copy of columns from el. Sources are consulted in order:
// properties, header fields, relationship arrays, then additional. A source never
// overwrites a value set by an earlier one.
func populateColumns(ctx context.Context, el Element, columns []Column, additional AdditionalFunc, fetcher Fetcher) ([]Column, error) {
	out := make([]Column, len(columns))
	copy(out, columns)
	for i := range out {
		out[i].Value = nil
	}

	props := el.Get("properties")
	for _, key := range el.propertyKeys() {
		snake := jsonutil.CamelToSnake(key)
		setFirst(out, snake, props.Get(gjson.Escape(key)).Value())
	}

	for i := range out {
		if !isEmpty(out[i].Value) {
			continue
		}
		if fn, ok := headerFields[out[i].Key]; ok {
			out[i].Value = fn(el)
		}
	}

	for i := range out {
		if !isEmpty(out[i].Value) {
			continue
		}
		if names, ok := relatedNames(el, out[i].Key); ok {
			out[i].Value = names
		}
	}

	if additional == nil || !anyEmpty(out) {
		return out, nil
	}
	extra, err := additional(ctx, fetcher, el)
	if err != nil {
		return nil, fmt.Errorf("failed to derive additional columns for %s: %w", el.GUID(), err)
	}
	for key, value := range extra {
		setFirst(out, key, value)
	}
	return out, nil
}

// setFirst sets every still-empty column with key to value
func setFirst(columns []Column, key string, value any) {
	for i := range columns {
		if columns[i].Key == key && isEmpty(columns[i].Value) {
			columns[i].Value = value
		}
	}
}

// relatedNames joins the qualified names of the elements in the relationship array
// named by key. ok is false when the element has no such array.
func relatedNames(el Element, key string) (string, bool) {
	names, ok := relatedQualifiedNames(el, key)
	if !ok {
		return "", false
	}
	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(relatedSeparator)
	}
	return strings.TrimSuffix(b.String(), relatedSeparator), true
}

// relatedQualifiedNames walks the camelCase array named by the snake_case key
func relatedQualifiedNames(el Element, key string) ([]string, bool) {
	arr := el.Get(gjson.Escape(jsonutil.SnakeToCamel(key)))
	if !arr.IsArray() {
		return nil, false
	}
	var names []string
	arr.ForEach(func(_, rel gjson.Result) bool {
		qn := rel.Get("relatedElement.properties.qualifiedName")
		if !qn.Exists() {
			qn = rel.Get("properties.qualifiedName")
		}
		if name := qn.String(); name != "" {
			names = append(names, name)
		}
		return true
	})
	return names, true
}

func anyEmpty(columns []Column) bool {
	for _, c := range columns {
		if isEmpty(c.Value) {
			return true
		}
	}
	return false
}

// isEmpty treats nil, "" and empty collections as unset
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	default:
		return false
	}
}
