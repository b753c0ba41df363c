package css

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Serialize produces a canonical textual encoding of an arbitrary nested
// value: map keys are emitted in lexicographic order so that two
// structurally equal descriptions serialize identically regardless of how
// they were built. Sequence order is preserved. This is a one-way encoding
// used only as hash input, not a round-trippable format.
func Serialize(v any) string {
	var b strings.Builder
	serializeValue(&b, v)
	return b.String()
}

func serializeValue(b *strings.Builder, v any) {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
	case string:
		b.WriteString(strconv.Quote(t))
	case bool:
		b.WriteString(strconv.FormatBool(t))
	case int:
		b.WriteString(strconv.Itoa(t))
	case int64:
		b.WriteString(strconv.FormatInt(t, 10))
	case uint64:
		b.WriteString(strconv.FormatUint(t, 10))
	case float32:
		b.WriteString(strconv.FormatFloat(float64(t), 'f', -1, 32))
	case float64:
		b.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case FontFace:
		serializeValue(b, t.Decls())
	default:
		serializeReflect(b, reflect.ValueOf(v))
	}
}

// serializeReflect handles the remaining shapes: any string-keyed map
// (Style, Keyframes, map[string]any and friends), slices and arrays, and
// the less common scalar kinds.
func serializeReflect(b *strings.Builder, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			fmt.Fprintf(b, "%q", fmt.Sprint(rv.Interface()))
			return
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			serializeValue(b, rv.MapIndex(reflect.ValueOf(k)).Interface())
		}
		b.WriteByte('}')
	case reflect.Slice, reflect.Array:
		b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			serializeValue(b, rv.Index(i).Interface())
		}
		b.WriteByte(']')
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		b.WriteString(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		b.WriteString(strconv.FormatFloat(rv.Float(), 'f', -1, 64))
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			b.WriteString("null")
			return
		}
		serializeValue(b, rv.Elem().Interface())
	default:
		fmt.Fprintf(b, "%q", fmt.Sprint(rv.Interface()))
	}
}
