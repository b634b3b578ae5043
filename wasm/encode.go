package wasm

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// MarshalCanonical is the single mandatory encoding choke point for outgoing
// payloads, envelopes and query requests.
//
// Canonical form is compact JSON with no HTML escaping and struct-driven key
// order. Encoding the same value twice MUST produce byte-identical output;
// all hashing, signing and CID derivation over messages pass through here.
//
// Inputs must be struct-backed. Map-backed values are rejected because map
// iteration order would break byte determinism.
func MarshalCanonical(v any) ([]byte, error) {
	if err := rejectMaps(v); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, WrapError(KindSerialize, "wasm.MarshalCanonical", "cannot encode value", err)
	}
	out := buf.Bytes()
	// json.Encoder appends a newline; canonical bytes carry none.
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return out, nil
}

func rejectMaps(v any) error {
	return rejectMapsValue(reflect.ValueOf(v))
}

func rejectMapsValue(rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return rejectMapsValue(rv.Elem())
	case reflect.Map:
		return NewError(KindSerialize, "wasm.MarshalCanonical", "map-backed values are not canonical")
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if err := rejectMapsValue(rv.Field(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil
		}
		for i := 0; i < rv.Len(); i++ {
			if err := rejectMapsValue(rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}
