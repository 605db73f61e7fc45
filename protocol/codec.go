// Package protocol implements the Minecraft Java Edition protocol version
// 47 (game version 1.8.x) packet catalog: the wire schema for every
// Handshaking, Login, and Play packet, a reflection-driven codec for flat
// and simple-conditional packets, and hand-written sum types for the
// handful of packets whose shape is a genuine tagged union.
package protocol

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-mc47/protocol/wire"
)

// fieldTag is the parsed form of an `mc:"..."` struct tag.
//
//   - mc:"-"                 field is not part of the wire form
//   - mc:"if:Other"          present only when Other is the zero value
//   - mc:"if:Other,value:2"  present only when Other == 2
type fieldTag struct {
	skip    bool
	ifField string
	ifValue string
}

func parseFieldTag(tag string) fieldTag {
	var ft fieldTag
	if tag == "" {
		return ft
	}
	if tag == "-" {
		ft.skip = true
		return ft
	}
	for part := range strings.SplitSeq(tag, ",") {
		part = strings.TrimSpace(part)
		if after, ok := strings.CutPrefix(part, "if:"); ok {
			ft.ifField = after
		}
		if after, ok := strings.CutPrefix(part, "value:"); ok {
			ft.ifValue = after
		}
	}
	return ft
}

// Encode writes v, a pointer to a packet-data struct, to buf using the
// `mc:"..."` struct tags to resolve conditional fields.
func Encode(buf *wire.PacketBuffer, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("protocol: can only encode structs, got %v", val.Kind())
	}
	return encodeStruct(buf, val)
}

func encodeStruct(buf *wire.PacketBuffer, val reflect.Value) error {
	typ := val.Type()
	for i := range val.NumField() {
		field := val.Field(i)
		sf := typ.Field(i)
		if !field.CanInterface() {
			continue
		}
		ft := parseFieldTag(sf.Tag.Get("mc"))
		if ft.skip {
			continue
		}
		if ft.ifField != "" {
			cond := val.FieldByName(ft.ifField)
			if !cond.IsValid() {
				return fmt.Errorf("protocol: unknown condition field %q for %s", ft.ifField, sf.Name)
			}
			if !checkCondition(cond, ft.ifValue) {
				continue
			}
		}
		if err := encodeField(buf, field); err != nil {
			return fmt.Errorf("protocol: encode field %s: %w", sf.Name, err)
		}
	}
	return nil
}

func encodeField(buf *wire.PacketBuffer, field reflect.Value) error {
	if m, ok := marshalerOf(field); ok {
		return m.Encode(buf)
	}
	switch field.Kind() {
	case reflect.Struct:
		return encodeStruct(buf, field)
	case reflect.Slice:
		if err := wire.VarInt(field.Len()).Encode(buf); err != nil {
			return err
		}
		for j := range field.Len() {
			if err := encodeField(buf, field.Index(j)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Array:
		for j := range field.Len() {
			if err := encodeField(buf, field.Index(j)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("protocol: unsupported field kind %v (type %v)", field.Kind(), field.Type())
	}
}

// Decode reads into v, a pointer to a packet-data struct, from buf.
func Decode(buf *wire.PacketBuffer, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("protocol: decode requires a non-nil pointer")
	}
	elem := val.Elem()
	if elem.Kind() != reflect.Struct {
		return fmt.Errorf("protocol: can only decode into structs, got %v", elem.Kind())
	}
	return decodeStruct(buf, elem)
}

func decodeStruct(buf *wire.PacketBuffer, val reflect.Value) error {
	typ := val.Type()
	for i := range val.NumField() {
		field := val.Field(i)
		sf := typ.Field(i)
		if !field.CanSet() {
			continue
		}
		ft := parseFieldTag(sf.Tag.Get("mc"))
		if ft.skip {
			continue
		}
		if ft.ifField != "" {
			cond := val.FieldByName(ft.ifField)
			if !cond.IsValid() {
				return fmt.Errorf("protocol: unknown condition field %q for %s", ft.ifField, sf.Name)
			}
			if !checkCondition(cond, ft.ifValue) {
				continue
			}
		}
		if err := decodeField(buf, field); err != nil {
			return fmt.Errorf("protocol: decode field %s: %w", sf.Name, err)
		}
	}
	return nil
}

func decodeField(buf *wire.PacketBuffer, field reflect.Value) error {
	if d, ok := decoderOf(field); ok {
		return d.DecodeFrom(buf)
	}
	switch field.Kind() {
	case reflect.Struct:
		return decodeStruct(buf, field)
	case reflect.Slice:
		length, err := wire.DecodeVarInt(buf)
		if err != nil {
			return err
		}
		if length < 0 {
			return wire.ErrMalformed(fmt.Sprintf("protocol: negative array length %d", length))
		}
		slice := reflect.MakeSlice(field.Type(), int(length), int(length))
		for j := range int(length) {
			if err := decodeField(buf, slice.Index(j)); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	case reflect.Array:
		for j := range field.Len() {
			if err := decodeField(buf, field.Index(j)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("protocol: unsupported field kind %v (type %v)", field.Kind(), field.Type())
	}
}

// marshalerOf returns field as a wire.Marshaler, trying the value first
// and then the addressable pointer receiver (most wire types implement
// Encode on the value receiver, but this also picks up pointer-receiver
// implementations).
func marshalerOf(field reflect.Value) (wire.Marshaler, bool) {
	if m, ok := field.Interface().(wire.Marshaler); ok {
		return m, true
	}
	if field.CanAddr() {
		if m, ok := field.Addr().Interface().(wire.Marshaler); ok {
			return m, true
		}
	}
	return nil, false
}

func decoderOf(field reflect.Value) (wire.Decoder, bool) {
	if !field.CanAddr() {
		return nil, false
	}
	d, ok := field.Addr().Interface().(wire.Decoder)
	return d, ok
}

// checkCondition evaluates an `if:Field[,value:X]` predicate. With no
// value clause the predicate is "Field is the zero value" (the common
// has_foo-as-sentinel pattern); with a value clause it is equality.
func checkCondition(cond reflect.Value, expected string) bool {
	if expected == "" {
		return isZero(cond)
	}
	switch cond.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(expected, 10, 64)
		return err == nil && cond.Int() == n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(expected, 10, 64)
		return err == nil && cond.Uint() == n
	case reflect.Bool:
		b, err := strconv.ParseBool(expected)
		return err == nil && cond.Bool() == b
	case reflect.String:
		return cond.String() == expected
	default:
		return false
	}
}

func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Bool:
		return !v.Bool()
	default:
		return v.IsZero()
	}
}
