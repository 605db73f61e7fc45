package wire

import "io"

// Decoder is implemented by a pointer to every wire type that the
// reflection-driven packet codec can populate in place. It mirrors
// Marshaler's Encode side: decode functions are package-level (so they
// can return a value rather than needing a zero value to call a method
// on), but the codec needs to decode directly into a struct field, so
// each type gets a thin pointer-receiver adapter here.
type Decoder interface {
	DecodeFrom(r io.Reader) error
}

func (v *VarInt) DecodeFrom(r io.Reader) error {
	val, err := DecodeVarInt(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *VarLong) DecodeFrom(r io.Reader) error {
	val, err := DecodeVarLong(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *Boolean) DecodeFrom(r io.Reader) error {
	val, err := DecodeBoolean(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *Int8) DecodeFrom(r io.Reader) error {
	val, err := DecodeInt8(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *Uint8) DecodeFrom(r io.Reader) error {
	val, err := DecodeUint8(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *Int16) DecodeFrom(r io.Reader) error {
	val, err := DecodeInt16(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *Uint16) DecodeFrom(r io.Reader) error {
	val, err := DecodeUint16(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *Int32) DecodeFrom(r io.Reader) error {
	val, err := DecodeInt32(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *Int64) DecodeFrom(r io.Reader) error {
	val, err := DecodeInt64(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *Float32) DecodeFrom(r io.Reader) error {
	val, err := DecodeFloat32(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *Float64) DecodeFrom(r io.Reader) error {
	val, err := DecodeFloat64(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *String) DecodeFrom(r io.Reader) error {
	val, err := DecodeString(r, 0)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *Identifier) DecodeFrom(r io.Reader) error {
	val, err := DecodeIdentifier(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *UUID) DecodeFrom(r io.Reader) error {
	val, err := DecodeUUID(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *Angle) DecodeFrom(r io.Reader) error {
	val, err := DecodeAngle(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *Position) DecodeFrom(r io.Reader) error {
	val, err := DecodePosition(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *Slot) DecodeFrom(r io.Reader) error {
	val, err := DecodeSlot(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *EntityMetadata) DecodeFrom(r io.Reader) error {
	val, err := DecodeEntityMetadata(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v *PrefixedByteArray) DecodeFrom(r io.Reader) error {
	val, err := DecodePrefixedByteArray(r)
	if err != nil {
		return err
	}
	*v = val
	return nil
}
