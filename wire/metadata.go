package wire

import (
	"fmt"
	"io"
)

// Metadata value type codes, carried in the high 3 bits of the entry's key
// byte.
const (
	MetaTypeByte          = 0
	MetaTypeVarInt        = 1
	MetaTypeFloat         = 2
	MetaTypeString        = 3
	MetaTypeChat          = 4
	MetaTypeSlot          = 5
	MetaTypeBoolean       = 6
	MetaTypeRotation      = 7
	MetaTypePosition      = 8
	MetaTypeOptionalUUID  = 9
	MetaTypeBlockID       = 10
	metadataTerminator    = 0x7F
	metadataIndexMask     = 0x1F
	metadataTypeShift     = 5
)

// Rotation is the three-float pitch/yaw/roll payload of a Rotation-typed
// metadata entry.
type Rotation struct {
	X, Y, Z float32
}

// OptionalUUID is a presence-prefixed UUID, used by the OptionalUUID
// metadata value type.
type OptionalUUID struct {
	Present bool
	Value   UUID
}

// MetadataEntry is one {index, type, value} triple from an EntityMetadata
// stream. Value holds one of: int8, VarInt, float32, string (plain or
// chat), Slot, bool, Rotation, int64 (raw packed Position), OptionalUUID,
// or VarInt (BlockID) depending on Type.
type MetadataEntry struct {
	Index uint8
	Type  uint8
	Value any
}

// EntityMetadata is the tagged list of per-entity attributes terminated by
// the sentinel key byte 0x7F.
type EntityMetadata struct {
	Entries []MetadataEntry
}

// Encode writes the EntityMetadata to w, including the terminator byte.
func (m EntityMetadata) Encode(w io.Writer) error {
	for _, e := range m.Entries {
		key := (e.Index & metadataIndexMask) | (e.Type << metadataTypeShift)
		if err := Uint8(key).Encode(w); err != nil {
			return err
		}
		if err := encodeMetadataValue(w, e.Type, e.Value); err != nil {
			return err
		}
	}
	return Uint8(metadataTerminator).Encode(w)
}

func encodeMetadataValue(w io.Writer, typ uint8, value any) error {
	switch typ {
	case MetaTypeByte:
		return Int8(value.(int8)).Encode(w)
	case MetaTypeVarInt:
		return VarInt(value.(int32)).Encode(w)
	case MetaTypeFloat:
		return Float32(value.(float32)).Encode(w)
	case MetaTypeString, MetaTypeChat:
		return String(value.(string)).Encode(w)
	case MetaTypeSlot:
		return value.(Slot).Encode(w)
	case MetaTypeBoolean:
		return Boolean(value.(bool)).Encode(w)
	case MetaTypeRotation:
		rot := value.(Rotation)
		if err := Float32(rot.X).Encode(w); err != nil {
			return err
		}
		if err := Float32(rot.Y).Encode(w); err != nil {
			return err
		}
		return Float32(rot.Z).Encode(w)
	case MetaTypePosition:
		return Int64(value.(int64)).Encode(w)
	case MetaTypeOptionalUUID:
		opt := value.(OptionalUUID)
		if err := Boolean(opt.Present).Encode(w); err != nil {
			return err
		}
		if !opt.Present {
			return nil
		}
		return opt.Value.Encode(w)
	case MetaTypeBlockID:
		return VarInt(value.(int32)).Encode(w)
	default:
		return fmt.Errorf("wire: unknown entity metadata type %d", typ)
	}
}

// DecodeEntityMetadata reads an EntityMetadata stream from r, stopping at
// the terminator byte.
//
// Every value type, including Slot, is decoded using its real wire grammar:
// a fixed-width stand-in for the Slot case would desynchronize the cursor
// for every metadata entry that follows it.
func DecodeEntityMetadata(r io.Reader) (EntityMetadata, error) {
	var m EntityMetadata
	for {
		key, err := DecodeUint8(r)
		if err != nil {
			return EntityMetadata{}, err
		}
		if uint8(key) == metadataTerminator {
			return m, nil
		}

		index := uint8(key) & metadataIndexMask
		typ := uint8(key) >> metadataTypeShift

		value, err := decodeMetadataValue(r, typ)
		if err != nil {
			return EntityMetadata{}, err
		}

		m.Entries = append(m.Entries, MetadataEntry{Index: index, Type: typ, Value: value})
	}
}

func decodeMetadataValue(r io.Reader, typ uint8) (any, error) {
	switch typ {
	case MetaTypeByte:
		v, err := DecodeInt8(r)
		return int8(v), err
	case MetaTypeVarInt:
		v, err := DecodeVarInt(r)
		return int32(v), err
	case MetaTypeFloat:
		v, err := DecodeFloat32(r)
		return float32(v), err
	case MetaTypeString, MetaTypeChat:
		v, err := DecodeString(r, 0)
		return string(v), err
	case MetaTypeSlot:
		return DecodeSlot(r)
	case MetaTypeBoolean:
		v, err := DecodeBoolean(r)
		return bool(v), err
	case MetaTypeRotation:
		x, err := DecodeFloat32(r)
		if err != nil {
			return nil, err
		}
		y, err := DecodeFloat32(r)
		if err != nil {
			return nil, err
		}
		z, err := DecodeFloat32(r)
		if err != nil {
			return nil, err
		}
		return Rotation{X: float32(x), Y: float32(y), Z: float32(z)}, nil
	case MetaTypePosition:
		v, err := DecodeInt64(r)
		return int64(v), err
	case MetaTypeOptionalUUID:
		present, err := DecodeBoolean(r)
		if err != nil {
			return nil, err
		}
		if !present {
			return OptionalUUID{Present: false}, nil
		}
		u, err := DecodeUUID(r)
		if err != nil {
			return nil, err
		}
		return OptionalUUID{Present: true, Value: u}, nil
	case MetaTypeBlockID:
		v, err := DecodeVarInt(r)
		return int32(v), err
	default:
		return nil, fmt.Errorf("wire: unknown entity metadata type %d: %w", typ, ErrMalformed("unknown metadata type"))
	}
}
