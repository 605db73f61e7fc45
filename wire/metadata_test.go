package wire_test

import (
	"bytes"
	"testing"

	"github.com/go-mc47/protocol/wire"
)

func TestEntityMetadataTerminatorOnly(t *testing.T) {
	got, err := wire.DecodeEntityMetadata(bytes.NewReader([]byte{0x7F}))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Entries) != 0 {
		t.Fatalf("expected no entries, got %+v", got.Entries)
	}
}

func TestEntityMetadataRoundTrip(t *testing.T) {
	m := wire.EntityMetadata{Entries: []wire.MetadataEntry{
		{Index: 0, Type: wire.MetaTypeByte, Value: int8(-5)},
		{Index: 1, Type: wire.MetaTypeVarInt, Value: int32(300)},
		{Index: 2, Type: wire.MetaTypeFloat, Value: float32(1.5)},
		{Index: 3, Type: wire.MetaTypeString, Value: "hello"},
		{Index: 4, Type: wire.MetaTypeBoolean, Value: true},
		{Index: 5, Type: wire.MetaTypeRotation, Value: wire.Rotation{X: 1, Y: 2, Z: 3}},
		{Index: 6, Type: wire.MetaTypePosition, Value: int64(42)},
		{Index: 7, Type: wire.MetaTypeOptionalUUID, Value: wire.OptionalUUID{Present: false}},
		{Index: 8, Type: wire.MetaTypeBlockID, Value: int32(17)},
		{Index: 9, Type: wire.MetaTypeSlot, Value: wire.Slot{Present: false}},
	}}

	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf.Bytes()[buf.Len()-1] != 0x7F {
		t.Fatalf("expected terminator byte, got % X", buf.Bytes())
	}

	got, err := wire.DecodeEntityMetadata(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Entries) != len(m.Entries) {
		t.Fatalf("got %d entries, want %d", len(got.Entries), len(m.Entries))
	}
	for i, e := range got.Entries {
		want := m.Entries[i]
		if e.Index != want.Index || e.Type != want.Type {
			t.Fatalf("entry %d: got index=%d type=%d, want index=%d type=%d", i, e.Index, e.Type, want.Index, want.Type)
		}
	}
}

func TestEntityMetadataKeyByteLayout(t *testing.T) {
	// index 7, type VarInt(1) -> key byte = (1<<5)|7 = 0x27
	m := wire.EntityMetadata{Entries: []wire.MetadataEntry{
		{Index: 7, Type: wire.MetaTypeVarInt, Value: int32(0)},
	}}
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf.Bytes()[0] != 0x27 {
		t.Fatalf("got key byte %02X, want 27", buf.Bytes()[0])
	}
}

func TestEntityMetadataUnknownTypeIsMalformed(t *testing.T) {
	// key byte with type code 11 (unused by protocol 47)
	key := byte(11 << 5)
	_, err := wire.DecodeEntityMetadata(bytes.NewReader([]byte{key}))
	if err == nil {
		t.Fatal("expected error decoding unknown metadata type")
	}
}
