package wire_test

import (
	"bytes"
	"testing"

	"github.com/go-mc47/protocol/nbt"
	"github.com/go-mc47/protocol/wire"
)

func TestSlotEmpty(t *testing.T) {
	s := wire.Slot{Present: false}
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x00}) {
		t.Fatalf("got % X, want [00]", buf.Bytes())
	}

	got, err := wire.DecodeSlot(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Present {
		t.Fatalf("expected empty slot, got %+v", got)
	}
}

func TestSlotPresentNoTag(t *testing.T) {
	s := wire.Slot{Present: true, ItemID: 1, ItemCount: 3, ItemDamage: 0}
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	// presence(1) + id(2) + count(1) + damage(2) + TagEnd(1) = 7 bytes
	if buf.Len() != 7 {
		t.Fatalf("expected 7 bytes, got %d: % X", buf.Len(), buf.Bytes())
	}

	got, err := wire.DecodeSlot(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != s {
		t.Fatalf("got %+v, want %+v", got, s)
	}
}

func TestSlotPresentWithTag(t *testing.T) {
	s := wire.Slot{
		Present:    true,
		ItemID:     278,
		ItemCount:  1,
		ItemDamage: 0,
		Tag: nbt.Compound{
			"ench": nbt.List{ElementType: nbt.TagCompound, Elements: nil},
		},
	}
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := wire.DecodeSlot(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Present || got.ItemID != s.ItemID || got.ItemCount != s.ItemCount {
		t.Fatalf("got %+v, want %+v", got, s)
	}
	if got.Tag == nil {
		t.Fatalf("expected decoded tag, got nil")
	}
}
