package wire

import (
	"io"

	"github.com/go-mc47/protocol/nbt"
)

// Slot is the protocol's inventory-slot value.
//
// Wire format: a presence byte; if present, a Short item ID, an
// UnsignedByte count, a Short damage value, and either a single TagEnd
// (0x00) byte meaning "no NBT" or a full NBT compound blob.
type Slot struct {
	Present    bool
	ItemID     int16
	ItemCount  uint8
	ItemDamage int16
	Tag        nbt.Tag
}

// Encode writes the Slot to w.
func (s Slot) Encode(w io.Writer) error {
	if err := Boolean(s.Present).Encode(w); err != nil {
		return err
	}
	if !s.Present {
		return nil
	}
	if err := Int16(s.ItemID).Encode(w); err != nil {
		return err
	}
	if err := Uint8(s.ItemCount).Encode(w); err != nil {
		return err
	}
	if err := Int16(s.ItemDamage).Encode(w); err != nil {
		return err
	}
	if s.Tag == nil {
		return Uint8(nbt.TagEnd).Encode(w)
	}
	nw := nbt.NewWriterTo(w)
	return nw.WriteTag(s.Tag, "", true)
}

// DecodeSlot reads a Slot from r.
//
// The NBT tail is consumed with the package's own streaming reader rather
// than a fixed-width placeholder: the reader's ReadTag already treats a
// leading TagEnd byte as "no tag" and otherwise decodes the full compound,
// which is exactly the presence rule this field uses.
func DecodeSlot(r io.Reader) (Slot, error) {
	present, err := DecodeBoolean(r)
	if err != nil {
		return Slot{}, err
	}
	if !present {
		return Slot{Present: false}, nil
	}

	itemID, err := DecodeInt16(r)
	if err != nil {
		return Slot{}, err
	}
	count, err := DecodeUint8(r)
	if err != nil {
		return Slot{}, err
	}
	damage, err := DecodeInt16(r)
	if err != nil {
		return Slot{}, err
	}

	tag, _, err := nbt.NewReaderFrom(r).ReadTag(true)
	if err != nil {
		return Slot{}, err
	}
	if _, isEnd := tag.(nbt.End); isEnd {
		tag = nil
	}

	return Slot{
		Present:    true,
		ItemID:     int16(itemID),
		ItemCount:  uint8(count),
		ItemDamage: int16(damage),
		Tag:        tag,
	}, nil
}
