package protocol

import (
	"io"

	"github.com/go-mc47/protocol/nbt"
	"github.com/go-mc47/protocol/wire"
)

// UpdateScore action values.
const (
	UpdateScoreCreateOrUpdate wire.Uint8 = 0
	UpdateScoreRemove         wire.Uint8 = 1
)

// UpdateScore is clientbound Play 0x3c. Value is present for every action
// except Remove, a not-equal condition the tag-based reflection codec
// cannot express, so this packet encodes and decodes itself by hand.
type UpdateScore struct {
	ScoreName     wire.String
	Action        wire.Uint8
	ObjectiveName wire.String
	Value         wire.VarInt
}

func (p UpdateScore) Encode(w io.Writer) error {
	if err := p.ScoreName.Encode(w); err != nil {
		return err
	}
	if err := p.Action.Encode(w); err != nil {
		return err
	}
	if err := p.ObjectiveName.Encode(w); err != nil {
		return err
	}
	if p.Action != UpdateScoreRemove {
		return p.Value.Encode(w)
	}
	return nil
}

func (p *UpdateScore) DecodeFrom(r io.Reader) error {
	name, err := wire.DecodeString(r, 0)
	if err != nil {
		return err
	}
	action, err := wire.DecodeUint8(r)
	if err != nil {
		return err
	}
	objective, err := wire.DecodeString(r, 0)
	if err != nil {
		return err
	}
	p.ScoreName, p.Action, p.ObjectiveName = name, action, objective
	if action == UpdateScoreRemove {
		p.Value = 0
		return nil
	}
	value, err := wire.DecodeVarInt(r)
	if err != nil {
		return err
	}
	p.Value = value
	return nil
}

// PluginMessageClientbound is clientbound Play 0x3f. Data runs to the end
// of the packet with no length prefix of its own, so it is read with
// io.ReadAll against the packet's own framed boundary rather than a
// counted field.
type PluginMessageClientbound struct {
	Channel wire.String
	Data    []byte
}

func (p PluginMessageClientbound) Encode(w io.Writer) error {
	if err := p.Channel.Encode(w); err != nil {
		return err
	}
	_, err := w.Write(p.Data)
	return err
}

func (p *PluginMessageClientbound) DecodeFrom(r io.Reader) error {
	channel, err := wire.DecodeString(r, 0)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	p.Channel, p.Data = channel, data
	return nil
}

// PluginMessageServerbound is serverbound Play 0x17, symmetric with
// PluginMessageClientbound.
type PluginMessageServerbound struct {
	Channel wire.String
	Data    []byte
}

func (p PluginMessageServerbound) Encode(w io.Writer) error {
	if err := p.Channel.Encode(w); err != nil {
		return err
	}
	_, err := w.Write(p.Data)
	return err
}

func (p *PluginMessageServerbound) DecodeFrom(r io.Reader) error {
	channel, err := wire.DecodeString(r, 0)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	p.Channel, p.Data = channel, data
	return nil
}

// UpdateBlockEntity is clientbound Play 0x35. NBTData is a network-format
// NBT compound (or a single TagEnd byte for "no data"), not a length
// counted blob, so it is read with the nbt package's streaming reader.
type UpdateBlockEntity struct {
	Location wire.Position
	Action   wire.Uint8
	NBTData  nbt.Tag
}

func (p UpdateBlockEntity) Encode(w io.Writer) error {
	if err := p.Location.Encode(w); err != nil {
		return err
	}
	if err := p.Action.Encode(w); err != nil {
		return err
	}
	if p.NBTData == nil {
		return wire.Uint8(nbt.TagEnd).Encode(w)
	}
	return nbt.NewWriterTo(w).WriteTag(p.NBTData, "", true)
}

func (p *UpdateBlockEntity) DecodeFrom(r io.Reader) error {
	loc, err := wire.DecodePosition(r)
	if err != nil {
		return err
	}
	action, err := wire.DecodeUint8(r)
	if err != nil {
		return err
	}
	tag, _, err := nbt.NewReaderFrom(r).ReadTag(true)
	if err != nil {
		return err
	}
	if _, isEnd := tag.(nbt.End); isEnd {
		tag = nil
	}
	p.Location, p.Action, p.NBTData = loc, action, tag
	return nil
}

// ExplosionRecord is one destroyed-block offset in Explosion.Records.
type ExplosionRecord struct {
	X, Y, Z wire.Int8
}

// Explosion is clientbound Play 0x27. Its record count is a fixed-width
// Int32, unlike the VarInt counts used almost everywhere else in this
// protocol version, so the reflection codec's always-VarInt slice handling
// does not apply and it is encoded and decoded by hand.
type Explosion struct {
	X, Y, Z                      wire.Float32
	Radius                       wire.Float32
	Records                      []ExplosionRecord
	PlayerMotionX, PlayerMotionY, PlayerMotionZ wire.Float32
}

func (p Explosion) Encode(w io.Writer) error {
	for _, f := range []wire.Float32{p.X, p.Y, p.Z, p.Radius} {
		if err := f.Encode(w); err != nil {
			return err
		}
	}
	if err := wire.Int32(len(p.Records)).Encode(w); err != nil {
		return err
	}
	for _, rec := range p.Records {
		if err := rec.X.Encode(w); err != nil {
			return err
		}
		if err := rec.Y.Encode(w); err != nil {
			return err
		}
		if err := rec.Z.Encode(w); err != nil {
			return err
		}
	}
	for _, f := range []wire.Float32{p.PlayerMotionX, p.PlayerMotionY, p.PlayerMotionZ} {
		if err := f.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (p *Explosion) DecodeFrom(r io.Reader) error {
	x, err := wire.DecodeFloat32(r)
	if err != nil {
		return err
	}
	y, err := wire.DecodeFloat32(r)
	if err != nil {
		return err
	}
	z, err := wire.DecodeFloat32(r)
	if err != nil {
		return err
	}
	radius, err := wire.DecodeFloat32(r)
	if err != nil {
		return err
	}
	count, err := wire.DecodeInt32(r)
	if err != nil {
		return err
	}
	if count < 0 {
		return wire.ErrMalformed("explosion: negative record count")
	}
	records := make([]ExplosionRecord, 0, count)
	for i := wire.Int32(0); i < count; i++ {
		rx, err := wire.DecodeInt8(r)
		if err != nil {
			return err
		}
		ry, err := wire.DecodeInt8(r)
		if err != nil {
			return err
		}
		rz, err := wire.DecodeInt8(r)
		if err != nil {
			return err
		}
		records = append(records, ExplosionRecord{X: rx, Y: ry, Z: rz})
	}
	mx, err := wire.DecodeFloat32(r)
	if err != nil {
		return err
	}
	my, err := wire.DecodeFloat32(r)
	if err != nil {
		return err
	}
	mz, err := wire.DecodeFloat32(r)
	if err != nil {
		return err
	}
	p.X, p.Y, p.Z, p.Radius = x, y, z, radius
	p.Records = records
	p.PlayerMotionX, p.PlayerMotionY, p.PlayerMotionZ = mx, my, mz
	return nil
}

// UpdateEntityNBT is clientbound Play 0x49. Tag is read the same way as
// UpdateBlockEntity's NBTData.
type UpdateEntityNBT struct {
	EntityID wire.VarInt
	Tag      nbt.Tag
}

func (p UpdateEntityNBT) Encode(w io.Writer) error {
	if err := p.EntityID.Encode(w); err != nil {
		return err
	}
	if p.Tag == nil {
		return wire.Uint8(nbt.TagEnd).Encode(w)
	}
	return nbt.NewWriterTo(w).WriteTag(p.Tag, "", true)
}

func (p *UpdateEntityNBT) DecodeFrom(r io.Reader) error {
	id, err := wire.DecodeVarInt(r)
	if err != nil {
		return err
	}
	tag, _, err := nbt.NewReaderFrom(r).ReadTag(true)
	if err != nil {
		return err
	}
	if _, isEnd := tag.(nbt.End); isEnd {
		tag = nil
	}
	p.EntityID, p.Tag = id, tag
	return nil
}
