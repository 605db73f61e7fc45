package protocol

import (
	"io"
	"math/bits"

	"github.com/go-mc47/protocol/wire"
)

const (
	chunkSectionBlocks   = 4096
	chunkSectionNibbles  = 2048
)

// ChunkSection is one 16x16x16 slab of a chunk column: raw block-id bytes,
// block-metadata nibbles, block-light nibbles, and sky-light nibbles. Each
// slice is already the full fixed width (4096, 2048, 2048, 2048); nibble
// packing/unpacking is left to the caller that interprets block state.
type ChunkSection struct {
	BlockIDs      []byte
	BlockMetadata []byte
	BlockLight    []byte
	SkyLight      []byte
}

func decodeChunkSection(r io.Reader, withSkyLight bool) (ChunkSection, error) {
	var s ChunkSection
	s.BlockIDs = make([]byte, chunkSectionBlocks)
	if _, err := io.ReadFull(r, s.BlockIDs); err != nil {
		return ChunkSection{}, err
	}
	s.BlockMetadata = make([]byte, chunkSectionNibbles)
	if _, err := io.ReadFull(r, s.BlockMetadata); err != nil {
		return ChunkSection{}, err
	}
	s.BlockLight = make([]byte, chunkSectionNibbles)
	if _, err := io.ReadFull(r, s.BlockLight); err != nil {
		return ChunkSection{}, err
	}
	if withSkyLight {
		s.SkyLight = make([]byte, chunkSectionNibbles)
		if _, err := io.ReadFull(r, s.SkyLight); err != nil {
			return ChunkSection{}, err
		}
	}
	return s, nil
}

func (s ChunkSection) encode(w io.Writer, withSkyLight bool) error {
	if _, err := w.Write(s.BlockIDs); err != nil {
		return err
	}
	if _, err := w.Write(s.BlockMetadata); err != nil {
		return err
	}
	if _, err := w.Write(s.BlockLight); err != nil {
		return err
	}
	if withSkyLight {
		_, err := w.Write(s.SkyLight)
		return err
	}
	return nil
}

// ChunkData is clientbound Play 0x21. The number of sections equals
// popcount(PrimaryBitMask); overworld columns always carry sky light, so
// this engine treats SkyLight as always present (there is no separate
// sky_light_sent flag on this packet, unlike MapChunkBulk).
type ChunkData struct {
	ChunkX              wire.Int32
	ChunkZ              wire.Int32
	GroundUpContinuous  wire.Boolean
	PrimaryBitMask      wire.Uint16
	Sections            []ChunkSection
}

func (p ChunkData) Encode(w io.Writer) error {
	if err := p.ChunkX.Encode(w); err != nil {
		return err
	}
	if err := p.ChunkZ.Encode(w); err != nil {
		return err
	}
	if err := p.GroundUpContinuous.Encode(w); err != nil {
		return err
	}
	if err := p.PrimaryBitMask.Encode(w); err != nil {
		return err
	}
	size := len(p.Sections) * (chunkSectionBlocks + 3*chunkSectionNibbles)
	if err := wire.VarInt(size).Encode(w); err != nil {
		return err
	}
	for _, s := range p.Sections {
		if err := s.encode(w, true); err != nil {
			return err
		}
	}
	return nil
}

func (p *ChunkData) DecodeFrom(r io.Reader) error {
	x, err := wire.DecodeInt32(r)
	if err != nil {
		return err
	}
	z, err := wire.DecodeInt32(r)
	if err != nil {
		return err
	}
	continuous, err := wire.DecodeBoolean(r)
	if err != nil {
		return err
	}
	mask, err := wire.DecodeUint16(r)
	if err != nil {
		return err
	}
	if _, err := wire.DecodeVarInt(r); err != nil { // byte-length prefix, derivable from the mask
		return err
	}
	sections := make([]ChunkSection, 0, bits.OnesCount16(uint16(mask)))
	for i := 0; i < bits.OnesCount16(uint16(mask)); i++ {
		s, err := decodeChunkSection(r, true)
		if err != nil {
			return err
		}
		sections = append(sections, s)
	}
	p.ChunkX, p.ChunkZ, p.GroundUpContinuous, p.PrimaryBitMask, p.Sections = x, z, continuous, mask, sections
	return nil
}

// ChunkColumnMeta is one entry of MapChunkBulk's per-column metadata list.
type ChunkColumnMeta struct {
	ChunkX         wire.Int32
	ChunkZ         wire.Int32
	PrimaryBitMask wire.Uint16
}

// MapChunkBulk is clientbound Play 0x26: a batch of whole chunk columns
// sent at once (typically on join). SkyLightSent gates whether every
// section across every column carries its sky-light nibble array.
type MapChunkBulk struct {
	SkyLightSent wire.Boolean
	Columns      []ChunkColumnMeta
	Sections     [][]ChunkSection // Sections[i] holds the popcount-derived sections for Columns[i]
}

func (p MapChunkBulk) Encode(w io.Writer) error {
	if err := p.SkyLightSent.Encode(w); err != nil {
		return err
	}
	if err := wire.VarInt(len(p.Columns)).Encode(w); err != nil {
		return err
	}
	for _, c := range p.Columns {
		if err := c.ChunkX.Encode(w); err != nil {
			return err
		}
		if err := c.ChunkZ.Encode(w); err != nil {
			return err
		}
		if err := c.PrimaryBitMask.Encode(w); err != nil {
			return err
		}
	}
	for _, columnSections := range p.Sections {
		for _, s := range columnSections {
			if err := s.encode(w, bool(p.SkyLightSent)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *MapChunkBulk) DecodeFrom(r io.Reader) error {
	skyLight, err := wire.DecodeBoolean(r)
	if err != nil {
		return err
	}
	count, err := wire.DecodeVarInt(r)
	if err != nil {
		return err
	}
	if count < 0 {
		return wire.ErrMalformed("map chunk bulk: negative column count")
	}
	columns := make([]ChunkColumnMeta, 0, count)
	for i := wire.VarInt(0); i < count; i++ {
		x, err := wire.DecodeInt32(r)
		if err != nil {
			return err
		}
		z, err := wire.DecodeInt32(r)
		if err != nil {
			return err
		}
		mask, err := wire.DecodeUint16(r)
		if err != nil {
			return err
		}
		columns = append(columns, ChunkColumnMeta{ChunkX: x, ChunkZ: z, PrimaryBitMask: mask})
	}
	sections := make([][]ChunkSection, len(columns))
	for i, c := range columns {
		n := bits.OnesCount16(uint16(c.PrimaryBitMask))
		colSections := make([]ChunkSection, 0, n)
		for j := 0; j < n; j++ {
			s, err := decodeChunkSection(r, bool(skyLight))
			if err != nil {
				return err
			}
			colSections = append(colSections, s)
		}
		sections[i] = colSections
	}
	p.SkyLightSent, p.Columns, p.Sections = skyLight, columns, sections
	return nil
}
