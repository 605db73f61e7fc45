package protocol

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeSection(fill byte, withSkyLight bool) ChunkSection {
	s := ChunkSection{
		BlockIDs:      bytes.Repeat([]byte{fill}, chunkSectionBlocks),
		BlockMetadata: bytes.Repeat([]byte{fill}, chunkSectionNibbles),
		BlockLight:    bytes.Repeat([]byte{fill}, chunkSectionNibbles),
	}
	if withSkyLight {
		s.SkyLight = bytes.Repeat([]byte{fill}, chunkSectionNibbles)
	}
	return s
}

func TestChunkDataSectionCountMatchesBitmaskPopcount(t *testing.T) {
	in := ChunkData{
		ChunkX:             0,
		ChunkZ:             0,
		GroundUpContinuous: true,
		PrimaryBitMask:     0b101, // two bits set
		Sections:           []ChunkSection{makeSection(1, true), makeSection(2, true)},
	}

	var buf bytes.Buffer
	require.NoError(t, in.Encode(&buf))

	var out ChunkData
	require.NoError(t, out.DecodeFrom(&buf))
	require.Len(t, out.Sections, 2)
	require.Equal(t, in, out)
}

func TestMapChunkBulkSkyLightGatesNibbleArray(t *testing.T) {
	in := MapChunkBulk{
		SkyLightSent: true,
		Columns: []ChunkColumnMeta{
			{ChunkX: 0, ChunkZ: 0, PrimaryBitMask: 0b1},
			{ChunkX: 1, ChunkZ: 0, PrimaryBitMask: 0b11},
		},
		Sections: [][]ChunkSection{
			{makeSection(9, true)},
			{makeSection(5, true), makeSection(6, true)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, in.Encode(&buf))

	var out MapChunkBulk
	require.NoError(t, out.DecodeFrom(&buf))
	require.Equal(t, in, out)
}

func TestMapChunkBulkWithoutSkyLight(t *testing.T) {
	in := MapChunkBulk{
		SkyLightSent: false,
		Columns:      []ChunkColumnMeta{{ChunkX: 2, ChunkZ: 2, PrimaryBitMask: 0b1}},
		Sections:     [][]ChunkSection{{makeSection(3, false)}},
	}

	var buf bytes.Buffer
	require.NoError(t, in.Encode(&buf))

	var out MapChunkBulk
	require.NoError(t, out.DecodeFrom(&buf))
	require.Equal(t, in, out)
	require.Nil(t, out.Sections[0][0].SkyLight)
}
