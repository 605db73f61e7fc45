package protocol

import "github.com/go-mc47/protocol/wire"

// Flat and simple-conditional clientbound Play packets. Every struct here
// is decoded and encoded by the reflection-driven codec in codec.go; the
// eleven genuine tagged unions live in tagged_unions.go and the two
// popcount-shaped chunk packets live in chunks.go.

type KeepAliveClientbound struct {
	KeepAliveID wire.VarInt
}

type JoinGame struct {
	EntityID         wire.Int32
	Gamemode         wire.Uint8
	Dimension        wire.Int8
	Difficulty       wire.Uint8
	MaxPlayers       wire.Uint8
	LevelType        wire.String
	ReducedDebugInfo wire.Boolean
}

type ChatMessageClientbound struct {
	Chat     wire.String
	Position wire.Int8
}

type TimeUpdate struct {
	WorldAge   wire.Int64
	TimeOfDay  wire.Int64
}

type EntityEquipment struct {
	EntityID wire.VarInt
	Slot     wire.Int16
	Item     wire.Slot
}

type SpawnPosition struct {
	Location wire.Position
}

type UpdateHealth struct {
	Health         wire.Float32
	Food           wire.VarInt
	FoodSaturation wire.Float32
}

type Respawn struct {
	Dimension  wire.Int32
	Difficulty wire.Uint8
	Gamemode   wire.Uint8
	LevelType  wire.String
}

type PlayerPositionAndLookClientbound struct {
	X, Y, Z    wire.Float64
	Yaw, Pitch wire.Float32
	Flags      wire.Int8
}

type HeldItemChangeClientbound struct {
	Slot wire.Int8
}

type UseBed struct {
	EntityID wire.VarInt
	Location wire.Position
}

type AnimationClientbound struct {
	EntityID  wire.VarInt
	Animation wire.Uint8
}

type SpawnPlayer struct {
	EntityID    wire.VarInt
	PlayerUUID  wire.UUID
	X, Y, Z     wire.Int32
	Yaw, Pitch  wire.Angle
	CurrentItem wire.Int16
	Metadata    wire.EntityMetadata
}

type CollectItem struct {
	CollectedEntityID wire.VarInt
	CollectorEntityID wire.VarInt
}

type SpawnMob struct {
	EntityID                        wire.VarInt
	Type                             wire.Uint8
	X, Y, Z                          wire.Int32
	Yaw, Pitch, HeadPitch            wire.Angle
	VelocityX, VelocityY, VelocityZ  wire.Int16
	Metadata                         wire.EntityMetadata
}

type SpawnPainting struct {
	EntityID  wire.VarInt
	Title     wire.String
	Location  wire.Position
	Direction wire.Int32
}

type SpawnExperienceOrb struct {
	EntityID wire.VarInt
	X, Y, Z  wire.Int32
	Count    wire.Int16
}

type EntityVelocity struct {
	EntityID                        wire.VarInt
	VelocityX, VelocityY, VelocityZ wire.Int16
}

type DestroyEntities struct {
	EntityIDs wire.PrefixedArray[wire.VarInt]
}

type Entity struct {
	EntityID wire.VarInt
}

type EntityRelativeMove struct {
	EntityID                wire.VarInt
	DeltaX, DeltaY, DeltaZ  wire.Int8
	OnGround                wire.Boolean
}

type EntityLook struct {
	EntityID   wire.VarInt
	Yaw, Pitch wire.Angle
	OnGround   wire.Boolean
}

type EntityLookAndRelativeMove struct {
	EntityID               wire.VarInt
	DeltaX, DeltaY, DeltaZ wire.Int8
	Yaw, Pitch             wire.Angle
	OnGround               wire.Boolean
}

type EntityTeleport struct {
	EntityID   wire.VarInt
	X, Y, Z    wire.Int32
	Yaw, Pitch wire.Angle
	OnGround   wire.Boolean
}

type EntityHeadLook struct {
	EntityID wire.VarInt
	HeadYaw  wire.Angle
}

type EntityStatus struct {
	EntityID     wire.Int32
	EntityStatus wire.Int8
}

type AttachEntity struct {
	EntityID  wire.Int32
	VehicleID wire.Int32
	Leash     wire.Boolean
}

type EntityMetadataPacket struct {
	EntityID wire.VarInt
	Metadata wire.EntityMetadata
}

type EntityEffect struct {
	EntityID       wire.VarInt
	EffectID       wire.Int8
	Amplifier      wire.Int8
	Duration       wire.VarInt
	HideParticles  wire.Boolean
}

type RemoveEntityEffect struct {
	EntityID wire.VarInt
	EffectID wire.Int8
}

type SetExperience struct {
	ExperienceBar    wire.Float32
	Level            wire.VarInt
	TotalExperience  wire.VarInt
}

// EntityPropertyModifier is an attribute modifier attached to an
// EntityProperties entry.
type EntityPropertyModifier struct {
	UUID      wire.UUID
	Amount    wire.Float64
	Operation wire.Int8
}

// EntityProperty is one attribute of EntityProperties.
type EntityProperty struct {
	Key       wire.String
	Value     wire.Float64
	Modifiers []EntityPropertyModifier
}

type EntityProperties struct {
	EntityID   wire.VarInt
	Properties []EntityProperty
}

// MultiBlockChangeRecord is one entry of MultiBlockChange.Records.
type MultiBlockChangeRecord struct {
	HorizontalPosition wire.Uint8
	YCoordinate        wire.Uint8
	BlockID            wire.VarInt
}

type MultiBlockChange struct {
	ChunkX  wire.Int32
	ChunkZ  wire.Int32
	Records []MultiBlockChangeRecord
}

type BlockChange struct {
	Location wire.Position
	BlockID  wire.VarInt
}

type BlockAction struct {
	Location  wire.Position
	Byte1     wire.Uint8
	Byte2     wire.Uint8
	BlockType wire.VarInt
}

type BlockBreakAnimation struct {
	EntityID     wire.VarInt
	Location     wire.Position
	DestroyStage wire.Int8
}

type EffectPacket struct {
	EffectID              wire.Int32
	Location              wire.Position
	Data                  wire.Int32
	DisableRelativeVolume wire.Boolean
}

type SoundEffect struct {
	SoundName                                  wire.String
	EffectPositionX, EffectPositionY, EffectPositionZ wire.Int32
	Volume                                      wire.Float32
	Pitch                                       wire.Uint8
}

type Particle struct {
	ParticleID                wire.Int32
	LongDistance              wire.Boolean
	X, Y, Z                   wire.Float32
	OffsetX, OffsetY, OffsetZ wire.Float32
	ParticleData              wire.Float32
	ParticleCount             wire.Int32
	Data                      wire.PrefixedArray[wire.VarInt]
}

type ChangeGameState struct {
	Reason wire.Uint8
	Value  wire.Float32
}

type SpawnGlobalEntity struct {
	EntityID wire.VarInt
	Type     wire.Int8
	X, Y, Z  wire.Int32
}

type CloseWindowClientbound struct {
	WindowID wire.Uint8
}

type SetSlot struct {
	WindowID wire.Int8
	Slot     wire.Int16
	SlotData wire.Slot
}

type WindowItems struct {
	WindowID wire.Uint8
	Slots    []wire.Slot
}

type WindowProperty struct {
	WindowID wire.Uint8
	Property wire.Int16
	Value    wire.Int16
}

type ConfirmTransactionClientbound struct {
	WindowID     wire.Int8
	ActionNumber wire.Int16
	Accepted     wire.Boolean
}

type UpdateSignClientbound struct {
	Location               wire.Position
	Line1, Line2, Line3, Line4 wire.String
}

type OpenSignEditor struct {
	Location wire.Position
}

// Statistic is one entry of the Statistics packet.
type Statistic struct {
	Name  wire.String
	Value wire.VarInt
}

type Statistics struct {
	Statistics []Statistic
}

type PlayerAbilitiesClientbound struct {
	Flags                wire.Int8
	FlyingSpeed          wire.Float32
	FieldOfViewModifier  wire.Float32
}

type TabCompleteClientbound struct {
	Matches []wire.String
}

type DisplayScoreboard struct {
	Position  wire.Int8
	ScoreName wire.String
}

type DisconnectPlay struct {
	Reason wire.String
}

type ServerDifficulty struct {
	Difficulty wire.Uint8
}

type Camera struct {
	CameraID wire.VarInt
}

type PlayerListHeaderAndFooter struct {
	Header wire.String
	Footer wire.String
}

type ResourcePackSend struct {
	URL  wire.String
	Hash wire.String
}
