package protocol

import "github.com/go-mc47/protocol/wire"

// Flat and simple-conditional serverbound Play packets. UseEntity and
// TabCompleteServerbound are genuine tagged unions and live in
// tagged_unions.go instead.

type KeepAliveServerbound struct {
	KeepAliveID wire.VarInt
}

type ChatMessageServerbound struct {
	Message wire.String
}

type PlayerPacket struct {
	OnGround wire.Boolean
}

type PlayerPosition struct {
	X, Y, Z  wire.Float64
	OnGround wire.Boolean
}

type PlayerLook struct {
	Yaw, Pitch wire.Float32
	OnGround   wire.Boolean
}

type PlayerPositionAndLookServerbound struct {
	X, Y, Z    wire.Float64
	Yaw, Pitch wire.Float32
	OnGround   wire.Boolean
}

// Digging status values carried by PlayerDigging.Status.
const (
	DiggingStartedDigging         wire.VarInt = 0
	DiggingCancelledDigging       wire.VarInt = 1
	DiggingFinishedDigging        wire.VarInt = 2
	DiggingDropItemStack          wire.VarInt = 3
	DiggingDropItem               wire.VarInt = 4
	DiggingShootArrowOrFinishEating wire.VarInt = 5
)

type PlayerDigging struct {
	Status   wire.VarInt
	Location wire.Position
	Face     wire.Int8
}

type PlayerBlockPlacement struct {
	Location           wire.Position
	Face                wire.Int8
	HeldItem            wire.Slot
	CursorX, CursorY, CursorZ wire.Int8
}

type HeldItemChangeServerbound struct {
	Slot wire.Int16
}

type AnimationServerbound struct{}

// Entity action action-id values for EntityAction.ActionID.
const (
	EntityActionStartSneaking      wire.VarInt = 0
	EntityActionStopSneaking       wire.VarInt = 1
	EntityActionLeaveBed           wire.VarInt = 2
	EntityActionStartSprinting     wire.VarInt = 3
	EntityActionStopSprinting      wire.VarInt = 4
	EntityActionJumpWithHorse      wire.VarInt = 5
	EntityActionOpenRiddenHorseInv wire.VarInt = 6
)

type EntityAction struct {
	EntityID       wire.VarInt
	ActionID       wire.VarInt
	JumpBoost      wire.VarInt
}

type SteerVehicle struct {
	Sideways, Forward wire.Float32
	Flags             wire.Uint8
}

type CloseWindowServerbound struct {
	WindowID wire.Uint8
}

type ClickWindow struct {
	WindowID     wire.Uint8
	Slot         wire.Int16
	Button       wire.Int8
	ActionNumber wire.Int16
	Mode         wire.Int8
	ClickedItem  wire.Slot
}

type ConfirmTransactionServerbound struct {
	WindowID     wire.Int8
	ActionNumber wire.Int16
	Accepted     wire.Boolean
}

type CreativeInventoryAction struct {
	Slot     wire.Int16
	ClickedItem wire.Slot
}

type EnchantItem struct {
	WindowID     wire.Int8
	Enchantment  wire.Int8
}

type UpdateSignServerbound struct {
	Location                   wire.Position
	Line1, Line2, Line3, Line4 wire.String
}

type PlayerAbilitiesServerbound struct {
	Flags       wire.Int8
	FlyingSpeed wire.Float32
	WalkingSpeed wire.Float32
}

type ClientSettings struct {
	Locale             wire.String
	ViewDistance       wire.Int8
	ChatMode           wire.Int8
	ChatColors         wire.Boolean
	DisplayedSkinParts wire.Uint8
}

// Client status actions for ClientStatus.ActionID.
const (
	ClientStatusPerformRespawn   wire.VarInt = 0
	ClientStatusRequestStats     wire.VarInt = 1
	ClientStatusOpenInventory    wire.VarInt = 2
)

type ClientStatus struct {
	ActionID wire.VarInt
}

type Spectate struct {
	TargetPlayer wire.UUID
}

// Resource pack status results for ResourcePackStatus.Result.
const (
	ResourcePackSuccessfullyLoaded wire.VarInt = 0
	ResourcePackDeclined           wire.VarInt = 1
	ResourcePackFailedDownload     wire.VarInt = 2
	ResourcePackAccepted           wire.VarInt = 3
)

type ResourcePackStatus struct {
	Result wire.VarInt
}
