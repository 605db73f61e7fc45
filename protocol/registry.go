package protocol

import (
	"bytes"
	"fmt"
	"io"
	"reflect"

	"github.com/go-mc47/protocol/framer"
	"github.com/go-mc47/protocol/wire"
)

// packetKind pairs a phase and direction the way the wire protocol scopes
// packet IDs: the same numeric ID means different things in different
// phases, and serverbound/clientbound ID spaces never overlap in meaning
// even when their numbers do.
type packetKind struct {
	phase framer.State
	bound framer.Bound
	id    wire.VarInt
}

// nativePacket is satisfied by the hand-written tagged-union and special
// packet types; everything else goes through the reflection codec in
// codec.go.
type nativePacket interface {
	wire.Marshaler
	DecodeFrom(r io.Reader) error
}

// schemaEntry describes one registered packet type: a zero-value factory
// plus whether it codes itself or needs the reflection codec.
type schemaEntry struct {
	new    func() any
	native bool
}

var schema = map[packetKind]schemaEntry{}

// idOf maps a packet's concrete type back to the (phase, bound, id) triples
// it was registered under, so that send() can look up an outgoing packet's
// wire ID from the value alone rather than requiring the caller to track it.
// A slice, not a single kind: SetCompression (and potentially others) is
// registered verbatim under more than one phase, so the type alone is
// ambiguous without the session's current phase to disambiguate.
var idOf = map[reflect.Type][]packetKind{}

func register(phase framer.State, bound framer.Bound, id wire.VarInt, native bool, factory func() any) {
	kind := packetKind{phase, bound, id}
	schema[kind] = schemaEntry{new: factory, native: native}
	t := reflect.TypeOf(factory())
	idOf[t] = append(idOf[t], kind)
}

func init() {
	h, l, p := framer.StateHandshake, framer.StateLogin, framer.StatePlay
	sb, cb := framer.Serverbound, framer.Clientbound

	register(h, sb, 0x00, false, func() any { return new(Handshake) })

	register(l, sb, 0x00, false, func() any { return new(LoginStart) })
	register(l, sb, 0x01, false, func() any { return new(EncryptionResponse) })
	register(l, cb, 0x00, false, func() any { return new(LoginDisconnect) })
	register(l, cb, 0x01, false, func() any { return new(EncryptionRequest) })
	register(l, cb, 0x02, false, func() any { return new(LoginSuccess) })
	register(l, cb, 0x03, false, func() any { return new(SetCompression) })

	register(p, cb, 0x00, false, func() any { return new(KeepAliveClientbound) })
	register(p, cb, 0x01, false, func() any { return new(JoinGame) })
	register(p, cb, 0x02, false, func() any { return new(ChatMessageClientbound) })
	register(p, cb, 0x03, false, func() any { return new(TimeUpdate) })
	register(p, cb, 0x04, false, func() any { return new(EntityEquipment) })
	register(p, cb, 0x05, false, func() any { return new(SpawnPosition) })
	register(p, cb, 0x06, false, func() any { return new(UpdateHealth) })
	register(p, cb, 0x07, false, func() any { return new(Respawn) })
	register(p, cb, 0x08, false, func() any { return new(PlayerPositionAndLookClientbound) })
	register(p, cb, 0x09, false, func() any { return new(HeldItemChangeClientbound) })
	register(p, cb, 0x0A, false, func() any { return new(UseBed) })
	register(p, cb, 0x0B, false, func() any { return new(AnimationClientbound) })
	register(p, cb, 0x0C, false, func() any { return new(SpawnPlayer) })
	register(p, cb, 0x0D, false, func() any { return new(CollectItem) })
	register(p, cb, 0x0E, true, func() any { return new(SpawnObject) })
	register(p, cb, 0x0F, false, func() any { return new(SpawnMob) })
	register(p, cb, 0x10, false, func() any { return new(SpawnPainting) })
	register(p, cb, 0x11, false, func() any { return new(SpawnExperienceOrb) })
	register(p, cb, 0x12, false, func() any { return new(EntityVelocity) })
	register(p, cb, 0x13, false, func() any { return new(DestroyEntities) })
	register(p, cb, 0x14, false, func() any { return new(Entity) })
	register(p, cb, 0x15, false, func() any { return new(EntityRelativeMove) })
	register(p, cb, 0x16, false, func() any { return new(EntityLook) })
	register(p, cb, 0x17, false, func() any { return new(EntityLookAndRelativeMove) })
	register(p, cb, 0x18, false, func() any { return new(EntityTeleport) })
	register(p, cb, 0x19, false, func() any { return new(EntityHeadLook) })
	register(p, cb, 0x1A, false, func() any { return new(EntityStatus) })
	register(p, cb, 0x1B, false, func() any { return new(AttachEntity) })
	register(p, cb, 0x1C, false, func() any { return new(EntityMetadataPacket) })
	register(p, cb, 0x1D, false, func() any { return new(EntityEffect) })
	register(p, cb, 0x1E, false, func() any { return new(RemoveEntityEffect) })
	register(p, cb, 0x1F, false, func() any { return new(SetExperience) })
	register(p, cb, 0x20, false, func() any { return new(EntityProperties) })
	register(p, cb, 0x21, true, func() any { return new(ChunkData) })
	register(p, cb, 0x22, false, func() any { return new(MultiBlockChange) })
	register(p, cb, 0x23, false, func() any { return new(BlockChange) })
	register(p, cb, 0x24, false, func() any { return new(BlockAction) })
	register(p, cb, 0x25, false, func() any { return new(BlockBreakAnimation) })
	register(p, cb, 0x26, true, func() any { return new(MapChunkBulk) })
	register(p, cb, 0x27, true, func() any { return new(Explosion) })
	register(p, cb, 0x28, false, func() any { return new(EffectPacket) })
	register(p, cb, 0x29, false, func() any { return new(SoundEffect) })
	register(p, cb, 0x2A, false, func() any { return new(Particle) })
	register(p, cb, 0x2B, false, func() any { return new(ChangeGameState) })
	register(p, cb, 0x2C, false, func() any { return new(SpawnGlobalEntity) })
	register(p, cb, 0x2D, true, func() any { return new(OpenWindow) })
	register(p, cb, 0x2E, false, func() any { return new(CloseWindowClientbound) })
	register(p, cb, 0x2F, false, func() any { return new(SetSlot) })
	register(p, cb, 0x30, false, func() any { return new(WindowItems) })
	register(p, cb, 0x31, false, func() any { return new(WindowProperty) })
	register(p, cb, 0x32, false, func() any { return new(ConfirmTransactionClientbound) })
	register(p, cb, 0x33, false, func() any { return new(UpdateSignClientbound) })
	register(p, cb, 0x34, true, func() any { return new(Map) })
	register(p, cb, 0x35, true, func() any { return new(UpdateBlockEntity) })
	register(p, cb, 0x36, false, func() any { return new(OpenSignEditor) })
	register(p, cb, 0x37, false, func() any { return new(Statistics) })
	register(p, cb, 0x38, true, func() any { return new(PlayerListItem) })
	register(p, cb, 0x39, false, func() any { return new(PlayerAbilitiesClientbound) })
	register(p, cb, 0x3A, false, func() any { return new(TabCompleteClientbound) })
	register(p, cb, 0x3B, true, func() any { return new(ScoreboardObjective) })
	register(p, cb, 0x3C, true, func() any { return new(UpdateScore) })
	register(p, cb, 0x3D, false, func() any { return new(DisplayScoreboard) })
	register(p, cb, 0x3E, true, func() any { return new(Teams) })
	register(p, cb, 0x3F, true, func() any { return new(PluginMessageClientbound) })
	register(p, cb, 0x40, false, func() any { return new(DisconnectPlay) })
	register(p, cb, 0x41, false, func() any { return new(ServerDifficulty) })
	register(p, cb, 0x42, true, func() any { return new(CombatEvent) })
	register(p, cb, 0x43, false, func() any { return new(Camera) })
	register(p, cb, 0x44, true, func() any { return new(WorldBorder) })
	register(p, cb, 0x45, true, func() any { return new(Title) })
	register(p, cb, 0x46, false, func() any { return new(SetCompression) })
	register(p, cb, 0x47, false, func() any { return new(PlayerListHeaderAndFooter) })
	register(p, cb, 0x48, false, func() any { return new(ResourcePackSend) })
	register(p, cb, 0x49, true, func() any { return new(UpdateEntityNBT) })

	register(p, sb, 0x00, false, func() any { return new(KeepAliveServerbound) })
	register(p, sb, 0x01, false, func() any { return new(ChatMessageServerbound) })
	register(p, sb, 0x02, true, func() any { return new(UseEntity) })
	register(p, sb, 0x03, false, func() any { return new(PlayerPacket) })
	register(p, sb, 0x04, false, func() any { return new(PlayerPosition) })
	register(p, sb, 0x05, false, func() any { return new(PlayerLook) })
	register(p, sb, 0x06, false, func() any { return new(PlayerPositionAndLookServerbound) })
	register(p, sb, 0x07, false, func() any { return new(PlayerDigging) })
	register(p, sb, 0x08, false, func() any { return new(PlayerBlockPlacement) })
	register(p, sb, 0x09, false, func() any { return new(HeldItemChangeServerbound) })
	register(p, sb, 0x0A, false, func() any { return new(AnimationServerbound) })
	register(p, sb, 0x0B, false, func() any { return new(EntityAction) })
	register(p, sb, 0x0C, false, func() any { return new(SteerVehicle) })
	register(p, sb, 0x0D, false, func() any { return new(CloseWindowServerbound) })
	register(p, sb, 0x0E, false, func() any { return new(ClickWindow) })
	register(p, sb, 0x0F, false, func() any { return new(ConfirmTransactionServerbound) })
	register(p, sb, 0x10, false, func() any { return new(CreativeInventoryAction) })
	register(p, sb, 0x11, false, func() any { return new(EnchantItem) })
	register(p, sb, 0x12, false, func() any { return new(UpdateSignServerbound) })
	register(p, sb, 0x13, false, func() any { return new(PlayerAbilitiesServerbound) })
	register(p, sb, 0x14, true, func() any { return new(TabCompleteServerbound) })
	register(p, sb, 0x15, false, func() any { return new(ClientSettings) })
	register(p, sb, 0x16, false, func() any { return new(ClientStatus) })
	register(p, sb, 0x17, true, func() any { return new(PluginMessageServerbound) })
	register(p, sb, 0x18, false, func() any { return new(Spectate) })
	register(p, sb, 0x19, false, func() any { return new(ResourcePackStatus) })
}

// IDOf returns the wire ID and direction a packet value was registered
// under in the given phase, keyed by its concrete type. pkt must be a
// pointer to a registered packet struct. Returns ErrUnknownPacket if pkt's
// type has no schema entry in phase.
func IDOf(phase framer.State, pkt any) (bound framer.Bound, id wire.VarInt, err error) {
	kinds := idOf[reflect.TypeOf(pkt)]
	for _, k := range kinds {
		if k.phase == phase {
			return k.bound, k.id, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %T has no schema entry in phase %v", ErrUnknownPacket, pkt, phase)
}

// Lookup returns a zero-value instance of the packet type registered for
// (phase, bound, id), or ErrUnknownPacket if no schema entry matches.
func Lookup(phase framer.State, bound framer.Bound, id wire.VarInt) (any, error) {
	entry, ok := schema[packetKind{phase, bound, id}]
	if !ok {
		return nil, fmt.Errorf("%w: phase=%v bound=%v id=0x%02X", ErrUnknownPacket, phase, bound, id)
	}
	return entry.new(), nil
}

// EncodePacket serializes a packet value (as returned by Lookup, or any
// pointer to a registered packet struct) to its wire payload, dispatching
// to the type's own Encode when it is a hand-written tagged union and to
// the reflection codec otherwise.
func EncodePacket(phase framer.State, bound framer.Bound, id wire.VarInt, pkt any) ([]byte, error) {
	entry, ok := schema[packetKind{phase, bound, id}]
	if !ok {
		return nil, fmt.Errorf("%w: phase=%v bound=%v id=0x%02X", ErrUnknownPacket, phase, bound, id)
	}
	var buf bytes.Buffer
	if entry.native {
		m, ok := pkt.(wire.Marshaler)
		if !ok {
			return nil, fmt.Errorf("protocol: registered native packet %T lacks Encode", pkt)
		}
		if err := m.Encode(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	pb := wire.NewWriterTo(&buf)
	if err := Encode(pb, pkt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodePacket decodes payload into a new instance of the packet type
// registered for (phase, bound, id).
func DecodePacket(phase framer.State, bound framer.Bound, id wire.VarInt, payload []byte) (any, error) {
	entry, ok := schema[packetKind{phase, bound, id}]
	if !ok {
		return nil, fmt.Errorf("%w: phase=%v bound=%v id=0x%02X", ErrUnknownPacket, phase, bound, id)
	}
	pkt := entry.new()
	if entry.native {
		d, ok := pkt.(nativePacket)
		if !ok {
			return nil, fmt.Errorf("protocol: registered native packet %T lacks DecodeFrom", pkt)
		}
		if err := d.DecodeFrom(bytes.NewReader(payload)); err != nil {
			return nil, err
		}
		return pkt, nil
	}
	pb := wire.NewReader(payload)
	if err := Decode(pb, pkt); err != nil {
		return nil, err
	}
	return pkt, nil
}
