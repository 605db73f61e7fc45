package protocol

import (
	"fmt"
	"io"

	"github.com/go-mc47/protocol/wire"
)

// The packets in this file carry a leading discriminator whose value
// changes the shape of everything that follows. Modeling them as a flat
// struct with unused zero-valued fields for the branches not taken would
// make "is this byte meaningful" depend on a field the reader has to
// cross-reference by hand, so each gets its own Encode/DecodeFrom instead
// of the `mc:"..."` reflection codec used everywhere else in this package.

// --- PlayerListItem (clientbound Play 0x38) ---

// Player list actions (the Action discriminator).
const (
	PlayerListItemAddPlayer         wire.VarInt = 0
	PlayerListItemUpdateGamemode    wire.VarInt = 1
	PlayerListItemUpdatePing        wire.VarInt = 2
	PlayerListItemUpdateDisplayName wire.VarInt = 3
	PlayerListItemRemovePlayer      wire.VarInt = 4
)

// PlayerListItemProperty is one entry of a player's property list (the
// well-known "textures" property carrying the skin, among others).
type PlayerListItemProperty struct {
	Name      wire.String
	Value     wire.String
	Signed    wire.Boolean
	Signature wire.String
}

func (p PlayerListItemProperty) Encode(w io.Writer) error {
	if err := p.Name.Encode(w); err != nil {
		return err
	}
	if err := p.Value.Encode(w); err != nil {
		return err
	}
	if err := p.Signed.Encode(w); err != nil {
		return err
	}
	if !bool(p.Signed) {
		return nil
	}
	return p.Signature.Encode(w)
}

func decodePlayerListItemProperty(r io.Reader) (PlayerListItemProperty, error) {
	var p PlayerListItemProperty
	var err error
	if p.Name, err = wire.DecodeString(r, 0); err != nil {
		return p, err
	}
	if p.Value, err = wire.DecodeString(r, 0); err != nil {
		return p, err
	}
	if p.Signed, err = wire.DecodeBoolean(r); err != nil {
		return p, err
	}
	if p.Signed {
		if p.Signature, err = wire.DecodeString(r, 0); err != nil {
			return p, err
		}
	}
	return p, nil
}

// PlayerListItemAddPlayerTail is the tail carried by action AddPlayer.
type PlayerListItemAddPlayerTail struct {
	Name        wire.String
	Properties  wire.PrefixedArray[PlayerListItemProperty]
	Gamemode    wire.VarInt
	Ping        wire.VarInt
	DisplayName wire.PrefixedOptional[wire.String]
}

// PlayerListItemEntry is one row of PlayerListItem.Players. Exactly one of
// the tail fields is meaningful, selected by the enclosing action.
type PlayerListItemEntry struct {
	UUID wire.UUID

	AddPlayer         PlayerListItemAddPlayerTail // action 0
	Gamemode          wire.VarInt                 // action 1
	Ping              wire.VarInt                 // action 2
	DisplayName       wire.PrefixedOptional[wire.String]
}

// PlayerListItem is clientbound Play 0x38.
type PlayerListItem struct {
	Action  wire.VarInt
	Players []PlayerListItemEntry
}

func (p *PlayerListItem) Encode(w io.Writer) error {
	if err := p.Action.Encode(w); err != nil {
		return err
	}
	if err := wire.VarInt(len(p.Players)).Encode(w); err != nil {
		return err
	}
	for _, e := range p.Players {
		if err := e.UUID.Encode(w); err != nil {
			return err
		}
		switch p.Action {
		case PlayerListItemAddPlayer:
			if err := e.AddPlayer.Name.Encode(w); err != nil {
				return err
			}
			if err := e.AddPlayer.Properties.Encode(w); err != nil {
				return err
			}
			if err := e.AddPlayer.Gamemode.Encode(w); err != nil {
				return err
			}
			if err := e.AddPlayer.Ping.Encode(w); err != nil {
				return err
			}
			if err := e.AddPlayer.DisplayName.Encode(w); err != nil {
				return err
			}
		case PlayerListItemUpdateGamemode:
			if err := e.Gamemode.Encode(w); err != nil {
				return err
			}
		case PlayerListItemUpdatePing:
			if err := e.Ping.Encode(w); err != nil {
				return err
			}
		case PlayerListItemUpdateDisplayName:
			if err := e.DisplayName.Encode(w); err != nil {
				return err
			}
		case PlayerListItemRemovePlayer:
			// UUID only.
		default:
			return fmt.Errorf("protocol: unknown PlayerListItem action %d", p.Action)
		}
	}
	return nil
}

func (p *PlayerListItem) DecodeFrom(r io.Reader) error {
	action, err := wire.DecodeVarInt(r)
	if err != nil {
		return err
	}
	p.Action = action

	count, err := wire.DecodeVarInt(r)
	if err != nil {
		return err
	}
	if count < 0 {
		return wire.ErrMalformed("protocol: negative PlayerListItem count")
	}
	players := make([]PlayerListItemEntry, count)
	for i := range players {
		uuid, err := wire.DecodeUUID(r)
		if err != nil {
			return err
		}
		entry := PlayerListItemEntry{UUID: uuid}
		switch action {
		case PlayerListItemAddPlayer:
			if entry.AddPlayer.Name, err = wire.DecodeString(r, 0); err != nil {
				return err
			}
			if entry.AddPlayer.Properties, err = wire.DecodePrefixedArray(r, decodePlayerListItemProperty); err != nil {
				return err
			}
			if entry.AddPlayer.Gamemode, err = wire.DecodeVarInt(r); err != nil {
				return err
			}
			if entry.AddPlayer.Ping, err = wire.DecodeVarInt(r); err != nil {
				return err
			}
			if entry.AddPlayer.DisplayName, err = wire.DecodePrefixedOptional(r, func(r io.Reader) (wire.String, error) {
				return wire.DecodeString(r, 0)
			}); err != nil {
				return err
			}
		case PlayerListItemUpdateGamemode:
			if entry.Gamemode, err = wire.DecodeVarInt(r); err != nil {
				return err
			}
		case PlayerListItemUpdatePing:
			if entry.Ping, err = wire.DecodeVarInt(r); err != nil {
				return err
			}
		case PlayerListItemUpdateDisplayName:
			if entry.DisplayName, err = wire.DecodePrefixedOptional(r, func(r io.Reader) (wire.String, error) {
				return wire.DecodeString(r, 0)
			}); err != nil {
				return err
			}
		case PlayerListItemRemovePlayer:
			// UUID only.
		default:
			return fmt.Errorf("protocol: unknown PlayerListItem action %d", action)
		}
		players[i] = entry
	}
	p.Players = players
	return nil
}

// --- ScoreboardObjective (clientbound Play 0x3B) ---

const (
	ScoreboardObjectiveCreate = wire.Uint8(0)
	ScoreboardObjectiveRemove = wire.Uint8(1)
	ScoreboardObjectiveUpdate = wire.Uint8(2)
)

type ScoreboardObjective struct {
	ObjectiveName  wire.String
	Mode           wire.Uint8
	ObjectiveValue wire.String // present iff Mode == 0 || Mode == 2
	Type           wire.String // present iff Mode == 0 || Mode == 2
}

func (s *ScoreboardObjective) Encode(w io.Writer) error {
	if err := s.ObjectiveName.Encode(w); err != nil {
		return err
	}
	if err := s.Mode.Encode(w); err != nil {
		return err
	}
	if s.Mode == 0 || s.Mode == 2 {
		if err := s.ObjectiveValue.Encode(w); err != nil {
			return err
		}
		if err := s.Type.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (s *ScoreboardObjective) DecodeFrom(r io.Reader) error {
	var err error
	if s.ObjectiveName, err = wire.DecodeString(r, 0); err != nil {
		return err
	}
	if s.Mode, err = wire.DecodeUint8(r); err != nil {
		return err
	}
	if s.Mode == 0 || s.Mode == 2 {
		if s.ObjectiveValue, err = wire.DecodeString(r, 0); err != nil {
			return err
		}
		if s.Type, err = wire.DecodeString(r, 0); err != nil {
			return err
		}
	}
	return nil
}

// --- Teams (clientbound Play 0x3E) ---

type TeamsMetadata struct {
	DisplayName      wire.String
	Prefix           wire.String
	Suffix           wire.String
	FriendlyFire     wire.Uint8
	NameTagVisibility wire.String
	Color            wire.Uint8
}

type Teams struct {
	TeamName string
	Mode     wire.Uint8

	Metadata TeamsMetadata       // present iff Mode == 0 || Mode == 2
	Players  []wire.String // present iff Mode == 0 || 3 || 4
}

func (t *Teams) Encode(w io.Writer) error {
	if err := wire.String(t.TeamName).Encode(w); err != nil {
		return err
	}
	if err := t.Mode.Encode(w); err != nil {
		return err
	}
	if t.Mode == 0 || t.Mode == 2 {
		m := t.Metadata
		if err := m.DisplayName.Encode(w); err != nil {
			return err
		}
		if err := m.Prefix.Encode(w); err != nil {
			return err
		}
		if err := m.Suffix.Encode(w); err != nil {
			return err
		}
		if err := m.FriendlyFire.Encode(w); err != nil {
			return err
		}
		if err := m.NameTagVisibility.Encode(w); err != nil {
			return err
		}
		if err := m.Color.Encode(w); err != nil {
			return err
		}
	}
	if t.Mode == 0 || t.Mode == 3 || t.Mode == 4 {
		if err := wire.VarInt(len(t.Players)).Encode(w); err != nil {
			return err
		}
		for _, p := range t.Players {
			if err := p.Encode(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Teams) DecodeFrom(r io.Reader) error {
	name, err := wire.DecodeString(r, 0)
	if err != nil {
		return err
	}
	t.TeamName = string(name)
	if t.Mode, err = wire.DecodeUint8(r); err != nil {
		return err
	}
	if t.Mode == 0 || t.Mode == 2 {
		var m TeamsMetadata
		if m.DisplayName, err = wire.DecodeString(r, 0); err != nil {
			return err
		}
		if m.Prefix, err = wire.DecodeString(r, 0); err != nil {
			return err
		}
		if m.Suffix, err = wire.DecodeString(r, 0); err != nil {
			return err
		}
		if m.FriendlyFire, err = wire.DecodeUint8(r); err != nil {
			return err
		}
		if m.NameTagVisibility, err = wire.DecodeString(r, 0); err != nil {
			return err
		}
		if m.Color, err = wire.DecodeUint8(r); err != nil {
			return err
		}
		t.Metadata = m
	}
	if t.Mode == 0 || t.Mode == 3 || t.Mode == 4 {
		count, err := wire.DecodeVarInt(r)
		if err != nil {
			return err
		}
		if count < 0 {
			return wire.ErrMalformed("protocol: negative Teams player count")
		}
		players := make([]wire.String, count)
		for i := range players {
			if players[i], err = wire.DecodeString(r, 0); err != nil {
				return err
			}
		}
		t.Players = players
	}
	return nil
}

// --- CombatEvent (clientbound Play 0x42) ---

const (
	CombatEventEnter wire.VarInt = 0
	CombatEventEnd   wire.VarInt = 1
	CombatEventDeath wire.VarInt = 2
)

type CombatEvent struct {
	Event wire.VarInt

	Duration wire.VarInt // event == 1
	PlayerID wire.VarInt // event == 2
	EntityID wire.Int32  // event == 1 || event == 2
	Message  wire.String // event == 2
}

func (c *CombatEvent) Encode(w io.Writer) error {
	if err := c.Event.Encode(w); err != nil {
		return err
	}
	switch c.Event {
	case CombatEventEnter:
	case CombatEventEnd:
		if err := c.Duration.Encode(w); err != nil {
			return err
		}
		if err := c.EntityID.Encode(w); err != nil {
			return err
		}
	case CombatEventDeath:
		if err := c.PlayerID.Encode(w); err != nil {
			return err
		}
		if err := c.EntityID.Encode(w); err != nil {
			return err
		}
		if err := c.Message.Encode(w); err != nil {
			return err
		}
	default:
		return fmt.Errorf("protocol: unknown CombatEvent event %d", c.Event)
	}
	return nil
}

func (c *CombatEvent) DecodeFrom(r io.Reader) error {
	event, err := wire.DecodeVarInt(r)
	if err != nil {
		return err
	}
	c.Event = event
	switch event {
	case CombatEventEnter:
	case CombatEventEnd:
		if c.Duration, err = wire.DecodeVarInt(r); err != nil {
			return err
		}
		if c.EntityID, err = wire.DecodeInt32(r); err != nil {
			return err
		}
	case CombatEventDeath:
		if c.PlayerID, err = wire.DecodeVarInt(r); err != nil {
			return err
		}
		if c.EntityID, err = wire.DecodeInt32(r); err != nil {
			return err
		}
		if c.Message, err = wire.DecodeString(r, 0); err != nil {
			return err
		}
	default:
		return fmt.Errorf("protocol: unknown CombatEvent event %d", event)
	}
	return nil
}

// --- WorldBorder (clientbound Play 0x44) ---

const (
	WorldBorderSetSize          wire.VarInt = 0
	WorldBorderLerpSize         wire.VarInt = 1
	WorldBorderSetCenter        wire.VarInt = 2
	WorldBorderInitialize       wire.VarInt = 3
	WorldBorderSetWarningTime   wire.VarInt = 4
	WorldBorderSetWarningBlocks wire.VarInt = 5
)

type WorldBorder struct {
	Action wire.VarInt

	Radius    wire.Float64 // action 0
	OldRadius wire.Float64 // action 1, 3
	NewRadius wire.Float64 // action 1, 3
	Speed     wire.VarLong // action 1, 3
	X         wire.Float64 // action 2, 3
	Z         wire.Float64 // action 2, 3

	PortalTeleportBoundary wire.VarInt // action 3
	WarningTime            wire.VarInt // action 3, 4
	WarningBlocks          wire.VarInt // action 3, 5
}

func (b *WorldBorder) Encode(w io.Writer) error {
	if err := b.Action.Encode(w); err != nil {
		return err
	}
	switch b.Action {
	case WorldBorderSetSize:
		return b.Radius.Encode(w)
	case WorldBorderLerpSize:
		if err := b.OldRadius.Encode(w); err != nil {
			return err
		}
		if err := b.NewRadius.Encode(w); err != nil {
			return err
		}
		return b.Speed.Encode(w)
	case WorldBorderSetCenter:
		if err := b.X.Encode(w); err != nil {
			return err
		}
		return b.Z.Encode(w)
	case WorldBorderInitialize:
		if err := b.X.Encode(w); err != nil {
			return err
		}
		if err := b.Z.Encode(w); err != nil {
			return err
		}
		if err := b.OldRadius.Encode(w); err != nil {
			return err
		}
		if err := b.NewRadius.Encode(w); err != nil {
			return err
		}
		if err := b.Speed.Encode(w); err != nil {
			return err
		}
		if err := b.PortalTeleportBoundary.Encode(w); err != nil {
			return err
		}
		if err := b.WarningTime.Encode(w); err != nil {
			return err
		}
		return b.WarningBlocks.Encode(w)
	case WorldBorderSetWarningTime:
		return b.WarningTime.Encode(w)
	case WorldBorderSetWarningBlocks:
		return b.WarningBlocks.Encode(w)
	default:
		return fmt.Errorf("protocol: unknown WorldBorder action %d", b.Action)
	}
}

func (b *WorldBorder) DecodeFrom(r io.Reader) error {
	action, err := wire.DecodeVarInt(r)
	if err != nil {
		return err
	}
	b.Action = action
	switch action {
	case WorldBorderSetSize:
		b.Radius, err = wire.DecodeFloat64(r)
		return err
	case WorldBorderLerpSize:
		if b.OldRadius, err = wire.DecodeFloat64(r); err != nil {
			return err
		}
		if b.NewRadius, err = wire.DecodeFloat64(r); err != nil {
			return err
		}
		b.Speed, err = wire.DecodeVarLong(r)
		return err
	case WorldBorderSetCenter:
		if b.X, err = wire.DecodeFloat64(r); err != nil {
			return err
		}
		b.Z, err = wire.DecodeFloat64(r)
		return err
	case WorldBorderInitialize:
		if b.X, err = wire.DecodeFloat64(r); err != nil {
			return err
		}
		if b.Z, err = wire.DecodeFloat64(r); err != nil {
			return err
		}
		if b.OldRadius, err = wire.DecodeFloat64(r); err != nil {
			return err
		}
		if b.NewRadius, err = wire.DecodeFloat64(r); err != nil {
			return err
		}
		if b.Speed, err = wire.DecodeVarLong(r); err != nil {
			return err
		}
		if b.PortalTeleportBoundary, err = wire.DecodeVarInt(r); err != nil {
			return err
		}
		if b.WarningTime, err = wire.DecodeVarInt(r); err != nil {
			return err
		}
		b.WarningBlocks, err = wire.DecodeVarInt(r)
		return err
	case WorldBorderSetWarningTime:
		b.WarningTime, err = wire.DecodeVarInt(r)
		return err
	case WorldBorderSetWarningBlocks:
		b.WarningBlocks, err = wire.DecodeVarInt(r)
		return err
	default:
		return fmt.Errorf("protocol: unknown WorldBorder action %d", action)
	}
}

// --- Title (clientbound Play 0x45) ---

const (
	TitleSetTitle            wire.VarInt = 0
	TitleSetSubtitle         wire.VarInt = 1
	TitleSetTimesAndDisplay  wire.VarInt = 2
	TitleHide                wire.VarInt = 3
	TitleReset               wire.VarInt = 4
)

type Title struct {
	Action wire.VarInt

	Text              wire.String // action 0, 1
	FadeIn, Stay, FadeOut wire.Int32 // action 2
}

func (t *Title) Encode(w io.Writer) error {
	if err := t.Action.Encode(w); err != nil {
		return err
	}
	switch t.Action {
	case TitleSetTitle, TitleSetSubtitle:
		return t.Text.Encode(w)
	case TitleSetTimesAndDisplay:
		if err := t.FadeIn.Encode(w); err != nil {
			return err
		}
		if err := t.Stay.Encode(w); err != nil {
			return err
		}
		return t.FadeOut.Encode(w)
	case TitleHide, TitleReset:
		return nil
	default:
		return fmt.Errorf("protocol: unknown Title action %d", t.Action)
	}
}

func (t *Title) DecodeFrom(r io.Reader) error {
	action, err := wire.DecodeVarInt(r)
	if err != nil {
		return err
	}
	t.Action = action
	switch action {
	case TitleSetTitle, TitleSetSubtitle:
		t.Text, err = wire.DecodeString(r, 0)
		return err
	case TitleSetTimesAndDisplay:
		if t.FadeIn, err = wire.DecodeInt32(r); err != nil {
			return err
		}
		if t.Stay, err = wire.DecodeInt32(r); err != nil {
			return err
		}
		t.FadeOut, err = wire.DecodeInt32(r)
		return err
	case TitleHide, TitleReset:
		return nil
	default:
		return fmt.Errorf("protocol: unknown Title action %d", action)
	}
}

// --- Map (clientbound Play 0x34) ---

type MapIcon struct {
	DirectionAndType wire.Uint8
	X, Z             wire.Uint8
}

type MapColumn struct {
	Rows, X, Z wire.Uint8
	Data       wire.PrefixedArray[wire.Uint8]
}

type Map struct {
	ItemDamage wire.VarInt
	Scale      wire.Uint8
	Icons      wire.PrefixedArray[MapIcon]
	Columns    wire.Uint8
	Column     MapColumn // present iff Columns > 0
}

func (m MapIcon) Encode(w io.Writer) error {
	if err := m.DirectionAndType.Encode(w); err != nil {
		return err
	}
	if err := m.X.Encode(w); err != nil {
		return err
	}
	return m.Z.Encode(w)
}

func decodeMapIcon(r io.Reader) (MapIcon, error) {
	var m MapIcon
	var err error
	if m.DirectionAndType, err = wire.DecodeUint8(r); err != nil {
		return m, err
	}
	if m.X, err = wire.DecodeUint8(r); err != nil {
		return m, err
	}
	m.Z, err = wire.DecodeUint8(r)
	return m, err
}

func (m *Map) Encode(w io.Writer) error {
	if err := m.ItemDamage.Encode(w); err != nil {
		return err
	}
	if err := m.Scale.Encode(w); err != nil {
		return err
	}
	if err := m.Icons.Encode(w); err != nil {
		return err
	}
	if err := m.Columns.Encode(w); err != nil {
		return err
	}
	if m.Columns == 0 {
		return nil
	}
	c := m.Column
	if err := c.Rows.Encode(w); err != nil {
		return err
	}
	if err := c.X.Encode(w); err != nil {
		return err
	}
	if err := c.Z.Encode(w); err != nil {
		return err
	}
	return c.Data.Encode(w)
}

func (m *Map) DecodeFrom(r io.Reader) error {
	var err error
	if m.ItemDamage, err = wire.DecodeVarInt(r); err != nil {
		return err
	}
	if m.Scale, err = wire.DecodeUint8(r); err != nil {
		return err
	}
	if m.Icons, err = wire.DecodePrefixedArray(r, decodeMapIcon); err != nil {
		return err
	}
	if m.Columns, err = wire.DecodeUint8(r); err != nil {
		return err
	}
	if m.Columns == 0 {
		return nil
	}
	var c MapColumn
	if c.Rows, err = wire.DecodeUint8(r); err != nil {
		return err
	}
	if c.X, err = wire.DecodeUint8(r); err != nil {
		return err
	}
	if c.Z, err = wire.DecodeUint8(r); err != nil {
		return err
	}
	if c.Data, err = wire.DecodePrefixedArray(r, wire.DecodeUint8); err != nil {
		return err
	}
	m.Column = c
	return nil
}

// --- OpenWindow (clientbound Play 0x2D) ---

// entityHorseWindowType is the wire string sent by the vanilla server for
// a horse/donkey/mule inventory (the pre-distillation reference source
// mis-spells this "EnityHorse"; this engine matches the real server).
const entityHorseWindowType = "EntityHorse"

type OpenWindow struct {
	WindowID      wire.Uint8
	WindowType    wire.String
	WindowTitle   wire.String
	NumberOfSlots wire.Uint8
	EntityID      wire.Int32 // present iff WindowType == "EntityHorse"
}

func (o *OpenWindow) Encode(w io.Writer) error {
	if err := o.WindowID.Encode(w); err != nil {
		return err
	}
	if err := o.WindowType.Encode(w); err != nil {
		return err
	}
	if err := o.WindowTitle.Encode(w); err != nil {
		return err
	}
	if err := o.NumberOfSlots.Encode(w); err != nil {
		return err
	}
	if string(o.WindowType) == entityHorseWindowType {
		return o.EntityID.Encode(w)
	}
	return nil
}

func (o *OpenWindow) DecodeFrom(r io.Reader) error {
	var err error
	if o.WindowID, err = wire.DecodeUint8(r); err != nil {
		return err
	}
	if o.WindowType, err = wire.DecodeString(r, 0); err != nil {
		return err
	}
	if o.WindowTitle, err = wire.DecodeString(r, 0); err != nil {
		return err
	}
	if o.NumberOfSlots, err = wire.DecodeUint8(r); err != nil {
		return err
	}
	if string(o.WindowType) == entityHorseWindowType {
		o.EntityID, err = wire.DecodeInt32(r)
		return err
	}
	return nil
}

// --- SpawnObject (clientbound Play 0x0E) ---

type SpawnObject struct {
	EntityID   wire.VarInt
	Type       wire.Int8
	X, Y, Z    wire.Int32
	Pitch, Yaw wire.Angle
	ObjectData wire.Int32

	VelocityX, VelocityY, VelocityZ wire.Int16 // present iff ObjectData != 0
}

func (s *SpawnObject) Encode(w io.Writer) error {
	if err := s.EntityID.Encode(w); err != nil {
		return err
	}
	if err := s.Type.Encode(w); err != nil {
		return err
	}
	if err := s.X.Encode(w); err != nil {
		return err
	}
	if err := s.Y.Encode(w); err != nil {
		return err
	}
	if err := s.Z.Encode(w); err != nil {
		return err
	}
	if err := s.Pitch.Encode(w); err != nil {
		return err
	}
	if err := s.Yaw.Encode(w); err != nil {
		return err
	}
	if err := s.ObjectData.Encode(w); err != nil {
		return err
	}
	if s.ObjectData == 0 {
		return nil
	}
	if err := s.VelocityX.Encode(w); err != nil {
		return err
	}
	if err := s.VelocityY.Encode(w); err != nil {
		return err
	}
	return s.VelocityZ.Encode(w)
}

func (s *SpawnObject) DecodeFrom(r io.Reader) error {
	var err error
	if s.EntityID, err = wire.DecodeVarInt(r); err != nil {
		return err
	}
	if s.Type, err = wire.DecodeInt8(r); err != nil {
		return err
	}
	if s.X, err = wire.DecodeInt32(r); err != nil {
		return err
	}
	if s.Y, err = wire.DecodeInt32(r); err != nil {
		return err
	}
	if s.Z, err = wire.DecodeInt32(r); err != nil {
		return err
	}
	if s.Pitch, err = wire.DecodeAngle(r); err != nil {
		return err
	}
	if s.Yaw, err = wire.DecodeAngle(r); err != nil {
		return err
	}
	if s.ObjectData, err = wire.DecodeInt32(r); err != nil {
		return err
	}
	if s.ObjectData == 0 {
		return nil
	}
	if s.VelocityX, err = wire.DecodeInt16(r); err != nil {
		return err
	}
	if s.VelocityY, err = wire.DecodeInt16(r); err != nil {
		return err
	}
	s.VelocityZ, err = wire.DecodeInt16(r)
	return err
}

// --- UseEntity (serverbound Play 0x02) ---

const (
	UseEntityInteract   wire.VarInt = 0
	UseEntityAttack     wire.VarInt = 1
	UseEntityInteractAt wire.VarInt = 2
)

type UseEntity struct {
	Target wire.VarInt
	Type   wire.VarInt

	TargetX, TargetY, TargetZ wire.Float32 // present iff Type == 2
}

func (u *UseEntity) Encode(w io.Writer) error {
	if err := u.Target.Encode(w); err != nil {
		return err
	}
	if err := u.Type.Encode(w); err != nil {
		return err
	}
	if u.Type != UseEntityInteractAt {
		return nil
	}
	if err := u.TargetX.Encode(w); err != nil {
		return err
	}
	if err := u.TargetY.Encode(w); err != nil {
		return err
	}
	return u.TargetZ.Encode(w)
}

func (u *UseEntity) DecodeFrom(r io.Reader) error {
	var err error
	if u.Target, err = wire.DecodeVarInt(r); err != nil {
		return err
	}
	if u.Type, err = wire.DecodeVarInt(r); err != nil {
		return err
	}
	if u.Type != UseEntityInteractAt {
		return nil
	}
	if u.TargetX, err = wire.DecodeFloat32(r); err != nil {
		return err
	}
	if u.TargetY, err = wire.DecodeFloat32(r); err != nil {
		return err
	}
	u.TargetZ, err = wire.DecodeFloat32(r)
	return err
}

// --- TabCompleteServerbound (serverbound Play 0x14) ---

type TabCompleteServerbound struct {
	Text        wire.String
	HasPosition wire.Boolean

	LookedAtBlock wire.Position // present iff HasPosition
}

func (t *TabCompleteServerbound) Encode(w io.Writer) error {
	if err := t.Text.Encode(w); err != nil {
		return err
	}
	if err := t.HasPosition.Encode(w); err != nil {
		return err
	}
	if !bool(t.HasPosition) {
		return nil
	}
	return t.LookedAtBlock.Encode(w)
}

func (t *TabCompleteServerbound) DecodeFrom(r io.Reader) error {
	var err error
	if t.Text, err = wire.DecodeString(r, 0); err != nil {
		return err
	}
	if t.HasPosition, err = wire.DecodeBoolean(r); err != nil {
		return err
	}
	if !t.HasPosition {
		return nil
	}
	t.LookedAtBlock, err = wire.DecodePosition(r)
	return err
}
