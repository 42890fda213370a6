// Package measurable holds the sized elements and rows produced by the
// measure pass.
//
// Each element is a concrete struct embedding [Base]; drawers select on
// the concrete type. [Type] is an auxiliary bitset for the spacing rules
// that ask about several categories at once.
package measurable

import "strings"

// Type is a bitset of element and row categories.
type Type uint32

const (
	TypeField Type = 1 << iota
	TypeHat
	TypeIcon
	TypeSpacer
	TypeBetweenRowSpacer
	TypeInRowSpacer
	TypeExternalValueInput
	TypeInput
	TypeInlineInput
	TypeStatementInput
	TypeConnection
	TypePreviousConnection
	TypeNextConnection
	TypeOutputConnection
	TypeCorner
	TypeLeftSquareCorner
	TypeLeftRoundCorner
	TypeRightSquareCorner
	TypeRightRoundCorner
	TypeJaggedEdge
	TypeRow
	TypeTopRow
	TypeBottomRow
	TypeInputRow
	TypeRightConnection

	TypeLeftCorner  = TypeLeftSquareCorner | TypeLeftRoundCorner
	TypeRightCorner = TypeRightSquareCorner | TypeRightRoundCorner
)

var typeNames = []struct {
	t    Type
	name string
}{
	{TypeField, "field"},
	{TypeHat, "hat"},
	{TypeIcon, "icon"},
	{TypeSpacer, "spacer"},
	{TypeBetweenRowSpacer, "between-row spacer"},
	{TypeInRowSpacer, "in-row spacer"},
	{TypeExternalValueInput, "external value input"},
	{TypeInput, "input"},
	{TypeInlineInput, "inline input"},
	{TypeStatementInput, "statement input"},
	{TypeConnection, "connection"},
	{TypePreviousConnection, "previous connection"},
	{TypeNextConnection, "next connection"},
	{TypeOutputConnection, "output connection"},
	{TypeCorner, "corner"},
	{TypeLeftSquareCorner, "left square corner"},
	{TypeLeftRoundCorner, "left round corner"},
	{TypeRightSquareCorner, "right square corner"},
	{TypeRightRoundCorner, "right round corner"},
	{TypeJaggedEdge, "jagged edge"},
	{TypeRow, "row"},
	{TypeTopRow, "top row"},
	{TypeBottomRow, "bottom row"},
	{TypeInputRow, "input row"},
	{TypeRightConnection, "right connection"},
}

// Has reports whether any bit of other is set in t.
func (t Type) Has(other Type) bool { return t&other != 0 }

func (t Type) String() string {
	var parts []string
	for _, tn := range typeNames {
		if t&tn.t != 0 {
			parts = append(parts, tn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Base carries the geometry common to every element.
type Base struct {
	Type   Type
	Width  float64
	Height float64
	// XPos is the left edge within the block, in left-to-right coordinates.
	XPos float64
	// Centerline is the vertical centre of the element within the block.
	Centerline float64
	// NotchOffset is the x offset of a notch drawn by this element.
	NotchOffset float64
}

// Elem returns the shared geometry.
func (b *Base) Elem() *Base { return b }

// Measurable is any element placed in a row.
type Measurable interface {
	Elem() *Base
}

func is(m Measurable, t Type) bool {
	return m != nil && m.Elem().Type.Has(t)
}

func IsField(m Measurable) bool              { return is(m, TypeField) }
func IsHat(m Measurable) bool                { return is(m, TypeHat) }
func IsIcon(m Measurable) bool               { return is(m, TypeIcon) }
func IsSpacer(m Measurable) bool             { return is(m, TypeSpacer) }
func IsInRowSpacer(m Measurable) bool        { return is(m, TypeInRowSpacer) }
func IsInput(m Measurable) bool              { return is(m, TypeInput) }
func IsExternalInput(m Measurable) bool      { return is(m, TypeExternalValueInput) }
func IsInlineInput(m Measurable) bool        { return is(m, TypeInlineInput) }
func IsStatementInput(m Measurable) bool     { return is(m, TypeStatementInput) }
func IsPreviousConnection(m Measurable) bool { return is(m, TypePreviousConnection) }
func IsNextConnection(m Measurable) bool     { return is(m, TypeNextConnection) }
func IsConnection(m Measurable) bool         { return is(m, TypeConnection) }
func IsLeftRoundCorner(m Measurable) bool    { return is(m, TypeLeftRoundCorner) }
func IsRightRoundCorner(m Measurable) bool   { return is(m, TypeRightRoundCorner) }
func IsLeftSquareCorner(m Measurable) bool   { return is(m, TypeLeftSquareCorner) }
func IsRightSquareCorner(m Measurable) bool  { return is(m, TypeRightSquareCorner) }
func IsCorner(m Measurable) bool             { return is(m, TypeCorner) }
func IsJaggedEdge(m Measurable) bool         { return is(m, TypeJaggedEdge) }

// IsPreviousOrNextConnection reports statement connections.
func IsPreviousOrNextConnection(m Measurable) bool {
	return is(m, TypePreviousConnection|TypeNextConnection)
}

// IsEditable reports whether m is an editable field.
func IsEditable(m Measurable) bool {
	f, ok := m.(*Field)
	return ok && f.IsEditable
}
