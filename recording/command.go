package recording

import "github.com/infinite-client/guistate"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdPrimitive CommandType = iota // Vertices of a triangle, quad or rectangle
	CmdIcon                         // Icon handed to the host's icon drawer
	CmdText                         // Prepared text run
)

// String returns the command name.
func (t CommandType) String() string {
	switch t {
	case CmdPrimitive:
		return "Primitive"
	case CmdIcon:
		return "Icon"
	case CmdText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Command is a recorded draw operation.
type Command interface {
	Type() CommandType
}

// Vertex is a recorded vertex in screen space.
type Vertex struct {
	Pos      guistate.Point
	UV       guistate.Point
	Color    guistate.Color
	Textured bool
}

// PrimitiveCommand holds the vertices of one emitted state.
type PrimitiveCommand struct {
	Kind     guistate.Kind
	Pipeline any
	Vertices []Vertex
}

// Type implements Command.
func (PrimitiveCommand) Type() CommandType { return CmdPrimitive }

// Textured reports whether the primitive carries texture coordinates.
func (c PrimitiveCommand) Textured() bool {
	return len(c.Vertices) > 0 && c.Vertices[0].Textured
}

// IconCommand records a delegated icon.
type IconCommand struct {
	Icon *guistate.Icon
}

// Type implements Command.
func (IconCommand) Type() CommandType { return CmdIcon }

// TextCommand records a delegated text run with its layout.
type TextCommand struct {
	Text   *guistate.Text
	Layout guistate.TextLayout
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }
