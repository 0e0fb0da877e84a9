package recording

import (
	"log/slog"

	"github.com/infinite-client/guistate"
)

// KindUnknown tags vertices written without a preceding BeginPrimitive.
const KindUnknown guistate.Kind = 255

// Recorder captures one frame of render states as commands. It implements
// guistate.VertexSink together with the optional PrimitiveSink, IconDrawer
// and TextDrawer interfaces, so every state kind is captured.
//
// Example:
//
//	rec := recording.NewRecorder(1920, 1080)
//	for _, s := range frame {
//		rec.Record(s)
//	}
//	r := rec.FinishRecording()
//	damage, ok := r.Damage()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	cur           *PrimitiveCommand

	damage    guistate.ScreenRect
	hasDamage bool
	vertices  int
	skipped   int
}

var (
	_ guistate.VertexSink    = (*Recorder)(nil)
	_ guistate.PrimitiveSink = (*Recorder)(nil)
	_ guistate.IconDrawer    = (*Recorder)(nil)
	_ guistate.TextDrawer    = (*Recorder)(nil)
)

// NewRecorder creates a Recorder for a screen of the given size. A
// non-positive size disables clipping of the damage rectangle.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
	}
}

// Record emits s into the recorder and adds its bounds to the frame damage.
// It reports whether anything was recorded.
func (r *Recorder) Record(s guistate.State, opts ...guistate.EmitOption) bool {
	if !guistate.Emit(s, r, opts...) {
		r.skipped++
		return false
	}
	r.flush()
	if b, ok := s.Bounds(); ok && !b.IsEmpty() {
		r.damage = guistate.Union(r.damage, b)
		r.hasDamage = true
	}
	return true
}

// BeginPrimitive implements guistate.PrimitiveSink.
func (r *Recorder) BeginPrimitive(kind guistate.Kind, pipeline any, vertexCount int) {
	r.flush()
	r.cur = &PrimitiveCommand{
		Kind:     kind,
		Pipeline: pipeline,
		Vertices: make([]Vertex, 0, vertexCount),
	}
}

// Vertex implements guistate.VertexSink.
func (r *Recorder) Vertex(pos guistate.Point, c guistate.Color) {
	r.appendVertex(Vertex{Pos: pos, Color: c})
}

// TexturedVertex implements guistate.VertexSink.
func (r *Recorder) TexturedVertex(pos, uv guistate.Point, c guistate.Color) {
	r.appendVertex(Vertex{Pos: pos, UV: uv, Color: c, Textured: true})
}

// DrawIcon implements guistate.IconDrawer.
func (r *Recorder) DrawIcon(ic *guistate.Icon) {
	r.flush()
	r.commands = append(r.commands, IconCommand{Icon: ic})
}

// DrawText implements guistate.TextDrawer.
func (r *Recorder) DrawText(t *guistate.Text, layout guistate.TextLayout) {
	r.flush()
	r.commands = append(r.commands, TextCommand{Text: t, Layout: layout})
}

func (r *Recorder) appendVertex(v Vertex) {
	if r.cur == nil {
		r.cur = &PrimitiveCommand{Kind: KindUnknown}
	}
	r.cur.Vertices = append(r.cur.Vertices, v)
	r.vertices++
}

func (r *Recorder) flush() {
	if r.cur == nil {
		return
	}
	r.commands = append(r.commands, *r.cur)
	r.cur = nil
}

// Reset discards everything recorded so far, keeping allocated capacity.
func (r *Recorder) Reset() {
	clear(r.commands)
	r.commands = r.commands[:0]
	r.cur = nil
	r.damage, r.hasDamage = guistate.ScreenRect{}, false
	r.vertices = 0
	r.skipped = 0
}

// FinishRecording returns an immutable Recording of the frame.
// After calling FinishRecording, the Recorder should not be used again
// until Reset is called.
func (r *Recorder) FinishRecording() *Recording {
	r.flush()
	rec := &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		damage:    r.damage,
		hasDamage: r.hasDamage,
		stats: Stats{
			Commands: len(r.commands),
			Vertices: r.vertices,
			Skipped:  r.skipped,
		},
	}
	r.commands = make([]Command, 0, cap(r.commands))
	guistate.Logger().Debug("recording: frame finished",
		slog.Int("commands", rec.stats.Commands),
		slog.Int("vertices", rec.stats.Vertices),
		slog.Int("skipped", rec.stats.Skipped))
	return rec
}

// Stats summarizes a Recording.
type Stats struct {
	Commands int
	Vertices int
	// Skipped counts states that produced nothing, usually because their
	// bounds were clipped away.
	Skipped int
}

// Recording is an immutable container for one recorded frame.
type Recording struct {
	width, height int
	commands      []Command
	damage        guistate.ScreenRect
	hasDamage     bool
	stats         Stats
}

// Width returns the screen width.
func (r *Recording) Width() int { return r.width }

// Height returns the screen height.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands in emission order.
func (r *Recording) Commands() []Command { return r.commands }

// Stats returns the frame counters.
func (r *Recording) Stats() Stats { return r.stats }

// Damage returns the union of the bounds of every recorded state, clipped
// to the screen. ok is false when nothing visible was recorded.
func (r *Recording) Damage() (guistate.ScreenRect, bool) {
	if !r.hasDamage {
		return guistate.ScreenRect{}, false
	}
	if r.width <= 0 || r.height <= 0 {
		return r.damage, true
	}
	return guistate.Intersect(r.damage, guistate.Rect(0, 0, r.width, r.height))
}

// Playback replays the recording into sink and returns the number of
// commands delivered. Icons and text are skipped when sink lacks the
// matching drawer.
func (r *Recording) Playback(sink guistate.VertexSink) int {
	ps, _ := sink.(guistate.PrimitiveSink)
	id, _ := sink.(guistate.IconDrawer)
	td, _ := sink.(guistate.TextDrawer)

	n := 0
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case PrimitiveCommand:
			if ps != nil {
				ps.BeginPrimitive(c.Kind, c.Pipeline, len(c.Vertices))
			}
			for _, v := range c.Vertices {
				if v.Textured {
					sink.TexturedVertex(v.Pos, v.UV, v.Color)
				} else {
					sink.Vertex(v.Pos, v.Color)
				}
			}
		case IconCommand:
			if id == nil {
				continue
			}
			id.DrawIcon(c.Icon)
		case TextCommand:
			if td == nil {
				continue
			}
			td.DrawText(c.Text, c.Layout)
		default:
			continue
		}
		n++
	}
	return n
}
