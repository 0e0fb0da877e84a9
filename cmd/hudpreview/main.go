// Command hudpreview builds a sample HUD frame from render states, records
// it and writes a software preview as PNG.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/infinite-client/guistate"
	"github.com/infinite-client/guistate/raster"
	"github.com/infinite-client/guistate/recording"
	"github.com/infinite-client/guistate/text"
)

func main() {
	var (
		width  = flag.Int("width", 320, "screen width in pixels")
		height = flag.Int("height", 180, "screen height in pixels")
		scale  = flag.Float64("scale", 1, "GUI scale applied as the pose of every state")
		output = flag.String("output", "hud.png", "output file")
		debug  = flag.Bool("debug", false, "log skipped states and text preparation")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	guistate.SetLogger(logger)

	if err := run(*width, *height, *scale, *output); err != nil {
		logger.Error("hudpreview failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(width, height int, scale float64, output string) error {
	f, err := text.ParseFont(goregular.TTF)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	shaper, err := text.NewShaper(f, text.WithLineHeight(11))
	if err != nil {
		return err
	}

	rec := recording.NewRecorder(width, height)
	for _, s := range buildFrame(shaper, guistate.Scale(scale, scale), width, height) {
		rec.Record(s)
	}
	frame := rec.FinishRecording()

	canvas := raster.New(width, height,
		raster.WithFont(f),
		raster.WithBackground(color.NRGBA{R: 0x30, G: 0x40, B: 0x30, A: 0xFF}))
	if err := canvas.Draw(frame); err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(out, canvas.Image()); err != nil {
		_ = out.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	damage, _ := frame.Damage()
	st := frame.Stats()
	guistate.Logger().Info("preview written",
		slog.String("file", output),
		slog.Int("commands", st.Commands),
		slog.Int("vertices", st.Vertices),
		slog.Int("skipped", st.Skipped),
		slog.String("damage", damage.String()))
	return nil
}

// buildFrame returns a hotbar with a selection frame, a health bar, a
// slanted title banner, a compass needle, a label and one state clipped away
// by a scroll region.
func buildFrame(shaper guistate.TextShaper, pose guistate.Affine, width, height int) []guistate.State {
	const slot = 20.0
	w, h := float64(width), float64(height)
	barX := w/2 - slot*4.5
	barY := h - slot - 4

	states := []guistate.State{
		guistate.NewRectangle(nil, pose,
			guistate.Pt(barX-2, barY-2), guistate.Pt(barX+slot*9+2, barY+slot+2),
			guistate.ARGB(0xA0, 0, 0, 0), guistate.NoScissor()),
	}
	for i := range 9 {
		x := barX + float64(i)*slot
		states = append(states, guistate.NewIcon(fmt.Sprintf("slot-%d", i), pose, nil, x+2, barY+2,
			guistate.NoScissor(), guistate.WithAlpha(0.35)))
	}

	selected := barX + 2*slot
	states = append(states,
		guistate.NewQuad(nil, pose,
			guistate.Pt(selected, barY), guistate.Pt(selected+slot, barY),
			guistate.Pt(selected+slot, barY+slot), guistate.Pt(selected, barY+slot),
			guistate.ARGB(0x60, 0xFF, 0xFF, 0xFF), guistate.NoScissor()),
		guistate.NewTriangle(nil, pose,
			guistate.Pt(selected+slot/2-4, barY-8), guistate.Pt(selected+slot/2+4, barY-8), guistate.Pt(selected+slot/2, barY-3),
			guistate.White, guistate.NoScissor()),
		guistate.NewRectangle(nil, pose,
			guistate.Pt(barX, barY-14), guistate.Pt(barX+60, barY-10),
			guistate.ARGB(0xFF, 0xD0, 0x20, 0x20), guistate.NoScissor()),
		guistate.NewRectangle(nil, pose.Multiply(guistate.Shear(-0.25, 0)),
			guistate.Pt(12, 6), guistate.Pt(96, 18),
			guistate.ARGB(0xC0, 0x20, 0x20, 0x60), guistate.NoScissor()),
		guistate.NewQuad(nil, pose.Multiply(guistate.Translate(w-16, 16)).Multiply(guistate.Rotate(math.Pi/6)),
			guistate.Pt(0, -9), guistate.Pt(3, 0), guistate.Pt(0, 9), guistate.Pt(-3, 0),
			guistate.ARGB(0xFF, 0xE0, 0x30, 0x30), guistate.NoScissor()),
		guistate.NewText(shaper, guistate.TextRun{Text: "Health 12/20", Size: 9}, pose, barX, barY-28,
			guistate.TextStyle{Color: guistate.White, Shadow: true}, guistate.NoScissor()),
		guistate.NewText(shaper, guistate.TextRun{Text: "scrolled out", Size: 9}, pose, 4, 4,
			guistate.TextStyle{Color: guistate.White, Background: guistate.ARGB(0x80, 0, 0, 0)},
			guistate.ClipTo(guistate.Rect(0, 40, width, 20))),
	)
	return states
}
