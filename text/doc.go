// Package text shapes HUD text runs for guistate.
//
// A Shaper wraps a parsed Font and implements guistate.TextShaper, so it can
// be handed straight to guistate.NewText:
//
//	f, err := text.ParseFont(goregular.TTF)
//	if err != nil {
//		return err
//	}
//	shaper, err := text.NewShaper(f, text.WithCacheSize(512))
//	if err != nil {
//		return err
//	}
//	label := guistate.NewText(shaper, guistate.TextRun{Text: "Health", Size: 9},
//		guistate.Identity(), 4, 4, guistate.TextStyle{Color: guistate.White},
//		guistate.NoScissor())
//
// Shaping uses go-text/typesetting (HarfBuzz). Paragraph direction comes
// from golang.org/x/text/unicode/bidi and vertical metrics from
// golang.org/x/image/font/opentype.
package text
