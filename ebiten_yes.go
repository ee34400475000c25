//go:build !gtxt

package titletext

import "github.com/hajimehoshi/ebiten/v2"

// Uploads the currently cached title bitmap into a new GPU image for
// hosts compositing their UI with Ebitengine. Returns nil when no
// title is currently rendered.
//
// Each call allocates a new image; hosts should call it after a
// mutator actually changed the title, not every frame.
//
// This method is not available when compiling with -tags gtxt
// (CPU-only mode).
func (self *Renderer) EbitenImage() *ebiten.Image {
	if self.pixmap == nil { return nil }
	return ebiten.NewImageFromImage(self.pixmap.RGBA())
}
