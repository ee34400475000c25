package pixbuf

import "testing"

func TestNewRejectsDegenerateDims(t *testing.T) {
	if New(0, 10) != nil { t.Fatal("expected nil pixmap for width 0") }
	if New(10, 0) != nil { t.Fatal("expected nil pixmap for height 0") }
	if New(-3, 4) != nil { t.Fatal("expected nil pixmap for negative width") }
	if New(maxInt, 2) != nil { t.Fatal("expected nil pixmap on overflow") }

	pixmap := New(3, 2)
	if pixmap == nil { t.Fatal("expected non-nil pixmap") }
	if pixmap.Width() != 3 || pixmap.Height() != 2 {
		t.Fatalf("unexpected dims %dx%d", pixmap.Width(), pixmap.Height())
	}
	if len(pixmap.Pix()) != 3*2*4 {
		t.Fatalf("unexpected pix len %d", len(pixmap.Pix()))
	}
	for i, value := range pixmap.Pix() {
		if value != 0 { t.Fatalf("expected zero-initialized pixels, found %d at %d", value, i) }
	}
}

func TestFromBytes(t *testing.T) {
	data := make([]byte, 2*2*4)
	if FromBytes(data, 2, 3) != nil { t.Fatal("expected nil on length mismatch") }
	if FromBytes(data, 0, 2) != nil { t.Fatal("expected nil on zero width") }

	view := FromBytes(data, 2, 2)
	if view == nil { t.Fatal("expected non-nil view") }
	data[3] = 255 // alpha of pixel (0, 0)
	_, _, _, a := view.At(0, 0)
	if a != 255 { t.Fatal("expected view to share the underlying bytes") }
}

func TestDrawSrcClipped(t *testing.T) {
	dst := New(4, 4)
	src := New(2, 2)
	for i := 0; i < len(src.Pix()); i += 4 {
		src.Pix()[i + 0] = 100
		src.Pix()[i + 3] = 200
	}

	// partially out of bounds at the top-left
	dst.Draw(src, -1, -1, ModeSrc)
	if r, _, _, a := dst.At(0, 0); r != 100 || a != 200 {
		t.Fatalf("expected (100, 200), got (%d, %d)", r, a)
	}
	if _, _, _, a := dst.At(1, 1); a != 0 {
		t.Fatal("expected untouched pixel")
	}

	// fully out of bounds
	dst2 := New(4, 4)
	dst2.Draw(src, 10, 10, ModeSrc)
	dst2.Draw(src, -5, 0, ModeSrc)
	for _, value := range dst2.Pix() {
		if value != 0 { t.Fatal("expected fully clipped draw to be a no-op") }
	}
}

func TestDrawOver(t *testing.T) {
	dst := New(1, 1)
	dst.Pix()[0] = 100 // premultiplied red
	dst.Pix()[3] = 255

	src := New(1, 1)
	src.Pix()[1] = 60 // premultiplied green at ~50% alpha
	src.Pix()[3] = 128

	dst.Draw(src, 0, 0, ModeOver)
	r, g, _, a := dst.At(0, 0)
	if a != 255 { t.Fatalf("expected alpha 255, got %d", a) }
	if g != 60 { t.Fatalf("expected green 60, got %d", g) }
	expectedR := uint8(100*(255 - 128)/255) // ~49
	if r != expectedR && r != expectedR + 1 {
		t.Fatalf("expected red ~%d, got %d", expectedR, r)
	}

	// opaque source overwrites
	opaque := New(1, 1)
	opaque.Pix()[2] = 33
	opaque.Pix()[3] = 255
	dst.Draw(opaque, 0, 0, ModeOver)
	if _, _, b, _ := dst.At(0, 0); b != 33 {
		t.Fatalf("expected blue 33, got %d", b)
	}

	// fully transparent source leaves the destination alone
	transparent := New(1, 1)
	before := append([]byte(nil), dst.Pix()...)
	dst.Draw(transparent, 0, 0, ModeOver)
	for i := range before {
		if dst.Pix()[i] != before[i] { t.Fatal("expected no-op draw") }
	}
}
