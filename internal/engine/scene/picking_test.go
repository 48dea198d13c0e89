package scene

import "testing"

func TestHandleColorRoundTrip(t *testing.T) {
	cases := []Handle{0, 1, 2, 255, 256, 65535, 65536, 1<<24 - 1}
	for _, h := range cases {
		r, g, b := encodeHandle(h)
		got := decodeHandle(uint8(r*255+0.5), uint8(g*255+0.5), uint8(b*255+0.5))
		if got != h {
			t.Errorf("handle %d round-tripped to %d", h, got)
		}
	}
}

func TestDecodeBackgroundIsInvalid(t *testing.T) {
	if decodeHandle(0, 0, 0) != InvalidHandle {
		t.Error("clear color should decode to InvalidHandle")
	}
}
