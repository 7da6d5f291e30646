package size_test

import (
	"math"
	"testing"

	"github.com/npillmayer/imgfx/size"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestDivide(t *testing.T) {
	s := size.Divide(size.Size{Width: 100, Height: 75}, size.Size{Width: 400, Height: 300})
	if s.X != 0.25 || s.Y != 0.25 {
		t.Errorf("expected scale to be (0.25, 0.25), is %v", s)
	}
	s = size.Divide(size.Size{Width: 30, Height: 10}, size.Size{Width: 60, Height: 40})
	if s.X != 0.5 || s.Y != 0.25 {
		t.Errorf("expected scale to be (0.5, 0.25), is %v", s)
	}
}

func TestDivideWithinUnitInterval(t *testing.T) {
	larger := size.Size{Width: 640, Height: 480}
	for _, smaller := range []size.Size{
		{Width: 1, Height: 1},
		{Width: 320, Height: 17},
		{Width: 639.5, Height: 480},
		larger,
	} {
		s := size.Divide(smaller, larger)
		if s.X <= 0 || s.X > 1 || s.Y <= 0 || s.Y > 1 {
			t.Errorf("expected %v / %v to be within (0, 1], is %v", smaller, larger, s)
		}
	}
	if size.Divide(larger, larger) != size.Identity() {
		t.Errorf("expected division of equal sizes to be the identity")
	}
}

func TestDivideByZero(t *testing.T) {
	s := size.Divide(size.Size{Width: 10, Height: 0}, size.Size{Width: 0, Height: 0})
	if !math.IsInf(s.X, 1) {
		t.Errorf("expected x-factor to be +Inf, is %v", s.X)
	}
	if !math.IsNaN(s.Y) {
		t.Errorf("expected y-factor to be NaN, is %v", s.Y)
	}
}

func TestFromDU(t *testing.T) {
	larger := size.FromDU(40*dimen.PT, 30*dimen.PT)
	smaller := size.FromDU(10*dimen.PT, 15*dimen.PT)
	s := size.Divide(smaller, larger)
	if s.X != 0.25 || s.Y != 0.5 {
		t.Errorf("expected scale to be (0.25, 0.5), is %v", s)
	}
}
