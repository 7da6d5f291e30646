package scale_test

import (
	"fmt"

	"github.com/npillmayer/imgfx/anim/scale"
	"github.com/npillmayer/imgfx/curve"
	"github.com/npillmayer/imgfx/dom/style"
	"github.com/npillmayer/imgfx/size"
)

func ExamplePrepare() {
	img := newElement()
	text := scale.Prepare(scale.Options{
		Element:           img,
		LargerDimensions:  size.Size{Width: 400, Height: 300},
		SmallerDimensions: size.Size{Width: 100, Height: 75},
		Curve:             curve.Linear,
		Styles:            style.Bag{"opacity": "1"},
		KeyframesPrefix:   "lightbox",
		ToLarger:          true,
	})
	fmt.Print(text)
	fmt.Println(img.Styles().CSSText())
	// Output:
	// @keyframes lightbox-scale {
	//   from {
	//     transform: scale(0.25, 0.25);
	//   }
	//
	//   to {
	//     transform: scale(1, 1);
	//   }
	// }
	// animation-fill-mode: forwards; animation-name: lightbox-scale; animation-timing-function: linear; opacity: 1; transform-origin: top left; will-change: transform
}
