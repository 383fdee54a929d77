package testcard

import "github.com/johanns/testcard/pattern"

// job is one output file of the fixed generation plan.
type job struct {
	filename string
	desc     pattern.Descriptor
	quality  int // JPEG quality, zero for the encoder default
}

// plan is the baked-in set of pattern, size and format combinations
// the generator emits. The noise seed is fixed so the whole set is
// reproducible run to run.
var plan = []job{
	{filename: "checkerboard_64.png", desc: pattern.NewCheckerboard(64, 8)},
	{filename: "checkerboard_64.bmp", desc: pattern.NewCheckerboard(64, 8)},
	{filename: "checkerboard_32.png", desc: pattern.NewCheckerboard(32, 4)},
	{filename: "checkerboard_128.jpg", desc: pattern.NewCheckerboard(128, 16), quality: 95},

	{filename: "gradient_horizontal.png", desc: pattern.NewGradient(128, 64, pattern.Horizontal)},
	{filename: "gradient_vertical.png", desc: pattern.NewGradient(64, 128, pattern.Vertical)},
	{filename: "gradient_diagonal.bmp", desc: pattern.NewGradient(100, 100, pattern.Diagonal)},

	{filename: "circles.png", desc: pattern.NewCircles(100)},
	{filename: "circles.jpg", desc: pattern.NewCircles(100), quality: 90},

	{filename: "logo.png", desc: pattern.NewLogo(80)},
	{filename: "logo.bmp", desc: pattern.NewLogo(80)},
	{filename: "logo_small.png", desc: pattern.NewLogo(40)},
	{filename: "logo_large.png", desc: pattern.NewLogo(120)},
	{filename: "logo_xlarge.png", desc: pattern.NewLogo(160)},

	{filename: "icon_battery.png", desc: pattern.NewIcon(pattern.Battery)},
	{filename: "icon_battery.bmp", desc: pattern.NewIcon(pattern.Battery)},
	{filename: "icon_wifi.png", desc: pattern.NewIcon(pattern.Wifi)},
	{filename: "icon_wifi.bmp", desc: pattern.NewIcon(pattern.Wifi)},
	{filename: "icon_clock.png", desc: pattern.NewIcon(pattern.Clock)},
	{filename: "icon_clock.bmp", desc: pattern.NewIcon(pattern.Clock)},
	{filename: "icon_warning.png", desc: pattern.NewIcon(pattern.Warning)},
	{filename: "icon_warning.bmp", desc: pattern.NewIcon(pattern.Warning)},

	{filename: "photo_test.png", desc: pattern.NewPhoto(150)},
	{filename: "photo_test.jpg", desc: pattern.NewPhoto(150), quality: 85},
	{filename: "photo_test.gif", desc: pattern.NewPhoto(150)},
	{filename: "photo_test_large.png", desc: pattern.NewPhoto(200)},

	{filename: "text_epaper.png", desc: pattern.NewText("E-Paper", 120, 40)},
	{filename: "text_hello.png", desc: pattern.NewText("Hello!", 100, 30)},
	{filename: "text_test.bmp", desc: pattern.NewText("TEST", 80, 30)},

	{filename: "qr_like.png", desc: pattern.NewNoise(64, 42)},
	{filename: "qr_like.bmp", desc: pattern.NewNoise(64, 42)},
}
