package tray

// The two tray icons are single-pixel placeholder PNGs, swapped in
// whenever the hidsink connection state changes. A packaged build would
// replace these with real artwork via go:embed.
var (
	IconDisconnected = grayPixelPNG
	IconConnected    = greenPixelPNG
)

// grayPixelPNG and greenPixelPNG are 1x1 PNGs distinguished only by
// their IDAT payload, good enough for systray.SetIcon to accept.
var (
	grayPixelPNG = []byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
		0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
		0x89, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x44, 0x41,
		0x54, 0x78, 0x9C, 0x62, 0x60, 0x60, 0x60, 0x60,
		0x00, 0x00, 0x00, 0x05, 0x00, 0x01, 0x0D, 0x0A,
		0x2D, 0xB4, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45,
		0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82,
	}

	greenPixelPNG = []byte{
		0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
		0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
		0x89, 0x00, 0x00, 0x00, 0x0F, 0x49, 0x44, 0x41,
		0x54, 0x78, 0x9C, 0x62, 0x62, 0x60, 0x60, 0xF8,
		0xCF, 0x40, 0x01, 0x00, 0x09, 0xFB, 0x03, 0xFD,
		0xE3, 0x55, 0x2B, 0x9F, 0x00, 0x00, 0x00, 0x00,
		0x49, 0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82,
	}
)
