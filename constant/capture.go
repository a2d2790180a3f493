package constant

// Frame naming shared by the capture session and the encoder.
const (
	// FramePattern is the printf pattern of captured frame files, counted from 0.
	FramePattern = "step_%04d.png"

	// PaletteFile is the palette image generated next to the captured frames.
	PaletteFile = "palette.png"

	// DefaultOutput is the animated image written by the output action.
	DefaultOutput = "tty.gif"
)
