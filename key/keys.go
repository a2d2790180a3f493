// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Playback - these keys govern how the frame stream is decoded and paced.
const (
	PlayerFactor    = "player.factor"
	TtyrecByteOrder = "ttyrec.byte_order"
)

// Output Rendering - these keys configure the capture-and-encode pipeline of the output action.
const (
	OutputFilename   = "output.filename"
	OutputFramesDir  = "output.frames_dir"
	OutputKeepFrames = "output.keep_frames"
)

// Screen Capture - these keys select and tune the capture collaborator.
const (
	CaptureBackend       = "capture.backend"
	CaptureCommand       = "capture.command"
	CaptureWindow        = "capture.window"
	CaptureWindowCommand = "capture.window_command"
	CaptureCols          = "capture.cols"
	CaptureRows          = "capture.rows"
	CaptureFontSize      = "capture.font_size"
)

// Video Encoding - these keys configure the external encoder invocation.
const (
	EncoderBinary    = "encoder.binary"
	EncoderPTSFactor = "encoder.pts_factor"
	EncoderFramerate = "encoder.framerate"
)

// Inspection
const (
	InspectPreviewBytes = "inspect.preview_bytes"
)

// Render History - these keys control the registry of produced artifacts.
const (
	HistorySave = "history.save"
)

// Recording
const (
	RecordCommand = "record.command"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application behavior outside of playback.
const (
	CliColored = "cli.colored"
)
