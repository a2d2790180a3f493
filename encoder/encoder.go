// Package encoder turns the captured frame sequence into an animated image with ffmpeg.
package encoder

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
	"github.com/ttygif/ttygif/constant"
	"github.com/ttygif/ttygif/key"
	"github.com/ttygif/ttygif/log"
	"github.com/ttygif/ttygif/process"
)

// FFmpeg encodes in two passes: a palette is generated from all frames, then
// the frames are quantized with it. Frames are read as an image sequence, so
// the output pace is the encoder frame rate stretched by PTSFactor and not the
// recorded timing.
type FFmpeg struct {
	Runner    process.Runner
	Binary    string
	PTSFactor int
	Framerate int
}

// FromViper returns an encoder configured from the encoder.* keys.
func FromViper(runner process.Runner) *FFmpeg {
	return &FFmpeg{
		Runner:    runner,
		Binary:    viper.GetString(key.EncoderBinary),
		PTSFactor: viper.GetInt(key.EncoderPTSFactor),
		Framerate: viper.GetInt(key.EncoderFramerate),
	}
}

func (f *FFmpeg) binary() string {
	if f.Binary == "" {
		return "ffmpeg"
	}
	return f.Binary
}

func (f *FFmpeg) input(dir string) []string {
	var args []string
	if f.Framerate > 0 {
		args = append(args, "-framerate", strconv.Itoa(f.Framerate))
	}
	return append(args, "-i", filepath.Join(dir, constant.FramePattern))
}

// PaletteArgs returns the arguments of the palette pass.
func (f *FFmpeg) PaletteArgs(dir string) []string {
	args := []string{"-nostdin", "-hide_banner", "-loglevel", "error", "-y"}
	args = append(args, f.input(dir)...)
	return append(args, "-vf", "palettegen", filepath.Join(dir, constant.PaletteFile))
}

// EncodeArgs returns the arguments of the encoding pass.
func (f *FFmpeg) EncodeArgs(dir, output string) []string {
	factor := f.PTSFactor
	if factor <= 0 {
		factor = 1
	}

	args := []string{"-nostdin", "-hide_banner", "-loglevel", "error", "-y"}
	args = append(args, f.input(dir)...)
	return append(args,
		"-i", filepath.Join(dir, constant.PaletteFile),
		"-lavfi", fmt.Sprintf("paletteuse,setpts=%d*PTS", factor),
		output,
	)
}

// Palette generates the palette of the frames in dir.
func (f *FFmpeg) Palette(ctx context.Context, dir string) error {
	log.Infof("generating palette from %s", dir)
	if err := f.Runner.Run(ctx, f.binary(), f.PaletteArgs(dir)...); err != nil {
		return fmt.Errorf("palette generation: %w", err)
	}
	return nil
}

// Encode renders the frames in dir to output using the palette from Palette.
func (f *FFmpeg) Encode(ctx context.Context, dir, output string) error {
	log.Infof("encoding %s from %s", output, dir)
	if err := f.Runner.Run(ctx, f.binary(), f.EncodeArgs(dir, output)...); err != nil {
		return fmt.Errorf("encoding %s: %w", output, err)
	}
	return nil
}
