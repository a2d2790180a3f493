package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"github.com/ttygif/ttygif/config"
	"github.com/ttygif/ttygif/filesystem"
	"github.com/ttygif/ttygif/key"
	"github.com/ttygif/ttygif/log"
	"github.com/ttygif/ttygif/player"
	"github.com/ttygif/ttygif/ttyrec"
)

// byteOrder returns the configured frame header encoding.
func byteOrder() (ttyrec.Option, error) {
	order, err := ttyrec.ParseByteOrder(viper.GetString(key.TtyrecByteOrder))
	if err != nil {
		return nil, err
	}
	return ttyrec.WithByteOrder(order), nil
}

// newPlayer builds a player from the factor and byte order settings.
// The merged configuration is validated first so every problem is reported at once.
func newPlayer() (*player.Player, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	order, err := byteOrder()
	if err != nil {
		return nil, err
	}
	return player.New(viper.GetInt(key.PlayerFactor), order)
}

// play runs action over the recording at path. The file is closed on every path.
func play(ctx context.Context, path string, action player.Action) (*player.Summary, error) {
	p, err := newPlayer()
	if err != nil {
		return nil, err
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	log.With(log.Fields{"input": path}).Info("playing")
	summary, err := p.Run(ctx, file, action)
	if err != nil {
		return summary, fmt.Errorf("%s: %w", path, err)
	}
	return summary, nil
}
