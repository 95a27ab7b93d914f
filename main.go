package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/urfave/cli/v2"

	"github.com/iburimskiy/fifths-clock/internal/canvas"
	"github.com/iburimskiy/fifths-clock/internal/chime"
	"github.com/iburimskiy/fifths-clock/internal/clock"
	"github.com/iburimskiy/fifths-clock/internal/config"
	"github.com/iburimskiy/fifths-clock/internal/game"
)

func main() {
	app := &cli.App{
		Name:  "fifths-clock",
		Usage: "virtual wall clock that uses the circle of fifths instead of ordinary numbers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "render",
				Aliases: []string{"r"},
				Usage:   "clock face to draw: 'analog' or 'digital'",
				Value:   "analog",
			},
			&cli.BoolFlag{
				Name:  "chime",
				Usage: "strike the hour in the hour's key",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		slog.Error("fifths-clock exited", "error", err)
		showError(err)
		os.Exit(1)
	}
}

func run(cctx *cli.Context) error {
	logLevel := slog.LevelInfo
	if cctx.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)

	mode, err := config.ParseRenderMode(cctx.String("render"))
	if err != nil {
		return err
	}

	painter, err := game.NewPainter()
	if err != nil {
		return err
	}

	opts := []game.Option{game.WithLogger(log)}
	if cctx.Bool("chime") {
		c, err := chime.New(log)
		if err != nil {
			log.Warn("hourly chime disabled", "error", err)
		} else {
			opts = append(opts, game.WithChime(c))
		}
	}

	g, err := game.New(mode, canvas.NewDisplayList(), painter, clock.RealClock{}, opts...)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)

	log.Info("starting clock", "render", mode, "chime", cctx.Bool("chime"))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running clock: %w", err)
	}
	return nil
}

// showError reports a fatal error in a native dialog. Without a desktop the
// dialog fails and the log line is all that remains.
func showError(err error) {
	dlgErr := zenity.Error(err.Error(),
		zenity.Title(config.WindowTitle),
		zenity.ErrorIcon,
	)
	if dlgErr != nil && !errors.Is(dlgErr, zenity.ErrCanceled) {
		slog.Debug("could not show error dialog", "error", dlgErr)
	}
}
