package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/Microsoft/ntobjls/internal/log"
	"github.com/Microsoft/ntobjls/internal/logfields"
	"github.com/Microsoft/ntobjls/internal/objdir"
	"github.com/Microsoft/ntobjls/internal/otelutil"
)

const (
	formatFlag    = "format"
	strictFlag    = "strict"
	noResolveFlag = "no-resolve"
	logLevelFlag  = "log-level"

	defaultDirectory = `\Global??`
)

const desc = `Lists the entries of a Windows NT object manager directory, such as \ or \Global??,
printing each entry's name and type, and the target of symbolic links.`

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: log.TimeFormat,
		FullTimestamp:   true,
	})
	logrus.AddHook(log.NewHook())

	if err := newApp(os.Stdout, newSystem).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout io.Writer, newSys func() (objdir.System, error)) *cli.App {
	var tp *sdktrace.TracerProvider
	return &cli.App{
		Name:        "ntobjls",
		Usage:       "list the contents of an NT object directory",
		ArgsUsage:   "[directory]",
		Description: desc,
		Writer:      stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    formatFlag,
				Aliases: []string{"f"},
				Usage:   "output `format`; either 'text' or 'json'.",
				Value:   string(formatText),
			},
			&cli.BoolFlag{
				Name:  strictFlag,
				Usage: "fail if a directory query fails for any reason other than reaching the end of the directory.",
			},
			&cli.BoolFlag{
				Name:  noResolveFlag,
				Usage: "do not resolve symbolic link targets.",
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Usage: "logrus `level` for diagnostics written to stderr.",
				Value: logrus.WarnLevel.String(),
			},
		},
		Before: func(cctx *cli.Context) error {
			if err := setupLogging(cctx); err != nil {
				return err
			}
			// spans are exported alongside debug logs
			if logrus.IsLevelEnabled(logrus.DebugLevel) {
				tp = sdktrace.NewTracerProvider(
					sdktrace.WithSampler(otelutil.DefaultSampler),
					sdktrace.WithBatcher(&otelutil.LogrusExporter{}),
				)
				otel.SetTracerProvider(tp)
			}
			return nil
		},
		After: func(cctx *cli.Context) error {
			if tp == nil {
				return nil
			}
			if err := tp.Shutdown(cctx.Context); err != nil {
				log.G(cctx.Context).WithError(err).Warning("failed to flush spans")
			}
			return nil
		},
		Action: func(cctx *cli.Context) error {
			if cctx.NArg() > 1 {
				return fmt.Errorf("%q accepts at most one object directory, got %d arguments", cctx.App.Name, cctx.NArg())
			}
			dir := defaultDirectory
			if cctx.NArg() == 1 {
				dir = cctx.Args().First()
			}

			format, err := parseFormat(cctx.String(formatFlag))
			if err != nil {
				return err
			}
			sys, err := newSys()
			if err != nil {
				return err
			}

			ctx, _ := log.S(cctx.Context, logrus.Fields{logfields.Operation: "list"})
			objects, err := objdir.Enumerate(ctx, sys, dir,
				objdir.WithStrict(cctx.Bool(strictFlag)),
				objdir.WithResolveLinks(!cctx.Bool(noResolveFlag)),
			)
			if err != nil {
				var status objdir.Status
				if errors.As(err, &status) {
					log.G(ctx).WithError(err).WithField(logfields.Directory, dir).Debug("failed to list object directory")
					return printError(cctx.App.Writer, format, status)
				}
				return fmt.Errorf("could not list object directory %q: %w", dir, err)
			}
			return printObjects(cctx.App.Writer, format, objects)
		},
	}
}

func setupLogging(cctx *cli.Context) error {
	lvl, err := logrus.ParseLevel(cctx.String(logLevelFlag))
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", logLevelFlag, err)
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(cctx.App.ErrWriter)
	return nil
}
