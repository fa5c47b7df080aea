package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"passthrufs/internal/fs"
	"passthrufs/internal/logging"

	"bazil.org/fuse"
	"github.com/spf13/pflag"
)

var (
	logger = logging.GetLogger()
)

type options struct {
	mountPoint string
	sourcePath string
	verbose    bool
	fuseDebug  bool
}

func parseArgs(args []string) (*options, error) {
	flagSet := pflag.NewFlagSet("passthrufs", pflag.ContinueOnError)
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: passthrufs [flags] MOUNTPOINT SOURCE\n\n")
		flagSet.PrintDefaults()
	}

	opts := &options{}
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	flagSet.BoolVar(&opts.fuseDebug, "fuse-debug", os.Getenv("FUSE_DEBUG") != "", "Log every FUSE protocol message at TRACE level")

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}
	if flagSet.NArg() != 2 {
		flagSet.Usage()
		return nil, fmt.Errorf("expected MOUNTPOINT and SOURCE, got %d arguments", flagSet.NArg())
	}

	opts.mountPoint = filepath.Clean(flagSet.Arg(0))
	opts.sourcePath = filepath.Clean(flagSet.Arg(1))
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err == pflag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		logger.Error("%v", err)
		os.Exit(2)
	}

	if opts.verbose {
		logger.SetLevel(logging.LevelDebug)
	}
	if opts.fuseDebug {
		logger.SetLevel(logging.LevelTrace)
		fuseLogger := logger.WithPrefix("fuse")
		fuse.Debug = func(msg interface{}) {
			fuseLogger.Trace("%v", msg)
		}
	}

	logger.Info("Starting passthrufs...")
	logger.Debug("Mount point: %s", opts.mountPoint)
	logger.Debug("Source path: %s", opts.sourcePath)

	vfs, err := fs.NewPassthruFS(opts.sourcePath)
	if err != nil {
		logger.Error("Failed to create filesystem: %v", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if err := vfs.Mount(opts.mountPoint); err != nil {
		logger.Error("Mount failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Filesystem mounted and ready")

	go func() {
		sig := <-sigChan
		logger.Info("Received signal %v", sig)
		if err := vfs.Unmount(opts.mountPoint); err != nil {
			logger.Error("Unmount error: %v", err)
		}
	}()

	if err := vfs.Wait(); err != nil {
		logger.Error("FUSE server error: %v", err)
		os.Exit(1)
	}
	logger.Info("Clean shutdown complete (%d handles issued)", vfs.Dispatcher().Registry().Len())
}
