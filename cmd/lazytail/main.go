package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lazytail/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	filePath := flag.String("file", "", "log file to tail")
	command := flag.String("cmd", "", "command whose stdout to stream (e.g. \"adb logcat\")")
	format := flag.String("format", "plain", "log format: plain, json or structured")
	fromStart := flag.Bool("from-start", false, "read the file's existing content too")
	pollMS := flag.Int("poll", 0, "poll interval in milliseconds (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		FilePath:   *filePath,
		Command:    *command,
		Format:     *format,
		FromStart:  *fromStart,
	}
	if *pollMS > 0 {
		opts.PollEvery = time.Duration(*pollMS) * time.Millisecond
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "lazytail: %v\n", err)
		return 1
	}
	return 0
}
