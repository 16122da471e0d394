package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/austrich-ai/austrich/internal/cli"
	"github.com/austrich-ai/austrich/internal/recorder"
	"github.com/spf13/cobra"
)

func recordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Time an encounter recording session",
		Long: `Drive a recording session from the terminal.

Commands: pause, resume, stop, discard. The elapsed clock excludes paused
time. Stopping prints the final duration; discarding throws the session
away without finalizing.`,
		RunE: runRecord,
	}
}

func runRecord(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	session := recorder.NewSession(func(elapsed time.Duration) {
		slog.Info(cli.FormatSuccess(fmt.Sprintf("Recording finished: %s", formatElapsed(elapsed))))
	})

	if err := session.Start(); err != nil {
		return err
	}

	fmt.Fprintln(out, cli.FormatTitle("Recording started"))
	fmt.Fprintln(out, cli.SubtleStyle.Render("pause | resume | stop | discard"))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		select {
		case <-ctx.Done():
			_ = session.Discard()
			return ctx.Err()
		default:
		}

		fmt.Fprintf(out, "[%s %s] > ", session.State(), formatElapsed(session.Elapsed()))
		if !scanner.Scan() {
			// Input closed: treat like a discard, nothing was saved.
			_ = session.Discard()
			return scanner.Err()
		}

		var err error
		switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
		case "pause", "p":
			err = session.Pause()
		case "resume", "r":
			err = session.Resume()
		case "stop", "s":
			if err = session.Stop(); err == nil {
				return nil
			}
		case "discard", "d":
			if err = session.Discard(); err == nil {
				fmt.Fprintln(out, cli.FormatWarning("Recording discarded"))
				return nil
			}
		case "":
			continue
		default:
			fmt.Fprintln(out, cli.FormatWarning("unknown command (pause, resume, stop, discard)"))
			continue
		}

		if err != nil {
			fmt.Fprintln(out, cli.FormatError(err.Error()))
		}
	}
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
