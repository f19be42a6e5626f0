package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sigep/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scene viewer over SSH",
	Long: `Start an SSH server that opens the scene viewer for every connection.

Each session edits its own copy of the scene; nothing is written back.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.sigep/host_key

Examples:
  sigep serve                           # Listen on :23234 with auto-generated key
  sigep serve --ssh :2222               # Listen on port 2222
  sigep serve --stored warehouse        # Serve a scene from the database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default: from settings)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default: from settings)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	sc, err := loadScene()
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	srv := settings.Server
	if flagSSHAddr != "" {
		srv.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srv.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srv.IdleTimeoutMin = flagIdleTimeout
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = srv.Address
	cfg.HostKeyPath = srv.HostKey
	cfg.IdleTimeout = srv.IdleTimeout()
	// screen size is replaced per session
	cfg.Config = settings.View.RuntimeConfig(0, 0)

	server, err := tui.NewSSHServer(cfg, sc, logger.WithPrefix("sigep-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Serving scene %q on %s\n", sc.Name, cfg.Address)
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}
