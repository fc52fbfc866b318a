package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theirongolddev/econopsych/internal/cli"
	"github.com/theirongolddev/econopsych/internal/config"
	"github.com/theirongolddev/econopsych/internal/daemon"

	"github.com/spf13/cobra"
)

var (
	flagServeAddr         string
	flagServeEventsBuffer int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the session ledger over HTTP, SSE and WebSocket",
	RunE:  runServe,
}

var serveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe a running server's /v1/status",
	RunE:  runServeStatus,
}

func init() {
	def := config.DefaultConfig().Server
	serveCmd.PersistentFlags().StringVar(&flagServeAddr, "addr", def.Addr, "HTTP listen address")
	serveCmd.Flags().IntVar(&flagServeEventsBuffer, "events-buffer", def.EventsBuffer, "Max in-memory events retained")

	serveCmd.AddCommand(serveStatusCmd)
	rootCmd.AddCommand(serveCmd)
}

// serveAddr prefers --addr, then the loaded config (and ECONOPSYCH_ADDR).
func serveAddr(c *cobra.Command) string {
	if c.Flags().Changed("addr") || cfg.Server.Addr == "" {
		return flagServeAddr
	}
	return cfg.Server.Addr
}

func runServe(c *cobra.Command, _ []string) error {
	buffer := flagServeEventsBuffer
	if !c.Flags().Changed("events-buffer") && cfg.Server.EventsBuffer > 0 {
		buffer = cfg.Server.EventsBuffer
	}

	svc, err := daemon.New(daemon.Config{
		Seed:         flagSeed,
		Days:         flagDays,
		Empty:        flagEmpty,
		Currency:     currency(),
		Addr:         serveAddr(c),
		EventsBuffer: buffer,
	})
	if err != nil {
		return err
	}

	if !flagQuiet {
		addr := serveAddr(c)
		fmt.Printf("  econopsych listening on http://%s\n", addr)
		fmt.Printf("  Session %s\n", svc.SessionID())
		fmt.Printf("  Add a day: curl -d '{\"planned_spend\":30,\"actual_spend\":42,\"savings_goal\":20,\"impulse_level\":4}' http://%s/v1/days\n", addr)
		fmt.Println("  Stop with Ctrl+C")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runServeStatus(c *cobra.Command, _ []string) error {
	addr := serveAddr(c)
	fmt.Printf("  Address: http://%s\n", addr)

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + "/v1/status") //nolint:noctx // short status probe
	if err != nil {
		fmt.Printf("  API status: unreachable (%v)\n", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("  API status: HTTP %d\n", resp.StatusCode)
		return nil
	}

	var st daemon.Status
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		fmt.Printf("  API status: malformed response (%v)\n", err)
		return nil
	}

	cur := currency()
	fmt.Printf("  Session: %s (seed %d)\n", st.SessionID, st.Seed)
	fmt.Printf("  Up since: %s\n", st.StartedAt.Local().Format(time.RFC3339))
	if st.LastAppendAt.IsZero() {
		fmt.Printf("  Last append: none\n")
	} else {
		fmt.Printf("  Last append: %s\n", st.LastAppendAt.Local().Format(time.RFC3339))
	}
	fmt.Printf("  Appends: %d accepted, %d rejected\n", st.AppendCount, st.RejectCount)
	fmt.Printf("  Days: %d (%d biased)\n", st.Summary.Days, st.Summary.BiasedDays)
	fmt.Printf("  Net savings: %s\n", cli.FormatSignedMoney(cur, st.Summary.NetSavings))
	fmt.Printf("  Subscribers: %d\n", st.SubscriberCount)
	if st.LastError != "" {
		fmt.Printf("  Last error: %s\n", st.LastError)
	}
	return nil
}
