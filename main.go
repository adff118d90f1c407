package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nstehr/vimy/vimy-tactics/agent"
	"github.com/nstehr/vimy/vimy-tactics/config"
	"github.com/nstehr/vimy/vimy-tactics/ipc"
	"github.com/nstehr/vimy/vimy-tactics/journal"
	"github.com/nstehr/vimy/vimy-tactics/rules"
	"github.com/nstehr/vimy/vimy-tactics/telemetry"
)

const banner = `
██╗   ██╗██╗███╗   ███╗██╗   ██╗
██║   ██║██║████╗ ████║╚██╗ ██╔╝
██║   ██║██║██╔████╔██║ ╚████╔╝
╚██╗ ██╔╝██║██║╚██╔╝██║  ╚██╔╝
 ╚████╔╝ ██║██║ ╚═╝ ██║   ██║
  ╚═══╝  ╚═╝╚═╝     ╚═╝   ╚═╝

Skirmish-Driven Tactical Core`

func main() {
	configPath := flag.String("config", "", "path to a YAML config; defaults apply when empty")
	socketPath := flag.String("socket", "/tmp/vimy-tactics.sock", "unix socket the bridge connects to")
	journalPath := flag.String("journal", "", "SQLite journal of decisions; disabled when empty")
	debugAddr := flag.String("debug-addr", "", "serve the telemetry websocket on this address, e.g. :8090")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	fmt.Println(banner)

	slog.Info("starting vimy-tactics")

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var hub *telemetry.Hub
	if *debugAddr != "" || cfg.DrawInGame {
		hub = telemetry.NewHub()
		defer hub.Close()
	}
	if *debugAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		srv := &http.Server{Addr: *debugAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("telemetry server failed", "addr", *debugAddr, "error", err)
			}
		}()
		defer srv.Close()
		slog.Info("telemetry listening", "addr", *debugAddr, "path", "/ws")
	}

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(*socketPath); err != nil {
		slog.Error("failed to clean up socket", "path", *socketPath, "error", err)
		os.Exit(1)
	}

	listener, err := net.Listen("unix", *socketPath)
	if err != nil {
		slog.Error("failed to listen on socket", "path", *socketPath, "error", err)
		os.Exit(1)
	}
	defer listener.Close()
	defer os.Remove(*socketPath)

	slog.Info("listening on domain socket", "path", *socketPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			slog.Info("new connection accepted")
			go handleConn(ctx, conn, cfg, hub, *journalPath)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}

// handleConn runs one game session. Each session gets its own engine so a
// doctrine switch in one game never leaks into another.
func handleConn(ctx context.Context, conn net.Conn, cfg config.Config, hub *telemetry.Hub, journalPath string) {
	engine, err := rules.NewEngine(rules.CompileDoctrine(cfg.Doctrine))
	if err != nil {
		slog.Error("failed to compile doctrine", "doctrine", cfg.Doctrine.Name, "error", err)
		conn.Close()
		return
	}

	c := ipc.NewConnection(conn, nil)
	a := agent.New(ipc.Commands{Conn: c}, cfg, engine)
	a.Hub = hub

	if journalPath != "" {
		j, err := journal.Open(journalPath)
		if err != nil {
			slog.Error("journal disabled", "path", journalPath, "error", err)
		} else {
			defer j.Close()
			a.Journal = j
			slog.Info("journal session started", "path", journalPath, "session", j.Session())
		}
	}

	if len(cfg.Reactions) > 0 {
		sctx, cancel := context.WithCancel(ctx)
		defer cancel()
		a.Strategist = agent.NewStrategist(engine, cfg.Doctrine, cfg.Doctrines, cfg.Reactions)
		go a.Strategist.Start(sctx)
	}

	c.RegisterHandler(ipc.TypeHello, func(env ipc.Envelope) (*ipc.Envelope, error) {
		resp, err := a.HandleHello(env)
		c.Player = a.Player
		return resp, err
	})
	c.RegisterHandler(ipc.TypeGameState, a.HandleGameState)
	if cfg.DrawInGame {
		frames, stop := hub.Subscribe()
		defer stop()
		c.Overlay = frames
	}
	st := c.Run(ctx)
	slog.Info("session ended", "player", c.Player, "received", st.Received,
		"unhandled", st.Unhandled, "failed", st.Failed, "overlays", st.Overlays)
}
