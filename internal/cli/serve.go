package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/api"
	"github.com/hashicorp/go-hclog"
)

const shutdownTimeout = 5 * time.Second

func registerServe(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("serve")
	cmd.SetDescription("Start web interface")

	ctx.ServePort, _ = ra.NewInt("port").
		SetOptional(true).
		SetDefault(0).
		SetShort("p").
		SetFlagOnly(true).
		SetUsage("Port to listen on (default from config, 3000; will try incrementally if in use)").
		Register(cmd)

	ctx.ServeNoOpen, _ = ra.NewBool("no-open").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Don't open browser automatically").
		Register(cmd)

	ctx.ServeUsed, _ = parent.RegisterCmd(cmd)
}

func runServe(port int, noOpen bool, verbose bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	logger := newServerLogger(verbose)
	logger.Debug("catalog loaded", "source", app.CatalogSource, "colors", app.Catalog.Len())

	if port <= 0 {
		port = app.Config.ServePort()
	}
	actualPort := findAvailablePort(port)

	session := app.NewSessionService()
	handler := api.NewHandler(app.CatalogService, session, logger.Named("api"))
	server := api.NewServer(handler, actualPort, app.ConfigStore, logger)

	url := fmt.Sprintf("http://localhost:%d", actualPort)
	PrintSuccess("Swatch web server running at %s", RenderURL(url))
	PrintInfo("Press Ctrl+C to stop")

	if !noOpen && app.Config.ShouldOpenBrowser() {
		openBrowser(url)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			Fatal(err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			Fatal(err)
		}
		PrintInfo("Server stopped")
	}
}

// newServerLogger logs to stderr at Info, or Debug when verbose.
func newServerLogger(verbose bool) hclog.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: os.Stderr,
		Level:  level,
		Color:  hclog.AutoColor,
	})
}

// findAvailablePort tries ports starting from startPort until it finds one that's available.
func findAvailablePort(startPort int) int {
	maxAttempts := 100
	for i := 0; i < maxAttempts; i++ {
		port := startPort + i
		if isPortAvailable(port) {
			return port
		}
	}
	// If we couldn't find a port after maxAttempts, return the original and let it fail naturally
	return startPort
}

// isPortAvailable checks if a port is available by attempting to listen on it.
func isPortAvailable(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	listener.Close()
	return true
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}
