// server renders Mandelbrot images on request. It answers plain http GET
// requests on /render, and serves mandel.Renderer over irpc on tcp and
// websocket connections. Renders run one at a time.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/marben/irpc"

	mandel "github.com/marben/aa_mandel"
	"github.com/marben/aa_mandel/render"
)

type args struct {
	HTTPPort int  `arg:"--http-port" default:"8080" help:"port for /render and the /ws websocket endpoint"`
	TCPPort  int  `arg:"--tcp-port" default:"8081" help:"port for irpc render requests over plain tcp"`
	MaxWork  int  `arg:"--max-work" default:"67108864" help:"largest accepted width*height*samples, 0 for no limit"`
	Verbose  bool `arg:"-v,--verbose" help:"log per-tile progress"`
}

func main() {
	var a args
	arg.MustParse(&a)

	if err := run(a); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(a args) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if a.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	render.SetLogger(slog.Default())

	svc := newRenderService(a.MaxWork)

	// rendererIrpcService provides mandel.Renderer over network
	// the same instance backs /render, so irpc and http clients share the render slot
	rendererIrpcService := mandel.NewRendererIrpcService(svc)

	irpcServer := irpc.NewServer(irpc.WithOnConnect(func(ep *irpc.Endpoint) {
		log.Printf("got connection from: %s", ep.RemoteAddr())
	}))
	irpcServer.AddService(rendererIrpcService)

	// TCP
	log.Printf("tcp listening on port: %d", a.TCPPort)
	tcpListener, err := net.Listen("tcp", fmt.Sprintf(":%d", a.TCPPort))
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener, httpServer := webServer(ctx, a.HTTPPort, svc)

	errc := make(chan error, 3)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("httpServer: %w", err)
		}
	}()
	// irpcServer can serve multiple listeners. In this case both tcp and websocket
	go func() {
		if err := irpcServer.Serve(tcpListener); !errors.Is(err, irpc.ErrServerClosed) {
			errc <- fmt.Errorf("server.Serve tcp: %w", err)
		}
	}()
	go func() {
		if err := irpcServer.Serve(websocketListener); !errors.Is(err, irpc.ErrServerClosed) {
			errc <- fmt.Errorf("server.Serve ws: %w", err)
		}
	}()

	log.Printf("mandel server waiting for http, tcp and websocket connections")
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return errors.Join(httpServer.Shutdown(shutdownCtx), irpcServer.Close())
}
