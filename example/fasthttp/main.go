package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/spoolkit/spool"
	"github.com/spoolkit/spool/compat"
)

func main() {
	// Create and configure the shared logger
	logger := spool.NewLogger()
	err := logger.ApplyOverride(
		"file=/var/log/fasthttp/platform.log",
		"level=fine",
		"spool_interval_ms=100",
	)
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	// Route fasthttp's internal diagnostics into the spool
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(spool.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	server := &fasthttp.Server{
		Handler: requestHandler(logger),
		Logger:  fasthttpAdapter,

		Name:         "spool-example",
		Concurrency:  fasthttp.DefaultConcurrency,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		TCPKeepalive: true,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(logger *spool.Logger) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		defer logger.Section("request "+string(ctx.Path()), spool.LevelFine)()
		logger.Fine("method=", string(ctx.Method()))

		ctx.SetContentType("text/plain")
		fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
	}
}

func customLevelDetector(msg string) int64 {
	// fasthttp-specific message patterns
	if strings.Contains(msg, "connection cannot be served") {
		return spool.LevelWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return spool.LevelError
	}
	return compat.DetectLogLevel(msg)
}
