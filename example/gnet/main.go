package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/spoolkit/spool"
	"github.com/spoolkit/spool/compat"
)

// Echo server whose gnet diagnostics are routed into the spool
type echoServer struct {
	gnet.BuiltinEventEngine

	logger *spool.Logger
}

func (es *echoServer) OnOpen(c gnet.Conn) ([]byte, gnet.Action) {
	es.logger.Fine("connection opened: ", c.RemoteAddr().String())
	return nil, gnet.None
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	logger := spool.NewLogger()
	err := logger.ApplyOverride(
		"file=/var/log/gnet/platform.log",
		"level=trace",
	)
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	gnetAdapter := compat.NewGnetAdapter(logger)

	err = gnet.Run(
		&echoServer{logger: logger},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
