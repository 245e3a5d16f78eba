// The mockgateway command runs a development MCP gateway serving the admin
// API over an in-memory server set. It exists for manual testing of the
// dashboard client without a real gateway.
package main

import (
	"flag"
	"fmt"

	handler "github.com/mooons/mcphub/internal/handler/http"
	"github.com/mooons/mcphub/internal/logger"
	"github.com/mooons/mcphub/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	address := flag.String("a", ":3000", "listen address")
	bareArrays := flag.Bool("bare", false, "answer list requests with bare JSON arrays (legacy mode)")
	latency := flag.Duration("latency", 0, "artificial delay added to every request")
	flag.Parse()

	log := logger.NewLogger("mock-gateway")

	h := handler.NewHandler(handler.Options{
		BareArrays: *bareArrays,
		Latency:    *latency,
	}, log)

	srv, err := server.NewServer(h.Init(), server.Config{Address: *address}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
