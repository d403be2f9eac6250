package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/Siomarry/tiny-web-server/app/lib/http"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ServerConfig struct {
	Port   int
	Root   string
	Debug  bool
	Pretty bool
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	conf, err := parseArgs(os.Args, os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	if conf.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if conf.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: colorable.NewColorableStderr()})
	}

	logger := log.With().Str("component", "main").Logger()
	logger.Debug().Interface("config", conf).Msg("Parsed config")

	httpConf := http.DefaultConfig()
	httpConf.DocRoot = conf.Root

	handler := http.NewTransactionHandler(
		httpConf,
		http.ExecSpawner{},
		log.With().Str("component", "transaction").Logger(),
	)

	address := fmt.Sprintf("0.0.0.0:%d", conf.Port)
	l, err := net.Listen("tcp", address)
	if err != nil {
		logger.Fatal().Err(err).Int("port", conf.Port).Msg("failed to bind port")
	}
	defer l.Close()

	logger.Info().Str("address", address).Str("root", conf.Root).Msg("listening")

	if err := http.Serve(l, handler, log.With().Str("component", "accept").Logger()); err != nil {
		logger.Fatal().Err(err).Msg("accept loop stopped")
	}
}

func parseArgs(args []string, output io.Writer) (ServerConfig, error) {
	conf := ServerConfig{}

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&conf.Root, "root", http.DefaultDocRoot, "document root for static and dynamic content")
	flags.BoolVar(&conf.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&conf.Pretty, "pretty", isatty.IsTerminal(os.Stderr.Fd()), "human readable log output")
	flags.Usage = func() {
		fmt.Fprintf(output, "usage: %s [flags] <port>\n", args[0])
		flags.PrintDefaults()
	}

	if err := flags.Parse(args[1:]); err != nil {
		return conf, err
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return conf, errors.New("expected exactly one port argument")
	}

	port, err := strconv.Atoi(flags.Arg(0))
	if err != nil || port < 0 || port > 65535 {
		flags.Usage()
		return conf, fmt.Errorf("invalid port %q", flags.Arg(0))
	}
	conf.Port = port

	return conf, nil
}
