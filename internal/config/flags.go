package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the gateway command-line flags from args (usually
// os.Args[1:]) into a fresh flag set.
//
// Flags:
//
//	-a gateway listen address in format [host]:port
//	-port gateway listen port, used when -a is not given
//	-prefix global route prefix (e.g. "/api")
//	-shutdown-timeout graceful shutdown timeout (e.g. "10s")
//	-upstream upstream base URL
//	-upstream-timeout upstream call timeout (e.g. "5s")
//	-upstream-max-redirects redirects followed per upstream call
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("gateway", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var port string
	var pathPrefix string
	var shutdownTimeout time.Duration
	var upstreamURL string
	var upstreamTimeout time.Duration
	var upstreamMaxRedirects int
	var logLevel string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&port, "port", "", "Listen port")
	fs.StringVar(&pathPrefix, "prefix", "", "Global route prefix")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&upstreamURL, "upstream", "", "Upstream base URL")
	fs.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Upstream call timeout (e.g., 5s)")
	fs.IntVar(&upstreamMaxRedirects, "upstream-max-redirects", -1, "Redirects followed per upstream call")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			PathPrefix:      pathPrefix,
			ShutdownTimeout: shutdownTimeout,
		},
		Upstream: Upstream{
			BaseURL:        upstreamURL,
			RequestTimeout: upstreamTimeout,
		},
		Port:         port,
		JSONFilePath: jsonConfigPath,
	}
	if upstreamMaxRedirects >= 0 {
		cfg.Upstream.MaxRedirects = &upstreamMaxRedirects
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host listens on every interface; any other host must
// be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
