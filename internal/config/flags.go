package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags from the global flag set.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN (PostgreSQL on the server, SQLite file on the client)
//	-c/-config json file path with configs
//	-request-timeout server request timeout (e.g. "30s")
//	-seed insert demo cards into an empty collection
//	-hash-key request signing key
//	-server card service address used by the client
//	-gateway client card gateway: remote or local
//	-client-timeout client request timeout (e.g. "10s")
//	-retries number of client request retries
//	-export-dir directory for export documents
//	-refresh-interval client collection refresh interval (e.g. "1m")
//	-log-file client log file
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var seed bool
	var hashKey string
	var adapterAddress string
	var gateway string
	var clientTimeout time.Duration
	var retries int
	var exportDir string
	var refreshInterval time.Duration
	var logFile string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	flag.BoolVar(&seed, "seed", false, "Seed demo cards into an empty collection")
	flag.StringVar(&hashKey, "hash-key", "", "Request signing key")
	flag.StringVar(&adapterAddress, "server", "", "Card service address")
	flag.StringVar(&gateway, "gateway", "", "Card gateway: remote or local")
	flag.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout (e.g., 10s)")
	flag.IntVar(&retries, "retries", 0, "Client request retries")
	flag.StringVar(&exportDir, "export-dir", "", "Export directory")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Card refresh interval (e.g., 1m)")
	flag.StringVar(&logFile, "log-file", "", "Client log file")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Seed:    seed,
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				ExportDir: exportDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			Gateway:        gateway,
			HTTPAddress:    adapterAddress,
			RequestTimeout: clientTimeout,
			RetryCount:     retries,
		},
		Security: Security{
			HashKey: hashKey,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The port must be positive and the host must be "localhost" or an IP address.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
