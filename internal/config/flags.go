// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses the command-line flags in args.
//
// Flags:
//
//	-a export server address in format [host]:[port]
//	-d SQLite database DSN
//	-export-dir directory for export files
//	-export-format export format (json or yaml)
//	-import snapshot file to load at startup
//	-quote-url quote service endpoint
//	-request-timeout quote request timeout (e.g., "10s")
//	-autosave autosave interval (e.g., "5s")
//	-log-file log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, exportDir, exportFormat, importPath string
	var quoteURL, logFile, jsonConfigPath string
	var requestTimeout, autosaveInterval time.Duration

	fs := flag.NewFlagSet("board", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Export server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "SQLite database DSN")
	fs.StringVar(&exportDir, "export-dir", "", "Directory for export files")
	fs.StringVar(&exportFormat, "export-format", "", "Export format: json or yaml")
	fs.StringVar(&importPath, "import", "", "Snapshot file to load at startup")
	fs.StringVar(&quoteURL, "quote-url", "", "Quote service endpoint")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Quote request timeout (e.g., 10s)")
	fs.DurationVar(&autosaveInterval, "autosave", 0, "Autosave interval (e.g., 5s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{LogFile: logFile},
		Storage: Storage{
			DB:     DB{DSN: databaseDSN},
			Export: Export{Dir: exportDir, Format: exportFormat},
			Import: Import{Path: importPath},
		},
		Server: Server{HTTPAddress: serverAddress.String()},
		Adapter: Adapter{
			QuoteURL:       quoteURL,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{AutosaveInterval: autosaveInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
