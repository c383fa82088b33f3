// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-issuer token issuer
//	-token-audience token audience
//	-token-duration token duration (e.g., "15m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-kdf-workers number of Argon2id worker goroutines
//	-cookie-insecure drop the Secure cookie attribute (local development)
//
// The server secret is deliberately not a flag; it would leak through the
// process list.
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenIssuer string
	var tokenAudience string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var kdfWorkers int
	var cookieInsecure bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.StringVar(&tokenAudience, "token-audience", "", "Token audience")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 15m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&kdfWorkers, "kdf-workers", 0, "Argon2id worker goroutines")
	flag.BoolVar(&cookieInsecure, "cookie-insecure", false, "Send the session cookie without the Secure attribute")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenIssuer:    tokenIssuer,
			TokenAudience:  tokenAudience,
			TokenDuration:  tokenDuration,
			CookieInsecure: cookieInsecure,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			KDFConcurrency: kdfWorkers,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
