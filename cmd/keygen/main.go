// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command keygen prints a fresh server secret for APP_SERVER_SECRET.
package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/MKhiriev/satu-password/internal/crypto"
	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"
)

func main() {
	defer memguard.Purge()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a server secret",
		Long: `Generates 32 random bytes used to derive the session token keys.

Store the output in APP_SERVER_SECRET. Rotating it invalidates every
session that is still open.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := crypto.GenerateServerSecret()
			if err != nil {
				return fmt.Errorf("generating server secret: %w", err)
			}

			switch format {
			case "hex":
			case "base64":
				raw, err := hex.DecodeString(secret)
				if err != nil {
					return err
				}
				secret = base64.StdEncoding.EncodeToString(raw)
				memguard.WipeBytes(raw)
			default:
				return fmt.Errorf("unknown format %q, want hex or base64", format)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), secret)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "hex", "output encoding: hex or base64")

	return cmd
}
