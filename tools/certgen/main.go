// Command certgen writes a development CA and a server certificate signed
// by it. Start the server with -tls-cert certs/server.crt -tls-key
// certs/server.key and set ca_file: certs/ca.crt in the client config.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kurniawan20/effiework-sub000/internal/certgen"
)

var (
	outDir string
	hosts  []string
	days   int
	caCert string
	caKey  string
)

var rootCmd = &cobra.Command{
	Use:          "certgen",
	Short:        "Generate TLS material for a local HTTPS API",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := generate(outDir, hosts, time.Duration(days)*24*time.Hour, caCert, caKey)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "CA:     %s\nserver: %s, %s\n", files.CACert, files.ServerCert, files.ServerKey)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "certs", "output directory")
	rootCmd.Flags().StringSliceVar(&hosts, "hosts", []string{"localhost", "127.0.0.1"}, "server host names and IPs")
	rootCmd.Flags().IntVar(&days, "days", 365, "server certificate lifetime in days")
	rootCmd.Flags().StringVar(&caCert, "ca-cert", "", "existing CA certificate to sign with")
	rootCmd.Flags().StringVar(&caKey, "ca-key", "", "existing CA key to sign with")
}

// generate signs a server certificate with the CA at caCertPath/caKeyPath,
// or with a new ten-year CA when no CA is given.
func generate(dir string, hosts []string, validFor time.Duration, caCertPath, caKeyPath string) (certgen.Files, error) {
	if validFor <= 0 {
		return certgen.Files{}, fmt.Errorf("invalid lifetime %s", validFor)
	}
	var (
		ca  *certgen.Authority
		err error
	)
	if caCertPath != "" || caKeyPath != "" {
		ca, err = certgen.LoadAuthority(caCertPath, caKeyPath)
	} else {
		ca, err = certgen.NewAuthority("Effiework Dev CA", 10*365*24*time.Hour)
	}
	if err != nil {
		return certgen.Files{}, err
	}
	server, err := ca.IssueServer(hosts, validFor)
	if err != nil {
		return certgen.Files{}, err
	}
	return certgen.WriteFiles(dir, ca, server)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
