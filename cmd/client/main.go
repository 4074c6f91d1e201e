// Command effiework is the command-line dashboard client for the
// asset-management API.
package main

import (
	"cmp"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kurniawan20/effiework-sub000/internal/client"
	"github.com/Kurniawan20/effiework-sub000/internal/client/api"
	"github.com/Kurniawan20/effiework-sub000/internal/client/credential"
	"github.com/Kurniawan20/effiework-sub000/internal/config"
	"github.com/Kurniawan20/effiework-sub000/internal/logger"
)

var (
	version   string
	buildDate string
)

var (
	configPath     string
	baseURL        string
	timeout        string
	redirectPolicy string
	verbose        bool

	// services is built by the root PersistentPreRunE.
	services *api.API
	zapLog   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "effiework",
	Short:         "Asset-management dashboard client",
	Version:       fmt.Sprintf("%s (built %s)", cmp.Or(version, "N/A"), cmp.Or(buildDate, "N/A")),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if zapLog != nil {
			_ = zapLog.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "client config file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (default from config or API_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&timeout, "timeout", "", "per-request timeout, e.g. 30s (default none)")
	rootCmd.PersistentFlags().StringVar(&redirectPolicy, "redirect-policy", "", "login redirect on 401: auth-routes, always, never")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every request")
}

// setup resolves the configuration and wires the client stack.
func setup(cmd *cobra.Command) error {
	opts, err := config.LoadClient(configPath)
	if err != nil {
		return err
	}
	if baseURL != "" {
		opts.BaseURL = baseURL
	}
	if timeout != "" {
		opts.Timeout = timeout
	}
	if redirectPolicy != "" {
		opts.RedirectPolicy = redirectPolicy
	}
	if verbose {
		opts.LogLevel = "Debug"
	}

	log := logger.New()
	if err := log.Init(opts.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	zapLog = log.Log

	policy, err := client.ParseRedirectPolicy(opts.RedirectPolicy)
	if err != nil {
		return err
	}
	requestTimeout, err := opts.RequestTimeout()
	if err != nil {
		return err
	}
	httpClient, err := client.NewHTTPClient(requestTimeout, opts.CAFile)
	if err != nil {
		return err
	}

	session := credential.NewSession(
		credential.NewFileStore(opts.CredentialsFile),
		credential.NewEnvStore(opts.TokenEnv),
		zapLog,
	)
	stderr := cmd.ErrOrStderr()
	c := client.New(opts.BaseURL, session,
		client.WithHTTPClient(httpClient),
		client.WithRedirectPolicy(policy),
		client.WithAuthMarker(opts.AuthMarker),
		client.WithLogger(zapLog),
		client.WithNavigator(client.NavigatorFunc(func(context.Context, string) {
			fmt.Fprintln(stderr, "session expired, run `effiework login`")
		})),
	)
	services = api.New(c)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		os.Exit(1)
	}
}
