// Package cli implements glossaryctl, a command-line client for the
// glossary server. Every command talks to the server over the transport
// chosen with --transport.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/client/client"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/client/config"
)

// Connector opens a Directory for the resolved configuration.
type Connector func(cfg *config.Config) (client.Directory, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	Transport  string
	Addr       string
	Timeout    time.Duration
	Format     string // "text" | "json"

	connect Connector
	cfg     *config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the glossaryctl command tree. A nil connect uses
// client.New.
func NewRootCommand(connect Connector) *cobra.Command {
	if connect == nil {
		connect = client.New
	}
	opts := &RootOptions{connect: connect}

	cmd := &cobra.Command{
		Use:           "glossaryctl",
		Short:         "Manage glossary terms over RPC or HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "path to a JSON config file")
	cmd.PersistentFlags().StringVarP(&opts.Transport, "transport", "t", config.TransportRPC, "transport to use (rpc|http)")
	cmd.PersistentFlags().StringVarP(&opts.Addr, "addr", "a", "", "server address (host:port for rpc, base URL for http)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 0, "per-request timeout")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))

	return cmd
}

// resolve layers defaults, the config file and the flags that were set.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	if !isValidFormat(o.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", o.Format, ValidFormats)
	}

	cfg, err := config.Load(o.ConfigFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("transport") {
		cfg.Transport = o.Transport
	}
	if flags.Changed("addr") {
		cfg.SetAddr(o.Addr)
	}
	if flags.Changed("timeout") {
		cfg.RequestTimeout = o.Timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	o.cfg = cfg
	return nil
}

// open connects using the resolved configuration.
func (o *RootOptions) open() (client.Directory, error) {
	if o.cfg == nil {
		return nil, fmt.Errorf("configuration not resolved")
	}
	return o.connect(o.cfg)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
