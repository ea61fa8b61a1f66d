// Package app builds the edufy-server command.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kart-io/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Sid2318/Edufy/cmd/edufy-server/app/options"
	"github.com/Sid2318/Edufy/internal/study"
)

const commandDesc = `The Edufy study server.

Upload a study document (PDF or plain text) and the server indexes it
into a vector collection, answers free-form questions about it with
intent-adaptive retrieval, and generates sample questions and
flashcards for revision.`

var configFile string

// NewServerCommand creates the root command.
func NewServerCommand() *cobra.Command {
	opts := options.NewOptions()

	cmd := &cobra.Command{
		Use:          study.Name,
		Short:        "Study document Q&A server",
		Long:         commandDesc,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, opts); err != nil {
				return err
			}
			if errs := opts.Validate(); len(errs) > 0 {
				return fmt.Errorf("invalid configuration: %v", errs)
			}
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to the configuration file")
	opts.AddFlags(cmd.Flags())

	return cmd
}

// loadConfig merges the config file and environment into the options.
// Flag values set explicitly on the command line win.
func loadConfig(cmd *cobra.Command, opts *options.Options) error {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", configFile, err)
		}
	}
	v.SetEnvPrefix("EDUFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return v.Unmarshal(opts)
}

func run(opts *options.Options) error {
	if err := opts.Log.Init(); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	logger.Infow("Starting Edufy study server",
		"addr", opts.HTTP.Addr,
		"collection", opts.Study.Collection,
	)

	ctx := setupSignalContext()

	cfg := &study.Config{
		HTTPOptions:   opts.HTTP,
		MilvusOptions: opts.Milvus,
		OllamaOptions: opts.Ollama,
		StudyOptions:  opts.Study,
	}

	server, err := cfg.NewServer(ctx)
	if err != nil {
		return err
	}
	return server.Run(ctx)
}

// setupSignalContext cancels on SIGINT/SIGTERM; a second signal exits
// immediately.
func setupSignalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
		<-ch
		os.Exit(1)
	}()

	return ctx
}
