package cmd

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/onflow/devrand/config"
	"github.com/onflow/devrand/model/device"
	"github.com/onflow/devrand/module/metrics"
	"github.com/onflow/devrand/module/random"
)

var (
	log zerolog.Logger

	// set up by setup before any subcommand runs
	sampler       *random.Sampler
	metricsServer *metrics.Server
)

var rootCmd = &cobra.Command{
	Use:   "randint",
	Short: "Draw uniformly distributed integers on a device",
	Long: `Draws integers from per-device generator states.
	 All draws of one invocation are made on the configured device, seeded
	 from the configured hex seed or from system entropy.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	config.InitializeFlags(rootCmd.PersistentFlags(), config.DefaultConfig())

	log = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
}

// setup loads the configuration and builds the sampler used by the subcommands.
func setup(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("could not bind flags: %w", err)
	}
	conf, err := config.Load(v)
	if err != nil {
		return err
	}

	level, err := conf.ParseLogLevel()
	if err != nil {
		return err
	}
	log = log.Level(level)

	seed, err := conf.SeedBytes()
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewRandomSamplerCollector(registry)
	if conf.MetricsPort > 0 {
		server := metrics.NewServer(log, conf.MetricsPort, registry)
		if err := server.Start(); err != nil {
			return err
		}
		metricsServer = server
	}

	sampler = random.NewSampler(log, collector, device.Fixed(conf.Device), random.WithSeed(seed))
	log.Debug().
		Int("device", conf.Device).
		Bool("seeded", seed != nil).
		Uint("metrics_port", conf.MetricsPort).
		Msg("sampler initialized")
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if metricsServer != nil {
		<-metricsServer.Done()
		metricsServer = nil
	}
}
