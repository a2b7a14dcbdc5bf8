package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spectonic/urx"
	"github.com/spectonic/urx/internal/request"
)

const (
	flagRequests    = "requests"
	flagLogLevel    = "log-level"
	flagFailAfter   = "fail-after"
	flagUnsubscribe = "unsubscribe"
)

var rootCmd = &cobra.Command{
	Use:   "urx-demo",
	Short: "stream request records through an observable",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.OutOrStderr())
	},
	SilenceUsage: true,
}

var RootCmd = rootCmd

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	addFlags(rootCmd.Flags())
	_ = viper.BindPFlags(rootCmd.Flags())

	cobra.OnInitialize(initConfig)
}

func addFlags(fs *pflag.FlagSet) {
	fs.String(flagRequests, "", "YAML file with a top-level requests list (default: built-in mocks)")
	fs.String(flagLogLevel, "info", "log level (trace, debug, info, warn, error)")
	fs.Int(flagFailAfter, 0, "error the stream after this many requests (0 disables)")
	fs.Bool(flagUnsubscribe, true, "unsubscribe once subscribe returns")
}

func initConfig() {
	viper.SetEnvPrefix("urx")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().
		Logger(), nil
}

func loadRequests(path string) ([]request.Request, error) {
	if path == "" {
		return request.Mocks(time.Now()), nil
	}
	return request.LoadFile(path)
}

func run(out io.Writer) error {
	log, err := newLogger(out, viper.GetString(flagLogLevel))
	if err != nil {
		return err
	}

	reqs, err := loadRequests(viper.GetString(flagRequests))
	if err != nil {
		return err
	}
	if err := request.Validate(reqs); err != nil {
		return fmt.Errorf("invalid requests: %w", err)
	}

	handler := request.NewHandler(log)
	requests := request.Source(reqs, viper.GetInt(flagFailAfter),
		urx.WithLogger(log),
		urx.WithName("requests"),
	)

	subscription := requests.Subscribe(handler.Handlers())
	if viper.GetBool(flagUnsubscribe) {
		subscription.Unsubscribe()
	}

	stats := handler.Stats()
	log.Info().
		Uint64("handled", stats.Handled).
		Uint64("failed", stats.Failed).
		Bool("complete", stats.Complete).
		Msg("stream finished")
	return nil
}
