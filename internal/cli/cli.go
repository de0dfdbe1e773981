package cli

import (
	"io"
	"strings"

	"github.com/henderiw/zipcondense/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that can stand in for
// flags, e.g. ZIPCONDENSE_LOG_FORMAT=json.
const EnvPrefix = "ZIPCONDENSE"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var config *app.Config
	cmd := &cobra.Command{
		Use:   "zipcondense [flags] [FILE]",
		Short: "Merges zip code ranges into the minimal sorted set.",
		Long: `Merges zip code ranges into the minimal sorted set.

FILE is a text file with one [xxxxx,yyyyy] range per line. Lines that do
not hold a valid range are reported and skipped.
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := v.GetString("input")
			if path == "" && len(args) > 0 {
				path = args[0]
			}
			if path == "" && !v.GetBool("test") {
				return cmd.Help()
			}
			c, err := app.NewConfig(app.Config{
				InputPath: path,
				SelfTest:  v.GetBool("test"),
				Debug:     v.GetBool("debug"),
				LogFormat: strings.ToLower(v.GetString("log-format")),
			})
			if err != nil {
				return err
			}
			config = c
			return nil
		},
	}
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringP("input", "i", "", "Path to the file holding the zip code ranges.")
	flags.Bool("test", false, "Run the built in tests.")
	flags.BoolP("debug", "d", false, "Print verbose output.")
	flags.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	if err := v.BindPFlags(flags); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if config == nil {
		// help was printed
		return nil, true, nil
	}
	return config, false, nil
}
