package cmd

import (
	"os"
	"strings"

	"github.com/Dinhh-Chan/aic-judges/api"
	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

var (
	cfgFile    string
	dotenvFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "aic-judges",
	Short: "The AIC 2025 judging dashboard",
	Long: `The AIC 2025 judging dashboard lets judges log in, score the teams of the
preliminary and final rounds against the rubric and publishes the final ranking. All
scores are stored by the remote scoring backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		if dotenvFile == "" {
			dotenvFile = os.Getenv("AIC_DOTENV_PATH")
		}
		if dotenvFile != "" {
			if err := gotenv.Load(dotenvFile); err != nil {
				logging.Log.Fatalf("Failed loading env file %s: %s", dotenvFile, err)
			}
		}

		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
			viper.AddConfigPath("./")
		}
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		if err := viper.ReadInConfig(); err != nil {
			logging.Log.Errorf("Failed to read config file: %v", err)
			panic("Failed to read config file: " + err.Error())
		}

		logging.BootstrapLogger(viper.GetString("server.logLevel"))

		config := api.ReadConfig()
		api.NewServer(config).Start()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dotenvFile, "env", "", "dotenv file loaded before the config (default is $AIC_DOTENV_PATH)")
}
