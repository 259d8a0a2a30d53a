package cyclehud

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cyclehud",
	Short: "Item-cycling HUD state controller",
	Long: `Cyclehud is the state controller behind an item-cycling HUD: four equip
slots, each with its own rotation of favorited items, driven by hotkeys.
The run command simulates the game host, feeding raw key events from stdin
or a serial device and acting on the controller's responses.`,
	PersistentPreRun: bindFlags,
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
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cyclehud.toml)")
}

func initConfig() {
	if cfgFile != "" {
		log.Printf("Using config file: %s\n", cfgFile)
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".cyclehud" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".cyclehud")
	}
	// Set environment variable prefix
	viper.SetEnvPrefix("cyclehud")
	viper.AutomaticEnv()

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create an example config
			createExampleConfig()
		} else {
			log.Printf("Error reading config file: %s\n", err)
			os.Exit(1)
		}
	}
}

func createExampleConfig() {
	exampleConfig := `
store = "./cycles.sqlite"
equip-delay-ms = 750
max-cycle-length = 15

[keys]
power = 3
utility = 4
left = 5
right = 6
activate = 7
showhide = 8

[fade]
enabled = false
target-alpha = 1.0
`
	configPath := "./.cyclehud.toml"

	err := os.WriteFile(configPath, []byte(exampleConfig), 0o644)
	if err != nil {
		log.Printf("Error creating example config file: %s\n", err)
		os.Exit(1)
	}

	log.Printf("Example config file created at %s\n", configPath)
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// If using camelCase in the config file, replace hyphens with a camelCased string.
		// Since viper does case-insensitive comparisons, we don't need to bother fixing the case, and only need to remove the hyphens.
		configName := strings.ReplaceAll(f.Name, "-", "")

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)

			err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
			if err != nil {
				log.Printf("Error setting flag %s: %s\n", f.Name, err)
				panic(err)
			}
		}
	})
}
