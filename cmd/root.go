package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.2"
)

var rootCmd = &cobra.Command{
	Use:   "martgen",
	Short: "Synthetic retail dataset generator and batch loader",
	Long: `
martgen synthesizes a self-consistent retail dataset (customers, employees,
departments, manufacturers, products, orders, line items, shipping,
payments, returns, price history) and persists it two ways: idempotent
upserts into PostgreSQL, and flat-file backups (SQL script, CSV, SQLite).

Generation is deterministic for a given seed; loading tolerates partial
prior loads by skipping rows whose primary key already exists.`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("martgen version %s\n", Version)
			os.Exit(0)
		}

		color.New(color.FgGreen, color.Bold).Println("martgen - synthetic retail data toolkit")
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./martgen.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("martgen.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
