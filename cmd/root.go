package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alksdev/alksctl/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	taglineSty  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func printBanner() {
	fmt.Println()
	fmt.Println(bannerStyle.Render("  alksctl") + taglineSty.Render("  short-lived AWS keys, IAM roles and console access via ALKS"))
	fmt.Println()
}

var rootCmd = &cobra.Command{
	Use:   "alksctl",
	Short: "alksctl requests temporary AWS credentials from an ALKS server",
	Long: `alksctl talks to an ALKS key-issuance server to create session and IAM keys,
manage IAM roles and long-term keys, and open the AWS console from issued
session credentials.

Server and user settings come from flags, the ALKS_* environment, or
~/.alksctl.yaml (keys: server, userid, refresh_token, password, debug).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Check for updates on every command (non-blocking)
		internal.CheckForUpdates()
	},
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "ALKS server base URL (e.g. https://alks.example.com/rest)")
	rootCmd.PersistentFlags().String("userid", "", "ALKS user id")
	rootCmd.PersistentFlags().String("account", "", "ALKS account, 12-digit id with optional alias suffix")
	rootCmd.PersistentFlags().String("role", "", "ALKS role for the account")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable diagnostic logging (secrets are masked)")

	viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	viper.BindPFlag("userid", rootCmd.PersistentFlags().Lookup("userid"))
	viper.BindPFlag("account", rootCmd.PersistentFlags().Lookup("account"))
	viper.BindPFlag("role", rootCmd.PersistentFlags().Lookup("role"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetConfigName(".alksctl")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.AddConfigPath(filepath.Join(home, ".config"))
	}
	viper.SetEnvPrefix("alks")
	viper.AutomaticEnv()

	// Missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

// Execute runs the CLI
func Execute() {
	if len(os.Args) <= 1 || (len(os.Args) > 1 && os.Args[1] == "help") {
		printBanner()
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
