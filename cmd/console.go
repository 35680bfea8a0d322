package cmd

import (
	"fmt"

	"github.com/alksdev/alksctl/alks"
	"github.com/alksdev/alksctl/internal"
	"github.com/alksdev/alksctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	consoleDuration int
	consoleIAM      bool
	consoleOpen     bool
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Generate an AWS console sign-in URL",
	Long:  `Create a fresh session key and exchange it for an AWS console sign-in URL via the federation endpoint.`,
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		if err != nil {
			fmt.Println("❌", err)
			return
		}

		auth, err := getAuth()
		if err != nil {
			fmt.Println("❌", err)
			return
		}

		ctx := cmd.Context()
		acct, err := resolveAccount(ctx, client, auth)
		if err != nil {
			fmt.Printf("❌ Failed to resolve account: %v\n", err)
			return
		}

		create := client.CreateKey
		if consoleIAM {
			create = client.CreateIAMKey
		}

		res, err := ui.Spin("Creating session key...", func() (any, error) {
			return create(ctx, acct, auth, consoleDuration)
		})
		if err != nil {
			fmt.Printf("❌ Failed to create session key: %v\n", err)
			return
		}
		key := res.(*alks.SessionKey)

		res, err = ui.Spin("Getting sign-in token...", func() (any, error) {
			return client.GenerateConsoleURL(ctx, key)
		})
		if err != nil {
			fmt.Printf("❌ Failed to generate console URL: %v\n", err)
			return
		}
		consoleURL := res.(string)

		fmt.Printf("✅ Console URL generated for %s / %s\n", key.Account, key.Role)
		fmt.Printf("   Expires: %s\n\n", internal.FormatLocal(key.Expires))

		if consoleOpen {
			fmt.Println("🌐 Opening AWS Console in browser...")
			if err := openBrowser(consoleURL); err != nil {
				fmt.Printf("❌ Failed to open browser: %v\n", err)
				fmt.Printf("\nPlease open this URL manually:\n%s\n", consoleURL)
			}
		} else {
			fmt.Printf("Console URL:\n%s\n", consoleURL)
		}
	},
}

func init() {
	consoleCmd.Flags().IntVar(&consoleDuration, "duration", 1, "Session duration in hours")
	consoleCmd.Flags().BoolVar(&consoleIAM, "iam", false, "Use an IAM session key")
	consoleCmd.Flags().BoolVar(&consoleOpen, "open", false, "Automatically open URL in browser")
	rootCmd.AddCommand(consoleCmd)
}
