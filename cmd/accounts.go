package cmd

import (
	"fmt"

	"github.com/alksdev/alksctl/alks"
	"github.com/alksdev/alksctl/internal/ui"
	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List ALKS accounts and roles available to you",
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

		res, err := ui.Spin("Fetching ALKS accounts...", func() (any, error) {
			return client.GetAccounts(cmd.Context(), auth)
		})
		if err != nil {
			fmt.Printf("❌ Failed to list accounts: %v\n", err)
			return
		}
		entries := res.([]alks.AccountEntry)

		if len(entries) == 0 {
			fmt.Println("No accounts found.")
			return
		}

		for _, e := range entries {
			marker := "  "
			if e.IAMKeyActive {
				marker = "🔑"
			}
			fmt.Printf("%s %s / %s\n", marker, e.Account, e.Role)
		}
		fmt.Println("\n🔑 = IAM keys enabled")
	},
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}
