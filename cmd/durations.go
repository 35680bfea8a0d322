package cmd

import (
	"fmt"

	"github.com/alksdev/alksctl/internal/ui"
	"github.com/spf13/cobra"
)

var durationsCmd = &cobra.Command{
	Use:   "durations",
	Short: "List the session durations available for an account/role",
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

		res, err := ui.Spin("Fetching durations...", func() (any, error) {
			return client.GetDurations(ctx, acct, auth)
		})
		if err != nil {
			fmt.Printf("❌ Failed to fetch durations: %v\n", err)
			return
		}
		durations := res.([]int)

		if len(durations) == 0 {
			fmt.Println("No durations available for this account.")
			return
		}

		fmt.Printf("Available durations for %s / %s (hours):\n", acct.Account, acct.Role)
		for _, d := range durations {
			fmt.Printf("  %d\n", d)
		}
	},
}

func init() {
	rootCmd.AddCommand(durationsCmd)
}
