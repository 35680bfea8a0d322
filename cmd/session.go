package cmd

import (
	"fmt"

	"github.com/alksdev/alksctl/alks"
	"github.com/alksdev/alksctl/internal"
	"github.com/alksdev/alksctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	sessionDuration int
	sessionIAM      bool
	sessionExport   bool
	sessionVerify   bool
	sessionRegion   string
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Create a temporary session key",
	Long:  `Create a temporary session key (optionally with IAM privileges) for an ALKS account/role.`,
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

		label := "session key"
		create := client.CreateKey
		if sessionIAM {
			label = "IAM session key"
			create = client.CreateIAMKey
		}

		res, err := ui.Spin(fmt.Sprintf("Creating %s for %s...", label, acct.Account), func() (any, error) {
			return create(ctx, acct, auth, sessionDuration)
		})
		if err != nil {
			fmt.Printf("❌ Failed to create %s: %v\n", label, err)
			return
		}
		key := res.(*alks.SessionKey)

		if sessionExport {
			printExportLines(key.AccessKey, key.SecretKey, key.SessionToken)
		} else {
			fmt.Printf("✅ Created %s for %s / %s\n", label, key.Account, key.Role)
			fmt.Printf("   Access Key: %s\n", key.AccessKey)
			fmt.Printf("   Expires:    %s (%s)\n", internal.FormatLocal(key.Expires), internal.FormatRemaining(key.Expires))
			fmt.Println("\n💡 Re-run with --export to print shell export lines")
		}

		if sessionVerify {
			arn, err := internal.VerifyKey(ctx, key.AccessKey, key.SecretKey, key.SessionToken, sessionRegion)
			if err != nil {
				fmt.Printf("❌ STS verification failed: %v\n", err)
				return
			}
			fmt.Printf("🔐 Verified with STS: %s\n", arn)
		}
	},
}

func init() {
	sessionCmd.Flags().IntVar(&sessionDuration, "duration", 1, "Session duration in hours (see 'alksctl durations')")
	sessionCmd.Flags().BoolVar(&sessionIAM, "iam", false, "Request a key with IAM privileges")
	sessionCmd.Flags().BoolVar(&sessionExport, "export", false, "Print shell export lines instead of a summary")
	sessionCmd.Flags().BoolVar(&sessionVerify, "verify", false, "Verify the issued key with STS GetCallerIdentity")
	sessionCmd.Flags().StringVar(&sessionRegion, "region", "", "AWS region for --verify (default us-east-1)")
	rootCmd.AddCommand(sessionCmd)
}
