package cmd

import (
	"fmt"

	"github.com/alksdev/alksctl/alks"
	"github.com/alksdev/alksctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	ltkUserName string
	ltkExport   bool
)

var ltkCmd = &cobra.Command{
	Use:   "ltk",
	Short: "Manage long-term IAM access keys",
}

var ltkCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a long-term access key for an IAM user",
	Run: func(cmd *cobra.Command, args []string) {
		if ltkUserName == "" {
			fmt.Println("❌ --iam-user is required")
			return
		}

		client, auth, acct, ok := roleSetup(cmd)
		if !ok {
			return
		}

		res, err := ui.Spin(fmt.Sprintf("Creating long-term key for %s...", ltkUserName), func() (any, error) {
			return client.CreateLongTermKey(cmd.Context(), acct, auth, ltkUserName)
		})
		if err != nil {
			fmt.Printf("❌ Failed to create long-term key: %v\n", err)
			return
		}
		key := res.(*alks.LongTermKey)

		if ltkExport {
			printExportLines(key.AccessKey, key.SecretKey, "")
			return
		}

		fmt.Printf("✅ Created long-term key for %s\n", key.IAMUserName)
		fmt.Printf("   User ARN:   %s\n", key.IAMUserArn)
		fmt.Printf("   Access Key: %s\n", key.AccessKey)
		fmt.Printf("   Secret Key: %s\n", key.SecretKey)
		fmt.Println("\n⚠️  This is the only time the secret key is shown, store it safely")
	},
}

var ltkDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the long-term access keys of an IAM user",
	Run: func(cmd *cobra.Command, args []string) {
		if ltkUserName == "" {
			fmt.Println("❌ --iam-user is required")
			return
		}

		client, auth, acct, ok := roleSetup(cmd)
		if !ok {
			return
		}

		_, err := ui.Spin(fmt.Sprintf("Deleting long-term keys for %s...", ltkUserName), func() (any, error) {
			return client.DeleteLongTermKey(cmd.Context(), acct, auth, ltkUserName)
		})
		if err != nil {
			fmt.Printf("❌ Failed to delete long-term keys: %v\n", err)
			return
		}

		fmt.Printf("✅ Deleted long-term keys for %s\n", ltkUserName)
	},
}

func init() {
	ltkCreateCmd.Flags().StringVar(&ltkUserName, "iam-user", "", "IAM user name")
	ltkCreateCmd.Flags().BoolVar(&ltkExport, "export", false, "Print shell export lines instead of a summary")
	ltkDeleteCmd.Flags().StringVar(&ltkUserName, "iam-user", "", "IAM user name")

	ltkCmd.AddCommand(ltkCreateCmd)
	ltkCmd.AddCommand(ltkDeleteCmd)
	rootCmd.AddCommand(ltkCmd)
}
