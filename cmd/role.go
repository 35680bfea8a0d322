package cmd

import (
	"fmt"

	"github.com/alksdev/alksctl/alks"
	"github.com/alksdev/alksctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	roleName            string
	roleType            string
	roleTrustArn        string
	roleDefaultPolicies bool
	roleALKSAccess      bool
)

var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Manage IAM roles through ALKS",
}

var roleCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an IAM service role",
	Run: func(cmd *cobra.Command, args []string) {
		if roleName == "" || roleType == "" {
			fmt.Println("❌ --name and --type are required (see 'alksctl role types')")
			return
		}

		client, auth, acct, ok := roleSetup(cmd)
		if !ok {
			return
		}

		res, err := ui.Spin(fmt.Sprintf("Creating role %s...", roleName), func() (any, error) {
			return client.CreateIAMRole(cmd.Context(), acct, auth, alks.IAMRoleOptions{
				RoleName:               roleName,
				RoleType:               roleType,
				IncludeDefaultPolicies: roleDefaultPolicies,
				EnableALKSAccess:       roleALKSAccess,
			})
		})
		if err != nil {
			fmt.Printf("❌ Failed to create role: %v\n", err)
			return
		}
		role := res.(*alks.IAMRole)

		fmt.Printf("✅ Created role %s\n", role.RoleName)
		fmt.Printf("   Role ARN:             %s\n", role.RoleArn)
		if role.InstanceProfileArn != "" {
			fmt.Printf("   Instance Profile ARN: %s\n", role.InstanceProfileArn)
		}
	},
}

var roleCreateTrustCmd = &cobra.Command{
	Use:   "create-trust",
	Short: "Create an IAM role assumable via a trust ARN",
	Run: func(cmd *cobra.Command, args []string) {
		if roleName == "" || roleType == "" || roleTrustArn == "" {
			fmt.Println("❌ --name, --type and --trust-arn are required")
			return
		}

		client, auth, acct, ok := roleSetup(cmd)
		if !ok {
			return
		}

		res, err := ui.Spin(fmt.Sprintf("Creating trust role %s...", roleName), func() (any, error) {
			return client.CreateIAMTrustRole(cmd.Context(), acct, auth, alks.TrustRoleOptions{
				RoleName:         roleName,
				RoleType:         roleType,
				TrustArn:         roleTrustArn,
				EnableALKSAccess: roleALKSAccess,
			})
		})
		if err != nil {
			fmt.Printf("❌ Failed to create trust role: %v\n", err)
			return
		}
		role := res.(*alks.IAMRole)

		fmt.Printf("✅ Created trust role %s\n", role.RoleName)
		fmt.Printf("   Role ARN: %s\n", role.RoleArn)
	},
}

var roleDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an IAM role created through ALKS",
	Run: func(cmd *cobra.Command, args []string) {
		if roleName == "" {
			fmt.Println("❌ --name is required")
			return
		}

		client, auth, acct, ok := roleSetup(cmd)
		if !ok {
			return
		}

		_, err := ui.Spin(fmt.Sprintf("Deleting role %s...", roleName), func() (any, error) {
			return client.DeleteIAMRole(cmd.Context(), acct, auth, roleName)
		})
		if err != nil {
			fmt.Printf("❌ Failed to delete role: %v\n", err)
			return
		}

		fmt.Printf("✅ Deleted role %s\n", roleName)
	},
}

var roleTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the IAM role types the server supports",
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

		res, err := ui.Spin("Fetching role types...", func() (any, error) {
			return client.GetIAMRoleTypes(cmd.Context(), auth)
		})
		if err != nil {
			fmt.Printf("❌ Failed to fetch role types: %v\n", err)
			return
		}

		for _, t := range res.([]string) {
			fmt.Println("📦", t)
		}
	},
}

func roleSetup(cmd *cobra.Command) (*alks.Client, alks.Auth, alks.AccountRef, bool) {
	client, err := newClient()
	if err != nil {
		fmt.Println("❌", err)
		return nil, alks.Auth{}, alks.AccountRef{}, false
	}
	auth, err := getAuth()
	if err != nil {
		fmt.Println("❌", err)
		return nil, alks.Auth{}, alks.AccountRef{}, false
	}
	acct, err := resolveAccount(cmd.Context(), client, auth)
	if err != nil {
		fmt.Printf("❌ Failed to resolve account: %v\n", err)
		return nil, alks.Auth{}, alks.AccountRef{}, false
	}
	return client, auth, acct, true
}

func init() {
	for _, c := range []*cobra.Command{roleCreateCmd, roleCreateTrustCmd, roleDeleteCmd} {
		c.Flags().StringVar(&roleName, "name", "", "Role name")
	}
	roleCreateCmd.Flags().StringVar(&roleType, "type", "", "Role type (see 'alksctl role types')")
	roleCreateTrustCmd.Flags().StringVar(&roleType, "type", "", "Role type (see 'alksctl role types')")
	roleCreateTrustCmd.Flags().StringVar(&roleTrustArn, "trust-arn", "", "ARN of the principal allowed to assume the role")
	roleCreateCmd.Flags().BoolVar(&roleDefaultPolicies, "include-default-policies", false, "Attach the account's default policies")
	roleCreateCmd.Flags().BoolVar(&roleALKSAccess, "enable-alks-access", false, "Allow ALKS to manage the role's sessions")
	roleCreateTrustCmd.Flags().BoolVar(&roleALKSAccess, "enable-alks-access", false, "Allow ALKS to manage the role's sessions")

	roleCmd.AddCommand(roleCreateCmd)
	roleCmd.AddCommand(roleCreateTrustCmd)
	roleCmd.AddCommand(roleDeleteCmd)
	roleCmd.AddCommand(roleTypesCmd)
	rootCmd.AddCommand(roleCmd)
}
