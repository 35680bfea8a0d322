package cmd

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"syscall"

	"github.com/alksdev/alksctl/alks"
	"github.com/alksdev/alksctl/internal"
	"github.com/alksdev/alksctl/internal/ui"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func newClient() (*alks.Client, error) {
	server := viper.GetString("server")
	if server == "" {
		return nil, fmt.Errorf("no ALKS server configured (use --server, ALKS_SERVER or ~/.alksctl.yaml)")
	}

	return alks.New(alks.Config{
		BaseURL:           server,
		UserAgent:         "alksctl/" + internal.CurrentVersion,
		Debug:             viper.GetBool("debug"),
		DeleteRoleViaPOST: viper.GetBool("legacy_delete_role"),
	})
}

// getAuth resolves credentials: a refresh token wins, otherwise
// userid/password with an interactive masked prompt as the fallback.
func getAuth() (alks.Auth, error) {
	if token := viper.GetString("refresh_token"); token != "" {
		return alks.Auth{RefreshToken: token}, nil
	}

	userid := viper.GetString("userid")
	if userid == "" {
		return alks.Auth{}, fmt.Errorf("no ALKS userid configured (use --userid, ALKS_USERID or ~/.alksctl.yaml)")
	}

	password := viper.GetString("password")
	if password == "" {
		var err error
		password, err = readPassword(fmt.Sprintf("ALKS password for %s: ", userid))
		if err != nil {
			return alks.Auth{}, err
		}
	}

	return alks.Auth{Userid: userid, Password: password}, nil
}

func readPassword(prompt string) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("no password configured and stdin is not a terminal")
	}
	return ui.GetInput(prompt, "", true)
}

// resolveAccount returns the account/role from flags, or lets the user pick
// one from the live account listing.
func resolveAccount(ctx context.Context, client *alks.Client, auth alks.Auth) (alks.AccountRef, error) {
	account := viper.GetString("account")
	role := viper.GetString("role")
	if account != "" && role != "" {
		return alks.AccountRef{Account: account, Role: role}, nil
	}

	res, err := ui.Spin("Fetching ALKS accounts...", func() (any, error) {
		return client.GetAccounts(ctx, auth)
	})
	if err != nil {
		return alks.AccountRef{}, err
	}
	entries := res.([]alks.AccountEntry)
	if len(entries) == 0 {
		return alks.AccountRef{}, fmt.Errorf("no ALKS accounts available for this user")
	}

	labels := make([]string, len(entries))
	byLabel := make(map[string]alks.AccountEntry, len(entries))
	for i, e := range entries {
		labels[i] = fmt.Sprintf("%s / %s", e.Account, e.Role)
		byLabel[labels[i]] = e
	}

	choice, err := ui.Select("Select ALKS account", labels)
	if err != nil {
		return alks.AccountRef{}, err
	}

	picked := byLabel[choice]
	return alks.AccountRef{Account: picked.Account, Role: picked.Role}, nil
}

// printExportLines emits shell-compatible export commands for a key.
func printExportLines(accessKey, secretKey, sessionToken string) {
	fmt.Printf("export AWS_ACCESS_KEY_ID=%s\n", accessKey)
	fmt.Printf("export AWS_SECRET_ACCESS_KEY=%s\n", secretKey)
	if sessionToken != "" {
		fmt.Printf("export AWS_SESSION_TOKEN=%s\n", sessionToken)
	}
}

func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform")
	}
	return cmd.Start()
}
