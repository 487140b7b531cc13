package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/verifiedwealth/vw/internal/app"
	"github.com/verifiedwealth/vw/internal/common"
)

const usage = `vw-cli - Verified Wealth client

Usage:
  vw-cli <command> [flags]

Commands:
  register        Create an account and sign in
  login           Sign in with email and password
  logout          Clear the stored credential
  whoami          Show the authenticated user
  accounts        List linked accounts (--group-by institution|type|currency|balance)
  dashboard       Show net worth summary (--mode net|assets, --chart out.png)
  refresh         Re-sync account balances from the aggregator
  link            Link a new account
  ranking         Assess peer ranking (--age-range, --location, --income-bracket)
  feed            Show the community feed (--sort hot|new|top, --topic)
  thread          Show a post with its comments (--post)
  post            Create a community post
  comment         Comment on a post
  vote            Vote on a post or comment (--delta 1|-1)
  subscription    Show or change the subscription (--upgrade tier, --downgrade)
  version         Print version information
`

func main() {
	// Optional .env for local development; ignore absence.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	command := os.Args[1]
	args := os.Args[2:]

	if command == "version" {
		config, err := common.LoadConfig(os.Getenv("VW_CONFIG"))
		if err != nil {
			config = common.NewDefaultConfig()
		}
		common.PrintBanner(config, common.NewSilentLogger())
		fmt.Println(common.GetFullVersion())
		return
	}

	a, err := app.NewApp(os.Getenv("VW_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	a.Session.OnLogout(func() {
		fmt.Fprintln(os.Stderr, "Session expired. Please log in again with `vw-cli login`.")
	})

	ctx := context.Background()

	if err := dispatch(ctx, a, command, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, a *app.App, command string, args []string) error {
	switch command {
	case "register":
		return cmdRegister(ctx, a, args)
	case "login":
		return cmdLogin(ctx, a, args)
	case "logout":
		return cmdLogout(ctx, a)
	case "whoami":
		return cmdWhoami(ctx, a)
	case "accounts":
		return cmdAccounts(ctx, a, args)
	case "dashboard":
		return cmdDashboard(ctx, a, args)
	case "refresh":
		return cmdRefresh(ctx, a)
	case "link":
		return cmdLink(ctx, a, args)
	case "ranking":
		return cmdRanking(ctx, a, args)
	case "feed":
		return cmdFeed(ctx, a, args)
	case "thread":
		return cmdThread(ctx, a, args)
	case "post":
		return cmdPost(ctx, a, args)
	case "comment":
		return cmdComment(ctx, a, args)
	case "vote":
		return cmdVote(ctx, a, args)
	case "subscription":
		return cmdSubscription(ctx, a, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
