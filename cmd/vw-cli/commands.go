package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verifiedwealth/vw/internal/app"
	"github.com/verifiedwealth/vw/internal/clients/backend"
	"github.com/verifiedwealth/vw/internal/interfaces"
	"github.com/verifiedwealth/vw/internal/models"
	"github.com/verifiedwealth/vw/internal/session"
	"github.com/verifiedwealth/vw/internal/store"
)

func cmdRegister(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "email address")
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	country := fs.String("country", "", "country")
	state := fs.String("state", "", "state or province")
	city := fs.String("city", "", "city")
	income := fs.Float64("income", 0, "annual income (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	resp, err := a.Backend.Register(ctx, models.RegisterRequest{
		Email:        *email,
		Password:     password,
		FirstName:    *firstName,
		LastName:     *lastName,
		AnnualIncome: *income,
		Country:      *country,
		State:        *state,
		City:         *city,
	})
	if err != nil {
		return err
	}

	gen := a.Store.Begin(store.TopicUser)
	a.Store.ReplaceUser(gen, &resp.User)

	fmt.Printf("Registered and signed in as %s\n", a.Store.User().Email)
	return nil
}

func cmdLogin(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "email address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	resp, err := a.Backend.Login(ctx, models.LoginRequest{Email: *email, Password: password})
	if err != nil {
		if backend.IsUnauthorized(err) {
			return fmt.Errorf("invalid email or password")
		}
		return err
	}

	gen := a.Store.Begin(store.TopicUser)
	a.Store.ReplaceUser(gen, &resp.User)

	fmt.Printf("Signed in as %s\n", a.Store.User().Email)
	return nil
}

func cmdLogout(ctx context.Context, a *app.App) error {
	if err := a.Backend.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

func cmdWhoami(ctx context.Context, a *app.App) error {
	if _, err := requireUser(ctx, a); err != nil {
		return err
	}
	fmt.Print(formatUser(a.Store.User()))

	if token, err := a.Credentials.Token(ctx); err == nil && token != "" {
		if exp, err := session.TokenExpiry(token); err == nil {
			fmt.Printf("**Session valid until:** %s\n", exp.Local().Format("2006-01-02 15:04"))
		}
	}
	return nil
}

func cmdAccounts(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("accounts", flag.ContinueOnError)
	groupBy := fs.String("group-by", "balance", "institution|type|currency|balance")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := requireUser(ctx, a)
	if err != nil {
		return err
	}

	if err := loadAccounts(ctx, a, user.ID); err != nil {
		return err
	}

	groups := a.Dashboard.Groups(a.Store.Accounts(), interfaces.GroupDimension(*groupBy))
	fmt.Print(formatGroups(groups, a.Config.DisplayCurrency))
	return nil
}

func cmdDashboard(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	mode := fs.String("mode", "net", "net|assets")
	chartOut := fs.String("chart", "", "write a breakdown chart PNG to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	valueMode := interfaces.ValueMode(*mode)
	if valueMode != interfaces.ValueModeNet && valueMode != interfaces.ValueModeAssets {
		return fmt.Errorf("mode must be net or assets, got %q", *mode)
	}

	user, err := requireUser(ctx, a)
	if err != nil {
		return err
	}

	if err := loadDashboard(ctx, a, user.ID); err != nil {
		return err
	}

	accounts := a.Store.Accounts()
	netWorth := a.Store.NetWorth()

	segments := a.Dashboard.Segments(accounts, netWorth, valueMode)
	totals := a.Dashboard.Totals(accounts, netWorth)
	var change *interfaces.ChangeStats
	if netWorth != nil {
		change = a.Dashboard.Change(netWorth.History, valueMode)
	}

	fmt.Print(formatDashboard(user, totals, segments, a.Dashboard.LeadingSegment(segments), change,
		a.Dashboard.LastSynced(accounts), valueMode, a.Config.DisplayCurrency))

	if *chartOut != "" {
		png, err := a.Dashboard.RenderBreakdownChart(segments, valueMode)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*chartOut, png, 0644); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
		fmt.Printf("\nChart written to %s\n", *chartOut)
	}

	// Best effort; a failed analytics call never surfaces to the user.
	if err := a.Backend.TrackEvent(ctx, user.ID, models.TrackEventRequest{
		Name:       "dashboard_viewed",
		Properties: map[string]any{"mode": string(valueMode)},
	}); err != nil {
		a.Logger.Debug().Err(err).Msg("Failed to track event")
	}

	return nil
}

func cmdRefresh(ctx context.Context, a *app.App) error {
	user, err := requireUser(ctx, a)
	if err != nil {
		return err
	}

	gen := a.Store.Begin(store.TopicAccounts)
	accounts, err := a.Backend.RefreshAccounts(ctx, user.ID)
	if err != nil {
		return err
	}
	a.Store.ReplaceAccounts(gen, accounts)

	fmt.Printf("Refreshed %d account(s).\n", len(accounts))
	return nil
}

func cmdLink(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("link", flag.ContinueOnError)
	institution := fs.String("institution", "", "institution name")
	name := fs.String("name", "", "account name")
	accountType := fs.String("type", "cash", "cash|investment|credit|loan|crypto|other")
	currency := fs.String("currency", "", "ISO currency code (optional)")
	publicToken := fs.String("public-token", "", "aggregator public token (omit to request a link token)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := requireUser(ctx, a)
	if err != nil {
		return err
	}

	if *publicToken == "" {
		linkToken, err := a.Backend.CreateLinkToken(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Link token: %s\n", linkToken)
		fmt.Println("Complete the aggregator link flow, then re-run with --public-token.")
		return nil
	}

	account, err := a.Backend.LinkAccount(ctx, models.LinkAccountRequest{
		UserID:          user.ID,
		PublicToken:     *publicToken,
		InstitutionName: *institution,
		AccountName:     *name,
		AccountType:     models.AccountType(*accountType),
		Currency:        *currency,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Linked %s (%s)\n", account.InstitutionName, account.AccountName)
	return loadAccounts(ctx, a, user.ID)
}

func cmdRanking(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("ranking", flag.ContinueOnError)
	ageRange := fs.String("age-range", "", "age range, e.g. 25-34")
	location := fs.String("location", "", "location")
	incomeBracket := fs.String("income-bracket", "", "income bracket (optional)")
	share := fs.Bool("share", false, "save the profile to the anonymous peer pool")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := requireUser(ctx, a)
	if err != nil {
		return err
	}

	req := models.RankingRequest{
		AgeRange:      *ageRange,
		Location:      *location,
		IncomeBracket: *incomeBracket,
	}

	gen := a.Store.Begin(store.TopicRanking)
	ranking, err := a.Backend.AssessRanking(ctx, user.ID, req)
	if err != nil {
		return err
	}
	a.Store.ReplaceRanking(gen, ranking)

	fmt.Print(formatRanking(a.Store.Ranking(), a.Config.DisplayCurrency))

	if *share {
		if err := a.Backend.UpsertRankingProfile(ctx, user.ID, req, ranking.UserNetWorth); err != nil {
			return fmt.Errorf("failed to share ranking profile: %w", err)
		}
		fmt.Println("\nProfile shared with the peer pool.")
	}
	return nil
}

func cmdFeed(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("feed", flag.ContinueOnError)
	sort := fs.String("sort", "hot", "hot|new|top")
	topic := fs.String("topic", "", "filter by topic")
	if err := fs.Parse(args); err != nil {
		return err
	}

	gen := a.Store.Begin(store.TopicFeed)
	posts, err := a.Backend.ListFeed(ctx, models.FeedSort(*sort), *topic)
	if err != nil {
		return err
	}
	a.Store.ReplaceFeedPosts(gen, posts)

	fmt.Print(formatFeed(a.Store.FeedPosts()))
	return nil
}

func cmdThread(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("thread", flag.ContinueOnError)
	postID := fs.String("post", "", "post ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *postID == "" {
		return fmt.Errorf("--post is required")
	}

	thread, err := a.Backend.GetThread(ctx, *postID)
	if err != nil {
		if backend.IsNotFound(err) {
			return fmt.Errorf("post %s not found", *postID)
		}
		return err
	}

	fmt.Print(formatThread(thread))
	return nil
}

func cmdPost(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("post", flag.ContinueOnError)
	title := fs.String("title", "", "post title")
	body := fs.String("body", "", "post body")
	topic := fs.String("topic", "general", "post topic")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*title) == "" || strings.TrimSpace(*body) == "" {
		return fmt.Errorf("title and body are required")
	}

	post, err := a.Backend.CreatePost(ctx, models.CreatePostRequest{
		Title: *title,
		Body:  *body,
		Topic: *topic,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Posted %q (%s)\n", post.Title, post.ID)
	return nil
}

func cmdComment(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("comment", flag.ContinueOnError)
	postID := fs.String("post", "", "post ID")
	body := fs.String("body", "", "comment body")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *postID == "" || strings.TrimSpace(*body) == "" {
		return fmt.Errorf("--post and --body are required")
	}

	comment, err := a.Backend.CreateComment(ctx, *postID, models.CreateCommentRequest{Body: *body})
	if err != nil {
		return err
	}

	fmt.Printf("Comment added (%s)\n", comment.ID)
	return nil
}

func cmdVote(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("vote", flag.ContinueOnError)
	postID := fs.String("post", "", "post ID")
	commentID := fs.String("comment", "", "comment ID")
	delta := fs.Int("delta", 1, "1 or -1")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *postID != "":
		if err := a.Backend.VotePost(ctx, *postID, *delta); err != nil {
			return err
		}
	case *commentID != "":
		if err := a.Backend.VoteComment(ctx, *commentID, *delta); err != nil {
			return err
		}
	default:
		return fmt.Errorf("one of --post or --comment is required")
	}

	fmt.Println("Vote recorded.")
	return nil
}

func cmdSubscription(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("subscription", flag.ContinueOnError)
	upgrade := fs.String("upgrade", "", "premium|pro")
	paymentIntent := fs.String("payment-intent", "", "payment intent ID for upgrades")
	downgrade := fs.Bool("downgrade", false, "downgrade to free")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := requireUser(ctx, a)
	if err != nil {
		return err
	}

	gen := a.Store.Begin(store.TopicSubscription)

	var sub *models.Subscription
	switch {
	case *upgrade != "":
		sub, err = a.Backend.UpgradeSubscription(ctx, user.ID, models.UpgradeSubscriptionRequest{
			Tier:            models.SubscriptionTier(*upgrade),
			PaymentIntentID: *paymentIntent,
		})
	case *downgrade:
		sub, err = a.Backend.DowngradeSubscription(ctx, user.ID)
	default:
		sub, err = a.Backend.GetSubscription(ctx, user.ID)
	}
	if err != nil {
		return err
	}
	a.Store.ReplaceSubscription(gen, sub)

	fmt.Print(formatSubscription(a.Store.Subscription()))
	return nil
}

// requireUser fetches the authenticated user and places it in the store.
func requireUser(ctx context.Context, a *app.App) (*models.User, error) {
	user, err := a.Backend.CurrentUser(ctx)
	if err != nil {
		if backend.IsUnauthorized(err) {
			return nil, fmt.Errorf("not signed in, run `vw-cli login`")
		}
		return nil, err
	}

	gen := a.Store.Begin(store.TopicUser)
	a.Store.ReplaceUser(gen, user)
	return user, nil
}

// loadAccounts fetches the account list into the store. A 404 is an
// expected empty state, not an error.
func loadAccounts(ctx context.Context, a *app.App, userID string) error {
	gen := a.Store.Begin(store.TopicAccounts)
	accounts, err := a.Backend.ListAccounts(ctx, userID)
	if err != nil {
		if backend.IsNotFound(err) {
			a.Store.ReplaceAccounts(gen, []models.Account{})
			return nil
		}
		return err
	}
	a.Store.ReplaceAccounts(gen, accounts)
	return nil
}

// loadDashboard fetches accounts and the net worth snapshot. The cached
// snapshot is tried first; when none exists and accounts are linked, a
// fresh calculation is requested. Missing snapshots leave explicit
// absence in the store.
func loadDashboard(ctx context.Context, a *app.App, userID string) error {
	if err := loadAccounts(ctx, a, userID); err != nil {
		return err
	}

	gen := a.Store.Begin(store.TopicNetWorth)

	netWorth, err := a.Backend.CachedNetWorth(ctx, userID)
	if err != nil && !backend.IsNotFound(err) {
		return err
	}

	if netWorth == nil && len(a.Store.Accounts()) > 0 {
		netWorth, err = a.Backend.CalculateNetWorth(ctx, userID)
		if err != nil {
			if !backend.IsNotFound(err) {
				return err
			}
			netWorth = nil
		}
	}

	a.Store.ReplaceNetWorth(gen, netWorth)
	return nil
}

// promptPassword reads a password from stdin, with echo disabled when
// stdin is a terminal. Piped input falls back to a plain line read so
// the CLI stays scriptable.
func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	return readPasswordLine(os.Stdin)
}

// readPasswordLine reads one line from piped input, trimming the trailing
// newline (and carriage return on Windows-piped input).
func readPasswordLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
