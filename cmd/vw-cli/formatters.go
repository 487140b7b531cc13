package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/verifiedwealth/vw/internal/common"
	"github.com/verifiedwealth/vw/internal/interfaces"
	"github.com/verifiedwealth/vw/internal/models"
)

func formatUser(user *models.User) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", user.DisplayName()))
	sb.WriteString(fmt.Sprintf("**Email:** %s\n", user.Email))
	sb.WriteString(fmt.Sprintf("**Location:** %s, %s, %s\n", user.City, user.State, user.Country))
	sb.WriteString(fmt.Sprintf("**Tier:** %s\n", user.SubscriptionTier))
	if user.Verified {
		sb.WriteString("**Verified:** yes\n")
	}
	return sb.String()
}

func formatDashboard(
	user *models.User,
	totals interfaces.Totals,
	segments []interfaces.AssetSegment,
	leading *interfaces.AssetSegment,
	change *interfaces.ChangeStats,
	lastSynced time.Time,
	mode interfaces.ValueMode,
	currency string,
) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Dashboard: %s\n\n", user.DisplayName()))

	if mode == interfaces.ValueModeAssets {
		sb.WriteString(fmt.Sprintf("**Total Assets:** %s\n", common.FormatMoney(totals.Assets, currency)))
	} else {
		sb.WriteString(fmt.Sprintf("**Net Worth:** %s\n", common.FormatMoney(totals.Net, currency)))
		sb.WriteString(fmt.Sprintf("**Assets:** %s\n", common.FormatMoney(totals.Assets, currency)))
		sb.WriteString(fmt.Sprintf("**Liabilities:** %s\n", common.FormatMoney(totals.Liabilities, currency)))
	}

	if change != nil {
		sb.WriteString(fmt.Sprintf("**Change:** %s (%s)\n",
			common.FormatSignedMoney(change.Delta, currency),
			common.FormatSignedPct(change.Percent)))
	}

	if !lastSynced.IsZero() {
		sb.WriteString(fmt.Sprintf("**Last synced:** %s\n", lastSynced.Format("2006-01-02 15:04")))
	}

	sb.WriteString("\n## Breakdown\n\n")
	if len(segments) == 0 {
		sb.WriteString("Link an account to unlock a full asset breakdown.\n")
		return sb.String()
	}

	for _, segment := range segments {
		sb.WriteString(fmt.Sprintf("- %s %-12s %s (%d%%)\n",
			segment.Icon, segment.Label, common.FormatMoney(segment.Value, currency), segment.Percent))
	}

	if leading != nil {
		sb.WriteString(fmt.Sprintf("\nLeading holding: %s at %d%%\n", leading.Label, leading.Percent))
	}

	return sb.String()
}

func formatGroups(groups []interfaces.AccountGroup, currency string) string {
	var sb strings.Builder

	sb.WriteString("# Accounts\n\n")
	if len(groups) == 0 {
		sb.WriteString("No linked accounts yet. Run `vw-cli link`.\n")
		return sb.String()
	}

	for _, group := range groups {
		sb.WriteString(fmt.Sprintf("## %s  %s\n\n", group.Title, common.FormatMoney(group.Total, currency)))
		for _, account := range group.Accounts {
			sb.WriteString(fmt.Sprintf("- %s %s (%s): %s\n",
				account.InstitutionName,
				account.AccountName,
				account.AccountType.Meta().Label,
				common.FormatMoney(account.Balance, account.CurrencyOrDefault(currency))))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatRanking(ranking *models.Ranking, currency string) string {
	var sb strings.Builder

	sb.WriteString("# Peer Ranking\n\n")
	sb.WriteString(fmt.Sprintf("**Percentile:** %.0f\n", ranking.Percentile))
	sb.WriteString(fmt.Sprintf("**Peer group:** %s, %s (%d peers)\n", ranking.AgeRange, ranking.Location, ranking.PeerCount))
	if ranking.IncomeBracket != "" {
		sb.WriteString(fmt.Sprintf("**Income bracket:** %s\n", ranking.IncomeBracket))
	}
	sb.WriteString(fmt.Sprintf("**Your net worth:** %s\n", common.FormatMoney(ranking.UserNetWorth, currency)))
	sb.WriteString(fmt.Sprintf("**Peer average:** %s\n", common.FormatMoney(ranking.AverageNetWorth, currency)))

	return sb.String()
}

func formatFeed(posts []models.Post) string {
	var sb strings.Builder

	sb.WriteString("# Community Feed\n\n")
	if len(posts) == 0 {
		sb.WriteString("No posts yet.\n")
		return sb.String()
	}

	for _, post := range posts {
		badge := ""
		if post.Verified {
			badge = " ✓"
		}
		sb.WriteString(fmt.Sprintf("## %s\n", post.Title))
		sb.WriteString(fmt.Sprintf("%s%s · %s · %+d votes · %d comments · %s\n\n",
			post.Alias, badge, post.Topic, post.Votes, post.CommentCount, post.ID))
		sb.WriteString(post.Body)
		sb.WriteString("\n\n")
	}

	return sb.String()
}

func formatThread(thread *models.Thread) string {
	var sb strings.Builder

	post := thread.Post
	badge := ""
	if post.Verified {
		badge = " ✓"
	}
	sb.WriteString(fmt.Sprintf("# %s\n", post.Title))
	sb.WriteString(fmt.Sprintf("%s%s · %s · %+d votes\n\n", post.Alias, badge, post.Topic, post.Votes))
	sb.WriteString(post.Body)
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("## Comments (%d)\n\n", len(thread.Comments)))
	for _, comment := range thread.Comments {
		cb := ""
		if comment.Verified {
			cb = " ✓"
		}
		sb.WriteString(fmt.Sprintf("- **%s%s** (%+d): %s\n", comment.Alias, cb, comment.Votes, comment.Body))
	}

	return sb.String()
}

func formatSubscription(sub *models.Subscription) string {
	var sb strings.Builder

	sb.WriteString("# Subscription\n\n")
	sb.WriteString(fmt.Sprintf("**Tier:** %s\n", sub.Tier))
	sb.WriteString(fmt.Sprintf("**Status:** %s\n", sub.Status))
	sb.WriteString(fmt.Sprintf("**Started:** %s\n", sub.StartedAt.Format("2006-01-02")))
	if sub.ExpiresAt != nil {
		sb.WriteString(fmt.Sprintf("**Expires:** %s\n", sub.ExpiresAt.Format("2006-01-02")))
	}

	return sb.String()
}
