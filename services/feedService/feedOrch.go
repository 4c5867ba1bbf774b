package feedService

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betBookBot/models"
	"betBookBot/services/common"
	"betBookBot/services/messageService"
)

const feedSize = 10

// feedItem is one wager flattened for display, newest first.
type feedItem struct {
	ItemType  string
	ItemID    uint
	Username  *string
	Line      string
	Result    models.Result
	CreatedAt time.Time
}

// ShowFeed handles /feed: the guild's most recent wagers with reaction and
// comment counts.
func ShowFeed(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB) {
	items, err := loadRecentWagers(gdb, i.GuildID)
	if err != nil {
		common.SendError(s, i, "feedService.ShowFeed", err, gdb)
		return
	}

	if len(items) == 0 {
		if err := common.RespondEphemeral(s, i, "No wagers logged yet. Start with /log-bet or /log-parlay."); err != nil {
			common.SendError(s, i, "feedService.ShowFeed", err, gdb)
		}
		return
	}

	var description strings.Builder
	for _, item := range items {
		owner := "Unknown User"
		if item.Username != nil && *item.Username != "" {
			owner = *item.Username
		}

		reactions, comments, err := itemCounts(gdb, i.GuildID, item.ItemType, item.ItemID)
		if err != nil {
			common.SendError(s, i, "feedService.ShowFeed", err, gdb)
			return
		}
		description.WriteString(fmt.Sprintf("%s **%s** — %s\n", messageService.ResultBadge(item.Result), owner, item.Line))
		description.WriteString(fmt.Sprintf("  %s • 💬 %d\n", reactions, comments))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📣 Recent Wagers",
		Description: description.String(),
		Color:       0x3498db,
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		common.SendError(s, i, "feedService.ShowFeed", err, gdb)
	}
}

func loadRecentWagers(gdb *gorm.DB, guildID string) ([]feedItem, error) {
	var bets []models.StraightBet
	if err := gdb.Where("guild_id = ?", guildID).
		Order("created_at desc").Limit(feedSize).Find(&bets).Error; err != nil {
		return nil, err
	}

	var parlays []models.Parlay
	if err := gdb.Preload("Legs").Where("guild_id = ?", guildID).
		Order("created_at desc").Limit(feedSize).Find(&parlays).Error; err != nil {
		return nil, err
	}

	var items []feedItem
	for _, bet := range bets {
		items = append(items, feedItem{
			ItemType:  models.FeedItemBet,
			ItemID:    bet.ID,
			Username:  bet.Username,
			Line:      fmt.Sprintf("%s %s (%s) — %s", bet.Team, bet.BetType, common.FormatOdds(bet.Odds), bet.Game),
			Result:    bet.Result,
			CreatedAt: bet.CreatedAt,
		})
	}
	for _, parlay := range parlays {
		items = append(items, feedItem{
			ItemType:  models.FeedItemParlay,
			ItemID:    parlay.ID,
			Username:  parlay.Username,
			Line:      fmt.Sprintf("%d-leg parlay (%s)", len(parlay.Legs), common.FormatOdds(parlay.CombinedOdds)),
			Result:    parlay.Result,
			CreatedAt: parlay.CreatedAt,
		})
	}

	sort.SliceStable(items, func(a, b int) bool { return items[a].CreatedAt.After(items[b].CreatedAt) })
	if len(items) > feedSize {
		items = items[:feedSize]
	}
	return items, nil
}

func itemCounts(gdb *gorm.DB, guildID, itemType string, itemID uint) (string, int64, error) {
	var reactions []models.FeedReaction
	if err := gdb.Where("guild_id = ? AND item_type = ? AND item_id = ?", guildID, itemType, itemID).
		Find(&reactions).Error; err != nil {
		return "", 0, err
	}

	counts := map[string]int{}
	for _, r := range reactions {
		counts[r.ReactionType]++
	}

	var comments int64
	if err := gdb.Model(&models.FeedComment{}).
		Where("guild_id = ? AND item_type = ? AND item_id = ?", guildID, itemType, itemID).
		Count(&comments).Error; err != nil {
		return "", 0, err
	}

	return fmt.Sprintf("🏃 %d • 👍 %d • 👎 %d", counts["tail"], counts["up"], counts["down"]), comments, nil
}
