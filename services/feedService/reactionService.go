package feedService

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betBookBot/models"
	"betBookBot/services/common"
)

var reactionLabels = map[string]string{
	"tail": "🏃 Tailing",
	"up":   "👍 Liked",
	"down": "👎 Faded",
}

// HandleReactionButton toggles the caller's reaction on a wager. Custom ID
// format: react_{bet|parlay}_{id}_{tail|up|down}. One reaction per user per
// item; pressing the same button again removes it, a different one replaces it.
func HandleReactionButton(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB) {
	itemType, itemID, reaction, err := parseReactionID(i.MessageComponentData().CustomID)
	if err != nil {
		common.SendError(s, i, "feedService.HandleReactionButton", err, gdb)
		return
	}

	user := common.InteractionUser(i)
	if user == nil {
		common.SendError(s, i, "feedService.HandleReactionButton", errors.New("no user on interaction"), gdb)
		return
	}

	var existing models.FeedReaction
	result := gdb.Where("guild_id = ? AND item_type = ? AND item_id = ? AND user_id = ?",
		i.GuildID, itemType, itemID, user.ID).First(&existing)

	var confirmation string
	switch {
	case result.Error == nil && existing.ReactionType == reaction:
		if err := gdb.Delete(&existing).Error; err != nil {
			common.SendError(s, i, "feedService.HandleReactionButton", err, gdb)
			return
		}
		confirmation = "Reaction removed."
	case result.Error == nil:
		existing.ReactionType = reaction
		if err := gdb.Save(&existing).Error; err != nil {
			common.SendError(s, i, "feedService.HandleReactionButton", err, gdb)
			return
		}
		confirmation = reactionLabels[reaction] + "."
	case errors.Is(result.Error, gorm.ErrRecordNotFound):
		created := models.FeedReaction{
			GuildID:      i.GuildID,
			ItemType:     itemType,
			ItemID:       itemID,
			UserID:       user.ID,
			ReactionType: reaction,
		}
		if err := gdb.Create(&created).Error; err != nil {
			common.SendError(s, i, "feedService.HandleReactionButton", err, gdb)
			return
		}
		confirmation = reactionLabels[reaction] + "."
	default:
		common.SendError(s, i, "feedService.HandleReactionButton", result.Error, gdb)
		return
	}

	if err := common.RespondEphemeral(s, i, confirmation); err != nil {
		common.SendError(s, i, "feedService.HandleReactionButton", err, gdb)
	}
}

// HandleCommentButton opens the comment modal for a wager. Custom ID format:
// comment_{bet|parlay}_{id}.
func HandleCommentButton(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB) {
	suffix := strings.TrimPrefix(i.MessageComponentData().CustomID, "comment_")

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: "comment_modal_" + suffix,
			Title:    "Add a comment",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:  "comment_body",
							Label:     "Comment",
							Style:     discordgo.TextInputParagraph,
							Required:  true,
							MaxLength: 500,
						},
					},
				},
			},
		},
	})
	if err != nil {
		common.SendError(s, i, "feedService.HandleCommentButton", err, gdb)
	}
}

// HandleCommentModal stores a submitted comment. Custom ID format:
// comment_modal_{bet|parlay}_{id}.
func HandleCommentModal(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB) {
	suffix := strings.TrimPrefix(i.ModalSubmitData().CustomID, "comment_modal_")
	itemType, itemID, err := parseItemRef(suffix)
	if err != nil {
		common.SendError(s, i, "feedService.HandleCommentModal", err, gdb)
		return
	}

	user := common.InteractionUser(i)
	if user == nil {
		common.SendError(s, i, "feedService.HandleCommentModal", errors.New("no user on interaction"), gdb)
		return
	}

	body := strings.TrimSpace(modalValue(i, "comment_body"))
	if body == "" {
		if err := common.RespondEphemeral(s, i, "Comment cannot be empty."); err != nil {
			common.SendError(s, i, "feedService.HandleCommentModal", err, gdb)
		}
		return
	}

	username := common.GetUsernameFromUser(user)
	comment := models.FeedComment{
		GuildID:  i.GuildID,
		ItemType: itemType,
		ItemID:   itemID,
		UserID:   user.ID,
		Username: &username,
		Body:     body,
	}
	if err := gdb.Create(&comment).Error; err != nil {
		common.SendError(s, i, "feedService.HandleCommentModal", err, gdb)
		return
	}

	if err := common.RespondEphemeral(s, i, "Comment added."); err != nil {
		common.SendError(s, i, "feedService.HandleCommentModal", err, gdb)
	}
}

func parseReactionID(customID string) (itemType string, itemID uint, reaction string, err error) {
	parts := strings.Split(strings.TrimPrefix(customID, "react_"), "_")
	if len(parts) != 3 {
		return "", 0, "", fmt.Errorf("malformed reaction id: %s", customID)
	}
	itemType, reaction = parts[0], parts[2]
	if itemType != models.FeedItemBet && itemType != models.FeedItemParlay {
		return "", 0, "", fmt.Errorf("unknown item type: %s", itemType)
	}
	if _, ok := reactionLabels[reaction]; !ok {
		return "", 0, "", fmt.Errorf("unknown reaction: %s", reaction)
	}
	id, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return "", 0, "", fmt.Errorf("malformed item id: %s", parts[1])
	}
	return itemType, uint(id), reaction, nil
}

func parseItemRef(ref string) (string, uint, error) {
	parts := strings.SplitN(ref, "_", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("malformed item reference: %s", ref)
	}
	if parts[0] != models.FeedItemBet && parts[0] != models.FeedItemParlay {
		return "", 0, fmt.Errorf("unknown item type: %s", parts[0])
	}
	id, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("malformed item id: %s", parts[1])
	}
	return parts[0], uint(id), nil
}

func modalValue(i *discordgo.InteractionCreate, customID string) string {
	for _, row := range i.ModalSubmitData().Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}
