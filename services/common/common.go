package common

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"betBookBot/models"
)

func IsAdmin(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	// Use member data from the interaction - no privileged intent needed
	if i.Member == nil {
		return false
	}

	for _, roleID := range i.Member.Roles {
		role, err := s.State.Role(i.GuildID, roleID)
		if err != nil || role == nil {
			roles, err := s.GuildRoles(i.GuildID)
			if err != nil {
				zap.L().Warn("fetching roles from API failed", zap.Error(err))
				continue
			}

			for _, r := range roles {
				if r.ID == roleID {
					role = r
					break
				}
			}

			if role == nil {
				zap.L().Warn("role not found in guild",
					zap.String("role_id", roleID), zap.String("guild_id", i.GuildID))
				continue
			}
		}

		if role.Permissions&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}

	return false
}

// RespondEphemeral sends a plain ephemeral reply to an interaction.
func RespondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// SendError tells the user something went wrong and records the failure.
func SendError(s *discordgo.Session, i *discordgo.InteractionCreate, source string, err error, gdb *gorm.DB) {
	zap.L().Error("interaction failed", zap.String("source", source), zap.Error(err))

	guildID := ""
	if i != nil {
		guildID = i.GuildID
		if localErr := RespondEphemeral(s, i, fmt.Sprintf("An error occured: %v", err)); localErr != nil {
			zap.L().Error("sending error response failed", zap.Error(localErr))
		}
	}
	errLog := models.ErrorLog{
		GuildID: guildID,
		Source:  source,
		Message: fmt.Sprintf("%v", err),
	}
	gdb.Create(&errLog)
}

// FormatOdds renders American odds with the conventional sign: +150, -110.
func FormatOdds(odds int) string {
	if odds > 0 {
		return fmt.Sprintf("+%d", odds)
	}
	return fmt.Sprintf("%d", odds)
}

// GetUsernameFromUser extracts a display name from a discordgo.User object.
func GetUsernameFromUser(user *discordgo.User) string {
	if user == nil {
		return "Unknown User"
	}
	username := user.GlobalName
	if username == "" {
		username = user.Username
	}
	if username == "" {
		return "Unknown User"
	}
	return username
}

// InteractionUser resolves the acting user for both guild and DM interactions.
func InteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// EnsureUser upserts the acting user and refreshes the stored username
// snapshot when it changed.
func EnsureUser(gdb *gorm.DB, i *discordgo.InteractionCreate) (*models.User, error) {
	discordUser := InteractionUser(i)
	if discordUser == nil {
		return nil, fmt.Errorf("interaction has no user")
	}

	var user models.User
	result := gdb.FirstOrCreate(&user, models.User{DiscordID: discordUser.ID, GuildID: i.GuildID})
	if result.Error != nil {
		return nil, result.Error
	}

	username := GetUsernameFromUser(discordUser)
	if user.Username == nil || *user.Username != username {
		user.Username = &username
		gdb.Save(&user)
	}

	return &user, nil
}
