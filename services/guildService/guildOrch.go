package guildService

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betBookBot/models"
	"betBookBot/services/common"
)

func GetGuildInfo(s *discordgo.Session, gdb *gorm.DB, guildID string, channelID string) (*models.Guild, error) {
	var guild models.Guild
	guildResult := gdb.Where("guild_id = ?", guildID).First(&guild)

	if guildResult.RowsAffected == 0 {
		guildInfo, err := s.Guild(guildID)
		if err != nil {
			return nil, err
		}
		newGuild := &models.Guild{GuildID: guildID, BetChannelID: channelID, GuildName: guildInfo.Name, MinDecisions: 3}
		newGuildResult := gdb.Create(newGuild)
		if newGuildResult.Error != nil {
			return nil, newGuildResult.Error
		}
		guild = *newGuild
	} else {
		checkGuild, err := s.Guild(guildID)
		if err != nil {
			common.SendError(s, nil, "guildService.GetGuildInfo", err, gdb)
		} else if guild.GuildName != checkGuild.Name {
			guild.GuildName = checkGuild.Name
			gdb.Save(&guild)
		}
	}

	return &guild, nil
}

func SetBettingChannel(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB) {
	if !common.IsAdmin(s, i) {
		if err := common.RespondEphemeral(s, i, "You are not authorized to use this command."); err != nil {
			common.SendError(s, i, "guildService.SetBettingChannel", err, gdb)
		}
		return
	}

	guild, err := GetGuildInfo(s, gdb, i.GuildID, i.ChannelID)
	if err != nil {
		common.SendError(s, i, "guildService.SetBettingChannel", err, gdb)
		return
	}

	guild.BetChannelID = i.ChannelID
	gdb.Save(guild)

	if err := common.RespondEphemeral(s, i, "This channel now receives logged bets and leaderboard posts."); err != nil {
		common.SendError(s, i, "guildService.SetBettingChannel", err, gdb)
	}
}

func SetMinDecisions(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB) {
	if !common.IsAdmin(s, i) {
		if err := common.RespondEphemeral(s, i, "You are not authorized to use this command."); err != nil {
			common.SendError(s, i, "guildService.SetMinDecisions", err, gdb)
		}
		return
	}

	options := i.ApplicationCommandData().Options
	minDecisions := int(options[0].IntValue())
	if minDecisions < 1 {
		if err := common.RespondEphemeral(s, i, "Minimum decisions must be at least 1."); err != nil {
			common.SendError(s, i, "guildService.SetMinDecisions", err, gdb)
		}
		return
	}

	guild, err := GetGuildInfo(s, gdb, i.GuildID, i.ChannelID)
	if err != nil {
		common.SendError(s, i, "guildService.SetMinDecisions", err, gdb)
		return
	}

	guild.MinDecisions = minDecisions
	gdb.Save(guild)

	msg := fmt.Sprintf("Users now need %d graded decisions to appear on the leaderboard.", minDecisions)
	if err := common.RespondEphemeral(s, i, msg); err != nil {
		common.SendError(s, i, "guildService.SetMinDecisions", err, gdb)
	}
}
