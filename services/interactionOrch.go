package services

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betBookBot/services/betService"
	"betBookBot/services/common"
	"betBookBot/services/feedService"
)

// HandleComponentInteraction routes button presses by custom ID prefix.
func HandleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB) {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, "slip_addleg_"):
		if err := betService.HandleSlipAddLeg(s, i, gdb, customID); err != nil {
			common.SendError(s, i, "services.HandleComponentInteraction", err, gdb)
		}
	case strings.HasPrefix(customID, "slip_submit_"):
		if err := betService.HandleSlipSubmit(s, i, gdb, customID); err != nil {
			common.SendError(s, i, "services.HandleComponentInteraction", err, gdb)
		}
	case strings.HasPrefix(customID, "slip_cancel_"):
		if err := betService.HandleSlipCancel(s, i, customID); err != nil {
			common.SendError(s, i, "services.HandleComponentInteraction", err, gdb)
		}
	case strings.HasPrefix(customID, "grade_"):
		HandleGradeButton(s, i, gdb)
	case strings.HasPrefix(customID, "react_"):
		feedService.HandleReactionButton(s, i, gdb)
	case strings.HasPrefix(customID, "comment_"):
		feedService.HandleCommentButton(s, i, gdb)
	}
}

// HandleModalSubmit routes modal submissions by custom ID prefix.
func HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB) {
	customID := i.ModalSubmitData().CustomID

	switch {
	case strings.HasPrefix(customID, "slip_leg_"):
		if err := betService.HandleSlipLegModal(s, i, gdb, customID); err != nil {
			common.SendError(s, i, "services.HandleModalSubmit", err, gdb)
		}
	case strings.HasPrefix(customID, "slip_stake_"):
		if err := betService.HandleSlipStakeModal(s, i, gdb, customID); err != nil {
			common.SendError(s, i, "services.HandleModalSubmit", err, gdb)
		}
	case strings.HasPrefix(customID, "comment_modal_"):
		feedService.HandleCommentModal(s, i, gdb)
	}
}
