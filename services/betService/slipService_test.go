package betService

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"betBookBot/models"
)

func assertEqual(t *testing.T, expected, actual interface{}, msg string) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func slipLeg(team string, odds int) models.ParlayLeg {
	return models.ParlayLeg{Sport: "NFL", Game: "Jets @ Bills", Team: team, BetType: "ML", Odds: odds}
}

func TestSlipSessionLifecycle(t *testing.T) {
	sessionID := "session-1"
	StoreSlip(sessionID, &SlipSession{UserID: "u1", GuildID: "g1"})

	session, exists := GetSlip(sessionID)
	assertEqual(t, true, exists, "stored session found")
	assertEqual(t, "u1", session.UserID, "owner kept")

	session.Legs = append(session.Legs, slipLeg("Bills", -110))
	StoreSlip(sessionID, session)

	session, _ = GetSlip(sessionID)
	assertEqual(t, 1, len(session.Legs), "leg appended")

	CleanupSlip(sessionID)
	_, exists = GetSlip(sessionID)
	assertEqual(t, false, exists, "session removed")
}

func TestLegOdds(t *testing.T) {
	legs := []models.ParlayLeg{slipLeg("Bills", -110), slipLeg("Chiefs", 150)}
	odds := LegOdds(legs)
	assertEqual(t, 2, len(odds), "one entry per leg")
	assertEqual(t, -110, odds[0], "leg order kept")
	assertEqual(t, 150, odds[1], "leg order kept")
}

func submitButton(t *testing.T, components []discordgo.MessageComponent) discordgo.Button {
	t.Helper()
	for _, row := range components {
		actionsRow, ok := row.(discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			button, ok := component.(discordgo.Button)
			if ok && strings.HasPrefix(button.CustomID, "slip_submit_") {
				return button
			}
		}
	}
	t.Fatal("submit button not found")
	return discordgo.Button{}
}

func TestBuildSlipPreview_SubmitGating(t *testing.T) {
	tests := []struct {
		name     string
		legs     []models.ParlayLeg
		disabled bool
	}{
		{"Empty slip", nil, true},
		{"One leg", []models.ParlayLeg{slipLeg("Bills", -110)}, true},
		{"Two legs", []models.ParlayLeg{slipLeg("Bills", -110), slipLeg("Chiefs", 150)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, components := BuildSlipPreview("s", tt.legs)
			assertEqual(t, tt.disabled, submitButton(t, components).Disabled, tt.name)
		})
	}
}

func TestBuildSlipPreview_ShowsLiveOdds(t *testing.T) {
	legs := []models.ParlayLeg{slipLeg("Bills", -110), slipLeg("Chiefs", 150)}
	embed, _ := BuildSlipPreview("s", legs)

	// (1 + 100/110) * 2.5 = 4.77x, +377 American
	if !strings.Contains(embed.Description, "4.77x") {
		t.Errorf("expected combined decimal odds in preview, got %q", embed.Description)
	}
	if !strings.Contains(embed.Description, "+377") {
		t.Errorf("expected combined American odds in preview, got %q", embed.Description)
	}
}
