package service

import (
	"fmt"
	"strings"

	"github.com/VinodVen/growthai/internal/model"
)

const SystemPrompt = "You are a marketing assistant for small businesses such as restaurants, cafes and salons. " +
	"Write warm, concise promotional messages addressed to a single customer."

const promotionMaxTokens = 300

// BuildPrompt unknown types fall back to the weekend promotion.
func BuildPrompt(campaignType model.CampaignType, firstName, businessName string) string {
	var offer string
	switch campaignType {
	case model.CampaignBirthday:
		offer = fmt.Sprintf("Create a birthday promotion for %s offering 30%% discount.", firstName)
	case model.CampaignLoyalty:
		offer = fmt.Sprintf("Create a loyalty reward promotion for %s.", firstName)
	default:
		offer = fmt.Sprintf("Create a weekend promotion for %s offering 20%% discount.", firstName)
	}
	return fmt.Sprintf("%s The offer is from %s. Keep it under 80 words.", offer, businessName)
}

// Sanitize strips markdown headings and bold markers the model likes to add.
// Headings go first so "*###*" leaves nothing behind.
func Sanitize(raw string) string {
	cleaned := strings.ReplaceAll(raw, "###", "")
	cleaned = strings.ReplaceAll(cleaned, "**", "")
	return strings.TrimSpace(cleaned)
}
