package models

// Tag represents a user-defined label games can be grouped by (e.g., "party", "cooperative").
type Tag struct {
	ID    int64  `json:"id"`
	Label string `json:"label,omitempty"`
}

// Categories is the seed list offered on first run.
var Categories = []string{
	"abstract",
	"action drafting",
	"area control",
	"bluffing",
	"card drafting",
	"cooperative",
	"deckbuilding",
	"dexterity",
	"engine building",
	"eurogame",
	"legacy",
	"miniature",
	"party",
	"roleplaying",
	"roll and write",
	"storytelling",
	"tile placement",
	"trading card",
	"trick taking",
	"wargame",
	"worker placement",
}
