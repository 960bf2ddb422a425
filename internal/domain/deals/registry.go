package deals

// Schedule source keys; config maps each to an upstream URL.
const (
	SourceRays      = "rays"
	SourceMagic     = "magic"
	SourceLightning = "lightning"
)

// BuiltinRegistry returns the configured teams and their deal lists. The
// registry is static; callers must not mutate the returned configs.
func BuiltinRegistry() []TeamConfig {
	return []TeamConfig{
		{
			Team:         "Tampa Bay Rays",
			Abbreviation: "TB",
			Source:       SourceRays,
			Deals: []Deal{
				{
					Name:         "Tijuana Flats Taco & Chips",
					Condition:    "10+ strikeouts during a regular season home game",
					Instructions: "Bring qualifying ticket or voucher to Kane's Showroom within 5 days. See kanesstrikeout.com.",
					Rule: Rule{
						Kind:     KindStatThreshold,
						Category: "pitching",
						Stat:     "strikeouts",
						MinValue: 10,
						DayLimit: 5,
						HomeOnly: true,
					},
				},
				{
					Name:         "Colony Grill Hot Oil Pizza",
					Condition:    "Rays hit a home run",
					Instructions: "Show ticket in MLB Ballpark app at Colony Grill within 7 days.",
					Rule:         Rule{Kind: KindUnimplemented},
				},
				{
					Name:         "Culver's Cheese Curds",
					Condition:    "Rays score a run in the 3rd inning",
					Instructions: "Use promo code CURDRUN online or in-app the day after the game.",
					Rule:         Rule{Kind: KindUnimplemented},
				},
				{
					Name:         "Papa John's 50% Off",
					Condition:    "Rays score 6+ runs",
					Instructions: "Order online with code RAYS6 the day after the game.",
					Rule: Rule{
						Kind:     KindScoringThreshold,
						MinScore: 6,
						DayLimit: 7,
					},
				},
			},
		},
		{
			Team:         "Orlando Magic",
			Abbreviation: "ORL",
			Source:       SourceMagic,
			Deals: []Deal{
				{
					Name:         "Papa John's 50% Off",
					Condition:    "Magic win",
					Instructions: "Order online with code MAGICWIN the day after a win.",
					Rule: Rule{
						Kind:     KindWin,
						DayLimit: 7,
					},
				},
				{
					Name:         "Checkers/Rally's Free Large Fry",
					Condition:    "Magic score 110+ points",
					Instructions: "Text MAGIC to 88001 after qualifying game.",
					Rule: Rule{
						Kind:     KindImmediateScoring,
						MinScore: 110,
						DayLimit: 7,
					},
				},
				{
					Name:         "Chick-fil-A Free Sandwich",
					Condition:    "Opponent misses 2 consecutive free throws in 4th quarter",
					Instructions: "Redeem in Chick-fil-A app while at the arena.",
					Rule:         Rule{Kind: KindUnimplemented},
				},
			},
		},
		{
			Team:         "Tampa Bay Lightning",
			Abbreviation: "TB",
			Source:       SourceLightning,
			Deals: []Deal{
				{
					Name:         "Wendy's Free Double Stack",
					Condition:    "Lightning shut out opponent OR score 4+ goals",
					Instructions: "Redeem at Wendy's within 24 hours after game.",
					// Shutout detection needs play-by-play data; only the
					// 4+ goals half of the condition is evaluated.
					Rule: Rule{
						Kind:     KindImmediateScoring,
						MinScore: 4,
						DayLimit: 1,
					},
				},
				{
					Name:         "Papa John's 50% Off",
					Condition:    "Lightning win",
					Instructions: "Order online with code BOLTSW the day after a win.",
					Rule: Rule{
						Kind:     KindWin,
						DayLimit: 7,
					},
				},
				{
					Name:         "Culver's Cheese Curds",
					Condition:    "Lightning score a goal in 3rd period (home games)",
					Instructions: "Use code CURDS4BOLTS online the day after home game.",
					Rule:         Rule{Kind: KindUnimplemented},
				},
			},
		},
	}
}
