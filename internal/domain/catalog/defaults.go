package catalog

// Default returns the built-in catalog. Deployments overlay their own
// entries via a YAML file; see LoadFile.
func Default() *Catalog {
	c := New()
	c.Merge(defaultFile())
	return c
}

func defaultFile() File {
	return File{
		Stats: map[string]NumericDescriptor{
			// Measures
			"beard": {Min: 1, Max: 30, LevelLow: 5, LevelHigh: 15, Label: "beard", Unit: "cm", Phrase: PhraseIs},
			"hair":  {Min: 10, Max: 100, LevelLow: 20, LevelHigh: 60, Label: "hair", Unit: "cm", Phrase: PhraseIs},

			// Affection
			"mila":   {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "Mila loves you", Unit: "%", Phrase: PhrasePlain, Group: "love"},
			"ivy":    {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "Ivy loves you", Unit: "%", Phrase: PhrasePlain, Group: "love"},
			"theo":   {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "Theo loves you", Unit: "%", Phrase: PhrasePlain, Group: "love"},
			"fluffy": {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "Fluffy loves you", Unit: "%", Phrase: PhrasePlain, Group: "love"},

			"mila_hate": {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "Mila hates you", Unit: "%", Phrase: PhrasePlain, Group: "hate"},
			"ivy_hate":  {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "Ivy hates you", Unit: "%", Phrase: PhrasePlain, Group: "hate"},

			// Personality
			"daddy":    {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "daddy level", Unit: "%", Phrase: PhraseIs},
			"pirate":   {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "pirate power", Unit: "%", Phrase: PhraseIs},
			"nerd":     {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "nerd level", Unit: "%", Phrase: PhraseIs},
			"goodgirl": {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "good girl level", Unit: "%", Phrase: PhraseIs},
			"princess": {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "princess energy", Unit: "%", Phrase: PhraseIs},
			"fox":      {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "fox level", Unit: "%", Phrase: PhraseIs},

			// Gym
			"lift":     {Min: 0, Max: 500, LevelLow: 100, LevelHigh: 300, Label: "lifting power", Unit: "kg", Phrase: PhraseAt},
			"run":      {Min: 0, Max: 42, LevelLow: 10, LevelHigh: 25, Label: "running distance", Unit: "km", Phrase: PhraseAt},
			"deadlift": {Min: 0, Max: 500, LevelLow: 100, LevelHigh: 300, Label: "deadlift weight", Unit: "kg", Phrase: PhraseAt},

			// Holdings
			"gold": {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "gold pouch", Unit: "coins", UnitSpace: true, Phrase: PhraseHolds},

			// Actions
			"squeeze": {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "squeeze strength", Unit: "%", UnitSpace: true, Phrase: PhraseIs},
			"push":    {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "push power", Unit: "kg", UnitSpace: true, Phrase: PhraseIs},
			"jump":    {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "jump height", Unit: "cm", UnitSpace: true, Phrase: PhraseIs},

			// Emotions
			"happiness": {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "happiness", Unit: "%", UnitSpace: true, Phrase: PhraseIs},
			"anger":     {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "anger level", Unit: "%", Phrase: PhraseIs},
			"calmness":  {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "calmness", Unit: "%", UnitSpace: true, Phrase: PhraseIs},
			"sleep":     {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "sleep needed", Unit: "%", Phrase: PhraseIs},

			// Skills
			"precision": {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "precision", Unit: "%", Phrase: PhraseIs, Group: "skills"},
			"accuracy":  {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "accuracy", Unit: "%", Phrase: PhraseIs, Group: "skills"},
			"focus":     {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "focus level", Unit: "%", Phrase: PhraseIs, Group: "skills"},
			"flirting":  {Min: 0, Max: 100, LevelLow: 30, LevelHigh: 70, Label: "flirting skill", Unit: "%", Phrase: PhraseIs, Group: "skills"},
			"luck":      {Min: 1, Max: 10, LevelLow: 3, LevelHigh: 7, Label: "luck roll", Unit: "/10", Phrase: PhraseIs, Group: "skills"},
		},
		Lists: map[string]ListDescriptor{
			"vibe": {
				Label: "vibe",
				Choices: []string{
					"cozy campfire energy",
					"slightly feral but friendly",
					"main character energy",
					"quietly plotting something",
					"running on snacks and spite",
					"soft and sleepy",
					"chaotic good",
					"absolutely legendary",
					"gremlin hours",
					"sunbeam in human form",
				},
			},
		},
		Interactions: map[string]string{
			"bonk":      "bonked",
			"boop":      "booped",
			"fliptable": "flipped a table at",
			"highfive":  "high-fived",
			"hug":       "hugged",
			"kiss":      "kissed",
			"love":      "sent love to",
			"pat":       "patted",
			"slap":      "slapped",
			"spank":     "spanked",
			"throwshoe": "threw a shoe at",
		},
		Jokes: map[string]JokeSet{
			"beard": {
				Low:    []string{"Patchy but proud!", "Still in early access version."},
				Medium: []string{"Solid beard game!", "Respectable chin forest."},
				High:   []string{"Wizard mode unlocked!", "That beard tells stories of adventure."},
			},
			"hair": {
				Low:    []string{"Short and snappy!", "Buzzcut of confidence."},
				Medium: []string{"Perfect flow length!", "Balanced and beautiful."},
				High:   []string{"Rapunzel could never!", "That mane is a national treasure."},
			},
			"mila": {
				Low:    []string{"Mila glanced and walked away.", "She tolerates your existence."},
				Medium: []string{"Mila approves for now.", "She blinked slowly. That is cat love."},
				High:   []string{"Mila purrs loudly in your honor!", "Mila adores you."},
			},
			"ivy": {
				Low:    []string{"Ivy is pretending you do not exist.", "Denied cuddle privileges."},
				Medium: []string{"Ivy tolerates you.", "She let you exist in her space."},
				High:   []string{"Ivy loves you unconditionally!", "You are the chosen lap human!"},
			},
			"daddy": {
				Low:    []string{"Not very daddy today.", "Maybe work on your confidence."},
				Medium: []string{"You are somewhat daddy.", "The vibes are respectable."},
				High:   []string{"Certified DILF energy.", "The room goes quiet when you enter."},
			},
			"pirate": {
				Low:    []string{"You dropped your compass.", "Your ship is still in dock."},
				Medium: []string{"You are swashbuckling nicely.", "The crew respects you."},
				High:   []string{"Captain material!", "The seas whisper your name!"},
			},
			"nerd": {
				Low:    []string{"Barely read one wiki today.", "Low nerd output."},
				Medium: []string{"Decent nerd energy.", "Glasses adjusted successfully."},
				High:   []string{"Big brain mode activated!", "You just debugged reality itself!"},
			},
			"goodgirl": {
				Low:    []string{"You might need a few more pats to reach your full potential.", "Trying, but could be better behaved today."},
				Medium: []string{"Doing well, you deserve a treat.", "A proper good girl performance today."},
				High:   []string{"Excellent! Gold star for best behavior.", "You have achieved maximum good girl mode."},
			},
			"gold": {
				Low:    []string{"Your pouch jingles modestly.", "Not much shine in there today."},
				Medium: []string{"Your pouch feels a bit heavier.", "Steady earnings for a good day."},
				High:   []string{"Your pouch overflows with coins!", "You could buy the tavern today!"},
			},
			"happiness": {
				Low:    []string{"You might need a little more sunshine today!", "Try smiling, it helps."},
				Medium: []string{"Not bad, a bit of a smile would help.", "You're halfway there, keep smiling."},
				High:   []string{"You're glowing with happiness today!", "You're the embodiment of joy right now!"},
			},
			"anger": {
				Low:    []string{"Calm as a monk.", "You are chill today."},
				Medium: []string{"Mildly irritated.", "Someone cut you off in traffic."},
				High:   []string{"Rage incarnate!", "Your keyboard fears for its life."},
			},
			"bonk": {
				Low:    []string{"That was more of a gentle tap than a bonk.", "You missed completely. Try again."},
				Medium: []string{"A solid bonk, respectably executed.", "You gave a good bonk. Not too hard, not too soft."},
				High:   []string{"That bonk echoed through the land!", "Maximum bonk achieved! Someone's going to feel that."},
			},
			"boop": {
				Low:    []string{"A small, hesitant boop.", "Barely a touch. Shy booper detected."},
				Medium: []string{"Boop executed successfully.", "That was a decent boop. Nose contact confirmed."},
				High:   []string{"A powerful boop! You've mastered the art.", "The world trembles before your booping power."},
			},
			"hug": {
				Low:    []string{"A quick and slightly awkward hug.", "You went for a hug, but it turned into a polite pat."},
				Medium: []string{"A warm, friendly hug.", "That was a solid hug, wholesome and comfortable."},
				High:   []string{"A legendary hug that could cure sadness.", "Pure warmth and affection radiate from that hug."},
			},
			"slap": {
				Low:    []string{"That was more of a light tap.", "You hesitated. Weak slap detected."},
				Medium: []string{"A solid slap. Just the right amount of sting.", "You delivered a respectable slap."},
				High:   []string{"A thunderous slap heard across chat.", "That slap will be remembered forever."},
			},
			"pat": {
				Low:    []string{"You missed and patted the air.", "That pat was a bit weak, try again."},
				Medium: []string{"A gentle and comforting pat.", "Perfect pat form. Well done."},
				High:   []string{"An excellent pat, pure serotonin.", "Your pats bring joy to all."},
			},
			"throwshoe": {
				Low:    []string{"You threw a slipper instead of a shoe.", "Missed completely. Shoe is lost forever."},
				Medium: []string{"Direct hit! That was a clean throw.", "You lobbed the shoe with respectable accuracy."},
				High:   []string{"Bullseye! The shoe hit perfectly.", "That throw could win the Olympics."},
			},
			// Group fallbacks
			"love_group": {
				Low:    []string{"barely noticed you today.", "is ignoring you again."},
				Medium: []string{"seems to like you okay.", "shared a little love."},
				High:   []string{"is obsessed with you today.", "can't stop thinking about you."},
			},
			"hate_group": {
				Low:    []string{"barely annoyed with you.", "shrugged it off."},
				Medium: []string{"gave you a dirty look.", "is not impressed."},
				High:   []string{"absolutely furious with you.", "can't stand you today."},
			},
			"skills_group": {
				Low:    []string{"Your aim is terrible today.", "Not very focused at all."},
				Medium: []string{"You're doing alright, could be sharper.", "Pretty decent performance."},
				High:   []string{"Perfect form and focus.", "You could teach others today."},
			},
		},
		Specials: map[string]map[string]string{
			"username1": {
				"hair": "@username1, your hair is the longest ever!",
			},
			"username2": {
				"mila": "username2, Mila loves your face!",
			},
		},
		Overrides: []Override{
			{
				Requester: "username1",
				Target:    "username2",
				Command:   "hug",
				Message:   "@username1 hugged @username2 with infinite power! Some things are just meant to be.",
			},
		},
		Aspects: map[string]Aspect{
			"daddy":    {Title: "Daddy of the Day", Trigger: 100},
			"pirate":   {Title: "Pirate of the Day", Trigger: 100},
			"goodgirl": {Title: "Good Girl of the Day", Trigger: 100},
			"luck":     {Title: "Lucky One of the Day", Trigger: 10},
			"vibe":     {Title: "Legend of the Day", Choice: "legendary"},
		},
	}
}
