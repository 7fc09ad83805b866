package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Setup
	message.SetString(lang, "welcome", "Welcome to Mario Kart Simulator!")
	message.SetString(lang, "prompt.character", "Choose your driver (%s):")
	message.SetString(lang, "prompt.color", "Choose your kart color (%s):")
	message.SetString(lang, "prompt.engine", "Choose your engine type (Standard / Turbo / Electric):")
	message.SetString(lang, "prompt.marker", "> ")
	message.SetString(lang, "color.invalid", "Invalid color. Please choose %s, %s or %s.")

	// Colors
	message.SetString(lang, "color.red", "red")
	message.SetString(lang, "color.green", "green")
	message.SetString(lang, "color.blue", "blue")

	// Kart
	message.SetString(lang, "kart.description", "Kart color %s, engine %s")

	// Errors
	message.SetString(lang, "error.kart", "Error while building the kart: %s")
	message.SetString(lang, "error.kart.missing", "the kart must have a color and an engine.")
	message.SetString(lang, "error.character", "Unknown driver. Try again with %s.")
	message.SetString(lang, "error.input_closed", "Input closed before the race could start.")

	// Race
	message.SetString(lang, "race.start", "Start! %s takes off (%s)")
	message.SetString(lang, "race.goal", "Goal: reach cell %d")
	message.SetString(lang, "turn.prompt", "Press Enter to play...")
	message.SetString(lang, "turn.roll", "%s rolls the die: %d")
	message.SetString(lang, "turn.slip", "%s slipped! No movement this turn.")
	message.SetString(lang, "turn.move", "--> %s moves from %d to %d")
	message.SetString(lang, "race.won", "%s won the race! Well done")
	message.SetString(lang, "race.summary", "Finished in %d turns (%d slips).")
}
