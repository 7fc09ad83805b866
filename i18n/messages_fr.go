package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.French

	// Setup
	message.SetString(lang, "welcome", "Bienvenue dans Mario Kart Simulator !")
	message.SetString(lang, "prompt.character", "Choisissez votre pilote (%s) :")
	message.SetString(lang, "prompt.color", "Choisissez la couleur de votre kart (%s) :")
	message.SetString(lang, "prompt.engine", "Choisissez le type de moteur (Standard / Turbo / Électrique) :")
	message.SetString(lang, "prompt.marker", "> ")
	message.SetString(lang, "color.invalid", "Couleur invalide. Veuillez choisir entre %s, %s ou %s.")

	// Colors
	message.SetString(lang, "color.red", "rouge")
	message.SetString(lang, "color.green", "vert")
	message.SetString(lang, "color.blue", "bleu")

	// Kart
	message.SetString(lang, "kart.description", "Kart couleur %s, moteur %s")

	// Errors
	message.SetString(lang, "error.kart", "Erreur lors de la création du kart : %s")
	message.SetString(lang, "error.kart.missing", "le kart doit avoir une couleur et un moteur.")
	message.SetString(lang, "error.character", "Pilote inconnu. Réessayez avec %s.")
	message.SetString(lang, "error.input_closed", "Entrée fermée avant le départ de la course.")

	// Race
	message.SetString(lang, "race.start", "Départ ! %s dans son kart (%s)")
	message.SetString(lang, "race.goal", "Objectif : atteindre la case %d")
	message.SetString(lang, "turn.prompt", "Appuyez sur Entrée pour jouer...")
	message.SetString(lang, "turn.roll", "%s lance le dé : %d")
	message.SetString(lang, "turn.slip", "%s a glissé ! Il ne bouge pas ce tour.")
	message.SetString(lang, "turn.move", "--> %s passe de %d à %d")
	message.SetString(lang, "race.won", "%s a gagné la course ! Bravo")
	message.SetString(lang, "race.summary", "Course terminée en %d tours (%d glissades).")
}
