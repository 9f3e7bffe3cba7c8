// Package normalise fournit la normalisation de texte utilisée par la
// recherche catalogue : les désignations saisies avec ou sans accents
// ("échafaudage" / "echafaudage") doivent matcher.
package normalise

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var sansAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Chaine renvoie la chaîne en minuscules et sans signes diacritiques.
// En cas d'échec de la transformation (entrée non UTF-8), renvoie l'entrée
// simplement minusculée.
func Chaine(s string) string {
	out, _, err := transform.String(sansAccents, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
