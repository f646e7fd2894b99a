// Package textnorm: normalización de texto libre editado a mano en planillas
// (cabeceras, logins, tipos de usuario). Sin estado compartido: cada llamada
// arma su propio transformer porque transform.Chain no es seguro entre goroutines.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics elimina tildes y demás marcas combinantes (á -> a, ç -> c).
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Fold devuelve s sin espacios extremos, en minúsculas y sin diacríticos.
// Es la forma canónica para comparar logins, nombres y cabeceras.
func Fold(s string) string {
	return strings.ToLower(StripDiacritics(strings.TrimSpace(s)))
}

// Digits conserva solo los dígitos ASCII de s ("+55 (11) 9123-4567" -> "551191234567").
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slugify reduce s a [a-z0-9_]: aplica Fold, quita los espacios y descarta el resto.
// "Cliente Atacado" -> "clienteatacado".
func Slugify(s string) string {
	folded := Fold(s)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
