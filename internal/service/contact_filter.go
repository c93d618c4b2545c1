package service

import (
	"regexp"

	"jasaku/internal/domain"
)

// ContactFilter encapsula la detección y censura de información de contacto
// personal dentro de mensajes de chat.
type ContactFilter struct{}

// DefaultContactFilter permite uso directo sin instanciar.
var DefaultContactFilter = ContactFilter{}

// patternFamily asocia una categoría de contacto con sus patrones y el token
// de reemplazo que se muestra al usuario.
type patternFamily struct {
	name     string
	patterns []*regexp.Regexp
	token    string
}

// Los números indonesios se chequean con cuatro estilos de separador por
// separado (ninguno, espacios, guiones, puntos) para atrapar coincidencias
// superpuestas. Los tokens no deben volver a disparar ningún patrón.
var contactPatternFamilies = []patternFamily{
	{
		name: "phone",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(\+62|62|0)8[1-9][0-9]{6,10}`),
			regexp.MustCompile(`(\+62|62|0)\s*8[1-9][\s0-9]{6,14}`),
			regexp.MustCompile(`(\+62|62|0)[\s-]*8[1-9][\s0-9-]{6,20}`),
			regexp.MustCompile(`(\+62|62|0)[.\s-]*8[1-9][.\s0-9-]{6,20}`),
		},
		token: "*** nomor telepon disensor ***",
	},
	{
		name: "platformMention",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(whatsapp|whtsapp|wa|w\.a|w\sa)\b`),
		},
		token: "*** platform chat disensor ***",
	},
	{
		name: "email",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
		},
		token: "*** email disensor ***",
	},
	{
		name: "socialHandle",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(instagram|ig|telegram|facebook|fb|twitter|line|tiktok)\b`),
		},
		token: "*** sosial media disensor ***",
	},
}

// Filter escanea el mensaje contra todas las familias de patrones y devuelve
// una copia censurada junto con la bandera de detección. Es una función pura:
// misma entrada, misma salida, sin efectos secundarios.
func (ContactFilter) Filter(message string) domain.RedactionResult {
	if message == "" {
		return domain.RedactionResult{FilteredMessage: "", ContainedContact: false}
	}

	filtered := message
	contained := false

	for _, fam := range contactPatternFamilies {
		matched := false
		for _, p := range fam.patterns {
			if p.MatchString(message) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		contained = true
		for _, p := range fam.patterns {
			filtered = p.ReplaceAllString(filtered, fam.token)
		}
	}

	return domain.RedactionResult{FilteredMessage: filtered, ContainedContact: contained}
}
