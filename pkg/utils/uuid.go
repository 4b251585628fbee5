package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto e amigável para URLs, usado em
// referências de citação e outros recursos sem chave natural
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, 8)
}
