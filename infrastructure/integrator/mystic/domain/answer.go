package domain

import "time"

// Answer é a resposta do serviço de consulta ao grimório.
type Answer struct {
	Question   string     `json:"question"`
	Text       string     `json:"text"`
	Citations  []Citation `json:"citations"`
	AnsweredAt time.Time  `json:"answered_at"`
}

type Citation struct {
	DocumentRef string `json:"document_ref"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
}

// Document é um item do acervo indexado pelo serviço de busca.
type Document struct {
	Ref       string    `json:"ref"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	IndexedAt time.Time `json:"indexed_at"`
}
