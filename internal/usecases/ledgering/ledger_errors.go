package ledgering

import "errors"

var (
	// ErrNotLoaded indica que nenhum ciclo do pipeline foi concluído ainda
	ErrNotLoaded = errors.New("dados do ledger ainda não carregados")

	// ErrSourceFetch indica falha ao obter o CSV de origem; o relatório
	// anterior, se houver, é mantido intacto
	ErrSourceFetch = errors.New("falha ao obter o CSV de origem")
)
