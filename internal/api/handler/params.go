package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

// idFromQuery lê o id da query string (?id=N), a forma usada pelas
// coleções sem segmento de id no caminho
func idFromQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, errors.New("id não fornecido")
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return id, nil
}

// idFromPath lê o id do segmento :id do caminho
func idFromPath(r *http.Request) (int, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return id, nil
}

// apenasAtivos interpreta o filtro ?todos=true: por omissão as listagens
// devolvem apenas registos ativos
func apenasAtivos(r *http.Request) bool {
	return r.URL.Query().Get("todos") != "true"
}
