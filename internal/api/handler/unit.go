package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/myprintpt/catalog-api/internal/domain"
	"github.com/myprintpt/catalog-api/internal/usecases/catalog"
	"github.com/myprintpt/catalog-api/pkg/apiErrors"
)

func ListUnidades(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		unidades, err := service.ListUnidades(apenasAtivos(r))
		if err != nil {
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(unidades)
	}
}

func CreateUnidade(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req catalog.NovaUnidadeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}

		unidade, err := service.CreateUnidade(&req)
		if err != nil {
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(unidade)
	}
}

func UpdateUnidade(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AtualizaUnidadeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}

		unidade, err := service.UpdateUnidade(&req)
		if err != nil {
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(unidade)
	}
}

func DeleteUnidade(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error())
			return
		}

		if err := service.DeleteUnidade(id); err != nil {
			writeCatalogError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writeCatalogError traduz erros de unidades e categorias na resposta
// HTTP padrão
func writeCatalogError(w http.ResponseWriter, err error) {
	var cErr *catalog.CatalogError
	if errors.As(err, &cErr) {
		apiErrors.WriteError(w, cErr.Code, cErr.Error())
		return
	}

	switch {
	case errors.Is(err, catalog.ErrDadosObrigatorios):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error())

	case errors.Is(err, catalog.ErrTipoInvalido):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error())

	case errors.Is(err, catalog.ErrNaoEncontrado):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error())

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro interno ao processar catálogo")
	}
}
