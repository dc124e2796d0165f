package handler

import (
	"encoding/json"
	"net/http"

	"github.com/myprintpt/catalog-api/internal/domain"
	"github.com/myprintpt/catalog-api/internal/usecases/catalog"
	"github.com/myprintpt/catalog-api/pkg/apiErrors"
)

func ListCategorias(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categorias, err := service.ListCategorias(apenasAtivos(r))
		if err != nil {
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(categorias)
	}
}

func CreateCategoria(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req catalog.NovaCategoriaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}

		categoria, err := service.CreateCategoria(&req)
		if err != nil {
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(categoria)
	}
}

func UpdateCategoria(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AtualizaCategoriaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}

		categoria, err := service.UpdateCategoria(&req)
		if err != nil {
			writeCatalogError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(categoria)
	}
}

func DeleteCategoria(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error())
			return
		}

		if err := service.DeleteCategoria(id); err != nil {
			writeCatalogError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
