package handler

import (
	"encoding/json"
	"net/http"

	"github.com/myprintpt/catalog-api/internal/domain"
	"github.com/myprintpt/catalog-api/internal/usecases/product"
	"github.com/myprintpt/catalog-api/pkg/apiErrors"
)

func ListExtras(service product.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		extras, err := service.ListExtras(apenasAtivos(r))
		if err != nil {
			writeProductError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(extras)
	}
}

func GetExtra(service product.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error())
			return
		}

		extra, err := service.GetExtra(id)
		if err != nil {
			writeProductError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(extra)
	}
}

func CreateExtra(service product.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.NovoExtraRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}

		extra, err := service.CreateExtra(r.Context(), &req)
		if err != nil {
			writeProductError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(extra)
	}
}

func UpdateExtra(service product.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error())
			return
		}

		var req domain.AtualizaExtraRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}
		req.ID = id

		extra, err := service.UpdateExtra(&req)
		if err != nil {
			writeProductError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(extra)
	}
}

func DeleteExtra(service product.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error())
			return
		}

		if err := service.DeleteExtra(id); err != nil {
			writeProductError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
