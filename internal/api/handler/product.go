package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/myprintpt/catalog-api/internal/domain"
	"github.com/myprintpt/catalog-api/internal/usecases/product"
	"github.com/myprintpt/catalog-api/pkg/apiErrors"
)

func ListProdutos(service product.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		produtos, err := service.ListProdutos(apenasAtivos(r))
		if err != nil {
			writeProductError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(produtos)
	}
}

func GetProduto(service product.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error())
			return
		}

		produto, err := service.GetProduto(id)
		if err != nil {
			writeProductError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(produto)
	}
}

func CreateProduto(service product.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.NovoProdutoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}

		produto, err := service.CreateProduto(r.Context(), &req)
		if err != nil {
			writeProductError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(produto)
	}
}

func UpdateProduto(service product.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error())
			return
		}

		var req domain.AtualizaProdutoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}
		req.ID = id

		produto, err := service.UpdateProduto(&req)
		if err != nil {
			writeProductError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(produto)
	}
}

func DeleteProduto(service product.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromPath(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error())
			return
		}

		if err := service.DeleteProduto(id); err != nil {
			writeProductError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writeProductError traduz erros de produtos e extras na resposta HTTP
// padrão
func writeProductError(w http.ResponseWriter, err error) {
	var pErr *product.ProductError
	if errors.As(err, &pErr) {
		apiErrors.WriteError(w, pErr.Code, pErr.Error())
		return
	}

	switch {
	case errors.Is(err, product.ErrDadosObrigatorios):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error())

	case errors.Is(err, product.ErrValorInvalido):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error())

	case errors.Is(err, product.ErrNaoEncontrado):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error())

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro interno ao processar catálogo")
	}
}
