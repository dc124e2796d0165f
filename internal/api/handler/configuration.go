package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/myprintpt/catalog-api/internal/domain"
	"github.com/myprintpt/catalog-api/internal/usecases/pricing"
	"github.com/myprintpt/catalog-api/pkg/apiErrors"
)

type UpdateMargemPadraoRequest struct {
	MargemPadrao domain.Numero `json:"margem_padrao"`
}

// GetConfiguracao devolve o registo único de configuração com as três
// coleções embutidas. O primeiro acesso cria o registo com a margem
// padrão inicial.
func GetConfiguracao(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, err := service.GetConfiguracao(r.Context())
		if err != nil {
			writePricingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(config)
	}
}

func UpdateMargemPadrao(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateMargemPadraoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}

		config, err := service.SetMargemPadrao(r.Context(), req.MargemPadrao)
		if err != nil {
			writePricingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(config)
	}
}

func ListMargens(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, err := service.GetConfiguracao(r.Context())
		if err != nil {
			writePricingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(config.Margens)
	}
}

func CreateMargem(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pricing.NovaMargemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}

		margem, err := service.CreateMargem(r.Context(), &req)
		if err != nil {
			writePricingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(margem)
	}
}

func UpdateMargem(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pricing.AtualizaMargemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}

		margem, err := service.UpdateMargem(r.Context(), &req)
		if err != nil {
			writePricingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(margem)
	}
}

func DeleteMargem(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error())
			return
		}

		if err := service.DeleteMargem(id); err != nil {
			writePricingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListMinimos(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, err := service.GetConfiguracao(r.Context())
		if err != nil {
			writePricingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(config.Minimos)
	}
}

func CreateMinimo(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pricing.NovoMinimoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}

		minimo, err := service.CreateMinimo(r.Context(), &req)
		if err != nil {
			writePricingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(minimo)
	}
}

func UpdateMinimo(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pricing.AtualizaMinimoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}

		minimo, err := service.UpdateMinimo(r.Context(), &req)
		if err != nil {
			writePricingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(minimo)
	}
}

func DeleteMinimo(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error())
			return
		}

		if err := service.DeleteMinimo(id); err != nil {
			writePricingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListTempos(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config, err := service.GetConfiguracao(r.Context())
		if err != nil {
			writePricingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(config.Tempos)
	}
}

func CreateTempo(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pricing.NovoTempoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}

		tempo, err := service.CreateTempo(r.Context(), &req)
		if err != nil {
			writePricingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(tempo)
	}
}

func UpdateTempo(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pricing.AtualizaTempoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido")
			return
		}

		tempo, err := service.UpdateTempo(r.Context(), &req)
		if err != nil {
			writePricingError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tempo)
	}
}

func DeleteTempo(service pricing.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error())
			return
		}

		if err := service.DeleteTempo(id); err != nil {
			writePricingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writePricingError traduz erros do serviço de configuração na resposta
// HTTP padrão
func writePricingError(w http.ResponseWriter, err error) {
	var pErr *pricing.PricingError
	if errors.As(err, &pErr) {
		apiErrors.WriteError(w, pErr.Code, pErr.Error())
		return
	}

	switch {
	case errors.Is(err, pricing.ErrDadosObrigatorios):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error())

	case errors.Is(err, pricing.ErrValorInvalido):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error())

	case errors.Is(err, pricing.ErrNaoEncontrado):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error())

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro interno ao processar configuração")
	}
}
