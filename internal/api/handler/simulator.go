package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/pyme-analytics-api/internal/domain"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/simulating"
	"github.com/vfg2006/pyme-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/pyme-analytics-api/pkg/log"
)

// SimulatePrice calcula o preço final de um produto a partir de custo,
// margem e imposto. O simulador é desacoplado do dataset carregado.
func SimulatePrice(service simulating.Simulator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.SimulationInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.Simulate(input)
		if err != nil {
			if isSimulationInputError(err) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("simulator: erro ao simular preço")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao simular preço", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("simulator: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func isSimulationInputError(err error) bool {
	return errors.Is(err, simulating.ErrNegativeCost) ||
		errors.Is(err, simulating.ErrMarginOutOfRange) ||
		errors.Is(err, simulating.ErrNegativeTax)
}
