package utils

import (
	"fmt"
	"math"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// CurrencyToCents converte um valor em unidades monetárias para centavos inteiros,
// arredondando para o centavo mais próximo. A Graph API espera orçamentos em centavos.
func CurrencyToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CentsToDisplay converte um valor em centavos (como a Graph API retorna saldos e
// limites de gasto) para uma string com duas casas decimais.
func CentsToDisplay(cents float64) string {
	return fmt.Sprintf("%.2f", cents/100)
}
