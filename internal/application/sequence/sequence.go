// Package sequence gera os identificadores legíveis dos documentos
// (PO-AAAAMM-NNNN, TC-AAAAMM-NNNN, OS-AAAAMM-NNNN). A numeração reinicia a
// cada mês e a atomicidade fica no repositório de contadores, então duas
// requisições simultâneas nunca recebem o mesmo número.
package sequence

import (
	"fmt"
	"time"

	"github.com/gestorcell/gestor-api/internal/domain/repository"
)

// Prefixos de documento.
const (
	PrefixPurchase     = "PO"
	PrefixSale         = "TC"
	PrefixServiceOrder = "OS"
)

// Generator emite IDs sequenciais por prefixo e período mensal.
type Generator struct {
	sequences repository.SequenceRepository
}

// NewGenerator cria o gerador sobre o repositório de contadores.
func NewGenerator(sequences repository.SequenceRepository) *Generator {
	return &Generator{sequences: sequences}
}

// NextID devolve o próximo identificador do prefixo no período de now,
// no formato PREFIXO-AAAAMM-NNNN.
func (g *Generator) NextID(prefix string, now time.Time) (string, error) {
	period := now.Format("200601")
	n, err := g.sequences.Next(prefix, period)
	if err != nil {
		return "", fmt.Errorf("sequence: próximo valor de %s/%s: %w", prefix, period, err)
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, period, n), nil
}
