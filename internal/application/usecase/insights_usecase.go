package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gestorcell/gestor-api/internal/application/dto"
	"github.com/gestorcell/gestor-api/internal/application/ports"
)

// InsightsUseCase monta o prompt com os indicadores do painel e delega a
// análise ao serviço de LLM. Cada chamada carrega um timeout de 60 segundos;
// o adaptador ainda faz retry internamente, então latências de pico do
// modelo não travam as goroutines do servidor indefinidamente.
type InsightsUseCase struct {
	llm ports.LLMService
}

// NewInsightsUseCase monta o caso de uso injetando a porta LLMService.
func NewInsightsUseCase(llm ports.LLMService) *InsightsUseCase {
	return &InsightsUseCase{llm: llm}
}

// Generate produz a análise textual dos indicadores do período.
func (uc *InsightsUseCase) Generate(ctx context.Context, req dto.InsightsRequest) (*dto.InsightsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	text, model, err := uc.llm.GenerateInsights(ctx, buildPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("análise IA: %w", err)
	}
	return &dto.InsightsResponse{Insights: text, Model: model}, nil
}

// buildPrompt descreve os indicadores em português e pede uma análise
// objetiva com recomendações acionáveis para o lojista.
func buildPrompt(req dto.InsightsRequest) string {
	var b strings.Builder

	b.WriteString("Você é um consultor financeiro especializado em lojas de celulares e assistências técnicas no Brasil.\n")
	b.WriteString("Analise os indicadores abaixo e produza um resumo executivo em português, direto e sem jargão,\n")
	b.WriteString("com 3 a 5 recomendações práticas para o dono da loja.\n\n")

	if req.PeriodLabel != "" {
		fmt.Fprintf(&b, "Período analisado: %s\n", req.PeriodLabel)
	}
	fmt.Fprintf(&b, "Faturamento total: R$ %s\n", req.TotalRevenue.StringFixed(2))
	fmt.Fprintf(&b, "Despesas totais: R$ %s\n", req.TotalExpenses.StringFixed(2))
	fmt.Fprintf(&b, "Lucro líquido: R$ %s\n", req.NetProfit.StringFixed(2))
	fmt.Fprintf(&b, "Quantidade de vendas: %d\n", req.SalesCount)
	fmt.Fprintf(&b, "Quantidade de ordens de serviço: %d\n", req.ServiceCount)
	fmt.Fprintf(&b, "Ticket médio: R$ %s\n", req.AvgTicket.StringFixed(2))
	fmt.Fprintf(&b, "Despesas pendentes: R$ %s\n", req.PendingExpenses.StringFixed(2))

	if len(req.TopProducts) > 0 {
		fmt.Fprintf(&b, "Produtos mais vendidos: %s\n", strings.Join(req.TopProducts, ", "))
	}
	if len(req.TopServices) > 0 {
		fmt.Fprintf(&b, "Serviços mais realizados: %s\n", strings.Join(req.TopServices, ", "))
	}
	if len(req.StockAlerts) > 0 {
		fmt.Fprintf(&b, "Alertas de estoque: %s\n", strings.Join(req.StockAlerts, ", "))
	}

	b.WriteString("\nResponda em texto corrido, sem tabelas.")
	return b.String()
}
