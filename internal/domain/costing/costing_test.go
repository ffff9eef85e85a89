package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorcell/gestor-api/internal/domain/costing"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Custo médio ponderado
// ──────────────────────────────────────────────────────────────────────────────

// Estoque 10 a custo 100 + entrada de 5 a custo 200 sem frete:
// (10*100 + 5*200) / 15 = 133.33...
func TestApplyEntry_MediaPonderada(t *testing.T) {
	newStock, newCost := costing.ApplyEntry(10, decimal.NewFromInt(100), 5, decimal.NewFromInt(200))

	assert.Equal(t, int64(15), newStock)
	expected := decimal.NewFromInt(2000).Div(decimal.NewFromInt(15))
	assert.True(t, newCost.Equal(expected),
		"custo médio esperado %s, obtido %s", expected, newCost)
}

// Entrada em estoque vazio: o custo médio é o próprio custo unitário final.
func TestApplyEntry_EstoqueVazio(t *testing.T) {
	newStock, newCost := costing.ApplyEntry(0, decimal.Zero, 3, decimal.NewFromInt(50))

	assert.Equal(t, int64(3), newStock)
	assert.True(t, newCost.Equal(decimal.NewFromInt(50)))
}

// Quantidade zero não divide por zero: devolve o custo unitário final.
func TestApplyEntry_QuantidadeZero(t *testing.T) {
	newStock, newCost := costing.ApplyEntry(0, decimal.Zero, 0, decimal.NewFromInt(50))

	assert.Equal(t, int64(0), newStock)
	assert.True(t, newCost.Equal(decimal.NewFromInt(50)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Diluição de frete/outros custos
// ──────────────────────────────────────────────────────────────────────────────

// Dois itens de custo 50 e quantidade 1, frete 10: cada item pesa 50%,
// diluição de 5 por unidade, custo final 55.
func TestFinalUnitCost_DiluicaoProporcional(t *testing.T) {
	items := []entity.PurchaseItem{
		{ProductID: "A", Quantity: 1, UnitCost: decimal.NewFromInt(50)},
		{ProductID: "B", Quantity: 1, UnitCost: decimal.NewFromInt(50)},
	}
	total := costing.TotalItemCost(items)
	require.True(t, total.Equal(decimal.NewFromInt(100)))

	freight := decimal.NewFromInt(10)
	for _, it := range items {
		fuc := costing.FinalUnitCost(it, total, freight)
		assert.True(t, fuc.Equal(decimal.NewFromInt(55)),
			"item %s: custo final esperado 55, obtido %s", it.ProductID, fuc)
	}
}

// Sem custos adicionais a diluição é zero e o custo final é o unitário.
func TestFinalUnitCost_SemCustosAdicionais(t *testing.T) {
	it := entity.PurchaseItem{ProductID: "A", Quantity: 4, UnitCost: decimal.NewFromInt(25)}
	fuc := costing.FinalUnitCost(it, decimal.NewFromInt(100), decimal.Zero)
	assert.True(t, fuc.Equal(decimal.NewFromInt(25)))
}

// Total de itens zero (compra só de brindes) não divide por zero.
func TestFinalUnitCost_TotalZero(t *testing.T) {
	it := entity.PurchaseItem{ProductID: "A", Quantity: 2, UnitCost: decimal.Zero}
	fuc := costing.FinalUnitCost(it, decimal.Zero, decimal.NewFromInt(30))
	assert.True(t, fuc.Equal(decimal.Zero))
}

// A diluição respeita pesos desiguais: item de 80% do valor absorve 80% do frete.
func TestFinalUnitCost_PesosDesiguais(t *testing.T) {
	caro := entity.PurchaseItem{ProductID: "caro", Quantity: 1, UnitCost: decimal.NewFromInt(80)}
	barato := entity.PurchaseItem{ProductID: "barato", Quantity: 1, UnitCost: decimal.NewFromInt(20)}
	total := costing.TotalItemCost([]entity.PurchaseItem{caro, barato})
	freight := decimal.NewFromInt(10)

	fucCaro := costing.FinalUnitCost(caro, total, freight)
	fucBarato := costing.FinalUnitCost(barato, total, freight)

	assert.True(t, fucCaro.Equal(decimal.NewFromInt(88)), "esperado 88, obtido %s", fucCaro)
	assert.True(t, fucBarato.Equal(decimal.NewFromInt(22)), "esperado 22, obtido %s", fucBarato)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reversão
// ──────────────────────────────────────────────────────────────────────────────

// Aplicar e reverter a mesma entrada restaura (estoque, custo) exatamente,
// desde que não haja mutação intermediária.
func TestApplyReverse_RoundTrip(t *testing.T) {
	stock := int64(7)
	cost := decimal.NewFromFloat(31.5)
	fuc := decimal.NewFromFloat(44.25)

	midStock, midCost := costing.ApplyEntry(stock, cost, 5, fuc)
	finalStock, finalCost := costing.ReverseEntry(midStock, midCost, 5, fuc)

	assert.Equal(t, stock, finalStock)
	assert.True(t, finalCost.Sub(cost).Abs().LessThan(decimal.New(1, -9)),
		"custo original %s, após round-trip %s", cost, finalCost)
}

// Reverter uma entrada que zera o estoque sempre zera o custo, independente
// do valor residual calculado.
func TestReverseEntry_EstoqueZeradoZeraCusto(t *testing.T) {
	newStock, newCost := costing.ReverseEntry(5, decimal.NewFromInt(120), 5, decimal.NewFromInt(100))

	assert.Equal(t, int64(0), newStock)
	assert.True(t, newCost.IsZero(), "custo deve zerar com estoque 0, obtido %s", newCost)
}

// Estoque negativo após reversão (compra revertida depois de vendas) também zera o custo.
func TestReverseEntry_EstoqueNegativoZeraCusto(t *testing.T) {
	newStock, newCost := costing.ReverseEntry(3, decimal.NewFromInt(80), 5, decimal.NewFromInt(80))

	assert.Equal(t, int64(-2), newStock)
	assert.True(t, newCost.IsZero())
}

// Reversão parcial mantém o valor dos itens restantes.
func TestReverseEntry_Parcial(t *testing.T) {
	// 10 unidades a custo médio 110; remove 4 que entraram a 110.
	newStock, newCost := costing.ReverseEntry(10, decimal.NewFromInt(110), 4, decimal.NewFromInt(110))

	assert.Equal(t, int64(6), newStock)
	assert.True(t, newCost.Equal(decimal.NewFromInt(110)),
		"remover ao custo médio não muda o custo dos restantes, obtido %s", newCost)
}
