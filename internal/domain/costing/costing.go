// Package costing implementa o serviço de domínio de custeio do estoque:
// custo médio ponderado e diluição proporcional de frete/outros custos
// entre os itens de uma ordem de compra.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/gestorcell/gestor-api/internal/domain/entity"
)

// TotalItemCost soma UnitCost*Quantity de todos os itens da compra.
func TotalItemCost(items []entity.PurchaseItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitCost.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}

// FinalUnitCost devolve o custo unitário final de um item: o custo unitário
// informado mais a fração de frete/outros custos diluída proporcionalmente ao
// peso do item no total da compra.
//
//	proporção  = (UnitCost*Quantity) / totalItemCost   (0 se totalItemCost <= 0)
//	diluição   = proporção * additionalCosts / Quantity (0 se additionalCosts <= 0 ou Quantity = 0)
func FinalUnitCost(item entity.PurchaseItem, totalItemCost, additionalCosts decimal.Decimal) decimal.Decimal {
	if item.Quantity == 0 {
		return item.UnitCost
	}
	if !totalItemCost.GreaterThan(decimal.Zero) || !additionalCosts.GreaterThan(decimal.Zero) {
		return item.UnitCost
	}
	qty := decimal.NewFromInt(item.Quantity)
	proportion := item.UnitCost.Mul(qty).Div(totalItemCost)
	diluted := proportion.Mul(additionalCosts).Div(qty)
	return item.UnitCost.Add(diluted)
}

// ApplyEntry aplica uma entrada de compra ao par (estoque, custo médio) de um
// produto e devolve o novo par.
// NovoCusto = ((EstoqueAtual*CustoAtual) + (Qtd*CustoUnitFinal)) / (EstoqueAtual+Qtd);
// se o estoque resultante for 0 o custo vira o próprio custo unitário final.
func ApplyEntry(stock int64, cost decimal.Decimal, quantity int64, finalUnitCost decimal.Decimal) (int64, decimal.Decimal) {
	newStock := stock + quantity
	if newStock <= 0 {
		return newStock, finalUnitCost
	}
	oldValue := cost.Mul(decimal.NewFromInt(stock))
	entryValue := finalUnitCost.Mul(decimal.NewFromInt(quantity))
	return newStock, oldValue.Add(entryValue).Div(decimal.NewFromInt(newStock))
}

// ReverseEntry desfaz uma entrada de compra: remove do valor total do estoque
// o mesmo custo unitário final que foi diluído na aplicação e decrementa a
// quantidade. Se o estoque resultante for <= 0 o custo é zerado, mesmo que
// sobre valor residual (estoque vazio não carrega valor).
func ReverseEntry(stock int64, cost decimal.Decimal, quantity int64, finalUnitCost decimal.Decimal) (int64, decimal.Decimal) {
	newStock := stock - quantity
	if newStock <= 0 {
		return newStock, decimal.Zero
	}
	currentValue := cost.Mul(decimal.NewFromInt(stock))
	removedValue := finalUnitCost.Mul(decimal.NewFromInt(quantity))
	return newStock, currentValue.Sub(removedValue).Div(decimal.NewFromInt(newStock))
}
