// Package pdf implementa a ficha impressa da ordem de serviço entregue ao
// cliente no balcão.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nome da loja + CNPJ  │  N° da OS + Data             │
//	│  ───────────────────────────────────────────────────────── │
//	│  LOJA: Endereço / Tel / Email                                │
//	│  CLIENTE: Nome + WhatsApp + CPF/CNPJ                         │
//	│  ───────────────────────────────────────────────────────── │
//	│  SERVIÇO: Descrição + Status                                 │
//	│  VALORES: Preço / Desconto / Valor final                     │
//	│  ───────────────────────────────────────────────────────── │
//	│  RODAPÉ: Assinatura do cliente + condições de garantia       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/gestorcell/gestor-api/internal/application/serviceorder"
	"github.com/gestorcell/gestor-api/internal/domain/entity"
)

var _ serviceorder.SheetGenerator = (*MarotoSheetGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 20, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoSheetGenerator implementa serviceorder.SheetGenerator com Maroto v2.
type MarotoSheetGenerator struct{}

// NewMarotoSheetGenerator monta o gerador.
func NewMarotoSheetGenerator() *MarotoSheetGenerator { return &MarotoSheetGenerator{} }

// ServiceOrderSheet gera a ficha em PDF e devolve os bytes.
func (g *MarotoSheetGenerator) ServiceOrderSheet(order *entity.ServiceOrder, storeCfg *entity.StoreConfig) ([]byte, error) {
	company := storeCfg.CompanyInfo

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ordem de Serviço "+order.ID, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(storeRow(company))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(serviceRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))
	m.AddRows(line.NewRow(6))
	for _, r := range footerRows() {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome da loja + CNPJ (esq) e número da OS + data (dir).
func headerRow(order *entity.ServiceOrder, company entity.CompanyInfo) core.Row {
	name := company.Name
	if name == "" {
		name = "Ordem de Serviço"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+company.CnpjCpf, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEM DE SERVIÇO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Abertura: "+order.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func storeRow(company entity.CompanyInfo) core.Row {
	addr := company.Address
	addressLine := fmt.Sprintf("%s, %s - %s, %s/%s", addr.Street, addr.Number, addr.Neighborhood, addr.City, addr.State)
	return row.New(12).Add(
		col.New(12).Add(
			text.New(addressLine, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("Tel: %s  |  Email: %s", company.Phone, company.Email), props.Text{
				Size: 8, Color: colorGray, Top: 6,
			}),
		),
	)
}

func customerRow(order *entity.ServiceOrder) core.Row {
	doc := order.CustomerCnpjCpf
	if doc == "" {
		doc = "-"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(order.CustomerName, props.Text{Size: 10, Top: 5}),
			text.New(fmt.Sprintf("WhatsApp: %s  |  CPF/CNPJ: %s", order.CustomerWhatsapp, doc), props.Text{
				Size: 8, Color: colorGray, Top: 10,
			}),
		),
	)
}

func serviceRow(order *entity.ServiceOrder) core.Row {
	return row.New(16).Add(
		col.New(9).Add(
			text.New("SERVIÇO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(order.ServiceDescription, props.Text{Size: 10, Top: 5}),
		),
		col.New(3).Add(
			text.New("STATUS", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(order.Status, props.Text{Size: 10, Align: align.Right, Top: 5}),
		),
	)
}

func totalsRow(order *entity.ServiceOrder) core.Row {
	price := order.TotalPrice
	if order.FinalPrice != nil {
		price = *order.FinalPrice
	}
	discount := decimal.Zero
	if order.Discount != nil {
		discount = *order.Discount
	}
	payment := order.PaymentMethod
	if payment == "" {
		payment = "-"
	}
	return row.New(16).Add(
		col.New(4).Add(
			text.New("Pagamento", props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(payment, props.Text{Size: 10, Top: 6}),
		),
		col.New(4).Add(
			text.New("Desconto", props.Text{Size: 8, Color: colorGray, Align: align.Right, Top: 1}),
			text.New("R$ "+discount.StringFixed(2), props.Text{Size: 10, Align: align.Right, Top: 6}),
		),
		col.New(4).Add(
			text.New("VALOR TOTAL", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right, Top: 1}),
			text.New("R$ "+price.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
		),
	)
}

func footerRows() []core.Row {
	return []core.Row{
		row.New(10).Add(
			col.New(12).Add(
				text.New("_________________________________________", props.Text{Align: align.Center, Top: 1}),
				text.New("Assinatura do cliente", props.Text{Size: 8, Color: colorGray, Align: align.Center, Top: 6}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New("Garantia de 90 dias sobre o serviço executado, conforme o Código de Defesa do Consumidor.", props.Text{
					Size: 7, Color: colorGray, Align: align.Center, Top: 2,
				}),
			),
		),
	}
}
