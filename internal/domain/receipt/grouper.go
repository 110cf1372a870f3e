// Package receipt agrupa líneas planas de venta o compra en recibos lógicos.
//
// La agrupación es un barrido lineal por adyacencia sobre el ReceiptID, no un
// group-by con hash: la entrada DEBE venir ordenada con ReceiptID como llave
// secundaria (los repositorios ordenan por fecha DESC, recibo_id). Con entrada
// sin ordenar un mismo recibo saldría partido en varios grupos sin error
// alguno, así que la precondición es parte del contrato.
package receipt

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
)

// SaleReceipt es un checkout completo: todas las líneas que comparten un
// mismo recibo, con los campos de cabecera tomados de la primera línea.
type SaleReceipt struct {
	ReceiptID string
	Date      time.Time
	Seller    string
	Payment   decimal.Decimal
	Change    decimal.Decimal
	Total     decimal.Decimal
	Lines     []entity.Sale
}

// PurchaseReceipt es una orden de compra completa.
type PurchaseReceipt struct {
	ReceiptID string
	Date      time.Time
	Supplier  string
	Buyer     string
	Total     decimal.Decimal
	Lines     []entity.Purchase
}

// GroupSales agrupa líneas de venta adyacentes por ReceiptID, preservando el
// orden de entrada entre grupos y dentro de cada grupo.
// Precondición: sales ordenado con ReceiptID como llave de adyacencia.
func GroupSales(sales []entity.Sale) []SaleReceipt {
	var receipts []SaleReceipt
	for _, s := range sales {
		n := len(receipts)
		if n == 0 || receipts[n-1].ReceiptID != s.ReceiptID {
			receipts = append(receipts, SaleReceipt{
				ReceiptID: s.ReceiptID,
				Date:      s.Date,
				Seller:    s.Seller,
				Payment:   s.Payment,
				Change:    s.Change,
			})
			n++
		}
		r := &receipts[n-1]
		r.Total = r.Total.Add(s.Total)
		r.Lines = append(r.Lines, s)
	}
	return receipts
}

// GroupPurchases agrupa líneas de compra adyacentes por ReceiptID. El total
// del recibo es Σ(cantidad × costo unitario) de sus líneas.
// Precondición: purchases ordenado con ReceiptID como llave de adyacencia.
func GroupPurchases(purchases []entity.Purchase) []PurchaseReceipt {
	var receipts []PurchaseReceipt
	for _, p := range purchases {
		n := len(receipts)
		if n == 0 || receipts[n-1].ReceiptID != p.ReceiptID {
			receipts = append(receipts, PurchaseReceipt{
				ReceiptID: p.ReceiptID,
				Date:      p.Date,
				Supplier:  p.Supplier,
				Buyer:     p.Buyer,
			})
			n++
		}
		r := &receipts[n-1]
		r.Total = r.Total.Add(p.LineCost())
		r.Lines = append(r.Lines, p)
	}
	return receipts
}
