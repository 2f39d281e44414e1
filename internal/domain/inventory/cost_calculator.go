package inventory

import "github.com/shopspring/decimal"

// WeightedCost costo promedio ponderado tras una entrada. receivedQty es lo recibido antes de
// esta entrada; las ventas no cambian el costo, solo el stock.
// NuevoCosto = ((Recibido * CostoActual) + (CantEntrada * CostoEntrada)) / (Recibido + CantEntrada)
func WeightedCost(receivedQty, currentCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	sum := receivedQty.Add(inQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := receivedQty.Mul(currentCost).Add(inQty.Mul(inCost))
	return num.Div(sum)
}
