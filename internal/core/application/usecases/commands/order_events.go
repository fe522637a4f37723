package commands

import (
	"ordertracking/internal/core/domain/model/kernel"
	"ordertracking/internal/core/domain/model/order"
)

// OrderEventRecorder is told about order changes after they are committed,
// whichever adapter or job triggered them.
type OrderEventRecorder interface {
	OrderCreated(orderID kernel.ID, total kernel.Money)
	OrderStatusChanged(orderID kernel.ID, from, to order.Status)
}

type nopOrderEventRecorder struct{}

func (nopOrderEventRecorder) OrderCreated(kernel.ID, kernel.Money) {}

func (nopOrderEventRecorder) OrderStatusChanged(kernel.ID, order.Status, order.Status) {}

func recorderOrNop(recorder OrderEventRecorder) OrderEventRecorder {
	if recorder == nil {
		return nopOrderEventRecorder{}
	}
	return recorder
}
