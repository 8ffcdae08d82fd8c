package domain

// DeriveStatus computes the order status after an item-level status change.
//
//  1. every item READY moves the order to READY;
//  2. otherwise any item PREPARING moves it to PREPARING, unless it is already READY;
//  3. otherwise the current status is kept.
//
// A READY order whose item is corrected back to PENDING stays READY.
// Terminal statuses are never touched.
func DeriveStatus(current OrderStatus, items []OrderItem) OrderStatus {
	if current.IsTerminal() {
		return current
	}

	allReady := true
	anyPreparing := false
	for _, it := range items {
		if it.Status != ItemReady {
			allReady = false
		}
		if it.Status == ItemPreparing {
			anyPreparing = true
		}
	}

	switch {
	case allReady:
		return StatusReady
	case anyPreparing && current != StatusReady:
		return StatusPreparing
	default:
		return current
	}
}
