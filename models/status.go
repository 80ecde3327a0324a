package models

// OrderStatus is the lifecycle state of an Order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderTransitions lists the states each order state may move to.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:      {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// Valid reports whether s is part of the order vocabulary.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo reports whether an order in state s may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderPredecessors returns every state that may move to target.
func OrderPredecessors(target OrderStatus) []OrderStatus {
	var from []OrderStatus
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		if s.CanTransitionTo(target) {
			from = append(from, s)
		}
	}
	return from
}

// RequestStatus is the lifecycle state of a request-to-buy.
type RequestStatus string

const (
	RequestStatusPending     RequestStatus = "pending"
	RequestStatusReviewing   RequestStatus = "reviewing"
	RequestStatusQuoted      RequestStatus = "quoted"
	RequestStatusAccepted    RequestStatus = "accepted"
	RequestStatusPaid        RequestStatus = "paid"
	RequestStatusOrdered     RequestStatus = "ordered"
	RequestStatusInWarehouse RequestStatus = "in_warehouse"
	RequestStatusShipped     RequestStatus = "shipped"
	RequestStatusDelivered   RequestStatus = "delivered"
)

// RequestStatuses is the request vocabulary in lifecycle order.
var RequestStatuses = []RequestStatus{
	RequestStatusPending,
	RequestStatusReviewing,
	RequestStatusQuoted,
	RequestStatusAccepted,
	RequestStatusPaid,
	RequestStatusOrdered,
	RequestStatusInWarehouse,
	RequestStatusShipped,
	RequestStatusDelivered,
}

// requestTransitions only ever moves forward. quoted -> quoted is a quote
// revision and in_warehouse -> in_warehouse is a picker re-save.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:     {RequestStatusReviewing, RequestStatusQuoted},
	RequestStatusReviewing:   {RequestStatusQuoted},
	RequestStatusQuoted:      {RequestStatusQuoted, RequestStatusAccepted, RequestStatusOrdered},
	RequestStatusAccepted:    {RequestStatusPaid, RequestStatusOrdered},
	RequestStatusPaid:        {RequestStatusOrdered, RequestStatusInWarehouse, RequestStatusShipped, RequestStatusDelivered},
	RequestStatusOrdered:     {RequestStatusInWarehouse, RequestStatusShipped, RequestStatusDelivered},
	RequestStatusInWarehouse: {RequestStatusInWarehouse, RequestStatusShipped, RequestStatusDelivered},
	RequestStatusShipped:     {RequestStatusDelivered},
	RequestStatusDelivered:   {},
}

func (s RequestStatus) Valid() bool {
	_, ok := requestTransitions[s]
	return ok
}

func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RequestPredecessors returns every state that may move to target.
func RequestPredecessors(target RequestStatus) []RequestStatus {
	var from []RequestStatus
	for _, s := range RequestStatuses {
		if s.CanTransitionTo(target) {
			from = append(from, s)
		}
	}
	return from
}

// ShipmentStatus is the state of a shipment batch.
type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "pending"
	ShipmentStatusShipped   ShipmentStatus = "shipped"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
)

func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentStatusPending, ShipmentStatusShipped, ShipmentStatusDelivered:
		return true
	}
	return false
}
