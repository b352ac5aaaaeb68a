package orders

import "nextpdv/internal/models"

var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderScheduled: {models.OrderConfirmed, models.OrderCanceled},
	models.OrderConfirmed: {models.OrderDelivered},
}

func CanTransition(from, to models.OrderStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func ValidStatus(s models.OrderStatus) bool {
	switch s {
	case models.OrderScheduled, models.OrderConfirmed, models.OrderDelivered, models.OrderCanceled:
		return true
	}
	return false
}
