package notification

import "foodhub/internal/entities"

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}
	return &entities.Notification{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		RecipientKind: entities.RecipientKind(n.RecipientKind),
		OrderID:       n.OrderID,
		Category:      entities.NotificationCategory(n.Category),
		Message:       n.Message,
		CreatedAt:     n.CreatedAt,
	}
}

func ToDomainList(notificationsDB []NotificationDB) []entities.Notification {
	if len(notificationsDB) == 0 {
		return []entities.Notification{}
	}

	result := make([]entities.Notification, len(notificationsDB))
	for i := range notificationsDB {
		result[i] = *ToDomain(&notificationsDB[i])
	}
	return result
}
