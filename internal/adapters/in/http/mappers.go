package http

import (
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/generated/servers"
)

func toOrder(view queries.OrderView) servers.Order {
	return servers.Order{
		Id:          view.ID.Bytes(),
		ProductId:   view.ProductID.Bytes(),
		ProductName: view.ProductName,
		FarmerId:    view.FarmerID.Bytes(),
		BuyerId:     view.BuyerID.Bytes(),
		BuyerName:   view.BuyerName,
		Quantity:    view.Quantity,
		TotalPrice:  view.TotalPrice.String(),
		Status:      servers.OrderStatus(view.Status.String()),
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}

func toPagination(p queries.Pagination) servers.Pagination {
	return servers.Pagination{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		TotalItems:  p.TotalItems,
		HasNext:     p.HasNext,
		HasPrev:     p.HasPrev,
	}
}

func toNotifications(views []queries.NotificationView) []servers.Notification {
	response := make([]servers.Notification, len(views))
	for i, view := range views {
		response[i] = servers.Notification{
			Id:        view.ID.Bytes(),
			UserId:    view.UserID.Bytes(),
			Title:     view.Title,
			Message:   view.Message,
			Type:      servers.NotificationType(view.Type.String()),
			Read:      view.Read,
			Metadata:  metadataOf(view.Metadata),
			CreatedAt: view.CreatedAt,
		}
	}
	return response
}

func fromNotification(n *notification.Notification) servers.Notification {
	return servers.Notification{
		Id:        n.ID().Bytes(),
		UserId:    n.UserID().Bytes(),
		Title:     n.Title(),
		Message:   n.Message(),
		Type:      servers.NotificationType(n.Type().String()),
		Read:      n.IsRead(),
		Metadata:  metadataOf(n.Metadata()),
		CreatedAt: n.CreatedAt(),
	}
}

func metadataOf(m notification.Metadata) *map[string]interface{} {
	if len(m) == 0 {
		return nil
	}
	out := map[string]interface{}(m)
	return &out
}

func toProduct(p *product.Product) servers.Product {
	return servers.Product{
		Id:          p.ID().Bytes(),
		FarmerId:    p.FarmerID().Bytes(),
		Name:        p.Name(),
		Category:    p.Category(),
		Description: p.Description(),
		ImageUrl:    p.ImageURL(),
		Price:       p.Price().String(),
		Quantity:    p.Quantity(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func toUser(u *user.User) servers.User {
	return servers.User{
		Id:       u.ID().Bytes(),
		Name:     u.Name(),
		Email:    u.Email(),
		Role:     servers.UserRole(u.Role().String()),
		Verified: u.IsVerified(),
	}
}
