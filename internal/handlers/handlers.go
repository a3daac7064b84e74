package handlers

import (
	"github.com/pf9/region-wizard/internal/services"
)

type Handler struct {
	inventorySrv *services.InventoryService
}

func New(inventorySrv *services.InventoryService) *Handler {
	return &Handler{
		inventorySrv: inventorySrv,
	}
}
