package usecase

import (
	"github.com/zamcare/medirush/internal/pkg/models"
	"github.com/zamcare/medirush/services/dispatch"
)

type DispatchUC struct {
	dispatchRepo dispatch.DispatchRepo
	dispatchGW   dispatch.DispatchGW
	cfg          *models.Config
}

// NewDispatchUC creates a new dispatch usecase instance
func NewDispatchUC(
	dispatchRepo dispatch.DispatchRepo,
	dispatchGW dispatch.DispatchGW,
	cfg *models.Config,
) *DispatchUC {
	return &DispatchUC{
		dispatchRepo: dispatchRepo,
		dispatchGW:   dispatchGW,
		cfg:          cfg,
	}
}
