package api

import (
	"go.uber.org/fx"

	"github.com/insulinpump/readings/readings"
	"github.com/insulinpump/readings/store"
)

type Handler struct {
	readings readings.Service
}

type Params struct {
	fx.In

	Readings readings.Service
}

func NewHandler(p Params) *Handler {
	return &Handler{
		readings: p.Readings,
	}
}

func pagination(offset, limit *int) store.Pagination {
	page := store.DefaultPagination()
	if offset != nil {
		page.Offset = *offset
	}
	if limit != nil {
		page.Limit = *limit
	}
	return page
}
