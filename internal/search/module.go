package search

import "github.com/ecodeclub/skillbridge/internal/search/internal/event"

type Module struct {
	SearchSvc SearchService
	SyncSvc   SyncService
	Hdl       *Handler
	C         *event.SyncConsumer
}
