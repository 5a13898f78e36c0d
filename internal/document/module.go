package document

import (
	"github.com/ecodeclub/hrportal/internal/document/internal/service"
	"github.com/ecodeclub/hrportal/internal/document/internal/web"
)

type Module struct {
	Hdl      *Hdl
	Resolver Resolver
}

type (
	Hdl      = web.Handler
	Resolver = service.Resolver
	Config   = service.Config
)
