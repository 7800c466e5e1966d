package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	roadmapNotFoundErrResult = ginx.Result{
		Code: errs.RoadmapNotFound.Code,
		Msg:  errs.RoadmapNotFound.Msg,
	}
	itemNotFoundErrResult = ginx.Result{
		Code: errs.ItemNotFound.Code,
		Msg:  errs.ItemNotFound.Msg,
	}
	invalidStateErrResult = ginx.Result{
		Code: errs.InvalidState.Code,
		Msg:  errs.InvalidState.Msg,
	}
	invalidDurationErrResult = ginx.Result{
		Code: errs.InvalidDuration.Code,
		Msg:  errs.InvalidDuration.Msg,
	}
	roleNotFoundErrResult = ginx.Result{
		Code: errs.RoleNotFound.Code,
		Msg:  errs.RoleNotFound.Msg,
	}
)
