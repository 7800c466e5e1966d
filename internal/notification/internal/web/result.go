package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/skillbridge/internal/notification/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)
