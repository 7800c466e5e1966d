package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	skillNotFoundErrResult = ginx.Result{
		Code: errs.SkillNotFound.Code,
		Msg:  errs.SkillNotFound.Msg,
	}
	userSkillDuplicateErrResult = ginx.Result{
		Code: errs.UserSkillDuplicate.Code,
		Msg:  errs.UserSkillDuplicate.Msg,
	}
	userSkillNotFoundErrResult = ginx.Result{
		Code: errs.UserSkillNotFound.Code,
		Msg:  errs.UserSkillNotFound.Msg,
	}
)
