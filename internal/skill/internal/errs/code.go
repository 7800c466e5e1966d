package errs

var (
	SystemError        = ErrorCode{Code: 501001, Msg: "系统错误"}
	SkillNotFound      = ErrorCode{Code: 501002, Msg: "技能不存在"}
	InvalidCategory    = ErrorCode{Code: 501003, Msg: "非法技能分类"}
	InvalidLevel       = ErrorCode{Code: 501004, Msg: "非法技能等级"}
	UserSkillDuplicate = ErrorCode{Code: 501203, Msg: "技能已经在档案中"}
	UserSkillNotFound  = ErrorCode{Code: 501204, Msg: "档案中没有这项技能"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
