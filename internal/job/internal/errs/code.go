package errs

var (
	SystemError     = ErrorCode{Code: 504001, Msg: "系统错误"}
	JobNotFound     = ErrorCode{Code: 504002, Msg: "岗位不存在"}
	InvalidCategory = ErrorCode{Code: 504003, Msg: "无效的类别"}
	InvalidJob      = ErrorCode{Code: 504004, Msg: "无效的岗位信息"}
	InvalidSkill    = ErrorCode{Code: 504005, Msg: "无效的技能要求"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
