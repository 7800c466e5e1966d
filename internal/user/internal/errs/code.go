package errs

var (
	SystemError     = ErrorCode{Code: 505001, Msg: "系统错误"}
	UserNotFound    = ErrorCode{Code: 505002, Msg: "用户不存在"}
	InvalidInterest = ErrorCode{Code: 505003, Msg: "无效的兴趣方向"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
