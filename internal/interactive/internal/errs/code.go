package errs

var (
	SystemError = ErrorCode{Code: 506001, Msg: "系统错误"}
	InvalidBiz  = ErrorCode{Code: 506002, Msg: "无效的业务类型"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
