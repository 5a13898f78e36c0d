package errs

var (
	SystemError = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidRef  = ErrorCode{Code: 503002, Msg: "文档路径不合法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
