package test

// Result 对应 ginx.Result，Data 按接口实际返回的 VO 解析，出错时是 ErrorVO
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}
