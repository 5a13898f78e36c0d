package web

type RefReq struct {
	Ref string `json:"ref"`
}

type URLVO struct {
	Ref string `json:"ref"`
	URL string `json:"url"`
}

type AuthorizationReq struct {
	// Ref 上传后文件在存储桶中的 key，比如 resumes/12/cv.pdf
	Ref string `json:"ref"`
	// Type 文件的 content-type
	Type string `json:"type"`
}

type TmpAuthCodeVO struct {
	SecretId     string `json:"secretId"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int64  `json:"startTime"`
	ExpiredTime  int64  `json:"expiredTime"`
}
