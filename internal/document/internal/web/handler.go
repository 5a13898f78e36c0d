package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hrportal/internal/document/internal/service"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	resolver service.Resolver
	client   *sts.Client
	// 临时密钥的权限，只允许上传
	actions []string

	appID  string
	bucket string
	region string
	logger *elog.Component
}

func NewHandler(resolver service.Resolver, cfg service.Config) *Handler {
	return &Handler{
		resolver: resolver,
		client:   sts.NewClient(cfg.SecretID, cfg.SecretKey, http.DefaultClient),
		region:   cfg.Region,
		appID:    cfg.AppID,
		bucket:   cfg.Bucket,
		actions: []string{
			// 简单上传
			"name/cos:PostObject",
			"name/cos:PutObject",
			// 分片上传
			"name/cos:InitiateMultipartUpload",
			"name/cos:ListMultipartUploads",
			"name/cos:ListParts",
			"name/cos:UploadPart",
			"name/cos:CompleteMultipartUpload",
		},
		logger: elog.DefaultLogger.With(elog.FieldComponent("document.web")),
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/documents")
	g.POST("/url", ginx.B(h.URL))
	g.POST("/authorization", ginx.B(h.Authorization))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
}

func (h *Handler) URL(ctx *ginx.Context, req RefReq) (ginx.Result, error) {
	u, err := h.resolver.URL(ctx.Request.Context(), req.Ref)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: URLVO{Ref: req.Ref, URL: u}}, nil
}

// Authorization 签发只能上传到 req.Ref 这一个 key 的临时密钥
func (h *Handler) Authorization(ctx *ginx.Context, req AuthorizationReq) (ginx.Result, error) {
	if err := h.resolver.Validate(req.Ref); err != nil {
		return h.errorResult(err)
	}
	// 存储桶的命名格式为 BucketName-APPID
	resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s-%s/%s",
		h.region, h.appID,
		h.bucket, h.appID, req.Ref)
	opt := &sts.CredentialOptions{
		DurationSeconds: int64(time.Hour.Seconds()),
		Region:          h.region,
		Policy: &sts.CredentialPolicy{
			Statement: []sts.CredentialPolicyStatement{
				{
					Action:   h.actions,
					Effect:   "allow",
					Resource: []string{resource},
					Condition: map[string]map[string]interface{}{
						"string_equal": {
							"cos:content-type": req.Type,
						},
					},
				},
			},
		},
	}
	res, err := h.client.GetCredential(opt)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: TmpAuthCodeVO{
			SecretId:     res.Credentials.TmpSecretID,
			SecretKey:    res.Credentials.TmpSecretKey,
			SessionToken: res.Credentials.SessionToken,
			StartTime:    int64(res.StartTime),
			ExpiredTime:  int64(res.ExpiredTime),
		},
	}, nil
}

func (h *Handler) errorResult(err error) (ginx.Result, error) {
	if bizerr.KindOf(err) == bizerr.KindValidation {
		return ginx.Result{Code: invalidRefResult.Code, Msg: bizerr.MessageOf(err)}, nil
	}
	return systemErrorResult, err
}
