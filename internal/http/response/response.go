package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 中间件写入上下文的追踪字段，错误响应会回显给前端
const (
	requestIDContextKey = "request_id"
	sessionIDContextKey = "session_id"
)

// Response 统一响应信封
type Response struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data"`
}

// PageResponse 分页响应信封
type PageResponse struct {
	Response
	Pagination Pagination `json:"pagination"`
}

// Pagination 分页信息
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}

// NewPagination 按总数计算总页数
func NewPagination(page, pageSize int, total int64) Pagination {
	p := Pagination{Page: page, PageSize: pageSize, Total: total}
	if pageSize > 0 {
		p.TotalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	return p
}

func write(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	SuccessWithMsg(c, "success", data)
}

// SuccessWithMsg 成功响应（自定义消息）
func SuccessWithMsg(c *gin.Context, msg string, data interface{}) {
	write(c, Response{StatusCode: CodeOK, Msg: msg, Data: data})
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, data interface{}, pagination Pagination) {
	write(c, PageResponse{
		Response:   Response{StatusCode: CodeOK, Msg: "success", Data: data},
		Pagination: pagination,
	})
}

// Error 错误响应
func Error(c *gin.Context, statusCode int, msg string) {
	ErrorWithData(c, statusCode, msg, nil)
}

// ErrorWithData 错误响应，data 会补上 request_id / session_id
func ErrorWithData(c *gin.Context, statusCode int, msg string, data interface{}) {
	write(c, Response{StatusCode: statusCode, Msg: msg, Data: withTrace(c, data)})
}

// NotFound 404响应
func NotFound(c *gin.Context, msg string) {
	Error(c, CodeNotFound, msg)
}

// Unauthorized 401响应
func Unauthorized(c *gin.Context, msg string) {
	Error(c, CodeUnauthorized, msg)
}

func Forbidden(c *gin.Context, msg string) {
	Error(c, CodeForbidden, msg)
}

func BadRequest(c *gin.Context, msg string) {
	Error(c, CodeBadRequest, msg)
}

// TooManyRequests 限流响应
func TooManyRequests(c *gin.Context, msg string) {
	Error(c, CodeTooManyRequests, msg)
}

func withTrace(c *gin.Context, data interface{}) interface{} {
	trace := gin.H{}
	if c != nil {
		for _, key := range []string{requestIDContextKey, sessionIDContextKey} {
			if id := c.GetString(key); id != "" {
				trace[key] = id
			}
		}
	}
	if len(trace) == 0 {
		return data
	}

	var merged gin.H
	switch v := data.(type) {
	case nil:
		return trace
	case gin.H:
		merged = v
	case map[string]interface{}:
		merged = gin.H(v)
	default:
		trace["data"] = data
		return trace
	}
	for key, value := range trace {
		if _, exists := merged[key]; !exists {
			merged[key] = value
		}
	}
	return merged
}
