package models

// UserSession 模拟登录产生的用户会话
type UserSession struct {
	ID        string `json:"id"`                   // 用户标识
	Name      string `json:"name"`                 // 展示名称
	Email     string `json:"email"`                // 邮箱
	Phone     string `json:"phone,omitempty"`      // 手机号
	FirstName string `json:"first_name,omitempty"` // 名
	LastName  string `json:"last_name,omitempty"`  // 姓
}
