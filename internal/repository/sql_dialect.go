package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

func isPostgresDialect(dialect string) bool {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return true
	default:
		return false
	}
}

func likeOperatorByDialect(dialect string) string {
	if isPostgresDialect(dialect) {
		return "ILIKE"
	}
	return "LIKE"
}

// buildLikeCondition 构建多列 OR LIKE 条件，并返回参数数量。
func buildLikeCondition(db *gorm.DB, columns []string) (string, int) {
	return buildLikeConditionByDialect(dbDialectName(db), columns)
}

func buildLikeConditionByDialect(dialect string, columns []string) (string, int) {
	operator := likeOperatorByDialect(dialect)
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		trimmed := strings.TrimSpace(column)
		if trimmed == "" {
			continue
		}
		if isPostgresDialect(dialect) {
			parts = append(parts, fmt.Sprintf("%s %s ?", trimmed, operator))
			continue
		}
		// sqlite 的 LIKE 仅对 ASCII 忽略大小写，统一转小写比较
		parts = append(parts, fmt.Sprintf("LOWER(%s) %s ?", trimmed, operator))
	}
	return strings.Join(parts, " OR "), len(parts)
}

// repeatLikeArgs 生成重复的 LIKE 参数列表。
func repeatLikeArgs(like string, count int) []interface{} {
	args := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		args = append(args, like)
	}
	return args
}

// jsonArrayContainsCondition 构建 JSON 文本数组包含某个值的条件，兼容 sqlite 与 postgres。
func jsonArrayContainsCondition(db *gorm.DB, column, value string) (string, interface{}) {
	return jsonArrayContainsConditionByDialect(dbDialectName(db), column, value)
}

func jsonArrayContainsConditionByDialect(dialect, column, value string) (string, interface{}) {
	if isPostgresDialect(dialect) {
		payload, _ := json.Marshal([]string{value})
		return fmt.Sprintf("%s::jsonb @> ?::jsonb", column), string(payload)
	}
	return fmt.Sprintf("EXISTS (SELECT 1 FROM json_each(%s) WHERE json_each.value = ?)", column), value
}
