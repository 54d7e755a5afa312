package service

import (
	"math"

	"github.com/bgcollection/storefront/internal/models"
)

// addCartLine 相同行标识合并数量，否则追加到末尾；合并后溢出视为非法数量
func addCartLine(lines []models.CartLine, line models.CartLine) ([]models.CartLine, error) {
	key := line.Key()
	for i := range lines {
		if lines[i].Key() == key {
			if line.Quantity > math.MaxInt-lines[i].Quantity {
				return lines, ErrInvalidQuantity
			}
			lines[i].Quantity += line.Quantity
			return lines, nil
		}
	}
	return append(lines, line), nil
}

// updateCartLineQuantity 数量下限为 1，未找到时不做任何修改
func updateCartLineQuantity(lines []models.CartLine, key models.LineKey, quantity int) ([]models.CartLine, bool) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range lines {
		if lines[i].Key() == key {
			lines[i].Quantity = quantity
			return lines, true
		}
	}
	return lines, false
}

// removeCartLine 删除匹配行，不存在时原样返回
func removeCartLine(lines []models.CartLine, key models.LineKey) ([]models.CartLine, bool) {
	for i := range lines {
		if lines[i].Key() == key {
			return append(lines[:i], lines[i+1:]...), true
		}
	}
	return lines, false
}

// sanitizeCartLines 丢弃缺少商品编号的行，并修正历史数据中的非法数量
func sanitizeCartLines(lines []models.CartLine) []models.CartLine {
	cleaned := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == "" {
			continue
		}
		if line.Quantity < 1 {
			line.Quantity = 1
		}
		cleaned = append(cleaned, line)
	}
	return cleaned
}

func cartItemCount(lines []models.CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
