package service

import (
	"fmt"

	"gorm.io/gorm"
)

// nextOrderIndex 在插入事务内计算追加位置：同一主人现有最大序号加一，首条为 1。
// 位置由存储侧计算而非客户端列表长度，避免并发追加时产生重复序号。
func nextOrderIndex(tx *gorm.DB, model interface{}, profileID uint) (int, error) {
	var maxIndex int
	if err := tx.Model(model).
		Where("profile_id = ?", profileID).
		Select("COALESCE(MAX(order_index), 0)").
		Scan(&maxIndex).Error; err != nil {
		return 0, fmt.Errorf("resolve order index: %w", err)
	}
	return maxIndex + 1, nil
}
