package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// firstFreeCode returns base or the first base-N which is not yet taken in
// the given table. scope narrows the lookup to siblings of the new node.
func firstFreeCode(db *gorm.DB, table string, base string, scope map[string]any) (string, error) {
	var codes []string
	q := db.Table(table).Where("code = ? OR code LIKE ?", base, base+"-%")
	if len(scope) > 0 {
		q = q.Where(scope)
	}
	if err := q.Pluck("code", &codes).Error; err != nil {
		return "", err
	}
	return nextFreeCode(base, codes), nil
}

func nextFreeCode(base string, taken []string) string {
	existing := make(map[string]struct{}, len(taken))
	for _, c := range taken {
		existing[c] = struct{}{}
	}
	if _, ok := existing[base]; !ok {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if _, ok := existing[candidate]; !ok {
			return candidate
		}
	}
}
