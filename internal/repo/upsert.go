package repo

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// createIfAbsent inserts rec unless a row with the same unique key already
// exists (INSERT ... ON CONFLICT DO NOTHING). When nothing was inserted, rec
// is replaced by the stored row; the stored row is never modified.
func createIfAbsent[T any](ctx context.Context, db *gorm.DB, rec *T, key map[string]any) (bool, error) {
	names := make([]string, 0, len(key))
	for k := range key {
		names = append(names, k)
	}
	sort.Strings(names)
	cols := make([]clause.Column, len(names))
	for i, n := range names {
		cols[i] = clause.Column{Name: n}
	}

	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: cols, DoNothing: true}).
		Create(rec)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var stored T
	if err := db.WithContext(ctx).Where(key).First(&stored).Error; err != nil {
		return false, err
	}
	*rec = stored
	return false, nil
}

// findOrCreate is the fallback for keys without a unique index: read, then
// create, serialized per key inside this process.
func findOrCreate[T any](ctx context.Context, db *gorm.DB, locks *keyLocks, rec *T, key map[string]any) (bool, error) {
	unlock := locks.lock(lockKey(key))
	defer unlock()

	var stored T
	res := db.WithContext(ctx).Where(key).Limit(1).Find(&stored)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		*rec = stored
		return false, nil
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		return false, err
	}
	return true, nil
}

type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyLocks) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func lockKey(key map[string]any) string {
	names := make([]string, 0, len(key))
	for k := range key {
		names = append(names, k)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, n := range names {
		fmt.Fprintf(&b, "%s=%v;", n, key[n])
	}
	return b.String()
}
