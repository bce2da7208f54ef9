// Package randutil 提供可注入、可播种的伪随机源。
package randutil

import (
	"math/rand"
	"sync"
	"time"
)

// LockedRand 互斥保护的伪随机源。生成器在请求间共享同一实例，
// 这是进程内唯一的跨请求可变状态。
type LockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New 创建伪随机源。seed 为 0 时使用时间种子；
// 测试传入固定种子可获得确定性输出。
func New(seed int64) *LockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LockedRand{rng: rand.New(rand.NewSource(seed))}
}

// Intn 返回 [0, n) 区间的伪随机整数
func (r *LockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// IntnRange 返回 [lo, hi] 闭区间的伪随机整数。hi < lo 时返回 lo。
func (r *LockedRand) IntnRange(lo, hi int) int {
	if hi < lo {
		return lo
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rng.Intn(hi-lo+1)
}

// Float64 返回 [0.0, 1.0) 区间的伪随机浮点数
func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Pick 返回切片中的随机一项
func Pick[T any](r *LockedRand, items []T) T {
	return items[r.Intn(len(items))]
}
